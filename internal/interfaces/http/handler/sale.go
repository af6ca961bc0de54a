package handler

import (
	"github.com/erp/installment/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CreateSale records a sale on installment and opens its debt
// POST /sales
func (h *LedgerHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.svc.CreateSale(c.Request.Context(), cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ToCreateSaleResponse(result))
}

// GetSale returns a sale
// GET /sales/:id
func (h *LedgerHandler) GetSale(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	sale, err := h.svc.GetSale(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToSaleResponse(sale))
}

// GetSaleDebt returns the debt opened by a sale
// GET /sales/:id/debt
func (h *LedgerHandler) GetSaleDebt(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	debt, err := h.svc.GetDebtBySale(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToDebtResponse(debt))
}
