package handler

import (
	"github.com/erp/installment/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// GetPartner returns a partner with its balance
// GET /partners/:id
func (h *LedgerHandler) GetPartner(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	p, err := h.svc.GetPartner(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToPartnerResponse(p))
}

// DeletePartner removes a partner nothing references
// DELETE /partners/:id
func (h *LedgerHandler) DeletePartner(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.svc.RemovePartner(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetProduct returns a product with its stock position
// GET /products/:id
func (h *LedgerHandler) GetProduct(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToProductResponse(p))
}

// GetUser returns a user with its balance
// GET /users/:id
func (h *LedgerHandler) GetUser(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToUserResponse(u))
}

// GetDebt returns a debt and its amortization state
// GET /debts/:id
func (h *LedgerHandler) GetDebt(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	debt, err := h.svc.GetDebt(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToDebtResponse(debt))
}

// OverdueSweepResponse reports how many debts a sweep flagged
type OverdueSweepResponse struct {
	Marked int `json:"marked"`
}

// MarkOverdueDebts runs the overdue sweep now instead of waiting for the scheduler
// POST /debts/overdue-sweep
func (h *LedgerHandler) MarkOverdueDebts(c *gin.Context) {
	n, err := h.svc.MarkOverdueDebts(c.Request.Context(), h.now())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, OverdueSweepResponse{Marked: n})
}
