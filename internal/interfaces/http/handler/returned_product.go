package handler

import (
	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CreateReturn records goods brought back from a sale
// POST /returns
func (h *LedgerHandler) CreateReturn(c *gin.Context) {
	var req dto.ReturnRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	ret, err := h.svc.CreateReturnedProduct(c.Request.Context(), cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ToReturnResponse(ret))
}

// UpdateReturn replaces a return
// PUT /returns/:id
func (h *LedgerHandler) UpdateReturn(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.ReturnRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	ret, err := h.svc.UpdateReturnedProduct(c.Request.Context(), ledger.UpdateReturnCommand{
		ID:            id,
		ReturnCommand: cmd,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToReturnResponse(ret))
}

// DeleteReturn removes a return and reverses its credit and restock
// DELETE /returns/:id
func (h *LedgerHandler) DeleteReturn(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.svc.RemoveReturnedProduct(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
