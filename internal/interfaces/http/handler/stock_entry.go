package handler

import (
	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CreateStockEntry receives goods from a seller
// POST /stock-entries
func (h *LedgerHandler) CreateStockEntry(c *gin.Context) {
	var req dto.StockEntryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	entry, err := h.svc.CreateStockEntry(c.Request.Context(), cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ToStockEntryResponse(entry))
}

// UpdateStockEntry replaces a receipt
// PUT /stock-entries/:id
func (h *LedgerHandler) UpdateStockEntry(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.StockEntryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	entry, err := h.svc.UpdateStockEntry(c.Request.Context(), ledger.UpdateStockEntryCommand{
		ID:                id,
		StockEntryCommand: cmd,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToStockEntryResponse(entry))
}

// DeleteStockEntry removes a receipt, refunding the seller and reverting its cost
// DELETE /stock-entries/:id
func (h *LedgerHandler) DeleteStockEntry(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.svc.RemoveStockEntry(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
