package handler

import (
	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CreatePayment records a cash movement
// POST /payments
func (h *LedgerHandler) CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	payment, err := h.svc.CreatePayment(c.Request.Context(), cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ToPaymentResponse(payment))
}

// UpdatePayment replaces a payment and re-derives its balance and debt effects
// PUT /payments/:id
func (h *LedgerHandler) UpdatePayment(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	payment, err := h.svc.UpdatePayment(c.Request.Context(), ledger.UpdatePaymentCommand{
		ID:                   id,
		CreatePaymentCommand: cmd,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToPaymentResponse(payment))
}

// DeletePayment removes a payment and reverses its effects
// DELETE /payments/:id
func (h *LedgerHandler) DeletePayment(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.svc.RemovePayment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetPayment returns a payment
// GET /payments/:id
func (h *LedgerHandler) GetPayment(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	payment, err := h.svc.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToPaymentResponse(payment))
}
