package handler

import (
	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CreateSalary pays a user
// POST /salaries
func (h *LedgerHandler) CreateSalary(c *gin.Context) {
	var req dto.SalaryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	salary, err := h.svc.CreateSalary(c.Request.Context(), cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ToSalaryResponse(salary))
}

// UpdateSalary replaces a salary, possibly moving it to another user
// PUT /salaries/:id
func (h *LedgerHandler) UpdateSalary(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.SalaryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	salary, err := h.svc.UpdateSalary(c.Request.Context(), ledger.UpdateSalaryCommand{
		ID:            id,
		SalaryCommand: cmd,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToSalaryResponse(salary))
}

// DeleteSalary removes a salary and takes it back from the user's balance
// DELETE /salaries/:id
func (h *LedgerHandler) DeleteSalary(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.svc.RemoveSalary(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
