package dto

import (
	"fmt"

	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
)

// Decimal request fields are JSON strings in plain notation ("150", "12.5")
// so that no value passes through float64. The money and quantity binding
// tags check the notation; the domain checks the range.

// CreateSaleRequest is the body of POST /sales
type CreateSaleRequest struct {
	PartnerID    string  `json:"partner_id" binding:"required,uuid"`
	ProductID    string  `json:"product_id" binding:"required,uuid"`
	UserID       string  `json:"user_id" binding:"required,uuid"`
	StockEntryID *string `json:"stock_entry_id" binding:"omitempty,uuid"`
	Quantity     string  `json:"quantity" binding:"required,quantity"`
	SellPrice    string  `json:"sell_price" binding:"required,money"`
	// Time is the term in months; omitted means the category term
	Time int `json:"time" binding:"omitempty,min=1,max=600"`
}

// ToCommand converts the request into a ledger command
func (r CreateSaleRequest) ToCommand() (ledger.CreateSaleCommand, error) {
	var cmd ledger.CreateSaleCommand
	var err error
	if cmd.PartnerID, err = parseID("partner_id", r.PartnerID); err != nil {
		return cmd, err
	}
	if cmd.ProductID, err = parseID("product_id", r.ProductID); err != nil {
		return cmd, err
	}
	if cmd.UserID, err = parseID("user_id", r.UserID); err != nil {
		return cmd, err
	}
	if cmd.StockEntryID, err = parseOptionalID("stock_entry_id", r.StockEntryID); err != nil {
		return cmd, err
	}
	if cmd.Quantity, err = shared.ParseQuantity("quantity", r.Quantity); err != nil {
		return cmd, err
	}
	if cmd.SellPrice, err = shared.ParseAmount("sell_price", r.SellPrice); err != nil {
		return cmd, err
	}
	cmd.Time = r.Time
	return cmd, nil
}

// PaymentRequest is the body of POST /payments and PUT /payments/:id.
// payment_type is required on create and may be omitted on update.
type PaymentRequest struct {
	PartnerID   string  `json:"partner_id" binding:"required,uuid"`
	UserID      string  `json:"user_id" binding:"required,uuid"`
	DebtID      *string `json:"debt_id" binding:"omitempty,uuid"`
	Amount      string  `json:"amount" binding:"required,money"`
	Type        string  `json:"type" binding:"required,oneof=IN OUT"`
	PaymentType string  `json:"payment_type" binding:"omitempty,oneof=CASH CARD BANK_TRANSFER"`
	Comment     string  `json:"comment" binding:"max=500"`
}

// ToCommand converts the request into a ledger command
func (r PaymentRequest) ToCommand() (ledger.CreatePaymentCommand, error) {
	var cmd ledger.CreatePaymentCommand
	var err error
	if cmd.PartnerID, err = parseID("partner_id", r.PartnerID); err != nil {
		return cmd, err
	}
	if cmd.UserID, err = parseID("user_id", r.UserID); err != nil {
		return cmd, err
	}
	if cmd.DebtID, err = parseOptionalID("debt_id", r.DebtID); err != nil {
		return cmd, err
	}
	if cmd.Amount, err = shared.ParseAmount("amount", r.Amount); err != nil {
		return cmd, err
	}
	cmd.Type = finance.PaymentFlow(r.Type)
	cmd.PaymentType = finance.PaymentType(r.PaymentType)
	cmd.Comment = r.Comment
	return cmd, nil
}

// StockEntryRequest is the body of POST /stock-entries and PUT /stock-entries/:id
type StockEntryRequest struct {
	PartnerID string `json:"partner_id" binding:"required,uuid"`
	ProductID string `json:"product_id" binding:"required,uuid"`
	UserID    string `json:"user_id" binding:"required,uuid"`
	Quantity  string `json:"quantity" binding:"required,quantity"`
	BuyPrice  string `json:"buy_price" binding:"required,money"`
}

// ToCommand converts the request into a ledger command
func (r StockEntryRequest) ToCommand() (ledger.StockEntryCommand, error) {
	var cmd ledger.StockEntryCommand
	var err error
	if cmd.PartnerID, err = parseID("partner_id", r.PartnerID); err != nil {
		return cmd, err
	}
	if cmd.ProductID, err = parseID("product_id", r.ProductID); err != nil {
		return cmd, err
	}
	if cmd.UserID, err = parseID("user_id", r.UserID); err != nil {
		return cmd, err
	}
	if cmd.Quantity, err = shared.ParseQuantity("quantity", r.Quantity); err != nil {
		return cmd, err
	}
	if cmd.BuyPrice, err = shared.ParseAmount("buy_price", r.BuyPrice); err != nil {
		return cmd, err
	}
	return cmd, nil
}

// ReturnRequest is the body of POST /returns and PUT /returns/:id
type ReturnRequest struct {
	SaleID       string `json:"sale_id" binding:"required,uuid"`
	ProductID    string `json:"product_id" binding:"required,uuid"`
	Quantity     string `json:"quantity" binding:"required,quantity"`
	IsResellable bool   `json:"is_resellable"`
}

// ToCommand converts the request into a ledger command
func (r ReturnRequest) ToCommand() (ledger.ReturnCommand, error) {
	var cmd ledger.ReturnCommand
	var err error
	if cmd.SaleID, err = parseID("sale_id", r.SaleID); err != nil {
		return cmd, err
	}
	if cmd.ProductID, err = parseID("product_id", r.ProductID); err != nil {
		return cmd, err
	}
	if cmd.Quantity, err = shared.ParseQuantity("quantity", r.Quantity); err != nil {
		return cmd, err
	}
	cmd.IsResellable = r.IsResellable
	return cmd, nil
}

// SalaryRequest is the body of POST /salaries and PUT /salaries/:id
type SalaryRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	Amount  string `json:"amount" binding:"required,money"`
	Comment string `json:"comment" binding:"max=500"`
}

// ToCommand converts the request into a ledger command
func (r SalaryRequest) ToCommand() (ledger.SalaryCommand, error) {
	var cmd ledger.SalaryCommand
	var err error
	if cmd.UserID, err = parseID("user_id", r.UserID); err != nil {
		return cmd, err
	}
	if cmd.Amount, err = shared.ParseAmount("amount", r.Amount); err != nil {
		return cmd, err
	}
	cmd.Comment = r.Comment
	return cmd, nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.NewValidationError(fmt.Sprintf("%s must be a valid UUID", field))
	}
	return id, nil
}

func parseOptionalID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
