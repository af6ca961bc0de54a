package ledger

import (
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleCommand records goods sold on installment
type CreateSaleCommand struct {
	PartnerID    uuid.UUID
	ProductID    uuid.UUID
	UserID       uuid.UUID
	StockEntryID *uuid.UUID
	Quantity     decimal.Decimal
	SellPrice    decimal.Decimal
	// Time is the term in months; zero uses the product category's term
	Time int
}

// SaleResult is the outcome of CreateSale
type SaleResult struct {
	Sale *trade.Sale
	Debt *finance.Debt
}

// CreatePaymentCommand records a cash movement
type CreatePaymentCommand struct {
	PartnerID   uuid.UUID
	UserID      uuid.UUID
	DebtID      *uuid.UUID
	Amount      decimal.Decimal
	Type        finance.PaymentFlow
	PaymentType finance.PaymentType
	Comment     string
}

func (c CreatePaymentCommand) draft() finance.PaymentDraft {
	debtID := c.DebtID
	if debtID != nil && *debtID == uuid.Nil {
		debtID = nil
	}
	return finance.PaymentDraft{
		PartnerID:   c.PartnerID,
		UserID:      c.UserID,
		DebtID:      debtID,
		Amount:      c.Amount,
		Type:        c.Type,
		PaymentType: c.PaymentType,
		Comment:     c.Comment,
	}
}

// UpdatePaymentCommand replaces a payment's fields. PaymentType may be left
// empty; a different non-empty value is rejected.
type UpdatePaymentCommand struct {
	ID uuid.UUID
	CreatePaymentCommand
}

// StockEntryCommand carries the fields of a purchase receipt
type StockEntryCommand struct {
	PartnerID uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Quantity  decimal.Decimal
	BuyPrice  decimal.Decimal
}

// UpdateStockEntryCommand replaces a receipt; partner and product may change
type UpdateStockEntryCommand struct {
	ID uuid.UUID
	StockEntryCommand
}

// ReturnCommand carries the fields of a returned product
type ReturnCommand struct {
	SaleID       uuid.UUID
	ProductID    uuid.UUID
	Quantity     decimal.Decimal
	IsResellable bool
}

// UpdateReturnCommand replaces a return
type UpdateReturnCommand struct {
	ID uuid.UUID
	ReturnCommand
}

// SalaryCommand carries the fields of a salary payout
type SalaryCommand struct {
	UserID  uuid.UUID
	Amount  decimal.Decimal
	Comment string
}

// UpdateSalaryCommand replaces a salary; the user may change
type UpdateSalaryCommand struct {
	ID uuid.UUID
	SalaryCommand
}
