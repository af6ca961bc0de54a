package trade

import (
	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable record of goods sold on installment. Its total is
// carried by exactly one debt.
type Sale struct {
	shared.BaseAggregateRoot
	PartnerID    uuid.UUID
	ProductID    uuid.UUID
	UserID       uuid.UUID
	StockEntryID *uuid.UUID
	Quantity     decimal.Decimal
	SellPrice    decimal.Decimal
	Time         int // installment term in months
}

// SaleLine holds the fields needed to create a sale
type SaleLine struct {
	PartnerID    uuid.UUID
	ProductID    uuid.UUID
	UserID       uuid.UUID
	StockEntryID *uuid.UUID
	Quantity     decimal.Decimal
	SellPrice    decimal.Decimal
	Time         int
}

// NewSale validates the line and creates a sale
func NewSale(line SaleLine) (*Sale, error) {
	if line.PartnerID == uuid.Nil {
		return nil, shared.NewValidationError("Partner ID is required")
	}
	if line.ProductID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID is required")
	}
	if line.UserID == uuid.Nil {
		return nil, shared.NewValidationError("User ID is required")
	}
	if err := shared.ValidateQuantity("quantity", line.Quantity); err != nil {
		return nil, err
	}
	if err := shared.ValidateAmount("sell_price", line.SellPrice); err != nil {
		return nil, err
	}
	if line.Time < 1 {
		return nil, shared.NewValidationError("Sale time must be at least 1 month")
	}
	return &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PartnerID:         line.PartnerID,
		ProductID:         line.ProductID,
		UserID:            line.UserID,
		StockEntryID:      line.StockEntryID,
		Quantity:          line.Quantity,
		SellPrice:         line.SellPrice,
		Time:              line.Time,
	}, nil
}

// Total returns quantity * sell price rounded to cents, the amount financed
// by the sale's debt
func (s *Sale) Total() decimal.Decimal {
	return shared.ExtendedAmount(s.Quantity, s.SellPrice)
}
