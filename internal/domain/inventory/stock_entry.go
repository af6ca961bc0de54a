package inventory

import (
	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEntry is a purchase receipt: quantity units of a product bought from a
// SELLER partner at BuyPrice each.
type StockEntry struct {
	shared.BaseAggregateRoot
	PartnerID uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Quantity  decimal.Decimal
	BuyPrice  decimal.Decimal
}

// ReceiptLine is the part of a stock entry that drives costing and balances
type ReceiptLine struct {
	PartnerID uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Quantity  decimal.Decimal
	BuyPrice  decimal.Decimal
}

// Validate checks identifiers, quantity and price
func (l ReceiptLine) Validate() error {
	if l.PartnerID == uuid.Nil {
		return shared.NewValidationError("Partner ID is required")
	}
	if l.ProductID == uuid.Nil {
		return shared.NewValidationError("Product ID is required")
	}
	if l.UserID == uuid.Nil {
		return shared.NewValidationError("User ID is required")
	}
	if err := shared.ValidateQuantity("quantity", l.Quantity); err != nil {
		return err
	}
	return shared.ValidateAmount("buy_price", l.BuyPrice)
}

// NewStockEntry creates a stock entry from a validated receipt line
func NewStockEntry(line ReceiptLine) (*StockEntry, error) {
	if err := line.Validate(); err != nil {
		return nil, err
	}
	return &StockEntry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PartnerID:         line.PartnerID,
		ProductID:         line.ProductID,
		UserID:            line.UserID,
		Quantity:          line.Quantity,
		BuyPrice:          line.BuyPrice,
	}, nil
}

// Line returns the current receipt line
func (e *StockEntry) Line() ReceiptLine {
	return ReceiptLine{
		PartnerID: e.PartnerID,
		ProductID: e.ProductID,
		UserID:    e.UserID,
		Quantity:  e.Quantity,
		BuyPrice:  e.BuyPrice,
	}
}

// Total returns quantity * buy price, the amount owed to the seller
func (e *StockEntry) Total() decimal.Decimal {
	return shared.ExtendedAmount(e.Quantity, e.BuyPrice)
}

// Revise replaces the receipt line
func (e *StockEntry) Revise(line ReceiptLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	e.PartnerID = line.PartnerID
	e.ProductID = line.ProductID
	e.UserID = line.UserID
	e.Quantity = line.Quantity
	e.BuyPrice = line.BuyPrice
	e.Touch()
	return nil
}
