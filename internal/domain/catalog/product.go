package catalog

import (
	"fmt"
	"strings"

	"github.com/erp/installment/internal/domain/inventory"
	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. Quantity, CostBasis (the exact value of the
// units on hand) and BuyPrice (the running weighted-average unit cost) change
// only through the stock methods below.
type Product struct {
	shared.BaseAggregateRoot
	Title      string
	CategoryID uuid.UUID
	Quantity   decimal.Decimal
	CostBasis  decimal.Decimal
	BuyPrice   decimal.Decimal
	SellPrice  decimal.Decimal
	IsActive   bool
}

// NewProduct creates an active product with no stock
func NewProduct(title string, categoryID uuid.UUID, sellPrice decimal.Decimal) (*Product, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewValidationError("Product title cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewValidationError("Category ID is required")
	}
	if sellPrice.IsNegative() {
		return nil, shared.NewValidationError("Sell price cannot be negative")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		CategoryID:        categoryID,
		Quantity:          decimal.Zero,
		CostBasis:         decimal.Zero,
		BuyPrice:          decimal.Zero,
		SellPrice:         sellPrice,
		IsActive:          true,
	}, nil
}

// RequireActive fails when the product has been deactivated
func (p *Product) RequireActive() error {
	if !p.IsActive {
		return shared.NewInvalidStateError(fmt.Sprintf("Product %s is not active", p.ID))
	}
	return nil
}

// Position returns the current stock position
func (p *Product) Position() inventory.Position {
	return inventory.Position{Quantity: p.Quantity, Cost: p.CostBasis, UnitCost: p.BuyPrice}
}

// ReceiveStock folds a purchase receipt into quantity and average cost
func (p *Product) ReceiveStock(quantity, unitCost decimal.Decimal) {
	p.setPosition(p.Position().Receive(quantity, unitCost))
}

// RevertReceipt removes a previously received receipt. It fails without
// changing the product when the units have already left stock.
func (p *Product) RevertReceipt(quantity, unitCost decimal.Decimal) error {
	next := p.Position().Revert(quantity, unitCost)
	if next.Quantity.IsNegative() {
		return shared.NewInvalidStateError(fmt.Sprintf(
			"Cannot revert receipt of %s units for product %s: only %s in stock",
			quantity, p.ID, p.Quantity))
	}
	p.setPosition(next)
	return nil
}

// ReviseReceipt replaces a receipt already folded into this product with a new one
func (p *Product) ReviseReceipt(oldQty, oldCost, newQty, newCost decimal.Decimal) error {
	next := p.Position().Revert(oldQty, oldCost).Receive(newQty, newCost)
	if next.Quantity.IsNegative() {
		return shared.NewInvalidStateError(fmt.Sprintf(
			"Cannot reduce receipt for product %s below units already sold", p.ID))
	}
	p.setPosition(next)
	return nil
}

// Withdraw removes sold units from stock
func (p *Product) Withdraw(quantity decimal.Decimal) error {
	if quantity.GreaterThan(p.Quantity) {
		return shared.NewInvalidStateError(fmt.Sprintf(
			"Insufficient stock for product %s: requested %s, available %s",
			p.ID, quantity, p.Quantity))
	}
	p.setPosition(p.Position().Withdraw(quantity))
	return nil
}

// Restock puts returned units back into stock without touching the cost basis.
// A negative quantity takes restocked units back out.
func (p *Product) Restock(quantity decimal.Decimal) error {
	next := p.Position().Restock(quantity)
	if next.Quantity.IsNegative() {
		return shared.NewInvalidStateError(fmt.Sprintf(
			"Insufficient stock for product %s to undo restock of %s units", p.ID, quantity.Neg()))
	}
	p.setPosition(next)
	return nil
}

func (p *Product) setPosition(pos inventory.Position) {
	p.Quantity = pos.Quantity
	p.CostBasis = pos.Cost
	p.BuyPrice = pos.UnitCost
	p.Touch()
}
