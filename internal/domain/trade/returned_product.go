package trade

import (
	"fmt"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnedProduct records goods brought back from a sale. The partner is
// always credited; the goods go back to stock only when resellable.
type ReturnedProduct struct {
	shared.BaseAggregateRoot
	SaleID       uuid.UUID
	ProductID    uuid.UUID
	Quantity     decimal.Decimal
	IsResellable bool
}

// NewReturnedProduct validates a return against its sale
func NewReturnedProduct(sale *Sale, productID uuid.UUID, quantity decimal.Decimal, resellable bool) (*ReturnedProduct, error) {
	if err := validateReturn(sale, productID, quantity); err != nil {
		return nil, err
	}
	return &ReturnedProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SaleID:            sale.ID,
		ProductID:         productID,
		Quantity:          quantity,
		IsResellable:      resellable,
	}, nil
}

// Credit returns the amount credited back to the partner: quantity * sale
// price, rounded to cents
func (r *ReturnedProduct) Credit(sale *Sale) decimal.Decimal {
	return shared.ExtendedAmount(r.Quantity, sale.SellPrice)
}

// RestockedQuantity returns the units this return put back into stock
func (r *ReturnedProduct) RestockedQuantity() decimal.Decimal {
	if !r.IsResellable {
		return decimal.Zero
	}
	return r.Quantity
}

// Revise re-points the return at a (possibly different) sale
func (r *ReturnedProduct) Revise(sale *Sale, productID uuid.UUID, quantity decimal.Decimal, resellable bool) error {
	if err := validateReturn(sale, productID, quantity); err != nil {
		return err
	}
	r.SaleID = sale.ID
	r.ProductID = productID
	r.Quantity = quantity
	r.IsResellable = resellable
	r.Touch()
	return nil
}

func validateReturn(sale *Sale, productID uuid.UUID, quantity decimal.Decimal) error {
	if sale == nil {
		return shared.NewValidationError("Sale is required")
	}
	if productID != sale.ProductID {
		return shared.NewValidationError("Returned product does not match the sold product")
	}
	if err := shared.ValidateQuantity("quantity", quantity); err != nil {
		return err
	}
	if quantity.GreaterThan(sale.Quantity) {
		return shared.NewValidationError(fmt.Sprintf(
			"Returned quantity %s exceeds sold quantity %s", quantity, sale.Quantity))
	}
	return nil
}
