package inventory

import (
	"github.com/shopspring/decimal"
)

// CostScale is the number of fractional digits kept for a weighted-average unit cost
const CostScale = 6

// Position is the stock on hand of one product: its quantity, the exact cost
// basis of those units (Cost) and the quantity-weighted average unit cost
// rounded to CostScale. Positions are values: every operation returns a new
// Position.
//
// Receipts move Cost by exactly quantity*unitCost, so reverting a receipt
// restores the earlier basis to the digit; only UnitCost is rounded.
type Position struct {
	Quantity decimal.Decimal
	Cost     decimal.Decimal
	UnitCost decimal.Decimal
}

// Receive folds a receipt of quantity units at unitCost into the position:
// newCost = (oldCost*oldQty + unitCost*quantity) / (oldQty + quantity).
func (p Position) Receive(quantity, unitCost decimal.Decimal) Position {
	return averaged(p.Quantity.Add(quantity), p.Cost.Add(quantity.Mul(unitCost)))
}

// Revert removes a receipt's contribution from the position:
// revertedTotal = oldTotal - quantity*unitCost, revertedQty = oldQty - quantity.
// The average is 0 when nothing remains.
func (p Position) Revert(quantity, unitCost decimal.Decimal) Position {
	return averaged(p.Quantity.Sub(quantity), p.Cost.Sub(quantity.Mul(unitCost)))
}

// Withdraw removes sold units at the current average; the unit cost is unaffected
func (p Position) Withdraw(quantity decimal.Decimal) Position {
	return p.atUnitCost(p.Quantity.Sub(quantity))
}

// Restock returns units to stock at the current cost basis
func (p Position) Restock(quantity decimal.Decimal) Position {
	return p.atUnitCost(p.Quantity.Add(quantity))
}

func (p Position) atUnitCost(quantity decimal.Decimal) Position {
	return Position{Quantity: quantity, Cost: quantity.Mul(p.UnitCost), UnitCost: p.UnitCost}
}

func averaged(quantity, cost decimal.Decimal) Position {
	if quantity.IsZero() {
		return Position{Quantity: decimal.Zero, Cost: decimal.Zero, UnitCost: decimal.Zero}
	}
	return Position{Quantity: quantity, Cost: cost, UnitCost: cost.Div(quantity).Round(CostScale)}
}
