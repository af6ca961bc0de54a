package shared

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceAccount is an aggregate carrying a signed running balance that the
// ledger moves with deltas. Balances have no floor or ceiling.
type BalanceAccount interface {
	GetID() uuid.UUID
	CurrentBalance() decimal.Decimal
	ApplyBalanceDelta(delta decimal.Decimal)
	RequireActive() error
}
