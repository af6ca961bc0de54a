package identity

import (
	"fmt"
	"strings"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// User is a staff member. Every sale, payment and stock entry records the
// user who handled it; salaries accumulate in Balance.
type User struct {
	shared.BaseAggregateRoot
	Name     string
	Phone    string
	Balance  decimal.Decimal
	IsActive bool
}

// NewUser creates an active user with a zero balance
func NewUser(name, phone string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("User name cannot be empty")
	}
	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             strings.TrimSpace(phone),
		Balance:           decimal.Zero,
		IsActive:          true,
	}, nil
}

// CurrentBalance returns the accumulated balance
func (u *User) CurrentBalance() decimal.Decimal {
	return u.Balance
}

// ApplyBalanceDelta adds a signed delta to the balance
func (u *User) ApplyBalanceDelta(delta decimal.Decimal) {
	if delta.IsZero() {
		return
	}
	u.Balance = u.Balance.Add(delta)
	u.Touch()
}

// RequireActive fails when the user has been deactivated
func (u *User) RequireActive() error {
	if !u.IsActive {
		return shared.NewInvalidStateError(fmt.Sprintf("User %s is not active", u.ID))
	}
	return nil
}

// Deactivate marks the user inactive
func (u *User) Deactivate() {
	u.IsActive = false
	u.Touch()
}

var _ shared.BalanceAccount = (*User)(nil)
