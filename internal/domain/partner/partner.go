package partner

import (
	"fmt"
	"strings"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Role is the commercial role a partner plays towards the business
type Role string

const (
	RoleCustomer Role = "CUSTOMER" // buys on credit
	RoleSeller   Role = "SELLER"   // supplies inventory
)

// IsValid returns true if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller:
		return true
	}
	return false
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// Partner is a counterparty of the business.
// Balance is signed: negative means the partner owes the business,
// positive means the business owes the partner.
type Partner struct {
	shared.BaseAggregateRoot
	Name     string
	Phone    string
	Role     Role
	Balance  decimal.Decimal
	IsActive bool
}

// NewPartner creates an active partner with a zero balance
func NewPartner(name, phone string, role Role) (*Partner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Partner name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("Invalid partner role: %s", role))
	}
	return &Partner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             strings.TrimSpace(phone),
		Role:              role,
		Balance:           decimal.Zero,
		IsActive:          true,
	}, nil
}

// CurrentBalance returns the running balance
func (p *Partner) CurrentBalance() decimal.Decimal {
	return p.Balance
}

// ApplyBalanceDelta adds a signed delta to the balance. There is no floor or ceiling.
func (p *Partner) ApplyBalanceDelta(delta decimal.Decimal) {
	if delta.IsZero() {
		return
	}
	p.Balance = p.Balance.Add(delta)
	p.Touch()
}

// RequireActive fails when the partner has been deactivated
func (p *Partner) RequireActive() error {
	if !p.IsActive {
		return shared.NewInvalidStateError(fmt.Sprintf("Partner %s is not active", p.ID))
	}
	return nil
}

// RequireRole fails when the partner does not play the expected role
func (p *Partner) RequireRole(expected Role) error {
	if p.Role != expected {
		return shared.NewInvalidStateError(
			fmt.Sprintf("Partner %s is a %s, expected %s", p.ID, p.Role, expected))
	}
	return nil
}

// Deactivate marks the partner inactive
func (p *Partner) Deactivate() {
	p.IsActive = false
	p.Touch()
}

// Activate marks the partner active
func (p *Partner) Activate() {
	p.IsActive = true
	p.Touch()
}

var _ shared.BalanceAccount = (*Partner)(nil)
