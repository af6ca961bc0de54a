package finance

import (
	"fmt"

	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentFlow is the direction of a cash movement. It is a closed set:
// every flow has its own validation rule in flowRules.
type PaymentFlow string

const (
	// FlowIn is money received from a partner, optionally against a debt
	FlowIn PaymentFlow = "IN"
	// FlowOut is money paid out to a seller
	FlowOut PaymentFlow = "OUT"
)

// FlowTarget is what a payment flow is validated against
type FlowTarget struct {
	Partner *partner.Partner
	// Debt is the referenced debt, nil for debt-less payments
	Debt *Debt
	// DebtOwnerID is the partner of the sale the debt belongs to
	DebtOwnerID uuid.UUID
}

type flowRule struct {
	validate func(FlowTarget) error
}

var flowRules = map[PaymentFlow]flowRule{
	FlowIn:  {validate: validateInflow},
	FlowOut: {validate: validateOutflow},
}

// IsValid returns true for IN and OUT
func (f PaymentFlow) IsValid() bool {
	_, ok := flowRules[f]
	return ok
}

// String returns the string representation
func (f PaymentFlow) String() string {
	return string(f)
}

// Validate checks the partner and optional debt against the flow's rule
func (f PaymentFlow) Validate(target FlowTarget) error {
	rule, ok := flowRules[f]
	if !ok {
		return shared.NewValidationError(fmt.Sprintf("Invalid payment type: %s", f))
	}
	if target.Partner == nil {
		return shared.NewValidationError("Partner is required")
	}
	if err := target.Partner.RequireActive(); err != nil {
		return err
	}
	return rule.validate(target)
}

// BalanceEffect returns the delta a payment of amount applies to the
// partner balance. Both flows credit the partner: IN reduces what a customer
// owes, OUT records money the business paid to the seller.
func (f PaymentFlow) BalanceEffect(amount decimal.Decimal) decimal.Decimal {
	return amount
}

// validateInflow accepts any active partner. A referenced debt must belong
// to the same partner and still be open.
func validateInflow(target FlowTarget) error {
	if target.Debt == nil {
		return nil
	}
	if target.DebtOwnerID != target.Partner.ID {
		return shared.NewInvalidStateError(fmt.Sprintf(
			"Debt %s does not belong to partner %s", target.Debt.ID, target.Partner.ID))
	}
	return target.Debt.RequireOpen()
}

// validateOutflow only pays sellers and never touches a debt
func validateOutflow(target FlowTarget) error {
	if target.Debt != nil {
		return shared.NewValidationError("OUT payments cannot reference a debt")
	}
	return target.Partner.RequireRole(partner.RoleSeller)
}
