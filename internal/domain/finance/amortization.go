package finance

import (
	"fmt"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DueDatePolicy decides how next_due_date reacts when a correction lowers the
// number of months covered.
type DueDatePolicy string

const (
	// DueDatePolicyRecompute derives next_due_date from the first due date and
	// the months covered, so downward corrections move it back.
	DueDatePolicyRecompute DueDatePolicy = "recompute"
	// DueDatePolicyForwardOnly only ever advances next_due_date. Editing or
	// removing a payment under this policy (reverse, then re-apply) is not a
	// true reversal: paid_amount is restored but next_due_date stays where the
	// larger payment pushed it.
	DueDatePolicyForwardOnly DueDatePolicy = "forward_only"
)

// IsValid returns true if the policy is known
func (p DueDatePolicy) IsValid() bool {
	return p == DueDatePolicyRecompute || p == DueDatePolicyForwardOnly
}

// ParseDueDatePolicy parses a configured policy name; empty selects recompute
func ParseDueDatePolicy(s string) (DueDatePolicy, error) {
	if s == "" {
		return DueDatePolicyRecompute, nil
	}
	p := DueDatePolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown due date policy %q (expected %q or %q)",
			s, DueDatePolicyRecompute, DueDatePolicyForwardOnly)
	}
	return p, nil
}

// Adjustment describes the effect of one Apply call
type Adjustment struct {
	MonthsBefore int
	MonthsAfter  int
	PaidBefore   decimal.Decimal
	PaidAfter    decimal.Decimal
}

// MonthsShifted returns monthsAfter - monthsBefore
func (a Adjustment) MonthsShifted() int {
	return a.MonthsAfter - a.MonthsBefore
}

// Amortizer keeps a debt's paid amount, due date, late flag and status
// consistent with the payments recorded against it.
type Amortizer struct {
	policy DueDatePolicy
}

// NewAmortizer creates an amortizer with the given due date policy
func NewAmortizer(policy DueDatePolicy) *Amortizer {
	if !policy.IsValid() {
		policy = DueDatePolicyRecompute
	}
	return &Amortizer{policy: policy}
}

// Policy returns the configured due date policy
func (a *Amortizer) Policy() DueDatePolicy {
	return a.policy
}

// Apply moves the paid amount by delta: positive for a new payment, negative
// when a payment is reversed. The debt is left untouched when the result
// would leave [0, total_debt].
func (a *Amortizer) Apply(d *Debt, delta decimal.Decimal) (Adjustment, error) {
	adj := Adjustment{
		MonthsBefore: d.MonthsCovered(d.PaidAmount),
		PaidBefore:   d.PaidAmount,
	}

	newPaid := d.PaidAmount.Add(delta)
	if newPaid.GreaterThan(d.TotalDebt) {
		return adj, shared.NewValidationError(fmt.Sprintf(
			"Payment exceeds total debt: remaining %s", d.Remaining()))
	}
	if newPaid.IsNegative() {
		return adj, shared.NewValidationError(fmt.Sprintf(
			"Cannot remove %s from debt %s: only %s was paid", delta.Neg(), d.ID, d.PaidAmount))
	}

	adj.MonthsAfter = d.MonthsCovered(newPaid)
	adj.PaidAfter = newPaid

	switch a.policy {
	case DueDatePolicyForwardOnly:
		if shift := adj.MonthsShifted(); shift > 0 {
			d.NextDueDate = d.NextDueDate.AddDate(0, shift, 0)
		}
	default:
		d.NextDueDate = d.FirstDueDate.AddDate(0, adj.MonthsAfter, 0)
	}

	d.PaidAmount = newPaid
	if newPaid.GreaterThanOrEqual(d.TotalDebt) {
		d.Status = DebtStatusClosed
	} else {
		d.Status = DebtStatusOpen
	}
	if delta.IsPositive() {
		d.IsLate = false
	}
	d.Touch()
	return adj, nil
}
