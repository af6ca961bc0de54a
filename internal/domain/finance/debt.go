package finance

import (
	"fmt"
	"time"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtStatus represents the status of a debt
type DebtStatus string

const (
	DebtStatusOpen   DebtStatus = "OPEN"
	DebtStatusClosed DebtStatus = "CLOSED"
)

// IsValid checks if the status is a valid DebtStatus
func (s DebtStatus) IsValid() bool {
	return s == DebtStatusOpen || s == DebtStatusClosed
}

// String returns the string representation of DebtStatus
func (s DebtStatus) String() string {
	return string(s)
}

// Debt is the outstanding installment balance created by one sale.
//
// Invariants: 0 <= PaidAmount <= TotalDebt, Status is CLOSED iff
// PaidAmount >= TotalDebt. PaidAmount, NextDueDate, IsLate and Status change
// only through Amortizer.Apply and MarkLate.
type Debt struct {
	shared.BaseAggregateRoot
	SaleID       uuid.UUID
	TotalDebt    decimal.Decimal
	PaidAmount   decimal.Decimal
	Time         int // installment term in months
	FirstDueDate time.Time
	NextDueDate  time.Time
	IsLate       bool
	Status       DebtStatus
}

// NewDebt opens a debt for a sale with nothing paid yet
func NewDebt(saleID uuid.UUID, total decimal.Decimal, termMonths int, firstDue time.Time) (*Debt, error) {
	if saleID == uuid.Nil {
		return nil, shared.NewValidationError("Sale ID is required")
	}
	if !total.IsPositive() {
		return nil, shared.NewValidationError("Total debt must be greater than 0")
	}
	if termMonths < 1 {
		return nil, shared.NewValidationError("Debt term must be at least 1 month")
	}
	return &Debt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SaleID:            saleID,
		TotalDebt:         total,
		PaidAmount:        decimal.Zero,
		Time:              termMonths,
		FirstDueDate:      firstDue,
		NextDueDate:       firstDue,
		Status:            DebtStatusOpen,
	}, nil
}

// MonthlyInstallment returns total_debt / time
func (d *Debt) MonthlyInstallment() decimal.Decimal {
	return d.TotalDebt.Div(decimal.NewFromInt(int64(d.Time)))
}

// MonthsCovered returns how many full monthly installments the given paid
// amount satisfies: floor(paid / (total / time)). It is computed as the
// integer quotient of paid*time by total so no rounding is involved.
func (d *Debt) MonthsCovered(paid decimal.Decimal) int {
	if !d.TotalDebt.IsPositive() || !paid.IsPositive() {
		return 0
	}
	q, _ := paid.Mul(decimal.NewFromInt(int64(d.Time))).QuoRem(d.TotalDebt, 0)
	return int(q.IntPart())
}

// Remaining returns the unpaid part of the debt
func (d *Debt) Remaining() decimal.Decimal {
	return d.TotalDebt.Sub(d.PaidAmount)
}

// IsClosed reports whether the debt is fully paid
func (d *Debt) IsClosed() bool {
	return d.Status == DebtStatusClosed
}

// RequireOpen fails when the debt is already fully paid
func (d *Debt) RequireOpen() error {
	if d.IsClosed() {
		return shared.NewInvalidStateError(fmt.Sprintf("Debt %s is already fully paid", d.ID))
	}
	return nil
}

// MarkLate flags an open debt whose due date has passed. It returns true if
// the flag changed.
func (d *Debt) MarkLate(now time.Time) bool {
	if d.IsClosed() || d.IsLate || !now.After(d.NextDueDate) {
		return false
	}
	d.IsLate = true
	d.Touch()
	return true
}
