package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DebtRepository defines persistence operations for debts
type DebtRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Debt, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Debt, error)
	FindBySaleID(ctx context.Context, saleID uuid.UUID) (*Debt, error)
	Save(ctx context.Context, debt *Debt) error
	SaveWithLock(ctx context.Context, debt *Debt) error
	// FindOverdueForUpdate locks up to limit open, not-yet-late debts whose
	// next due date is before now. Rows locked by other transactions are skipped.
	FindOverdueForUpdate(ctx context.Context, now time.Time, limit int) ([]*Debt, error)
}

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Payment, error)
	Save(ctx context.Context, payment *Payment) error
	SaveWithLock(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error)
}
