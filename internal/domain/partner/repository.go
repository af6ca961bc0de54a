package partner

import (
	"context"

	"github.com/google/uuid"
)

// PartnerRepository defines persistence operations for partners
type PartnerRepository interface {
	// FindByID loads a partner without locking
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)

	// FindByIDForUpdate loads a partner and holds a row lock until the
	// surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Partner, error)

	// Save inserts or fully updates a partner
	Save(ctx context.Context, partner *Partner) error

	// SaveWithLock updates a partner only if its version is unchanged
	SaveWithLock(ctx context.Context, partner *Partner) error

	// Delete removes a partner
	Delete(ctx context.Context, id uuid.UUID) error
}
