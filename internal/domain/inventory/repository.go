package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockEntryRepository defines persistence operations for stock entries
type StockEntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StockEntry, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*StockEntry, error)
	Save(ctx context.Context, entry *StockEntry) error
	SaveWithLock(ctx context.Context, entry *StockEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error)
}
