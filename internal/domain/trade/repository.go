package trade

import (
	"context"

	"github.com/google/uuid"
)

// SaleRepository defines persistence operations for sales
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	Save(ctx context.Context, sale *Sale) error
	CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error)
}

// ReturnedProductRepository defines persistence operations for returns
type ReturnedProductRepository interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ReturnedProduct, error)
	Save(ctx context.Context, returned *ReturnedProduct) error
	SaveWithLock(ctx context.Context, returned *ReturnedProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
}
