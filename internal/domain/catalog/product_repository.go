package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	Save(ctx context.Context, product *Product) error
	SaveWithLock(ctx context.Context, product *Product) error
}

// CategoryRepository defines read access to categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Save(ctx context.Context, category *Category) error
}
