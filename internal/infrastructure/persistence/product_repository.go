package persistence

import (
	"context"

	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityProduct = "Product"

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := findByID(ctx, r.db, &model, id, entityProduct, false); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a product by ID and locks the row so that stock
// and average cost are read and written by one transaction at a time
func (r *GormProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := findByID(ctx, r.db, &model, id, entityProduct, true); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new product
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	return create(ctx, r.db, models.ProductModelFromDomain(p), entityProduct)
}

// SaveWithLock updates a product with optimistic locking
func (r *GormProductRepository) SaveWithLock(ctx context.Context, p *catalog.Product) error {
	model := models.ProductModelFromDomain(p)
	return saveWithLock(ctx, r.db, p, model, &model.AggregateModel, entityProduct)
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
