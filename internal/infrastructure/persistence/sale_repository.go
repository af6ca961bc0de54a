package persistence

import (
	"context"

	"github.com/erp/installment/internal/domain/trade"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	entitySale            = "Sale"
	entityReturnedProduct = "Returned product"
)

// GormSaleRepository implements SaleRepository using GORM.
// Sales are immutable once written.
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var model models.SaleModel
	if err := findByID(ctx, r.db, &model, id, entitySale, false); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new sale
func (r *GormSaleRepository) Save(ctx context.Context, s *trade.Sale) error {
	return create(ctx, r.db, models.SaleModelFromDomain(s), entitySale)
}

// CountByPartner counts sales made to a partner
func (r *GormSaleRepository) CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &models.SaleModel{}, "partner_id", partnerID, entitySale)
}

// GormReturnedProductRepository implements ReturnedProductRepository using GORM
type GormReturnedProductRepository struct {
	db *gorm.DB
}

// NewGormReturnedProductRepository creates a new GormReturnedProductRepository
func NewGormReturnedProductRepository(db *gorm.DB) *GormReturnedProductRepository {
	return &GormReturnedProductRepository{db: db}
}

// FindByIDForUpdate finds a return by ID and locks the row
func (r *GormReturnedProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*trade.ReturnedProduct, error) {
	var model models.ReturnedProductModel
	if err := findByID(ctx, r.db, &model, id, entityReturnedProduct, true); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new return
func (r *GormReturnedProductRepository) Save(ctx context.Context, rp *trade.ReturnedProduct) error {
	return create(ctx, r.db, models.ReturnedProductModelFromDomain(rp), entityReturnedProduct)
}

// SaveWithLock updates a return with optimistic locking
func (r *GormReturnedProductRepository) SaveWithLock(ctx context.Context, rp *trade.ReturnedProduct) error {
	model := models.ReturnedProductModelFromDomain(rp)
	return saveWithLock(ctx, r.db, rp, model, &model.AggregateModel, entityReturnedProduct)
}

// Delete removes a return
func (r *GormReturnedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.ReturnedProductModel{}, id, entityReturnedProduct)
}

var (
	_ trade.SaleRepository            = (*GormSaleRepository)(nil)
	_ trade.ReturnedProductRepository = (*GormReturnedProductRepository)(nil)
)
