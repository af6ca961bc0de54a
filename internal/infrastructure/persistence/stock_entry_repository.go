package persistence

import (
	"context"

	"github.com/erp/installment/internal/domain/inventory"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityStockEntry = "Stock entry"

// GormStockEntryRepository implements StockEntryRepository using GORM
type GormStockEntryRepository struct {
	db *gorm.DB
}

// NewGormStockEntryRepository creates a new GormStockEntryRepository
func NewGormStockEntryRepository(db *gorm.DB) *GormStockEntryRepository {
	return &GormStockEntryRepository{db: db}
}

// FindByID finds a stock entry by ID
func (r *GormStockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockEntry, error) {
	var model models.StockEntryModel
	if err := findByID(ctx, r.db, &model, id, entityStockEntry, false); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a stock entry by ID and locks the row
func (r *GormStockEntryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.StockEntry, error) {
	var model models.StockEntryModel
	if err := findByID(ctx, r.db, &model, id, entityStockEntry, true); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new stock entry
func (r *GormStockEntryRepository) Save(ctx context.Context, e *inventory.StockEntry) error {
	return create(ctx, r.db, models.StockEntryModelFromDomain(e), entityStockEntry)
}

// SaveWithLock updates a stock entry with optimistic locking
func (r *GormStockEntryRepository) SaveWithLock(ctx context.Context, e *inventory.StockEntry) error {
	model := models.StockEntryModelFromDomain(e)
	return saveWithLock(ctx, r.db, e, model, &model.AggregateModel, entityStockEntry)
}

// Delete removes a stock entry
func (r *GormStockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.StockEntryModel{}, id, entityStockEntry)
}

// CountByPartner counts stock entries supplied by a partner
func (r *GormStockEntryRepository) CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &models.StockEntryModel{}, "partner_id", partnerID, entityStockEntry)
}

var _ inventory.StockEntryRepository = (*GormStockEntryRepository)(nil)
