package persistence

import (
	"context"

	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityCategory = "Category"

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := findByID(ctx, r.db, &model, id, entityCategory, false); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new category
func (r *GormCategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	return create(ctx, r.db, models.CategoryModelFromDomain(c), entityCategory)
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
