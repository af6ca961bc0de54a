package persistence

import (
	"context"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate is the row lock taken by every FindByIDForUpdate.
// SQLite has no row locks and its dialector drops the clause.
var lockForUpdate = clause.Locking{Strength: "UPDATE"}

// findByID loads the row with the given id into model.
func findByID(ctx context.Context, db *gorm.DB, model any, id uuid.UUID, entity string, forUpdate bool) error {
	query := db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(lockForUpdate)
	}
	return translateError(query.First(model, "id = ?", id).Error, entity)
}

// create inserts a new row.
func create(ctx context.Context, db *gorm.DB, model any, entity string) error {
	return translateError(db.WithContext(ctx).Create(model).Error, entity)
}

// saveWithLock writes every column of model guarded by the version the
// aggregate was loaded with, then bumps the aggregate's version.
// A zero-row update means someone else committed first.
func saveWithLock(ctx context.Context, db *gorm.DB, agg shared.AggregateRoot, model any, row *models.AggregateModel, entity string) error {
	expected := agg.GetVersion()
	row.Version = expected + 1

	result := db.WithContext(ctx).
		Model(model).
		Where("version = ?", expected).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error, entity)
	}
	if result.RowsAffected == 0 {
		return shared.NewConflictError(entity + " was modified by another transaction")
	}
	agg.IncrementVersion()
	return nil
}

// deleteByID hard-deletes the row with the given id.
func deleteByID(ctx context.Context, db *gorm.DB, model any, id uuid.UUID, entity string) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, entity)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(entity)
	}
	return nil
}

// countWhere counts rows of model matching column = value.
func countWhere(ctx context.Context, db *gorm.DB, model any, column string, value any, entity string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where(column+" = ?", value).Count(&count).Error
	if err != nil {
		return 0, translateError(err, entity)
	}
	return count, nil
}
