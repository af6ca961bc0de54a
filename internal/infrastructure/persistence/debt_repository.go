package persistence

import (
	"context"
	"time"

	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityDebt = "Debt"

// GormDebtRepository implements DebtRepository using GORM
type GormDebtRepository struct {
	db *gorm.DB
}

// NewGormDebtRepository creates a new GormDebtRepository
func NewGormDebtRepository(db *gorm.DB) *GormDebtRepository {
	return &GormDebtRepository{db: db}
}

// FindByID finds a debt by ID
func (r *GormDebtRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Debt, error) {
	var model models.DebtModel
	if err := findByID(ctx, r.db, &model, id, entityDebt, false); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a debt by ID and locks the row
func (r *GormDebtRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*finance.Debt, error) {
	var model models.DebtModel
	if err := findByID(ctx, r.db, &model, id, entityDebt, true); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySaleID finds the debt opened by a sale
func (r *GormDebtRepository) FindBySaleID(ctx context.Context, saleID uuid.UUID) (*finance.Debt, error) {
	var model models.DebtModel
	if err := r.db.WithContext(ctx).First(&model, "sale_id = ?", saleID).Error; err != nil {
		return nil, translateError(err, entityDebt)
	}
	return model.ToDomain(), nil
}

// Save inserts a new debt
func (r *GormDebtRepository) Save(ctx context.Context, d *finance.Debt) error {
	return create(ctx, r.db, models.DebtModelFromDomain(d), entityDebt)
}

// SaveWithLock updates a debt with optimistic locking
func (r *GormDebtRepository) SaveWithLock(ctx context.Context, d *finance.Debt) error {
	model := models.DebtModelFromDomain(d)
	return saveWithLock(ctx, r.db, d, model, &model.AggregateModel, entityDebt)
}

// FindOverdueForUpdate locks up to limit open, not-yet-late debts whose next
// due date is before now, oldest first. Rows locked by another transaction
// are skipped and picked up by a later sweep.
func (r *GormDebtRepository) FindOverdueForUpdate(ctx context.Context, now time.Time, limit int) ([]*finance.Debt, error) {
	var rows []models.DebtModel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND is_late = ? AND next_due_date < ?", finance.DebtStatusOpen, false, now).
		Order("next_due_date ASC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, entityDebt)
	}

	debts := make([]*finance.Debt, len(rows))
	for i := range rows {
		debts[i] = rows[i].ToDomain()
	}
	return debts, nil
}

var _ finance.DebtRepository = (*GormDebtRepository)(nil)
