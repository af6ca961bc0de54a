package persistence

import (
	"context"

	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityPayment = "Payment"

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var model models.PaymentModel
	if err := findByID(ctx, r.db, &model, id, entityPayment, false); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a payment by ID and locks the row
func (r *GormPaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var model models.PaymentModel
	if err := findByID(ctx, r.db, &model, id, entityPayment, true); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new payment
func (r *GormPaymentRepository) Save(ctx context.Context, p *finance.Payment) error {
	return create(ctx, r.db, models.PaymentModelFromDomain(p), entityPayment)
}

// SaveWithLock updates a payment with optimistic locking
func (r *GormPaymentRepository) SaveWithLock(ctx context.Context, p *finance.Payment) error {
	model := models.PaymentModelFromDomain(p)
	return saveWithLock(ctx, r.db, p, model, &model.AggregateModel, entityPayment)
}

// Delete removes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.PaymentModel{}, id, entityPayment)
}

// CountByPartner counts payments made by or to a partner
func (r *GormPaymentRepository) CountByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &models.PaymentModel{}, "partner_id", partnerID, entityPayment)
}

var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
