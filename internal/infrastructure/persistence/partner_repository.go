package persistence

import (
	"context"

	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityPartner = "Partner"

// GormPartnerRepository implements PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// FindByID finds a partner by ID
func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var model models.PartnerModel
	if err := findByID(ctx, r.db, &model, id, entityPartner, false); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a partner by ID and locks the row until the transaction ends
func (r *GormPartnerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var model models.PartnerModel
	if err := findByID(ctx, r.db, &model, id, entityPartner, true); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new partner
func (r *GormPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	return create(ctx, r.db, models.PartnerModelFromDomain(p), entityPartner)
}

// SaveWithLock updates a partner with optimistic locking (checks version)
func (r *GormPartnerRepository) SaveWithLock(ctx context.Context, p *partner.Partner) error {
	model := models.PartnerModelFromDomain(p)
	return saveWithLock(ctx, r.db, p, model, &model.AggregateModel, entityPartner)
}

// Delete removes a partner
func (r *GormPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.PartnerModel{}, id, entityPartner)
}

// Ensure GormPartnerRepository implements PartnerRepository
var _ partner.PartnerRepository = (*GormPartnerRepository)(nil)
