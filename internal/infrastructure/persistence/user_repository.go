package persistence

import (
	"context"

	"github.com/erp/installment/internal/domain/identity"
	"github.com/erp/installment/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	entityUser   = "User"
	entitySalary = "Salary"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := findByID(ctx, r.db, &model, id, entityUser, false); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a user by ID and locks the row
func (r *GormUserRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := findByID(ctx, r.db, &model, id, entityUser, true); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new user
func (r *GormUserRepository) Save(ctx context.Context, u *identity.User) error {
	return create(ctx, r.db, models.UserModelFromDomain(u), entityUser)
}

// SaveWithLock updates a user with optimistic locking
func (r *GormUserRepository) SaveWithLock(ctx context.Context, u *identity.User) error {
	model := models.UserModelFromDomain(u)
	return saveWithLock(ctx, r.db, u, model, &model.AggregateModel, entityUser)
}

// GormSalaryRepository implements SalaryRepository using GORM
type GormSalaryRepository struct {
	db *gorm.DB
}

// NewGormSalaryRepository creates a new GormSalaryRepository
func NewGormSalaryRepository(db *gorm.DB) *GormSalaryRepository {
	return &GormSalaryRepository{db: db}
}

// FindByIDForUpdate finds a salary by ID and locks the row
func (r *GormSalaryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*identity.Salary, error) {
	var model models.SalaryModel
	if err := findByID(ctx, r.db, &model, id, entitySalary, true); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts a new salary
func (r *GormSalaryRepository) Save(ctx context.Context, s *identity.Salary) error {
	return create(ctx, r.db, models.SalaryModelFromDomain(s), entitySalary)
}

// SaveWithLock updates a salary with optimistic locking
func (r *GormSalaryRepository) SaveWithLock(ctx context.Context, s *identity.Salary) error {
	model := models.SalaryModelFromDomain(s)
	return saveWithLock(ctx, r.db, s, model, &model.AggregateModel, entitySalary)
}

// Delete removes a salary
func (r *GormSalaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.SalaryModel{}, id, entitySalary)
}

var (
	_ identity.UserRepository   = (*GormUserRepository)(nil)
	_ identity.SalaryRepository = (*GormSalaryRepository)(nil)
)
