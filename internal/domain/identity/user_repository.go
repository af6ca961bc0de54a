package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*User, error)
	Save(ctx context.Context, user *User) error
	SaveWithLock(ctx context.Context, user *User) error
}

// SalaryRepository defines persistence operations for salaries
type SalaryRepository interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Salary, error)
	Save(ctx context.Context, salary *Salary) error
	SaveWithLock(ctx context.Context, salary *Salary) error
	Delete(ctx context.Context, id uuid.UUID) error
}
