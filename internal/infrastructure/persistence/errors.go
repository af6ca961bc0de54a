package persistence

import (
	"errors"
	"fmt"

	"github.com/erp/installment/internal/domain/shared"
	"gorm.io/gorm"
)

// SQLSTATE codes with a domain meaning
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
)

// sqlStateError is satisfied by both *pq.Error and *pgconn.PgError.
type sqlStateError interface {
	error
	SQLState() string
}

// translateError maps driver and gorm errors onto domain errors for entity.
// Errors it does not recognise are wrapped and returned for the unit of work
// to classify as internal failures.
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(entity)
	}
	var stateErr sqlStateError
	if errors.As(err, &stateErr) {
		switch stateErr.SQLState() {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
			return shared.NewConflictError(entity + " is locked by a concurrent transaction")
		case sqlStateUniqueViolation:
			return shared.NewConflictError(entity + " already exists")
		case sqlStateForeignKeyViolation:
			return shared.NewInvalidStateError(entity + " is referenced by other records")
		}
	}
	return fmt.Errorf("%s: %w", entity, err)
}
