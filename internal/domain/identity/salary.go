package identity

import (
	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Salary is a payout to a user. Its amount is reflected in the user's balance
// for as long as the salary record exists.
type Salary struct {
	shared.BaseAggregateRoot
	UserID  uuid.UUID
	Amount  decimal.Decimal
	Comment string
}

// NewSalary creates a salary record after validating the amount
func NewSalary(userID uuid.UUID, amount decimal.Decimal, comment string) (*Salary, error) {
	if userID == uuid.Nil {
		return nil, shared.NewValidationError("User ID is required")
	}
	if err := shared.ValidateAmount("amount", amount); err != nil {
		return nil, err
	}
	return &Salary{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Amount:            amount,
		Comment:           comment,
	}, nil
}

// Revise changes the paid user and amount. The caller is responsible for
// moving the balance effect between users.
func (s *Salary) Revise(userID uuid.UUID, amount decimal.Decimal, comment string) error {
	if userID == uuid.Nil {
		return shared.NewValidationError("User ID is required")
	}
	if err := shared.ValidateAmount("amount", amount); err != nil {
		return err
	}
	s.UserID = userID
	s.Amount = amount
	s.Comment = comment
	s.Touch()
	return nil
}
