package finance

import (
	"fmt"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType is the payment instrument
type PaymentType string

const (
	PaymentTypeCash         PaymentType = "CASH"
	PaymentTypeCard         PaymentType = "CARD"
	PaymentTypeBankTransfer PaymentType = "BANK_TRANSFER"
)

// IsValid returns true if the payment type is known
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeCash, PaymentTypeCard, PaymentTypeBankTransfer:
		return true
	}
	return false
}

// Payment is a cash movement between the business and a partner, handled by a user
type Payment struct {
	shared.BaseAggregateRoot
	PartnerID   uuid.UUID
	UserID      uuid.UUID
	DebtID      *uuid.UUID
	Amount      decimal.Decimal
	Type        PaymentFlow
	PaymentType PaymentType
	Comment     string
}

// PaymentDraft holds the caller-supplied fields of a payment
type PaymentDraft struct {
	PartnerID   uuid.UUID
	UserID      uuid.UUID
	DebtID      *uuid.UUID
	Amount      decimal.Decimal
	Type        PaymentFlow
	PaymentType PaymentType
	Comment     string
}

// Validate checks the draft's own fields; partner and debt rules are
// checked by PaymentFlow.Validate once they are loaded
func (d PaymentDraft) Validate() error {
	if d.PartnerID == uuid.Nil {
		return shared.NewValidationError("Partner ID is required")
	}
	if d.UserID == uuid.Nil {
		return shared.NewValidationError("User ID is required")
	}
	if !d.Type.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Invalid payment type: %s", d.Type))
	}
	if !d.PaymentType.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Invalid payment method: %s", d.PaymentType))
	}
	return shared.ValidateAmount("amount", d.Amount)
}

// NewPayment creates a payment from a validated draft
func NewPayment(d PaymentDraft) (*Payment, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PartnerID:         d.PartnerID,
		UserID:            d.UserID,
		DebtID:            d.DebtID,
		Amount:            d.Amount,
		Type:              d.Type,
		PaymentType:       d.PaymentType,
		Comment:           d.Comment,
	}, nil
}

// Draft returns the payment's current fields
func (p *Payment) Draft() PaymentDraft {
	return PaymentDraft{
		PartnerID:   p.PartnerID,
		UserID:      p.UserID,
		DebtID:      p.DebtID,
		Amount:      p.Amount,
		Type:        p.Type,
		PaymentType: p.PaymentType,
		Comment:     p.Comment,
	}
}

// Revise replaces the payment's fields. The payment type is fixed at
// creation; an empty PaymentType in the draft keeps the current one.
func (p *Payment) Revise(d PaymentDraft) error {
	if d.PaymentType == "" {
		d.PaymentType = p.PaymentType
	}
	if d.PaymentType != p.PaymentType {
		return shared.NewValidationError("payment_type cannot be changed after creation")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	p.PartnerID = d.PartnerID
	p.UserID = d.UserID
	p.DebtID = d.DebtID
	p.Amount = d.Amount
	p.Type = d.Type
	p.Comment = d.Comment
	p.Touch()
	return nil
}

// BalanceEffect returns the delta this payment applies to its partner's balance
func (p *Payment) BalanceEffect() decimal.Decimal {
	return p.Type.BalanceEffect(p.Amount)
}
