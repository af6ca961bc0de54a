package models

import (
	"time"

	"github.com/erp/installment/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtModel is the persistence model for the Debt aggregate.
type DebtModel struct {
	AggregateModel
	SaleID       uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex"`
	TotalDebt    decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	PaidAmount   decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Time         int                `gorm:"not null"`
	FirstDueDate time.Time          `gorm:"not null"`
	NextDueDate  time.Time          `gorm:"not null;index"`
	IsLate       bool               `gorm:"not null;default:false"`
	Status       finance.DebtStatus `gorm:"type:varchar(20);not null;default:'OPEN';index"`
}

// TableName returns the table name for GORM
func (DebtModel) TableName() string {
	return "debts"
}

// ToDomain converts the persistence model to a domain Debt
func (m *DebtModel) ToDomain() *finance.Debt {
	return &finance.Debt{
		BaseAggregateRoot: m.ToAggregateRoot(),
		SaleID:            m.SaleID,
		TotalDebt:         m.TotalDebt,
		PaidAmount:        m.PaidAmount,
		Time:              m.Time,
		FirstDueDate:      m.FirstDueDate,
		NextDueDate:       m.NextDueDate,
		IsLate:            m.IsLate,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Debt
func (m *DebtModel) FromDomain(d *finance.Debt) {
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	m.SaleID = d.SaleID
	m.TotalDebt = d.TotalDebt
	m.PaidAmount = d.PaidAmount
	m.Time = d.Time
	m.FirstDueDate = d.FirstDueDate
	m.NextDueDate = d.NextDueDate
	m.IsLate = d.IsLate
	m.Status = d.Status
}

// DebtModelFromDomain creates a new persistence model from a domain Debt
func DebtModelFromDomain(d *finance.Debt) *DebtModel {
	m := &DebtModel{}
	m.FromDomain(d)
	return m
}

// PaymentModel is the persistence model for the Payment aggregate.
type PaymentModel struct {
	AggregateModel
	PartnerID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null"`
	DebtID      *uuid.UUID          `gorm:"type:uuid;index"`
	Amount      decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Type        finance.PaymentFlow `gorm:"type:varchar(10);not null"`
	PaymentType finance.PaymentType `gorm:"type:varchar(20);not null"`
	Comment     string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		BaseAggregateRoot: m.ToAggregateRoot(),
		PartnerID:         m.PartnerID,
		UserID:            m.UserID,
		DebtID:            m.DebtID,
		Amount:            m.Amount,
		Type:              m.Type,
		PaymentType:       m.PaymentType,
		Comment:           m.Comment,
	}
}

// FromDomain populates the persistence model from a domain Payment
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.PartnerID = p.PartnerID
	m.UserID = p.UserID
	m.DebtID = p.DebtID
	m.Amount = p.Amount
	m.Type = p.Type
	m.PaymentType = p.PaymentType
	m.Comment = p.Comment
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// AllModels lists every ledger model, in dependency order, for auto-migration in tests
func AllModels() []any {
	return []any{
		&PartnerModel{},
		&UserModel{},
		&SalaryModel{},
		&CategoryModel{},
		&ProductModel{},
		&StockEntryModel{},
		&SaleModel{},
		&ReturnedProductModel{},
		&DebtModel{},
		&PaymentModel{},
	}
}
