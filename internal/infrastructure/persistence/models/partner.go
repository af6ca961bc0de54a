package models

import (
	"github.com/erp/installment/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// PartnerModel is the persistence model for the Partner aggregate.
type PartnerModel struct {
	AggregateModel
	Name     string          `gorm:"type:varchar(200);not null"`
	Phone    string          `gorm:"type:varchar(50);index"`
	Role     partner.Role    `gorm:"type:varchar(20);not null;index"`
	Balance  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsActive bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PartnerModel) TableName() string {
	return "partners"
}

// ToDomain converts the persistence model to a domain Partner
func (m *PartnerModel) ToDomain() *partner.Partner {
	return &partner.Partner{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Name:              m.Name,
		Phone:             m.Phone,
		Role:              m.Role,
		Balance:           m.Balance,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Partner
func (m *PartnerModel) FromDomain(p *partner.Partner) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Phone = p.Phone
	m.Role = p.Role
	m.Balance = p.Balance
	m.IsActive = p.IsActive
}

// PartnerModelFromDomain creates a new persistence model from a domain Partner
func PartnerModelFromDomain(p *partner.Partner) *PartnerModel {
	m := &PartnerModel{}
	m.FromDomain(p)
	return m
}
