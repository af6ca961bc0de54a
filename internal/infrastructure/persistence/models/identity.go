package models

import (
	"github.com/erp/installment/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel is the persistence model for the User aggregate.
type UserModel struct {
	AggregateModel
	Name     string          `gorm:"type:varchar(200);not null"`
	Phone    string          `gorm:"type:varchar(50)"`
	Balance  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsActive bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Name:              m.Name,
		Phone:             m.Phone,
		Balance:           m.Balance,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain User
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Name = u.Name
	m.Phone = u.Phone
	m.Balance = u.Balance
	m.IsActive = u.IsActive
}

// UserModelFromDomain creates a new persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// SalaryModel is the persistence model for the Salary aggregate.
type SalaryModel struct {
	AggregateModel
	UserID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Comment string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SalaryModel) TableName() string {
	return "salaries"
}

// ToDomain converts the persistence model to a domain Salary
func (m *SalaryModel) ToDomain() *identity.Salary {
	return &identity.Salary{
		BaseAggregateRoot: m.ToAggregateRoot(),
		UserID:            m.UserID,
		Amount:            m.Amount,
		Comment:           m.Comment,
	}
}

// FromDomain populates the persistence model from a domain Salary
func (m *SalaryModel) FromDomain(s *identity.Salary) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.UserID = s.UserID
	m.Amount = s.Amount
	m.Comment = s.Comment
}

// SalaryModelFromDomain creates a new persistence model from a domain Salary
func SalaryModelFromDomain(s *identity.Salary) *SalaryModel {
	m := &SalaryModel{}
	m.FromDomain(s)
	return m
}
