package models

import (
	"github.com/erp/installment/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEntryModel is the persistence model for the StockEntry aggregate.
type StockEntryModel struct {
	AggregateModel
	PartnerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BuyPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (StockEntryModel) TableName() string {
	return "stock_entries"
}

// ToDomain converts the persistence model to a domain StockEntry
func (m *StockEntryModel) ToDomain() *inventory.StockEntry {
	return &inventory.StockEntry{
		BaseAggregateRoot: m.ToAggregateRoot(),
		PartnerID:         m.PartnerID,
		ProductID:         m.ProductID,
		UserID:            m.UserID,
		Quantity:          m.Quantity,
		BuyPrice:          m.BuyPrice,
	}
}

// FromDomain populates the persistence model from a domain StockEntry
func (m *StockEntryModel) FromDomain(e *inventory.StockEntry) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.PartnerID = e.PartnerID
	m.ProductID = e.ProductID
	m.UserID = e.UserID
	m.Quantity = e.Quantity
	m.BuyPrice = e.BuyPrice
}

// StockEntryModelFromDomain creates a new persistence model from a domain StockEntry
func StockEntryModelFromDomain(e *inventory.StockEntry) *StockEntryModel {
	m := &StockEntryModel{}
	m.FromDomain(e)
	return m
}
