package models

import (
	"github.com/erp/installment/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel is the persistence model for the Sale aggregate.
type SaleModel struct {
	AggregateModel
	PartnerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null"`
	StockEntryID *uuid.UUID      `gorm:"type:uuid"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SellPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Time         int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale
func (m *SaleModel) ToDomain() *trade.Sale {
	return &trade.Sale{
		BaseAggregateRoot: m.ToAggregateRoot(),
		PartnerID:         m.PartnerID,
		ProductID:         m.ProductID,
		UserID:            m.UserID,
		StockEntryID:      m.StockEntryID,
		Quantity:          m.Quantity,
		SellPrice:         m.SellPrice,
		Time:              m.Time,
	}
}

// FromDomain populates the persistence model from a domain Sale
func (m *SaleModel) FromDomain(s *trade.Sale) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.PartnerID = s.PartnerID
	m.ProductID = s.ProductID
	m.UserID = s.UserID
	m.StockEntryID = s.StockEntryID
	m.Quantity = s.Quantity
	m.SellPrice = s.SellPrice
	m.Time = s.Time
}

// SaleModelFromDomain creates a new persistence model from a domain Sale
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}

// ReturnedProductModel is the persistence model for the ReturnedProduct aggregate.
type ReturnedProductModel struct {
	AggregateModel
	SaleID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IsResellable bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ReturnedProductModel) TableName() string {
	return "returned_products"
}

// ToDomain converts the persistence model to a domain ReturnedProduct
func (m *ReturnedProductModel) ToDomain() *trade.ReturnedProduct {
	return &trade.ReturnedProduct{
		BaseAggregateRoot: m.ToAggregateRoot(),
		SaleID:            m.SaleID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		IsResellable:      m.IsResellable,
	}
}

// FromDomain populates the persistence model from a domain ReturnedProduct
func (m *ReturnedProductModel) FromDomain(r *trade.ReturnedProduct) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.SaleID = r.SaleID
	m.ProductID = r.ProductID
	m.Quantity = r.Quantity
	m.IsResellable = r.IsResellable
}

// ReturnedProductModelFromDomain creates a new persistence model from a domain ReturnedProduct
func ReturnedProductModelFromDomain(r *trade.ReturnedProduct) *ReturnedProductModel {
	m := &ReturnedProductModel{}
	m.FromDomain(r)
	return m
}
