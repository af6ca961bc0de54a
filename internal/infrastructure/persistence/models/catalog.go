package models

import (
	"github.com/erp/installment/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for the Category aggregate.
type CategoryModel struct {
	AggregateModel
	Title string `gorm:"type:varchar(200);not null"`
	Time  int    `gorm:"not null;default:12"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Title:             m.Title,
		Time:              m.Time,
	}
}

// FromDomain populates the persistence model from a domain Category
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Title = c.Title
	m.Time = c.Time
}

// CategoryModelFromDomain creates a new persistence model from a domain Category
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// ProductModel is the persistence model for the Product aggregate.
// CostBasis holds the exact value of the stock on hand; BuyPrice is the
// weighted-average unit cost derived from it.
type ProductModel struct {
	AggregateModel
	Title      string          `gorm:"type:varchar(200);not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CostBasis  decimal.Decimal `gorm:"type:decimal(28,10);not null;default:0"`
	BuyPrice   decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	SellPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsActive   bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Title:             m.Title,
		CategoryID:        m.CategoryID,
		Quantity:          m.Quantity,
		CostBasis:         m.CostBasis,
		BuyPrice:          m.BuyPrice,
		SellPrice:         m.SellPrice,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Title = p.Title
	m.CategoryID = p.CategoryID
	m.Quantity = p.Quantity
	m.CostBasis = p.CostBasis
	m.BuyPrice = p.BuyPrice
	m.SellPrice = p.SellPrice
	m.IsActive = p.IsActive
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
