// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities carry no table mappings
// 2. Persistence models contain all GORM annotations and table mappings
// 3. ToDomain / FromDomain convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: BaseModel and AggregateModel (id, timestamps, version)
// - partner.go: partners
// - identity.go: users, salaries
// - catalog.go: categories, products
// - inventory.go: stock entries
// - trade.go: sales, returned products
// - finance.go: debts, payments
//
// Money and quantities are stored as decimal(18,4).
package models
