package persistence

import (
	"context"

	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/identity"
	"github.com/erp/installment/internal/domain/inventory"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements ledger.TransactionScope using GORM transactions.
// Every repository handed to the callback shares one transaction.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos ledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Partners() partner.PartnerRepository {
	return NewGormPartnerRepository(r.tx)
}

func (r *gormTransactionalRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

func (r *gormTransactionalRepositories) Salaries() identity.SalaryRepository {
	return NewGormSalaryRepository(r.tx)
}

func (r *gormTransactionalRepositories) Categories() catalog.CategoryRepository {
	return NewGormCategoryRepository(r.tx)
}

func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) StockEntries() inventory.StockEntryRepository {
	return NewGormStockEntryRepository(r.tx)
}

func (r *gormTransactionalRepositories) Sales() trade.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *gormTransactionalRepositories) Returns() trade.ReturnedProductRepository {
	return NewGormReturnedProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) Debts() finance.DebtRepository {
	return NewGormDebtRepository(r.tx)
}

func (r *gormTransactionalRepositories) Payments() finance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ ledger.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ ledger.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
