package ledger

import (
	"context"

	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/identity"
	"github.com/erp/installment/internal/domain/inventory"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/trade"
)

// TransactionScope runs a function inside one database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the ledger repositories bound to the
// current transaction. Every repository returned shares the same transaction.
type TransactionalRepositories interface {
	Partners() partner.PartnerRepository
	Users() identity.UserRepository
	Salaries() identity.SalaryRepository
	Categories() catalog.CategoryRepository
	Products() catalog.ProductRepository
	StockEntries() inventory.StockEntryRepository
	Sales() trade.SaleRepository
	Returns() trade.ReturnedProductRepository
	Debts() finance.DebtRepository
	Payments() finance.PaymentRepository
}
