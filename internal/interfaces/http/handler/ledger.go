package handler

import (
	"context"
	"time"

	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/identity"
	"github.com/erp/installment/internal/domain/inventory"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/trade"
	"github.com/google/uuid"
)

// LedgerService is the ledger API the handlers call; *ledger.Orchestrator implements it
type LedgerService interface {
	CreateSale(ctx context.Context, cmd ledger.CreateSaleCommand) (*ledger.SaleResult, error)

	CreatePayment(ctx context.Context, cmd ledger.CreatePaymentCommand) (*finance.Payment, error)
	UpdatePayment(ctx context.Context, cmd ledger.UpdatePaymentCommand) (*finance.Payment, error)
	RemovePayment(ctx context.Context, id uuid.UUID) error

	CreateStockEntry(ctx context.Context, cmd ledger.StockEntryCommand) (*inventory.StockEntry, error)
	UpdateStockEntry(ctx context.Context, cmd ledger.UpdateStockEntryCommand) (*inventory.StockEntry, error)
	RemoveStockEntry(ctx context.Context, id uuid.UUID) error

	CreateReturnedProduct(ctx context.Context, cmd ledger.ReturnCommand) (*trade.ReturnedProduct, error)
	UpdateReturnedProduct(ctx context.Context, cmd ledger.UpdateReturnCommand) (*trade.ReturnedProduct, error)
	RemoveReturnedProduct(ctx context.Context, id uuid.UUID) error

	CreateSalary(ctx context.Context, cmd ledger.SalaryCommand) (*identity.Salary, error)
	UpdateSalary(ctx context.Context, cmd ledger.UpdateSalaryCommand) (*identity.Salary, error)
	RemoveSalary(ctx context.Context, id uuid.UUID) error

	RemovePartner(ctx context.Context, id uuid.UUID) error
	MarkOverdueDebts(ctx context.Context, now time.Time) (int, error)

	GetPartner(ctx context.Context, id uuid.UUID) (*partner.Partner, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	GetUser(ctx context.Context, id uuid.UUID) (*identity.User, error)
	GetSale(ctx context.Context, id uuid.UUID) (*trade.Sale, error)
	GetDebt(ctx context.Context, id uuid.UUID) (*finance.Debt, error)
	GetDebtBySale(ctx context.Context, saleID uuid.UUID) (*finance.Debt, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*finance.Payment, error)
}

var _ LedgerService = (*ledger.Orchestrator)(nil)

// LedgerHandler serves the ledger commands and lookups
type LedgerHandler struct {
	BaseHandler
	svc LedgerService
	now func() time.Time
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(svc LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc, now: time.Now}
}
