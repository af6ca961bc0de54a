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
	"github.com/stretchr/testify/mock"
)

// MockLedgerService implements LedgerService for testing
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateSale(ctx context.Context, cmd ledger.CreateSaleCommand) (*ledger.SaleResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.SaleResult), args.Error(1)
}

func (m *MockLedgerService) CreatePayment(ctx context.Context, cmd ledger.CreatePaymentCommand) (*finance.Payment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockLedgerService) UpdatePayment(ctx context.Context, cmd ledger.UpdatePaymentCommand) (*finance.Payment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockLedgerService) RemovePayment(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLedgerService) CreateStockEntry(ctx context.Context, cmd ledger.StockEntryCommand) (*inventory.StockEntry, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockEntry), args.Error(1)
}

func (m *MockLedgerService) UpdateStockEntry(ctx context.Context, cmd ledger.UpdateStockEntryCommand) (*inventory.StockEntry, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockEntry), args.Error(1)
}

func (m *MockLedgerService) RemoveStockEntry(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLedgerService) CreateReturnedProduct(ctx context.Context, cmd ledger.ReturnCommand) (*trade.ReturnedProduct, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.ReturnedProduct), args.Error(1)
}

func (m *MockLedgerService) UpdateReturnedProduct(ctx context.Context, cmd ledger.UpdateReturnCommand) (*trade.ReturnedProduct, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.ReturnedProduct), args.Error(1)
}

func (m *MockLedgerService) RemoveReturnedProduct(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLedgerService) CreateSalary(ctx context.Context, cmd ledger.SalaryCommand) (*identity.Salary, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Salary), args.Error(1)
}

func (m *MockLedgerService) UpdateSalary(ctx context.Context, cmd ledger.UpdateSalaryCommand) (*identity.Salary, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Salary), args.Error(1)
}

func (m *MockLedgerService) RemoveSalary(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLedgerService) RemovePartner(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLedgerService) MarkOverdueDebts(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerService) GetPartner(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockLedgerService) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockLedgerService) GetUser(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockLedgerService) GetSale(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockLedgerService) GetDebt(ctx context.Context, id uuid.UUID) (*finance.Debt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Debt), args.Error(1)
}

func (m *MockLedgerService) GetDebtBySale(ctx context.Context, saleID uuid.UUID) (*finance.Debt, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Debt), args.Error(1)
}

func (m *MockLedgerService) GetPayment(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}
