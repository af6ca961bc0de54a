package ledger

import (
	"context"

	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/identity"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/trade"
	"github.com/google/uuid"
)

// GetPartner returns a partner by id
func (o *Orchestrator) GetPartner(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var result *partner.Partner
	err := o.execute(ctx, "get_partner", func(ctx context.Context, repos TransactionalRepositories) (err error) {
		result, err = repos.Partners().FindByID(ctx, id)
		return err
	})
	return result, err
}

// GetProduct returns a product by id
func (o *Orchestrator) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var result *catalog.Product
	err := o.execute(ctx, "get_product", func(ctx context.Context, repos TransactionalRepositories) (err error) {
		result, err = repos.Products().FindByID(ctx, id)
		return err
	})
	return result, err
}

// GetUser returns a user by id
func (o *Orchestrator) GetUser(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var result *identity.User
	err := o.execute(ctx, "get_user", func(ctx context.Context, repos TransactionalRepositories) (err error) {
		result, err = repos.Users().FindByID(ctx, id)
		return err
	})
	return result, err
}

// GetSale returns a sale by id
func (o *Orchestrator) GetSale(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var result *trade.Sale
	err := o.execute(ctx, "get_sale", func(ctx context.Context, repos TransactionalRepositories) (err error) {
		result, err = repos.Sales().FindByID(ctx, id)
		return err
	})
	return result, err
}

// GetDebt returns a debt by id
func (o *Orchestrator) GetDebt(ctx context.Context, id uuid.UUID) (*finance.Debt, error) {
	var result *finance.Debt
	err := o.execute(ctx, "get_debt", func(ctx context.Context, repos TransactionalRepositories) (err error) {
		result, err = repos.Debts().FindByID(ctx, id)
		return err
	})
	return result, err
}

// GetDebtBySale returns the debt opened by a sale
func (o *Orchestrator) GetDebtBySale(ctx context.Context, saleID uuid.UUID) (*finance.Debt, error) {
	var result *finance.Debt
	err := o.execute(ctx, "get_debt_by_sale", func(ctx context.Context, repos TransactionalRepositories) (err error) {
		result, err = repos.Debts().FindBySaleID(ctx, saleID)
		return err
	})
	return result, err
}

// GetPayment returns a payment by id
func (o *Orchestrator) GetPayment(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var result *finance.Payment
	err := o.execute(ctx, "get_payment", func(ctx context.Context, repos TransactionalRepositories) (err error) {
		result, err = repos.Payments().FindByID(ctx, id)
		return err
	})
	return result, err
}
