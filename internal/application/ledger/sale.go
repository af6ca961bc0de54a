package ledger

import (
	"context"

	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/trade"
)

// CreateSale withdraws the sold units from stock, opens the sale's debt and
// debits the customer by quantity * sell price.
func (o *Orchestrator) CreateSale(ctx context.Context, cmd CreateSaleCommand) (*SaleResult, error) {
	var result *SaleResult
	err := o.execute(ctx, "create_sale", func(ctx context.Context, repos TransactionalRepositories) error {
		if err := o.requireActiveUser(ctx, repos, cmd.UserID); err != nil {
			return err
		}
		if cmd.StockEntryID != nil {
			if _, err := repos.StockEntries().FindByID(ctx, *cmd.StockEntryID); err != nil {
				return err
			}
		}

		l, err := newLockSet().
			partner(cmd.PartnerID).
			product(cmd.ProductID).
			acquire(ctx, repos)
		if err != nil {
			return err
		}

		customer := l.partners[cmd.PartnerID]
		if err := customer.RequireActive(); err != nil {
			return err
		}
		if err := customer.RequireRole(partner.RoleCustomer); err != nil {
			return err
		}
		product := l.products[cmd.ProductID]
		if err := product.RequireActive(); err != nil {
			return err
		}

		term := cmd.Time
		if term == 0 {
			category, err := repos.Categories().FindByID(ctx, product.CategoryID)
			if err != nil {
				return err
			}
			term = category.Time
		}

		sale, err := trade.NewSale(trade.SaleLine{
			PartnerID:    cmd.PartnerID,
			ProductID:    cmd.ProductID,
			UserID:       cmd.UserID,
			StockEntryID: cmd.StockEntryID,
			Quantity:     cmd.Quantity,
			SellPrice:    cmd.SellPrice,
			Time:         term,
		})
		if err != nil {
			return err
		}
		if err := product.Withdraw(sale.Quantity); err != nil {
			return err
		}

		firstDue := o.now().AddDate(0, 0, o.cfg.FirstDueInDays)
		debt, err := finance.NewDebt(sale.ID, sale.Total(), sale.Time, firstDue)
		if err != nil {
			return err
		}
		customer.ApplyBalanceDelta(sale.Total().Neg())

		if err := repos.Sales().Save(ctx, sale); err != nil {
			return err
		}
		if err := repos.Debts().Save(ctx, debt); err != nil {
			return err
		}
		if err := l.save(ctx, repos); err != nil {
			return err
		}
		result = &SaleResult{Sale: sale, Debt: debt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if o.metrics != nil {
		o.metrics.RecordSale(ctx, result.Sale.Total())
	}
	return result, nil
}
