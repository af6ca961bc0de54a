package ledger

import (
	"context"

	"github.com/erp/installment/internal/domain/inventory"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/google/uuid"
)

func (c StockEntryCommand) line() inventory.ReceiptLine {
	return inventory.ReceiptLine{
		PartnerID: c.PartnerID,
		ProductID: c.ProductID,
		UserID:    c.UserID,
		Quantity:  c.Quantity,
		BuyPrice:  c.BuyPrice,
	}
}

// CreateStockEntry folds a purchase receipt into the product's quantity and
// weighted-average cost and debits the seller by the receipt total.
func (o *Orchestrator) CreateStockEntry(ctx context.Context, cmd StockEntryCommand) (*inventory.StockEntry, error) {
	var entry *inventory.StockEntry
	err := o.execute(ctx, "create_stock_entry", func(ctx context.Context, repos TransactionalRepositories) error {
		line := cmd.line()
		if err := line.Validate(); err != nil {
			return err
		}
		if err := o.requireActiveUser(ctx, repos, line.UserID); err != nil {
			return err
		}

		l, err := newLockSet().
			partner(line.PartnerID).
			product(line.ProductID).
			acquire(ctx, repos)
		if err != nil {
			return err
		}
		if err := requireReceiptTargets(l, line); err != nil {
			return err
		}

		entry, err = inventory.NewStockEntry(line)
		if err != nil {
			return err
		}
		l.products[line.ProductID].ReceiveStock(entry.Quantity, entry.BuyPrice)
		l.partners[line.PartnerID].ApplyBalanceDelta(entry.Total().Neg())

		if err := repos.StockEntries().Save(ctx, entry); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateStockEntry reverses the receipt's previous contribution from its
// original product and seller, then applies the revised one, possibly to a
// different product and seller.
func (o *Orchestrator) UpdateStockEntry(ctx context.Context, cmd UpdateStockEntryCommand) (*inventory.StockEntry, error) {
	var entry *inventory.StockEntry
	err := o.execute(ctx, "update_stock_entry", func(ctx context.Context, repos TransactionalRepositories) error {
		var err error
		entry, err = repos.StockEntries().FindByIDForUpdate(ctx, cmd.ID)
		if err != nil {
			return err
		}
		previous := entry.Line()
		previousTotal := entry.Total()

		line := cmd.line()
		if err := entry.Revise(line); err != nil {
			return err
		}
		if err := o.requireActiveUser(ctx, repos, line.UserID); err != nil {
			return err
		}

		l, err := newLockSet().
			partner(previous.PartnerID).
			partner(line.PartnerID).
			product(previous.ProductID).
			product(line.ProductID).
			acquire(ctx, repos)
		if err != nil {
			return err
		}
		if err := requireReceiptTargets(l, line); err != nil {
			return err
		}

		if previous.ProductID == line.ProductID {
			err = l.products[line.ProductID].ReviseReceipt(
				previous.Quantity, previous.BuyPrice, line.Quantity, line.BuyPrice)
		} else {
			err = l.products[previous.ProductID].RevertReceipt(previous.Quantity, previous.BuyPrice)
			if err == nil {
				l.products[line.ProductID].ReceiveStock(line.Quantity, line.BuyPrice)
			}
		}
		if err != nil {
			return err
		}

		l.partners[previous.PartnerID].ApplyBalanceDelta(previousTotal)
		l.partners[line.PartnerID].ApplyBalanceDelta(entry.Total().Neg())

		if err := repos.StockEntries().SaveWithLock(ctx, entry); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveStockEntry deletes a receipt, reverses its cost contribution and
// refunds the seller.
func (o *Orchestrator) RemoveStockEntry(ctx context.Context, id uuid.UUID) error {
	return o.execute(ctx, "remove_stock_entry", func(ctx context.Context, repos TransactionalRepositories) error {
		entry, err := repos.StockEntries().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		l, err := newLockSet().
			partner(entry.PartnerID).
			product(entry.ProductID).
			acquire(ctx, repos)
		if err != nil {
			return err
		}
		if err := l.products[entry.ProductID].RevertReceipt(entry.Quantity, entry.BuyPrice); err != nil {
			return err
		}
		l.partners[entry.PartnerID].ApplyBalanceDelta(entry.Total())

		if err := repos.StockEntries().Delete(ctx, entry.ID); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
}

// requireReceiptTargets checks the seller and product a receipt is applied to
func requireReceiptTargets(l *locked, line inventory.ReceiptLine) error {
	seller := l.partners[line.PartnerID]
	if err := seller.RequireActive(); err != nil {
		return err
	}
	if err := seller.RequireRole(partner.RoleSeller); err != nil {
		return err
	}
	return l.products[line.ProductID].RequireActive()
}
