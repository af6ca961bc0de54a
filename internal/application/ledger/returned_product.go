package ledger

import (
	"context"

	"github.com/erp/installment/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateReturnedProduct credits the sale's partner with quantity * sale price
// and puts resellable units back into stock.
func (o *Orchestrator) CreateReturnedProduct(ctx context.Context, cmd ReturnCommand) (*trade.ReturnedProduct, error) {
	var returned *trade.ReturnedProduct
	err := o.execute(ctx, "create_returned_product", func(ctx context.Context, repos TransactionalRepositories) error {
		sale, err := repos.Sales().FindByID(ctx, cmd.SaleID)
		if err != nil {
			return err
		}
		returned, err = trade.NewReturnedProduct(sale, cmd.ProductID, cmd.Quantity, cmd.IsResellable)
		if err != nil {
			return err
		}

		var effects returnEffects
		effects.apply(returned, sale)
		if err := effects.commit(ctx, repos); err != nil {
			return err
		}
		return repos.Returns().Save(ctx, returned)
	})
	if err != nil {
		return nil, err
	}
	return returned, nil
}

// UpdateReturnedProduct reverses the return's previous credit and restock
// and applies the revised ones. The return may move to another sale.
func (o *Orchestrator) UpdateReturnedProduct(ctx context.Context, cmd UpdateReturnCommand) (*trade.ReturnedProduct, error) {
	var returned *trade.ReturnedProduct
	err := o.execute(ctx, "update_returned_product", func(ctx context.Context, repos TransactionalRepositories) error {
		var err error
		returned, err = repos.Returns().FindByIDForUpdate(ctx, cmd.ID)
		if err != nil {
			return err
		}
		previousSale, err := repos.Sales().FindByID(ctx, returned.SaleID)
		if err != nil {
			return err
		}
		sale := previousSale
		if cmd.SaleID != previousSale.ID {
			if sale, err = repos.Sales().FindByID(ctx, cmd.SaleID); err != nil {
				return err
			}
		}

		var effects returnEffects
		effects.reverse(returned, previousSale)
		if err := returned.Revise(sale, cmd.ProductID, cmd.Quantity, cmd.IsResellable); err != nil {
			return err
		}
		effects.apply(returned, sale)
		if err := effects.commit(ctx, repos); err != nil {
			return err
		}
		return repos.Returns().SaveWithLock(ctx, returned)
	})
	if err != nil {
		return nil, err
	}
	return returned, nil
}

// RemoveReturnedProduct deletes a return, takes back the partner credit and
// removes restocked units from stock.
func (o *Orchestrator) RemoveReturnedProduct(ctx context.Context, id uuid.UUID) error {
	return o.execute(ctx, "remove_returned_product", func(ctx context.Context, repos TransactionalRepositories) error {
		returned, err := repos.Returns().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		sale, err := repos.Sales().FindByID(ctx, returned.SaleID)
		if err != nil {
			return err
		}

		var effects returnEffects
		effects.reverse(returned, sale)
		if err := effects.commit(ctx, repos); err != nil {
			return err
		}
		return repos.Returns().Delete(ctx, returned.ID)
	})
}

// returnEffects nets the balance and stock movements of a return before they
// are applied, so that moving units between two returns of the same product
// never dips stock below zero in between.
type returnEffects struct {
	balances map[uuid.UUID]decimal.Decimal
	stock    map[uuid.UUID]decimal.Decimal
}

func (e *returnEffects) add(partnerID uuid.UUID, credit decimal.Decimal, productID uuid.UUID, restock decimal.Decimal) {
	if e.balances == nil {
		e.balances = make(map[uuid.UUID]decimal.Decimal)
		e.stock = make(map[uuid.UUID]decimal.Decimal)
	}
	e.balances[partnerID] = e.balances[partnerID].Add(credit)
	if !restock.IsZero() {
		e.stock[productID] = e.stock[productID].Add(restock)
	}
}

func (e *returnEffects) apply(r *trade.ReturnedProduct, sale *trade.Sale) {
	e.add(sale.PartnerID, r.Credit(sale), r.ProductID, r.RestockedQuantity())
}

func (e *returnEffects) reverse(r *trade.ReturnedProduct, sale *trade.Sale) {
	e.add(sale.PartnerID, r.Credit(sale).Neg(), r.ProductID, r.RestockedQuantity().Neg())
}

// commit locks the affected partners and products and applies the net effects
func (e *returnEffects) commit(ctx context.Context, repos TransactionalRepositories) error {
	set := newLockSet()
	for id := range e.balances {
		set.partner(id)
	}
	for id, delta := range e.stock {
		if !delta.IsZero() {
			set.product(id)
		}
	}
	l, err := set.acquire(ctx, repos)
	if err != nil {
		return err
	}
	for id, delta := range e.balances {
		l.partners[id].ApplyBalanceDelta(delta)
	}
	for id, delta := range e.stock {
		if product, ok := l.products[id]; ok {
			if err := product.Restock(delta); err != nil {
				return err
			}
		}
	}
	return l.save(ctx, repos)
}
