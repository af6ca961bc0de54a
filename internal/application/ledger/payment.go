package ledger

import (
	"context"

	"github.com/erp/installment/internal/domain/finance"
	"github.com/google/uuid"
)

// CreatePayment records a cash movement. An IN payment against a debt is
// amortized; every payment credits the partner balance by its amount.
func (o *Orchestrator) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (*finance.Payment, error) {
	var payment *finance.Payment
	err := o.execute(ctx, "create_payment", func(ctx context.Context, repos TransactionalRepositories) error {
		draft := cmd.draft()
		if err := draft.Validate(); err != nil {
			return err
		}
		if err := o.requireActiveUser(ctx, repos, draft.UserID); err != nil {
			return err
		}

		l, err := newLockSet().
			partner(draft.PartnerID).
			debt(draft.DebtID).
			acquire(ctx, repos)
		if err != nil {
			return err
		}
		if err := o.validateFlow(ctx, repos, l, draft); err != nil {
			return err
		}

		payment, err = finance.NewPayment(draft)
		if err != nil {
			return err
		}
		if err := o.applyPayment(l, payment); err != nil {
			return err
		}

		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
	if err != nil {
		return nil, err
	}
	o.recordPayment(ctx, payment)
	return payment, nil
}

// UpdatePayment reverses the payment's previous balance and amortization
// effects and applies the revised ones. The partner, the flow and the
// referenced debt may all change; the payment type may not.
func (o *Orchestrator) UpdatePayment(ctx context.Context, cmd UpdatePaymentCommand) (*finance.Payment, error) {
	var payment *finance.Payment
	err := o.execute(ctx, "update_payment", func(ctx context.Context, repos TransactionalRepositories) error {
		var err error
		payment, err = repos.Payments().FindByIDForUpdate(ctx, cmd.ID)
		if err != nil {
			return err
		}
		previous := *payment

		if err := payment.Revise(cmd.draft()); err != nil {
			return err
		}
		draft := payment.Draft()
		if err := o.requireActiveUser(ctx, repos, draft.UserID); err != nil {
			return err
		}

		l, err := newLockSet().
			partner(previous.PartnerID).
			partner(draft.PartnerID).
			debt(previous.DebtID).
			debt(draft.DebtID).
			acquire(ctx, repos)
		if err != nil {
			return err
		}

		// Validate against the state without this payment, so editing the
		// payment that closed a debt is still possible.
		if err := o.reversePayment(l, &previous); err != nil {
			return err
		}
		if err := o.validateFlow(ctx, repos, l, draft); err != nil {
			return err
		}
		if err := o.applyPayment(l, payment); err != nil {
			return err
		}

		if err := repos.Payments().SaveWithLock(ctx, payment); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// RemovePayment deletes a payment and reverses its balance and amortization effects
func (o *Orchestrator) RemovePayment(ctx context.Context, id uuid.UUID) error {
	return o.execute(ctx, "remove_payment", func(ctx context.Context, repos TransactionalRepositories) error {
		payment, err := repos.Payments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		l, err := newLockSet().
			partner(payment.PartnerID).
			debt(payment.DebtID).
			acquire(ctx, repos)
		if err != nil {
			return err
		}
		if err := o.reversePayment(l, payment); err != nil {
			return err
		}
		if err := repos.Payments().Delete(ctx, payment.ID); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
}

func (o *Orchestrator) validateFlow(ctx context.Context, repos TransactionalRepositories, l *locked, draft finance.PaymentDraft) error {
	target := finance.FlowTarget{
		Partner: l.partners[draft.PartnerID],
		Debt:    l.debt(draft.DebtID),
	}
	if target.Debt != nil {
		sale, err := repos.Sales().FindByID(ctx, target.Debt.SaleID)
		if err != nil {
			return err
		}
		target.DebtOwnerID = sale.PartnerID
	}
	return draft.Type.Validate(target)
}

func (o *Orchestrator) applyPayment(l *locked, payment *finance.Payment) error {
	if debt := l.debt(payment.DebtID); debt != nil {
		if _, err := o.amortizer.Apply(debt, payment.Amount); err != nil {
			return err
		}
	}
	l.partners[payment.PartnerID].ApplyBalanceDelta(payment.BalanceEffect())
	return nil
}

func (o *Orchestrator) reversePayment(l *locked, payment *finance.Payment) error {
	if debt := l.debt(payment.DebtID); debt != nil {
		if _, err := o.amortizer.Apply(debt, payment.Amount.Neg()); err != nil {
			return err
		}
	}
	l.partners[payment.PartnerID].ApplyBalanceDelta(payment.BalanceEffect().Neg())
	return nil
}

func (o *Orchestrator) requireActiveUser(ctx context.Context, repos TransactionalRepositories, id uuid.UUID) error {
	user, err := repos.Users().FindByID(ctx, id)
	if err != nil {
		return err
	}
	return user.RequireActive()
}

func (o *Orchestrator) recordPayment(ctx context.Context, p *finance.Payment) {
	if o.metrics == nil {
		return
	}
	o.metrics.RecordPayment(ctx, p.Type.String(), string(p.PaymentType), p.Amount)
}
