package ledger

import (
	"context"

	"github.com/erp/installment/internal/domain/identity"
	"github.com/google/uuid"
)

// CreateSalary pays a user and adds the amount to the user's balance
func (o *Orchestrator) CreateSalary(ctx context.Context, cmd SalaryCommand) (*identity.Salary, error) {
	var salary *identity.Salary
	err := o.execute(ctx, "create_salary", func(ctx context.Context, repos TransactionalRepositories) error {
		var err error
		salary, err = identity.NewSalary(cmd.UserID, cmd.Amount, cmd.Comment)
		if err != nil {
			return err
		}
		l, err := newLockSet().user(cmd.UserID).acquire(ctx, repos)
		if err != nil {
			return err
		}
		user := l.users[cmd.UserID]
		if err := user.RequireActive(); err != nil {
			return err
		}
		user.ApplyBalanceDelta(salary.Amount)

		if err := repos.Salaries().Save(ctx, salary); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
	if err != nil {
		return nil, err
	}
	return salary, nil
}

// UpdateSalary moves the salary effect from the previous user and amount to
// the revised ones.
func (o *Orchestrator) UpdateSalary(ctx context.Context, cmd UpdateSalaryCommand) (*identity.Salary, error) {
	var salary *identity.Salary
	err := o.execute(ctx, "update_salary", func(ctx context.Context, repos TransactionalRepositories) error {
		var err error
		salary, err = repos.Salaries().FindByIDForUpdate(ctx, cmd.ID)
		if err != nil {
			return err
		}
		previousUser, previousAmount := salary.UserID, salary.Amount
		if err := salary.Revise(cmd.UserID, cmd.Amount, cmd.Comment); err != nil {
			return err
		}

		l, err := newLockSet().
			user(previousUser).
			user(salary.UserID).
			acquire(ctx, repos)
		if err != nil {
			return err
		}
		if salary.UserID != previousUser {
			if err := l.users[salary.UserID].RequireActive(); err != nil {
				return err
			}
		}
		l.users[previousUser].ApplyBalanceDelta(previousAmount.Neg())
		l.users[salary.UserID].ApplyBalanceDelta(salary.Amount)

		if err := repos.Salaries().SaveWithLock(ctx, salary); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
	if err != nil {
		return nil, err
	}
	return salary, nil
}

// RemoveSalary deletes a salary and takes its amount back from the user
func (o *Orchestrator) RemoveSalary(ctx context.Context, id uuid.UUID) error {
	return o.execute(ctx, "remove_salary", func(ctx context.Context, repos TransactionalRepositories) error {
		salary, err := repos.Salaries().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		l, err := newLockSet().user(salary.UserID).acquire(ctx, repos)
		if err != nil {
			return err
		}
		l.users[salary.UserID].ApplyBalanceDelta(salary.Amount.Neg())

		if err := repos.Salaries().Delete(ctx, salary.ID); err != nil {
			return err
		}
		return l.save(ctx, repos)
	})
}
