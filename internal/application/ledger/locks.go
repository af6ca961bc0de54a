package ledger

import (
	"bytes"
	"context"
	"slices"

	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/identity"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/google/uuid"
)

// lockSet collects the shared aggregates an operation is going to write.
// acquire locks them in a fixed order (partners, users, products, debts,
// each sorted by id) so two operations can never wait on each other in a cycle.
type lockSet struct {
	partnerIDs []uuid.UUID
	userIDs    []uuid.UUID
	productIDs []uuid.UUID
	debtIDs    []uuid.UUID
}

func newLockSet() *lockSet {
	return &lockSet{}
}

func (s *lockSet) partner(id uuid.UUID) *lockSet {
	s.partnerIDs = addID(s.partnerIDs, id)
	return s
}

func (s *lockSet) user(id uuid.UUID) *lockSet {
	s.userIDs = addID(s.userIDs, id)
	return s
}

func (s *lockSet) product(id uuid.UUID) *lockSet {
	s.productIDs = addID(s.productIDs, id)
	return s
}

func (s *lockSet) debt(id *uuid.UUID) *lockSet {
	if id != nil {
		s.debtIDs = addID(s.debtIDs, *id)
	}
	return s
}

func addID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	if id == uuid.Nil || slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// locked holds the aggregates loaded under row locks
type locked struct {
	set      *lockSet
	partners map[uuid.UUID]*partner.Partner
	users    map[uuid.UUID]*identity.User
	products map[uuid.UUID]*catalog.Product
	debts    map[uuid.UUID]*finance.Debt
}

func (s *lockSet) acquire(ctx context.Context, repos TransactionalRepositories) (*locked, error) {
	slices.SortFunc(s.partnerIDs, compareIDs)
	slices.SortFunc(s.userIDs, compareIDs)
	slices.SortFunc(s.productIDs, compareIDs)
	slices.SortFunc(s.debtIDs, compareIDs)

	l := &locked{
		set:      s,
		partners: make(map[uuid.UUID]*partner.Partner, len(s.partnerIDs)),
		users:    make(map[uuid.UUID]*identity.User, len(s.userIDs)),
		products: make(map[uuid.UUID]*catalog.Product, len(s.productIDs)),
		debts:    make(map[uuid.UUID]*finance.Debt, len(s.debtIDs)),
	}
	for _, id := range s.partnerIDs {
		p, err := repos.Partners().FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		l.partners[id] = p
	}
	for _, id := range s.userIDs {
		u, err := repos.Users().FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		l.users[id] = u
	}
	for _, id := range s.productIDs {
		p, err := repos.Products().FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		l.products[id] = p
	}
	for _, id := range s.debtIDs {
		d, err := repos.Debts().FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		l.debts[id] = d
	}
	return l, nil
}

// save writes every locked aggregate back with a version check
func (l *locked) save(ctx context.Context, repos TransactionalRepositories) error {
	for _, id := range l.set.partnerIDs {
		if err := repos.Partners().SaveWithLock(ctx, l.partners[id]); err != nil {
			return err
		}
	}
	for _, id := range l.set.userIDs {
		if err := repos.Users().SaveWithLock(ctx, l.users[id]); err != nil {
			return err
		}
	}
	for _, id := range l.set.productIDs {
		if err := repos.Products().SaveWithLock(ctx, l.products[id]); err != nil {
			return err
		}
	}
	for _, id := range l.set.debtIDs {
		if err := repos.Debts().SaveWithLock(ctx, l.debts[id]); err != nil {
			return err
		}
	}
	return nil
}

// debt returns the locked debt for an optional id
func (l *locked) debt(id *uuid.UUID) *finance.Debt {
	if id == nil {
		return nil
	}
	return l.debts[*id]
}
