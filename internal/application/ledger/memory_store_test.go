package ledger

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/erp/installment/internal/domain/catalog"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/identity"
	"github.com/erp/installment/internal/domain/inventory"
	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/shared"
	"github.com/erp/installment/internal/domain/trade"
	"github.com/google/uuid"
)

// memoryStore is an in-memory TransactionScope. Execute works on a copy of
// every table and publishes it only when fn succeeds, so a failed unit of
// work leaves the store exactly as it was. Units of work are serialized.
type memoryStore struct {
	mu    sync.Mutex
	state *memoryTables
}

type memoryTables struct {
	partners   *table[partner.Partner, *partner.Partner]
	users      *table[identity.User, *identity.User]
	salaries   *table[identity.Salary, *identity.Salary]
	categories *table[catalog.Category, *catalog.Category]
	products   *table[catalog.Product, *catalog.Product]
	entries    *table[inventory.StockEntry, *inventory.StockEntry]
	sales      *table[trade.Sale, *trade.Sale]
	returns    *table[trade.ReturnedProduct, *trade.ReturnedProduct]
	debts      *table[finance.Debt, *finance.Debt]
	payments   *table[finance.Payment, *finance.Payment]
}

func newMemoryStore() *memoryStore {
	return &memoryStore{state: &memoryTables{
		partners:   newTable[partner.Partner]("Partner"),
		users:      newTable[identity.User]("User"),
		salaries:   newTable[identity.Salary]("Salary"),
		categories: newTable[catalog.Category]("Category"),
		products:   newTable[catalog.Product]("Product"),
		entries:    newTable[inventory.StockEntry]("Stock entry"),
		sales:      newTable[trade.Sale]("Sale"),
		returns:    newTable[trade.ReturnedProduct]("Returned product"),
		debts:      newTable[finance.Debt]("Debt"),
		payments:   newTable[finance.Payment]("Payment"),
	}}
}

func (s *memoryStore) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.state.clone()
	if err := fn(work); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (t *memoryTables) clone() *memoryTables {
	return &memoryTables{
		partners:   t.partners.clone(),
		users:      t.users.clone(),
		salaries:   t.salaries.clone(),
		categories: t.categories.clone(),
		products:   t.products.clone(),
		entries:    t.entries.clone(),
		sales:      t.sales.clone(),
		returns:    t.returns.clone(),
		debts:      t.debts.clone(),
		payments:   t.payments.clone(),
	}
}

func (t *memoryTables) Partners() partner.PartnerRepository       { return partnerRepo{t.partners} }
func (t *memoryTables) Users() identity.UserRepository             { return userRepo{t.users} }
func (t *memoryTables) Salaries() identity.SalaryRepository         { return salaryRepo{t.salaries} }
func (t *memoryTables) Categories() catalog.CategoryRepository     { return categoryRepo{t.categories} }
func (t *memoryTables) Products() catalog.ProductRepository        { return productRepo{t.products} }
func (t *memoryTables) StockEntries() inventory.StockEntryRepository { return entryRepo{t.entries} }
func (t *memoryTables) Sales() trade.SaleRepository                 { return saleRepo{t.sales} }
func (t *memoryTables) Returns() trade.ReturnedProductRepository    { return returnRepo{t.returns} }
func (t *memoryTables) Debts() finance.DebtRepository               { return debtRepo{t.debts} }
func (t *memoryTables) Payments() finance.PaymentRepository         { return paymentRepo{t.payments} }

// snapshot helpers read committed state outside any unit of work

func (s *memoryStore) partner(id uuid.UUID) partner.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.partners.rows[id]
}

func (s *memoryStore) user(id uuid.UUID) identity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.users.rows[id]
}

func (s *memoryStore) product(id uuid.UUID) catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.products.rows[id]
}

func (s *memoryStore) debt(id uuid.UUID) finance.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.debts.rows[id]
}

func (s *memoryStore) hasPayment(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.payments.rows[id]
	return ok
}

func (s *memoryStore) put(fn func(t *memoryTables)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

type aggregatePtr[T any] interface {
	*T
	shared.AggregateRoot
}

type table[T any, P aggregatePtr[T]] struct {
	entity string
	rows   map[uuid.UUID]T
}

func newTable[T any, P aggregatePtr[T]](entity string) *table[T, P] {
	return &table[T, P]{entity: entity, rows: make(map[uuid.UUID]T)}
}

func (t *table[T, P]) clone() *table[T, P] {
	return &table[T, P]{entity: t.entity, rows: maps.Clone(t.rows)}
}

func (t *table[T, P]) find(id uuid.UUID) (P, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, shared.NewNotFoundError(t.entity)
	}
	return P(&row), nil
}

func (t *table[T, P]) save(v P) error {
	t.rows[v.GetID()] = *v
	return nil
}

func (t *table[T, P]) saveWithLock(v P) error {
	current, ok := t.rows[v.GetID()]
	if !ok {
		return shared.NewNotFoundError(t.entity)
	}
	if P(&current).GetVersion() != v.GetVersion() {
		return shared.NewConflictError(t.entity + " was modified by another transaction")
	}
	v.IncrementVersion()
	t.rows[v.GetID()] = *v
	return nil
}

func (t *table[T, P]) delete(id uuid.UUID) error {
	if _, ok := t.rows[id]; !ok {
		return shared.NewNotFoundError(t.entity)
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T, P]) count(match func(*T) bool) int64 {
	var n int64
	for _, row := range t.rows {
		if match(&row) {
			n++
		}
	}
	return n
}

type partnerRepo struct{ t *table[partner.Partner, *partner.Partner] }

func (r partnerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Partner, error) {
	return r.t.find(id)
}
func (r partnerRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*partner.Partner, error) {
	return r.t.find(id)
}
func (r partnerRepo) Save(_ context.Context, p *partner.Partner) error         { return r.t.save(p) }
func (r partnerRepo) SaveWithLock(_ context.Context, p *partner.Partner) error { return r.t.saveWithLock(p) }
func (r partnerRepo) Delete(_ context.Context, id uuid.UUID) error            { return r.t.delete(id) }

type userRepo struct{ t *table[identity.User, *identity.User] }

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	return r.t.find(id)
}
func (r userRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*identity.User, error) {
	return r.t.find(id)
}
func (r userRepo) Save(_ context.Context, u *identity.User) error         { return r.t.save(u) }
func (r userRepo) SaveWithLock(_ context.Context, u *identity.User) error { return r.t.saveWithLock(u) }

type salaryRepo struct{ t *table[identity.Salary, *identity.Salary] }

func (r salaryRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*identity.Salary, error) {
	return r.t.find(id)
}
func (r salaryRepo) Save(_ context.Context, s *identity.Salary) error         { return r.t.save(s) }
func (r salaryRepo) SaveWithLock(_ context.Context, s *identity.Salary) error { return r.t.saveWithLock(s) }
func (r salaryRepo) Delete(_ context.Context, id uuid.UUID) error            { return r.t.delete(id) }

type categoryRepo struct{ t *table[catalog.Category, *catalog.Category] }

func (r categoryRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Category, error) {
	return r.t.find(id)
}
func (r categoryRepo) Save(_ context.Context, c *catalog.Category) error { return r.t.save(c) }

type productRepo struct{ t *table[catalog.Product, *catalog.Product] }

func (r productRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.t.find(id)
}
func (r productRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.t.find(id)
}
func (r productRepo) Save(_ context.Context, p *catalog.Product) error         { return r.t.save(p) }
func (r productRepo) SaveWithLock(_ context.Context, p *catalog.Product) error { return r.t.saveWithLock(p) }

type entryRepo struct {
	t *table[inventory.StockEntry, *inventory.StockEntry]
}

func (r entryRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.StockEntry, error) {
	return r.t.find(id)
}
func (r entryRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*inventory.StockEntry, error) {
	return r.t.find(id)
}
func (r entryRepo) Save(_ context.Context, e *inventory.StockEntry) error { return r.t.save(e) }
func (r entryRepo) SaveWithLock(_ context.Context, e *inventory.StockEntry) error {
	return r.t.saveWithLock(e)
}
func (r entryRepo) Delete(_ context.Context, id uuid.UUID) error { return r.t.delete(id) }
func (r entryRepo) CountByPartner(_ context.Context, partnerID uuid.UUID) (int64, error) {
	return r.t.count(func(e *inventory.StockEntry) bool { return e.PartnerID == partnerID }), nil
}

type saleRepo struct{ t *table[trade.Sale, *trade.Sale] }

func (r saleRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.Sale, error) { return r.t.find(id) }
func (r saleRepo) Save(_ context.Context, s *trade.Sale) error                 { return r.t.save(s) }
func (r saleRepo) CountByPartner(_ context.Context, partnerID uuid.UUID) (int64, error) {
	return r.t.count(func(s *trade.Sale) bool { return s.PartnerID == partnerID }), nil
}

type returnRepo struct {
	t *table[trade.ReturnedProduct, *trade.ReturnedProduct]
}

func (r returnRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*trade.ReturnedProduct, error) {
	return r.t.find(id)
}
func (r returnRepo) Save(_ context.Context, p *trade.ReturnedProduct) error { return r.t.save(p) }
func (r returnRepo) SaveWithLock(_ context.Context, p *trade.ReturnedProduct) error {
	return r.t.saveWithLock(p)
}
func (r returnRepo) Delete(_ context.Context, id uuid.UUID) error { return r.t.delete(id) }

type debtRepo struct{ t *table[finance.Debt, *finance.Debt] }

func (r debtRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.Debt, error) { return r.t.find(id) }
func (r debtRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*finance.Debt, error) {
	return r.t.find(id)
}
func (r debtRepo) FindBySaleID(_ context.Context, saleID uuid.UUID) (*finance.Debt, error) {
	for _, d := range r.t.rows {
		if d.SaleID == saleID {
			return &d, nil
		}
	}
	return nil, shared.NewNotFoundError("Debt")
}
func (r debtRepo) Save(_ context.Context, d *finance.Debt) error         { return r.t.save(d) }
func (r debtRepo) SaveWithLock(_ context.Context, d *finance.Debt) error { return r.t.saveWithLock(d) }
func (r debtRepo) FindOverdueForUpdate(_ context.Context, now time.Time, limit int) ([]*finance.Debt, error) {
	var result []*finance.Debt
	for _, d := range r.t.rows {
		if d.Status == finance.DebtStatusOpen && !d.IsLate && d.NextDueDate.Before(now) {
			result = append(result, &d)
		}
	}
	slices.SortFunc(result, func(a, b *finance.Debt) int { return a.NextDueDate.Compare(b.NextDueDate) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type paymentRepo struct{ t *table[finance.Payment, *finance.Payment] }

func (r paymentRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.Payment, error) {
	return r.t.find(id)
}
func (r paymentRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*finance.Payment, error) {
	return r.t.find(id)
}
func (r paymentRepo) Save(_ context.Context, p *finance.Payment) error         { return r.t.save(p) }
func (r paymentRepo) SaveWithLock(_ context.Context, p *finance.Payment) error { return r.t.saveWithLock(p) }
func (r paymentRepo) Delete(_ context.Context, id uuid.UUID) error            { return r.t.delete(id) }
func (r paymentRepo) CountByPartner(_ context.Context, partnerID uuid.UUID) (int64, error) {
	return r.t.count(func(p *finance.Payment) bool { return p.PartnerID == partnerID }), nil
}
