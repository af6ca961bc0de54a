package ledger

import (
	"context"
	"testing"

	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) receive(t *testing.T, productID uuid.UUID, qty, price string) uuid.UUID {
	t.Helper()
	entry, err := f.ledger.CreateStockEntry(context.Background(), StockEntryCommand{
		PartnerID: f.seller, ProductID: productID, UserID: f.user,
		Quantity: d(qty), BuyPrice: d(price),
	})
	require.NoError(t, err)
	return entry.ID
}

func TestStockEntry_WeightedAverageReconstruction(t *testing.T) {
	f := newFixture(t)
	empty := f.addProduct(t, "0", "0")

	f.receive(t, empty, "10", "5")
	second := f.receive(t, empty, "30", "9")

	product := f.store.product(empty)
	assert.True(t, product.Quantity.Equal(d("40")))
	assert.True(t, product.BuyPrice.Equal(d("8")), "(10*5+30*9)/40 = 8, got %s", product.BuyPrice)
	assert.True(t, f.store.partner(f.seller).Balance.Equal(d("-320")))

	require.NoError(t, f.ledger.RemoveStockEntry(context.Background(), second))

	product = f.store.product(empty)
	assert.True(t, product.Quantity.Equal(d("10")))
	assert.True(t, product.BuyPrice.Equal(d("5")))
	assert.True(t, f.store.partner(f.seller).Balance.Equal(d("-50")))
}

func TestStockEntry_NonTerminatingAverageReconstruction(t *testing.T) {
	f := newFixture(t)
	empty := f.addProduct(t, "0", "0")

	f.receive(t, empty, "1", "10")
	second := f.receive(t, empty, "2", "20")
	assert.True(t, f.store.product(empty).BuyPrice.Equal(d("16.666667")))

	require.NoError(t, f.ledger.RemoveStockEntry(context.Background(), second))

	product := f.store.product(empty)
	assert.True(t, product.Quantity.Equal(d("1")))
	assert.True(t, product.BuyPrice.Equal(d("10")), product.BuyPrice.String())
	assert.True(t, f.store.partner(f.seller).Balance.Equal(d("-10")))
}

func TestStockEntry_FractionalTotalIsRoundedToCents(t *testing.T) {
	f := newFixture(t)

	// 0.333 * 3.33 = 1.10889
	f.receive(t, f.product, "0.333", "3.33")
	assert.True(t, f.store.partner(f.seller).Balance.Equal(d("-1.11")))
	assert.True(t, f.store.product(f.product).CostBasis.Equal(d("601.10889")),
		"cost basis keeps the unrounded receipt value")
}

func TestCreateStockEntry_RequiresSeller(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.CreateStockEntry(context.Background(), StockEntryCommand{
		PartnerID: f.customer, ProductID: f.product, UserID: f.user,
		Quantity: d("1"), BuyPrice: d("5"),
	})
	requireCode(t, err, shared.CodeInvalidState)
	assert.True(t, f.store.product(f.product).Quantity.Equal(d("10")))
}

func TestUpdateStockEntry(t *testing.T) {
	t.Run("same product reprices the receipt", func(t *testing.T) {
		f := newFixture(t)
		empty := f.addProduct(t, "0", "0")
		f.receive(t, empty, "10", "5")
		id := f.receive(t, empty, "10", "15")

		_, err := f.ledger.UpdateStockEntry(context.Background(), UpdateStockEntryCommand{
			ID: id,
			StockEntryCommand: StockEntryCommand{
				PartnerID: f.seller, ProductID: empty, UserID: f.user,
				Quantity: d("30"), BuyPrice: d("7"),
			},
		})
		require.NoError(t, err)

		product := f.store.product(empty)
		assert.True(t, product.Quantity.Equal(d("40")))
		assert.True(t, product.BuyPrice.Equal(d("6.5")), "(10*5+30*7)/40 = 6.5, got %s", product.BuyPrice)
		assert.True(t, f.store.partner(f.seller).Balance.Equal(d("-260")))
	})

	t.Run("move to another product and seller", func(t *testing.T) {
		f := newFixture(t)
		source := f.addProduct(t, "0", "0")
		target := f.addProduct(t, "10", "20")
		id := f.receive(t, source, "10", "5")
		otherSeller := f.addPartner(t, "Second supplier", partner.RoleSeller)

		_, err := f.ledger.UpdateStockEntry(context.Background(), UpdateStockEntryCommand{
			ID: id,
			StockEntryCommand: StockEntryCommand{
				PartnerID: otherSeller, ProductID: target, UserID: f.user,
				Quantity: d("10"), BuyPrice: d("10"),
			},
		})
		require.NoError(t, err)

		src := f.store.product(source)
		assert.True(t, src.Quantity.IsZero())
		assert.True(t, src.BuyPrice.IsZero())
		dst := f.store.product(target)
		assert.True(t, dst.Quantity.Equal(d("20")))
		assert.True(t, dst.BuyPrice.Equal(d("15")))
		assert.True(t, f.store.partner(f.seller).Balance.IsZero())
		assert.True(t, f.store.partner(otherSeller).Balance.Equal(d("-100")))
	})

	t.Run("cannot shrink below units already sold", func(t *testing.T) {
		f := newFixture(t)
		id := f.receive(t, f.product, "5", "60")
		f.sell(t, "14", "100")

		_, err := f.ledger.UpdateStockEntry(context.Background(), UpdateStockEntryCommand{
			ID: id,
			StockEntryCommand: StockEntryCommand{
				PartnerID: f.seller, ProductID: f.product, UserID: f.user,
				Quantity: d("1"), BuyPrice: d("60"),
			},
		})
		requireCode(t, err, shared.CodeInvalidState)
		assert.True(t, f.store.product(f.product).Quantity.Equal(d("1")))
	})
}

func TestRemoveStockEntry_AfterStockWasSold(t *testing.T) {
	f := newFixture(t)
	id := f.receive(t, f.product, "5", "60")
	f.sell(t, "12", "100")

	err := f.ledger.RemoveStockEntry(context.Background(), id)
	requireCode(t, err, shared.CodeInvalidState)
	assert.True(t, f.store.partner(f.seller).Balance.Equal(d("-300")))
}

func TestReturnedProduct(t *testing.T) {
	t.Run("resellable return credits and restocks", func(t *testing.T) {
		f := newFixture(t)
		sale := f.sell(t, "4", "100")

		_, err := f.ledger.CreateReturnedProduct(context.Background(), ReturnCommand{
			SaleID: sale.Sale.ID, ProductID: f.product, Quantity: d("2"), IsResellable: true,
		})
		require.NoError(t, err)
		assert.True(t, f.store.partner(f.customer).Balance.Equal(d("-200")))
		assert.True(t, f.store.product(f.product).Quantity.Equal(d("8")))
	})

	t.Run("damaged return only credits", func(t *testing.T) {
		f := newFixture(t)
		sale := f.sell(t, "4", "100")

		_, err := f.ledger.CreateReturnedProduct(context.Background(), ReturnCommand{
			SaleID: sale.Sale.ID, ProductID: f.product, Quantity: d("1"),
		})
		require.NoError(t, err)
		assert.True(t, f.store.partner(f.customer).Balance.Equal(d("-300")))
		assert.True(t, f.store.product(f.product).Quantity.Equal(d("6")))
	})

	t.Run("more than sold is rejected", func(t *testing.T) {
		f := newFixture(t)
		sale := f.sell(t, "4", "100")

		_, err := f.ledger.CreateReturnedProduct(context.Background(), ReturnCommand{
			SaleID: sale.Sale.ID, ProductID: f.product, Quantity: d("5"), IsResellable: true,
		})
		requireCode(t, err, shared.CodeValidation)
		assert.True(t, f.store.partner(f.customer).Balance.Equal(d("-400")))
	})

	t.Run("update re-derives credit and restock", func(t *testing.T) {
		f := newFixture(t)
		sale := f.sell(t, "4", "100")
		returned, err := f.ledger.CreateReturnedProduct(context.Background(), ReturnCommand{
			SaleID: sale.Sale.ID, ProductID: f.product, Quantity: d("2"), IsResellable: true,
		})
		require.NoError(t, err)

		_, err = f.ledger.UpdateReturnedProduct(context.Background(), UpdateReturnCommand{
			ID:            returned.ID,
			ReturnCommand: ReturnCommand{SaleID: sale.Sale.ID, ProductID: f.product, Quantity: d("3")},
		})
		require.NoError(t, err)
		assert.True(t, f.store.partner(f.customer).Balance.Equal(d("-100")))
		assert.True(t, f.store.product(f.product).Quantity.Equal(d("6")))

		require.NoError(t, f.ledger.RemoveReturnedProduct(context.Background(), returned.ID))
		assert.True(t, f.store.partner(f.customer).Balance.Equal(d("-400")))
		assert.True(t, f.store.product(f.product).Quantity.Equal(d("6")))
	})
}

func TestSalary(t *testing.T) {
	f := newFixture(t)
	salary, err := f.ledger.CreateSalary(context.Background(), SalaryCommand{
		UserID: f.user, Amount: d("1500"), Comment: "March",
	})
	require.NoError(t, err)
	assert.True(t, f.store.user(f.user).Balance.Equal(d("1500")))

	other, err := f.ledger.CreateSalary(context.Background(), SalaryCommand{UserID: uuid.New(), Amount: d("10")})
	requireCode(t, err, shared.CodeNotFound)
	assert.Nil(t, other)

	_, err = f.ledger.UpdateSalary(context.Background(), UpdateSalaryCommand{
		ID:            salary.ID,
		SalaryCommand: SalaryCommand{UserID: f.user, Amount: d("1200")},
	})
	require.NoError(t, err)
	assert.True(t, f.store.user(f.user).Balance.Equal(d("1200")))

	require.NoError(t, f.ledger.RemoveSalary(context.Background(), salary.ID))
	assert.True(t, f.store.user(f.user).Balance.IsZero())
}

func TestRemovePartner(t *testing.T) {
	f := newFixture(t)
	f.sell(t, "1", "100")

	err := f.ledger.RemovePartner(context.Background(), f.customer)
	requireCode(t, err, shared.CodeInvalidState)

	unused := f.addPartner(t, "Walk-in", partner.RoleCustomer)
	require.NoError(t, f.ledger.RemovePartner(context.Background(), unused))
	_, err = f.ledger.GetPartner(context.Background(), unused)
	requireCode(t, err, shared.CodeNotFound)
}

func TestMarkOverdueDebts(t *testing.T) {
	f := newFixture(t)
	late := f.sell(t, "2", "100")
	paid := f.sell(t, "1", "100")
	_, err := f.payIn(paid.Debt.ID, "100")
	require.NoError(t, err)

	dueDate := late.Debt.NextDueDate
	n, err := f.ledger.MarkOverdueDebts(context.Background(), dueDate)
	require.NoError(t, err)
	assert.Zero(t, n, "a debt is not late on its due date")

	n, err = f.ledger.MarkOverdueDebts(context.Background(), dueDate.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, f.store.debt(late.Debt.ID).IsLate)
	assert.False(t, f.store.debt(paid.Debt.ID).IsLate)

	n, err = f.ledger.MarkOverdueDebts(context.Background(), dueDate.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = f.payIn(late.Debt.ID, "10")
	require.NoError(t, err)
	assert.False(t, f.store.debt(late.Debt.ID).IsLate)
}
