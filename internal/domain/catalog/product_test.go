package catalog

import (
	"testing"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	p, err := NewProduct("Washing machine", uuid.New(), dec("450"))
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	p := newTestProduct(t)
	assert.True(t, p.IsActive)
	assert.True(t, p.Quantity.IsZero())
	assert.True(t, p.BuyPrice.IsZero())

	_, err := NewProduct("", uuid.New(), dec("1"))
	assert.Error(t, err)
	_, err = NewProduct("TV", uuid.Nil, dec("1"))
	assert.Error(t, err)
}

func TestProduct_WeightedAverageLifecycle(t *testing.T) {
	p := newTestProduct(t)

	p.ReceiveStock(dec("10"), dec("100"))
	p.ReceiveStock(dec("10"), dec("200"))
	assert.True(t, p.Quantity.Equal(dec("20")))
	assert.True(t, p.BuyPrice.Equal(dec("150")))

	require.NoError(t, p.RevertReceipt(dec("10"), dec("200")))
	assert.True(t, p.Quantity.Equal(dec("10")))
	assert.True(t, p.BuyPrice.Equal(dec("100")))
}

func TestProduct_RevertReceipt_NonTerminatingAverage(t *testing.T) {
	p := newTestProduct(t)
	p.ReceiveStock(dec("1"), dec("10"))
	p.ReceiveStock(dec("2"), dec("20"))
	assert.True(t, p.BuyPrice.Equal(dec("16.666667")), p.BuyPrice.String())
	assert.True(t, p.CostBasis.Equal(dec("50")), p.CostBasis.String())

	require.NoError(t, p.RevertReceipt(dec("2"), dec("20")))
	assert.True(t, p.Quantity.Equal(dec("1")))
	assert.True(t, p.BuyPrice.Equal(dec("10")), p.BuyPrice.String())
	assert.True(t, p.CostBasis.Equal(dec("10")), p.CostBasis.String())
}

func TestProduct_RevertReceipt_AfterSales(t *testing.T) {
	p := newTestProduct(t)
	p.ReceiveStock(dec("5"), dec("80"))
	require.NoError(t, p.Withdraw(dec("4")))

	err := p.RevertReceipt(dec("5"), dec("80"))
	require.Error(t, err)
	assert.Equal(t, shared.CodeInvalidState, shared.CodeOf(err))
	assert.True(t, p.Quantity.Equal(dec("1")), "failed revert leaves stock unchanged")
	assert.True(t, p.BuyPrice.Equal(dec("80")))
}

func TestProduct_ReviseReceipt(t *testing.T) {
	p := newTestProduct(t)
	p.ReceiveStock(dec("10"), dec("50"))
	p.ReceiveStock(dec("10"), dec("70"))

	require.NoError(t, p.ReviseReceipt(dec("10"), dec("70"), dec("30"), dec("90")))
	// (10*50 + 30*90) / 40 = 80
	assert.True(t, p.Quantity.Equal(dec("40")))
	assert.True(t, p.BuyPrice.Equal(dec("80")), p.BuyPrice.String())
}

func TestProduct_Withdraw(t *testing.T) {
	p := newTestProduct(t)
	p.ReceiveStock(dec("10"), dec("100"))

	require.NoError(t, p.Withdraw(dec("5")))
	assert.True(t, p.Quantity.Equal(dec("5")))

	err := p.Withdraw(dec("6"))
	require.Error(t, err)
	assert.Equal(t, shared.CodeInvalidState, shared.CodeOf(err))
	assert.True(t, p.Quantity.Equal(dec("5")))
	assert.True(t, p.BuyPrice.Equal(dec("100")), "sales never change the cost basis")
}

func TestProduct_Restock(t *testing.T) {
	p := newTestProduct(t)
	p.ReceiveStock(dec("2"), dec("100"))

	require.NoError(t, p.Restock(dec("3")))
	assert.True(t, p.Quantity.Equal(dec("5")))
	assert.True(t, p.BuyPrice.Equal(dec("100")))

	require.NoError(t, p.Restock(dec("-5")))
	assert.True(t, p.Quantity.IsZero())
	assert.Error(t, p.Restock(dec("-1")))
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Appliances", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTermMonths, c.Time)

	c, err = NewCategory("Phones", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Time)

	_, err = NewCategory("Phones", -1)
	assert.Error(t, err)
}
