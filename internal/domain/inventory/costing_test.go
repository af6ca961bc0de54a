package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPosition_Receive(t *testing.T) {
	t.Run("first receipt sets the cost", func(t *testing.T) {
		p := Position{}.Receive(d("10"), d("5"))
		assert.True(t, p.Quantity.Equal(d("10")))
		assert.True(t, p.UnitCost.Equal(d("5")))
	})

	t.Run("second receipt averages by quantity", func(t *testing.T) {
		p := Position{}.Receive(d("10"), d("100")).Receive(d("30"), d("200"))
		// (10*100 + 30*200) / 40 = 175
		assert.True(t, p.Quantity.Equal(d("40")))
		assert.True(t, p.UnitCost.Equal(d("175")), p.UnitCost.String())
	})

	t.Run("non-terminating average is rounded to cost scale", func(t *testing.T) {
		p := Position{}.Receive(d("1"), d("10")).Receive(d("2"), d("20"))
		assert.True(t, p.UnitCost.Equal(d("16.666667")), p.UnitCost.String())
		assert.True(t, p.Cost.Equal(d("50")), "cost basis stays exact")
	})
}

func TestPosition_Revert(t *testing.T) {
	t.Run("reverting the second receipt restores the first cost", func(t *testing.T) {
		q1, c1 := d("4"), d("12.50")
		q2, c2 := d("6"), d("20")

		p := Position{}.Receive(q1, c1).Receive(q2, c2)
		assert.True(t, p.UnitCost.Equal(d("17")), p.UnitCost.String())

		p = p.Revert(q2, c2)
		assert.True(t, p.Quantity.Equal(q1))
		assert.True(t, p.UnitCost.Equal(c1), p.UnitCost.String())
	})

	t.Run("reverting a receipt behind a non-terminating average restores the first cost", func(t *testing.T) {
		p := Position{}.Receive(d("1"), d("10")).Receive(d("2"), d("20"))
		require.True(t, p.UnitCost.Equal(d("16.666667")), p.UnitCost.String())

		p = p.Revert(d("2"), d("20"))
		assert.True(t, p.Quantity.Equal(d("1")))
		assert.True(t, p.Cost.Equal(d("10")), p.Cost.String())
		assert.True(t, p.UnitCost.Equal(d("10")), p.UnitCost.String())
	})

	t.Run("revising a receipt behind a non-terminating average", func(t *testing.T) {
		p := Position{}.Receive(d("3"), d("7.01")).Receive(d("0.0007"), d("3.33"))
		p = p.Revert(d("0.0007"), d("3.33")).Receive(d("0.0007"), d("3.33")).Revert(d("0.0007"), d("3.33"))
		assert.True(t, p.UnitCost.Equal(d("7.01")), p.UnitCost.String())
	})

	t.Run("reverting everything yields zero cost", func(t *testing.T) {
		p := Position{}.Receive(d("5"), d("9")).Revert(d("5"), d("9"))
		assert.True(t, p.Quantity.IsZero())
		assert.True(t, p.Cost.IsZero())
		assert.True(t, p.UnitCost.IsZero())
	})

	t.Run("revert then receive on the same product after partial sale", func(t *testing.T) {
		// received 10@5, sold 8, receipt edited to 12@5
		p := Position{}.Receive(d("10"), d("5")).Withdraw(d("8"))
		p = p.Revert(d("10"), d("5")).Receive(d("12"), d("5"))
		assert.True(t, p.Quantity.Equal(d("4")))
		assert.True(t, p.UnitCost.Equal(d("5")), p.UnitCost.String())
	})
}

func TestPosition_WithdrawRestock(t *testing.T) {
	p := Position{Quantity: d("10"), Cost: d("75"), UnitCost: d("7.5")}

	p = p.Withdraw(d("3"))
	assert.True(t, p.Quantity.Equal(d("7")))
	assert.True(t, p.Cost.Equal(d("52.5")))
	assert.True(t, p.UnitCost.Equal(d("7.5")))

	p = p.Restock(d("2"))
	assert.True(t, p.Quantity.Equal(d("9")))
	assert.True(t, p.UnitCost.Equal(d("7.5")), "restock keeps the cost basis")

	t.Run("selling out keeps the last average", func(t *testing.T) {
		p := Position{}.Receive(d("1"), d("10")).Receive(d("2"), d("20")).Withdraw(d("3"))
		assert.True(t, p.Quantity.IsZero())
		assert.True(t, p.Cost.IsZero())
		assert.True(t, p.UnitCost.Equal(d("16.666667")), p.UnitCost.String())

		p = p.Receive(d("2"), d("4"))
		assert.True(t, p.UnitCost.Equal(d("4")), p.UnitCost.String())
	})
}
