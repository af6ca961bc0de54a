package trade

import (
	"testing"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLine() SaleLine {
	return SaleLine{
		PartnerID: uuid.New(),
		ProductID: uuid.New(),
		UserID:    uuid.New(),
		Quantity:  decimal.NewFromInt(5),
		SellPrice: decimal.NewFromInt(100),
		Time:      12,
	}
}

func TestNewSale(t *testing.T) {
	t.Run("computes total", func(t *testing.T) {
		s, err := NewSale(validLine())
		require.NoError(t, err)
		assert.True(t, s.Total().Equal(decimal.NewFromInt(500)))
		assert.Nil(t, s.StockEntryID)
	})

	t.Run("fractional quantity total is rounded to cents", func(t *testing.T) {
		line := validLine()
		line.Quantity = decimal.RequireFromString("1.5")
		line.SellPrice = decimal.RequireFromString("3.33")
		s, err := NewSale(line)
		require.NoError(t, err)
		assert.True(t, s.Total().Equal(decimal.RequireFromString("5")), s.Total().String())

		r, err := NewReturnedProduct(s, s.ProductID, decimal.RequireFromString("0.5"), false)
		require.NoError(t, err)
		// 0.5 * 3.33 = 1.665
		assert.True(t, r.Credit(s).Equal(decimal.RequireFromString("1.67")), r.Credit(s).String())
	})

	tests := []struct {
		name   string
		mutate func(*SaleLine)
	}{
		{"missing partner", func(l *SaleLine) { l.PartnerID = uuid.Nil }},
		{"missing product", func(l *SaleLine) { l.ProductID = uuid.Nil }},
		{"missing user", func(l *SaleLine) { l.UserID = uuid.Nil }},
		{"zero quantity", func(l *SaleLine) { l.Quantity = decimal.Zero }},
		{"price with three decimals", func(l *SaleLine) { l.SellPrice = decimal.RequireFromString("9.999") }},
		{"zero term", func(l *SaleLine) { l.Time = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := validLine()
			tt.mutate(&line)
			_, err := NewSale(line)
			require.Error(t, err)
			assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
		})
	}
}

func TestReturnedProduct(t *testing.T) {
	sale, err := NewSale(validLine())
	require.NoError(t, err)

	t.Run("credits quantity at sale price", func(t *testing.T) {
		r, err := NewReturnedProduct(sale, sale.ProductID, decimal.NewFromInt(2), true)
		require.NoError(t, err)
		assert.True(t, r.Credit(sale).Equal(decimal.NewFromInt(200)))
		assert.True(t, r.RestockedQuantity().Equal(decimal.NewFromInt(2)))
	})

	t.Run("non-resellable return restocks nothing", func(t *testing.T) {
		r, err := NewReturnedProduct(sale, sale.ProductID, decimal.NewFromInt(1), false)
		require.NoError(t, err)
		assert.True(t, r.RestockedQuantity().IsZero())
	})

	t.Run("rejects more than sold", func(t *testing.T) {
		_, err := NewReturnedProduct(sale, sale.ProductID, decimal.NewFromInt(6), true)
		require.Error(t, err)
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
	})

	t.Run("rejects other product", func(t *testing.T) {
		_, err := NewReturnedProduct(sale, uuid.New(), decimal.NewFromInt(1), true)
		require.Error(t, err)
	})

	t.Run("revise validates against the new sale", func(t *testing.T) {
		r, err := NewReturnedProduct(sale, sale.ProductID, decimal.NewFromInt(1), true)
		require.NoError(t, err)

		other, err := NewSale(validLine())
		require.NoError(t, err)
		require.NoError(t, r.Revise(other, other.ProductID, decimal.NewFromInt(3), false))
		assert.Equal(t, other.ID, r.SaleID)
		assert.False(t, r.IsResellable)

		assert.Error(t, r.Revise(other, other.ProductID, decimal.NewFromInt(10), false))
	})
}
