package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func TestNewLedgerMetrics_NilMeter(t *testing.T) {
	_, err := NewLedgerMetrics(nil, zap.NewNop())
	assert.ErrorIs(t, err, ErrMeterNil)
}

func TestLedgerMetrics_Record(t *testing.T) {
	provider, reader := newTestMeter(t)
	m, err := NewLedgerMetrics(provider.Meter("test"), nil)
	require.NoError(t, err)
	ctx := context.Background()

	m.RecordOperation(ctx, "create_sale", "ok", 20*time.Millisecond)
	m.RecordOperation(ctx, "create_payment", "INVALID_STATE", 5*time.Millisecond)
	m.RecordSale(ctx, decimal.RequireFromString("1200"))
	m.RecordPayment(ctx, "IN", "CASH", decimal.RequireFromString("250.50"))
	m.RecordPayment(ctx, "OUT", "CARD", decimal.RequireFromString("100"))
	m.RecordOverdueMarked(ctx, 3)
	m.RecordOverdueMarked(ctx, 0)

	rm := collect(t, reader)
	assert.Equal(t, int64(2), int64Total(t, rm, "ledger_operation_total"))
	assert.Equal(t, int64(1), int64Total(t, rm, "ledger_sale_total"))
	assert.InDelta(t, 1200.0, float64Total(t, rm, "ledger_sale_amount_total"), 0.001)
	assert.Equal(t, int64(2), int64Total(t, rm, "ledger_payment_total"))
	assert.InDelta(t, 350.5, float64Total(t, rm, "ledger_payment_amount_total"), 0.001)
	assert.Equal(t, int64(3), int64Total(t, rm, "ledger_debt_overdue_marked_total"))

	t.Run("operations are split by outcome", func(t *testing.T) {
		metric, ok := findMetric(rm, "ledger_operation_total")
		require.True(t, ok)
		sum := metric.Data.(metricdata.Sum[int64])
		outcomes := map[string]int64{}
		for _, dp := range sum.DataPoints {
			v, _ := dp.Attributes.Value(attribute.Key("outcome"))
			outcomes[v.AsString()] += dp.Value
		}
		assert.Equal(t, map[string]int64{"ok": 1, "INVALID_STATE": 1}, outcomes)
	})

	t.Run("duration histogram has both operations", func(t *testing.T) {
		metric, ok := findMetric(rm, "ledger_operation_duration_seconds")
		require.True(t, ok)
		hist := metric.Data.(metricdata.Histogram[float64])
		assert.Len(t, hist.DataPoints, 2)
	})
}
