package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ErrMeterNil is returned when a metrics collector is built without a meter.
var ErrMeterNil = errors.New("telemetry: meter is nil")

// LedgerMetrics records business metrics for ledger operations.
type LedgerMetrics struct {
	logger *zap.Logger

	operationTotal    *Counter
	operationDuration *Histogram
	saleTotal         *Counter
	saleAmount        *FloatCounter
	paymentTotal      *Counter
	paymentAmount     *FloatCounter
	overdueMarked     *Counter
}

// NewLedgerMetrics creates the ledger instruments on meter.
func NewLedgerMetrics(meter metric.Meter, logger *zap.Logger) (*LedgerMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &LedgerMetrics{logger: logger}
	var err error

	if m.operationTotal, err = NewCounter(meter,
		"ledger_operation_total", "Ledger operations by outcome", "{operations}"); err != nil {
		return nil, err
	}
	if m.operationDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "ledger_operation_duration_seconds",
		Description: "Duration of ledger units of work",
		Unit:        "s",
		Boundaries:  OperationDurationBuckets,
	}); err != nil {
		return nil, err
	}
	if m.saleTotal, err = NewCounter(meter,
		"ledger_sale_total", "Installment sales created", "{sales}"); err != nil {
		return nil, err
	}
	if m.saleAmount, err = NewFloatCounter(meter,
		"ledger_sale_amount_total", "Total debt opened by sales", "{currency}"); err != nil {
		return nil, err
	}
	if m.paymentTotal, err = NewCounter(meter,
		"ledger_payment_total", "Payments recorded", "{payments}"); err != nil {
		return nil, err
	}
	if m.paymentAmount, err = NewFloatCounter(meter,
		"ledger_payment_amount_total", "Total amount of recorded payments", "{currency}"); err != nil {
		return nil, err
	}
	if m.overdueMarked, err = NewCounter(meter,
		"ledger_debt_overdue_marked_total", "Debts flagged late by the overdue sweep", "{debts}"); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordOperation counts one unit of work and records its duration.
// outcome is "ok" or the error code.
func (m *LedgerMetrics) RecordOperation(ctx context.Context, op, outcome string, d time.Duration) {
	m.operationTotal.Inc(ctx, AttrOperation.String(op), AttrOutcome.String(outcome))
	m.operationDuration.RecordDuration(ctx, d, AttrOperation.String(op), AttrOutcome.String(outcome))
}

// RecordSale counts a committed sale and the debt it opened.
func (m *LedgerMetrics) RecordSale(ctx context.Context, total decimal.Decimal) {
	m.saleTotal.Inc(ctx)
	m.saleAmount.Add(ctx, total.InexactFloat64())
}

// RecordPayment counts a committed payment by flow and method.
func (m *LedgerMetrics) RecordPayment(ctx context.Context, flow, method string, amount decimal.Decimal) {
	attrs := []attribute.KeyValue{AttrFlow.String(flow), AttrPaymentType.String(method)}
	m.paymentTotal.Inc(ctx, attrs...)
	m.paymentAmount.Add(ctx, amount.InexactFloat64(), attrs...)
}

// RecordOverdueMarked adds n debts flagged late.
func (m *LedgerMetrics) RecordOverdueMarked(ctx context.Context, n int64) {
	if n <= 0 {
		return
	}
	m.overdueMarked.Add(ctx, n)
}
