package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBConfig controls database tracing and metrics.
type DBConfig struct {
	TraceEnabled    bool
	LogFullSQL      bool          // include query variables in spans, never in production
	SlowQueryThresh time.Duration // default 200ms
}

type queryStartKey struct{}

// dbInstrumentation records query metrics and marks slow queries on spans.
type dbInstrumentation struct {
	cfg           DBConfig
	logger        *zap.Logger
	queryTotal    *Counter
	queryDuration *Histogram
	slowTotal     *Counter
}

// InstrumentDB registers otelgorm (when tracing is enabled), query
// metrics with slow-query detection, and connection pool gauges on db.
func InstrumentDB(db *gorm.DB, meter metric.Meter, cfg DBConfig, logger *zap.Logger) error {
	if cfg.SlowQueryThresh == 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}

	if cfg.TraceEnabled {
		opts := []otelgorm.Option{otelgorm.WithDBName("postgresql")}
		if !cfg.LogFullSQL {
			opts = append(opts, otelgorm.WithoutQueryVariables())
		}
		if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
			return fmt.Errorf("failed to register otelgorm: %w", err)
		}
	}

	inst := &dbInstrumentation{cfg: cfg, logger: logger}
	var err error
	if inst.queryTotal, err = NewCounter(meter, "db_query_total", "Database queries executed", "{queries}"); err != nil {
		return err
	}
	if inst.queryDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "db_query_duration_seconds",
		Description: "Database query duration",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	}); err != nil {
		return err
	}
	if inst.slowTotal, err = NewCounter(meter, "db_slow_query_total", "Queries slower than the threshold", "{queries}"); err != nil {
		return err
	}
	if err := inst.registerCallbacks(db); err != nil {
		return err
	}
	return registerPoolGauges(db, meter)
}

func (i *dbInstrumentation) registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()
	type hooks struct {
		op     string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}
	all := []hooks{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}
	for _, h := range all {
		if err := h.before("installment:before_"+h.op, i.before); err != nil {
			return err
		}
		if err := h.after("installment:after_"+h.op, i.after(h.op)); err != nil {
			return err
		}
	}
	return nil
}

func (i *dbInstrumentation) before(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

func (i *dbInstrumentation) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			return
		}
		start, ok := ctx.Value(queryStartKey{}).(time.Time)
		if !ok {
			return
		}
		elapsed := time.Since(start)
		attrs := []attribute.KeyValue{AttrDBOperation.String(op), AttrDBTable.String(db.Statement.Table)}
		i.queryTotal.Inc(ctx, attrs...)
		i.queryDuration.RecordDuration(ctx, elapsed, attrs...)

		span := trace.SpanFromContext(ctx)
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) && span.IsRecording() {
			RecordError(span, db.Error)
		}
		if elapsed <= i.cfg.SlowQueryThresh {
			return
		}
		i.slowTotal.Inc(ctx, attrs...)
		if span.IsRecording() {
			span.SetAttributes(attribute.Bool("db.slow_query", true))
			AddEvent(span, "slow_query_warning",
				"duration_ms", elapsed.Milliseconds(),
				"threshold_ms", i.cfg.SlowQueryThresh.Milliseconds())
		}
		i.logger.Warn("Slow query",
			zap.String("operation", op),
			zap.String("table", db.Statement.Table),
			zap.Duration("elapsed", elapsed))
	}
}

// registerPoolGauges reports sql.DB pool statistics on every metrics collection.
func registerPoolGauges(db *gorm.DB, meter metric.Meter) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	conns, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Connections in the pool by state"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return err
	}
	maxConns, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum open connections"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return err
	}
	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(conns, int64(stats.InUse), metric.WithAttributes(AttrDBPoolState.String("in_use")))
		o.ObserveInt64(conns, int64(stats.Idle), metric.WithAttributes(AttrDBPoolState.String("idle")))
		o.ObserveInt64(maxConns, int64(stats.MaxOpenConnections))
		return nil
	}, conns, maxConns)
	return err
}
