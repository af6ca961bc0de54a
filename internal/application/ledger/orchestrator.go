// Package ledger coordinates the multi-aggregate writes of the installment
// ledger: sales, payments, stock entries, returns and salaries. Every
// operation runs as one unit of work and either applies completely or not at all.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/domain/shared"
	"github.com/erp/installment/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Orchestrator is the only entry point for ledger mutations.
// It is safe for concurrent use.
type Orchestrator struct {
	scope     TransactionScope
	cfg       Config
	amortizer *finance.Amortizer
	logger    *zap.Logger
	metrics   *telemetry.LedgerMetrics
	now       func() time.Time
}

// NewOrchestrator creates an Orchestrator
func NewOrchestrator(scope TransactionScope, cfg Config, logger *zap.Logger) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		scope:     scope,
		cfg:       cfg,
		amortizer: finance.NewAmortizer(cfg.DueDatePolicy),
		logger:    logger,
		now:       time.Now,
	}, nil
}

// SetBusinessMetrics sets the business metrics collector
func (o *Orchestrator) SetBusinessMetrics(m *telemetry.LedgerMetrics) {
	o.metrics = m
}

// SetClock replaces the time source used for due dates and overdue checks
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}

// Config returns the orchestrator configuration
func (o *Orchestrator) Config() Config {
	return o.cfg
}

type unitOfWork func(ctx context.Context, repos TransactionalRepositories) error

// execute runs fn as one unit of work under the configured timeout.
// Errors that are not domain errors are surfaced as INTERNAL_ERROR.
func (o *Orchestrator) execute(ctx context.Context, op string, fn unitOfWork) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", op, telemetry.SpanAttrOperation, op)
	defer span.End()

	if o.cfg.OperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.OperationTimeout)
		defer cancel()
	}

	start := time.Now()
	var err error
	telemetry.WithProfilingLabels(ctx, map[string]string{
		telemetry.ProfilingLabelOperation: op,
	}, func(ctx context.Context) {
		err = o.scope.Execute(ctx, func(repos TransactionalRepositories) error {
			return fn(ctx, repos)
		})
	})
	err = normalizeError(err)
	duration := time.Since(start)

	if o.metrics != nil {
		o.metrics.RecordOperation(ctx, op, outcome(err), duration)
	}

	if err == nil {
		telemetry.SetOK(span)
		o.logger.Debug("Ledger operation committed",
			zap.String("operation", op),
			zap.Duration("duration", duration))
		return nil
	}

	telemetry.RecordError(span, err)
	code := shared.CodeOf(err)
	telemetry.SetAttributes(span, telemetry.SpanAttrErrorCode, code)
	if code == shared.CodeInternal {
		o.logger.Error("Ledger operation failed",
			zap.String("operation", op),
			zap.Duration("duration", duration),
			zap.Error(err))
	} else {
		o.logger.Info("Ledger operation rejected",
			zap.String("operation", op),
			zap.String("code", code),
			zap.String("reason", err.Error()))
	}
	return err
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return shared.CodeOf(err)
}

func normalizeError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return shared.NewInternalError("Operation timed out before commit", err)
	}
	if errors.Is(err, context.Canceled) {
		return shared.NewInternalError("Operation cancelled before commit", err)
	}
	return shared.NewInternalError("Unexpected ledger failure", err)
}
