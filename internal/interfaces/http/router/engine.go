package router

import (
	"fmt"
	"time"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/erp/installment/internal/infrastructure/logger"
	"github.com/erp/installment/internal/interfaces/http/handler"
	"github.com/erp/installment/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Options configures NewEngine
type Options struct {
	Logger           *zap.Logger
	ServiceName      string
	TracingEnabled   bool
	ProfilingEnabled bool
	// Meter records HTTP metrics; nil disables them
	Meter          metric.Meter
	MaxBodySize    int64
	TrustedProxies []string
	// IdempotencyStore enables the Idempotency-Key header on commands; nil disables it
	IdempotencyStore shared.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// NewEngine builds the gin engine with the middleware stack, the probes and
// the versioned ledger API.
func NewEngine(opts Options, ledgerHandler *handler.LedgerHandler, systemHandler *handler.SystemHandler) (*gin.Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := middleware.SetupValidator(); err != nil {
		return nil, err
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	httpMetrics, err := middleware.HTTPMetrics(opts.Meter)
	if err != nil {
		return nil, err
	}

	// RequestID must precede tracing and logging so both can tag the request.
	engine.Use(logger.RequestID())
	engine.Use(middleware.Tracing(opts.ServiceName, opts.TracingEnabled)...)
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(httpMetrics)
	engine.Use(middleware.Profiling(opts.ProfilingEnabled))
	if opts.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(opts.MaxBodySize))
	}

	engine.GET("/health", systemHandler.Health)

	var commandMW []gin.HandlerFunc
	if opts.IdempotencyStore != nil {
		commandMW = append(commandMW, middleware.Idempotency(opts.IdempotencyStore, opts.IdempotencyTTL, log))
	}

	NewRouter(engine, WithAPIVersion("v1")).
		Register(LedgerRoutes(ledgerHandler, commandMW...)...).
		Setup()

	return engine, nil
}
