package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/erp/installment/internal/application/ledger"
	"github.com/erp/installment/internal/domain/finance"
	"github.com/erp/installment/internal/infrastructure/cache"
	"github.com/erp/installment/internal/infrastructure/config"
	"github.com/erp/installment/internal/infrastructure/logger"
	"github.com/erp/installment/internal/infrastructure/persistence"
	"github.com/erp/installment/internal/infrastructure/scheduler"
	"github.com/erp/installment/internal/infrastructure/telemetry"
	"github.com/erp/installment/internal/interfaces/http/handler"
	"github.com/erp/installment/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(baseLog)
	}()

	ctx := context.Background()
	tel := cfg.Telemetry

	// Telemetry providers
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           tel.Enabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		SamplingRatio:     tel.SamplingRatio,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           tel.MetricsEnabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		ExportInterval:    tel.MetricsInterval,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           tel.LogsEnabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log := loggerProvider.Bridge(baseLog, zapcore.InfoLevel)

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           tel.ProfilingEnabled,
		ServerAddress:     tel.ProfilingServerAddress,
		ApplicationName:   tel.ServiceName,
		ProfileMemory:     tel.ProfilingMemory,
		ProfileContention: tel.ProfilingContention,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if tel.SpanProfilesEnabled && profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	log.Info("Starting installment ledger",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(tel.DBSlowQueryThresh))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := db.Ping(ctx); err != nil {
		log.Fatal("Database is not reachable", zap.Error(err))
	}
	meter := meterProvider.Meter(tel.ServiceName)
	if err := telemetry.InstrumentDB(db.DB, meter, telemetry.DBConfig{
		TraceEnabled:    tel.DBTraceEnabled,
		LogFullSQL:      tel.DBLogFullSQL,
		SlowQueryThresh: tel.DBSlowQueryThresh,
	}, log); err != nil {
		log.Fatal("Failed to instrument database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Ledger
	policy, err := finance.ParseDueDatePolicy(cfg.Ledger.DueDatePolicy)
	if err != nil {
		log.Fatal("Invalid ledger configuration", zap.Error(err))
	}
	orchestrator, err := ledger.NewOrchestrator(db.TransactionScope(), ledger.Config{
		DueDatePolicy:    policy,
		FirstDueInDays:   cfg.Ledger.FirstDueInDays,
		OperationTimeout: cfg.Ledger.OperationTimeout,
	}, log.Named("ledger"))
	if err != nil {
		log.Fatal("Failed to create ledger orchestrator", zap.Error(err))
	}
	if meterProvider.IsEnabled() {
		ledgerMetrics, err := telemetry.NewLedgerMetrics(meter, log)
		if err != nil {
			log.Fatal("Failed to create ledger metrics", zap.Error(err))
		}
		orchestrator.SetBusinessMetrics(ledgerMetrics)
	}

	idempotencyStore, err := cache.NewIdempotencyStore(cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}

	sweeperConfig := scheduler.DefaultOverdueSweeperConfig()
	sweeperConfig.Enabled = cfg.Scheduler.OverdueEnabled
	sweeperConfig.Interval = cfg.Scheduler.OverdueInterval
	sweeper := scheduler.NewOverdueSweeper(orchestrator, sweeperConfig, log.Named("scheduler"))
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal("Failed to start overdue sweeper", zap.Error(err))
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	var httpMeter = meter
	if !meterProvider.IsEnabled() {
		httpMeter = nil
	}
	engine, err := router.NewEngine(router.Options{
		Logger:           log,
		ServiceName:      tel.ServiceName,
		TracingEnabled:   tracerProvider.IsEnabled(),
		ProfilingEnabled: profiler.IsEnabled(),
		Meter:            httpMeter,
		MaxBodySize:      cfg.HTTP.MaxBodySize,
		TrustedProxies:   cfg.HTTP.TrustedProxies,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.HTTP.IdempotencyTTL,
	}, handler.NewLedgerHandler(orchestrator), handler.NewSystemHandler(db))
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := sweeper.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping overdue sweeper", zap.Error(err))
	}
	if err := idempotencyStore.Close(); err != nil {
		log.Error("Error closing idempotency store", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	_ = meterProvider.Shutdown(shutdownCtx)
	_ = tracerProvider.Shutdown(shutdownCtx)
	_ = loggerProvider.Shutdown(shutdownCtx)

	baseLog.Info("Server exited gracefully")
}
