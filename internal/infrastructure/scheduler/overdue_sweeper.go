// Package scheduler runs the ledger's background jobs.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidConfig is returned when a sweeper is started with a non-positive interval
var ErrInvalidConfig = errors.New("invalid scheduler configuration")

// OverdueMarker flags debts whose next due date has passed.
// *ledger.Orchestrator satisfies it.
type OverdueMarker interface {
	MarkOverdueDebts(ctx context.Context, now time.Time) (int, error)
}

// OverdueSweeperConfig holds configuration for the overdue sweeper
type OverdueSweeperConfig struct {
	Enabled  bool
	Interval time.Duration
	// RunTimeout bounds a single sweep; zero means no bound
	RunTimeout time.Duration
}

// DefaultOverdueSweeperConfig returns default configuration
func DefaultOverdueSweeperConfig() OverdueSweeperConfig {
	return OverdueSweeperConfig{
		Enabled:    true,
		Interval:   time.Hour,
		RunTimeout: 5 * time.Minute,
	}
}

// OverdueSweeper periodically marks overdue debts as late.
// It sweeps once on start and then every Interval.
type OverdueSweeper struct {
	marker OverdueMarker
	config OverdueSweeperConfig
	logger *zap.Logger
	now    func() time.Time

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewOverdueSweeper creates a new overdue sweeper
func NewOverdueSweeper(marker OverdueMarker, config OverdueSweeperConfig, logger *zap.Logger) *OverdueSweeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverdueSweeper{
		marker: marker,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// Start launches the sweep loop. Calling Start on a running or disabled
// sweeper is a no-op.
func (s *OverdueSweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}
	if !s.config.Enabled {
		s.logger.Info("Overdue sweeper is disabled")
		return nil
	}
	if s.config.Interval <= 0 {
		return ErrInvalidConfig
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.isRunning = true

	s.wg.Add(1)
	go s.run(ctx)

	s.logger.Info("Overdue sweeper started", zap.Duration("interval", s.config.Interval))
	return nil
}

// Stop cancels the loop and waits for an in-flight sweep, or until ctx is done
func (s *OverdueSweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	cancel := s.cancel
	s.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Overdue sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning reports whether the loop is active
func (s *OverdueSweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *OverdueSweeper) run(ctx context.Context) {
	defer s.wg.Done()

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one MarkOverdueDebts pass. Failures are logged and retried on
// the next tick.
func (s *OverdueSweeper) sweep(ctx context.Context) {
	if s.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RunTimeout)
		defer cancel()
	}

	start := time.Now()
	marked, err := s.marker.MarkOverdueDebts(ctx, s.now())
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		s.logger.Error("Overdue sweep failed",
			zap.Int("marked", marked),
			zap.Error(err))
		return
	}
	s.logger.Debug("Overdue sweep finished",
		zap.Int("marked", marked),
		zap.Duration("duration", time.Since(start)))
}
