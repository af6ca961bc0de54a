package ledger

import (
	"fmt"
	"time"

	"github.com/erp/installment/internal/domain/finance"
)

// Default values for Config
const (
	DefaultFirstDueInDays   = 30
	DefaultOperationTimeout = 10 * time.Second
)

// Config holds the orchestrator settings. It is built once from the
// application configuration and injected at construction.
type Config struct {
	// DueDatePolicy controls how next_due_date reacts to downward corrections
	DueDatePolicy finance.DueDatePolicy
	// FirstDueInDays is the offset of a new debt's first due date from the sale
	FirstDueInDays int
	// OperationTimeout bounds a single unit of work; zero disables the bound
	OperationTimeout time.Duration
}

// DefaultConfig returns the default orchestrator configuration
func DefaultConfig() Config {
	return Config{
		DueDatePolicy:    finance.DueDatePolicyRecompute,
		FirstDueInDays:   DefaultFirstDueInDays,
		OperationTimeout: DefaultOperationTimeout,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if !c.DueDatePolicy.IsValid() {
		return fmt.Errorf("invalid due date policy %q", c.DueDatePolicy)
	}
	if c.FirstDueInDays < 0 {
		return fmt.Errorf("first due offset must not be negative, got %d", c.FirstDueInDays)
	}
	if c.OperationTimeout < 0 {
		return fmt.Errorf("operation timeout must not be negative, got %s", c.OperationTimeout)
	}
	return nil
}
