package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// overdueBatchSize bounds the debts flagged in one unit of work
const overdueBatchSize = 500

// MarkOverdueDebts flags open debts whose next due date has passed as late.
// It works in batches and returns the number of debts flagged.
func (o *Orchestrator) MarkOverdueDebts(ctx context.Context, now time.Time) (int, error) {
	total := 0
	for {
		marked := 0
		err := o.execute(ctx, "mark_overdue_debts", func(ctx context.Context, repos TransactionalRepositories) error {
			debts, err := repos.Debts().FindOverdueForUpdate(ctx, now, overdueBatchSize)
			if err != nil {
				return err
			}
			for _, debt := range debts {
				if !debt.MarkLate(now) {
					continue
				}
				if err := repos.Debts().SaveWithLock(ctx, debt); err != nil {
					return err
				}
				marked++
			}
			return nil
		})
		if err != nil {
			return total, err
		}
		total += marked
		if marked < overdueBatchSize {
			break
		}
	}

	if total > 0 {
		o.logger.Info("Marked overdue debts", zap.Int("count", total))
		if o.metrics != nil {
			o.metrics.RecordOverdueMarked(ctx, int64(total))
		}
	}
	return total, nil
}
