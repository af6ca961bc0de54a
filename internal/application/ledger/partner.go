package ledger

import (
	"context"
	"fmt"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
)

// RemovePartner deletes a partner that no sale, payment or stock entry references
func (o *Orchestrator) RemovePartner(ctx context.Context, id uuid.UUID) error {
	return o.execute(ctx, "remove_partner", func(ctx context.Context, repos TransactionalRepositories) error {
		if _, err := repos.Partners().FindByIDForUpdate(ctx, id); err != nil {
			return err
		}

		references := []struct {
			name  string
			count func(context.Context, uuid.UUID) (int64, error)
		}{
			{"sales", repos.Sales().CountByPartner},
			{"payments", repos.Payments().CountByPartner},
			{"stock entries", repos.StockEntries().CountByPartner},
		}
		for _, ref := range references {
			n, err := ref.count(ctx, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return shared.NewInvalidStateError(fmt.Sprintf(
					"Partner %s is referenced by %d %s and cannot be removed", id, n, ref.name))
			}
		}
		return repos.Partners().Delete(ctx, id)
	})
}
