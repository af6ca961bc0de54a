package catalog

import (
	"strings"

	"github.com/erp/installment/internal/domain/shared"
)

// DefaultTermMonths is used when a category does not set an installment term
const DefaultTermMonths = 12

// Category groups products and carries the default installment term
// (in months) applied to sales of its products.
type Category struct {
	shared.BaseAggregateRoot
	Title string
	Time  int
}

// NewCategory creates a category
func NewCategory(title string, termMonths int) (*Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewValidationError("Category title cannot be empty")
	}
	if termMonths == 0 {
		termMonths = DefaultTermMonths
	}
	if termMonths < 1 {
		return nil, shared.NewValidationError("Category time must be at least 1 month")
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Time:              termMonths,
	}, nil
}
