package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storehub/backend/internal/domain/catalog"
	"github.com/storehub/backend/internal/domain/shared"
)

// SaleRepository defines persistence operations for sales. Record and
// Remove take the product aggregates whose stock the sale changed and
// must persist them in the same transaction as the sale itself, so a
// failed write cannot leave stock deducted without a matching sale.
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)
	FindByPeriod(ctx context.Context, from, to time.Time) ([]Sale, error)
	Record(ctx context.Context, sale *Sale, stock []*catalog.Product) error
	Remove(ctx context.Context, sale *Sale, stock []*catalog.Product) error
}
