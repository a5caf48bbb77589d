package repairs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storehub/backend/internal/domain/shared"
)

// RepairRepository defines persistence operations for repairs
type RepairRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Repair, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Repair, error)
	FindByCustomer(ctx context.Context, customer string) ([]Repair, error)
	FindByPeriod(ctx context.Context, from, to time.Time) ([]Repair, error)
	Save(ctx context.Context, repair *Repair) error
	Delete(ctx context.Context, id uuid.UUID) error
}
