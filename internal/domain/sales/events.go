package sales

import (
	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/shared"
)

// EventSaleRecorded is raised when a sale is recorded
const EventSaleRecorded = "sales.sale.recorded"

// SaleRecordedEvent is raised when a sale is recorded
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}

// NewSaleRecordedEvent creates a new SaleRecordedEvent
func NewSaleRecordedEvent(s *Sale) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventSaleRecorded, "Sale", s.ID),
		TotalAmount:     s.TotalAmount,
		ItemCount:       s.ItemCount(),
	}
}
