package repairs

import (
	"github.com/storehub/backend/internal/domain/shared"
)

// Event types for the repairs domain
const (
	EventRepairReceived  = "repairs.repair.received"
	EventRepairDecided   = "repairs.repair.decided"
	EventRepairDelivered = "repairs.repair.delivered"
)

// RepairReceivedEvent is raised when a device is taken in for repair
type RepairReceivedEvent struct {
	shared.BaseDomainEvent
	CustomerName string `json:"customer_name"`
	DeviceName   string `json:"device_name"`
}

// NewRepairReceivedEvent creates a new RepairReceivedEvent
func NewRepairReceivedEvent(r *Repair) *RepairReceivedEvent {
	return &RepairReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventRepairReceived, "Repair", r.ID),
		CustomerName:    r.CustomerName,
		DeviceName:      r.DeviceName,
	}
}

// RepairDecidedEvent is raised when a repair outcome is recorded
type RepairDecidedEvent struct {
	shared.BaseDomainEvent
	Status RepairStatus `json:"status"`
}

// NewRepairDecidedEvent creates a new RepairDecidedEvent
func NewRepairDecidedEvent(r *Repair) *RepairDecidedEvent {
	return &RepairDecidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventRepairDecided, "Repair", r.ID),
		Status:          r.Status,
	}
}

// RepairDeliveredEvent is raised when a device is handed back
type RepairDeliveredEvent struct {
	shared.BaseDomainEvent
	Status RepairStatus `json:"status"`
}

// NewRepairDeliveredEvent creates a new RepairDeliveredEvent
func NewRepairDeliveredEvent(r *Repair) *RepairDeliveredEvent {
	return &RepairDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventRepairDelivered, "Repair", r.ID),
		Status:          r.Status,
	}
}
