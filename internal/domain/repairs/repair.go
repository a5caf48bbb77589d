package repairs

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/shared"
)

// RepairStatus represents the outcome of a repair job
type RepairStatus string

const (
	RepairStatusPending  RepairStatus = "pending"
	RepairStatusFixed    RepairStatus = "fixed"
	RepairStatusNotFixed RepairStatus = "not_fixed"
)

// Repair is a customer device repair job tracked from intake to delivery
type Repair struct {
	shared.BaseAggregateRoot
	CustomerName string          `gorm:"type:varchar(100);not null;index"`
	DeviceName   string          `gorm:"type:varchar(150);not null"`
	ProblemDesc  string          `gorm:"type:text"`
	Cost         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status       RepairStatus    `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsDelivered  bool            `gorm:"not null;default:false"`
	DeliveredAt  *time.Time
	ReceivedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Repair) TableName() string {
	return "repairs"
}

// NewRepair registers a device brought in for repair
func NewRepair(customerName, deviceName, problemDesc string, cost decimal.Decimal, receivedAt time.Time) (*Repair, error) {
	if err := validateRepair(customerName, deviceName, cost); err != nil {
		return nil, err
	}
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	repair := &Repair{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerName:      strings.TrimSpace(customerName),
		DeviceName:        strings.TrimSpace(deviceName),
		ProblemDesc:       problemDesc,
		Cost:              cost,
		Status:            RepairStatusPending,
		ReceivedAt:        receivedAt,
	}

	repair.AddDomainEvent(NewRepairReceivedEvent(repair))

	return repair, nil
}

// Update updates the repair's intake details
func (r *Repair) Update(customerName, deviceName, problemDesc string, cost decimal.Decimal) error {
	if err := validateRepair(customerName, deviceName, cost); err != nil {
		return err
	}
	if r.IsDelivered {
		return shared.NewDomainError("REPAIR_DELIVERED", "Delivered repairs cannot be modified")
	}

	r.CustomerName = strings.TrimSpace(customerName)
	r.DeviceName = strings.TrimSpace(deviceName)
	r.ProblemDesc = problemDesc
	r.Cost = cost
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// MarkFixed records that the device was repaired successfully
func (r *Repair) MarkFixed() error {
	return r.decide(RepairStatusFixed)
}

// MarkNotFixed records that the device could not be repaired
func (r *Repair) MarkNotFixed() error {
	return r.decide(RepairStatusNotFixed)
}

// decide sets the repair outcome. Outcomes can be revised until delivery.
func (r *Repair) decide(status RepairStatus) error {
	if r.IsDelivered {
		return shared.NewDomainError("REPAIR_DELIVERED", "Delivered repairs cannot change outcome")
	}

	r.Status = status
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRepairDecidedEvent(r))

	return nil
}

// Deliver hands the device back to the customer.
// A repair must have a fixed/not-fixed outcome before delivery.
func (r *Repair) Deliver(deliveredAt time.Time) error {
	if r.IsDelivered {
		return shared.NewDomainError("REPAIR_DELIVERED", "Repair has already been delivered")
	}
	if r.Status == RepairStatusPending {
		return shared.NewDomainError("REPAIR_NOT_DECIDED", "Repair outcome must be recorded before delivery")
	}
	if deliveredAt.IsZero() {
		deliveredAt = time.Now()
	}

	r.IsDelivered = true
	r.DeliveredAt = &deliveredAt
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRepairDeliveredEvent(r))

	return nil
}

// IsBillable reports whether the repair cost counts as revenue
func (r *Repair) IsBillable() bool {
	return r.Status == RepairStatusFixed
}

// validateRepair validates intake fields
func validateRepair(customerName, deviceName string, cost decimal.Decimal) error {
	if strings.TrimSpace(customerName) == "" {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}
	if len(customerName) > 100 {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot exceed 100 characters")
	}
	if strings.TrimSpace(deviceName) == "" {
		return shared.NewDomainError("INVALID_DEVICE", "Device name cannot be empty")
	}
	if len(deviceName) > 150 {
		return shared.NewDomainError("INVALID_DEVICE", "Device name cannot exceed 150 characters")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Repair cost cannot be negative")
	}
	return nil
}
