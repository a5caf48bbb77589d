package repairs

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/repairs"
)

// CreateRepairRequest is the input for registering a repair job
type CreateRepairRequest struct {
	CustomerName string          `json:"customerName" binding:"required"`
	DeviceName   string          `json:"deviceName" binding:"required"`
	ProblemDesc  string          `json:"problemDesc"`
	Cost         decimal.Decimal `json:"cost" binding:"decimalgte0"`
	ReceivedAt   time.Time       `json:"receivedAt"`
}

// UpdateRepairRequest is the input for editing intake details
type UpdateRepairRequest struct {
	CustomerName string          `json:"customerName" binding:"required"`
	DeviceName   string          `json:"deviceName" binding:"required"`
	ProblemDesc  string          `json:"problemDesc"`
	Cost         decimal.Decimal `json:"cost" binding:"decimalgte0"`
}

// DeliverRepairRequest optionally backdates the hand-over
type DeliverRepairRequest struct {
	DeliveredAt time.Time `json:"deliveredAt"`
}

// RepairResponse is the wire representation of a repair job
type RepairResponse struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	DeviceName   string          `json:"deviceName"`
	ProblemDesc  string          `json:"problemDesc"`
	Cost         decimal.Decimal `json:"cost"`
	Status       string          `json:"status"`
	IsDelivered  bool            `json:"isDelivered"`
	DeliveredAt  *time.Time      `json:"deliveredAt,omitempty"`
	ReceivedAt   time.Time       `json:"receivedAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// MonthlyRepairStats summarizes one month of repair intake.
// TotalCost counts fixed repairs only; devices that could not be
// repaired are not billed.
type MonthlyRepairStats struct {
	TotalCount int              `json:"totalCount"`
	TotalCost  decimal.Decimal  `json:"totalCost"`
	Repairs    []RepairResponse `json:"repairs"`
}

// ToRepairResponse converts a domain repair to its wire form
func ToRepairResponse(r *repairs.Repair) RepairResponse {
	return RepairResponse{
		ID:           r.ID.String(),
		CustomerName: r.CustomerName,
		DeviceName:   r.DeviceName,
		ProblemDesc:  r.ProblemDesc,
		Cost:         r.Cost,
		Status:       string(r.Status),
		IsDelivered:  r.IsDelivered,
		DeliveredAt:  r.DeliveredAt,
		ReceivedAt:   r.ReceivedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToRepairResponses converts a slice of domain repairs
func ToRepairResponses(list []repairs.Repair) []RepairResponse {
	responses := make([]RepairResponse, 0, len(list))
	for i := range list {
		responses = append(responses, ToRepairResponse(&list[i]))
	}
	return responses
}
