package repairs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/repairs"
	"github.com/storehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RepairService implements the repair workflow use cases
type RepairService struct {
	repairs repairs.RepairRepository
	logger  *zap.Logger
}

// NewRepairService creates a new repair service
func NewRepairService(repairRepo repairs.RepairRepository, logger *zap.Logger) *RepairService {
	return &RepairService{
		repairs: repairRepo,
		logger:  logger.Named("repairs.repair"),
	}
}

// List returns repair jobs, optionally filtered by customer name
func (s *RepairService) List(ctx context.Context, customer string) ([]RepairResponse, error) {
	customer = strings.TrimSpace(customer)
	if customer != "" {
		list, err := s.repairs.FindByCustomer(ctx, customer)
		if err != nil {
			return nil, err
		}
		return ToRepairResponses(list), nil
	}

	filter := shared.DefaultFilter()
	filter.OrderBy = "received_at"
	filter.OrderDir = "desc"

	list, err := s.repairs.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToRepairResponses(list), nil
}

// Get returns a single repair job
func (s *RepairService) Get(ctx context.Context, id uuid.UUID) (*RepairResponse, error) {
	repair, err := s.repairs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToRepairResponse(repair)
	return &resp, nil
}

// Create registers a device brought in for repair
func (s *RepairService) Create(ctx context.Context, req CreateRepairRequest) (*RepairResponse, error) {
	repair, err := repairs.NewRepair(req.CustomerName, req.DeviceName, req.ProblemDesc, req.Cost, req.ReceivedAt)
	if err != nil {
		return nil, err
	}

	if err := s.repairs.Save(ctx, repair); err != nil {
		return nil, err
	}

	s.logger.Info("Repair registered",
		zap.String("id", repair.ID.String()),
		zap.String("customer", repair.CustomerName),
		zap.String("device", repair.DeviceName),
	)

	resp := ToRepairResponse(repair)
	return &resp, nil
}

// Update edits the intake details of an undelivered repair
func (s *RepairService) Update(ctx context.Context, id uuid.UUID, req UpdateRepairRequest) (*RepairResponse, error) {
	repair, err := s.repairs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repair.Update(req.CustomerName, req.DeviceName, req.ProblemDesc, req.Cost); err != nil {
		return nil, err
	}

	if err := s.repairs.Save(ctx, repair); err != nil {
		return nil, err
	}

	resp := ToRepairResponse(repair)
	return &resp, nil
}

// MarkFixed records a successful repair outcome
func (s *RepairService) MarkFixed(ctx context.Context, id uuid.UUID) (*RepairResponse, error) {
	return s.decide(ctx, id, (*repairs.Repair).MarkFixed)
}

// MarkNotFixed records that the device could not be repaired
func (s *RepairService) MarkNotFixed(ctx context.Context, id uuid.UUID) (*RepairResponse, error) {
	return s.decide(ctx, id, (*repairs.Repair).MarkNotFixed)
}

func (s *RepairService) decide(ctx context.Context, id uuid.UUID, outcome func(*repairs.Repair) error) (*RepairResponse, error) {
	repair, err := s.repairs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := outcome(repair); err != nil {
		return nil, err
	}

	if err := s.repairs.Save(ctx, repair); err != nil {
		return nil, err
	}

	s.logger.Info("Repair outcome recorded",
		zap.String("id", repair.ID.String()),
		zap.String("status", string(repair.Status)),
	)

	resp := ToRepairResponse(repair)
	return &resp, nil
}

// Deliver hands the device back to the customer
func (s *RepairService) Deliver(ctx context.Context, id uuid.UUID, req DeliverRepairRequest) (*RepairResponse, error) {
	repair, err := s.repairs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repair.Deliver(req.DeliveredAt); err != nil {
		return nil, err
	}

	if err := s.repairs.Save(ctx, repair); err != nil {
		return nil, err
	}

	s.logger.Info("Repair delivered", zap.String("id", repair.ID.String()))

	resp := ToRepairResponse(repair)
	return &resp, nil
}

// Delete removes a repair job
func (s *RepairService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repairs.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repairs.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Repair deleted", zap.String("id", id.String()))
	return nil
}

// MonthlyStats summarizes repairs received in one calendar month
func (s *RepairService) MonthlyStats(ctx context.Context, year int, month time.Month) (*MonthlyRepairStats, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	list, err := s.repairs.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i := range list {
		if list[i].IsBillable() {
			total = total.Add(list[i].Cost)
		}
	}

	return &MonthlyRepairStats{
		TotalCount: len(list),
		TotalCost:  total,
		Repairs:    ToRepairResponses(list),
	}, nil
}
