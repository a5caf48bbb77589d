package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	repairsapp "github.com/storehub/backend/internal/application/repairs"
)

// RepairService accesses the repair workflow endpoints
type RepairService struct {
	c *Client
}

// Repairs returns the repair service
func (c *Client) Repairs() *RepairService {
	return &RepairService{c: c}
}

// List fetches repairs, optionally filtered by customer name
func (s *RepairService) List(ctx context.Context, customer string) ([]repairsapp.RepairResponse, error) {
	path := "/repair"
	if customer != "" {
		path += "?customer=" + url.QueryEscape(customer)
	}
	var out []repairsapp.RepairResponse
	if err := s.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one repair
func (s *RepairService) Get(ctx context.Context, id string) (*repairsapp.RepairResponse, error) {
	var out repairsapp.RepairResponse
	if err := s.c.do(ctx, http.MethodGet, "/repair/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a device brought in for repair
func (s *RepairService) Create(ctx context.Context, req repairsapp.CreateRepairRequest) (*repairsapp.RepairResponse, error) {
	var out repairsapp.RepairResponse
	if err := s.c.do(ctx, http.MethodPost, "/repair", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits intake details
func (s *RepairService) Update(ctx context.Context, id string, req repairsapp.UpdateRepairRequest) (*repairsapp.RepairResponse, error) {
	var out repairsapp.RepairResponse
	if err := s.c.do(ctx, http.MethodPatch, "/repair/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkFixed records a successful repair
func (s *RepairService) MarkFixed(ctx context.Context, id string) (*repairsapp.RepairResponse, error) {
	var out repairsapp.RepairResponse
	if err := s.c.do(ctx, http.MethodPatch, "/repair/"+id+"/fixed", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkNotFixed records that the device could not be repaired
func (s *RepairService) MarkNotFixed(ctx context.Context, id string) (*repairsapp.RepairResponse, error) {
	var out repairsapp.RepairResponse
	if err := s.c.do(ctx, http.MethodPatch, "/repair/"+id+"/not-fixed", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Deliver hands the device back to the customer
func (s *RepairService) Deliver(ctx context.Context, id string, req repairsapp.DeliverRepairRequest) (*repairsapp.RepairResponse, error) {
	var out repairsapp.RepairResponse
	if err := s.c.do(ctx, http.MethodPatch, "/repair/"+id+"/deliver", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a repair job
func (s *RepairService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/repair/"+id, nil, nil)
}

// MonthlyStats fetches the repair summary for one month
func (s *RepairService) MonthlyStats(ctx context.Context, year int, month time.Month) (*repairsapp.MonthlyRepairStats, error) {
	var out repairsapp.MonthlyRepairStats
	path := fmt.Sprintf("/repair/stats/monthly?year=%d&month=%d", year, int(month))
	if err := s.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
