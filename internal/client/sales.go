package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	salesapp "github.com/storehub/backend/internal/application/sales"
)

// SaleService accesses the sale endpoints
type SaleService struct {
	c *Client
}

// Sales returns the sale service
func (c *Client) Sales() *SaleService {
	return &SaleService{c: c}
}

// List fetches all sales
func (s *SaleService) List(ctx context.Context) ([]salesapp.SaleResponse, error) {
	var out []salesapp.SaleResponse
	if err := s.c.do(ctx, http.MethodGet, "/sale", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one sale with its items
func (s *SaleService) Get(ctx context.Context, id string) (*salesapp.SaleResponse, error) {
	var out salesapp.SaleResponse
	if err := s.c.do(ctx, http.MethodGet, "/sale/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create records a sale and deducts stock
func (s *SaleService) Create(ctx context.Context, req salesapp.CreateSaleRequest) (*salesapp.SaleResponse, error) {
	var out salesapp.SaleResponse
	if err := s.c.do(ctx, http.MethodPost, "/sale", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a sale and restores the sold stock
func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/sale/"+id, nil, nil)
}

// MonthlyStats fetches the sales summary for one month
func (s *SaleService) MonthlyStats(ctx context.Context, year int, month time.Month) (*salesapp.MonthlySalesStats, error) {
	var out salesapp.MonthlySalesStats
	path := fmt.Sprintf("/sale/stats/monthly?year=%d&month=%d", year, int(month))
	if err := s.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
