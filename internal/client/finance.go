package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	financeapp "github.com/storehub/backend/internal/application/finance"
)

// ExpenseService accesses the expense endpoints
type ExpenseService struct {
	c *Client
}

// Expenses returns the expense service
func (c *Client) Expenses() *ExpenseService {
	return &ExpenseService{c: c}
}

// List fetches all expenses
func (s *ExpenseService) List(ctx context.Context) ([]financeapp.ExpenseResponse, error) {
	var out []financeapp.ExpenseResponse
	if err := s.c.do(ctx, http.MethodGet, "/expense", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one expense
func (s *ExpenseService) Get(ctx context.Context, id string) (*financeapp.ExpenseResponse, error) {
	var out financeapp.ExpenseResponse
	if err := s.c.do(ctx, http.MethodGet, "/expense/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, req financeapp.CreateExpenseRequest) (*financeapp.ExpenseResponse, error) {
	var out financeapp.ExpenseResponse
	if err := s.c.do(ctx, http.MethodPost, "/expense", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits an expense
func (s *ExpenseService) Update(ctx context.Context, id string, req financeapp.UpdateExpenseRequest) (*financeapp.ExpenseResponse, error) {
	var out financeapp.ExpenseResponse
	if err := s.c.do(ctx, http.MethodPatch, "/expense/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/expense/"+id, nil, nil)
}

// MonthlyStats fetches the expense summary for one month
func (s *ExpenseService) MonthlyStats(ctx context.Context, year int, month time.Month) (*financeapp.MonthlyExpenseStats, error) {
	var out financeapp.MonthlyExpenseStats
	path := fmt.Sprintf("/expense/stats/monthly?year=%d&month=%d", year, int(month))
	if err := s.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
