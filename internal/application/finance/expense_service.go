package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/finance"
	"github.com/storehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ExpenseService implements expense ledger use cases
type ExpenseService struct {
	expenses finance.ExpenseRepository
	logger   *zap.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenses finance.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
		logger:   logger.Named("finance.expense"),
	}
}

// List returns all expenses, newest first
func (s *ExpenseService) List(ctx context.Context) ([]ExpenseResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "expense_date"
	filter.OrderDir = "desc"

	list, err := s.expenses.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToExpenseResponses(list), nil
}

// Get returns a single expense
func (s *ExpenseService) Get(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := finance.NewExpense(req.Description, req.Amount, req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("Expense recorded",
		zap.String("id", expense.ID.String()),
		zap.String("amount", expense.Amount.String()),
	)

	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// Update edits an existing expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(req.Description, req.Amount, req.ExpenseDate); err != nil {
		return nil, err
	}

	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}

	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenses.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.expenses.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Expense deleted", zap.String("id", id.String()))
	return nil
}

// MonthlyStats summarizes the expenses of one calendar month
func (s *ExpenseService) MonthlyStats(ctx context.Context, year int, month time.Month) (*MonthlyExpenseStats, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	list, err := s.expenses.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i := range list {
		total = total.Add(list[i].Amount)
	}

	return &MonthlyExpenseStats{
		TotalAmount:   total,
		ExpensesCount: len(list),
		Expenses:      ToExpenseResponses(list),
	}, nil
}
