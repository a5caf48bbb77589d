package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/storehub/backend/internal/domain/finance"
	"github.com/storehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type mockExpenseRepository struct {
	mock.Mock
}

func (m *mockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *mockExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *mockExpenseRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]finance.Expense, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *mockExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *mockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newExpenseService(t *testing.T) (*ExpenseService, *mockExpenseRepository) {
	t.Helper()
	expenses := new(mockExpenseRepository)
	return NewExpenseService(expenses, zap.NewNop()), expenses
}

func TestExpenseServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("records expense", func(t *testing.T) {
		svc, expenses := newExpenseService(t)
		expenses.On("Save", ctx, mock.AnythingOfType("*finance.Expense")).Return(nil)

		resp, err := svc.Create(ctx, CreateExpenseRequest{
			Description: "Shop rent",
			Amount:      decimal.RequireFromString("450.00"),
			ExpenseDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.Equal(t, "Shop rent", resp.Description)
		assert.True(t, resp.Amount.Equal(decimal.RequireFromString("450.00")))
		expenses.AssertExpectations(t)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc, expenses := newExpenseService(t)

		_, err := svc.Create(ctx, CreateExpenseRequest{Description: "Rent", Amount: decimal.Zero})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
		expenses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		svc, expenses := newExpenseService(t)

		_, err := svc.Create(ctx, CreateExpenseRequest{Description: "  ", Amount: decimal.NewFromInt(10)})

		require.Error(t, err)
		expenses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestExpenseServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("edits description and amount", func(t *testing.T) {
		svc, expenses := newExpenseService(t)
		expense, err := finance.NewExpense("Rent", decimal.NewFromInt(400), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		expenses.On("FindByID", ctx, expense.ID).Return(expense, nil)
		expenses.On("Save", ctx, expense).Return(nil)

		resp, err := svc.Update(ctx, expense.ID, UpdateExpenseRequest{
			Description: "Shop rent June",
			Amount:      decimal.NewFromInt(450),
			ExpenseDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.Equal(t, "Shop rent June", resp.Description)
		assert.True(t, resp.Amount.Equal(decimal.NewFromInt(450)))
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, expenses := newExpenseService(t)
		id := uuid.New()
		expenses.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, id, UpdateExpenseRequest{
			Description: "x",
			Amount:      decimal.NewFromInt(1),
			ExpenseDate: time.Now(),
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestExpenseServiceMonthlyStats(t *testing.T) {
	ctx := context.Background()

	t.Run("sums the month", func(t *testing.T) {
		svc, expenses := newExpenseService(t)
		rent, err := finance.NewExpense("Rent", decimal.RequireFromString("450.00"), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		parts, err := finance.NewExpense("Spare parts", decimal.RequireFromString("120.50"), time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		expenses.On("FindByPeriod", ctx, from, to).Return([]finance.Expense{*rent, *parts}, nil)

		stats, err := svc.MonthlyStats(ctx, 2025, time.June)

		require.NoError(t, err)
		assert.Equal(t, 2, stats.ExpensesCount)
		assert.True(t, stats.TotalAmount.Equal(decimal.RequireFromString("570.50")))
	})

	t.Run("empty month", func(t *testing.T) {
		svc, expenses := newExpenseService(t)
		expenses.On("FindByPeriod", ctx, mock.Anything, mock.Anything).Return([]finance.Expense{}, nil)

		stats, err := svc.MonthlyStats(ctx, 2025, time.February)

		require.NoError(t, err)
		assert.Equal(t, 0, stats.ExpensesCount)
		assert.True(t, stats.TotalAmount.IsZero())
	})
}
