package console

import (
	"context"
	"time"

	financeapp "github.com/storehub/backend/internal/application/finance"
)

// ShowExpenses fetches and prints all expenses
func (c *Console) ShowExpenses(ctx context.Context) error {
	list, err := c.api.Expenses().List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{e.ID, formatDate(e.ExpenseDate), e.Description, e.Amount.StringFixed(2)})
	}
	c.table([]string{"ID", "DATE", "DESCRIPTION", "AMOUNT"}, rows)
	return nil
}

// CreateExpense records an expense, then reprints the collection
func (c *Console) CreateExpense(ctx context.Context, req financeapp.CreateExpenseRequest) error {
	if _, err := c.api.Expenses().Create(ctx, req); err != nil {
		return err
	}
	return c.ShowExpenses(ctx)
}

// UpdateExpense edits an expense, then reprints the collection
func (c *Console) UpdateExpense(ctx context.Context, id string, req financeapp.UpdateExpenseRequest) error {
	if _, err := c.api.Expenses().Update(ctx, id, req); err != nil {
		return err
	}
	return c.ShowExpenses(ctx)
}

// DeleteExpense removes an expense, then reprints the collection
func (c *Console) DeleteExpense(ctx context.Context, id string) error {
	if err := c.api.Expenses().Delete(ctx, id); err != nil {
		return err
	}
	return c.ShowExpenses(ctx)
}

// ShowExpenseStats prints the expense summary for one month
func (c *Console) ShowExpenseStats(ctx context.Context, year int, month time.Month) error {
	stats, err := c.api.Expenses().MonthlyStats(ctx, year, month)
	if err != nil {
		return err
	}

	c.printf("Expenses %d-%02d: %d entries, total %s\n",
		year, int(month), stats.ExpensesCount, stats.TotalAmount.StringFixed(2))
	return nil
}
