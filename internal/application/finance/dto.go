package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/finance"
)

// CreateExpenseRequest is the input for recording an expense
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	ExpenseDate time.Time       `json:"expenseDate"`
}

// UpdateExpenseRequest is the input for editing an expense
type UpdateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	ExpenseDate time.Time       `json:"expenseDate" binding:"required"`
}

// ExpenseResponse is the wire representation of an expense
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MonthlyExpenseStats summarizes one month of expenses
type MonthlyExpenseStats struct {
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	ExpensesCount int               `json:"expensesCount"`
	Expenses      []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain expense to its wire form
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses
func ToExpenseResponses(list []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(list))
	for i := range list {
		responses = append(responses, ToExpenseResponse(&list[i]))
	}
	return responses
}
