package finance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storehub/backend/internal/domain/shared"
)

// Expense is a money-out entry in the shop ledger
type Expense struct {
	shared.BaseAggregateRoot
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ExpenseDate time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense entry
func NewExpense(description string, amount decimal.Decimal, expenseDate time.Time) (*Expense, error) {
	if err := validateExpense(description, amount); err != nil {
		return nil, err
	}
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	return &Expense{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Description:       strings.TrimSpace(description),
		Amount:            amount,
		ExpenseDate:       expenseDate,
	}, nil
}

// Update updates the expense entry
func (e *Expense) Update(description string, amount decimal.Decimal, expenseDate time.Time) error {
	if err := validateExpense(description, amount); err != nil {
		return err
	}
	if expenseDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Expense date is required")
	}

	e.Description = strings.TrimSpace(description)
	e.Amount = amount
	e.ExpenseDate = expenseDate
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// validateExpense validates description and amount
func validateExpense(description string, amount decimal.Decimal) error {
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Expense description cannot be empty")
	}
	if len(description) > 255 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Expense description cannot exceed 255 characters")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	return nil
}
