package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Budget represents a spending limit for a single expense category.
//
// Budgets are joined to transactions by category string equality. This is a
// deliberate simplification inherited from the dashboard's data model, there
// is no referential integrity between the two.
type Budget struct {
	DefaultModel
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Period   string          `json:"period"`
}

// Validate checks the budget for invalid values.
func (b *Budget) Validate() error {
	b.Category = strings.TrimSpace(b.Category)

	if b.Category == "" {
		return ErrBudgetCategoryRequired
	}

	if !b.Limit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	if b.Period == "" {
		b.Period = "monthly"
	}

	return nil
}

// Utilization returns how much of the budget limit has been spent, in
// percent. Values above 100 mean the budget is exceeded.
func (b Budget) Utilization() decimal.Decimal {
	if !b.Limit.IsPositive() {
		return decimal.Zero
	}

	return b.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100))
}

// Remaining returns the amount left in the budget. It is negative when the
// budget is exceeded.
func (b Budget) Remaining() decimal.Decimal {
	return b.Limit.Sub(b.Spent)
}
