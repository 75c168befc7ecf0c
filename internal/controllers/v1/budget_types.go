package v1

import (
	"github.com/coincraft/backend/internal/models"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category string          `json:"category" example:"Groceries" default:""`                                              // Expense category the budget applies to, unique across budgets
	Limit    decimal.Decimal `json:"limit" example:"400" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"` // Spending limit for the period
	Period   string          `json:"period" example:"monthly" default:"monthly"`                                           // The budgeting period
}

// model returns the ledger resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Limit:    editable.Limit,
		Period:   editable.Period,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Spent decimal.Decimal `json:"spent" example:"120"` // Spending accumulated from expense transactions, not editable
}

// newBudget returns the API v1 representation of the resource
func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category: model.Category,
			Limit:    model.Limit,
			Period:   model.Period,
		},
		Spent: model.Spent,
	}
}

type BudgetResponse struct {
	Error *string `json:"error"` // The error, if any occurred
	Data  *Budget `json:"data"`  // The resource
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}
