package ledger

import (
	"sort"

	"github.com/coincraft/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Summary are the aggregate figures of the whole ledger.
type Summary struct {
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Balance      decimal.Decimal `json:"balance"`
}

// Summary returns income, expenses and the resulting balance over all
// transactions.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary Summary
	for _, transaction := range s.transactions {
		switch transaction.Type {
		case models.TransactionTypeIncome:
			summary.IncomeTotal = summary.IncomeTotal.Add(transaction.Amount)
		case models.TransactionTypeExpense:
			summary.ExpenseTotal = summary.ExpenseTotal.Add(transaction.Amount)
		}
	}

	summary.Balance = summary.IncomeTotal.Sub(summary.ExpenseTotal)
	return summary
}

// CategoryTotal is the expense total of a single category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseDistribution returns the expense total per category, largest first.
// Categories without expenses are omitted.
func (s *Store) ExpenseDistribution() []CategoryTotal {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[string]decimal.Decimal)
	for _, transaction := range s.transactions {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		totals[transaction.Category] = totals[transaction.Category].Add(transaction.Amount)
	}

	distribution := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		distribution = append(distribution, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(distribution, func(i, j int) bool {
		if !distribution[i].Total.Equal(distribution[j].Total) {
			return distribution[i].Total.GreaterThan(distribution[j].Total)
		}

		return distribution[i].Category < distribution[j].Category
	})

	return distribution
}

// BudgetPerformance is a budget together with its derived spending figures.
type BudgetPerformance struct {
	models.Budget
	Utilization decimal.Decimal `json:"utilization"`
	Remaining   decimal.Decimal `json:"remaining"`
	OverBudget  bool            `json:"overBudget"`
}

// BudgetPerformance returns the spending figures for every budget.
func (s *Store) BudgetPerformance() []BudgetPerformance {
	s.mu.Lock()
	defer s.mu.Unlock()

	performance := make([]BudgetPerformance, 0, len(s.budgets))
	for _, budget := range s.budgets {
		performance = append(performance, BudgetPerformance{
			Budget:      budget,
			Utilization: budget.Utilization(),
			Remaining:   budget.Remaining(),
			OverBudget:  budget.Spent.GreaterThan(budget.Limit),
		})
	}

	return performance
}
