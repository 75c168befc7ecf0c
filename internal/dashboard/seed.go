package dashboard

import (
	"time"

	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/types"
	"github.com/shopspring/decimal"
)

// The demo session: a month of ledger activity, three savings goals and a
// small stock portfolio.

func seedTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Type:        models.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(4200),
			Category:    "Salary",
			Description: "Monthly salary",
			Date:        types.NewDate(2024, time.January, 15),
		},
		{
			Type:        models.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(850),
			Category:    "Rent",
			Description: "Monthly rent payment",
			Date:        types.NewDate(2024, time.January, 14),
		},
		{
			Type:        models.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(120),
			Category:    "Groceries",
			Description: "Weekly grocery shopping",
			Date:        types.NewDate(2024, time.January, 13),
		},
		{
			Type:        models.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(45),
			Category:    "Transportation",
			Description: "Gas fill-up",
			Date:        types.NewDate(2024, time.January, 12),
		},
	}
}

func seedBudgets() []models.Budget {
	return []models.Budget{
		{Category: "Groceries", Limit: decimal.NewFromInt(400), Spent: decimal.NewFromInt(120), Period: "monthly"},
		{Category: "Transportation", Limit: decimal.NewFromInt(200), Spent: decimal.NewFromInt(45), Period: "monthly"},
		{Category: "Entertainment", Limit: decimal.NewFromInt(150), Spent: decimal.Zero, Period: "monthly"},
		{Category: "Dining Out", Limit: decimal.NewFromInt(300), Spent: decimal.Zero, Period: "monthly"},
	}
}

func seedGoals() []models.Goal {
	return []models.Goal{
		{
			Title:         "Emergency Fund",
			Description:   "Six months of living expenses",
			TargetAmount:  decimal.NewFromInt(15000),
			CurrentAmount: decimal.NewFromInt(8500),
			Deadline:      types.NewDate(2024, time.December, 31),
			Category:      models.GoalCategorySavings,
		},
		{
			Title:         "Vacation Trip",
			Description:   "Summer vacation to Europe",
			TargetAmount:  decimal.NewFromInt(5000),
			CurrentAmount: decimal.NewFromInt(2800),
			Deadline:      types.NewDate(2024, time.August, 15),
			Category:      models.GoalCategoryTravel,
		},
		{
			Title:         "New Car",
			Description:   "Down payment for a new car",
			TargetAmount:  decimal.NewFromInt(12000),
			CurrentAmount: decimal.NewFromInt(4200),
			Deadline:      types.NewDate(2024, time.October, 1),
			Category:      models.GoalCategoryPurchase,
		},
	}
}

func seedHoldings() []models.Holding {
	return []models.Holding{
		{
			Symbol:        "AAPL",
			Name:          "Apple Inc.",
			Shares:        decimal.NewFromInt(50),
			PurchasePrice: decimal.RequireFromString("150.25"),
			CurrentPrice:  decimal.RequireFromString("175.30"),
			PurchaseDate:  types.NewDate(2024, time.January, 10),
		},
		{
			Symbol:        "GOOGL",
			Name:          "Alphabet Inc.",
			Shares:        decimal.NewFromInt(25),
			PurchasePrice: decimal.RequireFromString("2800.50"),
			CurrentPrice:  decimal.RequireFromString("2950.75"),
			PurchaseDate:  types.NewDate(2024, time.January, 15),
		},
		{
			Symbol:        "MSFT",
			Name:          "Microsoft Corporation",
			Shares:        decimal.NewFromInt(30),
			PurchasePrice: decimal.RequireFromString("380.00"),
			CurrentPrice:  decimal.RequireFromString("395.20"),
			PurchaseDate:  types.NewDate(2024, time.January, 20),
		},
	}
}
