package models

import (
	"math"
	"strings"
	"time"

	"github.com/coincraft/backend/internal/types"
	"github.com/shopspring/decimal"
)

// GoalCategory is the tag a savings goal is filed under.
type GoalCategory string

const (
	GoalCategorySavings    GoalCategory = "savings"
	GoalCategoryTravel     GoalCategory = "travel"
	GoalCategoryPurchase   GoalCategory = "purchase"
	GoalCategoryInvestment GoalCategory = "investment"
	GoalCategoryEducation  GoalCategory = "education"
	GoalCategoryOther      GoalCategory = "other"
)

// Valid reports whether the category is one of the known goal categories.
func (c GoalCategory) Valid() bool {
	switch c {
	case GoalCategorySavings, GoalCategoryTravel, GoalCategoryPurchase,
		GoalCategoryInvestment, GoalCategoryEducation, GoalCategoryOther:
		return true
	}

	return false
}

// Goal represents a savings goal with a target amount and a deadline.
type Goal struct {
	DefaultModel
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      types.Date      `json:"deadline"`
	Category      GoalCategory    `json:"category"`
}

// Validate checks the goal for invalid values.
func (g *Goal) Validate() error {
	g.Title = strings.TrimSpace(g.Title)
	g.Description = strings.TrimSpace(g.Description)

	if g.Title == "" {
		return ErrGoalTitleRequired
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	if g.Deadline.IsZero() {
		return ErrGoalDeadlineRequired
	}

	if g.Category == "" {
		g.Category = GoalCategorySavings
	}

	if !g.Category.Valid() {
		return ErrGoalCategoryInvalid
	}

	return nil
}

var oneHundred = decimal.NewFromInt(100)

// Progress returns how far along the goal is, in percent, capped at 100.
// A goal without a positive target has a progress of 0.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	progress := g.CurrentAmount.Div(g.TargetAmount).Mul(oneHundred)
	return decimal.Min(progress, oneHundred)
}

// Achieved reports whether the goal's target amount has been reached.
func (g Goal) Achieved() bool {
	return g.TargetAmount.IsPositive() && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// DaysRemaining returns the number of days until the deadline, rounded up.
// Negative values mean the deadline has passed.
func (g Goal) DaysRemaining(now time.Time) int {
	diff := g.Deadline.Time().Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// Overdue reports whether the deadline has passed without the goal being
// achieved. An achieved goal is never overdue.
func (g Goal) Overdue(now time.Time) bool {
	return g.DaysRemaining(now) < 0 && !g.Achieved()
}
