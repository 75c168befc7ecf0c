package models

import "errors"

// ErrResourceNotFound is returned when a resource with the requested ID does
// not exist.
var ErrResourceNotFound = errors.New("there is no resource for the ID you specified")

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionCategoryRequired  = errors.New("transactions must have a category")
	ErrTransactionTypeInvalid       = errors.New("the specified transaction type is invalid")
)

// Budget errors
var (
	ErrBudgetLimitNotPositive = errors.New("budget limits must be larger than zero")
	ErrBudgetCategoryRequired = errors.New("budgets must have a category")
	ErrBudgetCategoryInUse    = errors.New("there already is a budget for this category")
)

// Goal errors
var (
	ErrGoalTitleRequired     = errors.New("goals must have a title")
	ErrGoalTargetNotPositive = errors.New("goal target amounts must be larger than zero")
	ErrGoalCurrentNegative   = errors.New("the current amount of a goal cannot be negative")
	ErrGoalDeadlineRequired  = errors.New("goals must have a deadline")
	ErrGoalCategoryInvalid   = errors.New("the specified goal category is invalid")
	ErrGoalAmountNotPositive = errors.New("amounts added to a goal must be larger than zero")
)

// Holding errors
var (
	ErrHoldingSymbolRequired    = errors.New("holdings must have a symbol")
	ErrHoldingNameRequired      = errors.New("holdings must have a name")
	ErrHoldingSharesNotPositive = errors.New("holdings must have more than zero shares")
	ErrHoldingPriceNotPositive  = errors.New("the purchase price of a holding must be larger than zero")
)
