package ledger_test

import (
	"testing"
	"time"

	"github.com/coincraft/backend/internal/ledger"
	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ledger.Store {
	t.Helper()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return ledger.New(zerolog.Nop(), ledger.WithClock(func() time.Time { return now }))
}

func groceriesBudget(t *testing.T, s *ledger.Store) models.Budget {
	t.Helper()

	budget, err := s.AddBudget(models.Budget{
		Category: "Groceries",
		Limit:    decimal.NewFromInt(400),
		Spent:    decimal.NewFromInt(120),
	})
	require.Nil(t, err)

	return budget
}

func TestAddTransactionIncrementsCount(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 3; i++ {
		_, err := s.AddTransaction(models.Transaction{
			Type:     models.TransactionTypeIncome,
			Amount:   decimal.NewFromInt(100),
			Category: "Salary",
		})
		require.Nil(t, err)
		assert.Equal(t, i, s.TotalCount())
	}
}

func TestAddTransactionPrepends(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(100),
		Category: "Salary",
	})
	require.Nil(t, err)

	second, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(50),
		Category: "Groceries",
	})
	require.Nil(t, err)

	transactions := s.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, second.ID, transactions[0].ID)
	assert.Equal(t, first.ID, transactions[1].ID)
}

func TestAddTransactionDefaultsDate(t *testing.T) {
	s := newTestStore(t)

	transaction, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Groceries",
	})
	require.Nil(t, err)

	assert.Equal(t, types.NewDate(2024, 1, 15), transaction.Date)
}

func TestAddTransactionRejectsInvalid(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Category: "Groceries",
	})
	assert.ErrorIs(t, err, models.ErrTransactionAmountNotPositive)

	// Rejected input must not mutate any state.
	assert.Equal(t, 0, s.TotalCount())
}

func TestExpenseUpdatesMatchingBudget(t *testing.T) {
	s := newTestStore(t)
	budget := groceriesBudget(t, s)

	transaction, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(50),
		Category: "Groceries",
	})
	require.Nil(t, err)

	budgets := s.Budgets()
	require.Len(t, budgets, 1)
	assert.True(t, budgets[0].Spent.Equal(decimal.NewFromInt(170)),
		"spent is %s, not 170", budgets[0].Spent)

	// Deleting the transaction returns the budget to its prior state.
	s.DeleteTransaction(transaction.ID)

	budgets = s.Budgets()
	assert.True(t, budgets[0].Spent.Equal(budget.Spent),
		"spent is %s, not %s", budgets[0].Spent, budget.Spent)
}

func TestExpenseWithoutBudgetIsSilent(t *testing.T) {
	s := newTestStore(t)
	groceriesBudget(t, s)

	_, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(99),
		Category: "Utilities",
	})
	require.Nil(t, err)

	budgets := s.Budgets()
	assert.True(t, budgets[0].Spent.Equal(decimal.NewFromInt(120)))
}

func TestIncomeDoesNotTouchBudgets(t *testing.T) {
	s := newTestStore(t)
	groceriesBudget(t, s)

	_, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(100),
		Category: "Groceries",
	})
	require.Nil(t, err)

	budgets := s.Budgets()
	assert.True(t, budgets[0].Spent.Equal(decimal.NewFromInt(120)))
}

func TestDeleteTransactionFloorsSpentAtZero(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddBudget(models.Budget{
		Category: "Groceries",
		Limit:    decimal.NewFromInt(400),
	})
	require.Nil(t, err)

	// The budget starts at zero spent, so after adding and removing an
	// expense twice the size of the accumulator the floor must hold.
	transaction, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(30),
		Category: "Groceries",
	})
	require.Nil(t, err)

	update, err := s.UpdateBudget(s.Budgets()[0].ID, models.Budget{
		Category: "Groceries",
		Limit:    decimal.NewFromInt(400),
	})
	require.Nil(t, err)
	require.True(t, update.Spent.Equal(decimal.NewFromInt(30)))

	s.DeleteTransaction(transaction.ID)
	assert.True(t, s.Budgets()[0].Spent.Equal(decimal.Zero))

	// Deleting again is a no-op and cannot push spent below zero.
	s.DeleteTransaction(transaction.ID)
	assert.True(t, s.Budgets()[0].Spent.Equal(decimal.Zero))
	assert.False(t, s.Budgets()[0].Spent.IsNegative())
}

func TestDeleteTransactionUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddTransaction(models.Transaction{
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(100),
		Category: "Salary",
	})
	require.Nil(t, err)

	s.DeleteTransaction(uuid.New())
	assert.Equal(t, 1, s.TotalCount())
}

func TestAddBudgetRejectsDuplicateCategory(t *testing.T) {
	s := newTestStore(t)
	groceriesBudget(t, s)

	_, err := s.AddBudget(models.Budget{
		Category: "Groceries",
		Limit:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, models.ErrBudgetCategoryInUse)
}

func TestUpdateBudget(t *testing.T) {
	s := newTestStore(t)
	budget := groceriesBudget(t, s)

	updated, err := s.UpdateBudget(budget.ID, models.Budget{
		Category: "Food",
		Limit:    decimal.NewFromInt(500),
		Period:   "weekly",
	})
	require.Nil(t, err)

	assert.Equal(t, "Food", updated.Category)
	assert.True(t, updated.Limit.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "weekly", updated.Period)

	// Spent is an accumulator and survives edits.
	assert.True(t, updated.Spent.Equal(decimal.NewFromInt(120)))

	_, err = s.UpdateBudget(uuid.New(), models.Budget{
		Category: "Other",
		Limit:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func TestDeleteBudget(t *testing.T) {
	s := newTestStore(t)
	budget := groceriesBudget(t, s)

	s.DeleteBudget(budget.ID)
	assert.Empty(t, s.Budgets())

	// Unknown IDs are a no-op.
	s.DeleteBudget(uuid.New())
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	groceriesBudget(t, s)

	s.Reset(
		[]models.Transaction{
			{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(4200), Category: "Salary", Date: types.NewDate(2024, 1, 15)},
		},
		[]models.Budget{
			{Category: "Entertainment", Limit: decimal.NewFromInt(150)},
		},
	)

	transactions := s.Transactions()
	require.Len(t, transactions, 1)
	assert.NotEqual(t, uuid.Nil, transactions[0].ID)

	budgets := s.Budgets()
	require.Len(t, budgets, 1)
	assert.Equal(t, "Entertainment", budgets[0].Category)
	assert.NotEqual(t, uuid.Nil, budgets[0].ID)
}
