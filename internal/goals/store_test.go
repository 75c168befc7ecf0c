package goals_test

import (
	"testing"
	"time"

	"github.com/coincraft/backend/internal/goals"
	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *goals.Store {
	t.Helper()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return goals.New(zerolog.Nop(), goals.WithClock(func() time.Time { return now }))
}

func emergencyFund(t *testing.T, s *goals.Store) models.Goal {
	t.Helper()

	goal, err := s.Create(models.Goal{
		Title:         "Emergency Fund",
		Description:   "Build 6 months of expenses as emergency fund",
		TargetAmount:  decimal.NewFromInt(15000),
		CurrentAmount: decimal.NewFromInt(8500),
		Deadline:      types.NewDate(2024, 12, 31),
		Category:      models.GoalCategorySavings,
	})
	require.Nil(t, err)

	return goal
}

func TestCreate(t *testing.T) {
	s := newTestStore(t)

	goal := emergencyFund(t, s)
	assert.NotEqual(t, uuid.Nil, goal.ID)
	assert.Len(t, s.List(), 1)

	_, err := s.Create(models.Goal{Title: "No target", Deadline: types.NewDate(2024, 12, 31)})
	assert.ErrorIs(t, err, models.ErrGoalTargetNotPositive)
	assert.Len(t, s.List(), 1)
}

func TestGet(t *testing.T) {
	s := newTestStore(t)
	goal := emergencyFund(t, s)

	got, err := s.Get(goal.ID)
	require.Nil(t, err)
	assert.Equal(t, goal, got)

	_, err = s.Get(uuid.New())
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	goal := emergencyFund(t, s)

	updated, err := s.Update(goal.ID, models.Goal{
		Title:         "Bigger Emergency Fund",
		TargetAmount:  decimal.NewFromInt(20000),
		CurrentAmount: decimal.NewFromInt(9000),
		Deadline:      types.NewDate(2025, 6, 30),
		Category:      models.GoalCategorySavings,
	})
	require.Nil(t, err)

	assert.Equal(t, goal.ID, updated.ID)
	assert.Equal(t, "Bigger Emergency Fund", updated.Title)
	assert.True(t, updated.TargetAmount.Equal(decimal.NewFromInt(20000)))

	_, err = s.Update(uuid.New(), models.Goal{
		Title:        "Missing",
		TargetAmount: decimal.NewFromInt(1),
		Deadline:     types.NewDate(2025, 1, 1),
	})
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	goal := emergencyFund(t, s)

	s.Delete(goal.ID)
	assert.Empty(t, s.List())

	// Unknown IDs are a no-op.
	s.Delete(uuid.New())
}

func TestAddAmount(t *testing.T) {
	s := newTestStore(t)

	goal, err := s.Create(models.Goal{
		Title:         "Vacation Trip",
		TargetAmount:  decimal.NewFromInt(5000),
		CurrentAmount: decimal.NewFromInt(2800),
		Deadline:      types.NewDate(2024, 8, 15),
		Category:      models.GoalCategoryTravel,
	})
	require.Nil(t, err)

	result, err := s.AddAmount(goal.ID, decimal.NewFromInt(1000))
	require.Nil(t, err)
	assert.False(t, result.Achieved)
	assert.True(t, result.Goal.CurrentAmount.Equal(decimal.NewFromInt(3800)))

	// Crossing the target is a one-shot signal.
	result, err = s.AddAmount(goal.ID, decimal.NewFromInt(1500))
	require.Nil(t, err)
	assert.True(t, result.Achieved)

	result, err = s.AddAmount(goal.ID, decimal.NewFromInt(100))
	require.Nil(t, err)
	assert.False(t, result.Achieved, "an already achieved goal must not signal again")
}

func TestAddAmountValidation(t *testing.T) {
	s := newTestStore(t)
	goal := emergencyFund(t, s)

	_, err := s.AddAmount(goal.ID, decimal.Zero)
	assert.ErrorIs(t, err, models.ErrGoalAmountNotPositive)

	_, err = s.AddAmount(goal.ID, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, models.ErrGoalAmountNotPositive)

	_, err = s.AddAmount(uuid.New(), decimal.NewFromInt(5))
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	emergencyFund(t, s)

	s.Reset([]models.Goal{
		{
			Title:        "New Car",
			TargetAmount: decimal.NewFromInt(12000),
			Deadline:     types.NewDate(2024, 10, 1),
			Category:     models.GoalCategoryPurchase,
		},
	})

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "New Car", list[0].Title)
	assert.NotEqual(t, uuid.Nil, list[0].ID)
}
