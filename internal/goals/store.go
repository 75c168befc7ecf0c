// Package goals implements the in-memory store for savings goals.
package goals

import (
	"sync"
	"time"

	"github.com/coincraft/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Store holds all savings goals of a session.
type Store struct {
	mu    sync.Mutex
	goals []models.Goal

	now func() time.Time
	log zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty Store.
func New(log zerolog.Logger, options ...Option) *Store {
	s := &Store{
		now: time.Now,
		log: log.With().Str("component", "goals").Logger(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Create validates and stores a new goal.
func (s *Store) Create(goal models.Goal) (models.Goal, error) {
	if err := goal.Validate(); err != nil {
		return models.Goal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal.Stamp(s.now())
	s.goals = append(s.goals, goal)

	s.log.Debug().Str("id", goal.ID.String()).Str("title", goal.Title).Msg("goal created")
	return goal, nil
}

// Get returns the goal with the given ID.
func (s *Store) Get(id uuid.UUID) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return models.Goal{}, models.ErrResourceNotFound
	}

	return s.goals[i], nil
}

// List returns a snapshot of all goals in creation order.
func (s *Store) List() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]models.Goal, len(s.goals))
	copy(goals, s.goals)
	return goals
}

// Update replaces the editable fields of the goal with the given ID.
func (s *Store) Update(id uuid.UUID, update models.Goal) (models.Goal, error) {
	if err := update.Validate(); err != nil {
		return models.Goal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return models.Goal{}, models.ErrResourceNotFound
	}

	s.goals[i].Title = update.Title
	s.goals[i].Description = update.Description
	s.goals[i].TargetAmount = update.TargetAmount
	s.goals[i].CurrentAmount = update.CurrentAmount
	s.goals[i].Deadline = update.Deadline
	s.goals[i].Category = update.Category
	s.goals[i].Touch(s.now())

	return s.goals[i], nil
}

// Delete removes the goal with the given ID. Unknown IDs are a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(id); i >= 0 {
		s.goals = append(s.goals[:i], s.goals[i+1:]...)
	}
}

// AddAmountResult is the outcome of an AddAmount call.
type AddAmountResult struct {
	Goal models.Goal

	// Achieved is true exactly when this call crossed the target amount for
	// the first time, so that the caller can surface a one-shot signal.
	Achieved bool
}

// AddAmount adds a positive delta to the goal's current amount.
func (s *Store) AddAmount(id uuid.UUID, delta decimal.Decimal) (AddAmountResult, error) {
	if !delta.IsPositive() {
		return AddAmountResult{}, models.ErrGoalAmountNotPositive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return AddAmountResult{}, models.ErrResourceNotFound
	}

	alreadyAchieved := s.goals[i].Achieved()

	s.goals[i].CurrentAmount = s.goals[i].CurrentAmount.Add(delta)
	s.goals[i].Touch(s.now())

	return AddAmountResult{
		Goal:     s.goals[i],
		Achieved: !alreadyAchieved && s.goals[i].Achieved(),
	}, nil
}

// Reset replaces the store contents. Entries without an ID are stamped.
func (s *Store) Reset(goals []models.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = make([]models.Goal, len(goals))
	copy(s.goals, goals)
	for i := range s.goals {
		if s.goals[i].ID == uuid.Nil {
			s.goals[i].Stamp(s.now())
		}
	}
}

// index returns the position of the goal with the given ID, or -1.
// The caller must hold the lock.
func (s *Store) index(id uuid.UUID) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}

	return -1
}
