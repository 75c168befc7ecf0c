// Package ledger implements the in-memory store for transactions and budgets
// and the query engine producing filtered views of it.
package ledger

import (
	"sync"
	"time"

	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Store holds all transactions and budgets of a session.
//
// Budgets' spent totals are maintained incrementally: adding or deleting an
// expense transaction adjusts the budget whose category matches. Both
// collections are mutated under a single lock, so no partial update is ever
// observable.
type Store struct {
	mu           sync.Mutex
	transactions []models.Transaction
	budgets      []models.Budget

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
		log: log.With().Str("component", "ledger").Logger(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// AddTransaction validates and stores a new transaction. The transaction is
// prepended so that the ledger is ordered most-recent-first.
//
// For expense transactions, the budget with a matching category has its spent
// total incremented. A transaction without a matching budget is allowed and
// leaves all budgets untouched.
func (s *Store) AddTransaction(transaction models.Transaction) (models.Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	transaction.Stamp(now)
	if transaction.Date.IsZero() {
		transaction.Date = types.DateOf(now)
	}

	s.transactions = append([]models.Transaction{transaction}, s.transactions...)

	if transaction.Type == models.TransactionTypeExpense {
		if i := s.budgetIndexByCategory(transaction.Category); i >= 0 {
			s.budgets[i].Spent = s.budgets[i].Spent.Add(transaction.Amount)
			s.budgets[i].Touch(now)
		}
	}

	s.log.Debug().
		Str("id", transaction.ID.String()).
		Str("type", string(transaction.Type)).
		Str("category", transaction.Category).
		Msg("transaction added")

	return transaction, nil
}

// DeleteTransaction removes a transaction by ID. Deleting an unknown ID is a
// no-op.
//
// If the deleted transaction was an expense, the matching budget's spent
// total is decremented, floored at zero so that drift can never produce a
// negative budget.
func (s *Store) DeleteTransaction(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, transaction := range s.transactions {
		if transaction.ID != id {
			continue
		}

		s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)

		if transaction.Type == models.TransactionTypeExpense {
			if b := s.budgetIndexByCategory(transaction.Category); b >= 0 {
				s.budgets[b].Spent = decimal.Max(decimal.Zero, s.budgets[b].Spent.Sub(transaction.Amount))
				s.budgets[b].Touch(s.now())
			}
		}

		s.log.Debug().Str("id", id.String()).Msg("transaction deleted")
		return
	}
}

// Transactions returns a snapshot of all transactions, most recent first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]models.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	return transactions
}

// TotalCount returns the number of transactions in the ledger.
func (s *Store) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.transactions)
}

// AddBudget validates and stores a new budget. Budget categories are unique.
func (s *Store) AddBudget(budget models.Budget) (models.Budget, error) {
	if err := budget.Validate(); err != nil {
		return models.Budget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.budgetIndexByCategory(budget.Category) >= 0 {
		return models.Budget{}, models.ErrBudgetCategoryInUse
	}

	budget.Stamp(s.now())
	s.budgets = append(s.budgets, budget)

	return budget, nil
}

// UpdateBudget replaces the editable fields of the budget with the given ID.
// The spent total is an accumulator owned by the store and is not editable.
func (s *Store) UpdateBudget(id uuid.UUID, update models.Budget) (models.Budget, error) {
	if err := update.Validate(); err != nil {
		return models.Budget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.budgetIndex(id)
	if i < 0 {
		return models.Budget{}, models.ErrResourceNotFound
	}

	if other := s.budgetIndexByCategory(update.Category); other >= 0 && other != i {
		return models.Budget{}, models.ErrBudgetCategoryInUse
	}

	s.budgets[i].Category = update.Category
	s.budgets[i].Limit = update.Limit
	s.budgets[i].Period = update.Period
	s.budgets[i].Touch(s.now())

	return s.budgets[i], nil
}

// DeleteBudget removes a budget by ID. Deleting an unknown ID is a no-op.
func (s *Store) DeleteBudget(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.budgetIndex(id); i >= 0 {
		s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
	}
}

// Budgets returns a snapshot of all budgets.
func (s *Store) Budgets() []models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := make([]models.Budget, len(s.budgets))
	copy(budgets, s.budgets)
	return budgets
}

// Reset replaces the store contents. Entries without an ID are stamped.
func (s *Store) Reset(transactions []models.Transaction, budgets []models.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	s.transactions = make([]models.Transaction, len(transactions))
	copy(s.transactions, transactions)
	for i := range s.transactions {
		if s.transactions[i].ID == uuid.Nil {
			s.transactions[i].Stamp(now)
		}
	}

	s.budgets = make([]models.Budget, len(budgets))
	copy(s.budgets, budgets)
	for i := range s.budgets {
		if s.budgets[i].ID == uuid.Nil {
			s.budgets[i].Stamp(now)
		}
	}
}

// budgetIndex returns the index of the budget with the given ID, or -1.
// The caller must hold the lock.
func (s *Store) budgetIndex(id uuid.UUID) int {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			return i
		}
	}

	return -1
}

// budgetIndexByCategory returns the index of the budget for the category, or
// -1. The caller must hold the lock.
func (s *Store) budgetIndexByCategory(category string) int {
	for i := range s.budgets {
		if s.budgets[i].Category == category {
			return i
		}
	}

	return -1
}
