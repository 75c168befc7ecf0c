// Package portfolio implements the simulated investment portfolio: holdings,
// valuation and the synthetic price simulation.
package portfolio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// tickVolatility is the width of the uniform band a tick draws from,
	// giving price changes of at most ±1% per tick.
	tickVolatility = 0.02

	// initialJitter is the band for the one-time jitter applied to the
	// purchase price of a new holding, simulating an already-moved market.
	initialJitter = 0.1

	// backfillPoints and backfillInterval shape the synthetic history a new
	// holding starts with: 48 points at 30 minute intervals cover the
	// trailing 24 hours.
	backfillPoints   = 48
	backfillInterval = 30 * time.Minute
)

// Store holds all investment positions of a session and mutates their prices
// on every simulation tick.
type Store struct {
	mu       sync.Mutex
	holdings []models.Holding

	now func() time.Time
	rng *rand.Rand
	log zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand replaces the random source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// New returns an empty Store.
func New(log zerolog.Logger, options ...Option) *Store {
	s := &Store{
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: log.With().Str("component", "portfolio").Logger(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Add validates and stores a new holding. The current price starts at the
// purchase price with a single ±5% jitter applied, and the price history is
// backfilled over the trailing 24 hours.
func (s *Store) Add(holding models.Holding) (models.Holding, error) {
	if err := holding.Validate(); err != nil {
		return models.Holding{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	holding.Stamp(now)
	if holding.PurchaseDate.IsZero() {
		holding.PurchaseDate = types.DateOf(now)
	}

	holding.CurrentPrice = holding.PurchasePrice.Mul(s.jitter(initialJitter))
	holding.PriceHistory = s.backfill(holding.CurrentPrice, now)

	s.holdings = append(s.holdings, holding)

	s.log.Debug().Str("id", holding.ID.String()).Str("symbol", holding.Symbol).Msg("holding added")
	return holding, nil
}

// Update replaces the editable fields of the holding with the given ID. The
// current price is re-derived from the new purchase price and the history is
// backfilled again, matching the behavior of adding the position anew.
func (s *Store) Update(id uuid.UUID, update models.Holding) (models.Holding, error) {
	if err := update.Validate(); err != nil {
		return models.Holding{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return models.Holding{}, models.ErrResourceNotFound
	}

	now := s.now()

	s.holdings[i].Symbol = update.Symbol
	s.holdings[i].Name = update.Name
	s.holdings[i].Shares = update.Shares
	s.holdings[i].PurchasePrice = update.PurchasePrice
	if !update.PurchaseDate.IsZero() {
		s.holdings[i].PurchaseDate = update.PurchaseDate
	}
	s.holdings[i].CurrentPrice = update.PurchasePrice.Mul(s.jitter(initialJitter))
	s.holdings[i].PriceHistory = s.backfill(s.holdings[i].CurrentPrice, now)
	s.holdings[i].Touch(now)

	return s.holdings[i], nil
}

// Delete removes the holding with the given ID. Unknown IDs are a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(id); i >= 0 {
		s.holdings = append(s.holdings[:i], s.holdings[i+1:]...)
	}
}

// Get returns the holding with the given ID.
func (s *Store) Get(id uuid.UUID) (models.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return models.Holding{}, models.ErrResourceNotFound
	}

	return cloneHolding(s.holdings[i]), nil
}

// List returns a snapshot of all holdings in creation order.
func (s *Store) List() []models.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Tick applies one simulation step to every holding: the current price moves
// by a uniform random change within the volatility band, and the new price is
// appended to the bounded history. It returns the post-tick snapshot.
func (s *Store) Tick() []models.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.holdings {
		price := s.holdings[i].CurrentPrice.Mul(s.jitter(tickVolatility))

		s.holdings[i].CurrentPrice = price
		s.holdings[i].PriceHistory = append(s.holdings[i].PriceHistory, models.PricePoint{
			Time:  now,
			Price: price,
		})

		if overflow := len(s.holdings[i].PriceHistory) - models.PriceHistoryLimit; overflow > 0 {
			s.holdings[i].PriceHistory = s.holdings[i].PriceHistory[overflow:]
		}
	}

	s.log.Debug().Int("holdings", len(s.holdings)).Msg("price tick applied")
	return s.snapshot()
}

// Reset replaces the store contents. Entries without an ID are stamped and
// entries without a price history are backfilled.
func (s *Store) Reset(holdings []models.Holding) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	s.holdings = make([]models.Holding, len(holdings))
	copy(s.holdings, holdings)
	for i := range s.holdings {
		if s.holdings[i].ID == uuid.Nil {
			s.holdings[i].Stamp(now)
		}

		if len(s.holdings[i].PriceHistory) == 0 {
			s.holdings[i].PriceHistory = s.backfill(s.holdings[i].CurrentPrice, now)
		}
	}
}

// jitter returns a multiplicative price change factor drawn uniformly from
// the given volatility band, centered on 1.
func (s *Store) jitter(volatility float64) decimal.Decimal {
	return decimal.NewFromFloat(1 + (s.rng.Float64()-0.5)*volatility)
}

// backfill synthesizes a price history over the trailing 24 hours. Each point
// jitters independently off the given price rather than compounding from its
// predecessor. This mirrors the dashboard's original backfill and is kept
// deliberately, the live tick is the only true walk.
func (s *Store) backfill(price decimal.Decimal, now time.Time) []models.PricePoint {
	start := now.Add(-backfillPoints * backfillInterval)

	history := make([]models.PricePoint, 0, backfillPoints)
	for i := 0; i < backfillPoints; i++ {
		history = append(history, models.PricePoint{
			Time:  start.Add(time.Duration(i) * backfillInterval),
			Price: price.Mul(s.jitter(tickVolatility)),
		})
	}

	return history
}

// snapshot copies all holdings. The caller must hold the lock.
func (s *Store) snapshot() []models.Holding {
	holdings := make([]models.Holding, 0, len(s.holdings))
	for _, holding := range s.holdings {
		holdings = append(holdings, cloneHolding(holding))
	}

	return holdings
}

// cloneHolding copies a holding including its history slice, so that callers
// can never alias store-owned memory.
func cloneHolding(holding models.Holding) models.Holding {
	history := make([]models.PricePoint, len(holding.PriceHistory))
	copy(history, holding.PriceHistory)
	holding.PriceHistory = history
	return holding
}

// index returns the position of the holding with the given ID, or -1.
// The caller must hold the lock.
func (s *Store) index(id uuid.UUID) int {
	for i := range s.holdings {
		if s.holdings[i].ID == id {
			return i
		}
	}

	return -1
}
