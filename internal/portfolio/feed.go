package portfolio

import (
	"sync"

	"github.com/coincraft/backend/internal/models"
	"github.com/rs/zerolog"
)

// feedBuffer is the per-subscriber channel capacity. Slow subscribers drop
// snapshots rather than blocking the simulation.
const feedBuffer = 16

// Feed fans out post-tick portfolio snapshots to subscribers, typically
// websocket connections streaming prices to the dashboard.
type Feed struct {
	mu          sync.Mutex
	subscribers map[chan []models.Holding]struct{}
	log         zerolog.Logger
}

// NewFeed returns a Feed without subscribers.
func NewFeed(log zerolog.Logger) *Feed {
	return &Feed{
		subscribers: make(map[chan []models.Holding]struct{}),
		log:         log.With().Str("component", "price_feed").Logger(),
	}
}

// Subscribe registers a new subscriber. The returned cancel function must be
// called when the subscriber goes away.
func (f *Feed) Subscribe() (<-chan []models.Holding, func()) {
	ch := make(chan []models.Holding, feedBuffer)

	f.mu.Lock()
	f.subscribers[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		delete(f.subscribers, ch)
		f.mu.Unlock()
	}

	return ch, cancel
}

// Publish sends a snapshot to every subscriber. Sends never block, a full
// subscriber loses the snapshot.
func (f *Feed) Publish(holdings []models.Holding) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.subscribers {
		select {
		case ch <- holdings:
		default:
			f.log.Warn().Msg("subscriber channel full, dropping snapshot")
		}
	}
}

// Subscribers returns the current number of subscribers.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.subscribers)
}
