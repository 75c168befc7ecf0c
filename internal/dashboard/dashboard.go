// Package dashboard wires the per-session stores together and owns their
// creation and reset lifecycle.
package dashboard

import (
	"github.com/coincraft/backend/internal/goals"
	"github.com/coincraft/backend/internal/ledger"
	"github.com/coincraft/backend/internal/portfolio"
	"github.com/coincraft/backend/internal/simulation"
	"github.com/rs/zerolog"
)

// Dashboard is the aggregate state of one session: the ledger, the savings
// goals and the investment portfolio with its price feed. There are no
// package-level singletons, the presentation layer owns an instance.
type Dashboard struct {
	Ledger    *ledger.Store
	Goals     *goals.Store
	Portfolio *portfolio.Store
	Feed      *portfolio.Feed

	log zerolog.Logger
}

// New returns a Dashboard seeded with the demo session data.
func New(log zerolog.Logger) *Dashboard {
	d := &Dashboard{
		Ledger:    ledger.New(log),
		Goals:     goals.New(log),
		Portfolio: portfolio.New(log),
		Feed:      portfolio.NewFeed(log),
		log:       log.With().Str("component", "dashboard").Logger(),
	}

	d.Reset()
	return d
}

// Reset discards all session state and re-seeds the stores.
func (d *Dashboard) Reset() {
	d.Ledger.Reset(seedTransactions(), seedBudgets())
	d.Goals.Reset(seedGoals())
	d.Portfolio.Reset(seedHoldings())

	d.log.Info().Msg("session state reset")
}

// TickJob returns the recurring price simulation job: apply one tick and
// publish the post-tick snapshot to stream subscribers.
func (d *Dashboard) TickJob() simulation.Job {
	return simulation.FuncJob{
		JobName: "price_tick",
		Func: func() error {
			d.Feed.Publish(d.Portfolio.Tick())
			return nil
		},
	}
}
