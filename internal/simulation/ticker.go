// Package simulation runs the recurring price-update tick as an explicit
// schedulable task with a start/stop lifecycle.
package simulation

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultInterval is the tick interval used when none is configured.
const DefaultInterval = 5 * time.Second

// Job is a unit of recurring work.
type Job interface {
	Run() error
	Name() string
}

// FuncJob adapts a plain function to the Job interface.
type FuncJob struct {
	JobName string
	Func    func() error
}

func (j FuncJob) Run() error   { return j.Func() }
func (j FuncJob) Name() string { return j.JobName }

// Ticker schedules recurring jobs on a fixed interval.
type Ticker struct {
	cron *cron.Cron
	log  zerolog.Logger

	mu      sync.Mutex
	running bool
}

// New returns a stopped Ticker.
func New(log zerolog.Logger) *Ticker {
	return &Ticker{
		cron: cron.New(cron.WithSeconds()),
		log:  log.With().Str("component", "simulation").Logger(),
	}
}

// Schedule registers a job to run on the given interval.
func (t *Ticker) Schedule(interval time.Duration, job Job) error {
	_, err := t.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if err := job.Run(); err != nil {
			t.log.Error().
				Err(err).
				Str("job", job.Name()).
				Msg("job failed")
		}
	})
	if err != nil {
		return err
	}

	t.log.Info().
		Dur("interval", interval).
		Str("job", job.Name()).
		Msg("job registered")

	return nil
}

// Start begins running scheduled jobs. Starting a running ticker is a no-op.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}

	t.cron.Start()
	t.running = true
	t.log.Info().Msg("simulation started")
}

// Stop cancels the schedule and waits for a running job to complete.
// Stopping a stopped ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	ctx := t.cron.Stop()
	<-ctx.Done()
	t.running = false
	t.log.Info().Msg("simulation stopped")
}

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// RunNow executes a job immediately, outside its schedule.
func (t *Ticker) RunNow(job Job) error {
	t.log.Debug().Str("job", job.Name()).Msg("running job immediately")
	return job.Run()
}
