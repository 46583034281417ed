// Package scheduler drives the recurring content-lifecycle jobs: pruning
// expired events and broadcasting a daily fact at a fixed wall-clock time.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shellmates/cyberbot/pkg/sdk"
)

// ContentAPI is the slice of the backend client the scheduler jobs need
type ContentAPI interface {
	ListEvents(ctx context.Context) ([]sdk.Event, error)
	DeleteEvent(ctx context.Context, title string) error
	ListFacts(ctx context.Context) ([]sdk.Fact, error)
}

// Notifier receives the announcements produced by scheduler jobs.
// Delivery is best-effort; implementations must not fail the job.
type Notifier interface {
	EventPruned(event sdk.Event)
	DailyFact(fact sdk.Fact)
	NoFacts()
}

// Options configures the scheduler jobs
type Options struct {
	PruneInterval time.Duration // how often the prune job ticks
	GraceWindow   time.Duration // how long past its date an event survives
	DailyFactTime string        // wall-clock "HH:MM" for the daily fact
	Timezone      string        // IANA zone name the daily time is pinned to
}

// Defaults applied to zero-valued Options fields
const (
	DefaultPruneInterval = time.Minute
	DefaultGraceWindow   = 10 * time.Minute
	DefaultDailyFactTime = "07:00"
	DefaultTimezone      = "Africa/Algiers"
)

// Manager owns the two recurring jobs. It is constructed once at
// startup, started for the process lifetime and stopped on shutdown.
type Manager struct {
	api      ContentAPI
	notifier Notifier
	opts     Options

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
}

// NewManager validates the options and registers both jobs. A bad time
// zone or daily time is a startup error, not something to limp past.
func NewManager(api ContentAPI, notifier Notifier, opts Options) (*Manager, error) {
	if opts.PruneInterval <= 0 {
		opts.PruneInterval = DefaultPruneInterval
	}
	if opts.GraceWindow <= 0 {
		opts.GraceWindow = DefaultGraceWindow
	}
	if opts.DailyFactTime == "" {
		opts.DailyFactTime = DefaultDailyFactTime
	}
	if opts.Timezone == "" {
		opts.Timezone = DefaultTimezone
	}

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w", opts.Timezone, err)
	}

	daily, err := time.Parse("15:04", opts.DailyFactTime)
	if err != nil {
		return nil, fmt.Errorf("invalid daily fact time '%s' (want HH:MM): %w", opts.DailyFactTime, err)
	}

	m := &Manager{
		api:      api,
		notifier: notifier,
		opts:     opts,
		// SkipIfStillRunning keeps a slow tick from overlapping the
		// next invocation of the same job; the two jobs still run
		// independently of each other.
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}

	if _, err := m.cron.AddFunc(fmt.Sprintf("@every %s", opts.PruneInterval), func() {
		m.PruneExpiredEvents(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule prune job: %w", err)
	}

	if _, err := m.cron.AddFunc(fmt.Sprintf("%d %d * * *", daily.Minute(), daily.Hour()), func() {
		m.BroadcastDailyFact(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule daily fact job: %w", err)
	}

	return m, nil
}

// Start begins ticking both jobs
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}
	m.cron.Start()
	m.running = true
	log.Printf("[SCHEDULER]: Started (prune every %s, daily fact at %s %s)",
		m.opts.PruneInterval, m.opts.DailyFactTime, m.opts.Timezone)
}

// Stop stops the scheduler and waits for any running job to finish
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	<-m.cron.Stop().Done()
	m.running = false
	log.Printf("[SCHEDULER]: Stopped")
}
