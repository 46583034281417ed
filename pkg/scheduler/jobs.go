package scheduler

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"
)

// bareEventTime is the accepted no-offset date layout; values in this
// form are treated as UTC
const bareEventTime = "2006-01-02T15:04:05"

// ParseEventTime parses an event date string, accepting RFC3339 and a
// bare no-offset form
func ParseEventTime(date string) (time.Time, error) {
	date = strings.TrimSpace(date)

	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t, nil
	}
	if t, err := time.Parse(bareEventTime, date); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized event date %q", date)
}

// PruneExpiredEvents runs one prune tick: every event whose date lies
// more than the grace window in the past is deleted and announced. A
// single record failing to parse or delete never aborts the pass; a
// failed listing skips this tick and the job survives for the next one.
func (m *Manager) PruneExpiredEvents(ctx context.Context) {
	events, err := m.api.ListEvents(ctx)
	if err != nil {
		log.Printf("[SCHEDULER]: Skipping prune tick, could not list events: %v", err)
		return
	}

	now := time.Now().UTC()
	for _, event := range events {
		when, err := ParseEventTime(event.Date)
		if err != nil {
			log.Printf("[SCHEDULER]: Warning, event '%s' has unparseable date: %v", event.Title, err)
			continue
		}

		if now.Sub(when) <= m.opts.GraceWindow {
			continue
		}

		if err := m.api.DeleteEvent(ctx, event.Title); err != nil {
			log.Printf("[SCHEDULER]: Failed to prune event '%s': %v", event.Title, err)
			continue
		}

		log.Printf("[SCHEDULER]: Pruned expired event '%s'", event.Title)
		m.notifier.EventPruned(event)
	}
}

// BroadcastDailyFact picks one fact uniformly at random and announces
// it; an empty collection produces the fallback notice instead of
// silence
func (m *Manager) BroadcastDailyFact(ctx context.Context) {
	facts, err := m.api.ListFacts(ctx)
	if err != nil {
		log.Printf("[SCHEDULER]: Skipping daily fact, could not list facts: %v", err)
		return
	}

	if len(facts) == 0 {
		m.notifier.NoFacts()
		return
	}

	m.notifier.DailyFact(facts[rand.Intn(len(facts))])
}
