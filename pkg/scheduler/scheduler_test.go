package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shellmates/cyberbot/pkg/scheduler"
	"github.com/shellmates/cyberbot/pkg/sdk"
	"github.com/stretchr/testify/assert"
)

// fakeAPI implements scheduler.ContentAPI against in-memory slices
type fakeAPI struct {
	events    []sdk.Event
	facts     []sdk.Fact
	listErr   error
	deleteErr map[string]error
	deleted   []string
}

func (f *fakeAPI) ListEvents(_ context.Context) ([]sdk.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeAPI) DeleteEvent(_ context.Context, title string) error {
	if err := f.deleteErr[title]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, title)
	return nil
}

func (f *fakeAPI) ListFacts(_ context.Context) ([]sdk.Fact, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.facts, nil
}

// fakeNotifier records announcements
type fakeNotifier struct {
	pruned  []sdk.Event
	daily   []sdk.Fact
	noFacts int
}

func (f *fakeNotifier) EventPruned(event sdk.Event) { f.pruned = append(f.pruned, event) }
func (f *fakeNotifier) DailyFact(fact sdk.Fact)     { f.daily = append(f.daily, fact) }
func (f *fakeNotifier) NoFacts()                    { f.noFacts++ }

func newManager(t *testing.T, api *fakeAPI, notifier *fakeNotifier) *scheduler.Manager {
	t.Helper()
	m, err := scheduler.NewManager(api, notifier, scheduler.Options{})
	assert.Nil(t, err)
	return m
}

func TestPruneExpiredEvents(t *testing.T) {
	assert := assert.New(t)

	expired := time.Now().UTC().Add(-11 * time.Minute).Format(time.RFC3339)
	within := time.Now().UTC().Add(-5 * time.Minute).Format(time.RFC3339)
	future := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)

	api := &fakeAPI{events: []sdk.Event{
		{Title: "CTF Night", Date: expired},
		{Title: "Workshop", Date: within},
		{Title: "Conference", Date: future},
	}}
	notifier := &fakeNotifier{}

	newManager(t, api, notifier).PruneExpiredEvents(context.Background())

	assert.Equal([]string{"CTF Night"}, api.deleted)
	assert.Len(notifier.pruned, 1)
	assert.Equal("CTF Night", notifier.pruned[0].Title)
}

func TestPruneTreatsBareDateAsUTC(t *testing.T) {
	assert := assert.New(t)

	// Bare dates carry no offset and are interpreted as UTC
	expired := time.Now().UTC().Add(-20 * time.Minute).Format("2006-01-02T15:04:05")

	api := &fakeAPI{events: []sdk.Event{{Title: "Hack.ini session", Date: expired}}}
	notifier := &fakeNotifier{}

	newManager(t, api, notifier).PruneExpiredEvents(context.Background())

	assert.Equal([]string{"Hack.ini session"}, api.deleted)
}

func TestPruneSkipsUnparseableDates(t *testing.T) {
	assert := assert.New(t)

	api := &fakeAPI{events: []sdk.Event{
		{Title: "Mystery meetup", Date: "whenever"},
		{Title: "No date at all"},
	}}
	notifier := &fakeNotifier{}

	newManager(t, api, notifier).PruneExpiredEvents(context.Background())

	assert.Empty(api.deleted)
	assert.Empty(notifier.pruned)
}

func TestPruneSurvivesListFailure(t *testing.T) {
	assert := assert.New(t)

	api := &fakeAPI{listErr: errors.New("backend down")}
	notifier := &fakeNotifier{}

	newManager(t, api, notifier).PruneExpiredEvents(context.Background())

	assert.Empty(api.deleted)
	assert.Empty(notifier.pruned)
}

func TestPruneContainsPerRecordFailures(t *testing.T) {
	assert := assert.New(t)

	expired := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	api := &fakeAPI{
		events: []sdk.Event{
			{Title: "Sticky event", Date: expired},
			{Title: "Old workshop", Date: expired},
		},
		deleteErr: map[string]error{"Sticky event": errors.New("delete failed")},
	}
	notifier := &fakeNotifier{}

	newManager(t, api, notifier).PruneExpiredEvents(context.Background())

	// The failing record is skipped, the rest of the pass continues
	assert.Equal([]string{"Old workshop"}, api.deleted)
	assert.Len(notifier.pruned, 1)
	assert.Equal("Old workshop", notifier.pruned[0].Title)
}

func TestDailyFactBroadcast(t *testing.T) {
	assert := assert.New(t)

	api := &fakeAPI{facts: []sdk.Fact{{ID: 1, Content: "DNS runs over port 53"}}}
	notifier := &fakeNotifier{}

	newManager(t, api, notifier).BroadcastDailyFact(context.Background())

	assert.Len(notifier.daily, 1)
	assert.Equal("DNS runs over port 53", notifier.daily[0].Content)
	assert.Zero(notifier.noFacts)
}

func TestDailyFactEmptyCollection(t *testing.T) {
	assert := assert.New(t)

	api := &fakeAPI{}
	notifier := &fakeNotifier{}

	newManager(t, api, notifier).BroadcastDailyFact(context.Background())

	assert.Empty(notifier.daily)
	assert.Equal(1, notifier.noFacts)
}

func TestManagerRejectsBadConfig(t *testing.T) {
	assert := assert.New(t)

	_, err := scheduler.NewManager(&fakeAPI{}, &fakeNotifier{}, scheduler.Options{
		Timezone: "Mars/Olympus_Mons",
	})
	assert.NotNil(err)

	_, err = scheduler.NewManager(&fakeAPI{}, &fakeNotifier{}, scheduler.Options{
		DailyFactTime: "7 o'clock",
	})
	assert.NotNil(err)
}

func TestParseEventTime(t *testing.T) {
	assert := assert.New(t)

	withZone, err := scheduler.ParseEventTime("2026-08-29T18:00:00+01:00")
	assert.Nil(err)
	assert.Equal(17, withZone.UTC().Hour())

	bare, err := scheduler.ParseEventTime("2026-08-29T18:00:00")
	assert.Nil(err)
	assert.Equal(18, bare.UTC().Hour())

	_, err = scheduler.ParseEventTime("next tuesday")
	assert.NotNil(err)
}
