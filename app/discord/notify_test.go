package main

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/shellmates/cyberbot/pkg/sdk"
)

// fakeSender records channel sends and can fail on demand
type fakeSender struct {
	sent    []sentMessage
	sendErr error
}

type sentMessage struct {
	channelID string
	content   string
}

func (f *fakeSender) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, content: content})
	return &discordgo.Message{}, nil
}

func newTestNotifier(sender *fakeSender) *Notifier {
	return &Notifier{sender: sender, eventChannelID: "events-channel", factChannelID: "facts-channel"}
}

func TestDailyFactTargetsFactChannel(t *testing.T) {
	sender := &fakeSender{}
	notifier := newTestNotifier(sender)

	notifier.DailyFact(sdk.Fact{Content: "DNS runs over port 53"})

	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "facts-channel", sender.sent[0].channelID)
	assert.Contains(t, sender.sent[0].content, "DNS runs over port 53")
}

func TestNoFactsNoticeReachesFactChannel(t *testing.T) {
	sender := &fakeSender{}
	notifier := newTestNotifier(sender)

	// An empty collection produces a notice in the channel, not silence
	notifier.NoFacts()

	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "facts-channel", sender.sent[0].channelID)
	assert.Contains(t, sender.sent[0].content, "collection is empty")
}

func TestEventAnnouncementsTargetEventChannel(t *testing.T) {
	sender := &fakeSender{}
	notifier := newTestNotifier(sender)

	notifier.EventAdded(sdk.Event{Title: "CTF Night", Date: "2026-09-12T18:00:00", Location: "Lab 3"})
	notifier.EventPruned(sdk.Event{Title: "CTF Night"})

	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "events-channel", sender.sent[0].channelID)
	assert.Contains(t, sender.sent[0].content, "CTF Night")
	assert.Equal(t, "events-channel", sender.sent[1].channelID)
	assert.Contains(t, sender.sent[1].content, "removed from the calendar")
}

func TestSendIsBestEffort(t *testing.T) {
	// A failed send is logged and dropped, never panicking or surfacing
	sender := &fakeSender{sendErr: errors.New("channel deleted")}
	notifier := newTestNotifier(sender)

	notifier.DailyFact(sdk.Fact{Content: "fact"})
	notifier.NoFacts()

	assert.Empty(t, sender.sent)

	// An unconfigured channel drops the message before the session call
	blank := &fakeSender{}
	(&Notifier{sender: blank}).NoFacts()
	assert.Empty(t, blank.sent)
}
