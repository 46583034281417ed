package main

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/shellmates/cyberbot/pkg/sdk"
)

// messageSender is the slice of the Discord session the notifier needs
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts announcements to the configured Discord channels. Every
// send is best-effort: a missing channel or a failed send is logged and
// dropped so the caller's work is never rolled back over a notification.
type Notifier struct {
	sender         messageSender
	eventChannelID string
	factChannelID  string
}

// NewNotifier returns a notifier posting event announcements to eventChannelID
// and daily facts to factChannelID
func NewNotifier(dg *discordgo.Session, eventChannelID string, factChannelID string) *Notifier {
	return &Notifier{
		sender:         dg,
		eventChannelID: eventChannelID,
		factChannelID:  factChannelID,
	}
}

// EventAdded announces a newly created event
func (n *Notifier) EventAdded(event sdk.Event) {
	message := fmt.Sprintf("📅 **New event:** %s\n%s\n🕒 %s | 📍 %s",
		event.Title, event.Description, event.Date, event.Location)
	n.send(n.eventChannelID, message)
}

// EventPruned announces that an expired event was removed
func (n *Notifier) EventPruned(event sdk.Event) {
	n.send(n.eventChannelID, fmt.Sprintf("🗑️ Event **%s** has ended and was removed from the calendar.", event.Title))
}

// DailyFact posts the fact of the day
func (n *Notifier) DailyFact(fact sdk.Fact) {
	n.send(n.factChannelID, fmt.Sprintf("💡 **Cyber fact of the day:** %s", fact.Content))
}

// NoFacts posts the fallback notice when the daily broadcast finds an
// empty collection. It goes to the same channel the fact would have.
func (n *Notifier) NoFacts() {
	n.send(n.factChannelID, "💡 No cyber fact today, the collection is empty. Add one with /add_fact!")
}

func (n *Notifier) send(channelID string, message string) {
	if channelID == "" {
		log.Println("[NOTIFY]: no channel configured, dropping message")
		return
	}

	if _, err := n.sender.ChannelMessageSend(channelID, message); err != nil {
		log.Printf("[NOTIFY]: failed to send message to channel %s (%v)\n", channelID, err)
	}
}
