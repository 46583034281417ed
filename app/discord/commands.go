package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/shellmates/cyberbot/pkg/sdk"
)

// commandTimeout bounds the backend round trips behind one interaction
const commandTimeout = 30 * time.Second

// commandDefinitions lists every slash command the bot registers
var commandDefinitions = []*discordgo.ApplicationCommand{
	{
		Name:        "events",
		Description: "List the upcoming club events",
	},
	{
		Name:        "add_event",
		Description: "Add a new event to the calendar (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: "Event title", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "date", Description: "Event date (e.g. 2026-09-12T18:00:00)", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "What the event is about", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "location", Description: "Where the event takes place", Required: true},
		},
	},
	{
		Name:        "update_event",
		Description: "Update an existing event (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: "Title of the event to update", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "new_title", Description: "New title", Required: false},
			{Type: discordgo.ApplicationCommandOptionString, Name: "date", Description: "New date", Required: false},
			{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "New description", Required: false},
			{Type: discordgo.ApplicationCommandOptionString, Name: "location", Description: "New location", Required: false},
		},
	},
	{
		Name:        "remove_event",
		Description: "Remove an event from the calendar (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: "Title of the event to remove", Required: true},
		},
	},
	{
		Name:        "cyberfact",
		Description: "Get a random cybersecurity fact",
	},
	{
		Name:        "add_fact",
		Description: "Add a cybersecurity fact (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "content", Description: "The fact", Required: true},
		},
	},
	{
		Name:        "cyberjoke",
		Description: "Get a random cybersecurity joke",
	},
	{
		Name:        "add_joke",
		Description: "Add a cybersecurity joke (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "content", Description: "The joke", Required: true},
		},
	},
	{
		Name:        "cyberquote",
		Description: "Get a random cybersecurity quote",
	},
	{
		Name:        "add_quote",
		Description: "Add a cybersecurity quote (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "content", Description: "The quote", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "author", Description: "Who said it", Required: false},
		},
	},
	{
		Name:        "cyberquiz",
		Description: "Get a random cybersecurity quiz question",
	},
	{
		Name:        "add_quiz",
		Description: "Add a quiz question (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "question", Description: "The question", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "options", Description: "Comma-separated answer options", Required: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "answer", Description: "Number of the correct option (1-based)", Required: true},
		},
	},
	{
		Name:        "about",
		Description: "Learn about the Shellmates club",
	},
	{
		Name:        "help",
		Description: "List the available commands",
	},
}

// registerCommands creates the slash commands for the configured guild,
// or globally when no guild is set
func (b *Bot) registerCommands() error {
	for _, definition := range commandDefinitions {
		if _, err := b.dg.ApplicationCommandCreate(b.dg.State.User.ID, b.guildID, definition); err != nil {
			return fmt.Errorf("failed to register command /%s: %w", definition.Name, err)
		}
	}

	log.Printf("[DISCORD]: registered %d slash commands\n", len(commandDefinitions))
	return nil
}

// unregisterCommands removes the commands this bot registered
func (b *Bot) unregisterCommands() error {
	registered, err := b.dg.ApplicationCommands(b.dg.State.User.ID, b.guildID)
	if err != nil {
		return err
	}

	names := make(map[string]bool, len(commandDefinitions))
	for _, definition := range commandDefinitions {
		names[definition.Name] = true
	}

	for _, command := range registered {
		if !names[command.Name] {
			continue
		}
		if err := b.dg.ApplicationCommandDelete(b.dg.State.User.ID, b.guildID, command.ID); err != nil {
			log.Printf("[DISCORD]: failed to delete command /%s (%v)\n", command.Name, err)
		}
	}
	return nil
}

// handleApplicationCommand dispatches a slash command to its handler
func (b *Bot) handleApplicationCommand(i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "events":
		b.handleEvents(i)
	case "add_event":
		b.handleAddEvent(i)
	case "update_event":
		b.handleUpdateEvent(i)
	case "remove_event":
		b.handleRemoveEvent(i)
	case "cyberfact":
		b.handleCyberFact(i)
	case "add_fact":
		b.handleAddFact(i)
	case "cyberjoke":
		b.handleCyberJoke(i)
	case "add_joke":
		b.handleAddJoke(i)
	case "cyberquote":
		b.handleCyberQuote(i)
	case "add_quote":
		b.handleAddQuote(i)
	case "cyberquiz":
		b.handleCyberQuiz(i)
	case "add_quiz":
		b.handleAddQuiz(i)
	case "about":
		b.handleAbout(i)
	case "help":
		b.handleHelp(i)
	}
}

// handleEvents lists the upcoming events as an embed
func (b *Bot) handleEvents(i *discordgo.InteractionCreate) {
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	events, err := b.api.ListEvents(ctx)
	if err != nil {
		log.Printf("[DISCORD]: failed to list events (%v)\n", err)
		editFollowup(b.dg, i, "Could not fetch the events right now, try again later.")
		return
	}

	if len(events) == 0 {
		editFollowup(b.dg, i, "No upcoming events. Check back soon!")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "📅 Upcoming events",
		Color: 0x00b8d4,
	}
	for _, event := range events {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  event.Title,
			Value: fmt.Sprintf("%s\n🕒 %s | 📍 %s", event.Description, event.Date, event.Location),
		})
	}

	editFollowupEmbed(b.dg, i, embed)
}

// handleAddEvent creates an event and announces it
func (b *Bot) handleAddEvent(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		respondEphemeral(b.dg, i, "You need administrator permissions to add events.")
		return
	}
	deferReply(b.dg, i, false)

	options := optionMap(i)
	event := &sdk.Event{
		Title:       options["title"].StringValue(),
		Date:        options["date"].StringValue(),
		Description: options["description"].StringValue(),
		Location:    options["location"].StringValue(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	created, err := b.api.CreateEvent(ctx, event)
	if err != nil {
		log.Printf("[DISCORD]: failed to create event (%v)\n", err)
		editFollowup(b.dg, i, fmt.Sprintf("Could not add the event: %v", err))
		return
	}

	editFollowup(b.dg, i, fmt.Sprintf("✅ Event **%s** added.", created.Title))

	// Announce outside the command round trip; a failed announcement
	// never undoes the create
	go b.notifier.EventAdded(*created)
}

// handleUpdateEvent applies a partial update addressed by title
func (b *Bot) handleUpdateEvent(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		respondEphemeral(b.dg, i, "You need administrator permissions to update events.")
		return
	}

	options := optionMap(i)
	title := options["title"].StringValue()

	fields := make(map[string]any)
	if option, ok := options["new_title"]; ok {
		fields["title"] = option.StringValue()
	}
	for _, name := range []string{"date", "description", "location"} {
		if option, ok := options[name]; ok {
			fields[name] = option.StringValue()
		}
	}

	if len(fields) == 0 {
		respondEphemeral(b.dg, i, "Provide at least one field to update.")
		return
	}
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	updated, err := b.api.UpdateEvent(ctx, title, fields)
	if errors.Is(err, sdk.ErrNotFound) {
		editFollowup(b.dg, i, fmt.Sprintf("No event titled **%s** was found.", title))
		return
	}
	if err != nil {
		log.Printf("[DISCORD]: failed to update event (%v)\n", err)
		editFollowup(b.dg, i, fmt.Sprintf("Could not update the event: %v", err))
		return
	}

	editFollowup(b.dg, i, fmt.Sprintf("✅ Event **%s** updated.", updated.Title))
}

// handleRemoveEvent deletes an event addressed by title
func (b *Bot) handleRemoveEvent(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		respondEphemeral(b.dg, i, "You need administrator permissions to remove events.")
		return
	}
	deferReply(b.dg, i, false)

	title := optionMap(i)["title"].StringValue()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	err := b.api.DeleteEvent(ctx, title)
	if errors.Is(err, sdk.ErrNotFound) {
		editFollowup(b.dg, i, fmt.Sprintf("No event titled **%s** was found.", title))
		return
	}
	if err != nil {
		log.Printf("[DISCORD]: failed to delete event (%v)\n", err)
		editFollowup(b.dg, i, fmt.Sprintf("Could not remove the event: %v", err))
		return
	}

	editFollowup(b.dg, i, fmt.Sprintf("🗑️ Event **%s** removed.", title))
}

// handleCyberFact replies with a random fact
func (b *Bot) handleCyberFact(i *discordgo.InteractionCreate) {
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	facts, err := b.api.ListFacts(ctx)
	if err != nil {
		log.Printf("[DISCORD]: failed to list facts (%v)\n", err)
		editFollowup(b.dg, i, "Could not fetch a fact right now, try again later.")
		return
	}
	if len(facts) == 0 {
		editFollowup(b.dg, i, "No facts in the collection yet. Add one with /add_fact!")
		return
	}

	fact := facts[rand.Intn(len(facts))]
	editFollowup(b.dg, i, fmt.Sprintf("💡 **Cyber fact:** %s", fact.Content))
}

// handleAddFact stores a new fact
func (b *Bot) handleAddFact(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		respondEphemeral(b.dg, i, "You need administrator permissions to add facts.")
		return
	}
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	_, err := b.api.CreateFact(ctx, &sdk.Fact{Content: optionMap(i)["content"].StringValue()})
	if err != nil {
		log.Printf("[DISCORD]: failed to create fact (%v)\n", err)
		editFollowup(b.dg, i, fmt.Sprintf("Could not add the fact: %v", err))
		return
	}

	editFollowup(b.dg, i, "✅ Fact added.")
}

// handleCyberJoke replies with a random joke
func (b *Bot) handleCyberJoke(i *discordgo.InteractionCreate) {
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	jokes, err := b.api.ListJokes(ctx)
	if err != nil {
		log.Printf("[DISCORD]: failed to list jokes (%v)\n", err)
		editFollowup(b.dg, i, "Could not fetch a joke right now, try again later.")
		return
	}
	if len(jokes) == 0 {
		editFollowup(b.dg, i, "No jokes in the collection yet. Add one with /add_joke!")
		return
	}

	joke := jokes[rand.Intn(len(jokes))]
	editFollowup(b.dg, i, fmt.Sprintf("😄 %s", joke.Content))
}

// handleAddJoke stores a new joke
func (b *Bot) handleAddJoke(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		respondEphemeral(b.dg, i, "You need administrator permissions to add jokes.")
		return
	}
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	_, err := b.api.CreateJoke(ctx, &sdk.Joke{Content: optionMap(i)["content"].StringValue()})
	if err != nil {
		log.Printf("[DISCORD]: failed to create joke (%v)\n", err)
		editFollowup(b.dg, i, fmt.Sprintf("Could not add the joke: %v", err))
		return
	}

	editFollowup(b.dg, i, "✅ Joke added.")
}

// handleCyberQuote replies with a random quote
func (b *Bot) handleCyberQuote(i *discordgo.InteractionCreate) {
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	quotes, err := b.api.ListQuotes(ctx)
	if err != nil {
		log.Printf("[DISCORD]: failed to list quotes (%v)\n", err)
		editFollowup(b.dg, i, "Could not fetch a quote right now, try again later.")
		return
	}
	if len(quotes) == 0 {
		editFollowup(b.dg, i, "No quotes in the collection yet. Add one with /add_quote!")
		return
	}

	quote := quotes[rand.Intn(len(quotes))]
	editFollowup(b.dg, i, fmt.Sprintf("🗣️ *\"%s\"* — **%s**", quote.Content, quote.Author))
}

// handleAddQuote stores a new quote. The author is optional and the
// backend fills in "Unknown" when it is missing.
func (b *Bot) handleAddQuote(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		respondEphemeral(b.dg, i, "You need administrator permissions to add quotes.")
		return
	}
	deferReply(b.dg, i, false)

	options := optionMap(i)
	quote := &sdk.Quote{Content: options["content"].StringValue()}
	if option, ok := options["author"]; ok {
		quote.Author = option.StringValue()
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	created, err := b.api.CreateQuote(ctx, quote)
	if err != nil {
		log.Printf("[DISCORD]: failed to create quote (%v)\n", err)
		editFollowup(b.dg, i, fmt.Sprintf("Could not add the quote: %v", err))
		return
	}

	editFollowup(b.dg, i, fmt.Sprintf("✅ Quote by **%s** added.", created.Author))
}

// handleCyberQuiz deals a quiz session: one random question with an
// answer button per option
func (b *Bot) handleCyberQuiz(i *discordgo.InteractionCreate) {
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	quizzes, err := b.api.ListQuizzes(ctx)
	if err != nil {
		log.Printf("[DISCORD]: failed to list quizzes (%v)\n", err)
		editFollowup(b.dg, i, "Could not fetch a quiz right now, try again later.")
		return
	}
	if len(quizzes) == 0 {
		editFollowup(b.dg, i, "No quiz questions yet. Add one with /add_quiz!")
		return
	}

	quiz := quizzes[rand.Intn(len(quizzes))]
	sessionID := b.sessions.Deal(&quiz)

	editFollowupComplex(b.dg, i,
		renderQuizContent(quiz.Question),
		quizButtons(sessionID, quiz.Options, false))
}

// handleAddQuiz validates and stores a new quiz question
func (b *Bot) handleAddQuiz(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		respondEphemeral(b.dg, i, "You need administrator permissions to add quiz questions.")
		return
	}

	options := optionMap(i)
	parsed, correct, err := ParseQuizOptions(options["options"].StringValue(), int(options["answer"].IntValue()))
	if err != nil {
		respondEphemeral(b.dg, i, fmt.Sprintf("Invalid quiz: %v", err))
		return
	}
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	_, err = b.api.CreateQuiz(ctx, &sdk.QuizItem{
		Question:      options["question"].StringValue(),
		Options:       parsed,
		CorrectOption: correct,
	})
	if err != nil {
		log.Printf("[DISCORD]: failed to create quiz (%v)\n", err)
		editFollowup(b.dg, i, fmt.Sprintf("Could not add the quiz: %v", err))
		return
	}

	editFollowup(b.dg, i, "✅ Quiz question added.")
}

// handleAbout replies with the club information embed
func (b *Bot) handleAbout(i *discordgo.InteractionCreate) {
	deferReply(b.dg, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	about, err := b.api.GetAbout(ctx)
	if err != nil {
		log.Printf("[DISCORD]: failed to fetch about info (%v)\n", err)
		editFollowup(b.dg, i, "Could not fetch the club info right now, try again later.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🛡️ %s", about.Name),
		Description: about.Description,
		Color:       0x00b8d4,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Founded", Value: about.Founded, Inline: true},
			{Name: "Location", Value: about.Location, Inline: true},
			{Name: "Website", Value: about.Website, Inline: true},
			{Name: "Mission", Value: about.Mission},
		},
	}
	for _, department := range about.Departments {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  department.Name,
			Value: department.Description,
		})
	}
	if len(about.Activities) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Activities",
			Value: strings.Join(about.Activities, ", "),
		})
	}

	editFollowupEmbed(b.dg, i, embed)
}

// handleHelp lists the commands without touching the backend
func (b *Bot) handleHelp(i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title: "🤖 CyberBot commands",
		Color: 0x00b8d4,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "/events", Value: "List the upcoming club events"},
			{Name: "/cyberfact", Value: "Get a random cybersecurity fact"},
			{Name: "/cyberjoke", Value: "Get a random cybersecurity joke"},
			{Name: "/cyberquote", Value: "Get a random cybersecurity quote"},
			{Name: "/cyberquiz", Value: "Answer a random quiz question"},
			{Name: "/about", Value: "Learn about the Shellmates club"},
			{Name: "Admin", Value: "/add_event, /update_event, /remove_event, /add_fact, /add_joke, /add_quote, /add_quiz"},
		},
	}

	_ = b.dg.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
}

// handleQuizAnswer scores a quiz button press. The session transition
// happens before any Discord round trip, so exactly one press is ever
// scored no matter how clicks race.
func (b *Bot) handleQuizAnswer(i *discordgo.InteractionCreate) {
	sessionID, choice, ok := parseQuizCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}

	result, ok := b.sessions.Answer(sessionID, choice)
	if !ok {
		respondEphemeral(b.dg, i, "This quiz is no longer active.")
		return
	}
	if result.AlreadyAnswered {
		respondEphemeral(b.dg, i, "This question has already been answered.")
		return
	}

	// Lock the message by re-rendering the buttons disabled, then drop
	// the session: a locked message has nothing left to interact with
	session, ok := b.sessions.Snapshot(sessionID)
	if ok {
		_ = b.dg.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    renderQuizContent(session.Question),
				Components: quizButtons(sessionID, session.Options, true),
			},
		})
	}
	b.sessions.Evict(sessionID)

	if result.Correct {
		followupEphemeral(b.dg, i, "✅ Correct, well done!")
	} else {
		followupEphemeral(b.dg, i, fmt.Sprintf("❌ Not quite. The correct answer was **%s**.", result.CorrectAnswer))
	}
}

// renderQuizContent formats the question text of a dealt quiz
func renderQuizContent(question string) string {
	return fmt.Sprintf("🧠 **Quiz time!**\n%s", question)
}

// quizButtons builds one button per option, five to a row
func quizButtons(sessionID string, options []string, disabled bool) []discordgo.MessageComponent {
	var components []discordgo.MessageComponent
	var row discordgo.ActionsRow

	for index, option := range options {
		row.Components = append(row.Components, discordgo.Button{
			Label:    truncate(option, 80),
			Style:    discordgo.PrimaryButton,
			CustomID: quizCustomID(sessionID, index),
			Disabled: disabled,
		})
		if len(row.Components) == 5 {
			components = append(components, row)
			row = discordgo.ActionsRow{}
		}
	}
	if len(row.Components) > 0 {
		components = append(components, row)
	}
	return components
}
