package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/shellmates/cyberbot/pkg/scheduler"
	"github.com/shellmates/cyberbot/pkg/sdk"
	"github.com/shellmates/cyberbot/pkg/utils"
)

// Bot represents the Discord bot instance
type Bot struct {
	config *utils.Config      // Configuration struct
	dg     *discordgo.Session // Discord session
	api    *sdk.Client        // Backend API client

	notifier *Notifier          // Best-effort channel announcements
	sessions *SessionStore      // Active quiz sessions
	sched    *scheduler.Manager // Recurring prune / daily-fact jobs

	guildID string // Guild ID for slash commands (empty for global)
}

// Create a new Discord bot instance
func NewBot(cfg *utils.Config) (*Bot, error) {
	// Get discord token
	token := cfg.Get("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN not set in config or environment")
	}

	// The announcement channel is where lifecycle notifications land;
	// without it the bot cannot fulfil its contract, so it is fatal
	announceChannelID := cfg.Get("ANNOUNCE_CHANNEL_ID")
	if announceChannelID == "" {
		return nil, fmt.Errorf("ANNOUNCE_CHANNEL_ID not set in config or environment")
	}

	// Daily facts default to the announcement channel
	factChannelID := cfg.GetWithDefault("DAILY_FACT_CHANNEL_ID", announceChannelID)

	guildID := cfg.Get("GUILD_ID") // empty = global commands
	if guildID == "" {
		log.Println("GUILD_ID not set, using global commands")
	}

	// Get backend base URL
	baseURL := cfg.GetWithDefault("API_BASE_URL", "http://localhost:8000")

	// Create a new Discord session
	dg, err := discordgo.New("Bot " + strings.TrimPrefix(token, "Bot "))
	if err != nil {
		return nil, err
	}

	// Create the bot instance
	b := &Bot{
		config:   cfg,
		dg:       dg,
		api:      sdk.NewClient(baseURL),
		notifier: NewNotifier(dg, announceChannelID, factChannelID),
		sessions: NewSessionStore(),
		guildID:  guildID,
	}

	// The scheduler drives event pruning and the daily fact through the
	// same backend client the commands use
	b.sched, err = scheduler.NewManager(b.api, b.notifier, scheduler.Options{
		PruneInterval: cfg.GetDurationWithDefault("PRUNE_INTERVAL", scheduler.DefaultPruneInterval),
		GraceWindow:   cfg.GetDurationWithDefault("PRUNE_GRACE_WINDOW", scheduler.DefaultGraceWindow),
		DailyFactTime: cfg.GetWithDefault("DAILY_FACT_TIME", scheduler.DefaultDailyFactTime),
		Timezone:      cfg.GetWithDefault("DAILY_FACT_TZ", scheduler.DefaultTimezone),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	// Intents
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	// Handlers
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)

	return b, nil
}

// Start the bot, register slash commands and begin the scheduled jobs
func (b *Bot) Start() error {
	if err := b.dg.Open(); err != nil {
		return err
	}

	if err := b.registerCommands(); err != nil {
		return err
	}

	b.sched.Start()
	return nil
}

// Stop the bot and clean up resources
func (b *Bot) Stop() error {
	b.sched.Stop()
	_ = b.unregisterCommands()
	return b.dg.Close()
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[DISCORD]: Logged in as: %s#%s", r.User.Username, r.User.Discriminator)
}

// onInteractionCreate routes interactions to slash command or quiz
// button handlers
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleApplicationCommand(i)
	case discordgo.InteractionMessageComponent:
		b.handleQuizAnswer(i)
	}
}
