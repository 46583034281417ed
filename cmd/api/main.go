package main

import (
	"log"
	"os"

	"github.com/shellmates/cyberbot/internal/api"
	"github.com/shellmates/cyberbot/internal/stores/content"
	"github.com/shellmates/cyberbot/pkg/utils"
)

// Start the API server
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Pick the store: MySQL when a database is configured, in-memory
	// otherwise (local runs and demos)
	var store content.StoreInterface
	if databaseURL := cfg.Get("DATABASE_URL"); databaseURL != "" {
		mysqlStore, err := content.NewStore(databaseURL)
		if err != nil {
			log.Fatalf("[API-MAIN]: Failed to connect to database: %v", err)
		}
		store = mysqlStore
	} else {
		log.Println("[API-MAIN]: DATABASE_URL not set, using in-memory store")
		store = content.NewMemoryStore()
	}
	defer store.Close()

	// Start
	api.Start(cfg, store)
}
