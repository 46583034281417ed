package main

import (
	"context"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shellmates/cyberbot/pkg/sdk"
	"github.com/shellmates/cyberbot/pkg/utils"
)

// seedData is the shape of the seed file
type seedData struct {
	Quotes []struct {
		Content string `yaml:"content"`
		Author  string `yaml:"author"`
	} `yaml:"quotes"`
	Facts []string `yaml:"facts"`
	Jokes []string `yaml:"jokes"`
}

// Seed the backend with starter quotes, facts and jokes
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	seedFile := cfg.GetWithDefault("SEED_FILE", "cmd/seed/seed.yaml")
	raw, err := os.ReadFile(seedFile)
	if err != nil {
		log.Fatalf("[SEED]: Failed to read seed file %s: %v", seedFile, err)
	}

	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("[SEED]: Failed to parse seed file: %v", err)
	}

	client := sdk.NewClient(cfg.GetWithDefault("API_BASE_URL", "http://localhost:8000"))
	ctx := context.Background()

	created := 0
	for _, quote := range data.Quotes {
		if _, err := client.CreateQuote(ctx, &sdk.Quote{Content: quote.Content, Author: quote.Author}); err != nil {
			log.Printf("[SEED]: Failed to create quote by %s: %v", quote.Author, err)
			continue
		}
		created++
	}
	for _, fact := range data.Facts {
		if _, err := client.CreateFact(ctx, &sdk.Fact{Content: fact}); err != nil {
			log.Printf("[SEED]: Failed to create fact: %v", err)
			continue
		}
		created++
	}
	for _, joke := range data.Jokes {
		if _, err := client.CreateJoke(ctx, &sdk.Joke{Content: joke}); err != nil {
			log.Printf("[SEED]: Failed to create joke: %v", err)
			continue
		}
		created++
	}

	log.Printf("[SEED]: Done, created %d records", created)
}
