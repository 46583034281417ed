// Package api wires the gin engine: CORS, no-route handling and the
// per-collection content modules.
package api

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shellmates/cyberbot/internal/api/respond"
	"github.com/shellmates/cyberbot/internal/stores/content"
	"github.com/shellmates/cyberbot/pkg/utils"

	about_module "github.com/shellmates/cyberbot/internal/api/modules/about"
	events_module "github.com/shellmates/cyberbot/internal/api/modules/events"
	facts_module "github.com/shellmates/cyberbot/internal/api/modules/facts"
	health_module "github.com/shellmates/cyberbot/internal/api/modules/health"
	jokes_module "github.com/shellmates/cyberbot/internal/api/modules/jokes"
	quizzes_module "github.com/shellmates/cyberbot/internal/api/modules/quizzes"
	quotes_module "github.com/shellmates/cyberbot/internal/api/modules/quotes"
)

// NewEngine builds the gin engine with all content modules registered
// against the given store
func NewEngine(cfg *utils.Config, store content.StoreInterface) *gin.Engine {
	engine := gin.Default()
	engine.NoRoute(respond.NoRoute)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	health_module.RegisterRoutes(baseGroup)
	about_module.RegisterRoutes(baseGroup)

	events_module.Init(store)
	events_module.RegisterRoutes(baseGroup)

	facts_module.Init(store)
	facts_module.RegisterRoutes(baseGroup)

	jokes_module.Init(store)
	jokes_module.RegisterRoutes(baseGroup)

	quotes_module.Init(store)
	quotes_module.RegisterRoutes(baseGroup)

	quizzes_module.Init(store)
	quizzes_module.RegisterRoutes(baseGroup)

	return engine
}

// Start builds the engine and serves it on the configured port
func Start(cfg *utils.Config, store content.StoreInterface) {
	port := cfg.GetWithDefault("API_PORT", "8000")

	engine := NewEngine(cfg, store)

	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
