package jokes_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the jokes module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/jokes")

	group.GET("", ListJokes)
	group.GET("/:id", GetJoke)
	group.POST("", CreateJoke)
	group.PUT("/:id", UpdateJoke)
	group.DELETE("/:id", DeleteJoke)
}
