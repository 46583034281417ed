package quotes_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the quotes module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/quotes")

	group.GET("", ListQuotes)
	group.GET("/:id", GetQuote)
	group.POST("", CreateQuote)
	group.PUT("/:id", UpdateQuote)
	group.DELETE("/:id", DeleteQuote)
}
