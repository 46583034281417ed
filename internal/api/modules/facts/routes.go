package facts_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the facts module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/facts")

	group.GET("", ListFacts)
	group.GET("/:id", GetFact)
	group.POST("", CreateFact)
	group.PUT("/:id", UpdateFact)
	group.DELETE("/:id", DeleteFact)
}
