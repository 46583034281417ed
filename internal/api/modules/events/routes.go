package events_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the events module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/events")

	group.GET("", ListEvents)
	group.GET("/:title", GetEvent)
	group.POST("", CreateEvent)
	group.PUT("/:title", UpdateEvent)
	group.DELETE("/:title", DeleteEvent)
}
