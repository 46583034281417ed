package about_module

import "github.com/gin-gonic/gin"

// Register routes for the about module
func RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/about", GetAbout)
}
