package quizzes_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the quizzes module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/quizzes")

	group.GET("", ListQuizzes)
	group.GET("/:id", GetQuiz)
	group.POST("", CreateQuiz)
	group.PUT("/:id", UpdateQuiz)
	group.DELETE("/:id", DeleteQuiz)
}
