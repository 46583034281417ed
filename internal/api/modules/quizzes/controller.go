package quizzes_module

import (
	"github.com/gin-gonic/gin"
	"github.com/shellmates/cyberbot/internal/api/respond"
	"github.com/shellmates/cyberbot/internal/stores/content"
	"github.com/shellmates/cyberbot/pkg/sdk"
)

var store content.StoreInterface

// Init wires the module to the content store
func Init(s content.StoreInterface) {
	store = s
}

// ListQuizzes handles GET requests for all quiz items
func ListQuizzes(c *gin.Context) {
	quizzes, err := store.ListQuizzes()
	if err != nil {
		respond.StoreError(c, "Quizzes not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Quizzes retrieved successfully", quizzes).AsGinResponse())
}

// GetQuiz handles GET requests for one quiz item by id
func GetQuiz(c *gin.Context) {
	quiz, err := store.GetQuiz(c.Param("id"))
	if err != nil {
		respond.StoreError(c, "Quiz not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Quiz retrieved successfully", quiz).AsGinResponse())
}

// CreateQuiz handles POST requests to add a new quiz item. The option
// list and correct-answer index are validated before the store is
// touched: at least two options, 0 <= correct_option < len(options).
func CreateQuiz(c *gin.Context) {
	var quiz content.QuizItem
	if err := c.ShouldBindJSON(&quiz); err != nil {
		respond.BadRequest(c, err)
		return
	}

	created, err := store.CreateQuiz(&quiz)
	if err != nil {
		respond.StoreError(c, "Quiz not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Quiz created successfully", created).AsGinResponse())
}

// UpdateQuiz handles PUT requests with a partial-field map
func UpdateQuiz(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.BadRequest(c, err)
		return
	}

	updated, err := store.UpdateQuiz(c.Param("id"), fields)
	if err != nil {
		respond.StoreError(c, "Quiz not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Quiz updated successfully", updated).AsGinResponse())
}

// DeleteQuiz handles DELETE requests by id
func DeleteQuiz(c *gin.Context) {
	if err := store.DeleteQuiz(c.Param("id")); err != nil {
		respond.StoreError(c, "Quiz not found", err)
		return
	}

	c.JSON(sdk.NewSuccess("Quiz deleted successfully").AsGinResponse())
}
