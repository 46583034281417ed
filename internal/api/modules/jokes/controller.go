package jokes_module

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

// ListJokes handles GET requests for all jokes
func ListJokes(c *gin.Context) {
	jokes, err := store.ListJokes()
	if err != nil {
		respond.StoreError(c, "Jokes not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Jokes retrieved successfully", jokes).AsGinResponse())
}

// GetJoke handles GET requests for one joke by id
func GetJoke(c *gin.Context) {
	joke, err := store.GetJoke(c.Param("id"))
	if err != nil {
		respond.StoreError(c, "Joke not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Joke retrieved successfully", joke).AsGinResponse())
}

// CreateJoke handles POST requests to add a new joke
func CreateJoke(c *gin.Context) {
	var joke content.Joke
	if err := c.ShouldBindJSON(&joke); err != nil {
		respond.BadRequest(c, err)
		return
	}

	created, err := store.CreateJoke(&joke)
	if err != nil {
		respond.StoreError(c, "Joke not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Joke created successfully", created).AsGinResponse())
}

// UpdateJoke handles PUT requests with a partial-field map
func UpdateJoke(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.BadRequest(c, err)
		return
	}

	updated, err := store.UpdateJoke(c.Param("id"), fields)
	if err != nil {
		respond.StoreError(c, "Joke not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Joke updated successfully", updated).AsGinResponse())
}

// DeleteJoke handles DELETE requests by id
func DeleteJoke(c *gin.Context) {
	if err := store.DeleteJoke(c.Param("id")); err != nil {
		respond.StoreError(c, "Joke not found", err)
		return
	}

	c.JSON(sdk.NewSuccess("Joke deleted successfully").AsGinResponse())
}
