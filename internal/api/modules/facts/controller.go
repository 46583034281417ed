package facts_module

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

// ListFacts handles GET requests for all facts
func ListFacts(c *gin.Context) {
	facts, err := store.ListFacts()
	if err != nil {
		respond.StoreError(c, "Facts not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Facts retrieved successfully", facts).AsGinResponse())
}

// GetFact handles GET requests for one fact by id
func GetFact(c *gin.Context) {
	fact, err := store.GetFact(c.Param("id"))
	if err != nil {
		respond.StoreError(c, "Fact not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Fact retrieved successfully", fact).AsGinResponse())
}

// CreateFact handles POST requests to add a new fact
func CreateFact(c *gin.Context) {
	var fact content.Fact
	if err := c.ShouldBindJSON(&fact); err != nil {
		respond.BadRequest(c, err)
		return
	}

	created, err := store.CreateFact(&fact)
	if err != nil {
		respond.StoreError(c, "Fact not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Fact created successfully", created).AsGinResponse())
}

// UpdateFact handles PUT requests with a partial-field map
func UpdateFact(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.BadRequest(c, err)
		return
	}

	updated, err := store.UpdateFact(c.Param("id"), fields)
	if err != nil {
		respond.StoreError(c, "Fact not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Fact updated successfully", updated).AsGinResponse())
}

// DeleteFact handles DELETE requests by id
func DeleteFact(c *gin.Context) {
	if err := store.DeleteFact(c.Param("id")); err != nil {
		respond.StoreError(c, "Fact not found", err)
		return
	}

	c.JSON(sdk.NewSuccess("Fact deleted successfully").AsGinResponse())
}
