package quotes_module

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

// ListQuotes handles GET requests for all quotes
func ListQuotes(c *gin.Context) {
	quotes, err := store.ListQuotes()
	if err != nil {
		respond.StoreError(c, "Quotes not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Quotes retrieved successfully", quotes).AsGinResponse())
}

// GetQuote handles GET requests for one quote by id
func GetQuote(c *gin.Context) {
	quote, err := store.GetQuote(c.Param("id"))
	if err != nil {
		respond.StoreError(c, "Quote not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Quote retrieved successfully", quote).AsGinResponse())
}

// CreateQuote handles POST requests to add a new quote. A missing
// author defaults to "Unknown".
func CreateQuote(c *gin.Context) {
	var quote content.Quote
	if err := c.ShouldBindJSON(&quote); err != nil {
		respond.BadRequest(c, err)
		return
	}

	created, err := store.CreateQuote(&quote)
	if err != nil {
		respond.StoreError(c, "Quote not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Quote created successfully", created).AsGinResponse())
}

// UpdateQuote handles PUT requests with a partial-field map
func UpdateQuote(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.BadRequest(c, err)
		return
	}

	updated, err := store.UpdateQuote(c.Param("id"), fields)
	if err != nil {
		respond.StoreError(c, "Quote not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Quote updated successfully", updated).AsGinResponse())
}

// DeleteQuote handles DELETE requests by id
func DeleteQuote(c *gin.Context) {
	if err := store.DeleteQuote(c.Param("id")); err != nil {
		respond.StoreError(c, "Quote not found", err)
		return
	}

	c.JSON(sdk.NewSuccess("Quote deleted successfully").AsGinResponse())
}
