package events_module

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

// ListEvents handles GET requests for all events
func ListEvents(c *gin.Context) {
	events, err := store.ListEvents()
	if err != nil {
		respond.StoreError(c, "Events not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Events retrieved successfully", events).AsGinResponse())
}

// GetEvent handles GET requests for one event, addressed by title
func GetEvent(c *gin.Context) {
	event, err := store.GetEvent(c.Param("title"))
	if err != nil {
		respond.StoreError(c, "Event not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Event retrieved successfully", event).AsGinResponse())
}

// CreateEvent handles POST requests to add a new event
func CreateEvent(c *gin.Context) {
	var event content.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		respond.BadRequest(c, err)
		return
	}

	created, err := store.CreateEvent(&event)
	if err != nil {
		respond.StoreError(c, "Event not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Event created successfully", created).AsGinResponse())
}

// UpdateEvent handles PUT requests with a partial-field map, addressed
// by the event's current title
func UpdateEvent(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.BadRequest(c, err)
		return
	}

	updated, err := store.UpdateEvent(c.Param("title"), fields)
	if err != nil {
		respond.StoreError(c, "Event not found", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Event updated successfully", updated).AsGinResponse())
}

// DeleteEvent handles DELETE requests, addressed by title
func DeleteEvent(c *gin.Context) {
	if err := store.DeleteEvent(c.Param("title")); err != nil {
		respond.StoreError(c, "Event not found", err)
		return
	}

	c.JSON(sdk.NewSuccess("Event deleted successfully").AsGinResponse())
}
