// Package respond maps store errors onto the API response envelope so
// every module reports NotFound, validation and transient failures the
// same way.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shellmates/cyberbot/internal/stores/content"
	"github.com/shellmates/cyberbot/pkg/sdk"
)

// StoreError writes the envelope matching a store error: 404 for a
// missing identity, 400 for a validation failure, 500 otherwise
func StoreError(c *gin.Context, notFoundMessage string, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.JSON(sdk.NewFailResponse(http.StatusNotFound, notFoundMessage).AsGinResponse())
	case errors.Is(err, content.ErrValidation):
		c.JSON(sdk.NewFailResponse(http.StatusBadRequest, err.Error()).AsGinResponse())
	default:
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Store operation failed", err).AsGinResponse())
	}
}

// BadRequest writes a 400 envelope for an unparseable request body
func BadRequest(c *gin.Context, err error) {
	c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
}

// NoRoute handles requests that match no registered route
func NoRoute(c *gin.Context) {
	c.JSON(sdk.NewFailResponse(http.StatusNotFound, "Route not found").AsGinResponse())
}
