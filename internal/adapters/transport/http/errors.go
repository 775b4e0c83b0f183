package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasklane/tasklane/internal/domain/apperrors"
)

// handleError maps the domain taxonomy onto status codes. Every
// authentication failure is 401 with a body that does not say which check
// rejected the request; 404 is reserved for resources that are genuinely
// absent after successful authentication.
func handleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
	case apperrors.IsInvalidToken(err), apperrors.IsIncompleteIdentity(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
