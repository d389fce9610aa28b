package httpHandler

import (
	"errors"
	"net/http"
	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

// respondError maps use case errors onto HTTP statuses: validation problems
// are client errors, dangling references are not found, duplicate emails are
// conflicts, everything else is a server error.
func respondError(c *gin.Context, err error) {
	var verr *usecases.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, usecases.ErrUserNotFound), errors.Is(err, usecases.ErrDeviceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
