package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/gin-gonic/gin"
)

const (
	msgMissingAuth = "Missing authentication"
	msgInvalidAuth = "Invalid authentication"
	msgRateLimited = "Too many requests"
	msgInternal    = "Internal server error"
)

func abortWith(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// fail maps service errors to HTTP: validation 400, not found 404,
// everything else 500 with the cause logged.
func (h *handler) fail(c *gin.Context, err error) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		abortWith(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, common.ErrorNotFound):
		abortWith(c, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		abortWith(c, http.StatusInternalServerError, msgInternal)
	}
}
