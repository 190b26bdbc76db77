package response

import (
	"net/http"

	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/dto"
	"anoa.com/forumapi/pkg/logger"
	"github.com/gin-gonic/gin"
)

const msgServerFailure = "terjadi kegagalan pada server kami"

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (string, error) {
	userID := c.GetString("user_id")
	if userID == "" {
		return "", apperror.Unauthorized("Missing authentication")
	}
	return userID, nil
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Success(data))
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.Success(data))
}

// ResponseError writes the fail or error envelope for err.
// Client errors carry their message; server errors are logged and hidden.
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code >= http.StatusInternalServerError {
		logger.Log.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.AbortWithStatusJSON(code, dto.Envelope{Status: dto.StatusError, Message: msgServerFailure})
		return
	}

	c.AbortWithStatusJSON(code, dto.Envelope{Status: dto.StatusFail, Message: apperror.Translate(err)})
}
