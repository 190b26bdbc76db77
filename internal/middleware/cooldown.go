package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"anoa.com/forumapi/pkg/logger"
	"anoa.com/forumapi/pkg/ratelimiter"
	"anoa.com/forumapi/pkg/response"
	"github.com/gin-gonic/gin"
)

// Cooldown limits an authenticated user to one action per window.
// It must run after RequireAuth. When Redis is unavailable the request is let through.
// A claim is released again if the handler does not answer with a 2xx status.
func Cooldown(cd *ratelimiter.Cooldown, action string, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := response.GetUserID(c)
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		ctx := c.Request.Context()
		if err := cd.Acquire(ctx, userID, action, window); err != nil {
			var rlErr *ratelimiter.RateLimitError
			if errors.As(err, &rlErr) {
				c.Header("Retry-After", fmt.Sprintf("%.0f", rlErr.RetryAfter.Seconds()))
				response.ResponseError(c, rlErr)
				return
			}
			logger.Log.Warn("cooldown check skipped", "action", action, "error", err)
			c.Next()
			return
		}

		c.Next()

		if status := c.Writer.Status(); status < http.StatusOK || status >= http.StatusMultipleChoices {
			if err := cd.Release(ctx, userID, action); err != nil {
				logger.Log.Warn("cooldown release failed", "action", action, "error", err)
			}
		}
	}
}
