package middleware

import (
	"strings"

	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/response"
	"anoa.com/forumapi/pkg/token"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokens *token.Manager
}

func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth accepts a Bearer access token and stores its subject under "user_id".
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			response.ResponseError(c, apperror.Unauthorized("Missing authentication"))
			return
		}

		userID, err := m.tokens.VerifyAccessToken(tokenString)
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
