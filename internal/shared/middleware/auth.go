package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/jwt"
)

const SubjectKey = "subject"

// TokenValidator is satisfied by *jwt.Manager.
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware requires a valid "Bearer <token>" access token.
func AuthMiddleware(validator TokenValidator, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := validator.ValidateAccessToken(parts[1])
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Msg("rejected access token")
			response.Unauthorized(c, "invalid token")
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}
