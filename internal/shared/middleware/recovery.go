package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bookstore-catalog/internal/shared/response"
)

func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Msg("Panic recovered")

				c.Abort()
				response.InternalServerError(c)
			}
		}()

		c.Next()
	}
}
