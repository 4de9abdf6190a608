package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/shared/outcome"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	c.Abort()
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func TooManyRequests(c *gin.Context, retryAfter string) {
	c.Header("Retry-After", retryAfter)
	ErrorResponse(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "rate limit exceeded")
}

func ServiceUnavailable(c *gin.Context, data interface{}) {
	c.JSON(http.StatusServiceUnavailable, Response{
		Success: false,
		Data:    data,
		Error: &Error{
			Code:    "SERVICE_UNAVAILABLE",
			Message: "one or more dependencies are unhealthy",
		},
	})
}

func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", outcome.GenericErrorMessage)
}

// Location is the URL of the entity with id under the matched route, e.g.
// /api/v1/books/7 for a POST to /api/v1/books.
func Location(c *gin.Context, id int64) string {
	return fmt.Sprintf("%s/%d", c.FullPath(), id)
}

// Write renders a service outcome. location is the resource URL of a
// created entity and is ignored for every other kind.
func Write(c *gin.Context, out outcome.Outcome, location string) {
	switch out.Kind {
	case outcome.KindOK:
		Success(c, http.StatusOK, out.Payload)
	case outcome.KindCreated:
		if location != "" {
			c.Header("Location", location)
		}
		Success(c, http.StatusCreated, out.Payload)
	case outcome.KindNoContent:
		c.Status(http.StatusNoContent)
	case outcome.KindNotFound:
		c.Status(http.StatusNotFound)
	case outcome.KindBadRequest:
		if len(out.Errors) > 0 {
			ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", out.Message, out.Errors)
			return
		}
		BadRequest(c, out.Message)
	default:
		InternalServerError(c)
	}
}
