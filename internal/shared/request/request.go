package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID reads the :id path parameter. ok is false when it is not an
// integer; range checks are left to the service.
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// BindOptionalJSON decodes the request body into a new T. An empty body or
// a literal null yields nil, nil so the service decides how to answer a
// missing payload.
func BindOptionalJSON[T any](c *gin.Context) (*T, error) {
	if c.Request.Body == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("malformed JSON body: %w", err)
	}
	return &v, nil
}
