package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"bookstore-catalog/internal/shared/outcome"
	"bookstore-catalog/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Recovery(zerolog.New(&buf)))
	r.GET("/boom", func(c *gin.Context) { panic("unexpected nil") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), outcome.GenericErrorMessage)
	assert.NotContains(t, w.Body.String(), "unexpected nil")
	assert.Contains(t, buf.String(), "unexpected nil")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.New(&buf)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"path":"/missing"`)
}

type stubValidator struct {
	claims *jwt.Claims
	err    error
}

func (s stubValidator) ValidateAccessToken(string) (*jwt.Claims, error) {
	return s.claims, s.err
}

func TestAuthMiddleware(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	token, err := manager.GenerateAccessToken("editor", "admin")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/authors", AuthMiddleware(manager, zerolog.Nop()), func(c *gin.Context) {
		c.String(http.StatusCreated, c.GetString(SubjectKey))
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/authors", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := serve(r, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusCreated {
				assert.Equal(t, "editor", w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_ValidatorError(t *testing.T) {
	called := false
	r := gin.New()
	r.DELETE("/books/:id", AuthMiddleware(stubValidator{err: errors.New("expired")}, zerolog.Nop()), func(c *gin.Context) {
		called = true
	})

	req := httptest.NewRequest(http.MethodDelete, "/books/1", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := serve(r, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(NewIPRateLimiter(rate.Every(time.Hour), 2)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(r, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	open := gin.New()
	open.Use(CORS(nil))
	open.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	w = serve(open, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
