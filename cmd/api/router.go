package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/container"
	"bookstore-catalog/pkg/logger"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	httpLog := logger.Component(c.Log, "http")

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(httpLog),
		middleware.Logger(httpLog),
		middleware.CORS(c.Config.HTTP.AllowedOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		writes := writeMiddleware(c)
		setupAuthorRoutes(v1, c, writes)
		setupBookRoutes(v1, c, writes)
	}

	return router
}

// writeMiddleware guards every mutating route.
func writeMiddleware(c *container.Container) []gin.HandlerFunc {
	var chain []gin.HandlerFunc

	if limit := c.Config.HTTP.RateLimit; limit > 0 {
		chain = append(chain, middleware.RateLimit(
			middleware.NewIPRateLimiter(rate.Limit(limit), c.Config.HTTP.RateBurst),
		))
	}
	if c.Config.Auth.Enabled {
		chain = append(chain, middleware.AuthMiddleware(c.JWTManager, logger.Component(c.Log, "auth")))
	}

	return chain
}

func with(chain []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container, writes []gin.HandlerFunc) {
	author := v1.Group("/authors")
	{
		author.GET("", c.AuthorHandler.GetAll)
		author.GET("/:id", c.AuthorHandler.GetByID)
		author.POST("", with(writes, c.AuthorHandler.Create)...)
		author.PUT("/:id", with(writes, c.AuthorHandler.Update)...)
		author.DELETE("/:id", with(writes, c.AuthorHandler.Delete)...)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container, writes []gin.HandlerFunc) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:id", c.BookHandler.GetBookDetail)
		books.POST("", with(writes, c.BookHandler.CreateBook)...)
		books.PUT("/:id", with(writes, c.BookHandler.UpdateBook)...)
		books.DELETE("/:id", with(writes, c.BookHandler.DeleteBook)...)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services, healthy := appCtx.Health(ctx)
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		}

		if !healthy {
			health["status"] = "degraded"
			response.ServiceUnavailable(c, health)
			return
		}
		response.Success(c, http.StatusOK, health)
	}
}
