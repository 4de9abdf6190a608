package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"bookstore-catalog/internal/config"
	authorHandler "bookstore-catalog/internal/domains/author/handler"
	authorRepo "bookstore-catalog/internal/domains/author/repository"
	authorService "bookstore-catalog/internal/domains/author/service"
	bookHandler "bookstore-catalog/internal/domains/book/handler"
	bookRepo "bookstore-catalog/internal/domains/book/repository"
	bookService "bookstore-catalog/internal/domains/book/service"
	infraCache "bookstore-catalog/internal/infrastructure/cache"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/pkg/cache"
	"bookstore-catalog/pkg/jwt"
	"bookstore-catalog/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton for the lifetime of the process.
//
// Initialization order matters:
// 1. Infrastructure (DB, Cache) depends on Config
// 2. Repositories depend on Infrastructure
// 3. Services depend on Repositories
// 4. Handlers depend on Services
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	Log        zerolog.Logger
	DB         *database.PostgresDB // nil with the memory driver
	Redis      *infraCache.RedisCache
	Cache      cache.Cache // nil when redis is disabled or unreachable
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo *authorRepo.Repository
	BookRepo   *bookRepo.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

func NewContainer(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Container, error) {
	log.Info().Msg("initializing DI container")

	c := &Container{
		Config: cfg,
		Log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().
		Str("storage", cfg.Catalog.StorageDriver).
		Bool("cache", c.Cache != nil).
		Bool("auth", cfg.Auth.Enabled).
		Msg("DI container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.Config

	if !cfg.IsMemoryStorage() {
		if cfg.Migration.AutoMigrate {
			if err := database.Migrate(ctx, cfg.Database.DSN(), logger.Component(c.Log, "migrations")); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		db := database.NewPostgresDB(cfg.Database, logger.Component(c.Log, "database"))

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := db.Connect(connectCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		// Redis only fronts postgres; the memory store needs no cache.
		if cfg.Redis.Enabled {
			c.connectRedis(ctx)
		}
	}

	c.JWTManager = jwt.NewManager(cfg.Auth.Secret, cfg.Auth.AccessTTL)
	return nil
}

// connectRedis treats redis as optional: on failure the catalog runs
// uncached.
func (c *Container) connectRedis(ctx context.Context) {
	cfg := c.Config.Redis
	rc := infraCache.NewRedisCache(cfg.Host, cfg.Password, cfg.DB, logger.Component(c.Log, "redis"))

	if err := rc.Connect(ctx); err != nil {
		c.Log.Warn().Err(err).Msg("redis connection failed (non-critical), continuing without cache")
		_ = rc.Close()
		return
	}

	c.Redis = rc
	c.Cache = rc
}

func (c *Container) initRepositories() {
	if c.DB == nil {
		c.AuthorRepo = authorRepo.NewMemoryRepository()
		c.BookRepo = bookRepo.NewMemoryRepository(c.memoryAuthorExists)
		return
	}

	log := logger.Component(c.Log, "cache")
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool, c.Cache, log)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache, log)
}

// memoryAuthorExists emulates the books.author_id foreign key.
func (c *Container) memoryAuthorExists(id int64) bool {
	ok, err := c.AuthorRepo.Exists(context.Background(), id)
	return err == nil && ok
}

func (c *Container) initServices() {
	catalog := c.Config.Catalog

	c.AuthorService = authorService.NewAuthorService(
		c.AuthorRepo,
		logger.Component(c.Log, "authors"),
		authorService.Options{StrictWrites: catalog.StrictWrites},
	)

	c.BookService = bookService.NewBookService(
		c.BookRepo,
		c.AuthorRepo, // Cross-domain dependency
		logger.Component(c.Log, "books"),
		bookService.Options{
			StrictWrites:           catalog.StrictWrites,
			EnforceAuthorReference: catalog.EnforceAuthorReference,
		},
	)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, logger.Component(c.Log, "authors"))
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, logger.Component(c.Log, "books"))
}

// ========================================
// HEALTH AND CLEANUP
// ========================================

// Health reports the status of each backing dependency. A disabled
// dependency is reported as "disabled" and never fails the check.
func (c *Container) Health(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{
		"database": "disabled",
		"cache":    "disabled",
	}
	healthy := true

	if c.DB != nil {
		if err := c.DB.HealthCheck(ctx); err != nil {
			status["database"] = "unhealthy: " + err.Error()
			healthy = false
		} else {
			status["database"] = "healthy"
		}
	} else {
		status["database"] = "memory"
	}

	if c.Cache != nil {
		if err := c.Cache.Ping(ctx); err != nil {
			// The catalog still serves uncached, so this is not fatal.
			status["cache"] = "degraded: " + err.Error()
		} else {
			status["cache"] = "healthy"
		}
	}

	return status, healthy
}

// Cleanup releases pools and connections. Safe on a partially built
// container.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn().Err(err).Msg("failed to close redis")
		}
	}

	c.Log.Info().Msg("container cleanup completed")
}
