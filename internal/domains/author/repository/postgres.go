package repository

import (
	"time"

	"github.com/rs/zerolog"

	"bookstore-catalog/internal/domains/author/model"
	"bookstore-catalog/internal/shared/persistence"
	sharedrepo "bookstore-catalog/internal/shared/repository"
	"bookstore-catalog/pkg/cache"
)

const (
	authorCacheKeyPrefix = "author"
	cacheTTL             = 15 * time.Minute
)

// Repository is the author repository used by the service layer.
type Repository = sharedrepo.Repository[*model.Author]

// Table maps model.Author onto the authors table.
var Table = persistence.Table[*model.Author]{
	Name:    "authors",
	Columns: []string{"first_name", "last_name", "bio"},
	New:     func() *model.Author { return &model.Author{} },
	Values: func(a *model.Author) []any {
		return []any{a.FirstName, a.LastName, a.Bio}
	},
	Targets: func(a *model.Author) []any {
		return []any{&a.ID, &a.FirstName, &a.LastName, &a.Bio}
	},
}

// NewPostgresRepository builds the author repository on a pgx pool. When c
// is non-nil lookups by id go through the cache.
func NewPostgresRepository(db persistence.DB, c cache.Cache, log zerolog.Logger) *Repository {
	var port persistence.Port[*model.Author] = persistence.NewPostgresPort(db, Table)
	if c != nil {
		port = persistence.NewCachedPort(port, c, authorCacheKeyPrefix, cacheTTL, Table.New, log)
	}
	return sharedrepo.New(port)
}

// NewMemoryRepository builds an author repository backed by process memory.
func NewMemoryRepository() *Repository {
	return sharedrepo.New[*model.Author](persistence.NewMemoryPort[*model.Author]())
}
