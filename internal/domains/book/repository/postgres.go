package repository

import (
	"time"

	"github.com/rs/zerolog"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/shared/persistence"
	sharedrepo "bookstore-catalog/internal/shared/repository"
	"bookstore-catalog/pkg/cache"
)

const (
	bookCacheKeyPrefix = "book"
	cacheTTL           = 15 * time.Minute
)

type Repository = sharedrepo.Repository[*model.Book]

// Table maps model.Book onto the books table.
var Table = persistence.Table[*model.Book]{
	Name:    "books",
	Columns: []string{"title", "isbn", "year", "summary", "image", "price", "author_id"},
	New:     func() *model.Book { return &model.Book{} },
	Values: func(b *model.Book) []any {
		return []any{b.Title, b.ISBN, b.Year, b.Summary, b.Image, b.Price, b.AuthorID}
	},
	Targets: func(b *model.Book) []any {
		return []any{&b.ID, &b.Title, &b.ISBN, &b.Year, &b.Summary, &b.Image, &b.Price, &b.AuthorID}
	},
}

func NewPostgresRepository(db persistence.DB, c cache.Cache, log zerolog.Logger) *Repository {
	var port persistence.Port[*model.Book] = persistence.NewPostgresPort(db, Table)
	if c != nil {
		port = persistence.NewCachedPort(port, c, bookCacheKeyPrefix, cacheTTL, Table.New, log)
	}
	return sharedrepo.New(port)
}

// NewMemoryRepository builds a book repository backed by process memory.
// authorExists, when set, emulates the books.author_id foreign key.
func NewMemoryRepository(authorExists func(id int64) bool) *Repository {
	port := persistence.NewMemoryPort[*model.Book]()
	if authorExists != nil {
		port.Check = func(b *model.Book) error {
			if !authorExists(b.AuthorID) {
				return persistence.ErrRejected
			}
			return nil
		}
	}
	return sharedrepo.New[*model.Book](port)
}
