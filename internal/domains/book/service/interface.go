package service

import (
	"context"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/shared/outcome"
)

// Repository is the data access the book service depends on.
type Repository interface {
	FindAll(ctx context.Context) ([]*model.Book, error)
	FindByID(ctx context.Context, id int64) (*model.Book, bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, b *model.Book) (bool, error)
	Save(ctx context.Context, b *model.Book) error
	Discard(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) (bool, error)
	Delete(ctx context.Context, b *model.Book) (bool, error)
}

// AuthorLookup resolves Book.AuthorID references.
type AuthorLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ServiceInterface interface {
	GetAll(ctx context.Context) outcome.Outcome
	GetByID(ctx context.Context, id int64) outcome.Outcome
	Create(ctx context.Context, req *model.BookCreate) outcome.Outcome
	Update(ctx context.Context, id int64, req *model.BookUpdate) outcome.Outcome
	Delete(ctx context.Context, id int64) outcome.Outcome
}

type Options struct {
	// StrictWrites surfaces failed updates and deletes as InternalError.
	StrictWrites bool
	// EnforceAuthorReference rejects creates and updates whose authorId
	// does not resolve to an existing author.
	EnforceAuthorReference bool
}
