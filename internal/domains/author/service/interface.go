package service

import (
	"context"

	"bookstore-catalog/internal/domains/author/model"
	"bookstore-catalog/internal/shared/outcome"
)

// Repository is the data access the author service depends on.
// *repository.Repository satisfies it.
type Repository interface {
	FindAll(ctx context.Context) ([]*model.Author, error)
	FindByID(ctx context.Context, id int64) (*model.Author, bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, a *model.Author) (bool, error)
	Save(ctx context.Context, a *model.Author) error
	Discard(ctx context.Context, a *model.Author) error
	Update(ctx context.Context, a *model.Author) (bool, error)
	Delete(ctx context.Context, a *model.Author) (bool, error)
}

// ServiceInterface is the author resource. Every method returns exactly one
// outcome and never panics or returns internal error text to the caller.
type ServiceInterface interface {
	GetAll(ctx context.Context) outcome.Outcome
	GetByID(ctx context.Context, id int64) outcome.Outcome
	Create(ctx context.Context, req *model.AuthorCreate) outcome.Outcome
	Update(ctx context.Context, id int64, req *model.AuthorUpdate) outcome.Outcome
	Delete(ctx context.Context, id int64) outcome.Outcome
}

type Options struct {
	// StrictWrites surfaces failed updates and deletes as InternalError.
	// When false the failure is only logged and NoContent is returned.
	StrictWrites bool
}
