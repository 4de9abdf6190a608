package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/shared/outcome"
)

type bookService struct {
	repo    Repository
	authors AuthorLookup
	log     zerolog.Logger
	opts    Options
}

func NewBookService(repo Repository, authors AuthorLookup, log zerolog.Logger, opts Options) ServiceInterface {
	return &bookService{
		repo:    repo,
		authors: authors,
		log:     log,
		opts:    opts,
	}
}

func (s *bookService) GetAll(ctx context.Context) (out outcome.Outcome) {
	const location = "Books - GetAll"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Msg("attempted call")

	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}

	s.log.Info().Str("location", location).Int("count", len(books)).Msg("successfully retrieved")
	return outcome.OK(model.ToBookResponses(books))
}

func (s *bookService) GetByID(ctx context.Context, id int64) (out outcome.Outcome) {
	const location = "Books - GetByID"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Int64("id", id).Msg("attempted call")

	b, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !found {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("failed to retrieve record")
		return outcome.NotFound()
	}

	s.log.Info().Str("location", location).Int64("id", id).Msg("successfully got record")
	return outcome.OK(model.ToBookResponse(b))
}

func (s *bookService) Create(ctx context.Context, req *model.BookCreate) (out outcome.Outcome) {
	const location = "Books - Create"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Msg("create attempted")

	if req == nil {
		s.log.Warn().Str("location", location).Msg("empty request was submitted")
		return outcome.BadRequest("request body is required")
	}
	if bad, ok := s.validate(location, req.Validate()); !ok {
		return bad
	}
	if bad, ok := s.checkAuthor(ctx, location, req.AuthorID); !ok {
		return bad
	}

	b := model.BookFromCreate(req)

	staged, err := s.repo.Create(ctx, b)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !staged {
		return outcome.Failure(s.log, location, fmt.Errorf("book creation failed"))
	}
	defer s.discard(ctx, location, b)

	if err := s.repo.Save(ctx, b); err != nil {
		return outcome.Failure(s.log, location, err)
	}

	s.log.Info().Str("location", location).Int64("id", b.ID).Msg("creation was successful")
	return outcome.Created(model.ToBookResponse(b))
}

func (s *bookService) Update(ctx context.Context, id int64, req *model.BookUpdate) (out outcome.Outcome) {
	const location = "Books - Update"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Int64("id", id).Msg("update attempted")

	if id < 1 || req == nil || id != req.ID {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("update failed with bad data")
		return outcome.BadRequest("id must be positive and match the payload id")
	}
	if bad, ok := s.validate(location, req.Validate()); !ok {
		return bad
	}

	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !found {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("failed to retrieve record")
		return outcome.NotFound()
	}

	if bad, ok := s.checkAuthor(ctx, location, req.AuthorID); !ok {
		return bad
	}

	b := model.BookFromUpdate(req)
	if b.ISBN == "" {
		// isbn is optional on update; an omitted one keeps the stored value.
		b.ISBN = current.ISBN
	}

	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !updated {
		return s.writeFailed(location, id)
	}

	s.log.Info().Str("location", location).Int64("id", id).Msg("successfully updated")
	return outcome.NoContent()
}

func (s *bookService) Delete(ctx context.Context, id int64) (out outcome.Outcome) {
	const location = "Books - Delete"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Int64("id", id).Msg("delete attempted")

	if id < 1 {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("delete failed, id is invalid")
		return outcome.BadRequest("id must be positive")
	}

	b, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !found {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("delete failed, record not found")
		return outcome.NotFound()
	}

	deleted, err := s.repo.Delete(ctx, b)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !deleted {
		return s.writeFailed(location, id)
	}

	s.log.Info().Str("location", location).Int64("id", id).Msg("successfully deleted")
	return outcome.NoContent()
}

// discard drops a staged write that was never saved. After a successful
// Save there is nothing left to roll back.
func (s *bookService) discard(ctx context.Context, location string, b *model.Book) {
	if err := s.repo.Discard(ctx, b); err != nil {
		s.log.Warn().Err(err).Str("location", location).Msg("failed to discard staged write")
	}
}

// checkAuthor rejects a dangling authorId when the reference is enforced.
func (s *bookService) checkAuthor(ctx context.Context, location string, authorID int64) (outcome.Outcome, bool) {
	if !s.opts.EnforceAuthorReference {
		return outcome.Outcome{}, true
	}

	exists, err := s.authors.Exists(ctx, authorID)
	if err != nil {
		return outcome.Failure(s.log, location, err), false
	}
	if !exists {
		s.log.Warn().Str("location", location).Int64("author_id", authorID).Msg("author does not exist")
		return outcome.BadRequest("validation failed", outcome.FieldError{
			Field:   "authorId",
			Message: "author does not exist",
		}), false
	}
	return outcome.Outcome{}, true
}

func (s *bookService) validate(location string, err error) (outcome.Outcome, bool) {
	if err == nil {
		return outcome.Outcome{}, true
	}

	fields, ok := outcome.FieldErrors(err)
	if !ok {
		return outcome.Failure(s.log, location, err), false
	}

	s.log.Warn().Str("location", location).Interface("errors", fields).Msg("data was incomplete")
	return outcome.BadRequest("validation failed", fields...), false
}

func (s *bookService) writeFailed(location string, id int64) outcome.Outcome {
	s.log.Error().Str("location", location).Int64("id", id).Msg("write failed")
	if s.opts.StrictWrites {
		return outcome.InternalError()
	}
	return outcome.NoContent()
}
