// internal/domains/author/service/author_service.go
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"bookstore-catalog/internal/domains/author/model"
	"bookstore-catalog/internal/shared/outcome"
)

type authorService struct {
	repo Repository
	log  zerolog.Logger
	opts Options
}

func NewAuthorService(repo Repository, log zerolog.Logger, opts Options) ServiceInterface {
	return &authorService{
		repo: repo,
		log:  log,
		opts: opts,
	}
}

func (s *authorService) GetAll(ctx context.Context) (out outcome.Outcome) {
	const location = "Authors - GetAll"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Msg("attempted call")

	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}

	s.log.Info().Str("location", location).Int("count", len(authors)).Msg("successfully retrieved")
	return outcome.OK(model.ToAuthorResponses(authors))
}

func (s *authorService) GetByID(ctx context.Context, id int64) (out outcome.Outcome) {
	const location = "Authors - GetByID"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Int64("id", id).Msg("attempted call")

	a, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !found {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("record not found")
		return outcome.NotFound()
	}

	return outcome.OK(model.ToAuthorResponse(a))
}

func (s *authorService) Create(ctx context.Context, req *model.AuthorCreate) (out outcome.Outcome) {
	const location = "Authors - Create"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Msg("create attempted")

	if req == nil {
		s.log.Warn().Str("location", location).Msg("empty request was submitted")
		return outcome.BadRequest("request body is required")
	}
	if bad, ok := s.validate(location, req.Validate()); !ok {
		return bad
	}

	a := model.AuthorFromCreate(req)

	staged, err := s.repo.Create(ctx, a)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !staged {
		return outcome.Failure(s.log, location, fmt.Errorf("author creation failed"))
	}
	defer s.discard(ctx, location, a)

	if err := s.repo.Save(ctx, a); err != nil {
		return outcome.Failure(s.log, location, err)
	}

	s.log.Info().Str("location", location).Int64("id", a.ID).Msg("creation was successful")
	return outcome.Created(model.ToAuthorResponse(a))
}

func (s *authorService) Update(ctx context.Context, id int64, req *model.AuthorUpdate) (out outcome.Outcome) {
	const location = "Authors - Update"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Int64("id", id).Msg("update attempted")

	if id < 1 || req == nil || id != req.ID {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("update failed with bad data")
		return outcome.BadRequest("id must be positive and match the payload id")
	}
	if bad, ok := s.validate(location, req.Validate()); !ok {
		return bad
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !exists {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("record not found")
		return outcome.NotFound()
	}

	updated, err := s.repo.Update(ctx, model.AuthorFromUpdate(req))
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !updated {
		return s.writeFailed(location, id)
	}

	s.log.Info().Str("location", location).Int64("id", id).Msg("successfully updated")
	return outcome.NoContent()
}

func (s *authorService) Delete(ctx context.Context, id int64) (out outcome.Outcome) {
	const location = "Authors - Delete"
	defer outcome.Guard(s.log, location, &out)

	s.log.Info().Str("location", location).Int64("id", id).Msg("delete attempted")

	if id < 1 {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("delete failed, id is invalid")
		return outcome.BadRequest("id must be positive")
	}

	a, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !found {
		s.log.Warn().Str("location", location).Int64("id", id).Msg("record not found")
		return outcome.NotFound()
	}

	deleted, err := s.repo.Delete(ctx, a)
	if err != nil {
		return outcome.Failure(s.log, location, err)
	}
	if !deleted {
		return s.writeFailed(location, id)
	}

	s.log.Info().Str("location", location).Int64("id", id).Msg("successfully deleted")
	return outcome.NoContent()
}

func (s *authorService) discard(ctx context.Context, location string, a *model.Author) {
	if err := s.repo.Discard(ctx, a); err != nil {
		s.log.Warn().Err(err).Str("location", location).Msg("failed to discard staged write")
	}
}

// validate returns ok=false with the outcome to send when err is non-nil.
func (s *authorService) validate(location string, err error) (outcome.Outcome, bool) {
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

// writeFailed handles a repository write that reported false.
func (s *authorService) writeFailed(location string, id int64) outcome.Outcome {
	s.log.Error().Str("location", location).Int64("id", id).Msg("write failed")
	if s.opts.StrictWrites {
		return outcome.InternalError()
	}
	return outcome.NoContent()
}
