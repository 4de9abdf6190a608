package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/author/model"
	"bookstore-catalog/internal/domains/author/repository"
	"bookstore-catalog/internal/shared/outcome"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*model.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Author), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*model.Author, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Author), args.Bool(1), args.Error(2)
}

func (m *MockRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, a *model.Author) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, a *model.Author) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockRepository) Discard(ctx context.Context, a *model.Author) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, a *model.Author) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, a *model.Author) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}

func strPtr(s string) *string { return &s }

func newMemoryService(opts Options) ServiceInterface {
	return NewAuthorService(repository.NewMemoryRepository(), zerolog.Nop(), opts)
}

func TestAuthorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid author is created with an id", func(t *testing.T) {
		svc := newMemoryService(Options{})

		out := svc.Create(ctx, &model.AuthorCreate{FirstName: "Frank", LastName: "Herbert", Bio: strPtr("Dune")})

		require.Equal(t, outcome.KindCreated, out.Kind)
		resp := out.Payload.(*model.AuthorResponse)
		assert.Greater(t, resp.ID, int64(0))
		assert.Equal(t, "Frank", resp.FirstName)
		assert.Equal(t, "Herbert", resp.LastName)
		assert.Equal(t, "Dune", *resp.Bio)

		got := svc.GetByID(ctx, resp.ID)
		require.Equal(t, outcome.KindOK, got.Kind)
		assert.Equal(t, resp, got.Payload)
	})

	t.Run("missing first name is a bad request", func(t *testing.T) {
		svc := newMemoryService(Options{})

		out := svc.Create(ctx, &model.AuthorCreate{FirstName: "", LastName: "Herbert"})

		require.Equal(t, outcome.KindBadRequest, out.Kind)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, "firstName", out.Errors[0].Field)

		all := svc.GetAll(ctx)
		assert.Empty(t, all.Payload)
	})

	t.Run("nil request is a bad request", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewAuthorService(repo, zerolog.Nop(), Options{})

		out := svc.Create(ctx, nil)

		assert.Equal(t, outcome.KindBadRequest, out.Kind)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejected stage is an internal error and nothing is saved", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(false, nil)
		svc := NewAuthorService(repo, zerolog.Nop(), Options{})

		out := svc.Create(ctx, &model.AuthorCreate{FirstName: "Frank", LastName: "Herbert"})

		assert.Equal(t, outcome.KindInternalError, out.Kind)
		assert.Equal(t, outcome.GenericErrorMessage, out.Message)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("save failure is an internal error and the stage is discarded", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(true, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("commit: connection reset"))
		repo.On("Discard", mock.Anything, mock.Anything).Return(nil)
		svc := NewAuthorService(repo, zerolog.Nop(), Options{})

		out := svc.Create(ctx, &model.AuthorCreate{FirstName: "Frank", LastName: "Herbert"})

		assert.Equal(t, outcome.KindInternalError, out.Kind)
		assert.NotContains(t, out.Message, "connection reset")
		repo.AssertCalled(t, "Discard", mock.Anything, mock.Anything)
	})

	t.Run("rollback failure after a failed save is logged", func(t *testing.T) {
		var buf bytes.Buffer
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(true, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("commit: connection reset"))
		repo.On("Discard", mock.Anything, mock.Anything).Return(errors.New("rollback: conn busy"))
		svc := NewAuthorService(repo, zerolog.New(&buf), Options{})

		out := svc.Create(ctx, &model.AuthorCreate{FirstName: "Frank", LastName: "Herbert"})

		assert.Equal(t, outcome.KindInternalError, out.Kind)
		assert.Contains(t, buf.String(), "failed to discard staged write")
		assert.Contains(t, buf.String(), "rollback: conn busy")
	})

	t.Run("panic in the repository is an internal error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			panic("boom")
		})
		svc := NewAuthorService(repo, zerolog.Nop(), Options{})

		out := svc.Create(ctx, &model.AuthorCreate{FirstName: "Frank", LastName: "Herbert"})

		assert.Equal(t, outcome.KindInternalError, out.Kind)
	})
}

func TestAuthorService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id is not found", func(t *testing.T) {
		svc := newMemoryService(Options{})
		assert.Equal(t, outcome.KindNotFound, svc.GetByID(ctx, 42).Kind)
	})

	t.Run("storage error is an internal error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", mock.Anything, int64(7)).Return(nil, false, errors.New("pool closed"))
		svc := NewAuthorService(repo, zerolog.Nop(), Options{})

		out := svc.GetByID(ctx, 7)

		assert.Equal(t, outcome.KindInternalError, out.Kind)
		assert.Equal(t, outcome.GenericErrorMessage, out.Message)
	})
}

func TestAuthorService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(Options{})

	empty := svc.GetAll(ctx)
	require.Equal(t, outcome.KindOK, empty.Kind)
	assert.Empty(t, empty.Payload)

	svc.Create(ctx, &model.AuthorCreate{FirstName: "Ursula", LastName: "Le Guin"})
	svc.Create(ctx, &model.AuthorCreate{FirstName: "Iain", LastName: "Banks"})

	all := svc.GetAll(ctx)
	require.Equal(t, outcome.KindOK, all.Kind)
	assert.Len(t, all.Payload, 2)
}

func TestAuthorService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("existing author is replaced", func(t *testing.T) {
		svc := newMemoryService(Options{})
		created := svc.Create(ctx, &model.AuthorCreate{FirstName: "Frank", LastName: "Herbert"}).Payload.(*model.AuthorResponse)

		out := svc.Update(ctx, created.ID, &model.AuthorUpdate{ID: created.ID, FirstName: "Brian", LastName: "Herbert"})
		require.Equal(t, outcome.KindNoContent, out.Kind)

		got := svc.GetByID(ctx, created.ID).Payload.(*model.AuthorResponse)
		assert.Equal(t, "Brian", got.FirstName)
		assert.Nil(t, got.Bio)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := newMemoryService(Options{})

		out := svc.Update(ctx, 5, &model.AuthorUpdate{ID: 5, FirstName: "A", LastName: "B"})

		assert.Equal(t, outcome.KindNotFound, out.Kind)
	})

	t.Run("bad ids never reach storage", func(t *testing.T) {
		cases := []struct {
			name string
			id   int64
			req  *model.AuthorUpdate
		}{
			{"zero id", 0, &model.AuthorUpdate{ID: 0, FirstName: "A", LastName: "B"}},
			{"negative id", -3, &model.AuthorUpdate{ID: -3, FirstName: "A", LastName: "B"}},
			{"mismatched id", 2, &model.AuthorUpdate{ID: 3, FirstName: "A", LastName: "B"}},
			{"nil request", 2, nil},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := new(MockRepository)
				svc := NewAuthorService(repo, zerolog.Nop(), Options{})

				out := svc.Update(ctx, tc.id, tc.req)

				assert.Equal(t, outcome.KindBadRequest, out.Kind)
				repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("invalid payload is a bad request", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewAuthorService(repo, zerolog.Nop(), Options{})

		out := svc.Update(ctx, 2, &model.AuthorUpdate{ID: 2, FirstName: "A"})

		require.Equal(t, outcome.KindBadRequest, out.Kind)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, "lastName", out.Errors[0].Field)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("failed write is no content unless strict", func(t *testing.T) {
		for _, strict := range []bool{false, true} {
			repo := new(MockRepository)
			repo.On("Exists", mock.Anything, int64(2)).Return(true, nil)
			repo.On("Update", mock.Anything, mock.MatchedBy(func(a *model.Author) bool {
				return a.ID == 2
			})).Return(false, nil)
			svc := NewAuthorService(repo, zerolog.Nop(), Options{StrictWrites: strict})

			out := svc.Update(ctx, 2, &model.AuthorUpdate{ID: 2, FirstName: "A", LastName: "B"})

			if strict {
				assert.Equal(t, outcome.KindInternalError, out.Kind)
			} else {
				assert.Equal(t, outcome.KindNoContent, out.Kind)
			}
			repo.AssertExpectations(t)
		}
	})
}

func TestAuthorService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete twice is no content then not found", func(t *testing.T) {
		svc := newMemoryService(Options{})
		created := svc.Create(ctx, &model.AuthorCreate{FirstName: "Frank", LastName: "Herbert"}).Payload.(*model.AuthorResponse)

		assert.Equal(t, outcome.KindNoContent, svc.Delete(ctx, created.ID).Kind)
		assert.Equal(t, outcome.KindNotFound, svc.Delete(ctx, created.ID).Kind)
		assert.Equal(t, outcome.KindNotFound, svc.GetByID(ctx, created.ID).Kind)
	})

	t.Run("non-positive id is a bad request", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewAuthorService(repo, zerolog.Nop(), Options{})

		assert.Equal(t, outcome.KindBadRequest, svc.Delete(ctx, 0).Kind)
		assert.Equal(t, outcome.KindBadRequest, svc.Delete(ctx, -1).Kind)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("failed write is no content unless strict", func(t *testing.T) {
		for _, strict := range []bool{false, true} {
			repo := new(MockRepository)
			a := &model.Author{ID: 4, FirstName: "A", LastName: "B"}
			repo.On("FindByID", mock.Anything, int64(4)).Return(a, true, nil)
			repo.On("Delete", mock.Anything, a).Return(false, nil)
			svc := NewAuthorService(repo, zerolog.Nop(), Options{StrictWrites: strict})

			out := svc.Delete(ctx, 4)

			if strict {
				assert.Equal(t, outcome.KindInternalError, out.Kind)
			} else {
				assert.Equal(t, outcome.KindNoContent, out.Kind)
			}
		}
	})

	t.Run("storage error is an internal error", func(t *testing.T) {
		repo := new(MockRepository)
		a := &model.Author{ID: 4, FirstName: "A", LastName: "B"}
		repo.On("FindByID", mock.Anything, int64(4)).Return(a, true, nil)
		repo.On("Delete", mock.Anything, a).Return(false, errors.New("timeout"))
		svc := NewAuthorService(repo, zerolog.Nop(), Options{})

		assert.Equal(t, outcome.KindInternalError, svc.Delete(ctx, 4).Kind)
	})
}
