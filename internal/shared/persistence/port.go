// Package persistence defines the storage boundary the repositories depend on
// together with its memory, postgres and cached implementations.
package persistence

import (
	"context"
	"errors"
)

// ErrRejected is returned when storage refuses a write, e.g. a foreign key
// or unique constraint violation. Repositories report it as a failed write
// rather than an error.
var ErrRejected = errors.New("write rejected by storage")

// ErrStagedClosed is returned when a staged write is committed twice or
// after it was rolled back.
var ErrStagedClosed = errors.New("staged write already closed")

// Entity is the constraint every persisted type satisfies. E is the entity
// type itself, normally a pointer such as *model.Author.
type Entity[E any] interface {
	comparable
	EntityID() int64
	AssignID(id int64)
	Clone() E
}

// Staged is a pending insert. The row is invisible to other readers until
// Commit succeeds; Rollback drops it.
type Staged interface {
	// ID is the identifier storage reserved for the row.
	ID() int64
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Port is CRUD over the rows of one table.
type Port[E Entity[E]] interface {
	SelectAll(ctx context.Context) ([]E, error)

	// SelectByID returns found=false, not an error, when no row matches.
	SelectByID(ctx context.Context, id int64) (E, bool, error)

	Exists(ctx context.Context, id int64) (bool, error)

	Stage(ctx context.Context, entity E) (Staged, error)

	// UpdateRow replaces the mutable columns of the row with entity's id.
	// affected is false when no row matched.
	UpdateRow(ctx context.Context, entity E) (bool, error)

	DeleteRow(ctx context.Context, id int64) (bool, error)
}
