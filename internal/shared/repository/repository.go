// Package repository holds the generic CRUD repository shared by every
// catalog resource.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bookstore-catalog/internal/shared/persistence"
)

var (
	ErrNotStaged     = errors.New("entity has no staged write")
	ErrAlreadyStaged = errors.New("entity already has a staged write")
)

// Repository is CRUD over a persistence port for one entity type.
//
// Inserts are two-phase: Create stages the row, Save commits it. Staged
// writes are keyed by the entity value so concurrent requests, each owning
// their own entity, never observe or commit each other's pending rows.
type Repository[E persistence.Entity[E]] struct {
	port persistence.Port[E]

	mu     sync.Mutex
	staged map[E]persistence.Staged
}

func New[E persistence.Entity[E]](port persistence.Port[E]) *Repository[E] {
	return &Repository[E]{
		port:   port,
		staged: make(map[E]persistence.Staged),
	}
}

// FindAll returns every row. Ordering is whatever storage returns.
func (r *Repository[E]) FindAll(ctx context.Context) ([]E, error) {
	return r.port.SelectAll(ctx)
}

// FindByID returns found=false when no row matches.
func (r *Repository[E]) FindByID(ctx context.Context, id int64) (E, bool, error) {
	return r.port.SelectByID(ctx, id)
}

func (r *Repository[E]) Exists(ctx context.Context, id int64) (bool, error) {
	return r.port.Exists(ctx, id)
}

// Create stages entity for insertion. It returns false when storage rejected
// the row; nothing must be saved in that case.
func (r *Repository[E]) Create(ctx context.Context, entity E) (bool, error) {
	r.mu.Lock()
	_, pending := r.staged[entity]
	r.mu.Unlock()
	if pending {
		return false, ErrAlreadyStaged
	}

	staged, err := r.port.Stage(ctx, entity)
	if err != nil {
		if errors.Is(err, persistence.ErrRejected) {
			return false, nil
		}
		return false, err
	}

	r.mu.Lock()
	r.staged[entity] = staged
	r.mu.Unlock()
	return true, nil
}

// Save commits the write staged for entity and assigns the storage id.
func (r *Repository[E]) Save(ctx context.Context, entity E) error {
	staged, ok := r.take(entity)
	if !ok {
		return ErrNotStaged
	}

	if err := staged.Commit(ctx); err != nil {
		_ = staged.Rollback(ctx)
		return fmt.Errorf("save: %w", err)
	}

	entity.AssignID(staged.ID())
	return nil
}

// Discard drops the write staged for entity, if any.
func (r *Repository[E]) Discard(ctx context.Context, entity E) error {
	staged, ok := r.take(entity)
	if !ok {
		return nil
	}
	return staged.Rollback(ctx)
}

// Update replaces the mutable fields of the row with entity's id. Callers
// must have checked existence; false means nothing was written.
func (r *Repository[E]) Update(ctx context.Context, entity E) (bool, error) {
	return rejectedAsFalse(r.port.UpdateRow(ctx, entity))
}

// Delete removes the row with entity's id. False means nothing was removed.
func (r *Repository[E]) Delete(ctx context.Context, entity E) (bool, error) {
	return rejectedAsFalse(r.port.DeleteRow(ctx, entity.EntityID()))
}

// Pending reports how many staged writes are waiting for Save or Discard.
func (r *Repository[E]) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.staged)
}

func (r *Repository[E]) take(entity E) (persistence.Staged, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged, ok := r.staged[entity]
	if ok {
		delete(r.staged, entity)
	}
	return staged, ok
}

func rejectedAsFalse(ok bool, err error) (bool, error) {
	if err != nil {
		if errors.Is(err, persistence.ErrRejected) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
