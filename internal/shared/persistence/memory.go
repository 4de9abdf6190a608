package persistence

import (
	"context"
	"sync"
)

// MemoryPort keeps rows in process memory. Rows are copied on the way in
// and out so callers never share state with the store.
type MemoryPort[E Entity[E]] struct {
	mu     sync.RWMutex
	rows   map[int64]E
	order  []int64
	nextID int64

	// Check, when set, runs before every insert or update and may return
	// ErrRejected to emulate a storage constraint.
	Check func(entity E) error
}

func NewMemoryPort[E Entity[E]]() *MemoryPort[E] {
	return &MemoryPort[E]{rows: make(map[int64]E)}
}

func (m *MemoryPort[E]) SelectAll(_ context.Context) ([]E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]E, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rows[id].Clone())
	}
	return out, nil
}

func (m *MemoryPort[E]) SelectByID(_ context.Context, id int64) (E, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.rows[id]
	if !ok {
		var zero E
		return zero, false, nil
	}
	return row.Clone(), true, nil
}

func (m *MemoryPort[E]) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.rows[id]
	return ok, nil
}

func (m *MemoryPort[E]) Stage(_ context.Context, entity E) (Staged, error) {
	if m.Check != nil {
		if err := m.Check(entity); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.mu.Unlock()

	row := entity.Clone()
	row.AssignID(id)
	return &memoryStaged[E]{port: m, id: id, row: row}, nil
}

func (m *MemoryPort[E]) UpdateRow(_ context.Context, entity E) (bool, error) {
	if m.Check != nil {
		if err := m.Check(entity); err != nil {
			return false, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := entity.EntityID()
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	m.rows[id] = entity.Clone()
	return true, nil
}

func (m *MemoryPort[E]) DeleteRow(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

type memoryStaged[E Entity[E]] struct {
	port *MemoryPort[E]
	id   int64
	row  E
	done bool
}

func (s *memoryStaged[E]) ID() int64 { return s.id }

func (s *memoryStaged[E]) Commit(_ context.Context) error {
	if s.done {
		return ErrStagedClosed
	}
	s.done = true

	s.port.mu.Lock()
	defer s.port.mu.Unlock()
	s.port.rows[s.id] = s.row
	s.port.order = append(s.port.order, s.id)
	return nil
}

func (s *memoryStaged[E]) Rollback(_ context.Context) error {
	s.done = true
	return nil
}
