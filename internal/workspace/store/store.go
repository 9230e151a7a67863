package store

import (
	"errors"
	"math"
	"sync"

	"casedesk/internal/workspace/model"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

// Store holds the session's workspaces in insertion order.
// Nothing is persisted; the store lives as long as the process.
type Store struct {
	mu      sync.RWMutex
	records []model.Workspace
	nextID  int64
}

func New(seed ...model.Workspace) *Store {
	s := &Store{nextID: 1}
	for _, w := range seed {
		s.Append(w)
	}
	return s
}

// Append adds w to the end. The caller guarantees w.ID is unused.
func (s *Store) Append(w model.Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, w)
	// MaxInt64 has no successor; leave the counter where it is rather than wrap.
	if w.ID >= s.nextID && w.ID < math.MaxInt64 {
		s.nextID = w.ID + 1
	}
}

// NextID reserves and returns an ID greater than any appended so far.
func (s *Store) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// List returns a snapshot in insertion order.
func (s *Store) List() []model.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Workspace, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Get(id int64) (model.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.records {
		if w.ID == id {
			return w, nil
		}
	}
	return model.Workspace{}, ErrWorkspaceNotFound
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
