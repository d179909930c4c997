package view

import (
	"sync"

	"go-stat-explorer/internal/model"
)

// Store is the single view-state slot of the explorer. It starts
// empty and only ever moves to success or failure; every dispatch
// replaces the whole record. The slot is written by the dispatch step
// of a submission and read by the render layer, nothing else.
type Store struct {
	mu    sync.RWMutex
	state model.ExploredData
}

func NewStore() *Store {
	return &Store{state: model.EmptyState()}
}

// Dispatch replaces the current state wholesale. Empty is the initial
// state only; dispatching it is ignored, there is no transition back.
// Racing submissions are not sequenced, the last dispatch wins.
func (s *Store) Dispatch(next model.ExploredData) {
	if next.State == model.StateEmpty {
		return
	}
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

// Current returns the live state.
func (s *Store) Current() model.ExploredData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Attempted reports whether any submission has completed yet.
func (s *Store) Attempted() bool {
	return s.Current().State != model.StateEmpty
}
