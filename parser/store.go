package parser

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one stored parse result together with its identity. The
// Revision changes on every swap, so collaborators can detect staleness
// without comparing trees.
type Snapshot struct {
	Result    *ParseResult
	Revision  uuid.UUID
	Generated time.Time
}

// Store holds the last parse result for collaborators that query without
// re-parsing. Swaps are atomic: readers see either the previous snapshot
// or the new one, never a partial update. The store does not serialize
// parses themselves; callers wanting one parse at a time must arrange it.
type Store struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Swap replaces the stored snapshot with result and returns the new
// revision.
func (s *Store) Swap(result *ParseResult) uuid.UUID {
	snapshot := &Snapshot{
		Result:    result,
		Revision:  uuid.New(),
		Generated: time.Now(),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	return snapshot.Revision
}

// Load returns the current snapshot, or nil before the first swap.
func (s *Store) Load() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}
