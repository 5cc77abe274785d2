// Package repository holds the loaded dataset snapshot.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/grapplerank/internal/domain/model"
)

// Snapshot is one immutable load of both datasets. Callers must not modify
// the slices; every derived view is computed from them on demand.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Roster   []model.RosterRecord
	Yearly   []model.YearlyEntry
}

// Store provides access to the current snapshot.
type Store interface {
	// Put replaces the current snapshot and returns it with an assigned ID.
	Put(ctx context.Context, roster []model.RosterRecord, yearly []model.YearlyEntry) Snapshot

	// Get returns the current snapshot, ErrNotLoaded before the first Put,
	// or ctx.Err() once ctx is done.
	Get(ctx context.Context) (Snapshot, error)
}

// MemoryStore keeps the snapshot in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *Snapshot
	now  func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, roster []model.RosterRecord, yearly []model.YearlyEntry) Snapshot {
	snap := Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: s.now().UTC(),
		Roster:   append([]model.RosterRecord{}, roster...),
		Yearly:   append([]model.YearlyEntry{}, yearly...),
	}

	s.mu.Lock()
	s.snap = &snap
	s.mu.Unlock()
	return snap
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return Snapshot{}, ErrNotLoaded
	}
	return *s.snap, nil
}
