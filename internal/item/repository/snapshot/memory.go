package snapshot

import (
	"context"
	"sync"
	"time"

	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/model"
)

type memoryStore struct {
	mu      sync.RWMutex
	snap    *repository.Snapshot
	savedAt time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory keeps the snapshot in process. A zero ttl never expires it.
func NewMemory(ttl time.Duration) repository.SnapshotStore {
	return &memoryStore{ttl: ttl, now: time.Now}
}

func (s *memoryStore) Save(_ context.Context, snap repository.Snapshot) error {
	snap.Items = cloneItems(snap.Items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = &snap
	s.savedAt = s.now()
	return nil
}

func (s *memoryStore) Load(_ context.Context) (repository.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil || s.expired() {
		return repository.Snapshot{}, repository.ErrNoSnapshot
	}
	out := *s.snap
	out.Items = cloneItems(out.Items)
	return out, nil
}

func (s *memoryStore) Patch(_ context.Context, it model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil || s.expired() {
		return nil
	}
	replaceItem(s.snap.Items, it)
	return nil
}

func (s *memoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return nil
	}
	s.snap.Items = withoutID(s.snap.Items, id)
	return nil
}

func (s *memoryStore) expired() bool {
	return s.ttl > 0 && s.now().Sub(s.savedAt) > s.ttl
}

func cloneItems(items []model.Item) []model.Item {
	if items == nil {
		return []model.Item{}
	}
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}

func withoutID(items []model.Item, id string) []model.Item {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func replaceItem(items []model.Item, it model.Item) bool {
	for i := range items {
		if items[i].ID == it.ID {
			items[i] = it
			return true
		}
	}
	return false
}
