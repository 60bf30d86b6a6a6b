package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/claim"
	"campus-lost-found/internal/item/recency"
	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/item/repository/snapshot"
	"campus-lost-found/internal/model"
	"campus-lost-found/pkg/imaging"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is an in-memory backend. Setting err makes every call fail.
type fakeRepo struct {
	mu        sync.Mutex
	items     []model.Item
	err       error
	listCalls int
	created   []repository.CreateItemOptions
	updates   []repository.UpdateItemOptions
	deleted   []string

	// echo overrides the item returned by UpdateItem.
	echo func(model.Item) model.Item
}

func (r *fakeRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Item(nil), r.items...), nil
}

func (r *fakeRepo) GetItem(ctx context.Context, id string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return model.Item{}, r.err
	}
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.Item{}, item.ErrNotFound
}

func (r *fakeRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return model.Item{}, r.err
	}
	r.created = append(r.created, opt)
	it := model.Item{
		ID:        "new-1",
		Name:      opt.Name,
		Category:  opt.Category,
		Color:     opt.Color,
		Location:  opt.Location,
		Date:      opt.Date,
		Type:      opt.Type,
		Status:    model.ItemStatusRegistered,
		Image:     model.PlaceholderImage,
		CreatedAt: testNow.Format(time.RFC3339),
	}
	r.items = append(r.items, it)
	return it, nil
}

func (r *fakeRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return model.Item{}, r.err
	}
	r.updates = append(r.updates, opt)
	for i, it := range r.items {
		if it.ID != opt.ID {
			continue
		}
		if opt.Status != "" {
			it.Status = opt.Status
		}
		if opt.Type != "" {
			it.Type = opt.Type
		}
		if r.echo != nil {
			return r.echo(r.items[i]), nil
		}
		r.items[i] = it
		return it, nil
	}
	return model.Item{}, item.ErrNotFound
}

func (r *fakeRepo) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc        *implUseCase
	repo      *fakeRepo
	snapshots repository.SnapshotStore
}

func newFixture(t *testing.T, items ...model.Item) fixture {
	t.Helper()
	classifier, err := recency.NewClassifier("America/Sao_Paulo", 24)
	if err != nil {
		t.Fatalf("classifier: %v", err)
	}

	repo := &fakeRepo{items: items}
	snaps := snapshot.NewMemory(0)
	uc := New(&mockLogger{}, repo, snaps, claim.NewRegistry(10, time.Minute), classifier, imaging.New(64))
	uc.now = func() time.Time { return testNow }
	return fixture{uc: uc, repo: repo, snapshots: snaps}
}

func ago(d time.Duration) string {
	return testNow.Add(-d).Format(time.RFC3339)
}
