package repository

import (
	"context"
	"time"

	"campus-lost-found/internal/model"
)

// Repository is the composed interface for the item domain data sources.
type Repository interface {
	ItemRepository
}

// ItemRepository is the external lost & found backend. Every method returns
// canonical items; raw records never leave the implementation.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	GetItem(ctx context.Context, id string) (model.Item, error)
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// Snapshot is the last item list fetched from the backend.
type Snapshot struct {
	Items     []model.Item `json:"items"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

// SnapshotStore holds a single snapshot; a newer Save replaces the older one.
type SnapshotStore interface {
	Save(ctx context.Context, s Snapshot) error
	// Load returns ErrNoSnapshot when nothing was saved yet or it expired.
	Load(ctx context.Context) (Snapshot, error)
	// Patch replaces the stored copy of it, if present.
	Patch(ctx context.Context, it model.Item) error
	// Remove drops the stored copy of the item with id, if present.
	Remove(ctx context.Context, id string) error
}
