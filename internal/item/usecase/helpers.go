package usecase

import (
	"context"
	"time"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/model"
)

// toView decorates it with its relative age, "new" badge and detail link.
func (uc *implUseCase) toView(it model.Item, now time.Time) item.View {
	return item.View{
		Item:         it,
		RelativeTime: uc.classifier.Label(it.CreatedAt, now),
		IsNew:        uc.classifier.IsNew(it.CreatedAt, now),
		Path:         detailPath(it),
	}
}

func (uc *implUseCase) toViews(items []model.Item, now time.Time) []item.View {
	views := make([]item.View, 0, len(items))
	for _, it := range items {
		views = append(views, uc.toView(it, now))
	}
	return views
}

// detailPath is the UI route of an item: lost reports and found items have separate pages.
func detailPath(it model.Item) string {
	if it.Type == model.ItemTypeLost {
		return "/perdido/" + it.ID
	}
	return "/item/" + it.ID
}

// fetch loads the full list from the backend and records it as the latest snapshot.
func (uc *implUseCase) fetch(ctx context.Context) ([]model.Item, time.Time, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}

	fetchedAt := uc.now()
	if err := uc.snapshots.Save(ctx, repository.Snapshot{Items: items, FetchedAt: fetchedAt}); err != nil {
		uc.l.Warnf(ctx, "uc.fetch snapshots.Save: %v", err)
	}
	return items, fetchedAt, nil
}

func (uc *implUseCase) patchSnapshot(ctx context.Context, it model.Item) {
	if err := uc.snapshots.Patch(ctx, it); err != nil {
		uc.l.Warnf(ctx, "uc.patchSnapshot id=%s: %v", it.ID, err)
	}
}
