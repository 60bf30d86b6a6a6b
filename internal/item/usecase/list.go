package usecase

import (
	"context"
	"errors"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/query"
	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/model"
)

// List answers a filter/sort query. A backend failure is not an error for the
// caller: the result is empty and carries a message instead.
func (uc *implUseCase) List(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	if err := input.Query.Validate(); err != nil {
		return item.ListOutput{}, err
	}

	if input.Cached {
		snap, err := uc.snapshots.Load(ctx)
		switch {
		case err == nil:
			return uc.listOutput(input.Query, snap, true)
		case !errors.Is(err, repository.ErrNoSnapshot):
			uc.l.Warnf(ctx, "uc.List snapshots.Load: %v", err)
		}
	}

	items, fetchedAt, err := uc.fetch(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List fetch: %v", err)
		return item.ListOutput{Items: []item.View{}, Message: item.MsgListUnavailable}, nil
	}
	return uc.listOutput(input.Query, repository.Snapshot{Items: items, FetchedAt: fetchedAt}, false)
}

func (uc *implUseCase) listOutput(spec query.Spec, snap repository.Snapshot, fromSnapshot bool) (item.ListOutput, error) {
	visible, err := query.Run(snap.Items, spec)
	if err != nil {
		return item.ListOutput{}, err
	}
	return item.ListOutput{
		Items:        uc.toViews(visible, uc.now()),
		Total:        len(visible),
		FetchedAt:    snap.FetchedAt,
		FromSnapshot: fromSnapshot,
	}, nil
}

// Recent returns the newest found items for the home page.
func (uc *implUseCase) Recent(ctx context.Context, input item.RecentInput) (item.RecentOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = item.DefaultRecentLimit
	}

	items, _, err := uc.fetch(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recent fetch: %v", err)
		return item.RecentOutput{Items: []item.View{}, Message: item.MsgRecentUnavailable}, nil
	}
	return item.RecentOutput{Items: uc.toViews(query.Recent(items, limit), uc.now())}, nil
}

// Catalog returns the category and colour vocabularies used by filter UIs.
func (uc *implUseCase) Catalog(ctx context.Context) item.CatalogOutput {
	return item.CatalogOutput{
		Categories: append([]string(nil), model.Categories...),
		Colors:     append([]string(nil), model.Colors...),
	}
}
