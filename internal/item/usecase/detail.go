package usecase

import (
	"context"

	"campus-lost-found/internal/item"
)

// Detail loads one item fresh from the backend with its claim state and timeline.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailOutput, error) {
	if id == "" {
		return item.DetailOutput{}, &item.ValidationError{Field: "id", Reason: "missing"}
	}

	it, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Detail GetItem id=%s: %v", id, err)
		return item.DetailOutput{}, err
	}
	uc.patchSnapshot(ctx, it)

	return item.DetailOutput{
		Item:     uc.toView(it, uc.now()),
		Claim:    uc.claims.State(it),
		Progress: item.BuildProgress(it.Status),
	}, nil
}
