package usecase

import (
	"context"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/claim"
	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/model"
)

// Claim asks the backend to record a claim on the item. The item is reloaded first
// so an item already claimed elsewhere is reported as such without a second write.
func (uc *implUseCase) Claim(ctx context.Context, id string) (item.ClaimOutput, error) {
	if id == "" {
		return item.ClaimOutput{}, &item.ValidationError{Field: "id", Reason: "missing"}
	}

	current, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Claim GetItem id=%s: %v", id, err)
		return item.ClaimOutput{}, err
	}

	m := uc.claims.Machine(current)
	var kind claim.Kind
	updated, err := m.Run(ctx, func(ctx context.Context, s claim.Submission) (model.Item, error) {
		kind = s.Kind
		uc.l.Infof(ctx, "uc.Claim: attempt %s item=%s kind=%s", s.AttemptID, s.ItemID, s.Kind)
		return uc.repo.UpdateItem(ctx, repository.UpdateItemOptions{
			ID:     s.ItemID,
			Status: s.Patch.Status,
			Type:   s.Patch.Type,
		})
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Claim id=%s: %v", id, err)
		return item.ClaimOutput{}, err
	}
	uc.patchSnapshot(ctx, updated)

	return item.ClaimOutput{
		Item:  uc.toView(updated, uc.now()),
		Kind:  kind,
		State: claim.StateSuccess,
	}, nil
}
