package usecase

import (
	"context"

	"campus-lost-found/internal/item"
)

// Delete removes the item from the backend and forgets any local state about it.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &item.ValidationError{Field: "id", Reason: "missing"}
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem id=%s: %v", id, err)
		return err
	}

	uc.claims.Forget(id)
	if err := uc.snapshots.Remove(ctx, id); err != nil {
		uc.l.Warnf(ctx, "uc.Delete snapshots.Remove id=%s: %v", id, err)
	}
	return nil
}
