package backend

import (
	"context"
	"errors"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/normalizer"
	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/model"
	pkgLog "campus-lost-found/pkg/log"
)

type implRepository struct {
	client     *Client
	normalizer *normalizer.Normalizer
	l          pkgLog.Logger
}

// New creates the item repository backed by the REST backend.
func New(client *Client, n *normalizer.Normalizer, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:     client,
		normalizer: n,
		l:          l,
	}
}

// ListItems skips records that cannot be normalized and logs why.
func (r *implRepository) ListItems(ctx context.Context) ([]model.Item, error) {
	raws, err := r.client.ListItems(ctx)
	if err != nil {
		r.l.Errorf(ctx, "backend.repository.ListItems: %v", err)
		return nil, err
	}

	items, errs := r.normalizer.NormalizeAll(raws)
	for _, e := range errs {
		r.l.Warnf(ctx, "backend.repository.ListItems: skipping record: %v", e)
	}
	return items, nil
}

func (r *implRepository) GetItem(ctx context.Context, id string) (model.Item, error) {
	raw, err := r.client.GetItem(ctx, id)
	if err != nil {
		if !errors.Is(err, item.ErrNotFound) {
			r.l.Errorf(ctx, "backend.repository.GetItem: id=%s: %v", id, err)
		}
		return model.Item{}, err
	}
	return r.normalizeOne(ctx, "get", raw)
}

func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	raw, err := r.client.CreateItem(ctx, CreateItemRequest{
		Name:        opt.Name,
		Category:    opt.Category,
		Color:       opt.Color,
		Location:    opt.Location,
		Description: opt.Description,
		Type:        string(opt.Type),
		Date:        opt.Date,
		ImageName:   opt.ImageName,
		Image:       opt.Image,
	})
	if err != nil {
		r.l.Errorf(ctx, "backend.repository.CreateItem: %v", err)
		return model.Item{}, err
	}
	return r.normalizeOne(ctx, "create", raw)
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.Item, error) {
	if opt.Status == "" && opt.Type == "" {
		return model.Item{}, repository.ErrNothingToPatch
	}

	raw, err := r.client.UpdateItem(ctx, opt.ID, UpdateItemRequest{
		Status: string(opt.Status),
		Type:   string(opt.Type),
	})
	if err != nil {
		r.l.Errorf(ctx, "backend.repository.UpdateItem: id=%s: %v", opt.ID, err)
		return model.Item{}, err
	}
	return r.normalizeOne(ctx, "update", raw)
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	if err := r.client.DeleteItem(ctx, id); err != nil {
		r.l.Errorf(ctx, "backend.repository.DeleteItem: id=%s: %v", id, err)
		return err
	}
	return nil
}

// normalizeOne turns a malformed single record into a transport failure: the
// backend answered, but not with something we can use.
func (r *implRepository) normalizeOne(ctx context.Context, op string, raw map[string]any) (model.Item, error) {
	it, err := r.normalizer.Normalize(raw)
	if err != nil {
		r.l.Errorf(ctx, "backend.repository.%s: malformed record: %v", op, err)
		return model.Item{}, &item.TransportError{Op: op, Err: err}
	}
	return it, nil
}
