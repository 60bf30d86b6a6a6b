package main

import (
	"context"
	"sync"

	"campus-lost-found/internal/item"
)

type usecaseHandle struct {
	item.UseCase
	close func() error
}

// lazyUseCase defers wiring until the first command runs.
type lazyUseCase struct {
	build func() (*usecaseHandle, error)

	once sync.Once
	h    *usecaseHandle
	err  error
}

func (l *lazyUseCase) get() (item.UseCase, error) {
	l.once.Do(func() { l.h, l.err = l.build() })
	if l.err != nil {
		return nil, l.err
	}
	return l.h.UseCase, nil
}

func (l *lazyUseCase) List(ctx context.Context, in item.ListInput) (item.ListOutput, error) {
	uc, err := l.get()
	if err != nil {
		return item.ListOutput{}, err
	}
	return uc.List(ctx, in)
}

func (l *lazyUseCase) Recent(ctx context.Context, in item.RecentInput) (item.RecentOutput, error) {
	uc, err := l.get()
	if err != nil {
		return item.RecentOutput{}, err
	}
	return uc.Recent(ctx, in)
}

func (l *lazyUseCase) Detail(ctx context.Context, id string) (item.DetailOutput, error) {
	uc, err := l.get()
	if err != nil {
		return item.DetailOutput{}, err
	}
	return uc.Detail(ctx, id)
}

func (l *lazyUseCase) Create(ctx context.Context, in item.CreateInput) (item.CreateOutput, error) {
	uc, err := l.get()
	if err != nil {
		return item.CreateOutput{}, err
	}
	return uc.Create(ctx, in)
}

func (l *lazyUseCase) Claim(ctx context.Context, id string) (item.ClaimOutput, error) {
	uc, err := l.get()
	if err != nil {
		return item.ClaimOutput{}, err
	}
	return uc.Claim(ctx, id)
}

func (l *lazyUseCase) Delete(ctx context.Context, id string) error {
	uc, err := l.get()
	if err != nil {
		return err
	}
	return uc.Delete(ctx, id)
}

func (l *lazyUseCase) Catalog(ctx context.Context) item.CatalogOutput {
	uc, err := l.get()
	if err != nil {
		return item.CatalogOutput{}
	}
	return uc.Catalog(ctx)
}

// Close releases the snapshot store if one was built.
func (l *lazyUseCase) Close() error {
	if l.h == nil || l.h.close == nil {
		return nil
	}
	return l.h.close()
}
