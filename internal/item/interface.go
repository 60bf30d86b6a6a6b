package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Recent(ctx context.Context, input RecentInput) (RecentOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Claim(ctx context.Context, id string) (ClaimOutput, error)
	Delete(ctx context.Context, id string) error
	Catalog(ctx context.Context) CatalogOutput
}
