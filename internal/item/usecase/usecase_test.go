package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/claim"
	"campus-lost-found/internal/item/query"
	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/model"
)

func catalogItems() []model.Item {
	return []model.Item{
		{ID: "1", Name: "Carteira", Category: "Acessórios", Color: "Preto", Type: model.ItemTypeFound, Status: model.ItemStatusRegistered, CreatedAt: ago(2 * time.Hour)},
		{ID: "2", Name: "Notebook", Category: "Eletronicos", Color: "Prata", Type: model.ItemTypeLost, Status: model.ItemStatusRegistered, CreatedAt: ago(30 * time.Minute)},
		{ID: "3", Name: "Casaco", Category: "Roupas", Color: "Azul", Type: model.ItemTypeFound, Status: model.ItemStatusAnalyzing, CreatedAt: ago(10 * 24 * time.Hour)},
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters And Decorates", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		out, err := f.uc.List(ctx, item.ListInput{Query: query.Spec{Type: query.TypeFound}})
		require.NoError(t, err)

		require.Len(t, out.Items, 2)
		assert.Equal(t, 2, out.Total)
		assert.Empty(t, out.Message)
		assert.False(t, out.FromSnapshot)
		assert.Equal(t, testNow, out.FetchedAt)

		assert.Equal(t, "1", out.Items[0].ID)
		assert.Equal(t, "2h atrás", out.Items[0].RelativeTime)
		assert.True(t, out.Items[0].IsNew)
		assert.Equal(t, "/item/1", out.Items[0].Path)

		assert.Equal(t, "3", out.Items[1].ID)
		assert.Equal(t, "30/04/2024", out.Items[1].RelativeTime)
		assert.False(t, out.Items[1].IsNew)
	})

	t.Run("Lost Items Link To Report Page", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		out, err := f.uc.List(ctx, item.ListInput{Query: query.Spec{Type: query.TypeLost}})
		require.NoError(t, err)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "/perdido/2", out.Items[0].Path)
		assert.Equal(t, "30min atrás", out.Items[0].RelativeTime)
	})

	t.Run("Backend Failure Is Empty With Message", func(t *testing.T) {
		f := newFixture(t)
		f.repo.err = &item.TransportError{Op: "list", Err: errors.New("connection refused")}

		out, err := f.uc.List(ctx, item.ListInput{})
		require.NoError(t, err)
		assert.NotNil(t, out.Items)
		assert.Empty(t, out.Items)
		assert.Equal(t, item.MsgListUnavailable, out.Message)
	})

	t.Run("Invalid Query", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		_, err := f.uc.List(ctx, item.ListInput{Query: query.Spec{SortBy: "name"}})
		assert.ErrorIs(t, err, query.ErrInvalidSpec)
		assert.Equal(t, 0, f.repo.listCalls)
	})

	t.Run("Cached Reads Last Snapshot", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		_, err := f.uc.List(ctx, item.ListInput{})
		require.NoError(t, err)

		// backend changes after the fetch; the cached query does not see it
		f.repo.items = f.repo.items[:1]
		out, err := f.uc.List(ctx, item.ListInput{Cached: true})
		require.NoError(t, err)
		assert.True(t, out.FromSnapshot)
		assert.Len(t, out.Items, 3)
		assert.Equal(t, 1, f.repo.listCalls)

		// a fresh fetch replaces the snapshot
		_, err = f.uc.List(ctx, item.ListInput{})
		require.NoError(t, err)
		out, err = f.uc.List(ctx, item.ListInput{Cached: true})
		require.NoError(t, err)
		assert.Len(t, out.Items, 1)
	})

	t.Run("Cached Without Snapshot Fetches", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		out, err := f.uc.List(ctx, item.ListInput{Cached: true})
		require.NoError(t, err)
		assert.False(t, out.FromSnapshot)
		assert.Len(t, out.Items, 3)
		assert.Equal(t, 1, f.repo.listCalls)
	})
}

func TestRecent(t *testing.T) {
	ctx := context.Background()
	var items []model.Item
	for i, id := range []string{"a", "b", "c", "d", "e", "f"} {
		items = append(items, model.Item{
			ID: id, Name: id, Type: model.ItemTypeFound, Status: model.ItemStatusRegistered,
			CreatedAt: ago(time.Duration(i+1) * time.Hour),
		})
	}
	items = append(items, model.Item{ID: "lost", Name: "lost", Type: model.ItemTypeLost, CreatedAt: ago(time.Minute)})

	f := newFixture(t, items...)
	out, err := f.uc.Recent(ctx, item.RecentInput{})
	require.NoError(t, err)
	require.Len(t, out.Items, item.DefaultRecentLimit)
	assert.Equal(t, "a", out.Items[0].ID)
	assert.Equal(t, "d", out.Items[3].ID)

	out, err = f.uc.Recent(ctx, item.RecentInput{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	f.repo.err = errors.New("down")
	out, err = f.uc.Recent(ctx, item.RecentInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, item.MsgRecentUnavailable, out.Message)
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, catalogItems()...)

	out, err := f.uc.Detail(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Casaco", out.Item.Name)
	assert.Equal(t, claim.StateSuccess, out.Claim)
	assert.Equal(t, 50, out.Progress.Percent)

	out, err = f.uc.Detail(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, claim.StateIdle, out.Claim)
	assert.Equal(t, 0, out.Progress.Percent)

	_, err = f.uc.Detail(ctx, "404")
	assert.ErrorIs(t, err, item.ErrNotFound)

	_, err = f.uc.Detail(ctx, "")
	assert.True(t, item.IsValidation(err))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		f := newFixture(t)
		out, err := f.uc.Create(ctx, item.CreateInput{Name: "  Guarda-chuva ", Location: "Biblioteca"})
		require.NoError(t, err)

		require.Len(t, f.repo.created, 1)
		opt := f.repo.created[0]
		assert.Equal(t, "Guarda-chuva", opt.Name)
		assert.Equal(t, model.ItemTypeLost, opt.Type)
		assert.Equal(t, model.DefaultCategory, opt.Category)
		assert.Equal(t, model.DefaultColor, opt.Color)
		assert.Equal(t, "2024-05-10T12:00:00Z", opt.Date)
		assert.Nil(t, opt.Image)

		assert.Equal(t, "/perdido/new-1", out.Item.Path)
		assert.Equal(t, "agora", out.Item.RelativeTime)
	})

	t.Run("Image Is Re-encoded", func(t *testing.T) {
		f := newFixture(t)
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 128, 32))))

		_, err := f.uc.Create(ctx, item.CreateInput{
			Name: "Garrafa", Type: model.ItemTypeFound, Date: "2024-05-09",
			Image: &item.ImageUpload{Filename: "garrafa.png", Data: buf.Bytes()},
		})
		require.NoError(t, err)
		opt := f.repo.created[0]
		assert.Equal(t, "garrafa.jpg", opt.ImageName)
		assert.NotEmpty(t, opt.Image)
		assert.Equal(t, "2024-05-09", opt.Date)
	})

	t.Run("Validation", func(t *testing.T) {
		f := newFixture(t)
		tests := []struct {
			name  string
			input item.CreateInput
			field string
		}{
			{"Missing Name", item.CreateInput{Name: " "}, "name"},
			{"Bad Type", item.CreateInput{Name: "x", Type: "stolen"}, "type"},
			{"Bad Date", item.CreateInput{Name: "x", Date: "tomorrow"}, "date"},
			{"Bad Image", item.CreateInput{Name: "x", Image: &item.ImageUpload{Filename: "a.txt", Data: []byte("hello")}}, "image"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.uc.Create(ctx, tt.input)
				var ve *item.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, tt.field, ve.Field)
			})
		}
		assert.Empty(t, f.repo.created)
	})

	t.Run("Backend Failure Is Surfaced", func(t *testing.T) {
		f := newFixture(t)
		f.repo.err = &item.TransportError{Op: "create", StatusCode: 500, Err: errors.New("boom")}
		_, err := f.uc.Create(ctx, item.CreateInput{Name: "x"})
		assert.True(t, item.IsTransport(err))
	})
}

func TestClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("Ownership Of Found Item", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		_, err := f.uc.List(ctx, item.ListInput{})
		require.NoError(t, err)

		out, err := f.uc.Claim(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, claim.KindOwnership, out.Kind)
		assert.Equal(t, claim.StateSuccess, out.State)
		assert.Equal(t, model.ItemStatusAnalyzing, out.Item.Status)
		assert.Equal(t, []repository.UpdateItemOptions{{ID: "1", Status: model.ItemStatusAnalyzing}}, f.repo.updates)

		snap, err := f.snapshots.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.ItemStatusAnalyzing, snap.Items[0].Status)

		_, err = f.uc.Claim(ctx, "1")
		assert.ErrorIs(t, err, claim.ErrAlreadyClaimed)
		assert.Len(t, f.repo.updates, 1)
	})

	t.Run("Possession Of Lost Item", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		out, err := f.uc.Claim(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, claim.KindPossession, out.Kind)
		assert.Equal(t, model.ItemTypeFound, out.Item.Type)
		assert.Equal(t, "/item/2", out.Item.Path)
	})

	t.Run("Reported Found Then Claimed By Owner", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		_, err := f.uc.Claim(ctx, "2")
		require.NoError(t, err)

		detail, err := f.uc.Detail(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, claim.StateIdle, detail.Claim)

		out, err := f.uc.Claim(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, claim.KindOwnership, out.Kind)
		assert.Equal(t, model.ItemStatusAnalyzing, out.Item.Status)
		assert.Equal(t, []repository.UpdateItemOptions{
			{ID: "2", Type: model.ItemTypeFound},
			{ID: "2", Status: model.ItemStatusAnalyzing},
		}, f.repo.updates)
	})

	t.Run("Already Claimed At Load", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		_, err := f.uc.Claim(ctx, "3")
		assert.ErrorIs(t, err, claim.ErrAlreadyClaimed)
		assert.Empty(t, f.repo.updates)
	})

	t.Run("Unconfirmed Echo Allows Retry", func(t *testing.T) {
		f := newFixture(t, catalogItems()...)
		f.repo.echo = func(it model.Item) model.Item { return it }

		_, err := f.uc.Claim(ctx, "1")
		assert.ErrorIs(t, err, claim.ErrClaimNotConfirmed)

		f.repo.echo = nil
		out, err := f.uc.Claim(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, claim.StateSuccess, out.State)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Claim(ctx, "404")
		assert.ErrorIs(t, err, item.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, catalogItems()...)
	_, err := f.uc.List(ctx, item.ListInput{})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, "2"))
	assert.Equal(t, []string{"2"}, f.repo.deleted)

	snap, err := f.snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Items, 2)

	assert.True(t, item.IsValidation(f.uc.Delete(ctx, "")))
}

func TestCatalog(t *testing.T) {
	f := newFixture(t)
	out := f.uc.Catalog(context.Background())
	assert.Equal(t, model.Categories, out.Categories)
	assert.Contains(t, out.Colors, "Prata")

	out.Categories[0] = "mutated"
	assert.NotEqual(t, "mutated", model.Categories[0])
}
