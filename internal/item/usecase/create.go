package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/repository"
	"campus-lost-found/internal/model"
	"campus-lost-found/pkg/imaging"
)

// Create reports a new item. Without a type it is a lost report; without a date
// the event is taken to be now.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateInput) (item.CreateOutput, error) {
	opt, err := uc.buildCreateOptions(input)
	if err != nil {
		return item.CreateOutput{}, err
	}

	it, err := uc.repo.CreateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Create: item %s reported as %s", it.ID, it.Type)

	return item.CreateOutput{Item: uc.toView(it, uc.now())}, nil
}

func (uc *implUseCase) buildCreateOptions(input item.CreateInput) (repository.CreateItemOptions, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return repository.CreateItemOptions{}, &item.ValidationError{Field: "name", Reason: "missing"}
	}

	itemType := input.Type
	switch itemType {
	case "":
		itemType = model.ItemTypeLost
	case model.ItemTypeFound, model.ItemTypeLost:
	default:
		return repository.CreateItemOptions{}, &item.ValidationError{Field: "type", Reason: "unrecognized value"}
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = uc.now().UTC().Format(time.RFC3339)
	} else if _, err := model.ParseTimestamp(date); err != nil {
		return repository.CreateItemOptions{}, &item.ValidationError{Field: "date", Reason: "unrecognized format"}
	}

	opt := repository.CreateItemOptions{
		Name:        name,
		Category:    orDefault(input.Category, model.DefaultCategory),
		Color:       orDefault(input.Color, model.DefaultColor),
		Location:    strings.TrimSpace(input.Location),
		Description: strings.TrimSpace(input.Description),
		Type:        itemType,
		Date:        date,
	}

	if input.Image != nil && len(input.Image.Data) > 0 {
		img, err := uc.images.Process(input.Image.Filename, input.Image.Data)
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return repository.CreateItemOptions{}, &item.ValidationError{Field: "image", Reason: "only JPEG and PNG are accepted"}
		}
		if err != nil {
			return repository.CreateItemOptions{}, &item.ValidationError{Field: "image", Reason: err.Error()}
		}
		opt.ImageName = img.Filename
		opt.Image = img.Data
	}
	return opt, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
