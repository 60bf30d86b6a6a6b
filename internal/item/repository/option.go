package repository

import "campus-lost-found/internal/model"

// CreateItemOptions holds the fields of a new report, sent as a multipart form.
type CreateItemOptions struct {
	Name        string
	Category    string
	Color       string
	Location    string
	Description string
	Type        model.ItemType
	Date        string

	ImageName string // empty when no photo is attached
	Image     []byte
}

// UpdateItemOptions is a partial update; only non-empty fields are sent.
type UpdateItemOptions struct {
	ID     string
	Status model.ItemStatus
	Type   model.ItemType
}
