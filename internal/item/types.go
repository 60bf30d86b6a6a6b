package item

import (
	"time"

	"campus-lost-found/internal/item/claim"
	"campus-lost-found/internal/item/query"
	"campus-lost-found/internal/model"
)

// View is an Item decorated with the values the UI derives from it.
type View struct {
	model.Item
	RelativeTime string
	IsNew        bool
	Path         string
}

// ImageUpload is an image attached to a new report.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// --- UseCase Inputs ---

type ListInput struct {
	Query  query.Spec
	Cached bool // answer from the last snapshot instead of refetching
}

type RecentInput struct {
	Limit int
}

type CreateInput struct {
	Name        string
	Category    string
	Color       string
	Location    string
	Description string
	Type        model.ItemType
	Date        string
	Image       *ImageUpload
}

// --- UseCase Outputs ---

// ListOutput carries the visible items. Message is set when the backend could not be
// reached; Items is then empty rather than an error.
type ListOutput struct {
	Items        []View
	Total        int
	Message      string
	FetchedAt    time.Time
	FromSnapshot bool
}

type RecentOutput struct {
	Items   []View
	Message string
}

type DetailOutput struct {
	Item     View
	Claim    claim.State
	Progress Progress
}

type CreateOutput struct {
	Item View
}

type ClaimOutput struct {
	Item  View
	Kind  claim.Kind
	State claim.State
}

type CatalogOutput struct {
	Categories []string
	Colors     []string
}

// Messages shown when a read could not reach the backend.
const (
	MsgListUnavailable   = "Não foi possível carregar os itens. Tente novamente mais tarde."
	MsgRecentUnavailable = "Não foi possível carregar os itens recentes."
)

// DefaultRecentLimit is how many items the home page shows.
const DefaultRecentLimit = 4
