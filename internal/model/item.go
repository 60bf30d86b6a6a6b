package model

// ItemType tells whether an item was found or lost.
type ItemType string

const (
	ItemTypeFound ItemType = "found"
	ItemTypeLost  ItemType = "lost"
)

// ItemStatus is the lifecycle state of an item, independent of its type.
type ItemStatus string

const (
	ItemStatusRegistered ItemStatus = "registered"
	ItemStatusAnalyzing  ItemStatus = "analyzing"
	ItemStatusReturned   ItemStatus = "returned"
)

// Defaults applied by the normalizer.
const (
	DefaultCategory  = "Outros"
	DefaultColor     = "Preto"
	PlaceholderImage = "/placeholder.svg"
)

// Categories lists the categories offered by the report and search forms.
var Categories = []string{
	"Eletronicos",
	"Roupas",
	"Documentos",
	"Acessórios",
	"Utensílios",
	"Material Escolar",
	"Outros",
}

// Colors is the palette offered by the search filters.
var Colors = []string{
	"Preto",
	"Vermelho",
	"Amarelo",
	"Verde",
	"Azul",
	"Branco",
	"Prata",
	"Marrom",
}

// Item is the canonical lost & found record. Every field holds its normalized form.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Color       string     `json:"color"`
	Location    string     `json:"location"`
	Date        string     `json:"date"`  // when it was lost or found
	Image       string     `json:"image"` // absolute URL or PlaceholderImage
	Type        ItemType   `json:"type"`
	Status      ItemStatus `json:"status"`
	CreatedAt   string     `json:"createdAt"` // when the record was created
	UpdatedAt   string     `json:"updatedAt,omitempty"`
}

// IsClaimed reports whether the status already reflects a successful claim.
func (i Item) IsClaimed() bool {
	return i.Status == ItemStatusAnalyzing || i.Status == ItemStatusReturned
}
