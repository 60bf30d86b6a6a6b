package query

import (
	"errors"
	"fmt"
	"strings"

	"campus-lost-found/internal/model"
)

var ErrInvalidSpec = errors.New("invalid query")

// TypeFilter restricts results to one item type.
type TypeFilter string

const (
	TypeAll   TypeFilter = "all"
	TypeFound TypeFilter = "found"
	TypeLost  TypeFilter = "lost"
)

// SortField is the timestamp results are ordered by.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByDate      SortField = "date"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Spec describes which items are visible and in what order. Empty Categories or
// Colors place no constraint; zero Type/SortBy/SortOrder mean all/createdAt/desc.
type Spec struct {
	Categories []string
	Colors     []string
	Type       TypeFilter
	SortBy     SortField
	SortOrder  SortOrder
}

func (s Spec) withDefaults() Spec {
	if s.Type == "" {
		s.Type = TypeAll
	}
	if s.SortBy == "" {
		s.SortBy = SortByCreatedAt
	}
	if s.SortOrder == "" {
		s.SortOrder = OrderDesc
	}
	return s
}

// Validate rejects unknown filter or sort values.
func (s Spec) Validate() error {
	s = s.withDefaults()
	switch s.Type {
	case TypeAll, TypeFound, TypeLost:
	default:
		return fmt.Errorf("%w: type %q", ErrInvalidSpec, s.Type)
	}
	switch s.SortBy {
	case SortByCreatedAt, SortByDate:
	default:
		return fmt.Errorf("%w: sort %q", ErrInvalidSpec, s.SortBy)
	}
	switch s.SortOrder {
	case OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("%w: order %q", ErrInvalidSpec, s.SortOrder)
	}
	return nil
}

// ParseSpec builds a Spec from user input. The type accepts the canonical names as
// well as the Portuguese ACHADO/PERDIDO spellings.
func ParseSpec(categories, colors []string, itemType, sortBy, sortOrder string) (Spec, error) {
	spec := Spec{
		Categories: compact(categories),
		Colors:     compact(colors),
	}

	switch strings.ToLower(strings.TrimSpace(itemType)) {
	case "", "all", "todos":
		spec.Type = TypeAll
	case "found", "achado":
		spec.Type = TypeFound
	case "lost", "perdido":
		spec.Type = TypeLost
	default:
		return Spec{}, fmt.Errorf("%w: type %q", ErrInvalidSpec, itemType)
	}

	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "", "createdat", "created_at":
		spec.SortBy = SortByCreatedAt
	case "date":
		spec.SortBy = SortByDate
	default:
		return Spec{}, fmt.Errorf("%w: sort %q", ErrInvalidSpec, sortBy)
	}

	switch strings.ToLower(strings.TrimSpace(sortOrder)) {
	case "", "desc":
		spec.SortOrder = OrderDesc
	case "asc":
		spec.SortOrder = OrderAsc
	default:
		return Spec{}, fmt.Errorf("%w: order %q", ErrInvalidSpec, sortOrder)
	}

	return spec, nil
}

// compact trims values, splits comma lists and drops empties.
func compact(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (t TypeFilter) matches(it model.ItemType) bool {
	return t == TypeAll || string(t) == string(it)
}
