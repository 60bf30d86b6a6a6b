package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/model"
)

// Normalizer turns backend records of any known shape into canonical Items.
// It is the only place that knows about raw field names and enum spellings.
type Normalizer struct {
	baseURL     string
	placeholder string
}

// New creates a Normalizer. Relative image paths are resolved against baseURL.
func New(baseURL, placeholder string) *Normalizer {
	if placeholder == "" {
		placeholder = model.PlaceholderImage
	}
	return &Normalizer{
		baseURL:     strings.TrimRight(baseURL, "/"),
		placeholder: placeholder,
	}
}

// Normalize converts one raw record.
func (n *Normalizer) Normalize(raw map[string]any) (model.Item, error) {
	if raw == nil {
		return model.Item{}, &item.ValidationError{Field: "record", Reason: "empty"}
	}

	id, ok := idField(raw["id"])
	if !ok {
		return model.Item{}, &item.ValidationError{Field: "id", Reason: "missing"}
	}

	name := stringField(raw, "name", "title")
	if name == "" {
		return model.Item{}, &item.ValidationError{Field: "name", Reason: "missing"}
	}

	itemType, err := ParseType(stringField(raw, "type"))
	if err != nil {
		return model.Item{}, err
	}

	return model.Item{
		ID:          id,
		Name:        name,
		Description: stringField(raw, "description"),
		Category:    orDefault(stringField(raw, "category"), model.DefaultCategory),
		Color:       orDefault(stringField(raw, "color"), model.DefaultColor),
		Location:    stringField(raw, "location"),
		Date:        stringField(raw, "date"),
		Image:       n.ResolveImage(stringField(raw, "image", "imageUrl", "image_url")),
		Type:        itemType,
		Status:      ParseStatus(stringField(raw, "status")),
		CreatedAt:   stringField(raw, "createdAt", "created_at"),
		UpdatedAt:   stringField(raw, "updatedAt", "updated_at"),
	}, nil
}

// NormalizeAll converts every record it can and returns the errors of the ones it skipped.
func (n *Normalizer) NormalizeAll(raws []map[string]any) ([]model.Item, []error) {
	items := make([]model.Item, 0, len(raws))
	var errs []error
	for _, raw := range raws {
		it, err := n.Normalize(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, it)
	}
	return items, errs
}

// ResolveImage keeps absolute URLs, prefixes relative paths with the base URL and
// substitutes the placeholder for empty values.
func (n *Normalizer) ResolveImage(v string) string {
	if v == "" {
		return n.placeholder
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "data:") {
		return v
	}
	if n.baseURL == "" {
		return v
	}
	return n.baseURL + "/" + strings.TrimLeft(v, "/")
}

// ParseType maps found/ACHADO and lost/PERDIDO to the canonical pair.
func ParseType(v string) (model.ItemType, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "found", "achado":
		return model.ItemTypeFound, nil
	case "lost", "perdido":
		return model.ItemTypeLost, nil
	case "":
		return "", &item.ValidationError{Field: "type", Reason: "missing"}
	}
	return "", &item.ValidationError{Field: "type", Reason: "unrecognized value " + strconv.Quote(v)}
}

// ParseStatus maps the English and Portuguese status spellings. Unknown values fall
// back to registered.
func ParseStatus(v string) model.ItemStatus {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "analyzing", "em analise/aguardando", "em análise/aguardando", "em analise", "em análise", "aguardando":
		return model.ItemStatusAnalyzing
	case "returned", "devolvido":
		return model.ItemStatusReturned
	}
	return model.ItemStatusRegistered
}

func stringField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case json.Number:
			s = t.String()
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			s = strconv.FormatBool(t)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func idField(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		return t.String(), t.String() != ""
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	}
	return "", false
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
