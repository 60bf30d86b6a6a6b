package query

import (
	"sort"
	"strings"
	"time"

	"campus-lost-found/internal/model"
)

// Run filters and orders items according to spec. The input slice is left untouched.
// A valid spec never fails, even on an empty input.
func Run(items []model.Item, spec Spec) ([]model.Item, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = spec.withDefaults()

	categories := lowerSet(spec.Categories)
	colors := lowerSet(spec.Colors)

	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !inSet(categories, it.Category) || !inSet(colors, it.Color) || !spec.Type.matches(it.Type) {
			continue
		}
		out = append(out, it)
	}

	Sort(out, spec.SortBy, spec.SortOrder)
	return out, nil
}

// Sort orders items in place by the chosen timestamp. Ties, including unparseable
// timestamps that compare equal, keep their relative order.
func Sort(items []model.Item, by SortField, order SortOrder) {
	keys := make([]time.Time, len(items))
	for i, it := range items {
		keys[i] = timestamp(it, by)
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if order == OrderAsc {
			return ka.Before(kb)
		}
		return ka.After(kb)
	})

	sorted := make([]model.Item, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

// Recent returns up to limit found items, newest record first.
func Recent(items []model.Item, limit int) []model.Item {
	out, _ := Run(items, Spec{Type: TypeFound, SortBy: SortByCreatedAt, SortOrder: OrderDesc})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func timestamp(it model.Item, by SortField) time.Time {
	raw := it.CreatedAt
	if by == SortByDate {
		raw = it.Date
	}
	t, err := model.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func lowerSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[strings.ToLower(strings.TrimSpace(v))]
	return ok
}
