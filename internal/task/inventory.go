package task

import "sort"

// Item is the canonical inventory entry. Identity is by normalized name; a
// count query sums every matching stack.
type Item struct {
	Name          string         `json:"name"`
	Count         int            `json:"count"`
	Durability    *int           `json:"durability,omitempty"`
	MaxDurability *int           `json:"maxDurability,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// ExtractInventory converts any of the tolerated inventory shapes — a plain
// slice, {slots:[...]}, {items:[...]}, or a name→count mapping — into the
// canonical view. Unusable input yields an empty slice, never an error.
func ExtractInventory(v any) []Item {
	switch t := v.(type) {
	case nil:
		return nil
	case []Item:
		return t
	case []any:
		return itemsFromSlice(t)
	case map[string]any:
		for _, k := range []string{"slots", "items"} {
			if inner, ok := t[k]; ok {
				if s, ok := inner.([]any); ok {
					return itemsFromSlice(s)
				}
				if s, ok := inner.([]Item); ok {
					return s
				}
			}
		}
		return itemsFromMapping(t)
	case Metadata:
		return ExtractInventory(map[string]any(t))
	default:
		return nil
	}
}

func itemsFromSlice(raw []any) []Item {
	out := make([]Item, 0, len(raw))
	for _, e := range raw {
		switch it := e.(type) {
		case Item:
			out = append(out, it)
		case map[string]any:
			name := NormalizeItemName(it)
			if name == UnspecifiedItem {
				continue
			}
			item := Item{Name: name, Count: ResolveQuantity(it, 1)}
			if d, ok := asNumber(it["durability"]); ok {
				n := int(d)
				item.Durability = &n
			}
			if d, ok := asNumber(it["maxDurability"]); ok {
				n := int(d)
				item.MaxDurability = &n
			}
			if meta, ok := it["metadata"].(map[string]any); ok {
				item.Metadata = meta
			}
			out = append(out, item)
		case string:
			name := NormalizeItemName(it)
			if name == UnspecifiedItem {
				continue
			}
			out = append(out, Item{Name: name, Count: 1})
		}
	}
	return out
}

// itemsFromMapping handles name→count and name→{count} shapes. Keys are
// sorted so the view is deterministic regardless of map iteration order.
func itemsFromMapping(raw map[string]any) []Item {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Item, 0, len(keys))
	for _, k := range keys {
		name := NormalizeItemName(k)
		if name == UnspecifiedItem {
			continue
		}
		out = append(out, Item{Name: name, Count: ResolveQuantity(raw[k], 1)})
	}
	return out
}

// CountItems sums the counts of every stack matching name (case-insensitive,
// spaces and underscores interchangeable).
func CountItems(inv []Item, name string) int {
	want := NormalizeItemName(name)
	if want == UnspecifiedItem {
		return 0
	}
	total := 0
	for _, it := range inv {
		if sameItemName(it.Name, want) {
			if it.Count > 0 {
				total += it.Count
			} else {
				total++
			}
		}
	}
	return total
}

// HasItem reports whether at least min of the named item is present.
func HasItem(inv []Item, name string, min int) bool {
	if min <= 0 {
		min = 1
	}
	return CountItems(inv, name) >= min
}

func sameItemName(a, b string) bool {
	return canonicalItemKey(NormalizeItemName(a)) == canonicalItemKey(b)
}

// CanonicalItemName normalizes v and folds spaces to underscores, so
// "Oak Log" and "oak_log" come out as the same name.
func CanonicalItemName(v any) string {
	return canonicalItemKey(NormalizeItemName(v))
}

func canonicalItemKey(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == ' ' {
			out = append(out, '_')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
