package task

import (
	"math"
	"strconv"
	"strings"
)

// UnspecifiedItem is the sentinel for inputs that never resolve to a name.
// It is excluded from plan resource lists.
const UnspecifiedItem = "unspecified item"

// NormalizeItemName renders any item reference as a lowercase, single-spaced
// name. It accepts strings, numbers, and objects carrying name/item/id, is
// idempotent, and never fails: unusable input becomes UnspecifiedItem.
func NormalizeItemName(v any) string {
	switch t := v.(type) {
	case nil:
		return UnspecifiedItem
	case string:
		return normalizeName(t)
	case Item:
		return normalizeName(t.Name)
	case *Item:
		if t == nil {
			return UnspecifiedItem
		}
		return normalizeName(t.Name)
	case map[string]any:
		for _, k := range []string{"name", "item", "id"} {
			if inner, ok := t[k]; ok {
				if s := NormalizeItemName(inner); s != UnspecifiedItem {
					return s
				}
			}
		}
		return UnspecifiedItem
	case Metadata:
		return NormalizeItemName(map[string]any(t))
	default:
		if f, ok := asNumber(v); ok {
			if f == math.Trunc(f) {
				return strconv.Itoa(int(f))
			}
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return UnspecifiedItem
	}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UnspecifiedItem
	}
	return strings.Join(strings.Fields(s), " ")
}

// Quantity extracts a positive integer count from a number, numeric string,
// or {count|quantity} object. Non-finite and non-positive values report false.
func Quantity(v any) (int, bool) {
	switch t := v.(type) {
	case map[string]any:
		for _, k := range []string{"count", "quantity", "amount"} {
			if inner, ok := t[k]; ok {
				if n, ok := Quantity(inner); ok {
					return n, true
				}
			}
		}
		return 0, false
	case Metadata:
		return Quantity(map[string]any(t))
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return quantityFromFloat(f)
	default:
		if f, ok := asNumber(v); ok {
			return quantityFromFloat(f)
		}
		return 0, false
	}
}

func quantityFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	n := int(math.Floor(f))
	if n <= 0 {
		return 0, false
	}
	return n, true
}

// ResolveQuantity is Quantity with a fallback; NaN and junk never propagate.
func ResolveQuantity(v any, fallback int) int {
	if n, ok := Quantity(v); ok {
		return n
	}
	return fallback
}

// Requirement is one line of a material/equipment list.
type Requirement struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

// FormatRequirementList renders requirements as "3 iron_ingot, oak_planks,
// 2 torch", preserving input order. Counts below 2 are omitted.
func FormatRequirementList(items []Requirement) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		name := NormalizeItemName(it.Name)
		if name == UnspecifiedItem {
			continue
		}
		if it.Count > 1 {
			parts = append(parts, strconv.Itoa(it.Count)+" "+name)
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		if t == math.Trunc(t) {
			return strconv.Itoa(int(t)), true
		}
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func asNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint64:
		f = float64(t)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
