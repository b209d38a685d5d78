// Package catalog holds the static domain tables the planners consult:
// foods, trades, biomes, structures, building templates, enemies,
// throwables, hazards. Tables are compile-time constants keyed by a
// canonical snake_case identifier; every lookup runs the same cascade of
// exact key, normalized key, synonym, then substring containment.
package catalog

import (
	"sort"
	"strings"

	"mindcraftce.ai/internal/task"
)

// lookup resolves key against table and returns the canonical key plus the
// record. Synonyms map alternate spellings onto canonical keys and may be
// nil. Unknown inputs return ok=false, never panic.
func lookup[T any](table map[string]T, synonyms map[string]string, key string) (string, T, bool) {
	var zero T
	if rec, ok := table[key]; ok {
		return key, rec, true
	}
	norm := CanonicalKey(key)
	if norm == "" {
		return "", zero, false
	}
	if rec, ok := table[norm]; ok {
		return norm, rec, true
	}
	if synonyms != nil {
		if canon, ok := synonyms[norm]; ok {
			if rec, ok := table[canon]; ok {
				return canon, rec, true
			}
		}
	}
	// Substring fallback walks keys in sorted order so ties resolve the
	// same way every call.
	for _, k := range sortedKeys(table) {
		if strings.Contains(k, norm) || strings.Contains(norm, k) {
			return k, table[k], true
		}
	}
	return "", zero, false
}

// CanonicalKey folds free-form input onto the table key convention:
// normalized item name with spaces as underscores. Empty or unusable input
// returns "".
func CanonicalKey(v string) string {
	norm := task.NormalizeItemName(v)
	if norm == task.UnspecifiedItem {
		return ""
	}
	return strings.ReplaceAll(norm, " ", "_")
}

func containsKey(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func sortedKeys[T any](table map[string]T) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
