package task

import (
	"strings"
)

// Action kinds the planning core understands. The registry rejects anything else.
const (
	ActionBuild       = "build"
	ActionMine        = "mine"
	ActionExplore     = "explore"
	ActionGather      = "gather"
	ActionGuard       = "guard"
	ActionCraft       = "craft"
	ActionInteract    = "interact"
	ActionCombat      = "combat"
	ActionEat         = "eat"
	ActionSleep       = "sleep"
	ActionDoor        = "door"
	ActionClimb       = "climb"
	ActionRedstone    = "redstone"
	ActionThrow       = "throw"
	ActionTrade       = "trade"
	ActionMinecart    = "minecart"
	ActionDisplay     = "display"
	ActionComposter   = "composter"
	ActionScaffolding = "scaffolding"
	ActionRanged      = "ranged"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityNormal   Priority = "normal"
	PriorityLow      Priority = "low"
)

// NormalizePriority maps free-form input onto the closed priority set.
func NormalizePriority(v string) Priority {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "critical", "urgent", "emergency":
		return PriorityCritical
	case "high", "important":
		return PriorityHigh
	case "low", "background", "idle":
		return PriorityLow
	default:
		return PriorityNormal
	}
}

// Request is an externally produced task request. Metadata is a free-form bag;
// planners pull action-specific keys out of it tolerantly.
type Request struct {
	Action   string   `json:"action"`
	Details  string   `json:"details,omitempty"`
	Target   *Target  `json:"target,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
	Priority string   `json:"priority,omitempty"`
	NPCID    string   `json:"npcId,omitempty"`
}

// Meta returns the metadata bag, never nil.
func (r *Request) Meta() Metadata {
	if r == nil || r.Metadata == nil {
		return Metadata{}
	}
	return r.Metadata
}

// Metadata is the action-specific free-form bag attached to a request.
// Accessors accept a list of synonym keys and return the first usable value.
// Key matching ignores case and separators, so "toolFailure", "tool_failure",
// and "tool-failure" are the same key.
type Metadata map[string]any

// foldKey lowercases and strips separators so naming conventions compare
// equal.
func foldKey(k string) string {
	var b strings.Builder
	b.Grow(len(k))
	for _, r := range k {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == '_' || r == '-' || r == ' ':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// value finds a key by exact match first, then by folded comparison. When
// several stored keys fold alike, the lexically smallest wins so repeated
// calls agree.
func (m Metadata) value(key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	want := foldKey(key)
	best := ""
	found := false
	for k := range m {
		if foldKey(k) != want {
			continue
		}
		if !found || k < best {
			best = k
			found = true
		}
	}
	if !found {
		return nil, false
	}
	return m[best], true
}

// Value returns the raw value under the first key that resolves. Callers
// that accept several shapes (string or block) switch on the result.
func (m Metadata) Value(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m.value(k); ok {
			return v, true
		}
	}
	return nil, false
}

func (m Metadata) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := m.value(k); ok {
			return true
		}
	}
	return false
}

// String returns the first non-empty string value under any of keys.
func (m Metadata) String(keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := m.value(k)
		if !ok {
			continue
		}
		if s, ok := asString(v); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

func (m Metadata) StringOr(fallback string, keys ...string) string {
	if s, ok := m.String(keys...); ok {
		return s
	}
	return fallback
}

// Number returns the first finite numeric value under any of keys.
func (m Metadata) Number(keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := m.value(k)
		if !ok {
			continue
		}
		if f, ok := asNumber(v); ok {
			return f, true
		}
	}
	return 0, false
}

func (m Metadata) Int(keys ...string) (int, bool) {
	f, ok := m.Number(keys...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (m Metadata) IntOr(fallback int, keys ...string) int {
	if n, ok := m.Int(keys...); ok {
		return n
	}
	return fallback
}

func (m Metadata) Bool(keys ...string) (bool, bool) {
	for _, k := range keys {
		v, ok := m.value(k)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case bool:
			return t, true
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "true", "yes", "on", "1":
				return true, true
			case "false", "no", "off", "0":
				return false, true
			}
		}
	}
	return false, false
}

func (m Metadata) BoolOr(fallback bool, keys ...string) bool {
	if b, ok := m.Bool(keys...); ok {
		return b
	}
	return fallback
}

// Slice returns the first slice value under any of keys. A scalar value is
// wrapped into a one-element slice so callers can treat both shapes alike.
func (m Metadata) Slice(keys ...string) ([]any, bool) {
	for _, k := range keys {
		v, ok := m.value(k)
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case []any:
			return t, true
		case []string:
			out := make([]any, len(t))
			for i, s := range t {
				out[i] = s
			}
			return out, true
		default:
			return []any{v}, true
		}
	}
	return nil, false
}

// Strings returns the string rendering of every element under keys.
func (m Metadata) Strings(keys ...string) []string {
	raw, ok := m.Slice(keys...)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := asString(v); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Map returns the first nested object under any of keys.
func (m Metadata) Map(keys ...string) (Metadata, bool) {
	for _, k := range keys {
		v, ok := m.value(k)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case map[string]any:
			return Metadata(t), true
		case Metadata:
			return t, true
		}
	}
	return nil, false
}
