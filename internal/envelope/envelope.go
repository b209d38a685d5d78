// Package envelope turns task payloads into the versioned wire records the
// execution runtime consumes. Plans are advisory; the envelope is the
// machine-actionable artifact.
package envelope

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"mindcraftce.ai/internal/task"
)

// Version is the wire format version stamped on every envelope.
const Version = "1.0"

// DefaultPrefix is the command word the runtime strips before parsing.
const DefaultPrefix = "mindcraftce"

// Envelope is the normalized payload submitted to the runtime. Metadata is
// the action-specific record produced by the vocabulary normalizers; Plan is
// the operation annotation carried by mine envelopes only.
type Envelope struct {
	Version  string         `json:"version"`
	Action   string         `json:"action"`
	Details  string         `json:"details,omitempty"`
	Target   *task.Target   `json:"target,omitempty"`
	NPC      string         `json:"npc,omitempty"`
	Priority string         `json:"priority"`
	Metadata map[string]any `json:"metadata"`
	IssuedAt int64          `json:"issuedAt"`
	Tags     []string       `json:"tags,omitempty"`
	Plan     []Operation    `json:"plan,omitempty"`
}

// Operation is one entry of the mine-plan annotation.
type Operation struct {
	Step        int      `json:"step"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Hazards     []string `json:"hazards,omitempty"`
	Mitigation  string   `json:"mitigation,omitempty"`
	Response    string   `json:"response,omitempty"`
}

// ID is the correlation key runtime events carry back: npc@issuedAt. An
// unnamed NPC falls back to the literal "npc".
func (e Envelope) ID() string {
	npc := strings.TrimSpace(e.NPC)
	if npc == "" {
		npc = "npc"
	}
	return fmt.Sprintf("%s@%d", npc, e.IssuedAt)
}

// Adapter builds envelopes with a monotone issuedAt stamp. Safe for
// concurrent use.
type Adapter struct {
	mu     sync.Mutex
	last   int64
	now    func() time.Time
	prefix string
}

type Option func(*Adapter)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		if now != nil {
			a.now = now
		}
	}
}

// WithPrefix replaces the wire command word.
func WithPrefix(prefix string) Option {
	return func(a *Adapter) {
		if p := strings.TrimSpace(prefix); p != "" {
			a.prefix = p
		}
	}
}

func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{now: time.Now, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// issuedAt returns epoch milliseconds, strictly increasing per adapter even
// when the clock stalls or steps backwards.
func (a *Adapter) issuedAt() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	ms := a.now().UnixMilli()
	if ms <= a.last {
		ms = a.last + 1
	}
	a.last = ms
	return ms
}

// Build normalizes a task payload into its wire envelope. A nil task yields
// an empty but well-formed envelope.
func (a *Adapter) Build(t *task.Request) Envelope {
	e := Envelope{
		Version:  Version,
		Priority: string(task.PriorityNormal),
		Metadata: map[string]any{},
		IssuedAt: a.issuedAt(),
	}
	if t == nil {
		return e
	}
	meta := t.Meta()
	e.Action = strings.ToLower(strings.TrimSpace(t.Action))
	e.Details = strings.TrimSpace(t.Details)
	e.NPC = strings.TrimSpace(t.NPCID)
	e.Priority = string(task.NormalizePriority(t.Priority))
	if t.Target != nil {
		cp := *t.Target
		if cp.HasPoint() || cp.Name != "" || cp.Type != "" || cp.ID != "" || cp.Dimension != "" {
			e.Target = &cp
		}
	}
	e.Metadata = normalizeMetadata(e.Action, meta)
	if tags := meta.Strings("tags", "labels"); len(tags) > 0 {
		e.Tags = tags
	}
	if e.Action == task.ActionMine {
		e.Plan = minePlan(t, meta)
	}
	return e
}

// WireCommand renders the textual command the transport carries:
// "<prefix> run <envelope JSON>".
func (a *Adapter) WireCommand(e Envelope) (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return a.prefix + " run " + string(raw), nil
}

// ParseWireCommand recovers the envelope from its wire form. Bare envelope
// JSON without the prefix is accepted too.
func ParseWireCommand(s string) (Envelope, error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, " run "); i >= 0 {
		s = s[i+len(" run "):]
	}
	var e Envelope
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return Envelope{}, fmt.Errorf("parse envelope: %w", err)
	}
	return e, nil
}
