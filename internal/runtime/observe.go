package runtime

import (
	"sort"
	"sync"
	"time"

	"mindcraftce.ai/internal/envelope"
)

// Observation is what the core knew about an envelope when it went out.
type Observation struct {
	Envelope    envelope.Envelope
	NPCID       string
	SubmittedAt time.Time
}

// Table tracks in-flight envelopes by id, so events coming back off the
// stream can be tied to what was sent.
type Table struct {
	mu   sync.Mutex
	byID map[string]Observation
	now  func() time.Time
}

func NewTable() *Table {
	return &Table{byID: make(map[string]Observation), now: time.Now}
}

// Observe records env at submit time, keyed by its id. A resubmit with the
// same id replaces the earlier observation.
func (t *Table) Observe(env envelope.Envelope) {
	t.mu.Lock()
	t.byID[env.ID()] = Observation{Envelope: env, NPCID: env.NPC, SubmittedAt: t.now()}
	t.mu.Unlock()
}

func (t *Table) Get(id string) (Observation, bool) {
	t.mu.Lock()
	obs, ok := t.byID[id]
	t.mu.Unlock()
	return obs, ok
}

func (t *Table) Drop(id string) {
	t.mu.Lock()
	delete(t.byID, id)
	t.mu.Unlock()
}

func (t *Table) Len() int {
	t.mu.Lock()
	n := len(t.byID)
	t.mu.Unlock()
	return n
}

// Pending lists the ids of envelopes still awaiting a terminal event.
func (t *Table) Pending() []string {
	t.mu.Lock()
	out := make([]string, 0, len(t.byID))
	for id := range t.byID {
		out = append(out, id)
	}
	t.mu.Unlock()
	sort.Strings(out)
	return out
}

// Enrich fills the event's npcId from the observed envelope when the
// runtime omitted it.
func (t *Table) Enrich(ev Event) Event {
	if ev.NPCID != "" || ev.EnvelopeID == "" {
		return ev
	}
	if obs, ok := t.Get(ev.EnvelopeID); ok {
		ev.NPCID = obs.NPCID
	}
	return ev
}
