// Package runtime is the boundary to the execution runtime that carries
// out envelopes in game. The core never blocks on it except where a caller
// passes a context: envelopes go out through a Client, and lifecycle events
// come back over a newline-delimited JSON stream, fanned out by an Emitter.
package runtime

import "sync"

// EventType names one runtime lifecycle event. The set is closed; stream
// chunks with any other type are dropped at decode.
type EventType string

const (
	EventAccepted  EventType = "task_accepted"
	EventProgress  EventType = "task_progress"
	EventComplete  EventType = "task_complete"
	EventCancelled EventType = "task_cancelled"
	EventFailed    EventType = "task_failed"
	EventError     EventType = "error"
)

var eventTypes = map[EventType]struct{}{
	EventAccepted: {}, EventProgress: {}, EventComplete: {},
	EventCancelled: {}, EventFailed: {}, EventError: {},
}

// ParseEventType reports whether s names a known event.
func ParseEventType(s string) (EventType, bool) {
	t := EventType(s)
	_, ok := eventTypes[t]
	return t, ok
}

// Terminal reports whether the event ends its envelope's lifecycle.
func (t EventType) Terminal() bool {
	return t == EventComplete || t == EventCancelled || t == EventFailed
}

// Event is one message from the runtime about a submitted envelope.
// Transport failures travel the same way, as EventError with no envelope.
type Event struct {
	Type       EventType `json:"type"`
	EnvelopeID string    `json:"envelopeId,omitempty"`
	NPCID      string    `json:"npcId,omitempty"`
	Progress   float64   `json:"progress,omitempty"`
	Message    string    `json:"message,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Handler consumes one event. Handlers run synchronously on the emitting
// goroutine and must not block.
type Handler func(Event)

// Emitter fans events out to typed subscribers.
type Emitter struct {
	mu  sync.RWMutex
	sub map[EventType][]Handler
	any []Handler
}

func NewEmitter() *Emitter {
	return &Emitter{sub: make(map[EventType][]Handler)}
}

// On subscribes h to one event type.
func (e *Emitter) On(t EventType, h Handler) {
	if h == nil {
		return
	}
	e.mu.Lock()
	e.sub[t] = append(e.sub[t], h)
	e.mu.Unlock()
}

// OnAny subscribes h to every event type.
func (e *Emitter) OnAny(h Handler) {
	if h == nil {
		return
	}
	e.mu.Lock()
	e.any = append(e.any, h)
	e.mu.Unlock()
}

// Emit delivers ev to its type's subscribers, then to the any-subscribers.
func (e *Emitter) Emit(ev Event) {
	e.mu.RLock()
	typed := e.sub[ev.Type]
	all := e.any
	e.mu.RUnlock()
	for _, h := range typed {
		h(ev)
	}
	for _, h := range all {
		h(ev)
	}
}
