package runtime

import "testing"

func TestParseEventType(t *testing.T) {
	cases := []struct {
		in   string
		want EventType
		ok   bool
	}{
		{"task_accepted", EventAccepted, true},
		{"task_progress", EventProgress, true},
		{"task_complete", EventComplete, true},
		{"task_cancelled", EventCancelled, true},
		{"task_failed", EventFailed, true},
		{"error", EventError, true},
		{"task_paused", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseEventType(tc.in)
		if ok != tc.ok {
			t.Fatalf("%q: ok=%v want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestEventTypeTerminal(t *testing.T) {
	for _, term := range []EventType{EventComplete, EventCancelled, EventFailed} {
		if !term.Terminal() {
			t.Fatalf("%s should be terminal", term)
		}
	}
	for _, live := range []EventType{EventAccepted, EventProgress, EventError} {
		if live.Terminal() {
			t.Fatalf("%s should not be terminal", live)
		}
	}
}

func TestEmitterRoutesByType(t *testing.T) {
	e := NewEmitter()
	var accepted, failed, all []Event
	e.On(EventAccepted, func(ev Event) { accepted = append(accepted, ev) })
	e.On(EventFailed, func(ev Event) { failed = append(failed, ev) })
	e.OnAny(func(ev Event) { all = append(all, ev) })

	e.Emit(Event{Type: EventAccepted, EnvelopeID: "npc@1"})
	e.Emit(Event{Type: EventProgress, EnvelopeID: "npc@1"})
	e.Emit(Event{Type: EventFailed, EnvelopeID: "npc@1", Error: "tools broke"})

	if len(accepted) != 1 || accepted[0].EnvelopeID != "npc@1" {
		t.Fatalf("accepted: %v", accepted)
	}
	if len(failed) != 1 || failed[0].Error != "tools broke" {
		t.Fatalf("failed: %v", failed)
	}
	if len(all) != 3 {
		t.Fatalf("all: %d events", len(all))
	}
}

func TestEmitterIgnoresNilHandlers(t *testing.T) {
	e := NewEmitter()
	e.On(EventAccepted, nil)
	e.OnAny(nil)
	e.Emit(Event{Type: EventAccepted})
}
