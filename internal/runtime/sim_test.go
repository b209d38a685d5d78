package runtime

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSimulatorLifecycle(t *testing.T) {
	d := NewSimulated(SimulatorConfig{Steps: 2}, quietLogger())
	var mu sync.Mutex
	var got []Event
	d.Events().OnAny(func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	})

	if err := d.Submit(context.Background(), testEnvelope("sigrid", 42)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	d.client.(*Simulator).Wait()

	mu.Lock()
	defer mu.Unlock()
	want := []EventType{EventAccepted, EventProgress, EventProgress, EventComplete}
	if len(got) != len(want) {
		t.Fatalf("events: %+v", got)
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Fatalf("event %d: got %s want %s", i, ev.Type, want[i])
		}
		if ev.EnvelopeID != "sigrid@42" {
			t.Fatalf("event %d envelope: %q", i, ev.EnvelopeID)
		}
		if ev.NPCID != "sigrid" {
			t.Fatalf("event %d not enriched: %+v", i, ev)
		}
	}
	if got[2].Progress != 1 {
		t.Fatalf("final progress: %v", got[2].Progress)
	}
	if n := d.Observations().Len(); n != 0 {
		t.Fatalf("observation not retired, len=%d", n)
	}
}

func TestSimulatorHonorsCancel(t *testing.T) {
	d := NewSimulated(SimulatorConfig{Steps: 3}, quietLogger())
	var mu sync.Mutex
	var got []Event
	d.Events().OnAny(func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Submit(ctx, testEnvelope("sigrid", 42)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	d.client.(*Simulator).Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0].Type != EventAccepted || got[1].Type != EventCancelled {
		t.Fatalf("events: %+v", got)
	}
	if n := d.Observations().Len(); n != 0 {
		t.Fatalf("observation not retired, len=%d", n)
	}
}

func TestSimulatorCloseCancelsInFlight(t *testing.T) {
	d := NewSimulated(SimulatorConfig{Steps: 3, Delay: time.Minute}, quietLogger())
	var mu sync.Mutex
	var got []Event
	d.Events().OnAny(func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	})

	if err := d.Submit(context.Background(), testEnvelope("sigrid", 42)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[1].Type != EventCancelled {
		t.Fatalf("events: %+v", got)
	}
}

func TestSimulatorRejectsAfterClose(t *testing.T) {
	sim := NewSimulator(SimulatorConfig{}, nil)
	if err := sim.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := sim.Submit(context.Background(), testEnvelope("sigrid", 42)); err == nil {
		t.Fatal("submit after close succeeded")
	}
}
