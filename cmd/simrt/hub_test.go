package main

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/runtime"
	"mindcraftce.ai/internal/task"
)

func testLogger() *log.Logger {
	return log.New(os.Stdout, "[simrt-test] ", log.LstdFlags)
}

func TestBroadcastFrameDecodes(t *testing.T) {
	h := newHub(testLogger())
	ch := h.add("c1")
	if ch == nil {
		t.Fatal("add returned nil channel")
	}

	ev, _ := json.Marshal(runtime.Event{Type: runtime.EventProgress, EnvelopeID: "npc@1", Progress: 0.5})
	h.broadcastEvent(ev)

	select {
	case frame := <-ch:
		frames := runtime.DecodeFrames(frame)
		if len(frames) != 1 || len(frames[0].Events) != 1 {
			t.Fatalf("frames: %+v", frames)
		}
		got := frames[0].Events[0]
		if got.Type != runtime.EventProgress || got.EnvelopeID != "npc@1" || got.Progress != 0.5 {
			t.Fatalf("event: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no frame broadcast")
	}
}

func TestBroadcastDropsWhenClientLags(t *testing.T) {
	h := newHub(testLogger())
	ch := h.add("slow")
	ev, _ := json.Marshal(runtime.Event{Type: runtime.EventAccepted, EnvelopeID: "npc@1"})
	for i := 0; i < cap(ch)+16; i++ {
		h.broadcastEvent(ev)
	}
	if len(ch) != cap(ch) {
		t.Fatalf("queue: got %d want full (%d)", len(ch), cap(ch))
	}
}

func TestHubCloseStopsDelivery(t *testing.T) {
	h := newHub(testLogger())
	ch := h.add("c1")
	h.close()
	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed")
	}
	if got := h.add("c2"); got != nil {
		t.Fatal("add after close should return nil")
	}
	// Must not panic.
	ev, _ := json.Marshal(runtime.Event{Type: runtime.EventError})
	h.broadcastEvent(ev)
}

func TestHandleSubmit(t *testing.T) {
	logger := testLogger()
	h := newHub(logger)
	sim := runtime.NewSimulator(runtime.SimulatorConfig{Steps: 1}, h.broadcastEvent)
	defer sim.Close()
	handler := handleSubmit(sim, logger)

	a := envelope.NewAdapter()
	env := a.Build(&task.Request{Action: task.ActionMine, NPCID: "miner-1"})
	wire, err := a.WireCommand(env)
	if err != nil {
		t.Fatalf("WireCommand: %v", err)
	}

	t.Run("wire command", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/v1/submit", strings.NewReader(wire)))
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp["envelopeId"] != env.ID() {
			t.Fatalf("envelopeId: got %v want %s", resp["envelopeId"], env.ID())
		}
	})

	t.Run("bare envelope json", func(t *testing.T) {
		raw, _ := json.Marshal(env)
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/v1/submit", strings.NewReader(string(raw))))
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/v1/submit", strings.NewReader("not an envelope")))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d", rec.Code)
		}
	})

	t.Run("rejects GET", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/submit", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status: got %d", rec.Code)
		}
	})

	sim.Wait()
}
