package runtime

import "testing"

func TestDecodeFrameBatch(t *testing.T) {
	chunk := []byte(`{"events":[` +
		`{"type":"task_accepted","envelopeId":"sigrid@7"},` +
		`{"type":"task_telemetry","envelopeId":"sigrid@7"},` +
		`{"type":"task_progress","envelopeId":"sigrid@7","progress":0.5}]}`)
	f, ok := DecodeFrame(chunk)
	if !ok {
		t.Fatal("batch dropped")
	}
	if len(f.Events) != 2 {
		t.Fatalf("events: %v", f.Events)
	}
	if f.Events[0].Type != EventAccepted || f.Events[1].Progress != 0.5 {
		t.Fatalf("decoded: %+v", f.Events)
	}
}

func TestDecodeFrameSingleEvent(t *testing.T) {
	f, ok := DecodeFrame([]byte(`{"type":"task_failed","envelopeId":"npc@3","error":"no pickaxe"}`))
	if !ok || len(f.Events) != 1 {
		t.Fatalf("ok=%v events=%v", ok, f.Events)
	}
	if f.Events[0].Type != EventFailed || f.Events[0].Error != "no pickaxe" {
		t.Fatalf("decoded: %+v", f.Events[0])
	}
}

func TestDecodeFramePlan(t *testing.T) {
	f, ok := DecodeFrame([]byte(`{"plan":{"task":{"action":"mine"},"summary":"Mine 8 iron_ore","steps":[]}}`))
	if !ok || f.Plan == nil {
		t.Fatalf("ok=%v plan=%v", ok, f.Plan)
	}
	if f.Plan.Summary != "Mine 8 iron_ore" || f.Plan.Task.Action != "mine" {
		t.Fatalf("plan: %+v", f.Plan)
	}
}

func TestDecodeFrameDropsGarbage(t *testing.T) {
	for _, chunk := range []string{
		"not json at all",
		`{"type":"task_paused"}`,
		`{"plan":null}`,
		`{"unrelated":true}`,
		`{"events":[{"type":"mystery"}]}`,
	} {
		if _, ok := DecodeFrame([]byte(chunk)); ok {
			t.Fatalf("accepted %q", chunk)
		}
	}
}

func TestDecodeFramesSplitsLines(t *testing.T) {
	data := []byte(`{"type":"task_accepted","envelopeId":"npc@1"}` + "\n" +
		"garbage line\n\n" +
		`{"type":"task_complete","envelopeId":"npc@1"}` + "\n")
	frames := DecodeFrames(data)
	if len(frames) != 2 {
		t.Fatalf("frames: %d", len(frames))
	}
	if frames[0].Events[0].Type != EventAccepted || frames[1].Events[0].Type != EventComplete {
		t.Fatalf("decoded: %+v", frames)
	}
}
