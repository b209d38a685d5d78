package runtime

import (
	"bytes"
	"encoding/json"

	"mindcraftce.ai/internal/plan"
)

// Frame is one decoded chunk of the event stream.
type Frame struct {
	Events []Event
	Plan   *plan.Plan
}

type eventWire struct {
	Type       string  `json:"type"`
	EnvelopeID string  `json:"envelopeId"`
	NPCID      string  `json:"npcId"`
	Progress   float64 `json:"progress"`
	Message    string  `json:"message"`
	Error      string  `json:"error"`
}

type frameWire struct {
	eventWire
	Events []eventWire     `json:"events"`
	Plan   json.RawMessage `json:"plan"`
}

func (w eventWire) event() (Event, bool) {
	t, ok := ParseEventType(w.Type)
	if !ok {
		return Event{}, false
	}
	return Event{
		Type:       t,
		EnvelopeID: w.EnvelopeID,
		NPCID:      w.NPCID,
		Progress:   w.Progress,
		Message:    w.Message,
		Error:      w.Error,
	}, true
}

// DecodeFrame parses one chunk: an {events:[...]} batch, a single event, or
// a {plan:...} record. Chunks that parse to none of these report false and
// are dropped by the caller. Unknown event types inside a batch are skipped.
func DecodeFrame(chunk []byte) (Frame, bool) {
	var w frameWire
	if err := json.Unmarshal(chunk, &w); err != nil {
		return Frame{}, false
	}
	if len(w.Events) > 0 {
		events := make([]Event, 0, len(w.Events))
		for _, ew := range w.Events {
			if ev, ok := ew.event(); ok {
				events = append(events, ev)
			}
		}
		if len(events) == 0 {
			return Frame{}, false
		}
		return Frame{Events: events}, true
	}
	if len(w.Plan) > 0 && !bytes.Equal(w.Plan, []byte("null")) {
		var p plan.Plan
		if err := json.Unmarshal(w.Plan, &p); err != nil {
			return Frame{}, false
		}
		return Frame{Plan: &p}, true
	}
	if ev, ok := w.eventWire.event(); ok {
		return Frame{Events: []Event{ev}}, true
	}
	return Frame{}, false
}

// DecodeFrames splits data on newlines and decodes each non-empty line,
// silently dropping the unparseable ones.
func DecodeFrames(data []byte) []Frame {
	var out []Frame
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if f, ok := DecodeFrame(line); ok {
			out = append(out, f)
		}
	}
	return out
}
