package envelope

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"mindcraftce.ai/internal/planner"
	"mindcraftce.ai/internal/task"
)

func frozenClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestBuildStampsVersionAndMonotoneIssuedAt(t *testing.T) {
	a := NewAdapter(WithClock(frozenClock(1700000000000)))
	first := a.Build(&task.Request{Action: "build", NPCID: "sigrid"})
	second := a.Build(&task.Request{Action: "build", NPCID: "sigrid"})

	if first.Version != "1.0" {
		t.Fatalf("version: got %q", first.Version)
	}
	if first.IssuedAt != 1700000000000 {
		t.Fatalf("issuedAt: got %d", first.IssuedAt)
	}
	if second.IssuedAt != first.IssuedAt+1 {
		t.Fatalf("stalled clock must still advance: %d then %d", first.IssuedAt, second.IssuedAt)
	}
	if first.Priority != "normal" {
		t.Fatalf("default priority: got %q", first.Priority)
	}
}

func TestEnvelopeID(t *testing.T) {
	e := Envelope{NPC: "sigrid", IssuedAt: 42}
	if got := e.ID(); got != "sigrid@42" {
		t.Fatalf("got %q", got)
	}
	e.NPC = "  "
	if got := e.ID(); got != "npc@42" {
		t.Fatalf("unnamed npc: got %q", got)
	}
}

func TestMineEnvelope(t *testing.T) {
	a := NewAdapter(WithClock(frozenClock(1000)))
	e := a.Build(&task.Request{
		Action:  "mine",
		Details: "diamond at (30,12,-4)",
		Target:  task.PointTarget(30, 12, -4),
		Metadata: map[string]any{
			"strategy": "branch",
			"hazards":  []any{"lava"},
			"tools":    []any{"iron_pickaxe"},
		},
	})

	if got := e.Metadata["strategy"]; got != "branch_mining" {
		t.Fatalf("strategy: got %v", got)
	}
	watchers, ok := e.Metadata["watchers"].([]planner.Watcher)
	if !ok || len(watchers) == 0 {
		t.Fatalf("watchers: %v", e.Metadata["watchers"])
	}
	if watchers[0].Hazard != "lava" {
		t.Fatalf("watcher hazard: got %q", watchers[0].Hazard)
	}
	if watchers[0].Severity != "critical" {
		t.Fatalf("watcher severity: got %q", watchers[0].Severity)
	}
	if _, ok := e.Metadata["directives"]; !ok {
		t.Fatalf("directives missing: %v", e.Metadata)
	}

	if len(e.Plan) == 0 {
		t.Fatalf("mine envelope carries no plan annotation")
	}
	var mitigate *Operation
	for i := range e.Plan {
		if e.Plan[i].Kind == "mitigate" {
			mitigate = &e.Plan[i]
		}
	}
	if mitigate == nil {
		t.Fatalf("no mitigate operation: %+v", e.Plan)
	}
	if len(mitigate.Hazards) != 1 || mitigate.Hazards[0] != "lava" {
		t.Fatalf("mitigate hazards: %v", mitigate.Hazards)
	}
	if mitigate.Mitigation != "fire_resistance_potion" {
		t.Fatalf("mitigation: %q", mitigate.Mitigation)
	}
	if mitigate.Response != "pause" {
		t.Fatalf("response: %q", mitigate.Response)
	}
	last := e.Plan[len(e.Plan)-1]
	if last.Kind != "extract" {
		t.Fatalf("last operation: %+v", last)
	}
	for i, op := range e.Plan {
		if op.Step != i+1 {
			t.Fatalf("steps not sequential: %+v", e.Plan)
		}
	}
}

func TestWireCommandRoundTrip(t *testing.T) {
	a := NewAdapter(WithClock(frozenClock(5000)))
	e := a.Build(&task.Request{
		Action: "mine",
		Target: task.PointTarget(0, -40, 12),
		NPCID:  "bjorn",
		Metadata: map[string]any{
			"blocks":   []any{"diamond_ore"},
			"hazards":  []any{"lava", "gravel"},
			"quantity": 8,
		},
	})

	cmd, err := a.WireCommand(e)
	if err != nil {
		t.Fatalf("wire command: %v", err)
	}
	if !strings.HasPrefix(cmd, "mindcraftce run {") {
		t.Fatalf("command form: %q", cmd)
	}

	parsed, err := ParseWireCommand(cmd)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal original: %v", err)
	}
	got, err := json.Marshal(parsed)
	if err != nil {
		t.Fatalf("marshal parsed: %v", err)
	}
	var wantDoc, gotDoc any
	if err := json.Unmarshal(want, &wantDoc); err != nil {
		t.Fatalf("decode original: %v", err)
	}
	if err := json.Unmarshal(got, &gotDoc); err != nil {
		t.Fatalf("decode parsed: %v", err)
	}
	if !reflect.DeepEqual(gotDoc, wantDoc) {
		t.Fatalf("round trip drifted:\n got %s\nwant %s", got, want)
	}
}

func TestWireCommandCustomPrefix(t *testing.T) {
	a := NewAdapter(WithClock(frozenClock(1)), WithPrefix("mc"))
	cmd, err := a.WireCommand(a.Build(&task.Request{Action: "eat"}))
	if err != nil {
		t.Fatalf("wire command: %v", err)
	}
	if !strings.HasPrefix(cmd, "mc run ") {
		t.Fatalf("prefix lost: %q", cmd)
	}
}

func TestBuildDropsEmptyTarget(t *testing.T) {
	a := NewAdapter(WithClock(frozenClock(1)))
	e := a.Build(&task.Request{Action: "explore", Target: &task.Target{}})
	if e.Target != nil {
		t.Fatalf("empty target kept: %+v", e.Target)
	}
}

func TestGenericMetadataStripsUndefined(t *testing.T) {
	a := NewAdapter(WithClock(frozenClock(1)))
	e := a.Build(&task.Request{
		Action: "build",
		Metadata: map[string]any{
			"template": "basic_house",
			"ghost":    nil,
			"nested":   map[string]any{"inner": nil},
			"list":     []any{nil, "torch"},
		},
	})
	if got := e.Metadata["template"]; got != "basic_house" {
		t.Fatalf("defined field lost: %v", e.Metadata)
	}
	if _, ok := e.Metadata["ghost"]; ok {
		t.Fatalf("nil field survived: %v", e.Metadata)
	}
	if _, ok := e.Metadata["nested"]; ok {
		t.Fatalf("undefined-only object survived: %v", e.Metadata)
	}
	list, ok := e.Metadata["list"].([]any)
	if !ok || len(list) != 1 || list[0] != "torch" {
		t.Fatalf("list strip: %v", e.Metadata["list"])
	}
}
