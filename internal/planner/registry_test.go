package planner

import (
	"bytes"
	"log"
	"reflect"
	"sort"
	"testing"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

func TestDefaultRegistryCoversEveryAction(t *testing.T) {
	want := []string{
		task.ActionBuild, task.ActionMine, task.ActionExplore, task.ActionGather,
		task.ActionGuard, task.ActionCraft, task.ActionInteract, task.ActionCombat,
		task.ActionEat, task.ActionSleep, task.ActionDoor, task.ActionClimb,
		task.ActionRedstone, task.ActionThrow, task.ActionTrade, task.ActionMinecart,
		task.ActionDisplay, task.ActionComposter, task.ActionScaffolding, task.ActionRanged,
	}
	sort.Strings(want)
	if got := Default.Actions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("actions:\n got %v\nwant %v", got, want)
	}
	for _, a := range want {
		if !HasPlanner(a) {
			t.Fatalf("no planner for %q", a)
		}
	}
}

func TestPlanTaskUnknownAndNil(t *testing.T) {
	if p := PlanTask(nil, &task.Context{}); p != nil {
		t.Fatalf("nil task: got %+v", p)
	}
	if p := PlanTask(&task.Request{Action: "teleport"}, &task.Context{}); p != nil {
		t.Fatalf("unknown action: got %+v", p)
	}
	// A nil context is tolerated, not a crash.
	if p := PlanTask(&task.Request{Action: task.ActionGuard}, nil); p == nil {
		t.Fatalf("nil context: want a plan")
	}
}

func TestPlanTaskRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(log.New(&buf, "", 0))
	r.Register("boom", func(*task.Request, *task.Context) *plan.Plan {
		panic("kaboom")
	})
	if p := r.PlanTask(&task.Request{Action: "boom"}, &task.Context{}); p != nil {
		t.Fatalf("panicking planner returned a plan: %+v", p)
	}
	logged := buf.String()
	if logged == "" {
		t.Fatalf("panic not logged")
	}
	if want := `planner "boom" panicked: kaboom`; !bytes.Contains(buf.Bytes(), []byte(want)) {
		t.Fatalf("log line: got %q want substring %q", logged, want)
	}
}

func TestIsParallel(t *testing.T) {
	cases := map[string]bool{
		task.ActionMine:    true,
		task.ActionExplore: true,
		task.ActionBuild:   false,
		"teleport":         false,
	}
	for action, want := range cases {
		if got := Default.IsParallel(action); got != want {
			t.Fatalf("IsParallel(%q): got %v want %v", action, got, want)
		}
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("", func(*task.Request, *task.Context) *plan.Plan { return nil })
	r.Register("x", nil)
	if got := r.Actions(); len(got) != 0 {
		t.Fatalf("invalid registrations kept: %v", got)
	}
}

func TestPlanTaskAppliesPersonalityBias(t *testing.T) {
	ctx := &task.Context{
		NPC: &task.NPCState{Name: "Sigrid", PersonalityTraits: []string{"brave", "miner"}},
	}
	req := &task.Request{Action: task.ActionMine, Details: "mine iron_ore"}
	p := PlanTask(req, ctx)
	if p == nil {
		t.Fatalf("no plan")
	}
	if p.PersonalityBias == nil {
		t.Fatalf("bias not applied")
	}
	if p.PersonalityBias.Score != 2 {
		t.Fatalf("bias score: got %d want 2", p.PersonalityBias.Score)
	}

	base := PlanTask(req, &task.Context{})
	if base.EstimatedDuration <= p.EstimatedDuration {
		t.Fatalf("bias did not shorten: base %d biased %d", base.EstimatedDuration, p.EstimatedDuration)
	}
}
