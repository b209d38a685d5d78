package plan

import (
	"reflect"
	"testing"

	"mindcraftce.ai/internal/task"
)

func TestNew_Defaults(t *testing.T) {
	p := New(Plan{
		Summary: "  gather wood  ",
		Steps: []Step{
			{Title: " Chop ", Description: ""},
			{Title: "", Type: StepMovement, Description: "walk over"},
		},
		Resources:         []string{"Oak Log", "oak_log", "unspecified item", "axe"},
		EstimatedDuration: -50,
	})
	if p.Summary != "gather wood" {
		t.Fatalf("summary: got %q", p.Summary)
	}
	if p.Steps[0].Description != "Chop" {
		t.Fatalf("step description should default to title, got %q", p.Steps[0].Description)
	}
	if p.Steps[0].Type != StepAction {
		t.Fatalf("step type should default to action, got %q", p.Steps[0].Type)
	}
	if p.Steps[1].Title != "Step" {
		t.Fatalf("empty title should default, got %q", p.Steps[1].Title)
	}
	want := []string{"oak_log", "axe"}
	if !reflect.DeepEqual(p.Resources, want) {
		t.Fatalf("resources: got %v want %v", p.Resources, want)
	}
	if p.EstimatedDuration != 0 {
		t.Fatalf("duration should clamp to 0, got %d", p.EstimatedDuration)
	}
	if p.Risks == nil || p.Notes == nil {
		t.Fatalf("risks and notes must not be nil")
	}
}

func TestDedupeResources_Order(t *testing.T) {
	got := DedupeResources([]string{"Torch", "iron pickaxe", "torch", "IRON_PICKAXE", "bread"})
	want := []string{"torch", "iron_pickaxe", "bread"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFailed(t *testing.T) {
	req := &task.Request{Action: task.ActionBuild}
	p := Failed(req, "Cannot build", "missing details", "specify a structure type")
	if p.Status != StatusFailed {
		t.Fatalf("status: got %q", p.Status)
	}
	if p.Error != "missing details" || p.Suggestion != "specify a structure type" {
		t.Fatalf("error fields not carried: %+v", p)
	}
	if p.Task != req {
		t.Fatalf("task not attached")
	}
	if len(p.Steps) != 0 {
		t.Fatalf("failed plan should have no steps, got %d", len(p.Steps))
	}
}
