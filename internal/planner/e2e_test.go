package planner

import (
	"strings"
	"testing"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

func stepByTitle(p *plan.Plan, prefix string) (plan.Step, bool) {
	for _, s := range p.Steps {
		if strings.HasPrefix(s.Title, prefix) {
			return s, true
		}
	}
	return plan.Step{}, false
}

func stepByCommand(p *plan.Plan, cmd string) (plan.Step, bool) {
	for _, s := range p.Steps {
		if s.Command == cmd {
			return s, true
		}
	}
	return plan.Step{}, false
}

func hasResource(p *plan.Plan, name string) bool {
	for _, r := range p.Resources {
		if r == name {
			return true
		}
	}
	return false
}

func commands(p *plan.Plan) []string {
	out := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		if s.Command != "" {
			out = append(out, s.Command)
		}
	}
	return out
}

func TestPlanBuildFromTemplate(t *testing.T) {
	req := &task.Request{
		Action: task.ActionBuild,
		Target: &task.Target{Name: "the hilltop"},
		Metadata: map[string]any{
			"template":    "basic_house",
			"orientation": "north",
		},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil {
		t.Fatalf("no plan for build task")
	}
	if p.Status != plan.StatusOK {
		t.Fatalf("status: got %q want %q", p.Status, plan.StatusOK)
	}
	if p.EstimatedDuration != 18000 {
		t.Fatalf("duration: got %d want 18000", p.EstimatedDuration)
	}
	survey, ok := stepByTitle(p, "Survey site")
	if !ok {
		t.Fatalf("survey step missing; steps: %+v", p.Steps)
	}
	if !strings.Contains(survey.Description, "north") {
		t.Fatalf("survey ignores orientation: %q", survey.Description)
	}
	if !hasResource(p, "oak_planks") {
		t.Fatalf("template materials not carried: %v", p.Resources)
	}
	found := false
	for _, n := range p.Notes {
		if n == "Using template: Basic House (residential)." {
			found = true
		}
	}
	if !found {
		t.Fatalf("template note missing: %v", p.Notes)
	}
}

func TestPlanMineShape(t *testing.T) {
	req := &task.Request{
		Action:  task.ActionMine,
		Details: "diamond at (30,12,-4)",
		Target:  task.PointTarget(30, 12, -4),
		Metadata: map[string]any{
			"strategy": "branch",
			"hazards":  []any{"lava"},
			"tools":    []any{"iron_pickaxe"},
		},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil {
		t.Fatalf("no plan for mine task")
	}
	if p.Status != plan.StatusOK {
		t.Fatalf("status: got %q", p.Status)
	}

	strat, ok := stepByTitle(p, "Select strategy")
	if !ok {
		t.Fatalf("strategy step missing")
	}
	if got := strat.Metadata["strategy"]; got != "branch_mining" {
		t.Fatalf("strategy: got %v want branch_mining", got)
	}

	survey, ok := stepByTitle(p, "Survey site")
	if !ok {
		t.Fatalf("survey step missing")
	}
	if !strings.Contains(survey.Description, "(30,12,-4)") {
		t.Fatalf("survey lost the target point: %q", survey.Description)
	}
	if !strings.Contains(survey.Description, "Y=-64") {
		t.Fatalf("survey lost the ore band: %q", survey.Description)
	}

	mit, ok := stepByTitle(p, "Mitigate lava")
	if !ok {
		t.Fatalf("lava mitigation missing; steps: %+v", p.Steps)
	}
	if mit.Description != "Counter lava (critical): fire_resistance_potion." {
		t.Fatalf("mitigation text: %q", mit.Description)
	}

	if _, ok := stepByTitle(p, "Extract diamond"); !ok {
		t.Fatalf("extract step missing")
	}
	if _, ok := stepByTitle(p, "Deposit haul"); ok {
		t.Fatalf("deposit step without storage request")
	}
	if !hasResource(p, "iron_pickaxe") || !hasResource(p, "diamond") {
		t.Fatalf("resources: %v", p.Resources)
	}
	if len(p.Risks) == 0 || p.Risks[0] != "lava (critical)" {
		t.Fatalf("risks: %v", p.Risks)
	}
}

func TestPlanEatWhenStarving(t *testing.T) {
	ctx := &task.Context{
		Inventory:   []task.Item{{Name: "bread", Count: 3}},
		HungerState: &task.HungerState{Hunger: 2, Saturation: 0},
	}
	p := PlanTask(&task.Request{Action: task.ActionEat}, ctx)
	if p == nil {
		t.Fatalf("no plan for eat task")
	}
	if got := p.Metadata["urgency"]; got != "critical" {
		t.Fatalf("urgency: got %v want critical", got)
	}
	if got := p.Metadata["priority"]; got != "high" {
		t.Fatalf("priority: got %v want high", got)
	}
	if len(p.Steps) == 0 || p.Steps[0].Command != "find_safe_location" {
		t.Fatalf("first step: %+v", p.Steps)
	}
	last := p.Steps[len(p.Steps)-1]
	if last.Command != "eat_food" {
		t.Fatalf("last step: %+v", last)
	}
	if got := last.Metadata["hungerRestored"]; got != 5 {
		t.Fatalf("step hungerRestored: got %v want 5", got)
	}
	if got := last.Metadata["saturationRestored"]; got != 6.0 {
		t.Fatalf("step saturationRestored: got %v want 6", got)
	}
	if got := p.Outcome["hungerRestored"]; got != 5 {
		t.Fatalf("hungerRestored: got %v want 5", got)
	}
	if got := p.Outcome["saturationRestored"]; got != 6.0 {
		t.Fatalf("saturationRestored: got %v want 6", got)
	}
}

func TestPlanSleepBlockedInNether(t *testing.T) {
	p := PlanTask(&task.Request{Action: task.ActionSleep}, &task.Context{Dimension: "nether"})
	if p == nil {
		t.Fatalf("no plan for sleep task")
	}
	if p.Status != plan.StatusBlocked {
		t.Fatalf("status: got %q want %q", p.Status, plan.StatusBlocked)
	}
	if got := p.Metadata["danger"]; got != true {
		t.Fatalf("danger flag: got %v", got)
	}
	if got := p.Metadata["explosionPower"]; got != 5 {
		t.Fatalf("explosionPower: got %v want 5", got)
	}
	if !strings.Contains(p.Error, "nether") {
		t.Fatalf("error: %q", p.Error)
	}
	if len(p.Warnings) == 0 || !strings.Contains(p.Warnings[0], "power 5") {
		t.Fatalf("warnings: %v", p.Warnings)
	}
}

func TestPlanTradeStepOrder(t *testing.T) {
	req := &task.Request{
		Action: task.ActionTrade,
		Metadata: map[string]any{
			"item":       "enchanted_book",
			"profession": "librarian",
		},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil {
		t.Fatalf("no plan for trade task")
	}
	if p.Status != plan.StatusOK {
		t.Fatalf("status: got %q error %q", p.Status, p.Error)
	}
	want := []string{"navigate", "open_trade", "select_trade", "confirm_trade"}
	got := commands(p)
	if len(got) != len(want) {
		t.Fatalf("commands: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("commands: got %v want %v", got, want)
		}
	}
	trade, ok := p.Outcome["trade"].(map[string]any)
	if !ok {
		t.Fatalf("trade outcome missing: %v", p.Outcome)
	}
	if got := trade["buyCount"]; got != 5 {
		t.Fatalf("buyCount: got %v want 5", got)
	}
}

func TestPlanComposterToTarget(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionComposter,
		Metadata: map[string]any{"amount": 2},
	}
	ctx := &task.Context{Inventory: []task.Item{{Name: "wheat", Count: 22}}}
	p := PlanTask(req, ctx)
	if p == nil {
		t.Fatalf("no plan for composter task")
	}
	if p.Status != plan.StatusOK {
		t.Fatalf("status: got %q error %q", p.Status, p.Error)
	}
	load, ok := stepByCommand(p, "compost_wheat")
	if !ok {
		t.Fatalf("compost step missing; steps: %+v", p.Steps)
	}
	if got := load.Metadata["item"]; got != "wheat" {
		t.Fatalf("item: got %v", got)
	}
	if got := load.Metadata["count"]; got != 22 {
		t.Fatalf("count: got %v want 22", got)
	}
	if got := load.Metadata["chance"]; got != 0.65 {
		t.Fatalf("chance: got %v want 0.65", got)
	}
	if got := p.Outcome["itemsComposted"]; got != 22 {
		t.Fatalf("itemsComposted: got %v want 22", got)
	}
	if got := p.Outcome["bonemealExpected"]; got != 2 {
		t.Fatalf("bonemealExpected: got %v want 2", got)
	}
}
