package planner

import (
	"strings"
	"testing"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

func TestPlanCraftWithRecipe(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionCraft,
		Metadata: map[string]any{"item": "bread", "quantity": 3},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	gather, ok := stepByTitle(p, "Gather ingredients")
	if !ok {
		t.Fatalf("gather step missing")
	}
	if !strings.Contains(gather.Description, "9 wheat") {
		t.Fatalf("ingredients not scaled: %q", gather.Description)
	}
	craft, ok := stepByTitle(p, "Craft bread")
	if !ok {
		t.Fatalf("craft step missing")
	}
	if got := craft.Metadata["batches"]; got != 3 {
		t.Fatalf("batches: got %v want 3", got)
	}
	if !hasResource(p, "wheat") || !hasResource(p, "crafting_table") {
		t.Fatalf("resources: %v", p.Resources)
	}
	if got := p.Outcome["itemsCrafted"]; got != 3 {
		t.Fatalf("itemsCrafted: got %v want 3", got)
	}
}

func TestPlanCraftUnknownRecipe(t *testing.T) {
	req := &task.Request{Action: task.ActionCraft, Metadata: map[string]any{"item": "netherite_hoe"}}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if _, ok := stepByTitle(p, "Work out the recipe"); !ok {
		t.Fatalf("unknown recipe handled silently: %+v", p.Steps)
	}
}

func TestPlanCraftRequiresItem(t *testing.T) {
	p := PlanTask(&task.Request{Action: task.ActionCraft}, &task.Context{})
	if p == nil || p.Status != plan.StatusFailed {
		t.Fatalf("want failed plan, got %+v", p)
	}
	if !strings.Contains(p.Suggestion, "metadata.item") {
		t.Fatalf("suggestion: %q", p.Suggestion)
	}
}

func TestPlanGatherPicksTool(t *testing.T) {
	req := &task.Request{Action: task.ActionGather, Metadata: map[string]any{"item": "oak_log"}}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if _, ok := stepByTitle(p, "Ready iron_axe"); !ok {
		t.Fatalf("wrong tool for logs: %+v", p.Steps)
	}
	if p2 := PlanTask(&task.Request{Action: task.ActionGather}, &task.Context{}); p2.Status != plan.StatusFailed {
		t.Fatalf("gather without item: %+v", p2)
	}
}

func TestPlanExploreStructure(t *testing.T) {
	req := &task.Request{Action: task.ActionExplore, Metadata: map[string]any{"structure": "village"}}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if got := p.Metadata["structure"]; got != "village" {
		t.Fatalf("structure: got %v", got)
	}
	if got := p.Metadata["radius"]; got != defaultExploreRadius {
		t.Fatalf("radius: got %v want %d", got, defaultExploreRadius)
	}
	if _, ok := stepByTitle(p, "Report findings"); !ok {
		t.Fatalf("no report step: %+v", p.Steps)
	}
}

func TestPlanThrowEnderPearl(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionThrow,
		Metadata: map[string]any{"item": "ender_pearl", "distance": 300},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if got := p.Outcome["distance"]; got != 120 {
		t.Fatalf("distance not clamped: got %v", got)
	}
	if len(p.Warnings) == 0 {
		t.Fatalf("long throw raised no warning")
	}
	if _, ok := stepByCommand(p, "brace"); !ok {
		t.Fatalf("pearl landing unguarded: %+v", p.Steps)
	}
	if _, ok := stepByCommand(p, "collect_drops"); ok {
		t.Fatalf("pearls are consumed, nothing to recover")
	}
}

func TestPlanThrowTridentIsRecovered(t *testing.T) {
	p := PlanTask(&task.Request{Action: task.ActionThrow, Metadata: map[string]any{"item": "trident"}}, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if _, ok := stepByCommand(p, "collect_drops"); !ok {
		t.Fatalf("trident left behind: %+v", p.Steps)
	}
	if got := p.Outcome["consumed"]; got != false {
		t.Fatalf("consumed: got %v", got)
	}
}

func TestPlanCombatOrdersByThreat(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionCombat,
		Metadata: map[string]any{"enemies": []any{"zombie", "skeleton", "creeper"}},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	var fights []string
	for _, s := range p.Steps {
		if strings.HasPrefix(s.Title, "Fight ") {
			fights = append(fights, strings.TrimPrefix(s.Title, "Fight "))
		}
	}
	want := []string{"creeper", "skeleton", "zombie"}
	if len(fights) != len(want) {
		t.Fatalf("fights: %v", fights)
	}
	for i := range want {
		if fights[i] != want[i] {
			t.Fatalf("fight order: got %v want %v", fights, want)
		}
	}
}

func TestPlanCombatFromContextHostiles(t *testing.T) {
	ctx := &task.Context{
		Environment: &task.Environment{
			Entities: []task.Entity{{Name: "spider", Hostile: true}},
		},
	}
	p := PlanTask(&task.Request{Action: task.ActionCombat}, ctx)
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if _, ok := stepByTitle(p, "Fight spider"); !ok {
		t.Fatalf("context hostiles ignored: %+v", p.Steps)
	}
}

func TestPlanScaffoldingBlockedWithoutMaterials(t *testing.T) {
	req := &task.Request{Action: task.ActionScaffolding, Metadata: map[string]any{"height": 10}}
	p := PlanTask(req, &task.Context{})
	if p == nil {
		t.Fatalf("no plan")
	}
	if p.Status != plan.StatusBlocked {
		t.Fatalf("status: got %q want %q", p.Status, plan.StatusBlocked)
	}
	if !strings.Contains(p.Suggestion, "12 bamboo and 2 string") {
		t.Fatalf("suggestion: %q", p.Suggestion)
	}
}

func TestPlanScaffoldingWithStock(t *testing.T) {
	ctx := &task.Context{Inventory: []task.Item{{Name: "scaffolding", Count: 12}}}
	req := &task.Request{Action: task.ActionScaffolding, Metadata: map[string]any{"height": 10}}
	p := PlanTask(req, ctx)
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if _, ok := stepByCommand(p, "craft"); ok {
		t.Fatalf("craft step despite full stock")
	}
	if got := p.Metadata["deficit"]; got != 0 {
		t.Fatalf("deficit: got %v want 0", got)
	}
}

func TestPlanClimbDescends(t *testing.T) {
	ctx := &task.Context{Position: &task.Vec3{X: 0, Y: 20, Z: 0}}
	req := &task.Request{Action: task.ActionClimb, Target: task.PointTarget(0, 8, 0)}
	p := PlanTask(req, ctx)
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if p.Summary != "Descend 12 blocks (scaffolding)" {
		t.Fatalf("summary: %q", p.Summary)
	}
	if !hasResource(p, "water_bucket") {
		t.Fatalf("deep descent without a water bucket: %v", p.Resources)
	}
}

func TestPlanDoorIronNeedsActivator(t *testing.T) {
	req := &task.Request{Action: task.ActionDoor, Metadata: map[string]any{"door": "iron_door"}}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if _, ok := stepByCommand(p, "place_activator"); !ok {
		t.Fatalf("iron door without an opener: %+v", p.Steps)
	}
	if !hasResource(p, "stone_button") {
		t.Fatalf("resources: %v", p.Resources)
	}
}

func TestPlanRedstoneKnownDevice(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionRedstone,
		Metadata: map[string]any{"device": "piston_door", "run": 40},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if got := p.Metadata["device"]; got != "piston_door" {
		t.Fatalf("device: got %v", got)
	}
	// 40 dust of wire needs a repeater at each 15-block falloff.
	if got := p.Metadata["repeaters"]; got != 2 {
		t.Fatalf("repeaters: got %v want 2", got)
	}
	if _, ok := stepByCommand(p, "test_circuit"); !ok {
		t.Fatalf("circuit never tested: %+v", p.Steps)
	}
}

func TestPlanMinecartPowersTheGrade(t *testing.T) {
	req := &task.Request{Action: task.ActionMinecart, Metadata: map[string]any{"distance": 24}}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if got := p.Metadata["rails"]; got != 24 {
		t.Fatalf("rails: got %v want 24", got)
	}
	if got := p.Metadata["powered"]; got != 3 {
		t.Fatalf("powered rails: got %v want 3", got)
	}
	if _, ok := stepByCommand(p, "ride_minecart"); !ok {
		t.Fatalf("no ride step: %+v", p.Steps)
	}
}

func TestPlanRangedSizesTheQuiver(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionRanged,
		Metadata: map[string]any{"enemies": []any{"skeleton", "zombie"}},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if got := p.Metadata["arrows"]; got != 12 {
		t.Fatalf("arrows: got %v want 12", got)
	}
	// Skeletons shoot back; the plan must include evasive movement.
	if _, ok := stepByCommand(p, "strafe"); !ok {
		t.Fatalf("no strafe step against ranged enemies: %+v", p.Steps)
	}
}

func TestPlanInteractDepositsIntoChest(t *testing.T) {
	req := &task.Request{
		Action: task.ActionInteract,
		Metadata: map[string]any{
			"object": "chest",
			"items":  []any{map[string]any{"name": "cobblestone", "count": 32}},
		},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if _, ok := stepByCommand(p, "open_container"); !ok {
		t.Fatalf("no open step: %+v", p.Steps)
	}
	dep, ok := stepByCommand(p, "deposit_items")
	if !ok {
		t.Fatalf("no deposit step: %+v", p.Steps)
	}
	if dep.Metadata["item"] != "cobblestone" || dep.Metadata["count"] != 32 {
		t.Fatalf("deposit metadata: %v", dep.Metadata)
	}
	moved, ok := p.Outcome["itemsMoved"].([]transfer)
	if !ok || len(moved) != 1 {
		t.Fatalf("itemsMoved: %v", p.Outcome["itemsMoved"])
	}
}

func TestPlanDisplayCountsItems(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionDisplay,
		Metadata: map[string]any{"items": []any{"diamond_sword", "netherite_helmet", "elytra"}},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if got := p.Outcome["displayed"]; got != 3 {
		t.Fatalf("displayed: got %v want 3", got)
	}
	if got := p.Outcome["medium"]; got != "item_frame" {
		t.Fatalf("medium: got %v", got)
	}
}

func TestPlanGuardHoldsTheShift(t *testing.T) {
	req := &task.Request{Action: task.ActionGuard, Metadata: map[string]any{"protect": "the storehouse"}}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if p.EstimatedDuration != defaultGuardShift {
		t.Fatalf("duration: got %d want %d", p.EstimatedDuration, defaultGuardShift)
	}
	if _, ok := stepByCommand(p, "patrol"); !ok {
		t.Fatalf("no patrol step: %+v", p.Steps)
	}
}

func TestPlanSleepHappyPath(t *testing.T) {
	tod := 13000
	ctx := &task.Context{
		TimeOfDay: &tod,
		Inventory: []task.Item{{Name: "white_bed", Count: 1}},
	}
	p := PlanTask(&task.Request{Action: task.ActionSleep}, ctx)
	if p == nil {
		t.Fatalf("no plan")
	}
	if p.Status != plan.StatusOK {
		t.Fatalf("status: got %q error %q", p.Status, p.Error)
	}
	if _, ok := stepByCommand(p, "place_bed"); !ok {
		t.Fatalf("carried bed never placed: %+v", p.Steps)
	}
	if got := p.Outcome["spawnPointSet"]; got != true {
		t.Fatalf("spawnPointSet: got %v", got)
	}
}

func TestPlanEatSkipsWhenFull(t *testing.T) {
	ctx := &task.Context{
		Inventory:   []task.Item{{Name: "bread", Count: 2}},
		HungerState: &task.HungerState{Hunger: 20, Saturation: 5},
	}
	p := PlanTask(&task.Request{Action: task.ActionEat}, ctx)
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if p.Summary != "No need to eat" {
		t.Fatalf("summary: %q", p.Summary)
	}
	if got := p.Outcome["ate"]; got != false {
		t.Fatalf("ate: got %v", got)
	}
}

func TestPlanEatFailsWithoutFood(t *testing.T) {
	ctx := &task.Context{HungerState: &task.HungerState{Hunger: 6, Saturation: 0}}
	p := PlanTask(&task.Request{Action: task.ActionEat}, ctx)
	if p == nil || p.Status != plan.StatusFailed {
		t.Fatalf("want failed plan, got %+v", p)
	}
	if !strings.Contains(p.Suggestion, "trade villagers") {
		t.Fatalf("suggestion: %q", p.Suggestion)
	}
}

func TestPlanCombatStanceFromTactic(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionCombat,
		Metadata: map[string]any{"enemies": []any{"zombie"}, "tactic": "ranged harassment"},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if got := p.Metadata["stance"]; got != "ranged" {
		t.Fatalf("stance: got %v want ranged", got)
	}
}

func TestPlanCombatDefaultsToGuard(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionCombat,
		Metadata: map[string]any{"enemies": []any{"zombie", "spider", "creeper"}},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if got := p.Metadata["stance"]; got != "guard" {
		t.Fatalf("stance: got %v want guard", got)
	}
}

func TestPlanCombatSquadRoles(t *testing.T) {
	req := &task.Request{
		Action: task.ActionCombat,
		Metadata: map[string]any{
			"enemies":      []any{"zombie"},
			"squadMembers": []any{"sigrid", "bjorn", "astrid"},
		},
	}
	p := PlanTask(req, &task.Context{})
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	if _, ok := stepByTitle(p, "Brief the squad"); !ok {
		t.Fatalf("squad briefing missing; steps: %+v", p.Steps)
	}
	roles, ok := p.Metadata["roles"].(map[string]string)
	if !ok {
		t.Fatalf("roles missing: %v", p.Metadata)
	}
	want := map[string]string{"sigrid": "leader", "bjorn": "flanker", "astrid": "cover"}
	for m, r := range want {
		if roles[m] != r {
			t.Fatalf("role for %s: got %q want %q", m, roles[m], r)
		}
	}
}

func TestPlanTradeBlockedWithoutPayment(t *testing.T) {
	req := &task.Request{
		Action: task.ActionTrade,
		Metadata: map[string]any{
			"item":       "enchanted_book",
			"profession": "librarian",
		},
	}
	ctx := &task.Context{Inventory: []task.Item{{Name: "emerald", Count: 3}}}
	p := PlanTask(req, ctx)
	if p == nil || p.Status != plan.StatusBlocked {
		t.Fatalf("want blocked plan, got %+v", p)
	}
	if !strings.Contains(p.Error, "emerald") {
		t.Fatalf("error: %q", p.Error)
	}
	if !strings.Contains(p.Suggestion, "emerald") {
		t.Fatalf("suggestion: %q", p.Suggestion)
	}
}

func TestPlanComposterBlockedBelowTarget(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionComposter,
		Metadata: map[string]any{"amount": 5},
	}
	ctx := &task.Context{Inventory: []task.Item{{Name: "wheat", Count: 5}}}
	p := PlanTask(req, ctx)
	if p == nil || p.Status != plan.StatusBlocked {
		t.Fatalf("want blocked plan, got %+v", p)
	}
	if !strings.Contains(p.Error, "5 wanted") {
		t.Fatalf("error: %q", p.Error)
	}
	if got := p.Outcome["bonemealExpected"]; got != 0 {
		t.Fatalf("bonemealExpected: got %v want 0", got)
	}
}

func TestPlanComposterTrimsToTarget(t *testing.T) {
	req := &task.Request{
		Action:   task.ActionComposter,
		Metadata: map[string]any{"amount": 2},
	}
	ctx := &task.Context{Inventory: []task.Item{{Name: "wheat", Count: 60}}}
	p := PlanTask(req, ctx)
	if p == nil || p.Status != plan.StatusOK {
		t.Fatalf("plan: %+v", p)
	}
	load, ok := stepByCommand(p, "compost_wheat")
	if !ok {
		t.Fatalf("compost step missing; steps: %+v", p.Steps)
	}
	if got := load.Metadata["count"]; got != 22 {
		t.Fatalf("count: got %v want 22", got)
	}
	if got := p.Outcome["itemsComposted"]; got != 22 {
		t.Fatalf("itemsComposted: got %v want 22", got)
	}
	if got := p.Outcome["bonemealExpected"]; got != 2 {
		t.Fatalf("bonemealExpected: got %v want 2", got)
	}
}
