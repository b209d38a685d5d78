package planner

import (
	"testing"

	"mindcraftce.ai/internal/task"
)

func TestStockTarget(t *testing.T) {
	cases := []struct {
		name                                  string
		base, have, min, desired, exact, buff int
		want                                  int
	}{
		{name: "base only", base: 1, want: 1},
		{name: "minimum gap wins", base: 1, have: 2, min: 10, want: 8},
		{name: "desired gap wins", base: 1, have: 10, desired: 16, want: 6},
		{name: "exact overrides", base: 1, have: 0, min: 10, exact: 5, want: 5},
		{name: "well stocked clamps to zero", base: 0, have: 5, min: 2, want: 0},
		{name: "buffer added last", base: 1, buff: 2, want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stockTarget(tc.base, tc.have, tc.min, tc.desired, tc.exact, tc.buff)
			if got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestSortHazards(t *testing.T) {
	got := sortHazards([]string{"gravel", "lava", "mob", "darkness", "magma"})
	want := []string{"lava", "enemy", "darkness", "gravel"}
	if len(got) != len(want) {
		t.Fatalf("got %d hazards want %d: %+v", len(got), len(want), got)
	}
	for i, h := range got {
		if h.Type != want[i] {
			t.Fatalf("position %d: got %q want %q", i, h.Type, want[i])
		}
	}
	if got[0].Severity != "critical" {
		t.Fatalf("lava severity: got %q", got[0].Severity)
	}
}

func TestTravelDistance(t *testing.T) {
	target := task.PointTarget(10, 0, -5)

	if got := travelDistance(&task.Context{}, target); got != assumedTravelBlocks {
		t.Fatalf("no position: got %d want %d", got, assumedTravelBlocks)
	}
	if got := travelDistance(&task.Context{Position: &task.Vec3{}}, nil); got != assumedTravelBlocks {
		t.Fatalf("no target: got %d want %d", got, assumedTravelBlocks)
	}
	ctx := &task.Context{Position: &task.Vec3{X: 1, Y: 0, Z: 1}}
	if got := travelDistance(ctx, target); got != 15 {
		t.Fatalf("manhattan: got %d want 15", got)
	}
}

func TestTravelDurationScalesWithTerrain(t *testing.T) {
	ctx := &task.Context{
		Position: &task.Vec3{},
		Biome:    "snowy_plains",
	}
	// 10 blocks at 250ms each, slowed by the 0.8 biome multiplier.
	if got := travelDuration(ctx, task.PointTarget(10, 0, 0)); got != 3125 {
		t.Fatalf("got %d want 3125", got)
	}
	ctx.Biome = ""
	if got := travelDuration(ctx, task.PointTarget(10, 0, 0)); got != 2500 {
		t.Fatalf("unknown biome: got %d want 2500", got)
	}
}

func TestTravelStep(t *testing.T) {
	if _, ok := travelStep(&task.Context{}, nil, "work"); ok {
		t.Fatalf("nil target produced a step")
	}
	if _, ok := travelStep(&task.Context{}, &task.Target{}, "work"); ok {
		t.Fatalf("empty target produced a step")
	}
	step, ok := travelStep(&task.Context{}, &task.Target{Name: "the forge"}, "stoke the furnace")
	if !ok {
		t.Fatalf("named target lost")
	}
	if step.Title != "Travel to the forge" {
		t.Fatalf("title: %q", step.Title)
	}
	if step.Metadata["distance"] != assumedTravelBlocks {
		t.Fatalf("distance: %v", step.Metadata["distance"])
	}
}

func TestMissingGear(t *testing.T) {
	items := []task.Item{{Name: "iron_pickaxe", Count: 1}}
	got := missingGear(items, []string{"Iron Pickaxe", "torch", ""})
	if len(got) != 1 || got[0] != "torch" {
		t.Fatalf("got %v want [torch]", got)
	}
}

func TestScaleDuration(t *testing.T) {
	if got := scaleDuration(1000, 1.5); got != 1500 {
		t.Fatalf("got %d want 1500", got)
	}
	if got := scaleDuration(1000, 0); got != 0 {
		t.Fatalf("zero factor: got %d", got)
	}
	if got := scaleDuration(-5, 2); got != 0 {
		t.Fatalf("negative input: got %d", got)
	}
}
