package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const sleepBaseMillis = 6000

// sleepBlockers lists nearby hostiles close enough to deny the bed. Hostiles
// with no usable position are counted; guessing them far away gets NPCs
// killed in their sleep.
func sleepBlockers(ctx *task.Context) []string {
	var out []string
	for _, e := range ctx.Hostiles() {
		kind := e.Type
		if kind == "" {
			kind = e.Name
		}
		if !catalog.MobBlocksSleep(kind) {
			continue
		}
		near := true
		switch {
		case ctx.Position != nil && e.Position != nil:
			dx := abs(e.Position.X - ctx.Position.X)
			dy := abs(e.Position.Y - ctx.Position.Y)
			dz := abs(e.Position.Z - ctx.Position.Z)
			near = dx <= catalog.MobProximityHorizontal &&
				dz <= catalog.MobProximityHorizontal &&
				dy <= catalog.MobProximityVertical
		case e.Distance != nil:
			near = *e.Distance <= catalog.MobProximityHorizontal
		}
		if near {
			out = append(out, kind)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func planSleep(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	dim := ctx.DimensionName()
	if !catalog.BedAllowedIn(dim) {
		p := plan.New(plan.Plan{
			Task:    t,
			Summary: "Sleep through the night",
			Steps: []plan.Step{{
				Title: "Keep the bed packed", Type: plan.StepSafety, Command: "abort",
				Description: fmt.Sprintf("Do not place a bed in the %s; it detonates on use.", dim),
			}},
			Warnings: []string{fmt.Sprintf("a bed used in the %s explodes with power %d", dim, catalog.BedExplosionPower)},
			Metadata: map[string]any{
				"danger":         true,
				"explosionPower": catalog.BedExplosionPower,
				"dimension":      dim,
			},
		})
		return plan.Blocked(p, "beds explode in the "+dim,
			"return to the overworld before sleeping, or wait the night out")
	}

	if ctx.TimeOfDay != nil && !catalog.WithinSleepWindow(*ctx.TimeOfDay) && !ctx.IsThunderstorm {
		p := plan.New(plan.Plan{
			Task:    t,
			Summary: "Sleep through the night",
			Steps: []plan.Step{{
				Title: "Wait for dusk", Type: plan.StepPlanning, Command: "wait",
				Description: fmt.Sprintf("Time is %d; beds work from tick %d to %d.",
					*ctx.TimeOfDay, catalog.SleepWindowStart, catalog.SleepWindowEnd),
			}},
			Metadata: map[string]any{"timeOfDay": *ctx.TimeOfDay},
		})
		return plan.Blocked(p, "it is not night yet",
			fmt.Sprintf("wait until tick %d, or for a thunderstorm", catalog.SleepWindowStart))
	}

	bedName := ""
	for _, it := range items {
		if catalog.IsBed(it.Name) {
			bedName = task.NormalizeItemName(it.Name)
			break
		}
	}
	bedNearby := meta.BoolOr(false, "bed_nearby") || t.Target != nil
	if bedName == "" && !bedNearby {
		p := plan.New(plan.Plan{Task: t, Summary: "Sleep through the night"})
		return plan.Blocked(p, "no bed in the inventory or nearby",
			"craft a bed from 3 wool and 3 planks, or head back to base")
	}

	if blockers := sleepBlockers(ctx); len(blockers) > 0 {
		p := plan.New(plan.Plan{
			Task:    t,
			Summary: "Sleep through the night",
			Steps: []plan.Step{{
				Title: "Clear the area", Type: plan.StepSafety, Command: "clear_hostiles",
				Description: "Deal with " + strings.Join(blockers, ", ") + " before trying the bed again.",
			}},
			Metadata: map[string]any{"blockers": blockers},
		})
		return plan.Blocked(p, "monsters nearby keep the bed unusable: "+strings.Join(blockers, ", "),
			"clear the hostiles or light the area above level 8, then retry")
	}

	steps := make([]plan.Step, 0, 5)
	if step, ok := travelStep(ctx, t.Target, "reach the bed"); ok {
		steps = append(steps, step)
	}
	if bedName != "" {
		steps = append(steps, plan.Step{
			Title: "Place the " + bedName, Type: plan.StepPreparation, Command: "place_bed",
			Description: fmt.Sprintf("Pick solid ground with %d clear blocks above.", catalog.BedClearanceAbove),
			Metadata:    map[string]any{"bed": bedName},
		})
	}
	steps = append(steps, plan.Step{
		Title: "Sweep for monsters", Type: plan.StepSafety, Command: "check_surroundings",
		Description: fmt.Sprintf("Confirm no hostiles within %d blocks around or %d above and below.",
			catalog.MobProximityHorizontal, catalog.MobProximityVertical),
	})
	steps = append(steps, plan.Step{
		Title: "Sleep", Type: plan.StepAction, Command: "sleep",
		Description: "Sleep until morning; the spawn point moves to this bed.",
		Metadata:    map[string]any{"until": "morning", "spawnSet": true},
	})
	if meta.BoolOr(false, "collect_bed", "pick_up_bed") {
		steps = append(steps, plan.Step{
			Title: "Collect the bed", Type: plan.StepStorage, Command: "collect_bed",
			Description: "Break and pocket the bed after waking.",
		})
	}

	duration := sleepBaseMillis
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	resources := []string{}
	if bedName != "" {
		resources = append(resources, bedName)
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           "Sleep through the night",
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             environmentRisks(ctx),
		Metadata: map[string]any{
			"window": []int{catalog.SleepWindowStart, catalog.SleepWindowEnd},
		},
		Outcome: map[string]any{"slept": true, "spawnPointSet": true},
	})
	p.PreferredTraits = []string{"homebody", "careful"}
	return p
}
