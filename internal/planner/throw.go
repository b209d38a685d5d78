package planner

import (
	"fmt"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	throwBaseMillis      = 1500
	defaultThrowDistance = 20
)

func planThrow(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	name := meta.StringOr("", "item", "throwable", "projectile")
	if name == "" {
		name = t.Details
	}
	throwable, ok := catalog.ThrowableByName(name)
	if !ok {
		return plan.Failed(t, "Throw a projectile",
			"nothing throwable named",
			"name one in metadata.item: ender_pearl, snowball, splash_potion, trident")
	}

	distance := meta.IntOr(0, "distance", "range")
	if distance == 0 {
		distance = travelDistance(ctx, t.Target)
	}
	if distance <= 0 {
		distance = defaultThrowDistance
	}
	warnings := []string{}
	if distance > catalog.MaxThrowRange {
		warnings = append(warnings, fmt.Sprintf("target is %d blocks out; throws top out at %d, close the gap first",
			distance, catalog.MaxThrowRange))
		distance = catalog.MaxThrowRange
	}

	steps := make([]plan.Step, 0, 6)
	steps = append(steps, plan.Step{
		Title: "Equip " + throwable.Name, Type: plan.StepPreparation, Command: "equip",
		Description: "Put the " + throwable.Name + " in the main hand.",
		Metadata:    map[string]any{"item": throwable.Name, "missing": missingGear(items, []string{throwable.Name})},
	})
	aim := fmt.Sprintf("The %s flies straight; put the crosshair on the mark.", throwable.Name)
	if throwable.Trajectory == "arc" {
		aim = fmt.Sprintf("The %s arcs; aim above the mark, more the farther it is.", throwable.Name)
	}
	steps = append(steps, plan.Step{
		Title: "Aim", Type: plan.StepPlanning, Command: "aim",
		Description: aim,
		Metadata:    map[string]any{"trajectory": throwable.Trajectory, "distance": distance},
	})
	steps = append(steps, plan.Step{
		Title: "Throw", Type: plan.StepAction, Command: "throw",
		Description: fmt.Sprintf("Release at %s, %d blocks out.", task.DescribeTarget(t.Target), distance),
		Metadata:    map[string]any{"item": throwable.Name, "distance": distance},
	})
	if throwable.FallDamage > 0 {
		steps = append(steps, plan.Step{
			Title: "Brace for the landing", Type: plan.StepSafety, Command: "brace",
			Description: fmt.Sprintf("Teleport arrival costs %d damage; never pearl over lava or the void.", throwable.FallDamage),
		})
		warnings = append(warnings, fmt.Sprintf("%s arrival deals %d fall damage", throwable.Name, throwable.FallDamage))
	}
	if !throwable.ConsumesOnThrow {
		steps = append(steps, plan.Step{
			Title: "Recover the " + throwable.Name, Type: plan.StepAction, Command: "collect_drops",
			Description: "Walk to where it landed and pick it back up unless loyalty returns it.",
		})
	}

	notes := []string{}
	if throwable.SplashRadius > 0 {
		notes = append(notes, fmt.Sprintf("effect covers about %.1f blocks around the impact", throwable.SplashRadius))
	}
	if throwable.Note != "" {
		notes = append(notes, throwable.Note)
	}

	duration := throwBaseMillis + int(throwable.Cooldown*1000)

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           "Throw " + throwable.Name,
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         []string{throwable.Name},
		Notes:             notes,
		Warnings:          warnings,
		Metadata: map[string]any{
			"item":       throwable.Name,
			"distance":   distance,
			"trajectory": throwable.Trajectory,
		},
		Outcome: map[string]any{
			"item":     throwable.Name,
			"distance": distance,
			"consumed": throwable.ConsumesOnThrow,
		},
	})
	p.PreferredTraits = []string{"precise", "agile"}
	return p
}
