package planner

import (
	"fmt"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	poweredRailInterval   = 8
	minecartMillisPerRail = 300
	minecartRideMillis    = 125
	minecartBaseMillis    = 2500
)

func planMinecart(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	distance := meta.IntOr(0, "distance", "length")
	if distance == 0 {
		distance = travelDistance(ctx, t.Target)
	}
	if distance < 1 {
		distance = 1
	}

	cart := "minecart"
	switch meta.StringOr("", "cargo", "cart") {
	case "chest", "freight", "items":
		cart = "chest_minecart"
	case "hopper":
		cart = "hopper_minecart"
	}

	trackExists := meta.BoolOr(false, "track_exists", "existing_track")
	rails := distance
	powered := (distance + poweredRailInterval - 1) / poweredRailInterval

	steps := make([]plan.Step, 0, 8)
	steps = append(steps, plan.Step{
		Title: "Survey the route", Type: plan.StepPlanning, Command: "survey",
		Description: fmt.Sprintf("Walk the %d block line to %s; note climbs, gaps, and crossings.",
			distance, task.DescribeTarget(t.Target)),
		Metadata: map[string]any{"distance": distance},
	})
	duration := minecartBaseMillis
	resources := []string{cart}
	if !trackExists {
		steps = append(steps, plan.Step{
			Title: "Stock rails", Type: plan.StepPreparation, Command: "restock",
			Description: fmt.Sprintf("Carry %d rail, %d powered_rail, and %d redstone_torch.",
				rails, powered, powered),
			Metadata: map[string]any{
				"missing": missingGear(items, []string{"rail", "powered_rail", "redstone_torch", cart}),
			},
		})
		steps = append(steps, plan.Step{
			Title: "Lay the track", Type: plan.StepConstruction, Command: "place_blocks",
			Description: fmt.Sprintf("Lay rail along the line with a powered_rail every %d blocks, each on a redstone_torch block.",
				poweredRailInterval),
			Metadata: map[string]any{"rails": rails, "powered": powered},
		})
		duration += rails * minecartMillisPerRail
		resources = append(resources, "rail", "powered_rail", "redstone_torch")
	}
	steps = append(steps, plan.Step{
		Title: "Set the " + cart, Type: plan.StepPreparation, Command: "place_minecart",
		Description: "Place the " + cart + " on the starting rail.",
		Metadata:    map[string]any{"cart": cart},
	})
	if cart == "minecart" {
		steps = append(steps, plan.Step{
			Title: "Ride to the end", Type: plan.StepMovement, Command: "ride_minecart",
			Description: "Board and ride; lean forward on the climbs.",
		})
	} else {
		steps = append(steps, plan.Step{
			Title: "Load and send", Type: plan.StepAction, Command: "send_minecart",
			Description: "Load the cargo and shove the cart onto the powered section.",
		})
	}
	steps = append(steps, plan.Step{
		Title: "Recover the cart", Type: plan.StepStorage, Command: "collect_drops",
		Description: "Break the " + cart + " at the terminus and pocket it.",
	})
	duration += distance * minecartRideMillis

	risks := []string{"derailment at unpowered climbs"}
	risks = append(risks, environmentRisks(ctx)...)

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           fmt.Sprintf("Run a %s line %d blocks", cart, distance),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             risks,
		Metadata: map[string]any{
			"cart":     cart,
			"distance": distance,
			"rails":    rails,
			"powered":  powered,
		},
	})
	p.PreferredTraits = []string{"engineer", "patient"}
	return p
}
