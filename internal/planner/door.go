package planner

import (
	"strings"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	doorBaseMillis      = 1500
	doorActivatorMillis = 2000
)

func planDoor(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()

	door := task.NormalizeItemName(meta.StringOr("", "door", "block"))
	if door == task.UnspecifiedItem || door == "" {
		if t.Target != nil && t.Target.Name != "" {
			door = task.NormalizeItemName(t.Target.Name)
		}
	}
	doorish := strings.Contains(door, "door") || strings.Contains(door, "gate")
	if door == task.UnspecifiedItem || door == "" || !doorish {
		door = "oak_door"
	}

	action := "open"
	switch strings.ToLower(meta.StringOr("", "door_action", "operation", "mode")) {
	case "close", "shut":
		action = "close"
	case "pass", "pass_through", "through", "enter", "exit":
		action = "pass_through"
	}
	iron := strings.Contains(door, "iron")
	closeBehind := meta.BoolOr(true, "close_behind")

	steps := make([]plan.Step, 0, 6)
	if step, ok := travelStep(ctx, t.Target, "reach the "+door); ok {
		steps = append(steps, step)
	}
	steps = append(steps, plan.Step{
		Title: "Inspect the " + door, Type: plan.StepPlanning, Command: "inspect",
		Description: "Check which side the " + door + " hinges on and where it swings.",
	})

	duration := doorBaseMillis
	resources := []string{}
	if iron {
		steps = append(steps, plan.Step{
			Title: "Rig an opener", Type: plan.StepPreparation, Command: "place_activator",
			Description: "Iron doors ignore hands; place a button or lever beside the frame.",
			Metadata:    map[string]any{"activator": "stone_button"},
		})
		resources = append(resources, "stone_button")
		duration += doorActivatorMillis
	}
	if action != "close" {
		steps = append(steps, plan.Step{
			Title: "Open the " + door, Type: plan.StepAction, Command: "open_door",
			Description: "Open the " + door + ".",
		})
	}
	if action == "pass_through" {
		steps = append(steps, plan.Step{
			Title: "Step through", Type: plan.StepMovement, Command: "pass_through",
			Description: "Walk through the frame and clear the swing path.",
		})
	}
	if action == "close" || (closeBehind && action == "pass_through") {
		steps = append(steps, plan.Step{
			Title: "Close the " + door, Type: plan.StepAction, Command: "close_door",
			Description: "Close the " + door + " so nothing wanders in.",
		})
	}
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	summary := "Open the " + door
	switch action {
	case "close":
		summary = "Close the " + door
	case "pass_through":
		summary = "Pass through the " + door
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           summary,
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             environmentRisks(ctx),
		Metadata:          map[string]any{"door": door, "doorAction": action, "iron": iron},
		Outcome:           map[string]any{"door": door, "doorAction": action},
	})
	p.PreferredTraits = []string{"polite", "careful"}
	return p
}
