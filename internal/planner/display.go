package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	displayBaseMillis    = 2000
	displayMillisPerItem = 700
)

func planDisplay(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	inv := ctx.Items()

	show := meta.Strings("items", "item", "display", "showcase")
	for i, s := range show {
		show[i] = task.NormalizeItemName(s)
	}
	if len(show) == 0 {
		if d := mineBlockFromDetails(t.Details); d != "" {
			show = []string{d}
		}
	}
	if len(show) == 0 {
		return plan.Failed(t, "Set up a display",
			"nothing named to display",
			"list the items in metadata.items")
	}

	medium := "item_frame"
	switch meta.StringOr("", "medium", "mount", "on") {
	case "glow", "glow_frame", "glow_item_frame":
		medium = "glow_item_frame"
	case "armor_stand", "stand":
		medium = "armor_stand"
	case "lectern":
		medium = "lectern"
	}
	layout := meta.StringOr("row", "layout", "arrangement")
	signText := meta.StringOr("", "text", "sign", "label")

	steps := make([]plan.Step, 0, 8)
	steps = append(steps, plan.Step{
		Title: "Design the layout", Type: plan.StepPlanning, Command: "design",
		Description: fmt.Sprintf("Arrange %d pieces in a %s at eye height.", len(show), layout),
		Metadata:    map[string]any{"layout": layout, "count": len(show)},
	})
	gear := make([]string, 0, len(show)+2)
	for range show {
		gear = append(gear, medium)
	}
	gear = append(gear, "oak_planks")
	steps = append(steps, plan.Step{
		Title: "Stock mounts", Type: plan.StepPreparation, Command: "restock",
		Description: fmt.Sprintf("Bring %d %s and backing planks.", len(show), medium),
		Metadata:    map[string]any{"missing": missingGear(inv, []string{medium, "oak_planks"})},
	})
	if step, ok := travelStep(ctx, t.Target, "reach the display wall"); ok {
		steps = append(steps, step)
	}
	steps = append(steps, plan.Step{
		Title: "Mount the " + medium + "s", Type: plan.StepConstruction, Command: "place_blocks",
		Description: fmt.Sprintf("Back the wall with planks and mount %d %s flush.", len(show), medium),
	})
	steps = append(steps, plan.Step{
		Title: "Place the items", Type: plan.StepAction, Command: "insert_items",
		Description: "Set " + strings.Join(show, ", ") + " one per mount, spares pocketed.",
		Metadata:    map[string]any{"items": show},
	})
	if medium == "item_frame" || medium == "glow_item_frame" {
		steps = append(steps, plan.Step{
			Title: "Square the rotation", Type: plan.StepAction, Command: "rotate",
			Description: "Click each frame until every item sits upright.",
		})
	}
	if signText != "" {
		steps = append(steps, plan.Step{
			Title: "Write the sign", Type: plan.StepAction, Command: "write_sign",
			Description: fmt.Sprintf("Label the display: %q.", signText),
			Metadata:    map[string]any{"text": signText},
		})
		gear = append(gear, "oak_sign")
	}

	duration := displayBaseMillis + len(show)*displayMillisPerItem
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           fmt.Sprintf("Display %d items on %ss", len(show), medium),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         append(gear, show...),
		Risks:             environmentRisks(ctx),
		Metadata: map[string]any{
			"medium": medium,
			"layout": layout,
			"items":  show,
		},
		Outcome: map[string]any{"displayed": len(show), "medium": medium},
	})
	p.PreferredTraits = []string{"creative", "organized", "proud"}
	return p
}
