package planner

import (
	"fmt"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const scaffoldMillisPerBlock = 350

func planScaffolding(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	pattern, ok := catalog.ScaffoldPatternByName(meta.StringOr("", "pattern", "shape", "structure"))
	if !ok {
		pattern, _ = catalog.ScaffoldPatternByName("tower")
	}
	dims := catalog.Dimensions{
		Length: meta.IntOr(0, "length", "depth"),
		Width:  meta.IntOr(0, "width"),
		Height: meta.IntOr(0, "height"),
	}
	needed := pattern.BlocksNeeded(dims)
	have := task.CountItems(items, "scaffolding")
	deficit := needed - have

	if deficit > 0 {
		batches, bambooNeed, stringNeed := catalog.ScaffoldCraftBatches(deficit)
		haveBamboo := task.CountItems(items, "bamboo")
		haveString := task.CountItems(items, "string")
		if haveBamboo < bambooNeed || haveString < stringNeed {
			p := plan.New(plan.Plan{
				Task:    t,
				Summary: fmt.Sprintf("Raise a scaffold %s", pattern.Name),
				Steps: []plan.Step{{
					Title: "Count the stock", Type: plan.StepPlanning, Command: "check_stock",
					Description: fmt.Sprintf("Need %d scaffolding, holding %d; crafting the rest takes %d bamboo and %d string.",
						needed, have, bambooNeed, stringNeed),
					Metadata: map[string]any{"needed": needed, "have": have, "deficit": deficit},
				}},
				Metadata: map[string]any{"pattern": pattern.Name, "deficit": deficit},
			})
			return plan.Blocked(p,
				fmt.Sprintf("short %d scaffolding and missing the makings", deficit),
				fmt.Sprintf("gather %d bamboo and %d string, then craft %d batches", bambooNeed, stringNeed, batches))
		}
	}

	steps := make([]plan.Step, 0, 7)
	steps = append(steps, plan.Step{
		Title: "Pick the pattern", Type: plan.StepPlanning, Command: "design",
		Description: fmt.Sprintf("Use the %s pattern: %s.", pattern.Name, pattern.Description),
		Metadata:    map[string]any{"pattern": pattern.Name, "blocks": needed},
	})
	if deficit > 0 {
		batches, bambooNeed, stringNeed := catalog.ScaffoldCraftBatches(deficit)
		steps = append(steps, plan.Step{
			Title: "Craft the shortfall", Type: plan.StepProcessing, Command: "craft",
			Description: fmt.Sprintf("Craft %d batches from %d bamboo and %d string for %d more scaffolding.",
				batches, bambooNeed, stringNeed, batches*catalog.ScaffoldCraftYield),
			Metadata: map[string]any{"batches": batches, "bamboo": bambooNeed, "string": stringNeed},
		})
	}
	if step, ok := travelStep(ctx, t.Target, "reach the work face"); ok {
		steps = append(steps, step)
	}
	steps = append(steps, plan.Step{
		Title: "Raise the scaffold", Type: plan.StepConstruction, Command: "place_blocks",
		Description: fmt.Sprintf("Place %d scaffolding in the %s shape, feeding from the base column.", needed, pattern.Name),
		Metadata:    map[string]any{"blocks": needed},
	})
	steps = append(steps, plan.Step{
		Title: "Check the footing", Type: plan.StepSafety, Command: "inspect",
		Description: "Scaffolding drops past six blocks of overhang; keep every run anchored.",
	})
	steps = append(steps, plan.Step{
		Title: "Strike it after", Type: plan.StepStorage, Command: "collect_drops",
		Description: "Break the base block when done; the whole frame pops off into hand.",
	})

	duration := needed * scaffoldMillisPerBlock
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	risks := []string{}
	if pattern.Risk != "" {
		risks = append(risks, pattern.Risk)
	}
	if dims.Height >= 4 {
		risks = append(risks, hazardLine("fall"))
	}
	risks = append(risks, environmentRisks(ctx)...)

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           fmt.Sprintf("Raise a scaffold %s", pattern.Name),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         []string{"scaffolding"},
		Risks:             risks,
		Metadata: map[string]any{
			"pattern": pattern.Name,
			"blocks":  needed,
			"deficit": max(deficit, 0),
		},
	})
	p.PreferredTraits = []string{"builder", "careful"}
	return p
}
