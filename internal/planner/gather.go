package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	gatherBaseDuration  = 3000
	gatherMillisPerItem = 600
	defaultGatherAmount = 16
)

// gatherTool picks the harvesting tool a resource calls for. Bare hands are
// fine for crops and plants.
func gatherTool(item string) string {
	switch {
	case strings.Contains(item, "log") || strings.Contains(item, "wood") || strings.Contains(item, "plank"):
		return "iron_axe"
	case strings.Contains(item, "obsidian"):
		return "diamond_pickaxe"
	case strings.Contains(item, "ore") || strings.Contains(item, "stone") ||
		strings.Contains(item, "deepslate") || strings.Contains(item, "cobble"):
		return "iron_pickaxe"
	case strings.Contains(item, "sand") || strings.Contains(item, "dirt") ||
		strings.Contains(item, "gravel") || strings.Contains(item, "clay") ||
		strings.Contains(item, "snow"):
		return "iron_shovel"
	case strings.Contains(item, "wool") || strings.Contains(item, "leaves") || strings.Contains(item, "vine"):
		return "shears"
	default:
		return ""
	}
}

func planGather(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	item := task.NormalizeItemName(meta.StringOr("", "item", "resource", "block", "material"))
	if item == task.UnspecifiedItem || item == "" {
		if d := mineBlockFromDetails(t.Details); d != "" {
			item = d
		}
	}
	if item == task.UnspecifiedItem || item == "" {
		return plan.Failed(t, "Gather resources",
			"no resource named to gather",
			"name the item in metadata.item, e.g. {\"item\": \"oak_log\"}")
	}

	quantity := meta.IntOr(defaultGatherAmount, "quantity", "amount", "count")
	if quantity < 1 {
		quantity = defaultGatherAmount
	}
	tool := gatherTool(item)

	steps := make([]plan.Step, 0, 6)
	if tool != "" {
		steps = append(steps, plan.Step{
			Title: "Ready " + tool, Type: plan.StepPreparation,
			Description: "Check the " + tool + " and its durability before heading out.",
			Metadata:    map[string]any{"missing": missingGear(items, []string{tool})},
		})
	}

	locate := fmt.Sprintf("Find a source of %s near %s.", item, task.DescribeTarget(t.Target))
	if band, ok := catalog.BestBandFor(item); ok {
		locate = fmt.Sprintf("Dig to the %s band (Y=%d to Y=%d) where %s occurs.",
			band.Name, band.MinY, band.MaxY, item)
	} else if biomes := catalog.BiomesWithResource(item); len(biomes) > 0 {
		locate = fmt.Sprintf("Head for %s terrain, the best source of %s.",
			strings.Join(biomes, " or "), item)
	}
	steps = append(steps, plan.Step{
		Title: "Locate source", Type: plan.StepPlanning, Description: locate,
	})
	if step, ok := travelStep(ctx, t.Target, "reach the source"); ok {
		steps = append(steps, step)
	}
	steps = append(steps, plan.Step{
		Title: "Collect " + item, Type: plan.StepAction,
		Description: fmt.Sprintf("Gather %d %s, replanting or reseeding where that keeps the source alive.", quantity, item),
		Metadata:    map[string]any{"item": item, "quantity": quantity, "tool": tool},
	})
	if store := meta.StringOr("", "deposit", "storage", "chest"); store != "" {
		steps = append(steps, plan.Step{
			Title: "Store the haul", Type: plan.StepStorage,
			Description: "Deposit the " + item + " in " + store + ".",
		})
	}
	steps = append(steps, plan.Step{
		Title: "Tally the haul", Type: plan.StepReport,
		Description: fmt.Sprintf("Confirm %d %s collected and report shortfalls.", quantity, item),
	})

	duration := gatherBaseDuration + quantity*gatherMillisPerItem
	duration = scaleDuration(duration, terrainMultiplier(ctx))
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	resources := []string{item}
	if tool != "" {
		resources = append([]string{tool}, resources...)
	}
	risks := environmentRisks(ctx)
	if band, ok := catalog.BestBandFor(item); ok {
		for _, h := range band.Hazards {
			risks = append(risks, hazardLine(h))
		}
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           fmt.Sprintf("Gather %d %s", quantity, item),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             risks,
		Metadata:          map[string]any{"item": item, "quantity": quantity, "tool": tool},
	})
	p.PreferredTraits = []string{"gatherer", "diligent", "patient"}
	return p
}
