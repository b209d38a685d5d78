package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	defaultExploreRadius  = 256
	exploreMillisPerBlock = 120
)

// rarityFactor stretches search time for harder-to-find structures.
func rarityFactor(rarity string) float64 {
	switch rarity {
	case "uncommon":
		return 1.4
	case "rare":
		return 2.0
	case "very_rare":
		return 3.0
	case "legendary":
		return 4.0
	default:
		return 1.0
	}
}

func planExplore(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	structureName := meta.StringOr("", "structure", "find", "locate")
	var structure catalog.Structure
	haveStructure := false
	if structureName != "" {
		structure, haveStructure = catalog.StructureByName(structureName)
	} else if t.Details != "" {
		structure, haveStructure = catalog.StructureByName(t.Details)
	}

	biomeName := meta.StringOr("", "biome", "terrain")
	biome, haveBiome := catalog.BiomeByName(biomeName)

	radius := meta.IntOr(defaultExploreRadius, "radius", "range", "distance")
	if radius < 1 {
		radius = defaultExploreRadius
	}

	nav := catalog.NavStrategies["spiral"]
	if haveStructure {
		nav = catalog.SuggestNavStrategy(structure.Name)
	}
	if override := meta.StringOr("", "nav_strategy", "pattern", "route"); override != "" {
		if s, ok := catalog.NavStrategyByName(override); ok {
			nav = s
		}
	}

	gear := []string{"torch", "food"}
	if haveStructure {
		for _, p := range structure.Preparations {
			gear = append(gear, task.NormalizeItemName(p))
		}
	}
	gear = append(gear, nav.Requirements...)

	steps := make([]plan.Step, 0, 8)
	steps = append(steps, plan.Step{
		Title: "Gear up", Type: plan.StepPreparation,
		Description: "Pack " + strings.Join(gear, ", ") + " for the trip.",
		Metadata:    map[string]any{"missing": missingGear(items, gear)},
	})
	steps = append(steps, plan.Step{
		Title: "Select route", Type: plan.StepPlanning,
		Description: fmt.Sprintf("Use the %s pattern: %s.", nav.Name, nav.Description),
		Metadata:    map[string]any{"navStrategy": nav.Name},
	})
	if step, ok := travelStep(ctx, t.Target, "start the search"); ok {
		steps = append(steps, step)
	}

	subject := "new terrain"
	switch {
	case haveStructure:
		subject = structure.Name
	case haveBiome:
		subject = biome.Name + " biome"
	case biomeName != "":
		subject = biomeName
	}
	steps = append(steps, plan.Step{
		Title: "Sweep the area", Type: plan.StepAction,
		Description: fmt.Sprintf("Search for %s within %d blocks, logging landmarks along the way.", subject, radius),
		Metadata:    map[string]any{"radius": radius},
	})
	if haveStructure && len(structure.VisualCues) > 0 {
		steps = append(steps, plan.Step{
			Title: "Watch for cues", Type: plan.StepAction,
			Description: "Look for " + strings.Join(structure.VisualCues, "; ") + ".",
		})
	}
	if haveBiome && len(biome.OptimalResources) > 0 {
		steps = append(steps, plan.Step{
			Title: "Note resources", Type: plan.StepAction,
			Description: "Mark deposits of " + strings.Join(biome.OptimalResources, ", ") + " for later trips.",
		})
	}
	if haveStructure && len(structure.Dangers) > 0 {
		steps = append(steps, plan.Step{
			Title: "Stay alert", Type: plan.StepSafety,
			Description: "Expect " + strings.Join(structure.Dangers, "; ") + ".",
		})
	}
	report := "Record coordinates of everything found."
	if haveStructure && len(structure.Loot) > 0 {
		report = fmt.Sprintf("Record the %s location and inventory its loot: %s.",
			structure.Name, strings.Join(structure.Loot, ", "))
	}
	steps = append(steps, plan.Step{
		Title: "Report findings", Type: plan.StepReport, Description: report,
	})

	duration := radius * exploreMillisPerBlock
	if haveStructure {
		duration = scaleDuration(duration, rarityFactor(structure.Rarity))
	}
	if nav.Efficiency > 0 {
		duration = scaleDuration(duration, 1/nav.Efficiency)
	}
	duration = scaleDuration(duration, terrainMultiplier(ctx))
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	risks := make([]string, 0, 4)
	if haveStructure {
		risks = append(risks, structure.Dangers...)
		if structure.Dimension != "" && structure.Dimension != "overworld" {
			risks = append(risks, "travel through the "+structure.Dimension)
		}
	}
	if haveBiome {
		risks = append(risks, biome.Hazards...)
	}
	risks = append(risks, environmentRisks(ctx)...)

	planMeta := map[string]any{
		"navStrategy": nav.Name,
		"radius":      radius,
	}
	if haveStructure {
		planMeta["structure"] = structure.Name
		planMeta["rarity"] = structure.Rarity
	}
	if haveBiome {
		planMeta["biome"] = biome.Name
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           "Explore for " + subject,
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         gear,
		Risks:             risks,
		Metadata:          planMeta,
	})
	p.PreferredTraits = []string{"explorer", "curious", "brave"}
	return p
}
