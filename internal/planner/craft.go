package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	craftBaseDuration     = 2000
	craftMillisPerBatch   = 1500
	craftUnknownPerItem   = 500
	craftStationSetupCost = 3000
)

func planCraft(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	output := task.NormalizeItemName(meta.StringOr("", "item", "output", "craft", "recipe"))
	if output == task.UnspecifiedItem || output == "" {
		if d := mineBlockFromDetails(t.Details); d != "" {
			output = d
		}
	}
	if output == task.UnspecifiedItem || output == "" {
		return plan.Failed(t, "Craft items",
			"no item named to craft",
			"name the output in metadata.item, e.g. {\"item\": \"torch\"}")
	}

	have := task.CountItems(items, output)
	count := stockTarget(
		meta.IntOr(1, "base"),
		have,
		meta.IntOr(0, "min_stock", "minimum"),
		meta.IntOr(0, "desired_stock", "desired"),
		meta.IntOr(0, "quantity", "amount", "count", "exact"),
		meta.IntOr(0, "buffer"),
	)
	if count < 1 {
		count = 1
	}

	recipe, haveRecipe := catalog.RecipeFor(output)
	batches := 0
	var ingredients []catalog.RecipeItem
	if haveRecipe {
		batches = catalog.CraftBatches(recipe, count)
		ingredients = catalog.IngredientsFor(recipe, batches)
	}

	steps := make([]plan.Step, 0, 6)
	steps = append(steps, plan.Step{
		Title: "Check stock", Type: plan.StepPlanning,
		Description: fmt.Sprintf("Holding %d %s; crafting %d more.", have, output, count),
		Metadata:    map[string]any{"have": have, "target": count},
	})
	if haveRecipe {
		var short []string
		for _, ing := range ingredients {
			if missing := ing.Count - task.CountItems(items, ing.Name); missing > 0 {
				short = append(short, fmt.Sprintf("%d %s", missing, ing.Name))
			}
		}
		need := make([]string, len(ingredients))
		for i, ing := range ingredients {
			need[i] = fmt.Sprintf("%d %s", ing.Count, ing.Name)
		}
		desc := "Ingredients on hand: " + strings.Join(need, ", ") + "."
		if len(short) > 0 {
			desc = "Collect " + strings.Join(short, ", ") + " to cover the run."
		}
		steps = append(steps, plan.Step{
			Title: "Gather ingredients", Type: plan.StepPreparation,
			Description: desc,
			Metadata:    map[string]any{"short": short},
		})
		if recipe.Station != "" && !task.HasItem(items, recipe.Station, 1) {
			steps = append(steps, plan.Step{
				Title: "Set up " + recipe.Station, Type: plan.StepPreparation,
				Description: "Place or reach a " + recipe.Station + " before crafting.",
			})
		}
	} else {
		steps = append(steps, plan.Step{
			Title: "Work out the recipe", Type: plan.StepPlanning,
			Description: "No recipe on file for " + output + "; consult the crafting guide before starting.",
		})
	}
	craftDesc := fmt.Sprintf("Craft %d %s.", count, output)
	if haveRecipe && batches > 0 {
		craftDesc = fmt.Sprintf("Craft %d %s in %d batches of %d.", count, output, batches, recipe.Count)
	}
	steps = append(steps, plan.Step{
		Title: "Craft " + output, Type: plan.StepProcessing,
		Description: craftDesc,
		Metadata:    map[string]any{"count": count, "batches": batches},
	})
	steps = append(steps, plan.Step{
		Title: "Verify output", Type: plan.StepReport,
		Description: fmt.Sprintf("Confirm %d %s landed in the inventory.", count, output),
	})

	duration := craftBaseDuration
	if haveRecipe {
		duration += batches * craftMillisPerBatch
		if recipe.Station != "" && !task.HasItem(items, recipe.Station, 1) {
			duration += craftStationSetupCost
		}
	} else {
		duration += count * craftUnknownPerItem
	}

	resources := make([]string, 0, len(ingredients)+2)
	for _, ing := range ingredients {
		resources = append(resources, ing.Name)
	}
	if haveRecipe && recipe.Station != "" {
		resources = append(resources, recipe.Station)
	}

	planMeta := map[string]any{"item": output, "count": count}
	if haveRecipe {
		planMeta["batches"] = batches
		planMeta["ingredients"] = ingredients
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           fmt.Sprintf("Craft %d %s", count, output),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             environmentRisks(ctx),
		Metadata:          planMeta,
		Outcome:           map[string]any{"item": output, "itemsCrafted": count},
	})
	p.PreferredTraits = []string{"crafter", "industrious", "patient"}
	return p
}
