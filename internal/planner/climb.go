package planner

import (
	"fmt"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	climbMillisPerBlock = 400
	defaultClimbHeight  = 10
)

// climbMethod picks how to get up: an explicit choice wins, tall climbs get
// scaffolding, ladders cover the middle, short hops just pillar.
func climbMethod(override string, height int, items []task.Item) string {
	switch override {
	case "ladder", "scaffolding", "pillar", "stairs", "vines":
		return override
	}
	if height >= scaffoldFromHeight {
		return "scaffolding"
	}
	if task.HasItem(items, "ladder", height) {
		return "ladder"
	}
	return "pillar"
}

func planClimb(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	height := meta.IntOr(0, "height", "levels", "blocks")
	descend := meta.BoolOr(false, "descend", "down")
	if height == 0 && ctx.Position != nil && t.Target.HasPoint() {
		if p, ok := t.Target.Point(); ok {
			height = p.Y - ctx.Position.Y
		}
	}
	if height < 0 {
		descend = true
		height = -height
	}
	if height == 0 {
		height = defaultClimbHeight
	}

	method := climbMethod(meta.StringOr("", "method", "via", "using"), height, items)

	material := ""
	count := 0
	switch method {
	case "ladder":
		material, count = "ladder", height
	case "scaffolding":
		pattern, _ := catalog.ScaffoldPatternByName("tower")
		material, count = "scaffolding", pattern.BlocksNeeded(catalog.Dimensions{Height: height})
	case "pillar":
		material, count = "cobblestone", height
	case "vines":
		material, count = "vine", height
	}

	steps := make([]plan.Step, 0, 6)
	if step, ok := travelStep(ctx, t.Target, "reach the base of the climb"); ok {
		steps = append(steps, step)
	}
	verb := "ascent"
	if descend {
		verb = "descent"
	}
	steps = append(steps, plan.Step{
		Title: "Size the climb", Type: plan.StepPlanning, Command: "measure",
		Description: fmt.Sprintf("A %d block %s via %s.", height, verb, method),
		Metadata:    map[string]any{"height": height, "method": method},
	})
	if material != "" && !descend {
		steps = append(steps, plan.Step{
			Title: "Stock " + material, Type: plan.StepPreparation, Command: "restock",
			Description: fmt.Sprintf("Carry %d %s plus a few spares.", count, material),
			Metadata:    map[string]any{"item": material, "count": count, "missing": missingGear(items, []string{material})},
		})
	}
	if descend {
		steps = append(steps, plan.Step{
			Title: "Descend", Type: plan.StepMovement, Command: "descend",
			Description: fmt.Sprintf("Climb down %d blocks; hug the %s and never drop more than three.", height, method),
		})
		if height >= 4 {
			steps = append(steps, plan.Step{
				Title: "Keep a water bucket ready", Type: plan.StepSafety, Command: "equip",
				Description: "A bucket placed at the last second turns a lethal drop into a splash.",
				Metadata:    map[string]any{"item": "water_bucket"},
			})
		}
	} else {
		build := fmt.Sprintf("Place %s as you rise; three-quarters surround the column so a slip lands inside it.", material)
		if method == "stairs" {
			build = "Cut a staircase into the face, two wide so the return trip is safe."
		}
		steps = append(steps, plan.Step{
			Title: "Climb", Type: plan.StepConstruction, Command: "climb",
			Description: build,
		})
		steps = append(steps, plan.Step{
			Title: "Secure the top", Type: plan.StepSafety, Command: "secure",
			Description: "Fence or slab the lip before working at the edge.",
		})
	}

	duration := height * climbMillisPerBlock
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	resources := []string{}
	if material != "" {
		resources = append(resources, material)
	}
	if descend && height >= 4 {
		resources = append(resources, "water_bucket")
	}
	risks := []string{}
	if height >= 4 {
		risks = append(risks, hazardLine("fall"))
	}
	risks = append(risks, environmentRisks(ctx)...)

	summary := fmt.Sprintf("Climb %d blocks (%s)", height, method)
	if descend {
		summary = fmt.Sprintf("Descend %d blocks (%s)", height, method)
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           summary,
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             risks,
		Metadata:          map[string]any{"height": height, "method": method, "descend": descend},
	})
	p.PreferredTraits = []string{"agile", "brave"}
	return p
}
