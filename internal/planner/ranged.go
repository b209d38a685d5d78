package planner

import (
	"fmt"
	"math"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	arrowsPerKill     = 4
	arrowMissBuffer   = 1.5
	rangedBaseMillis  = 2000
	rangedMillisPerKO = 2500
)

func planRanged(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	weapon := "bow"
	if w := strings.ToLower(meta.StringOr("", "weapon", "with")); w == "crossbow" || strings.Contains(w, "crossbow") {
		weapon = "crossbow"
	}

	names := meta.Strings("enemies", "enemy", "targets", "mobs")
	if len(names) == 0 {
		for _, e := range ctx.Hostiles() {
			kind := e.Type
			if kind == "" {
				kind = e.Name
			}
			if kind != "" {
				names = append(names, kind)
			}
		}
	}
	if len(names) == 0 && t.Details != "" {
		if _, ok := catalog.EnemyByName(t.Details); ok {
			names = append(names, t.Details)
		}
	}
	if len(names) == 0 {
		return plan.Failed(t, "Engage at range",
			"no targets named or observed",
			"list them in metadata.enemies, or scout until something shows")
	}

	seen := make(map[string]struct{}, len(names))
	enemies := make([]catalog.Enemy, 0, len(names))
	for _, n := range names {
		e, ok := catalog.EnemyByName(n)
		if !ok {
			e = catalog.Enemy{Name: task.NormalizeItemName(n), Priority: 3}
		}
		if _, dup := seen[e.Name]; dup {
			continue
		}
		seen[e.Name] = struct{}{}
		enemies = append(enemies, e)
	}
	enemies = orderTargets(enemies, meta.Strings("priority_targets", "focus"))

	stance := catalog.Stances["ranged"]
	arrows := int(math.Ceil(float64(len(enemies)) * arrowsPerKill * arrowMissBuffer))
	haveArrows := task.CountItems(items, "arrow")

	order := make([]string, len(enemies))
	for i, e := range enemies {
		order[i] = e.Name
	}

	steps := make([]plan.Step, 0, 7)
	steps = append(steps, plan.Step{
		Title: "Check the quiver", Type: plan.StepPreparation, Command: "equip",
		Description: fmt.Sprintf("Carry the %s and at least %d arrows; holding %d.", weapon, arrows, haveArrows),
		Metadata:    map[string]any{"weapon": weapon, "arrows": arrows, "missing": missingGear(items, []string{weapon, "arrow"})},
	})
	steps = append(steps, plan.Step{
		Title: "Take the high ground", Type: plan.StepMovement, Command: "position",
		Description: fmt.Sprintf("Set up %d blocks out with clear sightlines and a ledge or fence between you and them.", stance.EngagementDistance),
		Metadata:    map[string]any{"distance": stance.EngagementDistance},
	})
	if step, ok := travelStep(ctx, t.Target, "reach the overlook"); ok {
		steps = append(steps, step)
	}
	steps = append(steps, plan.Step{
		Title: "Loose volleys", Type: plan.StepAction, Command: "shoot",
		Description: "Full draws only, focus fire in order: " + strings.Join(order, ", ") + ".",
		Metadata:    map[string]any{"order": order},
	})
	counterSnipers := 0
	for _, e := range enemies {
		if e.Ranged {
			counterSnipers++
		}
	}
	if counterSnipers > 0 {
		steps = append(steps, plan.Step{
			Title: "Break their aim", Type: plan.StepSafety, Command: "strafe",
			Description: "Strafe between shots; standing archers trade hits and lose.",
		})
	}
	steps = append(steps, plan.Step{
		Title: "Recover arrows", Type: plan.StepStorage, Command: "collect_drops",
		Description: "Walk the field and pull spent arrows from the ground and the fallen.",
	})

	duration := rangedBaseMillis + len(enemies)*rangedMillisPerKO

	risks := make([]string, 0, len(enemies)+2)
	for _, e := range enemies {
		if e.Risk != "" {
			risks = append(risks, e.Name+": "+e.Risk)
		}
	}
	risks = append(risks, environmentRisks(ctx)...)

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           "Shoot down " + strings.Join(order, ", "),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         []string{weapon, "arrow"},
		Risks:             risks,
		Metadata: map[string]any{
			"weapon":  weapon,
			"arrows":  arrows,
			"enemies": order,
			"stance":  stance.Name,
		},
	})
	p.PreferredTraits = []string{"precise", "patient", "calm"}
	return p
}
