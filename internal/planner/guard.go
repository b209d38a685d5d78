package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	defaultGuardRadius = 8
	defaultGuardShift  = 120000
)

func planGuard(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	ward := meta.StringOr("", "protect", "ward", "vip")
	if ward == "" {
		ward = task.DescribeTarget(t.Target)
	}
	radius := meta.IntOr(defaultGuardRadius, "radius", "range", "perimeter")
	if radius < 1 {
		radius = defaultGuardRadius
	}
	shift := meta.IntOr(defaultGuardShift, "duration", "shift")
	if shift < 1 {
		shift = defaultGuardShift
	}

	stance := catalog.Stances["guard"]
	if s, ok := catalog.StanceByName(meta.StringOr("", "stance", "posture")); ok {
		stance = s
	}

	threats := meta.Strings("threats", "enemies", "expect")
	if len(threats) == 0 {
		for _, e := range ctx.Hostiles() {
			kind := e.Type
			if kind == "" {
				kind = e.Name
			}
			if kind != "" {
				threats = append(threats, kind)
			}
		}
	}
	gear := catalog.CountermeasuresFor(threats)

	steps := make([]plan.Step, 0, 7)
	steps = append(steps, plan.Step{
		Title: "Arm up", Type: plan.StepPreparation, Command: "equip",
		Description: fmt.Sprintf("Carry %s; keep the %s ready.",
			strings.Join(gear, ", "), strings.Join(stance.WeaponPreference, " and ")),
		Metadata: map[string]any{"missing": missingGear(items, gear)},
	})
	if step, ok := travelStep(ctx, t.Target, "take the post"); ok {
		steps = append(steps, step)
	}
	steps = append(steps, plan.Step{
		Title: "Set the perimeter", Type: plan.StepPlanning, Command: "set_perimeter",
		Description: fmt.Sprintf("Define a %d block line around %s and torch the dark corners inside it.", radius, ward),
		Metadata:    map[string]any{"radius": radius},
	})
	steps = append(steps, plan.Step{
		Title: "Patrol", Type: plan.StepAction, Command: "patrol",
		Description: fmt.Sprintf("Circle %s at the perimeter, eyes out; engage only past %d blocks in.", ward, stance.EngagementDistance),
		Metadata:    map[string]any{"stance": stance.Name},
	})
	steps = append(steps, plan.Step{
		Title: "Challenge intruders", Type: plan.StepSafety, Command: "engage",
		Description: stance.SquadAdvice + ".",
	})
	steps = append(steps, plan.Step{
		Title: "Call the rounds", Type: plan.StepReport, Command: "report_status",
		Description: "Report clear or contact at each lap.",
	})

	risks := make([]string, 0, len(threats)+2)
	for _, th := range threats {
		risks = append(risks, task.NormalizeItemName(th)+" may probe the perimeter")
	}
	risks = append(risks, environmentRisks(ctx)...)

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           "Guard " + ward,
		Steps:             steps,
		EstimatedDuration: shift,
		Resources:         gear,
		Risks:             risks,
		Metadata: map[string]any{
			"ward":   ward,
			"radius": radius,
			"stance": stance.Name,
		},
	})
	p.PreferredTraits = []string{"protective", "vigilant", "patient"}
	return p
}
