package planner

import (
	"fmt"
	"sort"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	combatBaseMillis     = 4000
	combatMillisPerEnemy = 3000
)

// orderTargets sorts an engagement list: explicitly prioritized names keep
// their given order up front, the rest follow by threat priority then name.
func orderTargets(enemies []catalog.Enemy, prioritized []string) []catalog.Enemy {
	rank := make(map[string]int, len(prioritized))
	for i, name := range prioritized {
		key := task.NormalizeItemName(name)
		if _, dup := rank[key]; !dup {
			rank[key] = i
		}
	}
	out := append([]catalog.Enemy(nil), enemies...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iOK := rank[out[i].Name]
		rj, jOK := rank[out[j].Name]
		switch {
		case iOK && jOK:
			return ri < rj
		case iOK:
			return true
		case jOK:
			return false
		}
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// inferStance picks a posture when the task names none: a ranged tactic keeps
// distance, shooters are answered in kind, and everything else holds guard.
func inferStance(meta task.Metadata, enemies []catalog.Enemy) catalog.Stance {
	tactic := strings.ToLower(meta.StringOr("", "tactic", "tactics", "approach"))
	if strings.Contains(tactic, "ranged") || strings.Contains(tactic, "bow") {
		return catalog.Stances["ranged"]
	}
	ranged := 0
	for _, e := range enemies {
		if e.Ranged {
			ranged++
		}
	}
	if len(enemies) > 0 && ranged*2 > len(enemies) {
		return catalog.Stances["ranged"]
	}
	return catalog.Stances["guard"]
}

// squadRoles deals out roles over the squad: the first member leads, the rest
// alternate between flanking and covering.
func squadRoles(members []string) map[string]string {
	out := make(map[string]string, len(members))
	for i, m := range members {
		switch {
		case i == 0:
			out[m] = "leader"
		case i%2 == 1:
			out[m] = "flanker"
		default:
			out[m] = "cover"
		}
	}
	return out
}

func planCombat(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

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
		return plan.Failed(t, "Engage hostiles",
			"no enemies named or observed",
			"list the targets in metadata.enemies, or get close enough to see them")
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

	stance, haveStance := catalog.StanceByName(meta.StringOr("", "stance", "posture", "style"))
	if !haveStance {
		stance = inferStance(meta, enemies)
	}

	enemyNames := make([]string, len(enemies))
	for i, e := range enemies {
		enemyNames[i] = e.Name
	}
	gear := catalog.CountermeasuresFor(enemyNames)

	steps := make([]plan.Step, 0, 6+len(enemies))
	steps = append(steps, plan.Step{
		Title: "Arm up", Type: plan.StepPreparation, Command: "equip",
		Description: fmt.Sprintf("Equip %s; the %s stance favors %s.",
			strings.Join(gear, ", "), stance.Name, strings.Join(stance.WeaponPreference, " then ")),
		Metadata: map[string]any{"missing": missingGear(items, gear)},
	})
	steps = append(steps, plan.Step{
		Title: "Take stance", Type: plan.StepPlanning, Command: "set_stance",
		Description: fmt.Sprintf("Fight %s at about %d blocks.", stance.Name, stance.EngagementDistance),
		Metadata:    map[string]any{"stance": stance.Name, "distance": stance.EngagementDistance},
	})

	squad := meta.Strings("squad_members", "squad", "allies", "party")
	roles := map[string]string{}
	if len(squad) > 0 {
		roles = squadRoles(squad)
		parts := make([]string, 0, len(squad))
		for _, m := range squad {
			parts = append(parts, m+" as "+roles[m])
		}
		steps = append(steps, plan.Step{
			Title: "Brief the squad", Type: plan.StepPlanning, Command: "assign_roles",
			Description: "Assign " + strings.Join(parts, ", ") + ". " + stance.SquadAdvice + ".",
			Metadata:    map[string]any{"roles": roles},
		})
	}
	if step, ok := travelStep(ctx, t.Target, "close on the engagement area"); ok {
		steps = append(steps, step)
	}
	for _, e := range enemies {
		desc := fmt.Sprintf("Engage the %s.", e.Name)
		if e.Dodge != "" {
			desc = fmt.Sprintf("Engage the %s: %s.", e.Name, e.Dodge)
		}
		steps = append(steps, plan.Step{
			Title: "Fight " + e.Name, Type: plan.StepAction, Command: "attack",
			Description: desc,
			Metadata:    map[string]any{"enemy": e.Name, "priority": e.Priority},
		})
	}
	steps = append(steps, plan.Step{
		Title: "Sweep and loot", Type: plan.StepReport, Command: "collect_drops",
		Description: "Collect drops and confirm the area is clear.",
	})

	duration := combatBaseMillis + len(enemies)*combatMillisPerEnemy

	risks := make([]string, 0, len(enemies)+2)
	for _, e := range enemies {
		if e.Risk != "" {
			risks = append(risks, e.Name+": "+e.Risk)
		}
	}
	risks = append(risks, environmentRisks(ctx)...)

	planMeta := map[string]any{
		"stance":  stance.Name,
		"enemies": enemyNames,
	}
	if len(roles) > 0 {
		planMeta["roles"] = roles
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           "Engage " + strings.Join(enemyNames, ", "),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         gear,
		Risks:             risks,
		Metadata:          planMeta,
	})
	p.PreferredTraits = []string{"brave", "aggressive", "protective"}
	return p
}
