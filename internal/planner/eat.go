package planner

import (
	"fmt"
	"sort"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	safeSpotMillis = 2000
	cookFoodMillis = 10000
)

// hungerUrgency bands the hunger bar into how badly a meal is needed.
func hungerUrgency(hunger int) string {
	switch {
	case hunger <= 4:
		return "critical"
	case hunger <= 10:
		return "high"
	case hunger <= 14:
		return "medium"
	case hunger <= 17:
		return "low"
	default:
		return "none"
	}
}

type foodChoice struct {
	name  string
	food  catalog.Food
	score float64
}

// bestFoodChoice ranks edible inventory by restored value per eating second,
// bumping foods with beneficial effects and discounting raw ones. Dangerous
// foods only surface when starvation leaves no choice.
func bestFoodChoice(items []task.Item, hunger int, saturation float64, urgency string) (foodChoice, bool) {
	var choices []foodChoice
	var desperate []foodChoice
	seen := make(map[string]struct{})
	for _, it := range items {
		f, ok := catalog.FoodByName(it.Name)
		if !ok {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		if !catalog.CanEat(f, hunger) {
			continue
		}
		out := catalog.CalculateEatingOutcome(f, hunger, saturation)
		eatTime := f.EatTime
		if eatTime < 0.1 {
			eatTime = 0.1
		}
		score := (float64(out.HungerRestored) + out.SaturationRestored) / eatTime
		for _, eff := range f.Effects {
			if eff.Beneficial {
				score += 2.0
				break
			}
		}
		if f.Cookable {
			score *= 0.4
		}
		c := foodChoice{name: f.Name, food: f, score: score}
		if f.Category == "dangerous" {
			desperate = append(desperate, c)
			continue
		}
		choices = append(choices, c)
	}
	if len(choices) == 0 && urgency == "critical" {
		choices = desperate
	}
	if len(choices) == 0 {
		return foodChoice{}, false
	}
	sort.SliceStable(choices, func(i, j int) bool {
		if choices[i].score != choices[j].score {
			return choices[i].score > choices[j].score
		}
		return choices[i].name < choices[j].name
	})
	return choices[0], true
}

func planEat(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	hunger := 20
	saturation := 5.0
	if ctx != nil && ctx.HungerState != nil {
		hunger = ctx.HungerState.Hunger
		saturation = ctx.HungerState.Saturation
	}
	if v, ok := meta.Int("hunger"); ok {
		hunger = v
	}
	if v, ok := meta.Number("saturation"); ok {
		saturation = v
	}

	urgency := hungerUrgency(hunger)
	priority := task.PriorityNormal
	if urgency == "critical" || urgency == "high" {
		priority = task.PriorityHigh
	}
	if urgency == "none" && !meta.BoolOr(false, "force") {
		return plan.New(plan.Plan{
			Task:    t,
			Summary: "No need to eat",
			Steps: []plan.Step{{
				Title: "Skip the meal", Type: plan.StepReport, Command: "report_status",
				Description: fmt.Sprintf("Hunger is %d of 20; save the food for later.", hunger),
			}},
			Notes:    []string{"hunger bar is effectively full"},
			Metadata: map[string]any{"urgency": urgency, "hunger": hunger},
			Outcome:  map[string]any{"ate": false},
		})
	}

	var chosen foodChoice
	ok := false
	if want := meta.StringOr("", "food", "item"); want != "" {
		if f, found := catalog.FoodByName(want); found && task.HasItem(items, f.Name, 1) {
			chosen, ok = foodChoice{name: f.Name, food: f}, true
		}
	}
	if !ok {
		chosen, ok = bestFoodChoice(items, hunger, saturation, urgency)
	}
	if !ok {
		return plan.Failed(t, "Eat food",
			"no edible food in the inventory",
			"gather crops, hunt animals, or trade villagers for food first")
	}

	food := chosen.food
	cookFirst := food.Cookable && food.CooksInto != "" && urgency != "critical"
	ate := food
	if cookFirst {
		if cooked, found := catalog.FoodByName(food.CooksInto); found {
			ate = cooked
		} else {
			cookFirst = false
		}
	}
	outcome := catalog.CalculateEatingOutcome(ate, hunger, saturation)

	steps := make([]plan.Step, 0, 4)
	duration := 0
	if urgency == "critical" || urgency == "high" {
		steps = append(steps, plan.Step{
			Title: "Find a safe spot", Type: plan.StepSafety, Command: "find_safe_location",
			Description: "Back away from threats and ledges before the eating animation locks movement.",
		})
		duration += safeSpotMillis
	}
	steps = append(steps, plan.Step{
		Title: "Select food", Type: plan.StepPlanning, Command: "select_food",
		Description: fmt.Sprintf("Chose %s: restores %d hunger and %.1f saturation in %.1fs.",
			ate.Name, outcome.HungerRestored, outcome.SaturationRestored, ate.EatTime),
		Metadata: map[string]any{"food": ate.Name},
	})
	if cookFirst {
		steps = append(steps, plan.Step{
			Title: "Cook " + food.Name, Type: plan.StepProcessing, Command: "cook_food",
			Description: fmt.Sprintf("Cook %s into %s before eating; raw meat wastes half the value.", food.Name, ate.Name),
			Metadata:    map[string]any{"input": food.Name, "output": ate.Name},
		})
		duration += cookFoodMillis
	}
	eatMeta := map[string]any{
		"food":               ate.Name,
		"hungerRestored":     outcome.HungerRestored,
		"saturationRestored": outcome.SaturationRestored,
		"timeToEat":          outcome.TimeToEat,
	}
	if outcome.ReturnItem != "" {
		eatMeta["returnItem"] = outcome.ReturnItem
	}
	steps = append(steps, plan.Step{
		Title: "Eat " + ate.Name, Type: plan.StepAction, Command: "eat_food",
		Description: fmt.Sprintf("Eat the %s and let the bar refill to %d.", ate.Name, hunger+outcome.HungerRestored),
		Metadata:    eatMeta,
	})
	duration += int(ate.EatTime * 1000)

	resources := []string{ate.Name}
	if cookFirst {
		resources = []string{food.Name, "furnace", "coal"}
	}

	notes := make([]string, 0, 2)
	if after := hunger + outcome.HungerRestored; after < 14 {
		notes = append(notes, fmt.Sprintf("still at %d of 20 after the meal; plan a second course", after))
	}
	if outcome.ReturnItem != "" {
		notes = append(notes, "keep the "+outcome.ReturnItem+" for the next stew")
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           "Eat " + ate.Name,
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Notes:             notes,
		Metadata: map[string]any{
			"urgency":  urgency,
			"hunger":   hunger,
			"food":     ate.Name,
			"priority": string(priority),
		},
		Outcome: map[string]any{
			"food":               ate.Name,
			"hungerRestored":     outcome.HungerRestored,
			"saturationRestored": outcome.SaturationRestored,
		},
	})
	p.PreferredTraits = []string{"survivalist", "careful"}
	return p
}
