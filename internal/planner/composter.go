package planner

import (
	"fmt"
	"math"
	"sort"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	compostMillisPerItem = 400
	composterSetupMillis = 2500
)

type compostLoad struct {
	Item   string  `json:"item"`
	Count  int     `json:"count"`
	Chance float64 `json:"chance"`
}

// compostLoads resolves what goes in the composter: named items first,
// otherwise whatever compostable the inventory holds. Highest layer chance
// feeds first so bone meal lands before the session gets cut short.
func compostLoads(meta task.Metadata, items []task.Item) []compostLoad {
	var loads []compostLoad
	if raw, ok := meta.Slice("items", "item", "compost"); ok {
		for _, v := range raw {
			name, chance, ok := catalog.CompostCanonical(task.NormalizeItemName(v))
			if !ok {
				continue
			}
			loads = append(loads, compostLoad{Item: name, Count: task.ResolveQuantity(v, 1), Chance: chance})
		}
	} else {
		for _, it := range items {
			name, chance, ok := catalog.CompostCanonical(it.Name)
			if !ok {
				continue
			}
			count := it.Count
			if count < 1 {
				count = 1
			}
			loads = append(loads, compostLoad{Item: name, Count: count, Chance: chance})
		}
	}
	sort.SliceStable(loads, func(i, j int) bool {
		if loads[i].Chance != loads[j].Chance {
			return loads[i].Chance > loads[j].Chance
		}
		return loads[i].Item < loads[j].Item
	})
	return loads
}

func planComposter(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	loads := compostLoads(meta, items)
	if len(loads) == 0 {
		return plan.Failed(t, "Run the composter",
			"nothing compostable on hand",
			"gather crops or plant matter first; seeds, wheat, and saplings all compost")
	}

	auto := meta.BoolOr(false, "auto", "automate", "hopper")

	target, haveTarget := meta.Int("amount", "bonemeal", "target_amount")
	if haveTarget && target < 1 {
		haveTarget = false
	}
	if haveTarget {
		capacity := 0
		for _, l := range loads {
			capacity += catalog.CompostingEfficiency(l.Item, l.Count)
		}
		if capacity < target {
			p := plan.New(plan.Plan{
				Task:     t,
				Summary:  fmt.Sprintf("Compost for %d bone_meal", target),
				Metadata: map[string]any{"target": target, "possible": capacity},
				Outcome:  map[string]any{"bonemealExpected": capacity},
			})
			return plan.Blocked(p,
				fmt.Sprintf("only %d bone_meal possible from what's on hand, %d wanted", capacity, target),
				"gather more compostables; wheat, cake, and pumpkin pie fill layers fastest")
		}
		kept := make([]compostLoad, 0, len(loads))
		remaining := target
		for _, l := range loads {
			if remaining <= 0 {
				break
			}
			need := int(math.Ceil(float64(remaining) * 7 / l.Chance))
			if l.Count > need {
				l.Count = need
			}
			kept = append(kept, l)
			remaining -= catalog.CompostingEfficiency(l.Item, l.Count)
		}
		loads = kept
	}

	totalItems := 0
	totalBonemeal := 0
	for _, l := range loads {
		totalItems += l.Count
		totalBonemeal += catalog.CompostingEfficiency(l.Item, l.Count)
	}

	steps := make([]plan.Step, 0, 6+len(loads))
	steps = append(steps, plan.Step{
		Title: "Set the composter", Type: plan.StepPreparation, Command: "place_composter",
		Description: "Place or reach a composter with room to stand at its hatch.",
		Metadata:    map[string]any{"missing": missingGear(items, []string{"composter"})},
	})
	if step, ok := travelStep(ctx, t.Target, "reach the composter"); ok {
		steps = append(steps, step)
	}
	if auto {
		steps = append(steps, plan.Step{
			Title: "Rig the hoppers", Type: plan.StepConstruction, Command: "place_blocks",
			Description: fmt.Sprintf("Hopper on top feeds, hopper below drains to a chest; the line moves %.1f items a second.",
				catalog.HopperTransferRate),
			Metadata: map[string]any{"rate": catalog.HopperTransferRate},
		})
	}
	for _, l := range loads {
		steps = append(steps, plan.Step{
			Title: "Compost " + l.Item, Type: plan.StepProcessing, Command: "compost_" + l.Item,
			Description: fmt.Sprintf("Feed %d %s in; each load has a %d%% chance to raise a layer.",
				l.Count, l.Item, int(math.Round(l.Chance*100))),
			Metadata: map[string]any{"item": l.Item, "count": l.Count, "chance": l.Chance},
		})
	}
	steps = append(steps, plan.Step{
		Title: "Collect the bone_meal", Type: plan.StepStorage, Command: "collect_bonemeal",
		Description: fmt.Sprintf("Pull roughly %d bone_meal from the hatch when the seventh layer fills.", totalBonemeal),
		Metadata:    map[string]any{"expected": totalBonemeal},
	})

	duration := composterSetupMillis
	if auto {
		duration += int(math.Ceil(float64(totalItems)/catalog.HopperTransferRate)) * 1000
	} else {
		duration += totalItems * compostMillisPerItem
	}
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	resources := make([]string, 0, len(loads)+3)
	resources = append(resources, "composter")
	if auto {
		resources = append(resources, "hopper", "chest")
	}
	for _, l := range loads {
		resources = append(resources, l.Item)
	}

	planMeta := map[string]any{
		"loads": loads,
		"auto":  auto,
	}
	if haveTarget {
		planMeta["target"] = target
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           fmt.Sprintf("Compost %d items for %d bone_meal", totalItems, totalBonemeal),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             environmentRisks(ctx),
		Metadata:          planMeta,
		Outcome: map[string]any{
			"itemsComposted":   totalItems,
			"bonemealExpected": totalBonemeal,
		},
	})
	p.PreferredTraits = []string{"farmer", "thrifty", "patient"}
	return p
}
