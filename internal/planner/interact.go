package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	interactBaseMillis     = 2000
	interactMillisPerStack = 500
)

// chestOperation folds free-form container verbs onto deposit or withdraw.
func chestOperation(v string, hasItems bool) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "deposit", "store", "put", "stash", "dump", "unload":
		return "deposit"
	case "withdraw", "take", "get", "loot", "grab", "collect":
		return "withdraw"
	case "":
		if hasItems {
			return "deposit"
		}
		return "open"
	default:
		return "open"
	}
}

func isContainer(name string) bool {
	for _, c := range []string{"chest", "barrel", "shulker", "hopper", "dispenser", "dropper", "furnace"} {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}

func isMechanism(name string) bool {
	for _, c := range []string{"lever", "button", "pressure_plate", "tripwire", "bell", "note_block"} {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}

type transfer struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func transferList(meta task.Metadata) []transfer {
	raw, ok := meta.Slice("items", "item", "transfer")
	if !ok {
		return nil
	}
	out := make([]transfer, 0, len(raw))
	for _, v := range raw {
		name := task.NormalizeItemName(v)
		if name == task.UnspecifiedItem {
			continue
		}
		out = append(out, transfer{Name: name, Count: task.ResolveQuantity(v, 1)})
	}
	return out
}

func planInteract(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()

	object := task.NormalizeItemName(meta.StringOr("", "object", "block", "entity", "with"))
	if object == task.UnspecifiedItem || object == "" {
		if t.Target != nil {
			if t.Target.Name != "" {
				object = task.NormalizeItemName(t.Target.Name)
			} else if t.Target.Type != "" {
				object = task.NormalizeItemName(t.Target.Type)
			}
		}
	}
	if object == task.UnspecifiedItem || object == "" {
		if d := mineBlockFromDetails(t.Details); d != "" {
			object = d
		}
	}
	if object == task.UnspecifiedItem || object == "" {
		return plan.Failed(t, "Interact",
			"nothing named to interact with",
			"name the block or entity in metadata.object")
	}

	moves := transferList(meta)
	op := chestOperation(meta.StringOr("", "operation", "chest_action", "mode", "action_type"), len(moves) > 0)

	steps := make([]plan.Step, 0, 6+len(moves))
	if step, ok := travelStep(ctx, t.Target, "reach the "+object); ok {
		steps = append(steps, step)
	}
	steps = append(steps, plan.Step{
		Title: "Approach " + object, Type: plan.StepMovement, Command: "approach",
		Description: "Stand within reach and face the " + object + ".",
	})

	duration := interactBaseMillis
	outcome := map[string]any{"object": object, "operation": op}
	switch {
	case isContainer(object):
		steps = append(steps, plan.Step{
			Title: "Open " + object, Type: plan.StepAction, Command: "open_container",
			Description: "Open the " + object + " interface.",
		})
		for _, m := range moves {
			cmd := "deposit_items"
			verb := "Deposit"
			if op == "withdraw" {
				cmd = "withdraw_items"
				verb = "Withdraw"
			}
			steps = append(steps, plan.Step{
				Title: fmt.Sprintf("%s %d %s", verb, m.Count, m.Name), Type: plan.StepStorage, Command: cmd,
				Description: fmt.Sprintf("%s %d %s.", verb, m.Count, m.Name),
				Metadata:    map[string]any{"item": m.Name, "count": m.Count},
			})
			duration += interactMillisPerStack
		}
		steps = append(steps, plan.Step{
			Title: "Close " + object, Type: plan.StepAction, Command: "close_container",
			Description: "Close the " + object + " when the transfer settles.",
		})
		if len(moves) > 0 {
			outcome["itemsMoved"] = moves
		}
	case isMechanism(object):
		verb := "Use"
		if strings.Contains(object, "lever") {
			verb = "Pull"
		} else if strings.Contains(object, "button") {
			verb = "Press"
		}
		steps = append(steps, plan.Step{
			Title: verb + " the " + object, Type: plan.StepAction, Command: "activate",
			Description: verb + " the " + object + " and watch what it drives.",
		})
	default:
		steps = append(steps, plan.Step{
			Title: "Interact with " + object, Type: plan.StepAction, Command: "interact_entity",
			Description: "Right-click the " + object + " and handle whatever dialog opens.",
		})
	}
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           "Interact with " + object,
		Steps:             steps,
		EstimatedDuration: duration,
		Risks:             environmentRisks(ctx),
		Metadata:          map[string]any{"object": object, "operation": op},
		Outcome:           outcome,
	})
	p.PreferredTraits = []string{"social", "organized"}
	return p
}
