package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	tradeNavigateMillis = 2000
	tradeOpenMillis     = 1000
	tradeSelectMillis   = 500
	tradeConfirmMillis  = 1000
)

func planTrade(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	wanted := meta.StringOr("", "item", "buy", "want", "for")
	if wanted == "" {
		wanted = t.Details
	}
	if wanted == "" {
		return plan.Failed(t, "Trade with a villager",
			"nothing named to trade for",
			"name the goods in metadata.item, e.g. {\"item\": \"enchanted_book\"}")
	}

	level := meta.StringOr("novice", "level", "tier")
	profession := meta.StringOr("", "profession", "villager")
	var trade catalog.Trade
	found := false
	if profession != "" {
		trade, found = catalog.FindTrade(profession, level, wanted)
	} else {
		for _, name := range catalog.ProfessionNames() {
			if tr, ok := catalog.FindTrade(name, level, wanted); ok {
				trade, profession, found = tr, name, true
				break
			}
		}
	}
	if !found {
		return plan.Failed(t, "Trade with a villager",
			fmt.Sprintf("no villager offer found for %q at %s level", wanted, level),
			"try a higher level, another profession, or check the wandering trader")
	}

	mods := catalog.TradeModifiers{
		HeroOfTheVillage: meta.BoolOr(false, "hero_of_the_village", "hero"),
		Cured:            meta.BoolOr(false, "cured", "cured_villager"),
		Reputation:       meta.IntOr(0, "reputation", "rep"),
	}
	unitCost := catalog.CalculateTradeValue(trade.Buy.Count.Pick(), mods)
	count := meta.IntOr(1, "count", "times", "quantity")
	if count < 1 {
		count = 1
	}
	totalCost := unitCost * count

	prof, _ := catalog.ProfessionByName(profession)
	jobsite := prof.Jobsite
	if jobsite == "" {
		jobsite = "job site"
	}

	offer := fmt.Sprintf("%d %s", unitCost, trade.Buy.Item)
	if trade.BuySecondary != nil {
		offer += fmt.Sprintf(" + %d %s", trade.BuySecondary.Count.Pick(), trade.BuySecondary.Item)
	}
	sellCount := trade.Sell.Count.Pick()

	var shortfalls []string
	if len(items) > 0 {
		if have := task.CountItems(items, trade.Buy.Item); have < totalCost {
			shortfalls = append(shortfalls, fmt.Sprintf("%d %s of the %d needed", have, trade.Buy.Item, totalCost))
		}
		if trade.BuySecondary != nil {
			needSecondary := trade.BuySecondary.Count.Pick() * count
			if have := task.CountItems(items, trade.BuySecondary.Item); have < needSecondary {
				shortfalls = append(shortfalls, fmt.Sprintf("%d %s of the %d needed", have, trade.BuySecondary.Item, needSecondary))
			}
		}
	}

	steps := []plan.Step{
		{
			Title: "Find the " + prof.Name, Type: plan.StepMovement, Command: "navigate",
			Description: fmt.Sprintf("Head to the %s near %s and find the %s.",
				jobsite, task.DescribeTarget(t.Target), prof.Name),
			Metadata: map[string]any{"profession": prof.Name, "jobsite": jobsite},
		},
		{
			Title: "Open the trade screen", Type: plan.StepAction, Command: "open_trade",
			Description: "Right-click the villager while no bell or raid distracts it.",
		},
		{
			Title: "Select the offer", Type: plan.StepAction, Command: "select_trade",
			Description: fmt.Sprintf("Pick the row selling %d %s for %s.", sellCount, trade.Sell.Item, offer),
			Metadata:    map[string]any{"sell": trade.Sell.Item, "unitCost": unitCost},
		},
		{
			Title: "Confirm the trade", Type: plan.StepAction, Command: "confirm_trade",
			Description: fmt.Sprintf("Run the trade %d times for %d %s total.", count, totalCost, trade.Buy.Item),
			Metadata:    map[string]any{"count": count, "totalCost": totalCost},
		},
	}

	duration := tradeNavigateMillis + tradeOpenMillis + tradeSelectMillis + count*tradeConfirmMillis
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	resources := []string{trade.Buy.Item}
	if trade.BuySecondary != nil {
		resources = append(resources, trade.BuySecondary.Item)
	}

	notes := []string{}
	if mods.HeroOfTheVillage || mods.Cured || mods.Reputation > 0 {
		notes = append(notes, fmt.Sprintf("discounts bring the price to %d %s per trade", unitCost, trade.Buy.Item))
	}

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           fmt.Sprintf("Trade for %s with the %s", trade.Sell.Item, prof.Name),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Notes:             notes,
		Metadata: map[string]any{
			"profession": prof.Name,
			"level":      level,
			"unitCost":   unitCost,
		},
		Outcome: map[string]any{
			"trade": map[string]any{
				"profession": prof.Name,
				"sell":       trade.Sell.Item,
				"sellCount":  sellCount,
				"buyItem":    trade.Buy.Item,
				"buyCount":   unitCost,
				"count":      count,
				"totalCost":  totalCost,
			},
		},
	})
	p.PreferredTraits = []string{"social", "shrewd", "patient"}
	if len(shortfalls) > 0 {
		return plan.Blocked(p,
			"holding "+strings.Join(shortfalls, "; "),
			fmt.Sprintf("gather more %s before heading to the %s", trade.Buy.Item, prof.Name))
	}
	return p
}
