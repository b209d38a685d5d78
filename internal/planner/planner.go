package planner

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

// Walking pace used for travel estimates, in milliseconds per block.
const walkMillisPerBlock = 250

// assumedTravelBlocks stands in for distance when either endpoint is
// unknown.
const assumedTravelBlocks = 20

// terrainMultiplier slows travel for the biome and weather on record.
// Unknown conditions leave the pace untouched.
func terrainMultiplier(ctx *task.Context) float64 {
	mult := 1.0
	if b, ok := catalog.BiomeByName(ctx.BiomeName()); ok && b.SpeedMultiplier > 0 {
		mult /= b.SpeedMultiplier
	}
	if w, ok := catalog.WeatherByName(ctx.WeatherName()); ok && w.SpeedMultiplier > 0 {
		mult /= w.SpeedMultiplier
	}
	return mult
}

// travelDistance is the Manhattan distance from the context position to the
// target point, or an assumed default when either is missing.
func travelDistance(ctx *task.Context, t *task.Target) int {
	if ctx.Position == nil || t == nil {
		return assumedTravelBlocks
	}
	p, ok := t.Point()
	if !ok {
		return assumedTravelBlocks
	}
	return task.Manhattan(*ctx.Position, p)
}

func travelDuration(ctx *task.Context, t *task.Target) int {
	d := travelDistance(ctx, t)
	ms := float64(d*walkMillisPerBlock) * terrainMultiplier(ctx)
	return int(math.Round(ms))
}

// travelStep emits a movement step toward the target when one is known.
func travelStep(ctx *task.Context, t *task.Target, purpose string) (plan.Step, bool) {
	if t == nil || (!t.HasPoint() && t.Name == "" && t.Type == "") {
		return plan.Step{}, false
	}
	where := task.DescribeTarget(t)
	return plan.NewStep(plan.Step{
		Title:       "Travel to " + where,
		Type:        plan.StepMovement,
		Description: fmt.Sprintf("Move to %s to %s.", where, purpose),
		Metadata:    map[string]any{"distance": travelDistance(ctx, t)},
	}), true
}

// hazardLine renders a hazard the way risk lists and step text show it.
func hazardLine(hazardType string) string {
	h := catalog.HazardFor(hazardType)
	return fmt.Sprintf("%s (%s)", h.Type, h.Severity)
}

// sortHazards normalizes and orders hazard names worst first, ties by name.
func sortHazards(raw []string) []catalog.Hazard {
	out := make([]catalog.Hazard, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		h := catalog.HazardFor(r)
		if _, dup := seen[h.Type]; dup {
			continue
		}
		seen[h.Type] = struct{}{}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := catalog.SeverityRank(out[i].Severity), catalog.SeverityRank(out[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// missingGear lists required items absent from the inventory, input order
// preserved.
func missingGear(items []task.Item, required []string) []string {
	out := make([]string, 0, len(required))
	for _, name := range required {
		norm := task.NormalizeItemName(name)
		if norm == task.UnspecifiedItem {
			continue
		}
		if !task.HasItem(items, norm, 1) {
			out = append(out, norm)
		}
	}
	return out
}

// stockTarget sizes a crafting run: cover the gap to the minimum and to the
// desired stock, honor an exact override, then add the buffer.
func stockTarget(base, have, min, desired, exact, buffer int) int {
	n := base
	if gap := min - have; gap > n {
		n = gap
	}
	if gap := desired - have; gap > n {
		n = gap
	}
	if exact > 0 {
		n = exact
	}
	if n < 0 {
		n = 0
	}
	return n + buffer
}

// environmentRisks folds biome, weather, and light conditions into risk
// lines.
func environmentRisks(ctx *task.Context) []string {
	risks := make([]string, 0, 4)
	if b, ok := catalog.BiomeByName(ctx.BiomeName()); ok {
		for _, hz := range b.Hazards {
			risks = append(risks, fmt.Sprintf("%s hazard in %s", hz, b.Name))
		}
	}
	if w, ok := catalog.WeatherByName(ctx.WeatherName()); ok {
		risks = append(risks, w.Risks...)
	}
	if ctx.LightLevel != nil && *ctx.LightLevel < 8 {
		risks = append(risks, "low light allows hostile spawns nearby")
	}
	if len(ctx.Hostiles()) > 0 {
		names := make([]string, 0, len(ctx.Hostiles()))
		for _, e := range ctx.Hostiles() {
			names = append(names, e.Name)
		}
		risks = append(risks, "hostiles nearby: "+strings.Join(names, ", "))
	}
	return risks
}

// scaleDuration multiplies a millisecond figure, rounding, never negative.
func scaleDuration(ms int, factor float64) int {
	if factor <= 0 || ms <= 0 {
		return 0
	}
	return int(math.Round(float64(ms) * factor))
}
