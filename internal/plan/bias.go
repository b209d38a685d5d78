package plan

import (
	"math"
	"strings"
)

// maxBiasDiscount caps how much a personality match can shorten a plan.
const maxBiasDiscount = 0.25

// ApplyBias compares the NPC's personality traits against the plan's
// preferred traits and, on any overlap, shortens the estimated duration by
// 5% per matching trait up to 25%. Matching is case-insensitive. Plans with
// no preferred traits, and NPCs with no matching traits, pass through
// untouched.
func ApplyBias(p *Plan, npcTraits []string) {
	if p == nil || len(p.PreferredTraits) == 0 || len(npcTraits) == 0 {
		return
	}
	preferred := make(map[string]string, len(p.PreferredTraits))
	for _, t := range p.PreferredTraits {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" {
			continue
		}
		if _, ok := preferred[key]; !ok {
			preferred[key] = key
		}
	}
	if len(preferred) == 0 {
		return
	}
	matched := make([]string, 0, len(preferred))
	seen := make(map[string]struct{}, len(preferred))
	for _, t := range npcTraits {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" {
			continue
		}
		if _, ok := preferred[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		matched = append(matched, key)
	}
	if len(matched) == 0 {
		return
	}
	score := len(matched)
	discount := math.Min(maxBiasDiscount, 0.05*float64(score))
	p.EstimatedDuration = int(math.Round(float64(p.EstimatedDuration) * (1 - discount)))
	p.PersonalityBias = &Bias{
		Score:          score,
		Matches:        matched,
		TotalPreferred: len(preferred),
	}
}
