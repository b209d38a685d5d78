package catalog

import "strings"

// Canonical mining strategies.
const (
	StrategyBranchMining  = "branch_mining"
	StrategyStripMining   = "strip_mining"
	StrategyStaircase     = "staircase"
	StrategySpiralStair   = "spiral_stair"
	StrategyVerticalShaft = "vertical_shaft"
	StrategyQuarry        = "quarry"
	StrategyExploration   = "exploration"
)

type MiningStrategy struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Efficiency  float64 `json:"efficiency"`
	Safety      float64 `json:"safety"`
	BestFor     string  `json:"bestFor,omitempty"`
}

var MiningStrategies = map[string]MiningStrategy{
	StrategyBranchMining: {Name: StrategyBranchMining, Efficiency: 0.9, Safety: 0.8,
		Description: "central tunnel with side branches every third block",
		BestFor:     "diamond and deep ores"},
	StrategyStripMining: {Name: StrategyStripMining, Efficiency: 0.8, Safety: 0.85,
		Description: "parallel tunnels at a fixed level",
		BestFor:     "bulk ore at a known depth"},
	StrategyStaircase: {Name: StrategyStaircase, Efficiency: 0.6, Safety: 0.9,
		Description: "straight descending stair to target depth",
		BestFor:     "reaching a level quickly and safely"},
	StrategySpiralStair: {Name: StrategySpiralStair, Efficiency: 0.5, Safety: 0.95,
		Description: "square spiral descent in a compact footprint",
		BestFor:     "base access shafts"},
	StrategyVerticalShaft: {Name: StrategyVerticalShaft, Efficiency: 0.7, Safety: 0.4,
		Description: "straight drop with water or ladder return",
		BestFor:     "fast depth changes, high fall risk"},
	StrategyQuarry: {Name: StrategyQuarry, Efficiency: 0.75, Safety: 0.9,
		Description: "excavate an open pit layer by layer",
		BestFor:     "stone in bulk and full visibility"},
	StrategyExploration: {Name: StrategyExploration, Efficiency: 0.55, Safety: 0.6,
		Description: "follow natural caves and mine what shows",
		BestFor:     "surface ores without digging"},
}

var miningStrategyHints = []struct {
	contains string
	name     string
}{
	{"branch", StrategyBranchMining},
	{"strip", StrategyStripMining},
	{"spiral", StrategySpiralStair},
	{"stair", StrategyStaircase},
	{"step", StrategyStaircase},
	{"descend", StrategyStaircase},
	{"vertical", StrategyVerticalShaft},
	{"shaft", StrategyVerticalShaft},
	{"drop", StrategyVerticalShaft},
	{"quarry", StrategyQuarry},
	{"pit", StrategyQuarry},
	{"excavat", StrategyQuarry},
	{"explor", StrategyExploration},
	{"cave", StrategyExploration},
	{"tunnel", StrategyBranchMining},
}

// NormalizeMiningStrategy maps free-form strategy text onto the canonical
// set, defaulting to branch mining.
func NormalizeMiningStrategy(v string) string {
	key := CanonicalKey(v)
	if key == "" {
		return StrategyBranchMining
	}
	if _, ok := MiningStrategies[key]; ok {
		return key
	}
	for _, h := range miningStrategyHints {
		if strings.Contains(key, h.contains) {
			return h.name
		}
	}
	return StrategyBranchMining
}

func MiningStrategyByName(v string) MiningStrategy {
	return MiningStrategies[NormalizeMiningStrategy(v)]
}

// Dig strategies for clearance-style envelopes.
const (
	DigClear     = "clear"
	DigTunnel    = "tunnel"
	DigStaircase = "staircase"
	DigQuarry    = "quarry"
	DigStrip     = "strip"
	DigPillar    = "pillar"
)

var digStrategies = map[string]struct{}{
	DigClear: {}, DigTunnel: {}, DigStaircase: {}, DigQuarry: {}, DigStrip: {}, DigPillar: {},
}

// NormalizeDigStrategy folds free-form dig text onto the canonical set,
// defaulting to clear.
func NormalizeDigStrategy(v string) string {
	key := CanonicalKey(v)
	if _, ok := digStrategies[key]; ok {
		return key
	}
	switch {
	case strings.Contains(key, "tunnel"), strings.Contains(key, "corridor"):
		return DigTunnel
	case strings.Contains(key, "stair"), strings.Contains(key, "descend"):
		return DigStaircase
	case strings.Contains(key, "quarry"), strings.Contains(key, "pit"):
		return DigQuarry
	case strings.Contains(key, "strip"), strings.Contains(key, "branch"):
		return DigStrip
	case strings.Contains(key, "pillar"), strings.Contains(key, "column"), strings.Contains(key, "up"):
		return DigPillar
	}
	return DigClear
}

// Directive actions a mining status block may request.
const (
	DirectivePause          = "pause"
	DirectiveResume         = "resume"
	DirectiveReroute        = "reroute"
	DirectiveRequestSupport = "request_support"
	DirectiveRequestTools   = "request_tools"
	DirectiveContinue       = "continue"
)

var directiveActions = map[string]struct{}{
	DirectivePause: {}, DirectiveResume: {}, DirectiveReroute: {},
	DirectiveRequestSupport: {}, DirectiveRequestTools: {}, DirectiveContinue: {},
}

// NormalizeDirectiveAction folds free-form directive text onto the
// canonical action set. The fallback differs by caller, so it is explicit.
func NormalizeDirectiveAction(v, fallback string) string {
	key := CanonicalKey(v)
	if _, ok := directiveActions[key]; ok {
		return key
	}
	switch {
	case strings.Contains(key, "stop"), strings.Contains(key, "halt"), strings.Contains(key, "wait"):
		return DirectivePause
	case strings.Contains(key, "resume"), strings.Contains(key, "restart"):
		return DirectiveResume
	case strings.Contains(key, "route"), strings.Contains(key, "detour"), strings.Contains(key, "avoid"), strings.Contains(key, "around"):
		return DirectiveReroute
	case strings.Contains(key, "help"), strings.Contains(key, "support"), strings.Contains(key, "backup"):
		return DirectiveRequestSupport
	case strings.Contains(key, "tool"), strings.Contains(key, "pickaxe"), strings.Contains(key, "equipment"):
		return DirectiveRequestTools
	case strings.Contains(key, "continue"), strings.Contains(key, "keep"), strings.Contains(key, "proceed"), strings.Contains(key, "ignore"):
		return DirectiveContinue
	}
	if _, ok := directiveActions[fallback]; ok {
		return fallback
	}
	return DirectiveContinue
}
