package catalog

// Composter layer chances per item. Seven fill layers yield one bonemeal, so
// the expected payout for a batch is floor(qty*chance/7).
const (
	CompostChanceLow      = 0.30
	CompostChanceModerate = 0.50
	CompostChanceGood     = 0.65
	CompostChanceHigh     = 0.85
	CompostChanceCertain  = 1.00

	CompostLayersPerBonemeal = 7

	// HopperTransferRate is items per second through a hopper, used when
	// sizing automatic composter arrays.
	HopperTransferRate = 2.5
)

var Compostables = map[string]float64{
	"beetroot_seeds":    CompostChanceLow,
	"dried_kelp":        CompostChanceLow,
	"glow_berries":      CompostChanceLow,
	"grass":             CompostChanceLow,
	"kelp":              CompostChanceLow,
	"melon_seeds":       CompostChanceLow,
	"oak_leaves":        CompostChanceLow,
	"oak_sapling":       CompostChanceLow,
	"pumpkin_seeds":     CompostChanceLow,
	"seagrass":          CompostChanceLow,
	"sweet_berries":     CompostChanceLow,
	"wheat_seeds":       CompostChanceLow,
	"cactus":            CompostChanceModerate,
	"dried_kelp_block":  CompostChanceModerate,
	"melon_slice":       CompostChanceModerate,
	"sugar_cane":        CompostChanceModerate,
	"tall_grass":        CompostChanceModerate,
	"vine":              CompostChanceModerate,
	"apple":             CompostChanceGood,
	"beetroot":          CompostChanceGood,
	"carrot":            CompostChanceGood,
	"cocoa_beans":       CompostChanceGood,
	"fern":              CompostChanceGood,
	"lily_pad":          CompostChanceGood,
	"melon":             CompostChanceGood,
	"moss_block":        CompostChanceGood,
	"mushroom":          CompostChanceGood,
	"nether_wart":       CompostChanceGood,
	"potato":            CompostChanceGood,
	"pumpkin":           CompostChanceGood,
	"sea_pickle":        CompostChanceGood,
	"wheat":             CompostChanceGood,
	"baked_potato":      CompostChanceHigh,
	"bread":             CompostChanceHigh,
	"cookie":            CompostChanceHigh,
	"hay_block":         CompostChanceHigh,
	"nether_wart_block": CompostChanceHigh,
	"cake":              CompostChanceCertain,
	"pumpkin_pie":       CompostChanceCertain,
}

var compostSynonyms = map[string]string{
	"seeds":   "wheat_seeds",
	"leaves":  "oak_leaves",
	"sapling": "oak_sapling",
	"berries": "sweet_berries",
	"hay":     "hay_block",
}

// CompostChance returns the layer chance for an item, or ok=false when the
// item cannot be composted.
func CompostChance(item string) (float64, bool) {
	_, c, ok := lookup(Compostables, compostSynonyms, item)
	return c, ok
}

// CompostCanonical resolves the canonical compostable name for an item.
func CompostCanonical(item string) (string, float64, bool) {
	return lookup(Compostables, compostSynonyms, item)
}

// CompostingEfficiency is the expected bonemeal from composting qty of one
// item kind. Non-compostable items and non-positive quantities yield zero.
func CompostingEfficiency(item string, qty int) int {
	if qty <= 0 {
		return 0
	}
	chance, ok := CompostChance(item)
	if !ok {
		return 0
	}
	return int(float64(qty) * chance / CompostLayersPerBonemeal)
}
