package catalog

import (
	"math"
	"strings"
)

// Range is a count interval from trade tables that list prices as spans.
// Deterministic planning picks Min unless the caller supplies a policy.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func FixedCount(n int) Range { return Range{Min: n, Max: n} }

// Pick resolves the range to a single count.
func (r Range) Pick() int {
	if r.Min > 0 {
		return r.Min
	}
	return r.Max
}

type TradeItem struct {
	Item  string `json:"item"`
	Count Range  `json:"count"`
}

// Trade is one exchange: the villager takes Buy (and BuySecondary when set)
// and hands over Sell.
type Trade struct {
	Buy          TradeItem  `json:"buy"`
	BuySecondary *TradeItem `json:"buySecondary,omitempty"`
	Sell         TradeItem  `json:"sell"`
}

// TradeLevels orders villager experience tiers.
var TradeLevels = []string{"novice", "apprentice", "journeyman", "expert", "master"}

type Profession struct {
	Name    string             `json:"name"`
	Jobsite string             `json:"jobsite"`
	Trades  map[string][]Trade `json:"trades"`
}

var Professions = map[string]Profession{
	"farmer": {Name: "farmer", Jobsite: "composter", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"wheat", FixedCount(20)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"potato", FixedCount(26)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"carrot", FixedCount(22)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"bread", FixedCount(6)}},
		},
		"apprentice": {
			{Buy: TradeItem{"pumpkin", FixedCount(6)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"pumpkin_pie", FixedCount(4)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"apple", FixedCount(4)}},
		},
		"journeyman": {
			{Buy: TradeItem{"melon", FixedCount(4)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(3)}, Sell: TradeItem{"cookie", FixedCount(18)}},
		},
		"expert": {
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"suspicious_stew", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"cake", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", FixedCount(3)}, Sell: TradeItem{"golden_carrot", FixedCount(3)}},
			{Buy: TradeItem{"emerald", FixedCount(4)}, Sell: TradeItem{"glistering_melon_slice", FixedCount(3)}},
		},
	}},
	"librarian": {Name: "librarian", Jobsite: "lectern", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"paper", FixedCount(24)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", Range{Min: 5, Max: 64}}, BuySecondary: &TradeItem{"book", FixedCount(1)}, Sell: TradeItem{"enchanted_book", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(9)}, Sell: TradeItem{"bookshelf", FixedCount(1)}},
		},
		"apprentice": {
			{Buy: TradeItem{"book", FixedCount(4)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"lantern", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"ink_sac", FixedCount(5)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"glass", FixedCount(4)}},
		},
		"expert": {
			{Buy: TradeItem{"writable_book", FixedCount(2)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(5)}, Sell: TradeItem{"clock", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(4)}, Sell: TradeItem{"compass", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", FixedCount(20)}, Sell: TradeItem{"name_tag", FixedCount(1)}},
		},
	}},
	"cleric": {Name: "cleric", Jobsite: "brewing_stand", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"rotten_flesh", FixedCount(32)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"redstone", FixedCount(2)}},
		},
		"apprentice": {
			{Buy: TradeItem{"gold_ingot", FixedCount(3)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"lapis_lazuli", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"rabbit_foot", FixedCount(2)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(4)}, Sell: TradeItem{"glowstone", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"turtle_scute", FixedCount(4)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(5)}, Sell: TradeItem{"ender_pearl", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", FixedCount(3)}, Sell: TradeItem{"experience_bottle", FixedCount(1)}},
		},
	}},
	"armorer": {Name: "armorer", Jobsite: "blast_furnace", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"coal", FixedCount(15)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(5)}, Sell: TradeItem{"iron_helmet", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(9)}, Sell: TradeItem{"iron_chestplate", FixedCount(1)}},
		},
		"apprentice": {
			{Buy: TradeItem{"iron_ingot", FixedCount(4)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(4)}, Sell: TradeItem{"shield", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"lava_bucket", FixedCount(1)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"diamond", FixedCount(1)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"emerald", Range{Min: 19, Max: 33}}, Sell: TradeItem{"diamond_leggings", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", Range{Min: 21, Max: 35}}, Sell: TradeItem{"diamond_chestplate", FixedCount(1)}},
		},
	}},
	"weaponsmith": {Name: "weaponsmith", Jobsite: "grindstone", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"coal", FixedCount(15)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(3)}, Sell: TradeItem{"iron_axe", FixedCount(1)}},
			{Buy: TradeItem{"emerald", Range{Min: 7, Max: 21}}, Sell: TradeItem{"iron_sword", FixedCount(1)}},
		},
		"apprentice": {
			{Buy: TradeItem{"iron_ingot", FixedCount(4)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"flint", FixedCount(24)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"diamond", FixedCount(1)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", Range{Min: 17, Max: 31}}, Sell: TradeItem{"diamond_axe", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", Range{Min: 13, Max: 27}}, Sell: TradeItem{"diamond_sword", FixedCount(1)}},
		},
	}},
	"toolsmith": {Name: "toolsmith", Jobsite: "smithing_table", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"coal", FixedCount(15)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"stone_pickaxe", FixedCount(1)}},
		},
		"apprentice": {
			{Buy: TradeItem{"iron_ingot", FixedCount(4)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"flint", FixedCount(30)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", Range{Min: 6, Max: 20}}, Sell: TradeItem{"iron_pickaxe", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"diamond", FixedCount(1)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", Range{Min: 18, Max: 32}}, Sell: TradeItem{"diamond_pickaxe", FixedCount(1)}},
		},
	}},
	"butcher": {Name: "butcher", Jobsite: "smoker", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"raw_chicken", FixedCount(14)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"raw_porkchop", FixedCount(7)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"rabbit_stew", FixedCount(1)}},
		},
		"apprentice": {
			{Buy: TradeItem{"coal", FixedCount(15)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"cooked_porkchop", FixedCount(5)}},
		},
		"journeyman": {
			{Buy: TradeItem{"raw_mutton", FixedCount(7)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"raw_beef", FixedCount(10)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"dried_kelp_block", FixedCount(10)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"sweet_berries", FixedCount(10)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
	}},
	"fletcher": {Name: "fletcher", Jobsite: "fletching_table", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"stick", FixedCount(32)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"arrow", FixedCount(16)}},
		},
		"apprentice": {
			{Buy: TradeItem{"flint", FixedCount(26)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(2)}, Sell: TradeItem{"bow", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"string", FixedCount(14)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(3)}, Sell: TradeItem{"crossbow", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"feather", FixedCount(24)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", FixedCount(2)}, BuySecondary: &TradeItem{"arrow", FixedCount(5)}, Sell: TradeItem{"tipped_arrow", FixedCount(5)}},
		},
	}},
	"fisherman": {Name: "fisherman", Jobsite: "barrel", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"string", FixedCount(20)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, BuySecondary: &TradeItem{"raw_cod", FixedCount(6)}, Sell: TradeItem{"cooked_cod", FixedCount(6)}},
		},
		"apprentice": {
			{Buy: TradeItem{"raw_cod", FixedCount(15)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"raw_salmon", FixedCount(13)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", Range{Min: 8, Max: 22}}, Sell: TradeItem{"fishing_rod", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"tropical_fish", FixedCount(6)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"pufferfish", FixedCount(4)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
	}},
	"shepherd": {Name: "shepherd", Jobsite: "loom", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"white_wool", FixedCount(18)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(2)}, Sell: TradeItem{"shears", FixedCount(1)}},
		},
		"apprentice": {
			{Buy: TradeItem{"white_dye", FixedCount(12)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"white_wool", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"emerald", FixedCount(3)}, Sell: TradeItem{"white_bed", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"emerald", FixedCount(2)}, Sell: TradeItem{"painting", FixedCount(3)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", FixedCount(2)}, Sell: TradeItem{"banner", FixedCount(1)}},
		},
	}},
	"cartographer": {Name: "cartographer", Jobsite: "cartography_table", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"paper", FixedCount(24)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(7)}, Sell: TradeItem{"map", FixedCount(1)}},
		},
		"apprentice": {
			{Buy: TradeItem{"glass_pane", FixedCount(11)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"compass", FixedCount(1)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(13)}, BuySecondary: &TradeItem{"compass", FixedCount(1)}, Sell: TradeItem{"ocean_explorer_map", FixedCount(1)}},
		},
		"expert": {
			{Buy: TradeItem{"emerald", FixedCount(14)}, BuySecondary: &TradeItem{"compass", FixedCount(1)}, Sell: TradeItem{"woodland_explorer_map", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", FixedCount(8)}, Sell: TradeItem{"globe_banner_pattern", FixedCount(1)}},
		},
	}},
	"mason": {Name: "mason", Jobsite: "stonecutter", Trades: map[string][]Trade{
		"novice": {
			{Buy: TradeItem{"clay_ball", FixedCount(10)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"brick", FixedCount(10)}},
		},
		"apprentice": {
			{Buy: TradeItem{"stone", FixedCount(20)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"journeyman": {
			{Buy: TradeItem{"granite", FixedCount(16)}, Sell: TradeItem{"emerald", FixedCount(1)}},
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"polished_andesite", FixedCount(4)}},
		},
		"expert": {
			{Buy: TradeItem{"quartz", FixedCount(12)}, Sell: TradeItem{"emerald", FixedCount(1)}},
		},
		"master": {
			{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"quartz_block", FixedCount(1)}},
		},
	}},
}

// WanderingTrades are level-less offers from the wandering trader.
var WanderingTrades = []Trade{
	{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"oak_sapling", FixedCount(1)}},
	{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"kelp", FixedCount(1)}},
	{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"cactus", FixedCount(1)}},
	{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"sugar_cane", FixedCount(1)}},
	{Buy: TradeItem{"emerald", FixedCount(3)}, Sell: TradeItem{"sea_pickle", FixedCount(1)}},
	{Buy: TradeItem{"emerald", FixedCount(5)}, Sell: TradeItem{"nautilus_shell", FixedCount(1)}},
	{Buy: TradeItem{"emerald", FixedCount(1)}, Sell: TradeItem{"red_sand", FixedCount(4)}},
	{Buy: TradeItem{"emerald", FixedCount(6)}, Sell: TradeItem{"blue_ice", FixedCount(1)}},
}

var professionSynonyms = map[string]string{
	"smith":       "toolsmith",
	"blacksmith":  "weaponsmith",
	"priest":      "cleric",
	"stone_mason": "mason",
	"book_seller": "librarian",
}

// ProfessionByName runs the lookup cascade over the profession table.
func ProfessionByName(name string) (Profession, bool) {
	_, p, ok := lookup(Professions, professionSynonyms, name)
	return p, ok
}

// ProfessionNames lists the professions in sorted order.
func ProfessionNames() []string {
	return sortedKeys(Professions)
}

// TradesFor returns the offers a villager of the given profession and level
// has unlocked, lower levels included, in table order.
func TradesFor(profession, level string) []Trade {
	p, ok := ProfessionByName(profession)
	if !ok {
		return nil
	}
	norm := normalizeTradeLevel(level)
	out := make([]Trade, 0, 8)
	for _, lv := range TradeLevels {
		out = append(out, p.Trades[lv]...)
		if lv == norm {
			break
		}
	}
	return out
}

func normalizeTradeLevel(level string) string {
	for _, lv := range TradeLevels {
		if lv == level {
			return lv
		}
	}
	switch level {
	case "1", "new", "beginner":
		return "novice"
	case "2":
		return "apprentice"
	case "3", "mid":
		return "journeyman"
	case "4":
		return "expert"
	case "5", "max":
		return "master"
	}
	return "novice"
}

// FindTrade locates the first unlocked trade selling the wanted item.
func FindTrade(profession, level, wanted string) (Trade, bool) {
	want := CanonicalKey(wanted)
	if want == "" {
		return Trade{}, false
	}
	offers := TradesFor(profession, level)
	for _, tr := range offers {
		if tr.Sell.Item == want {
			return tr, true
		}
	}
	// Fuzzy pass so "enchanted book" still finds enchanted_book.
	for _, tr := range offers {
		if strings.Contains(tr.Sell.Item, want) || strings.Contains(want, tr.Sell.Item) {
			return tr, true
		}
	}
	return Trade{}, false
}

// TradeModifiers are the price reductions a villager grants.
type TradeModifiers struct {
	HeroOfTheVillage bool `json:"heroOfTheVillage,omitempty"`
	Cured            bool `json:"cured,omitempty"`
	Reputation       int  `json:"reputation,omitempty"`
}

const (
	heroDiscount     = 0.70
	curedDiscount    = 0.80
	maxRepDiscount   = 0.25
	repDiscountPerPt = 0.01
)

// CalculateTradeValue applies discounts as multiplicative reductions to the
// base price, rounded up, with a floor of one item.
func CalculateTradeValue(base int, mods TradeModifiers) int {
	if base <= 0 {
		return 0
	}
	price := float64(base)
	if mods.HeroOfTheVillage {
		price *= heroDiscount
	}
	if mods.Cured {
		price *= curedDiscount
	}
	if mods.Reputation > 0 {
		cut := repDiscountPerPt * float64(mods.Reputation)
		if cut > maxRepDiscount {
			cut = maxRepDiscount
		}
		price *= 1 - cut
	}
	v := int(math.Ceil(price))
	if v < 1 {
		v = 1
	}
	return v
}
