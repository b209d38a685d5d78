package catalog

type Structure struct {
	Name           string   `json:"name"`
	Dimension      string   `json:"dimension"`
	Rarity         string   `json:"rarity"`
	SearchStrategy string   `json:"searchStrategy"`
	VisualCues     []string `json:"visualCues,omitempty"`
	Loot           []string `json:"loot,omitempty"`
	Dangers        []string `json:"dangers,omitempty"`
	Preparations   []string `json:"preparations,omitempty"`
}

var Structures = map[string]Structure{
	"village": {Name: "village", Dimension: "overworld", Rarity: "common", SearchStrategy: "grid",
		VisualCues:   []string{"farmland", "paths", "torches at night"},
		Loot:         []string{"bread", "emerald", "iron_ingot", "hay_block"},
		Dangers:      []string{"iron_golem when provoked", "zombie sieges at night"},
		Preparations: []string{"bring emeralds for trading"}},
	"pillager_outpost": {Name: "pillager_outpost", Dimension: "overworld", Rarity: "uncommon", SearchStrategy: "grid",
		VisualCues:   []string{"tall watchtower", "dark oak logs", "banners"},
		Loot:         []string{"crossbow", "dark_oak_log", "experience_bottle"},
		Dangers:      []string{"pillager patrols", "captains apply bad omen"},
		Preparations: []string{"shield", "ranged weapon", "avoid the bad omen effect before visiting a village"}},
	"desert_pyramid": {Name: "desert_pyramid", Dimension: "overworld", Rarity: "uncommon", SearchStrategy: "grid",
		VisualCues:   []string{"sandstone pyramid", "orange terracotta cross"},
		Loot:         []string{"diamond", "emerald", "enchanted_book", "gold_ingot"},
		Dangers:      []string{"hidden tnt trap under the treasure room"},
		Preparations: []string{"dig around the pressure plate", "torches"}},
	"jungle_temple": {Name: "jungle_temple", Dimension: "overworld", Rarity: "rare", SearchStrategy: "cave_exploration",
		VisualCues:   []string{"mossy cobblestone among trees", "vines"},
		Loot:         []string{"diamond", "emerald", "gold_ingot"},
		Dangers:      []string{"arrow dispenser traps", "tripwires"},
		Preparations: []string{"shears for tripwire", "careful corridor approach"}},
	"ocean_monument": {Name: "ocean_monument", Dimension: "overworld", Rarity: "rare", SearchStrategy: "ocean_exploration",
		VisualCues:   []string{"prismarine glow underwater", "guardian beams"},
		Loot:         []string{"sponge", "prismarine_shard", "gold_block"},
		Dangers:      []string{"elder guardian mining fatigue", "drowning"},
		Preparations: []string{"water_breathing_potion", "night_vision_potion", "milk_bucket"}},
	"woodland_mansion": {Name: "woodland_mansion", Dimension: "overworld", Rarity: "very_rare", SearchStrategy: "cartographer_map",
		VisualCues:   []string{"huge dark oak building in roofed forest"},
		Loot:         []string{"totem_of_undying", "emerald", "diamond_chestplate"},
		Dangers:      []string{"evoker fangs", "vindicator axes", "vex swarms"},
		Preparations: []string{"full armor", "golden_apple", "shield"}},
	"shipwreck": {Name: "shipwreck", Dimension: "overworld", Rarity: "common", SearchStrategy: "ocean_exploration",
		VisualCues:   []string{"broken hull on the sea floor or beached"},
		Loot:         []string{"buried_treasure_map", "iron_ingot", "emerald"},
		Dangers:      []string{"drowned with tridents"},
		Preparations: []string{"boat", "water_breathing_potion"}},
	"buried_treasure": {Name: "buried_treasure", Dimension: "overworld", Rarity: "uncommon", SearchStrategy: "cartographer_map",
		VisualCues:   []string{"x marks the spot on a treasure map"},
		Loot:         []string{"heart_of_the_sea", "iron_ingot", "gold_ingot", "tnt"},
		Dangers:      []string{"drowned near beaches"},
		Preparations: []string{"shovel", "treasure map from a shipwreck"}},
	"mineshaft": {Name: "mineshaft", Dimension: "overworld", Rarity: "common", SearchStrategy: "cave_exploration",
		VisualCues:   []string{"wooden support beams in caves", "rails", "cobwebs"},
		Loot:         []string{"rail", "golden_apple", "name_tag", "minecart"},
		Dangers:      []string{"cave_spider spawners", "cave_in", "darkness"},
		Preparations: []string{"torches", "sword for cobwebs", "milk_bucket"}},
	"stronghold": {Name: "stronghold", Dimension: "overworld", Rarity: "very_rare", SearchStrategy: "eye_tracking",
		VisualCues:   []string{"stone brick corridors deep underground"},
		Loot:         []string{"ender_pearl", "enchanted_book", "apple"},
		Dangers:      []string{"silverfish blocks", "darkness", "lava pockets"},
		Preparations: []string{"eyes of ender", "pickaxe", "torches"}},
	"nether_fortress": {Name: "nether_fortress", Dimension: "the_nether", Rarity: "uncommon", SearchStrategy: "nether_highway",
		VisualCues:   []string{"nether brick bridges over lava"},
		Loot:         []string{"blaze_rod", "nether_wart", "diamond_horse_armor"},
		Dangers:      []string{"blaze fireballs", "wither_skeleton", "lava", "ghast"},
		Preparations: []string{"fire_resistance_potion", "bow", "blocks for bridging"}},
	"bastion_remnant": {Name: "bastion_remnant", Dimension: "the_nether", Rarity: "uncommon", SearchStrategy: "nether_highway",
		VisualCues:   []string{"blackstone towers", "gold blocks in walls"},
		Loot:         []string{"netherite_scrap", "ancient_debris", "gold_block"},
		Dangers:      []string{"piglin_brute", "magma_cube", "lava"},
		Preparations: []string{"wear one gold armor piece", "fire_resistance_potion"}},
	"end_city": {Name: "end_city", Dimension: "the_end", Rarity: "rare", SearchStrategy: "elytra_aerial",
		VisualCues:   []string{"purpur towers on outer end islands"},
		Loot:         []string{"elytra", "shulker_shell", "diamond_pickaxe"},
		Dangers:      []string{"shulker levitation", "void falls"},
		Preparations: []string{"ender_pearl stock", "slow_falling_potion", "blocks for bridging"}},
	"ancient_city": {Name: "ancient_city", Dimension: "overworld", Rarity: "rare", SearchStrategy: "cave_exploration",
		VisualCues:   []string{"deepslate ruins at extreme depth", "sculk growth"},
		Loot:         []string{"echo_shard", "enchanted_book", "music_disc"},
		Dangers:      []string{"warden", "sculk_shrieker", "darkness"},
		Preparations: []string{"wool for silent walking", "night_vision_potion", "no unnecessary noise"}},
	"ruined_portal": {Name: "ruined_portal", Dimension: "overworld", Rarity: "common", SearchStrategy: "random_walk",
		VisualCues:   []string{"broken obsidian frame", "crying obsidian", "netherrack with fire"},
		Loot:         []string{"obsidian", "flint_and_steel", "golden_apple"},
		Dangers:      []string{"lava pockets under netherrack"},
		Preparations: []string{"pickaxe"}},
	"witch_hut": {Name: "witch_hut", Dimension: "overworld", Rarity: "rare", SearchStrategy: "grid",
		VisualCues:   []string{"spruce hut on stilts in a swamp"},
		Loot:         []string{"brewing_stand", "cauldron"},
		Dangers:      []string{"witch potions"},
		Preparations: []string{"milk_bucket", "ranged weapon"}},
}

var structureSynonyms = map[string]string{
	"temple":        "desert_pyramid",
	"desert_temple": "desert_pyramid",
	"monument":      "ocean_monument",
	"mansion":       "woodland_mansion",
	"fortress":      "nether_fortress",
	"bastion":       "bastion_remnant",
	"outpost":       "pillager_outpost",
	"treasure":      "buried_treasure",
	"portal":        "ruined_portal",
	"swamp_hut":     "witch_hut",
}

func StructureByName(name string) (Structure, bool) {
	_, s, ok := lookup(Structures, structureSynonyms, name)
	return s, ok
}
