package catalog

type BiomeProfile struct {
	Name             string   `json:"name"`
	Dimension        string   `json:"dimension"`
	HostileMobs      []string `json:"hostileMobs,omitempty"`
	SpeedMultiplier  float64  `json:"speedMultiplier"`
	Hazards          []string `json:"hazards,omitempty"`
	OptimalResources []string `json:"optimalResources,omitempty"`
}

var Biomes = map[string]BiomeProfile{
	"plains": {Name: "plains", Dimension: "overworld", SpeedMultiplier: 1.0,
		HostileMobs:      []string{"zombie", "skeleton", "creeper", "spider"},
		OptimalResources: []string{"wheat", "horse", "bee_nest"}},
	"forest": {Name: "forest", Dimension: "overworld", SpeedMultiplier: 0.9,
		HostileMobs:      []string{"zombie", "skeleton", "creeper", "spider", "witch"},
		Hazards:          []string{"darkness"},
		OptimalResources: []string{"oak_log", "birch_log", "mushroom"}},
	"desert": {Name: "desert", Dimension: "overworld", SpeedMultiplier: 0.95,
		HostileMobs:      []string{"husk", "skeleton", "creeper"},
		Hazards:          []string{"cactus", "exposure"},
		OptimalResources: []string{"sand", "cactus", "dead_bush"}},
	"jungle": {Name: "jungle", Dimension: "overworld", SpeedMultiplier: 0.7,
		HostileMobs:      []string{"zombie", "skeleton", "creeper", "ocelot"},
		Hazards:          []string{"darkness", "fall", "dense_foliage"},
		OptimalResources: []string{"jungle_log", "cocoa_beans", "bamboo", "melon"}},
	"swamp": {Name: "swamp", Dimension: "overworld", SpeedMultiplier: 0.75,
		HostileMobs:      []string{"zombie", "witch", "slime", "drowned"},
		Hazards:          []string{"water", "drowning"},
		OptimalResources: []string{"slime_ball", "lily_pad", "blue_orchid", "clay_ball"}},
	"taiga": {Name: "taiga", Dimension: "overworld", SpeedMultiplier: 0.9,
		HostileMobs:      []string{"zombie", "skeleton", "wolf"},
		OptimalResources: []string{"spruce_log", "sweet_berries", "fern"}},
	"snowy_plains": {Name: "snowy_plains", Dimension: "overworld", SpeedMultiplier: 0.8,
		HostileMobs:      []string{"stray", "zombie", "creeper"},
		Hazards:          []string{"freezing", "powder_snow"},
		OptimalResources: []string{"snow_block", "ice"}},
	"mountains": {Name: "mountains", Dimension: "overworld", SpeedMultiplier: 0.6,
		HostileMobs:      []string{"skeleton", "creeper", "goat"},
		Hazards:          []string{"fall", "powder_snow"},
		OptimalResources: []string{"emerald_ore", "iron_ore", "coal_ore"}},
	"badlands": {Name: "badlands", Dimension: "overworld", SpeedMultiplier: 0.85,
		HostileMobs:      []string{"zombie", "skeleton"},
		Hazards:          []string{"fall", "exposure"},
		OptimalResources: []string{"gold_ore", "terracotta", "red_sand"}},
	"savanna": {Name: "savanna", Dimension: "overworld", SpeedMultiplier: 1.0,
		HostileMobs:      []string{"zombie", "skeleton", "creeper"},
		OptimalResources: []string{"acacia_log", "horse", "llama"}},
	"ocean": {Name: "ocean", Dimension: "overworld", SpeedMultiplier: 0.4,
		HostileMobs:      []string{"drowned", "guardian"},
		Hazards:          []string{"drowning", "water"},
		OptimalResources: []string{"kelp", "raw_cod", "prismarine_shard"}},
	"mushroom_fields": {Name: "mushroom_fields", Dimension: "overworld", SpeedMultiplier: 1.0,
		OptimalResources: []string{"mushroom", "mycelium", "mooshroom"}},
	"dripstone_caves": {Name: "dripstone_caves", Dimension: "overworld", SpeedMultiplier: 0.65,
		HostileMobs:      []string{"zombie", "skeleton", "creeper", "bat"},
		Hazards:          []string{"fall", "darkness", "dripstone"},
		OptimalResources: []string{"pointed_dripstone", "copper_ore"}},
	"lush_caves": {Name: "lush_caves", Dimension: "overworld", SpeedMultiplier: 0.7,
		HostileMobs:      []string{"zombie", "skeleton", "axolotl"},
		Hazards:          []string{"water", "darkness"},
		OptimalResources: []string{"glow_berries", "moss_block", "big_dripleaf"}},
	"deep_dark": {Name: "deep_dark", Dimension: "overworld", SpeedMultiplier: 0.5,
		HostileMobs:      []string{"warden"},
		Hazards:          []string{"darkness", "sculk_sensor", "warden"},
		OptimalResources: []string{"sculk", "echo_shard"}},
	"nether_wastes": {Name: "nether_wastes", Dimension: "the_nether", SpeedMultiplier: 0.8,
		HostileMobs:      []string{"zombified_piglin", "ghast", "magma_cube", "piglin"},
		Hazards:          []string{"lava", "fall", "explosive"},
		OptimalResources: []string{"netherrack", "quartz_ore", "glowstone"}},
	"soul_sand_valley": {Name: "soul_sand_valley", Dimension: "the_nether", SpeedMultiplier: 0.55,
		HostileMobs:      []string{"ghast", "skeleton", "enderman"},
		Hazards:          []string{"lava", "soul_sand", "explosive"},
		OptimalResources: []string{"soul_sand", "bone_block", "nether_fossil"}},
	"basalt_deltas": {Name: "basalt_deltas", Dimension: "the_nether", SpeedMultiplier: 0.5,
		HostileMobs:      []string{"magma_cube", "ghast"},
		Hazards:          []string{"lava", "fall"},
		OptimalResources: []string{"basalt", "blackstone", "magma_block"}},
	"crimson_forest": {Name: "crimson_forest", Dimension: "the_nether", SpeedMultiplier: 0.8,
		HostileMobs:      []string{"piglin", "hoglin", "zombified_piglin"},
		Hazards:          []string{"lava", "hoglin"},
		OptimalResources: []string{"crimson_stem", "nether_wart", "weeping_vines"}},
	"warped_forest": {Name: "warped_forest", Dimension: "the_nether", SpeedMultiplier: 0.85,
		HostileMobs:      []string{"enderman"},
		Hazards:          []string{"lava"},
		OptimalResources: []string{"warped_stem", "ender_pearl", "shroomlight"}},
	"the_end": {Name: "the_end", Dimension: "the_end", SpeedMultiplier: 0.9,
		HostileMobs:      []string{"enderman", "shulker", "ender_dragon"},
		Hazards:          []string{"void", "fall"},
		OptimalResources: []string{"end_stone", "chorus_fruit", "shulker_shell"}},
}

var biomeSynonyms = map[string]string{
	"woods":  "forest",
	"hills":  "mountains",
	"peaks":  "mountains",
	"tundra": "snowy_plains",
	"mesa":   "badlands",
	"nether": "nether_wastes",
	"hell":   "nether_wastes",
	"end":    "the_end",
	"sea":    "ocean",
	"caves":  "dripstone_caves",
}

func BiomeByName(name string) (BiomeProfile, bool) {
	_, b, ok := lookup(Biomes, biomeSynonyms, name)
	return b, ok
}

// YLevelBand describes what mining at a depth range looks like.
type YLevelBand struct {
	Name    string   `json:"name"`
	MinY    int      `json:"minY"`
	MaxY    int      `json:"maxY"`
	Ores    []string `json:"ores,omitempty"`
	Hazards []string `json:"hazards,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// YLevelBands is ordered top to bottom.
var YLevelBands = []YLevelBand{
	{Name: "sky", MinY: 200, MaxY: 320, Hazards: []string{"fall"}, Note: "emerald in mountain peaks"},
	{Name: "surface", MinY: 63, MaxY: 199, Ores: []string{"coal_ore", "iron_ore", "emerald_ore"}, Hazards: []string{"enemy"}},
	{Name: "caves", MinY: 8, MaxY: 62, Ores: []string{"coal_ore", "iron_ore", "copper_ore", "lapis_ore"}, Hazards: []string{"darkness", "fall", "enemy"}},
	{Name: "deepslate", MinY: -53, MaxY: 7, Ores: []string{"iron_ore", "gold_ore", "redstone_ore", "diamond_ore", "lapis_ore"}, Hazards: []string{"darkness", "lava", "gravel"}, Note: "deepslate mines slower"},
	{Name: "lava_depths", MinY: -64, MaxY: -54, Ores: []string{"diamond_ore", "redstone_ore"}, Hazards: []string{"lava", "bedrock"}, Note: "lava lakes are common"},
}

// BandForY returns the band containing y; depths below the world floor clamp
// to the lowest band, heights above to the highest.
func BandForY(y int) YLevelBand {
	for _, b := range YLevelBands {
		if y >= b.MinY && y <= b.MaxY {
			return b
		}
	}
	if y > YLevelBands[0].MaxY {
		return YLevelBands[0]
	}
	return YLevelBands[len(YLevelBands)-1]
}

// BestBandFor returns the band whose ore list names the block, preferring
// the deepest match. Unknown blocks return ok=false.
func BestBandFor(block string) (YLevelBand, bool) {
	key := CanonicalKey(block)
	if key == "" {
		return YLevelBand{}, false
	}
	for i := len(YLevelBands) - 1; i >= 0; i-- {
		for _, ore := range YLevelBands[i].Ores {
			if ore == key || containsKey(ore, key) {
				return YLevelBands[i], true
			}
		}
	}
	return YLevelBand{}, false
}

// BiomesWithResource lists biomes whose optimal resources include the item,
// sorted by name.
func BiomesWithResource(resource string) []string {
	key := CanonicalKey(resource)
	if key == "" {
		return nil
	}
	var out []string
	for _, name := range sortedKeys(Biomes) {
		for _, r := range Biomes[name].OptimalResources {
			if r == key || containsKey(r, key) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

type WeatherProfile struct {
	Name            string   `json:"name"`
	SpeedMultiplier float64  `json:"speedMultiplier"`
	Visibility      string   `json:"visibility"`
	Risks           []string `json:"risks,omitempty"`
}

var Weathers = map[string]WeatherProfile{
	"clear":        {Name: "clear", SpeedMultiplier: 1.0, Visibility: "good"},
	"rain":         {Name: "rain", SpeedMultiplier: 0.9, Visibility: "reduced", Risks: []string{"hostile mobs persist through the day", "fire extinguished"}},
	"thunderstorm": {Name: "thunderstorm", SpeedMultiplier: 0.75, Visibility: "poor", Risks: []string{"lightning strikes", "hostile spawns as at night", "charged creepers"}},
	"snow":         {Name: "snow", SpeedMultiplier: 0.85, Visibility: "reduced", Risks: []string{"freezing in powder snow"}},
}

var weatherSynonyms = map[string]string{
	"storm":    "thunderstorm",
	"thunder":  "thunderstorm",
	"raining":  "rain",
	"drizzle":  "rain",
	"snowing":  "snow",
	"blizzard": "snow",
	"sunny":    "clear",
}

func WeatherByName(name string) (WeatherProfile, bool) {
	_, w, ok := lookup(Weathers, weatherSynonyms, name)
	return w, ok
}
