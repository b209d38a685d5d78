package catalog

// NavStrategy is a named exploration or travel pattern. Efficiency and
// coverage are coarse 0..1 figures used for ranking, not physics.
type NavStrategy struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Efficiency   float64  `json:"efficiency"`
	Coverage     float64  `json:"coverage"`
	Requirements []string `json:"requirements,omitempty"`
	BestFor      []string `json:"bestFor,omitempty"`
}

var NavStrategies = map[string]NavStrategy{
	"grid": {Name: "grid", Description: "sweep parallel lanes at a fixed spacing",
		Efficiency: 0.7, Coverage: 0.9, BestFor: []string{"village", "pillager_outpost", "surface structures"}},
	"spiral": {Name: "spiral", Description: "expand outward in a square spiral from the origin",
		Efficiency: 0.6, Coverage: 0.85, BestFor: []string{"finding the nearest anything", "lost base recovery"}},
	"random_walk": {Name: "random_walk", Description: "wander with loose heading changes",
		Efficiency: 0.3, Coverage: 0.5, BestFor: []string{"ruined_portal", "casual exploration"}},
	"nether_highway": {Name: "nether_highway", Description: "travel the nether at 8:1 scale then portal out",
		Efficiency: 0.95, Coverage: 0.3,
		Requirements: []string{"obsidian", "flint_and_steel", "fire_resistance_potion"},
		BestFor:      []string{"long distance travel", "nether_fortress", "bastion_remnant"}},
	"eye_tracking": {Name: "eye_tracking", Description: "throw eyes of ender and follow the flight line",
		Efficiency: 0.9, Coverage: 0.1,
		Requirements: []string{"ender_eye"},
		BestFor:      []string{"stronghold"}},
	"cartographer_map": {Name: "cartographer_map", Description: "buy an explorer map and walk the marker",
		Efficiency: 0.85, Coverage: 0.1,
		Requirements: []string{"emerald", "compass"},
		BestFor:      []string{"woodland_mansion", "ocean_monument", "buried_treasure"}},
	"ocean_exploration": {Name: "ocean_exploration", Description: "boat the coastline and dive on sightings",
		Efficiency: 0.65, Coverage: 0.7,
		Requirements: []string{"boat"},
		BestFor:      []string{"shipwreck", "ocean_monument", "ocean ruins"}},
	"cave_exploration": {Name: "cave_exploration", Description: "follow cave networks, torch the backtrail",
		Efficiency: 0.5, Coverage: 0.6,
		Requirements: []string{"torch", "pickaxe", "food"},
		BestFor:      []string{"mineshaft", "ancient_city", "ore veins"}},
	"island_hopping": {Name: "island_hopping", Description: "chain visits across islands by boat or bridge",
		Efficiency: 0.55, Coverage: 0.65,
		Requirements: []string{"boat", "blocks"},
		BestFor:      []string{"end_city", "scattered islands"}},
	"systematic_clearing": {Name: "systematic_clearing", Description: "strip an area flat chunk by chunk",
		Efficiency: 0.4, Coverage: 1.0,
		Requirements: []string{"tools", "storage"},
		BestFor:      []string{"buried_treasure", "total area survey"}},
	"ice_highway": {Name: "ice_highway", Description: "boat on blue ice lanes for top speed",
		Efficiency: 1.0, Coverage: 0.2,
		Requirements: []string{"blue_ice", "boat"},
		BestFor:      []string{"fixed long routes"}},
	"elytra_aerial": {Name: "elytra_aerial", Description: "glide with rockets and scan from altitude",
		Efficiency: 1.0, Coverage: 0.95,
		Requirements: []string{"elytra", "firework_rocket"},
		BestFor:      []string{"end_city", "large area survey"}},
}

var navSynonyms = map[string]string{
	"lines":      "grid",
	"sweep":      "grid",
	"circle":     "spiral",
	"wander":     "random_walk",
	"random":     "random_walk",
	"nether":     "nether_highway",
	"highway":    "nether_highway",
	"eyes":       "eye_tracking",
	"map":        "cartographer_map",
	"boat":       "ocean_exploration",
	"sail":       "ocean_exploration",
	"caving":     "cave_exploration",
	"spelunking": "cave_exploration",
	"islands":    "island_hopping",
	"clearing":   "systematic_clearing",
	"ice":        "ice_highway",
	"elytra":     "elytra_aerial",
	"flight":     "elytra_aerial",
	"fly":        "elytra_aerial",
}

func NavStrategyByName(name string) (NavStrategy, bool) {
	_, s, ok := lookup(NavStrategies, navSynonyms, name)
	return s, ok
}

// SuggestNavStrategy picks a strategy for seeking the named structure,
// falling back to grid.
func SuggestNavStrategy(structure string) NavStrategy {
	if s, ok := StructureByName(structure); ok {
		if nav, ok := NavStrategies[s.SearchStrategy]; ok {
			return nav
		}
	}
	return NavStrategies["grid"]
}
