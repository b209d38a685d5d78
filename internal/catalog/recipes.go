package catalog

import "math"

// RecipeItem is one ingredient line of a recipe.
type RecipeItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Recipe describes one craft: what comes out, how many per batch, where it
// happens, and what goes in.
type Recipe struct {
	Output      string       `json:"output"`
	Count       int          `json:"count"`
	Station     string       `json:"station,omitempty"`
	Ingredients []RecipeItem `json:"ingredients"`
}

const (
	StationCraftingTable = "crafting_table"
	StationFurnace       = "furnace"
	StationSmithingTable = "smithing_table"
)

// Recipes covers the crafts NPCs run day to day. Counts are per batch.
var Recipes = map[string]Recipe{
	"oak_planks": {Output: "oak_planks", Count: 4,
		Ingredients: []RecipeItem{{Name: "oak_log", Count: 1}}},
	"stick": {Output: "stick", Count: 4,
		Ingredients: []RecipeItem{{Name: "oak_planks", Count: 2}}},
	"torch": {Output: "torch", Count: 4,
		Ingredients: []RecipeItem{{Name: "coal", Count: 1}, {Name: "stick", Count: 1}}},
	"crafting_table": {Output: "crafting_table", Count: 1,
		Ingredients: []RecipeItem{{Name: "oak_planks", Count: 4}}},
	"chest": {Output: "chest", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "oak_planks", Count: 8}}},
	"furnace": {Output: "furnace", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "cobblestone", Count: 8}}},
	"bread": {Output: "bread", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "wheat", Count: 3}}},
	"oak_door": {Output: "oak_door", Count: 3, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "oak_planks", Count: 6}}},
	"glass_pane": {Output: "glass_pane", Count: 16, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "glass", Count: 6}}},
	"ladder": {Output: "ladder", Count: 3, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "stick", Count: 7}}},
	"scaffolding": {Output: "scaffolding", Count: ScaffoldCraftYield, Station: StationCraftingTable,
		Ingredients: []RecipeItem{
			{Name: "bamboo", Count: ScaffoldCraftBambooCost},
			{Name: "string", Count: ScaffoldCraftStringCost}}},
	"bucket": {Output: "bucket", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "iron_ingot", Count: 3}}},
	"shield": {Output: "shield", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "oak_planks", Count: 6}, {Name: "iron_ingot", Count: 1}}},
	"iron_pickaxe": {Output: "iron_pickaxe", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "iron_ingot", Count: 3}, {Name: "stick", Count: 2}}},
	"iron_axe": {Output: "iron_axe", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "iron_ingot", Count: 3}, {Name: "stick", Count: 2}}},
	"iron_shovel": {Output: "iron_shovel", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "iron_ingot", Count: 1}, {Name: "stick", Count: 2}}},
	"iron_sword": {Output: "iron_sword", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "iron_ingot", Count: 2}, {Name: "stick", Count: 1}}},
	"bow": {Output: "bow", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "stick", Count: 3}, {Name: "string", Count: 3}}},
	"arrow": {Output: "arrow", Count: 4, Station: StationCraftingTable,
		Ingredients: []RecipeItem{
			{Name: "flint", Count: 1}, {Name: "stick", Count: 1}, {Name: "feather", Count: 1}}},
	"rail": {Output: "rail", Count: 16, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "iron_ingot", Count: 6}, {Name: "stick", Count: 1}}},
	"powered_rail": {Output: "powered_rail", Count: 6, Station: StationCraftingTable,
		Ingredients: []RecipeItem{
			{Name: "gold_ingot", Count: 6}, {Name: "stick", Count: 1}, {Name: "redstone", Count: 1}}},
	"minecart": {Output: "minecart", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "iron_ingot", Count: 5}}},
	"white_bed": {Output: "white_bed", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "white_wool", Count: 3}, {Name: "oak_planks", Count: 3}}},
	"redstone_torch": {Output: "redstone_torch", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "redstone", Count: 1}, {Name: "stick", Count: 1}}},
	"lever": {Output: "lever", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{{Name: "cobblestone", Count: 1}, {Name: "stick", Count: 1}}},
	"piston": {Output: "piston", Count: 1, Station: StationCraftingTable,
		Ingredients: []RecipeItem{
			{Name: "oak_planks", Count: 3}, {Name: "cobblestone", Count: 4},
			{Name: "iron_ingot", Count: 1}, {Name: "redstone", Count: 1}}},
	"iron_ingot": {Output: "iron_ingot", Count: 1, Station: StationFurnace,
		Ingredients: []RecipeItem{{Name: "raw_iron", Count: 1}, {Name: "coal", Count: 1}}},
	"glass": {Output: "glass", Count: 1, Station: StationFurnace,
		Ingredients: []RecipeItem{{Name: "sand", Count: 1}, {Name: "coal", Count: 1}}},
	"charcoal": {Output: "charcoal", Count: 1, Station: StationFurnace,
		Ingredients: []RecipeItem{{Name: "oak_log", Count: 1}, {Name: "coal", Count: 1}}},
}

var recipeSynonyms = map[string]string{
	"planks":   "oak_planks",
	"plank":    "oak_planks",
	"sticks":   "stick",
	"torches":  "torch",
	"door":     "oak_door",
	"bed":      "white_bed",
	"pickaxe":  "iron_pickaxe",
	"axe":      "iron_axe",
	"shovel":   "iron_shovel",
	"sword":    "iron_sword",
	"arrows":   "arrow",
	"rails":    "rail",
	"smelting": "iron_ingot",
}

// RecipeFor resolves an output name to its recipe.
func RecipeFor(name string) (Recipe, bool) {
	_, r, ok := lookup(Recipes, recipeSynonyms, name)
	return r, ok
}

// CraftBatches returns how many batches produce at least want outputs.
func CraftBatches(r Recipe, want int) int {
	if want <= 0 || r.Count <= 0 {
		return 0
	}
	return int(math.Ceil(float64(want) / float64(r.Count)))
}

// IngredientsFor scales a recipe's ingredient list to the batch count.
func IngredientsFor(r Recipe, batches int) []RecipeItem {
	if batches <= 0 {
		return nil
	}
	out := make([]RecipeItem, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		out[i] = RecipeItem{Name: ing.Name, Count: ing.Count * batches}
	}
	return out
}
