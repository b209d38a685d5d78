package catalog

import "mindcraftce.ai/internal/task"

type Dimensions struct {
	Length int `json:"length"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) Area() int      { return d.Length * d.Width }
func (d Dimensions) Perimeter() int { return 2 * (d.Length + d.Width) }

// Template is a named building blueprint. EstimatedDuration is the build
// time in milliseconds for the template as drawn; planners scale it when
// the caller overrides dimensions.
type Template struct {
	Name              string             `json:"name"`
	DisplayName       string             `json:"displayName"`
	Category          string             `json:"category"`
	Dimensions        Dimensions         `json:"dimensions"`
	Materials         []task.Requirement `json:"materials"`
	Difficulty        string             `json:"difficulty"`
	RoofStyle         string             `json:"roofStyle"`
	Features          []string           `json:"features,omitempty"`
	EstimatedDuration int                `json:"estimatedDuration"`
}

var Templates = map[string]Template{
	"basic_house": {Name: "basic_house", DisplayName: "Basic House", Category: "residential",
		Dimensions: Dimensions{Length: 7, Width: 5, Height: 4},
		Materials: []task.Requirement{
			{Name: "oak_planks", Count: 96},
			{Name: "oak_log", Count: 16},
			{Name: "glass_pane", Count: 6},
			{Name: "oak_door", Count: 1},
			{Name: "torch", Count: 6},
		},
		Difficulty: "easy", RoofStyle: "pitched",
		Features:          []string{"door", "windows", "lighting"},
		EstimatedDuration: 18000},
	"stone_cottage": {Name: "stone_cottage", DisplayName: "Stone Cottage", Category: "residential",
		Dimensions: Dimensions{Length: 9, Width: 7, Height: 5},
		Materials: []task.Requirement{
			{Name: "cobblestone", Count: 128},
			{Name: "spruce_planks", Count: 64},
			{Name: "glass_pane", Count: 8},
			{Name: "spruce_door", Count: 1},
			{Name: "torch", Count: 8},
		},
		Difficulty: "easy", RoofStyle: "pitched",
		Features:          []string{"door", "windows", "lighting", "chimney"},
		EstimatedDuration: 32000},
	"watchtower": {Name: "watchtower", DisplayName: "Watchtower", Category: "defensive",
		Dimensions: Dimensions{Length: 5, Width: 5, Height: 12},
		Materials: []task.Requirement{
			{Name: "stone_bricks", Count: 192},
			{Name: "oak_planks", Count: 32},
			{Name: "ladder", Count: 12},
			{Name: "torch", Count: 10},
		},
		Difficulty: "medium", RoofStyle: "battlements",
		Features:          []string{"ladder", "lookout platform", "battlements", "lighting"},
		EstimatedDuration: 45000},
	"fortified_keep": {Name: "fortified_keep", DisplayName: "Fortified Keep", Category: "defensive",
		Dimensions: Dimensions{Length: 11, Width: 11, Height: 8},
		Materials: []task.Requirement{
			{Name: "stone_bricks", Count: 512},
			{Name: "iron_door", Count: 2},
			{Name: "iron_bars", Count: 16},
			{Name: "torch", Count: 20},
		},
		Difficulty: "hard", RoofStyle: "battlements",
		Features:          []string{"iron doors", "arrow slits", "battlements", "perimeter wall"},
		EstimatedDuration: 120000},
	"crop_farm": {Name: "crop_farm", DisplayName: "Crop Farm", Category: "agricultural",
		Dimensions: Dimensions{Length: 9, Width: 9, Height: 1},
		Materials: []task.Requirement{
			{Name: "oak_log", Count: 20},
			{Name: "water_bucket", Count: 1},
			{Name: "wheat_seeds", Count: 64},
			{Name: "torch", Count: 8},
			{Name: "composter", Count: 1},
		},
		Difficulty: "easy", RoofStyle: "none",
		Features:          []string{"irrigation", "fenced border", "composter"},
		EstimatedDuration: 20000},
	"animal_barn": {Name: "animal_barn", DisplayName: "Animal Barn", Category: "agricultural",
		Dimensions: Dimensions{Length: 9, Width: 7, Height: 5},
		Materials: []task.Requirement{
			{Name: "spruce_planks", Count: 96},
			{Name: "oak_fence", Count: 32},
			{Name: "oak_fence_gate", Count: 2},
			{Name: "hay_block", Count: 8},
			{Name: "torch", Count: 8},
		},
		Difficulty: "medium", RoofStyle: "pitched",
		Features:          []string{"stalls", "fence gates", "hay storage"},
		EstimatedDuration: 40000},
	"warehouse": {Name: "warehouse", DisplayName: "Warehouse", Category: "storage",
		Dimensions: Dimensions{Length: 11, Width: 9, Height: 6},
		Materials: []task.Requirement{
			{Name: "oak_planks", Count: 192},
			{Name: "chest", Count: 24},
			{Name: "barrel", Count: 12},
			{Name: "item_frame", Count: 24},
			{Name: "torch", Count: 12},
		},
		Difficulty: "medium", RoofStyle: "flat",
		Features:          []string{"sorted chest rows", "labels", "wide doors"},
		EstimatedDuration: 60000},
	"storage_silo": {Name: "storage_silo", DisplayName: "Storage Silo", Category: "storage",
		Dimensions: Dimensions{Length: 5, Width: 5, Height: 10},
		Materials: []task.Requirement{
			{Name: "smooth_stone", Count: 160},
			{Name: "chest", Count: 10},
			{Name: "hopper", Count: 5},
			{Name: "ladder", Count: 10},
		},
		Difficulty: "medium", RoofStyle: "domed",
		Features:          []string{"hopper feed", "vertical access"},
		EstimatedDuration: 50000},
	"great_hall": {Name: "great_hall", DisplayName: "Great Hall", Category: "monumental",
		Dimensions: Dimensions{Length: 15, Width: 11, Height: 9},
		Materials: []task.Requirement{
			{Name: "stone_bricks", Count: 640},
			{Name: "dark_oak_planks", Count: 128},
			{Name: "glass_pane", Count: 24},
			{Name: "chandelier", Count: 3},
			{Name: "red_carpet", Count: 40},
		},
		Difficulty: "hard", RoofStyle: "pitched",
		Features:          []string{"vaulted ceiling", "long table", "banners"},
		EstimatedDuration: 180000},
	"beacon_pyramid": {Name: "beacon_pyramid", DisplayName: "Beacon Pyramid", Category: "monumental",
		Dimensions: Dimensions{Length: 9, Width: 9, Height: 5},
		Materials: []task.Requirement{
			{Name: "iron_block", Count: 164},
			{Name: "beacon", Count: 1},
			{Name: "glass", Count: 4},
		},
		Difficulty: "hard", RoofStyle: "none",
		Features:          []string{"full power beacon", "effect range"},
		EstimatedDuration: 90000},
}

var templateSynonyms = map[string]string{
	"house":   "basic_house",
	"home":    "basic_house",
	"cottage": "stone_cottage",
	"cabin":   "stone_cottage",
	"tower":   "watchtower",
	"castle":  "fortified_keep",
	"keep":    "fortified_keep",
	"farm":    "crop_farm",
	"barn":    "animal_barn",
	"silo":    "storage_silo",
	"hall":    "great_hall",
	"pyramid": "beacon_pyramid",
	"beacon":  "beacon_pyramid",
}

func TemplateByName(name string) (Template, bool) {
	_, t, ok := lookup(Templates, templateSynonyms, name)
	return t, ok
}

// TemplatesInCategory lists templates of one category in name order.
func TemplatesInCategory(category string) []Template {
	out := make([]Template, 0, 4)
	for _, k := range sortedKeys(Templates) {
		if Templates[k].Category == category {
			out = append(out, Templates[k])
		}
	}
	return out
}
