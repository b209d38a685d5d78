package catalog

import "math"

// Scaffolding craft ratio: 6 bamboo + 1 string yield 6 blocks.
const (
	ScaffoldCraftBambooCost = 6
	ScaffoldCraftStringCost = 1
	ScaffoldCraftYield      = 6
)

type ScaffoldPattern struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Risk        string `json:"risk,omitempty"`
}

var ScaffoldPatterns = map[string]ScaffoldPattern{
	"tower":       {Name: "tower", Description: "single column straight up, climbable inside"},
	"platform":    {Name: "platform", Description: "horizontal deck at working height"},
	"bridge":      {Name: "bridge", Description: "span between two points", Risk: "fall from unfinished span"},
	"spiral":      {Name: "spiral", Description: "staircase wrap around a central column"},
	"cage":        {Name: "cage", Description: "hollow shell around a build footprint"},
	"waterlogged": {Name: "waterlogged", Description: "platform over water with extra supports", Risk: "supports wash out if misplaced"},
}

var scaffoldSynonyms = map[string]string{
	"pillar":    "tower",
	"column":    "tower",
	"deck":      "platform",
	"floor":     "platform",
	"span":      "bridge",
	"walkway":   "bridge",
	"stairs":    "spiral",
	"shell":     "cage",
	"enclosure": "cage",
	"water":     "waterlogged",
}

func ScaffoldPatternByName(name string) (ScaffoldPattern, bool) {
	_, p, ok := lookup(ScaffoldPatterns, scaffoldSynonyms, name)
	return p, ok
}

// BlocksNeeded computes the scaffolding block count for a pattern at the
// given dimensions. Unknown patterns price as a tower.
func (p ScaffoldPattern) BlocksNeeded(d Dimensions) int {
	l, w, h := d.Length, d.Width, d.Height
	if l < 1 {
		l = 1
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	var n int
	switch p.Name {
	case "platform":
		n = l * w
	case "bridge":
		n = l * w
	case "spiral":
		n = h * 2
	case "cage":
		n = Dimensions{Length: l, Width: w}.Perimeter() * h
	case "waterlogged":
		n = int(math.Ceil(1.25 * float64(l*w)))
	default: // tower
		n = h
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ScaffoldCraftBatches returns how many craft operations cover a deficit
// and the bamboo and string they consume.
func ScaffoldCraftBatches(deficit int) (batches, bamboo, strings int) {
	if deficit <= 0 {
		return 0, 0, 0
	}
	batches = (deficit + ScaffoldCraftYield - 1) / ScaffoldCraftYield
	return batches, batches * ScaffoldCraftBambooCost, batches * ScaffoldCraftStringCost
}
