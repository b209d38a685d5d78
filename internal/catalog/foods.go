package catalog

import "math"

const maxHunger = 20

type FoodEffect struct {
	Name       string  `json:"name"`
	Duration   float64 `json:"duration,omitempty"`
	Amplifier  int     `json:"amplifier,omitempty"`
	Chance     float64 `json:"chance,omitempty"`
	Beneficial bool    `json:"beneficial,omitempty"`
}

type Food struct {
	Name         string       `json:"name"`
	Hunger       int          `json:"hunger"`
	Saturation   float64      `json:"saturation"`
	EatTime      float64      `json:"eatTime"`
	Effects      []FoodEffect `json:"effects,omitempty"`
	Category     string       `json:"category"`
	StackSize    int          `json:"stackSize"`
	AlwaysEdible bool         `json:"alwaysEdible,omitempty"`
	ReturnItem   string       `json:"returnItem,omitempty"`
	Sliceable    bool         `json:"sliceable,omitempty"`
	Cookable     bool         `json:"cookable,omitempty"`
	CooksInto    string       `json:"cooksInto,omitempty"`
}

// Foods keys the edible catalog by canonical item name. Effect chances are
// informational; planning treats listed effects as certain.
var Foods = map[string]Food{
	"apple":           {Name: "apple", Hunger: 4, Saturation: 2.4, EatTime: 1.6, Category: "fruit", StackSize: 64},
	"baked_potato":    {Name: "baked_potato", Hunger: 5, Saturation: 6.0, EatTime: 1.6, Category: "vegetable", StackSize: 64},
	"beetroot":        {Name: "beetroot", Hunger: 1, Saturation: 1.2, EatTime: 1.6, Category: "vegetable", StackSize: 64},
	"beetroot_soup":   {Name: "beetroot_soup", Hunger: 6, Saturation: 7.2, EatTime: 1.6, Category: "stew", StackSize: 1, ReturnItem: "bowl"},
	"bread":           {Name: "bread", Hunger: 5, Saturation: 6.0, EatTime: 1.6, Category: "baked", StackSize: 64},
	"cake":            {Name: "cake", Hunger: 2, Saturation: 0.4, EatTime: 0.0, Category: "baked", StackSize: 1, Sliceable: true},
	"carrot":          {Name: "carrot", Hunger: 3, Saturation: 3.6, EatTime: 1.6, Category: "vegetable", StackSize: 64},
	"chorus_fruit":    {Name: "chorus_fruit", Hunger: 4, Saturation: 2.4, EatTime: 1.6, Category: "magical", StackSize: 64, AlwaysEdible: true, Effects: []FoodEffect{{Name: "teleport", Chance: 1.0}}},
	"cooked_beef":     {Name: "cooked_beef", Hunger: 8, Saturation: 12.8, EatTime: 1.6, Category: "meat", StackSize: 64},
	"cooked_chicken":  {Name: "cooked_chicken", Hunger: 6, Saturation: 7.2, EatTime: 1.6, Category: "meat", StackSize: 64},
	"cooked_cod":      {Name: "cooked_cod", Hunger: 5, Saturation: 6.0, EatTime: 1.6, Category: "fish", StackSize: 64},
	"cooked_mutton":   {Name: "cooked_mutton", Hunger: 6, Saturation: 9.6, EatTime: 1.6, Category: "meat", StackSize: 64},
	"cooked_porkchop": {Name: "cooked_porkchop", Hunger: 8, Saturation: 12.8, EatTime: 1.6, Category: "meat", StackSize: 64},
	"cooked_rabbit":   {Name: "cooked_rabbit", Hunger: 5, Saturation: 6.0, EatTime: 1.6, Category: "meat", StackSize: 64},
	"cooked_salmon":   {Name: "cooked_salmon", Hunger: 6, Saturation: 9.6, EatTime: 1.6, Category: "fish", StackSize: 64},
	"cookie":          {Name: "cookie", Hunger: 2, Saturation: 0.4, EatTime: 0.8, Category: "sweet", StackSize: 64},
	"dried_kelp":      {Name: "dried_kelp", Hunger: 1, Saturation: 0.6, EatTime: 0.865, Category: "vegetable", StackSize: 64},
	"enchanted_golden_apple": {Name: "enchanted_golden_apple", Hunger: 4, Saturation: 9.6, EatTime: 1.6, Category: "magical", StackSize: 64, AlwaysEdible: true, Effects: []FoodEffect{
		{Name: "regeneration", Duration: 20, Amplifier: 1, Chance: 1.0, Beneficial: true},
		{Name: "absorption", Duration: 120, Amplifier: 3, Chance: 1.0, Beneficial: true},
		{Name: "resistance", Duration: 300, Chance: 1.0, Beneficial: true},
		{Name: "fire_resistance", Duration: 300, Chance: 1.0, Beneficial: true},
	}},
	"glow_berries": {Name: "glow_berries", Hunger: 2, Saturation: 0.4, EatTime: 1.6, Category: "fruit", StackSize: 64},
	"golden_apple": {Name: "golden_apple", Hunger: 4, Saturation: 9.6, EatTime: 1.6, Category: "magical", StackSize: 64, AlwaysEdible: true, Effects: []FoodEffect{
		{Name: "regeneration", Duration: 5, Amplifier: 1, Chance: 1.0, Beneficial: true},
		{Name: "absorption", Duration: 120, Chance: 1.0, Beneficial: true},
	}},
	"golden_carrot":    {Name: "golden_carrot", Hunger: 6, Saturation: 14.4, EatTime: 1.6, Category: "magical", StackSize: 64},
	"honey_bottle":     {Name: "honey_bottle", Hunger: 6, Saturation: 1.2, EatTime: 2.0, Category: "sweet", StackSize: 16, ReturnItem: "glass_bottle", Effects: []FoodEffect{{Name: "clear_poison", Chance: 1.0, Beneficial: true}}},
	"melon_slice":      {Name: "melon_slice", Hunger: 2, Saturation: 1.2, EatTime: 1.6, Category: "fruit", StackSize: 64},
	"mushroom_stew":    {Name: "mushroom_stew", Hunger: 6, Saturation: 7.2, EatTime: 1.6, Category: "stew", StackSize: 1, ReturnItem: "bowl"},
	"poisonous_potato": {Name: "poisonous_potato", Hunger: 2, Saturation: 1.2, EatTime: 1.6, Category: "dangerous", StackSize: 64, Effects: []FoodEffect{{Name: "poison", Duration: 5, Chance: 0.6}}},
	"potato":           {Name: "potato", Hunger: 1, Saturation: 0.6, EatTime: 1.6, Category: "vegetable", StackSize: 64, Cookable: true, CooksInto: "baked_potato"},
	"pufferfish": {Name: "pufferfish", Hunger: 1, Saturation: 0.2, EatTime: 1.6, Category: "dangerous", StackSize: 64, Effects: []FoodEffect{
		{Name: "poison", Duration: 60, Amplifier: 1, Chance: 1.0},
		{Name: "hunger", Duration: 15, Amplifier: 2, Chance: 1.0},
		{Name: "nausea", Duration: 15, Chance: 1.0},
	}},
	"pumpkin_pie":     {Name: "pumpkin_pie", Hunger: 8, Saturation: 4.8, EatTime: 1.6, Category: "baked", StackSize: 64},
	"rabbit_stew":     {Name: "rabbit_stew", Hunger: 10, Saturation: 12.0, EatTime: 1.6, Category: "stew", StackSize: 1, ReturnItem: "bowl"},
	"raw_beef":        {Name: "raw_beef", Hunger: 3, Saturation: 1.8, EatTime: 1.6, Category: "raw", StackSize: 64, Cookable: true, CooksInto: "cooked_beef"},
	"raw_chicken":     {Name: "raw_chicken", Hunger: 2, Saturation: 1.2, EatTime: 1.6, Category: "raw", StackSize: 64, Cookable: true, CooksInto: "cooked_chicken", Effects: []FoodEffect{{Name: "hunger", Duration: 30, Chance: 0.3}}},
	"raw_cod":         {Name: "raw_cod", Hunger: 2, Saturation: 0.4, EatTime: 1.6, Category: "raw", StackSize: 64, Cookable: true, CooksInto: "cooked_cod"},
	"raw_mutton":      {Name: "raw_mutton", Hunger: 2, Saturation: 1.2, EatTime: 1.6, Category: "raw", StackSize: 64, Cookable: true, CooksInto: "cooked_mutton"},
	"raw_porkchop":    {Name: "raw_porkchop", Hunger: 3, Saturation: 1.8, EatTime: 1.6, Category: "raw", StackSize: 64, Cookable: true, CooksInto: "cooked_porkchop"},
	"raw_rabbit":      {Name: "raw_rabbit", Hunger: 3, Saturation: 1.8, EatTime: 1.6, Category: "raw", StackSize: 64, Cookable: true, CooksInto: "cooked_rabbit"},
	"raw_salmon":      {Name: "raw_salmon", Hunger: 2, Saturation: 0.4, EatTime: 1.6, Category: "raw", StackSize: 64, Cookable: true, CooksInto: "cooked_salmon"},
	"rotten_flesh":    {Name: "rotten_flesh", Hunger: 4, Saturation: 0.8, EatTime: 1.6, Category: "dangerous", StackSize: 64, Effects: []FoodEffect{{Name: "hunger", Duration: 30, Chance: 0.8}}},
	"spider_eye":      {Name: "spider_eye", Hunger: 2, Saturation: 3.2, EatTime: 1.6, Category: "dangerous", StackSize: 64, Effects: []FoodEffect{{Name: "poison", Duration: 5, Chance: 1.0}}},
	"suspicious_stew": {Name: "suspicious_stew", Hunger: 6, Saturation: 7.2, EatTime: 1.6, Category: "stew", StackSize: 1, ReturnItem: "bowl", Effects: []FoodEffect{{Name: "varies", Chance: 1.0}}},
	"sweet_berries":   {Name: "sweet_berries", Hunger: 2, Saturation: 0.4, EatTime: 1.6, Category: "fruit", StackSize: 64},
}

var foodSynonyms = map[string]string{
	"steak":        "cooked_beef",
	"beef":         "cooked_beef",
	"porkchop":     "cooked_porkchop",
	"grilled_pork": "cooked_porkchop",
	"fish":         "cooked_cod",
	"cod":          "cooked_cod",
	"salmon":       "cooked_salmon",
	"kelp":         "dried_kelp",
	"melon":        "melon_slice",
	"berries":      "sweet_berries",
	"god_apple":    "enchanted_golden_apple",
	"notch_apple":  "enchanted_golden_apple",
	"honey":        "honey_bottle",
	"pie":          "pumpkin_pie",
	"stew":         "mushroom_stew",
	"soup":         "mushroom_stew",
}

// FoodByName runs the lookup cascade over the food table.
func FoodByName(name string) (Food, bool) {
	_, f, ok := lookup(Foods, foodSynonyms, name)
	return f, ok
}

// CanEat reports whether the food is consumable at the given hunger level.
func CanEat(f Food, hunger int) bool {
	return f.AlwaysEdible || hunger < maxHunger
}

// EatingOutcome is what one consumption of a food yields at a given hunger
// state. Restored values are capped the way the game caps them: hunger at
// 20, saturation at the post-meal hunger level.
type EatingOutcome struct {
	HungerRestored     int          `json:"hungerRestored"`
	SaturationRestored float64      `json:"saturationRestored"`
	TimeToEat          float64      `json:"timeToEat"`
	Effects            []FoodEffect `json:"effects,omitempty"`
	ReturnItem         string       `json:"returnItem,omitempty"`
}

func CalculateEatingOutcome(f Food, hunger int, saturation float64) EatingOutcome {
	if hunger < 0 {
		hunger = 0
	}
	restored := f.Hunger
	if hunger+restored > maxHunger {
		restored = maxHunger - hunger
	}
	if restored < 0 {
		restored = 0
	}
	after := float64(hunger + restored)
	satRestored := math.Min(f.Saturation, after-saturation)
	satRestored = math.Min(satRestored, f.Saturation)
	if satRestored < 0 {
		satRestored = 0
	}
	return EatingOutcome{
		HungerRestored:     restored,
		SaturationRestored: satRestored,
		TimeToEat:          f.EatTime,
		Effects:            f.Effects,
		ReturnItem:         f.ReturnItem,
	}
}
