package catalog

import "strings"

// Canonical hazard vocabulary. Free-form hazard text is folded onto these
// types; anything unrecognized becomes "unknown".
const (
	HazardLava      = "lava"
	HazardWater     = "water"
	HazardEnemy     = "enemy"
	HazardVoid      = "void"
	HazardFall      = "fall"
	HazardExplosive = "explosive"
	HazardCaveIn    = "cave_in"
	HazardDarkness  = "darkness"
	HazardDrowning  = "drowning"
	HazardGravel    = "gravel"
	HazardUnknown   = "unknown"
)

const (
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

type Hazard struct {
	Type        string   `json:"type"`
	Severity    string   `json:"severity"`
	Mitigations []string `json:"mitigations,omitempty"`
}

var Hazards = map[string]Hazard{
	HazardLava:      {Type: HazardLava, Severity: SeverityCritical, Mitigations: []string{"fire_resistance_potion", "water_bucket", "non-flammable blocks"}},
	HazardVoid:      {Type: HazardVoid, Severity: SeverityCritical, Mitigations: []string{"bridge with rails of blocks", "sneak near edges"}},
	HazardExplosive: {Type: HazardExplosive, Severity: SeverityCritical, Mitigations: []string{"shield", "blast gap", "engage at range"}},
	HazardFall:      {Type: HazardFall, Severity: SeverityHigh, Mitigations: []string{"water_bucket", "slow_falling_potion", "scaffolding"}},
	HazardEnemy:     {Type: HazardEnemy, Severity: SeverityHigh, Mitigations: []string{"weapon", "shield", "torches to suppress spawns"}},
	HazardDrowning:  {Type: HazardDrowning, Severity: SeverityHigh, Mitigations: []string{"water_breathing_potion", "air pockets with doors"}},
	HazardCaveIn:    {Type: HazardCaveIn, Severity: SeverityHigh, Mitigations: []string{"support pillars", "listen for gravel", "dig around falling blocks"}},
	HazardWater:     {Type: HazardWater, Severity: SeverityModerate, Mitigations: []string{"boat", "sponge", "dry a work channel"}},
	HazardGravel:    {Type: HazardGravel, Severity: SeverityModerate, Mitigations: []string{"torch trick under falling columns", "dig beside not beneath"}},
	HazardDarkness:  {Type: HazardDarkness, Severity: SeverityModerate, Mitigations: []string{"torch", "night_vision_potion"}},
	HazardUnknown:   {Type: HazardUnknown, Severity: SeverityModerate, Mitigations: []string{"proceed cautiously", "keep an escape route"}},
}

var hazardHints = []struct {
	contains string
	typ      string
}{
	{"lava", HazardLava},
	{"magma", HazardLava},
	{"fire", HazardLava},
	{"void", HazardVoid},
	{"tnt", HazardExplosive},
	{"creeper", HazardExplosive},
	{"explos", HazardExplosive},
	{"blast", HazardExplosive},
	{"drown", HazardDrowning},
	{"water", HazardWater},
	{"flood", HazardWater},
	{"fall", HazardFall},
	{"cliff", HazardFall},
	{"height", HazardFall},
	{"ledge", HazardFall},
	{"cave_in", HazardCaveIn},
	{"cave in", HazardCaveIn},
	{"collapse", HazardCaveIn},
	{"gravel", HazardGravel},
	{"sand", HazardGravel},
	{"dark", HazardDarkness},
	{"light", HazardDarkness},
	{"mob", HazardEnemy},
	{"enem", HazardEnemy},
	{"monster", HazardEnemy},
	{"hostile", HazardEnemy},
	{"zombie", HazardEnemy},
	{"skeleton", HazardEnemy},
	{"spider", HazardEnemy},
}

// NormalizeHazardType folds free-form hazard text onto the canonical
// vocabulary.
func NormalizeHazardType(v string) string {
	key := CanonicalKey(v)
	if key == "" {
		return HazardUnknown
	}
	if _, ok := Hazards[key]; ok {
		return key
	}
	for _, h := range hazardHints {
		if strings.Contains(key, h.contains) {
			return h.typ
		}
	}
	return HazardUnknown
}

// HazardFor resolves free-form hazard text to its profile; unknown text
// yields the unknown profile, never a miss.
func HazardFor(v string) Hazard {
	return Hazards[NormalizeHazardType(v)]
}

// NormalizeSeverity folds free-form severity text onto the canonical scale,
// defaulting to moderate.
func NormalizeSeverity(v string) string {
	switch CanonicalKey(v) {
	case SeverityLow, "minor", "trivial":
		return SeverityLow
	case SeverityModerate, "medium", "mod":
		return SeverityModerate
	case SeverityHigh, "severe", "major":
		return SeverityHigh
	case SeverityCritical, "extreme", "deadly", "fatal", "lethal":
		return SeverityCritical
	}
	return SeverityModerate
}

var severityRank = map[string]int{
	SeverityLow:      0,
	SeverityModerate: 1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// SeverityRank orders severities for sorting; higher is worse.
func SeverityRank(severity string) int {
	return severityRank[NormalizeSeverity(severity)]
}
