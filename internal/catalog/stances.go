package catalog

// Stance is a combat posture. EngagementDistance is the preferred range in
// blocks; SquadAdvice is surfaced verbatim in plan notes when squads form.
type Stance struct {
	Name               string   `json:"name"`
	EngagementDistance int      `json:"engagementDistance"`
	WeaponPreference   []string `json:"weaponPreference"`
	SquadAdvice        string   `json:"squadAdvice"`
}

var Stances = map[string]Stance{
	"aggressive": {Name: "aggressive", EngagementDistance: 2,
		WeaponPreference: []string{"axe", "sword"},
		SquadAdvice:      "press together and focus one target at a time"},
	"defensive": {Name: "defensive", EngagementDistance: 3,
		WeaponPreference: []string{"sword", "shield"},
		SquadAdvice:      "hold shields up, trade hits only on openings"},
	"guard": {Name: "guard", EngagementDistance: 5,
		WeaponPreference: []string{"sword", "shield"},
		SquadAdvice:      "hold the post, engage only what crosses the line"},
	"ranged": {Name: "ranged", EngagementDistance: 12,
		WeaponPreference: []string{"bow", "crossbow"},
		SquadAdvice:      "stagger volleys so someone is always drawn"},
	"stealth": {Name: "stealth", EngagementDistance: 16,
		WeaponPreference: []string{"bow", "sword"},
		SquadAdvice:      "spread wide, strike from dark sides simultaneously"},
}

var stanceSynonyms = map[string]string{
	"attack":  "aggressive",
	"assault": "aggressive",
	"defend":  "defensive",
	"tank":    "defensive",
	"protect": "guard",
	"hold":    "guard",
	"archer":  "ranged",
	"sniper":  "ranged",
	"sneak":   "stealth",
	"ambush":  "stealth",
}

func StanceByName(name string) (Stance, bool) {
	_, s, ok := lookup(Stances, stanceSynonyms, name)
	return s, ok
}
