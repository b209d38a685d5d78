package catalog

// Enemy priority runs 1..4 with 1 the most dangerous. Countermeasures are
// items worth holding before engaging.
type Enemy struct {
	Name            string   `json:"name"`
	Priority        int      `json:"priority"`
	Dodge           string   `json:"dodge,omitempty"`
	Risk            string   `json:"risk,omitempty"`
	Ranged          bool     `json:"ranged,omitempty"`
	Countermeasures []string `json:"countermeasures,omitempty"`
}

var Enemies = map[string]Enemy{
	"creeper": {Name: "creeper", Priority: 1,
		Dodge:           "sprint away the moment it hisses, re-engage at range",
		Risk:            "explosion destroys terrain and armor alike",
		Countermeasures: []string{"shield", "bow"}},
	"charged_creeper": {Name: "charged_creeper", Priority: 1,
		Dodge:           "never let it close within five blocks",
		Risk:            "doubled blast radius",
		Countermeasures: []string{"bow", "crossbow"}},
	"warden": {Name: "warden", Priority: 1,
		Dodge:           "sneak away, drop a distraction, never fight",
		Risk:            "melee one-shots most armor, sonic boom ignores walls",
		Countermeasures: []string{"wool", "snowball", "potion_of_swiftness"}},
	"ravager": {Name: "ravager", Priority: 1,
		Dodge:           "sidestep the charge, strike the flank",
		Risk:            "roar knockback and block breaking",
		Countermeasures: []string{"shield", "iron_sword"}},
	"wither_skeleton": {Name: "wither_skeleton", Priority: 2,
		Dodge:           "keep above its head height on fortress walls",
		Risk:            "wither effect drains health through armor",
		Countermeasures: []string{"milk_bucket", "shield"}},
	"skeleton": {Name: "skeleton", Priority: 2, Ranged: true,
		Dodge:           "strafe diagonally, close distance behind cover",
		Risk:            "knockback arrows near ledges and lava",
		Countermeasures: []string{"shield"}},
	"blaze": {Name: "blaze", Priority: 2, Ranged: true,
		Dodge:           "break line of sight between volleys",
		Risk:            "fireball volleys ignite the ground",
		Countermeasures: []string{"fire_resistance_potion", "snowball", "shield"}},
	"ghast": {Name: "ghast", Priority: 2, Ranged: true,
		Dodge:           "deflect the fireball back with a hit",
		Risk:            "fireballs knock bridges out from under you",
		Countermeasures: []string{"bow", "shield"}},
	"enderman": {Name: "enderman", Priority: 2,
		Dodge:           "avoid eye contact, fight under a two-block ceiling",
		Risk:            "teleports behind you when provoked",
		Countermeasures: []string{"water_bucket", "carved_pumpkin"}},
	"witch": {Name: "witch", Priority: 2, Ranged: true,
		Dodge:           "rush before the first splash potion lands",
		Risk:            "poison and slowness stack fast",
		Countermeasures: []string{"milk_bucket", "bow"}},
	"piglin_brute": {Name: "piglin_brute", Priority: 2,
		Dodge:           "kite around pillars, gold armor does not calm it",
		Risk:            "golden axe hits through shields",
		Countermeasures: []string{"shield", "bow"}},
	"vindicator": {Name: "vindicator", Priority: 2,
		Dodge:           "backpedal while striking, do not trade hits",
		Risk:            "axe breaks shields",
		Countermeasures: []string{"bow", "iron_chestplate"}},
	"evoker": {Name: "evoker", Priority: 2,
		Dodge:           "keep moving so fangs miss, kill it first",
		Risk:            "summons vexes that fly through walls",
		Countermeasures: []string{"shield", "bow"}},
	"zombie": {Name: "zombie", Priority: 3,
		Dodge:           "backpedal and swing, watch for reinforcements",
		Risk:            "packs corner you in tight spaces",
		Countermeasures: []string{"sword", "shield"}},
	"husk": {Name: "husk", Priority: 3,
		Dodge:           "same as zombie, mind the hunger effect",
		Risk:            "hits apply hunger",
		Countermeasures: []string{"sword", "bread"}},
	"drowned": {Name: "drowned", Priority: 3, Ranged: true,
		Dodge:           "fight from land, never in the water",
		Risk:            "trident throws hit hard at range",
		Countermeasures: []string{"shield", "bow"}},
	"spider": {Name: "spider", Priority: 3,
		Dodge:           "strike as it lands from the leap",
		Risk:            "climbs walls, neutral in daylight",
		Countermeasures: []string{"sword"}},
	"cave_spider": {Name: "cave_spider", Priority: 3,
		Dodge:           "plug the spawner tunnel, fight one at a time",
		Risk:            "poison in cramped mineshaft corridors",
		Countermeasures: []string{"milk_bucket", "sword"}},
	"phantom": {Name: "phantom", Priority: 3, Ranged: false,
		Dodge:           "swing upward as it swoops, stand under cover",
		Risk:            "dive attacks from above after sleepless nights",
		Countermeasures: []string{"bow", "bed"}},
	"pillager": {Name: "pillager", Priority: 3, Ranged: true,
		Dodge:           "shield up while closing distance",
		Risk:            "crossbow volleys from patrol groups",
		Countermeasures: []string{"shield"}},
	"magma_cube": {Name: "magma_cube", Priority: 3,
		Dodge:           "step sideways as it bounces",
		Risk:            "splits into smaller cubes on death",
		Countermeasures: []string{"sword"}},
	"hoglin": {Name: "hoglin", Priority: 3,
		Dodge:           "stay near warped fungus or higher ground",
		Risk:            "tusk launch into lava",
		Countermeasures: []string{"shield", "warped_fungus"}},
	"slime": {Name: "slime", Priority: 4,
		Dodge:           "kill the big one from a ledge",
		Risk:            "small ones swarm",
		Countermeasures: []string{"sword"}},
	"silverfish": {Name: "silverfish", Priority: 4,
		Dodge:           "do not break infested blocks nearby",
		Risk:            "swarms pour out of stone",
		Countermeasures: []string{"sword"}},
	"zombified_piglin": {Name: "zombified_piglin", Priority: 4,
		Dodge:           "do not strike first, ever",
		Risk:            "whole herd aggros when one is hit",
		Countermeasures: []string{"golden_boots"}},
	"endermite": {Name: "endermite", Priority: 4,
		Dodge:           "step back and swing low",
		Risk:            "appears after pearl throws",
		Countermeasures: []string{"sword"}},
}

var enemySynonyms = map[string]string{
	"zombie_pigman": "zombified_piglin",
	"pigman":        "zombified_piglin",
	"skelly":        "skeleton",
	"ender_man":     "enderman",
	"brute":         "piglin_brute",
}

func EnemyByName(name string) (Enemy, bool) {
	_, e, ok := lookup(Enemies, enemySynonyms, name)
	return e, ok
}

// CountermeasuresFor aggregates countermeasure items for a set of enemy
// names, deduplicated in first-seen order. Unknown enemies contribute the
// generic loadout.
func CountermeasuresFor(names []string) []string {
	out := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	add := func(item string) {
		if _, ok := seen[item]; ok {
			return
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	for _, n := range names {
		if e, ok := EnemyByName(n); ok {
			for _, c := range e.Countermeasures {
				add(c)
			}
			continue
		}
		add("sword")
		add("shield")
	}
	return out
}
