package catalog

// MaxThrowRange caps planned throw distance in blocks.
const MaxThrowRange = 120

// Throwable physics are in blocks and seconds; Velocity is initial speed in
// blocks per tick as the game applies it.
type Throwable struct {
	Name            string  `json:"name"`
	Velocity        float64 `json:"velocity"`
	Gravity         float64 `json:"gravity"`
	SplashRadius    float64 `json:"splashRadius,omitempty"`
	Cooldown        float64 `json:"cooldown,omitempty"`
	ConsumesOnThrow bool    `json:"consumesOnThrow"`
	FallDamage      int     `json:"fallDamage,omitempty"`
	Trajectory      string  `json:"trajectory"`
	Note            string  `json:"note,omitempty"`
}

var Throwables = map[string]Throwable{
	"ender_pearl": {Name: "ender_pearl", Velocity: 1.5, Gravity: 0.03, Cooldown: 1.0,
		ConsumesOnThrow: true, FallDamage: 5, Trajectory: "arc",
		Note: "teleports the thrower to the landing point"},
	"snowball": {Name: "snowball", Velocity: 1.5, Gravity: 0.03, Cooldown: 0.0,
		ConsumesOnThrow: true, Trajectory: "arc",
		Note: "knockback only, damages blazes"},
	"egg": {Name: "egg", Velocity: 1.5, Gravity: 0.03,
		ConsumesOnThrow: true, Trajectory: "arc"},
	"splash_potion": {Name: "splash_potion", Velocity: 0.5, Gravity: 0.05, SplashRadius: 4.0,
		ConsumesOnThrow: true, Trajectory: "arc",
		Note: "effect strength falls off from the impact point"},
	"lingering_potion": {Name: "lingering_potion", Velocity: 0.5, Gravity: 0.05, SplashRadius: 3.0,
		ConsumesOnThrow: true, Trajectory: "arc",
		Note: "leaves a cloud for thirty seconds"},
	"trident": {Name: "trident", Velocity: 2.5, Gravity: 0.05, Cooldown: 0.85,
		ConsumesOnThrow: false, Trajectory: "straight",
		Note: "returns with loyalty, stays where it lands otherwise"},
	"experience_bottle": {Name: "experience_bottle", Velocity: 0.7, Gravity: 0.07,
		ConsumesOnThrow: true, Trajectory: "arc"},
	"firework_rocket": {Name: "firework_rocket", Velocity: 1.6, Gravity: 0.0,
		ConsumesOnThrow: true, Trajectory: "straight",
		Note: "crossbow-launched, explodes on impact"},
}

var throwableSynonyms = map[string]string{
	"pearl":      "ender_pearl",
	"enderpearl": "ender_pearl",
	"potion":     "splash_potion",
	"xp_bottle":  "experience_bottle",
	"rocket":     "firework_rocket",
}

func ThrowableByName(name string) (Throwable, bool) {
	_, t, ok := lookup(Throwables, throwableSynonyms, name)
	return t, ok
}
