package catalog

import "strings"

// Sleep window in ticks, plus the physical constraints a bed spot must meet.
const (
	SleepWindowStart = 12541
	SleepWindowEnd   = 23458

	// Beds detonate outside the overworld.
	BedExplosionPower = 5

	MobProximityHorizontal = 8
	MobProximityVertical   = 5
	BedClearanceAbove      = 2
)

var bedColors = []string{
	"white", "orange", "magenta", "light_blue", "yellow", "lime", "pink",
	"gray", "light_gray", "cyan", "purple", "blue", "brown", "green",
	"red", "black",
}

// IsBed reports whether the item name is any bed variant.
func IsBed(name string) bool {
	key := CanonicalKey(name)
	if key == "" {
		return false
	}
	if key == "bed" {
		return true
	}
	if !strings.HasSuffix(key, "_bed") {
		return false
	}
	color := strings.TrimSuffix(key, "_bed")
	for _, c := range bedColors {
		if c == color {
			return true
		}
	}
	return false
}

// BedAllowedIn reports whether sleeping is safe in the dimension. Empty
// means overworld.
func BedAllowedIn(dimension string) bool {
	switch CanonicalKey(dimension) {
	case "", "overworld", "minecraft:overworld":
		return true
	}
	return false
}

// WithinSleepWindow reports whether the time of day permits sleep.
func WithinSleepWindow(timeOfDay int) bool {
	return timeOfDay >= SleepWindowStart && timeOfDay <= SleepWindowEnd
}

// sleepIgnoredMobs are nearby mobs that do not block sleep despite being
// monsters by category. The list is fixed.
var sleepIgnoredMobs = map[string]struct{}{
	"zombified_piglin": {},
	"enderman":         {},
	"spider":           {},
	"cave_spider":      {},
	"slime":            {},
}

// MobBlocksSleep reports whether a hostile of this type within range keeps
// the bed unusable.
func MobBlocksSleep(mobType string) bool {
	key := CanonicalKey(mobType)
	if key == "" {
		return false
	}
	_, ignored := sleepIgnoredMobs[key]
	return !ignored
}
