package envelope

import (
	"testing"

	"mindcraftce.ai/internal/task"
)

func TestNormalizeChestMode(t *testing.T) {
	cases := map[string]string{
		"deposit":  "deposit",
		"stash":    "deposit",
		"unload":   "deposit",
		"withdraw": "withdraw",
		"loot":     "withdraw",
		"take out": "withdraw",
		"":         "inspect",
		"peek":     "inspect",
	}
	for in, want := range cases {
		if got := NormalizeChestMode(in); got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestNormalizeInventoryMode(t *testing.T) {
	cases := map[string]string{
		"check":    "summary",
		"find":     "locate",
		"where is": "locate",
		"tally":    "count",
		"missing":  "missing",
		"organize": "manage",
		"open":     "open",
		"":         "summary",
		"shuffle":  "summary",
	}
	for in, want := range cases {
		if got := NormalizeInventoryMode(in); got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestNormalizeCombatStyle(t *testing.T) {
	cases := map[string]string{
		"melee":    "melee",
		"tank":     "defensive",
		"healer":   "support",
		"hybrid":   "balanced",
		"archer":   "ranged",
		"swordman": "melee",
		"":         "balanced",
	}
	for in, want := range cases {
		if got := NormalizeCombatStyle(in); got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestNormalizeUsageType(t *testing.T) {
	cases := map[string]string{
		"heal":              "heal",
		"potion of healing": "heal",
		"strength brew":     "buff",
		"weapon":            "attack",
		"iron pickaxe":      "tool",
		"place blocks":      "place",
		"drink":             "consume",
		"wear":              "equip",
		"open the gate":     "interact",
		"whatever":          "utility",
	}
	for in, want := range cases {
		if got := NormalizeUsageType(in); got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestNormalizeEquipSlot(t *testing.T) {
	cases := map[string]string{
		"main_hand":  "main_hand",
		"helmet":     "head",
		"chestplate": "chest",
		"leggings":   "legs",
		"boots":      "feet",
		"shield":     "off_hand",
		"trinket":    "accessory",
		"":           "main_hand",
	}
	for in, want := range cases {
		if got := NormalizeEquipSlot(in); got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestNormalizeLoadoutPriority(t *testing.T) {
	cases := map[string]string{
		"primary": "primary",
		"alt":     "secondary",
		"spare":   "backup",
		"":        "primary",
	}
	for in, want := range cases {
		if got := NormalizeLoadoutPriority(in); got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestNormalizePriorityRank(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{1, "primary"},
		{2.0, "secondary"},
		{3, "tertiary"},
		{7, "optional"},
		{"main", "primary"},
		{"third", "tertiary"},
		{nil, "optional"},
	}
	for _, tc := range cases {
		if got := NormalizePriorityRank(tc.in); got != tc.want {
			t.Fatalf("%v: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeCombatMetadata(t *testing.T) {
	got := normalizeCombat(task.Metadata{
		"stance":  "tank",
		"enemies": []any{"creeper", "zombie", "creeper", "gorblax"},
		"protect": "the gatehouse",
	})
	if got["style"] != "defensive" {
		t.Fatalf("style: %v", got["style"])
	}
	targets, ok := got["targets"].([]map[string]any)
	if !ok || len(targets) != 3 {
		t.Fatalf("targets: %v", got["targets"])
	}
	if targets[0]["name"] != "creeper" || targets[0]["rank"] != "primary" {
		t.Fatalf("creeper rank: %v", targets[0])
	}
	if targets[1]["name"] != "zombie" || targets[1]["rank"] != "tertiary" {
		t.Fatalf("zombie rank: %v", targets[1])
	}
	if targets[2]["rank"] != "optional" {
		t.Fatalf("unknown enemy rank: %v", targets[2])
	}
	if got["protect"] != "the gatehouse" {
		t.Fatalf("protect: %v", got["protect"])
	}
}

func TestNormalizeChestMetadata(t *testing.T) {
	got := normalizeChest(task.Metadata{
		"operation": "stash",
		"object":    "chest",
		"items":     []any{map[string]any{"name": "cobblestone", "count": 32}},
	})
	if got["mode"] != "deposit" {
		t.Fatalf("mode: %v", got["mode"])
	}
	items, ok := got["items"].([]map[string]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items: %v", got["items"])
	}
	if items[0]["name"] != "cobblestone" || items[0]["count"] != 32 {
		t.Fatalf("item move: %v", items[0])
	}
}

func TestNormalizeEquipMetadata(t *testing.T) {
	got := normalizeEquip(task.Metadata{"item": "Iron Helmet", "slot": "helmet", "priority": "spare"})
	if got["slot"] != "head" || got["priority"] != "backup" || got["item"] != "iron helmet" {
		t.Fatalf("equip: %v", got)
	}
}

func TestNormalizeUsageMetadata(t *testing.T) {
	got := normalizeUsage(task.Metadata{"item": "golden_apple", "purpose": "eat before the fight"})
	if got["usage"] != "consume" {
		t.Fatalf("usage: %v", got)
	}
	if got["item"] != "golden_apple" {
		t.Fatalf("item: %v", got)
	}
}

func TestNormalizeDigMetadata(t *testing.T) {
	got := normalizeDig(task.Metadata{"strategy": "corridor", "length": 12, "width": 3})
	if got["strategy"] != "tunnel" {
		t.Fatalf("strategy: %v", got)
	}
	if got["length"] != 12 || got["width"] != 3 {
		t.Fatalf("dims: %v", got)
	}
}
