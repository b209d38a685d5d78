package envelope

import (
	"strings"

	"mindcraftce.ai/internal/catalog"
)

// Wire vocabularies. Free-form request text is folded onto these closed sets
// before transmission; the runtime never sees an unlisted value.

// Chest interaction modes.
const (
	ChestDeposit  = "deposit"
	ChestWithdraw = "withdraw"
	ChestInspect  = "inspect"
)

// NormalizeChestMode folds chest-operation text onto the wire set,
// defaulting to inspect.
func NormalizeChestMode(v string) string {
	key := catalog.CanonicalKey(v)
	switch key {
	case ChestDeposit, ChestWithdraw, ChestInspect:
		return key
	}
	switch {
	case strings.Contains(key, "store"), strings.Contains(key, "put"),
		strings.Contains(key, "stash"), strings.Contains(key, "dump"),
		strings.Contains(key, "unload"), strings.Contains(key, "deposit"):
		return ChestDeposit
	case strings.Contains(key, "take"), strings.Contains(key, "get"),
		strings.Contains(key, "loot"), strings.Contains(key, "grab"),
		strings.Contains(key, "collect"), strings.Contains(key, "retrieve"),
		strings.Contains(key, "withdraw"):
		return ChestWithdraw
	}
	return ChestInspect
}

// Inventory query modes.
const (
	InventorySummary = "summary"
	InventoryLocate  = "locate"
	InventoryCount   = "count"
	InventoryMissing = "missing"
	InventoryOpen    = "open"
	InventoryManage  = "manage"
)

// NormalizeInventoryMode folds inventory-query text onto the wire set.
// "check" reads as summary and "find" as locate.
func NormalizeInventoryMode(v string) string {
	key := catalog.CanonicalKey(v)
	switch key {
	case InventorySummary, InventoryLocate, InventoryCount, InventoryMissing,
		InventoryOpen, InventoryManage:
		return key
	}
	switch {
	case strings.Contains(key, "check"):
		return InventorySummary
	case strings.Contains(key, "find"), strings.Contains(key, "locate"),
		strings.Contains(key, "search"), strings.Contains(key, "where"):
		return InventoryLocate
	case strings.Contains(key, "count"), strings.Contains(key, "tally"),
		strings.Contains(key, "howmany"):
		return InventoryCount
	case strings.Contains(key, "missing"), strings.Contains(key, "short"),
		strings.Contains(key, "need"):
		return InventoryMissing
	case strings.Contains(key, "open"), strings.Contains(key, "show"):
		return InventoryOpen
	case strings.Contains(key, "sort"), strings.Contains(key, "organize"),
		strings.Contains(key, "manage"), strings.Contains(key, "clean"):
		return InventoryManage
	}
	return InventorySummary
}

// Combat styles.
const (
	StyleMelee     = "melee"
	StyleRanged    = "ranged"
	StyleDefensive = "defensive"
	StyleSupport   = "support"
	StyleBalanced  = "balanced"
)

// NormalizeCombatStyle folds stance text onto the wire set. Tank reads as
// defensive, healer as support, hybrid as balanced.
func NormalizeCombatStyle(v string) string {
	key := catalog.CanonicalKey(v)
	switch key {
	case StyleMelee, StyleRanged, StyleDefensive, StyleSupport, StyleBalanced:
		return key
	}
	switch {
	case strings.Contains(key, "tank"), strings.Contains(key, "defend"),
		strings.Contains(key, "guard"), strings.Contains(key, "shield"):
		return StyleDefensive
	case strings.Contains(key, "heal"), strings.Contains(key, "medic"),
		strings.Contains(key, "support"):
		return StyleSupport
	case strings.Contains(key, "hybrid"), strings.Contains(key, "flex"):
		return StyleBalanced
	case strings.Contains(key, "bow"), strings.Contains(key, "archer"),
		strings.Contains(key, "crossbow"), strings.Contains(key, "range"),
		strings.Contains(key, "snipe"):
		return StyleRanged
	case strings.Contains(key, "sword"), strings.Contains(key, "axe"),
		strings.Contains(key, "melee"), strings.Contains(key, "aggress"),
		strings.Contains(key, "brawl"):
		return StyleMelee
	}
	return StyleBalanced
}

// Item usage types.
const (
	UsageHeal     = "heal"
	UsageBuff     = "buff"
	UsageAttack   = "attack"
	UsageUtility  = "utility"
	UsageTool     = "tool"
	UsagePlace    = "place"
	UsageConsume  = "consume"
	UsageEquip    = "equip"
	UsageInteract = "interact"
)

// NormalizeUsageType classifies what an item is for from free text, falling
// through substring heuristics to utility.
func NormalizeUsageType(v string) string {
	key := catalog.CanonicalKey(v)
	switch key {
	case UsageHeal, UsageBuff, UsageAttack, UsageUtility, UsageTool,
		UsagePlace, UsageConsume, UsageEquip, UsageInteract:
		return key
	}
	switch {
	case strings.Contains(key, "heal"), strings.Contains(key, "regen"),
		strings.Contains(key, "cure"):
		return UsageHeal
	case strings.Contains(key, "buff"), strings.Contains(key, "strength"),
		strings.Contains(key, "speed"), strings.Contains(key, "resistance"):
		return UsageBuff
	case strings.Contains(key, "attack"), strings.Contains(key, "weapon"),
		strings.Contains(key, "sword"), strings.Contains(key, "damage"):
		return UsageAttack
	case strings.Contains(key, "pickaxe"), strings.Contains(key, "shovel"),
		strings.Contains(key, "hoe"), strings.Contains(key, "shears"),
		strings.Contains(key, "tool"), strings.Contains(key, "axe"):
		return UsageTool
	case strings.Contains(key, "place"), strings.Contains(key, "block"),
		strings.Contains(key, "build"):
		return UsagePlace
	case strings.Contains(key, "eat"), strings.Contains(key, "drink"),
		strings.Contains(key, "food"), strings.Contains(key, "consume"):
		return UsageConsume
	case strings.Contains(key, "wear"), strings.Contains(key, "armor"),
		strings.Contains(key, "equip"), strings.Contains(key, "helmet"):
		return UsageEquip
	case strings.Contains(key, "interact"), strings.Contains(key, "open"),
		strings.Contains(key, "activate"):
		return UsageInteract
	}
	return UsageUtility
}

// Equipment slots.
const (
	SlotMainHand  = "main_hand"
	SlotOffHand   = "off_hand"
	SlotHead      = "head"
	SlotChest     = "chest"
	SlotLegs      = "legs"
	SlotFeet      = "feet"
	SlotHotbar    = "hotbar"
	SlotAccessory = "accessory"
)

// NormalizeEquipSlot folds slot text onto the wire set, defaulting to the
// main hand.
func NormalizeEquipSlot(v string) string {
	key := catalog.CanonicalKey(v)
	switch key {
	case SlotMainHand, SlotOffHand, SlotHead, SlotChest, SlotLegs, SlotFeet,
		SlotHotbar, SlotAccessory:
		return key
	}
	switch {
	case strings.Contains(key, "offhand"), strings.Contains(key, "shield"),
		strings.Contains(key, "left"):
		return SlotOffHand
	case strings.Contains(key, "helmet"), strings.Contains(key, "head"),
		strings.Contains(key, "cap"):
		return SlotHead
	case strings.Contains(key, "chestplate"), strings.Contains(key, "torso"),
		strings.Contains(key, "body"):
		return SlotChest
	case strings.Contains(key, "legging"), strings.Contains(key, "pants"),
		strings.Contains(key, "leg"):
		return SlotLegs
	case strings.Contains(key, "boot"), strings.Contains(key, "shoe"),
		strings.Contains(key, "feet"), strings.Contains(key, "foot"):
		return SlotFeet
	case strings.Contains(key, "hotbar"), strings.Contains(key, "belt"),
		strings.Contains(key, "quick"):
		return SlotHotbar
	case strings.Contains(key, "ring"), strings.Contains(key, "trinket"),
		strings.Contains(key, "charm"), strings.Contains(key, "accessor"):
		return SlotAccessory
	}
	return SlotMainHand
}

// Loadout priorities.
const (
	LoadoutPrimary   = "primary"
	LoadoutSecondary = "secondary"
	LoadoutBackup    = "backup"
)

// NormalizeLoadoutPriority folds loadout text onto the wire set.
func NormalizeLoadoutPriority(v string) string {
	key := catalog.CanonicalKey(v)
	switch key {
	case LoadoutPrimary, LoadoutSecondary, LoadoutBackup:
		return key
	}
	switch {
	case strings.Contains(key, "second"), strings.Contains(key, "alt"):
		return LoadoutSecondary
	case strings.Contains(key, "backup"), strings.Contains(key, "spare"),
		strings.Contains(key, "reserve"), strings.Contains(key, "fallback"):
		return LoadoutBackup
	}
	return LoadoutPrimary
}

// Target priority ranks.
const (
	RankPrimary   = "primary"
	RankSecondary = "secondary"
	RankTertiary  = "tertiary"
	RankOptional  = "optional"
)

// NormalizePriorityRank folds a numeric threat priority or free text onto
// the rank set. Rank 1 is primary; anything past tertiary is optional.
func NormalizePriorityRank(v any) string {
	switch t := v.(type) {
	case int:
		return rankFromNumber(t)
	case float64:
		return rankFromNumber(int(t))
	case string:
		key := catalog.CanonicalKey(t)
		switch key {
		case RankPrimary, RankSecondary, RankTertiary, RankOptional:
			return key
		}
		switch {
		case strings.Contains(key, "first"), strings.Contains(key, "main"),
			strings.Contains(key, "top"):
			return RankPrimary
		case strings.Contains(key, "second"):
			return RankSecondary
		case strings.Contains(key, "third"):
			return RankTertiary
		}
	}
	return RankOptional
}

func rankFromNumber(n int) string {
	switch n {
	case 1:
		return RankPrimary
	case 2:
		return RankSecondary
	case 3:
		return RankTertiary
	}
	return RankOptional
}
