package envelope

import (
	"fmt"
	"sort"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/planner"
	"mindcraftce.ai/internal/task"
)

// normalizers is the action-keyed metadata dispatch. Actions without an
// entry pass through the generic strip.
var normalizers = map[string]func(task.Metadata) map[string]any{
	task.ActionMine:     normalizeMine,
	task.ActionInteract: normalizeChest,
	task.ActionCombat:   normalizeCombat,
	task.ActionGuard:    normalizeCombat,
	task.ActionRanged:   normalizeCombat,
	"dig":               normalizeDig,
	"inventory":         normalizeInventory,
	"equip":             normalizeEquip,
	"use":               normalizeUsage,
	"use_item":          normalizeUsage,
}

func normalizeMetadata(action string, meta task.Metadata) map[string]any {
	if fn, ok := normalizers[action]; ok {
		return fn(meta)
	}
	return stripUndefined(map[string]any(meta))
}

// stripUndefined drops nil-valued fields, recursively, so the wire record
// never carries undefined-only keys.
func stripUndefined(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case nil:
			continue
		case map[string]any:
			if m := stripUndefined(t); len(m) > 0 {
				out[k] = m
			}
		case task.Metadata:
			if m := stripUndefined(map[string]any(t)); len(m) > 0 {
				out[k] = m
			}
		case []any:
			s := make([]any, 0, len(t))
			for _, e := range t {
				switch et := e.(type) {
				case nil:
					continue
				case map[string]any:
					if m := stripUndefined(et); len(m) > 0 {
						s = append(s, m)
					}
				default:
					s = append(s, e)
				}
			}
			if len(s) > 0 {
				out[k] = s
			}
		default:
			out[k] = v
		}
	}
	return out
}

// wireHazards folds, dedupes, and orders hazard names worst first for the
// mine record.
func wireHazards(raw []string) []catalog.Hazard {
	out := make([]catalog.Hazard, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		h := catalog.HazardFor(r)
		if _, dup := seen[h.Type]; dup {
			continue
		}
		seen[h.Type] = struct{}{}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := catalog.SeverityRank(out[i].Severity), catalog.SeverityRank(out[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return out[i].Type < out[j].Type
	})
	return out
}

func normalizeMine(meta task.Metadata) map[string]any {
	out := map[string]any{
		"strategy": catalog.NormalizeMiningStrategy(meta.StringOr("", "strategy", "method", "approach")),
	}
	if blocks := meta.Strings("blocks", "block", "targets", "ores", "resource", "item"); len(blocks) > 0 {
		for i, b := range blocks {
			blocks[i] = task.NormalizeItemName(b)
		}
		out["blocks"] = blocks
	}
	if q := meta.IntOr(0, "quantity", "amount", "count"); q > 0 {
		out["quantity"] = q
	}
	if tools := meta.Strings("tools", "equipment"); len(tools) > 0 {
		for i, tl := range tools {
			tools[i] = task.NormalizeItemName(tl)
		}
		out["tools"] = tools
	}

	hazards := wireHazards(meta.Strings("hazards", "dangers", "risks"))
	if len(hazards) > 0 {
		list := make([]map[string]any, 0, len(hazards))
		for _, h := range hazards {
			list = append(list, map[string]any{"type": h.Type, "severity": h.Severity})
		}
		out["hazards"] = list
	}

	set := planner.MiningDirectives(meta)
	out["directives"] = set
	if watchers := planner.MiningWatchers(meta, hazards, set); len(watchers) > 0 {
		out["watchers"] = watchers
	}
	return out
}

func normalizeDig(meta task.Metadata) map[string]any {
	out := map[string]any{
		"strategy": catalog.NormalizeDigStrategy(meta.StringOr("", "strategy", "mode", "shape")),
	}
	if l := meta.IntOr(0, "length", "depth"); l > 0 {
		out["length"] = l
	}
	if w := meta.IntOr(0, "width"); w > 0 {
		out["width"] = w
	}
	if h := meta.IntOr(0, "height", "levels"); h > 0 {
		out["height"] = h
	}
	return out
}

// transferItems extracts the item moves of a chest operation as wire maps.
func transferItems(meta task.Metadata) []map[string]any {
	raw, ok := meta.Slice("items", "item", "transfer")
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		name := task.NormalizeItemName(v)
		if name == task.UnspecifiedItem {
			continue
		}
		out = append(out, map[string]any{"name": name, "count": task.ResolveQuantity(v, 1)})
	}
	return out
}

func normalizeChest(meta task.Metadata) map[string]any {
	out := map[string]any{
		"mode": NormalizeChestMode(meta.StringOr("", "operation", "chest_action", "mode", "action_type")),
	}
	if obj := task.NormalizeItemName(meta.StringOr("", "object", "block", "entity", "with")); obj != task.UnspecifiedItem {
		out["object"] = obj
	}
	if items := transferItems(meta); len(items) > 0 {
		out["items"] = items
	}
	return out
}

func normalizeInventory(meta task.Metadata) map[string]any {
	out := map[string]any{
		"mode": NormalizeInventoryMode(meta.StringOr("", "mode", "operation", "query")),
	}
	if item := task.NormalizeItemName(meta.StringOr("", "item", "of", "for")); item != task.UnspecifiedItem {
		out["item"] = item
	}
	if c := meta.IntOr(0, "count", "quantity"); c > 0 {
		out["count"] = c
	}
	return out
}

func normalizeCombat(meta task.Metadata) map[string]any {
	out := map[string]any{
		"style": NormalizeCombatStyle(meta.StringOr("", "style", "stance", "mode")),
	}
	if names := meta.Strings("enemies", "enemy", "targets", "mobs"); len(names) > 0 {
		targets := make([]map[string]any, 0, len(names))
		seen := make(map[string]struct{}, len(names))
		for _, n := range names {
			name := task.NormalizeItemName(n)
			if name == task.UnspecifiedItem {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			rank := RankOptional
			if e, ok := catalog.EnemyByName(name); ok {
				rank = NormalizePriorityRank(e.Priority)
			}
			targets = append(targets, map[string]any{"name": name, "rank": rank})
		}
		if len(targets) > 0 {
			out["targets"] = targets
		}
	}
	if ward := meta.StringOr("", "protect", "guard_target", "ward", "vip"); ward != "" {
		out["protect"] = ward
	}
	return out
}

func normalizeEquip(meta task.Metadata) map[string]any {
	out := map[string]any{
		"slot":     NormalizeEquipSlot(meta.StringOr("", "slot", "where")),
		"priority": NormalizeLoadoutPriority(meta.StringOr("", "priority", "loadout")),
	}
	if item := task.NormalizeItemName(meta.StringOr("", "item", "gear", "equipment")); item != task.UnspecifiedItem {
		out["item"] = item
	}
	return out
}

func normalizeUsage(meta task.Metadata) map[string]any {
	item := task.NormalizeItemName(meta.StringOr("", "item", "use", "with"))
	hint := meta.StringOr("", "usage", "purpose", "type")
	if hint == "" && item != task.UnspecifiedItem {
		hint = item
	}
	out := map[string]any{"usage": NormalizeUsageType(hint)}
	if item != task.UnspecifiedItem {
		out["item"] = item
	}
	return out
}

// minePlan mirrors the mining plan as a flat operation list for the runtime.
// It reads the same metadata the planner does and never touches the tables.
func minePlan(t *task.Request, meta task.Metadata) []Operation {
	blocks := meta.Strings("blocks", "block", "targets", "ores", "resource", "item")
	for i, b := range blocks {
		blocks[i] = task.NormalizeItemName(b)
	}
	if len(blocks) == 0 {
		blocks = []string{"stone"}
	}
	strategy := catalog.MiningStrategyByName(meta.StringOr("", "strategy", "method", "approach"))
	hazards := wireHazards(meta.Strings("hazards", "dangers", "risks"))
	set := planner.MiningDirectives(meta)
	watchers := planner.MiningWatchers(meta, hazards, set)
	quantity := meta.IntOr(0, "quantity", "amount", "count")

	ops := make([]Operation, 0, 4+len(watchers))
	add := func(kind, description string) *Operation {
		ops = append(ops, Operation{Step: len(ops) + 1, Kind: kind, Description: description})
		return &ops[len(ops)-1]
	}
	add("prepare", "Verify tools and torches before descending.")
	add("survey", fmt.Sprintf("Mark the dig line at %s.", task.DescribeTarget(t.Target)))
	for _, w := range watchers {
		op := add("mitigate", fmt.Sprintf("Watch for %s (%s).", w.Hazard, w.Severity))
		op.Hazards = []string{w.Hazard}
		op.Mitigation = w.Mitigation
		op.Response = w.Response.Action
	}
	extract := fmt.Sprintf("Extract %s with the %s pattern.", strings.Join(blocks, ", "), strategy.Name)
	if quantity > 0 {
		extract = fmt.Sprintf("Extract %d %s with the %s pattern.", quantity, strings.Join(blocks, ", "), strategy.Name)
	}
	add("extract", extract)
	if store := meta.StringOr("", "deposit", "storage", "chest"); store != "" {
		add("deposit", "Store the haul in "+store+".")
	}
	return ops
}
