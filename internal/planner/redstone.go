package planner

import (
	"fmt"
	"sort"
	"strings"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	redstoneSignalRange    = 15
	redstoneBaseMillis     = 3000
	redstoneMillisPerPart  = 800
	redstoneMillisPerDust  = 200
	defaultRedstoneWireRun = 8
)

// redstoneDevice is a known contraption and its bill of parts beyond the
// wire itself.
type redstoneDevice struct {
	name    string
	parts   []transfer
	trigger string
	note    string
}

var redstoneDevices = map[string]redstoneDevice{
	"piston_door": {name: "piston_door", trigger: "lever",
		parts: []transfer{{"sticky_piston", 2}, {"redstone", 12}, {"redstone_torch", 2}, {"lever", 1}},
		note:  "two sticky pistons face each other across the doorway"},
	"lamp_circuit": {name: "lamp_circuit", trigger: "lever",
		parts: []transfer{{"redstone_lamp", 4}, {"redstone", 8}, {"lever", 1}},
		note:  "lamps chain-light when placed edge to edge"},
	"farm_clock": {name: "farm_clock", trigger: "observer",
		parts: []transfer{{"observer", 1}, {"redstone", 6}, {"dispenser", 1}, {"repeater", 2}},
		note:  "the observer loop fires the dispenser on a fixed beat"},
	"tnt_trap": {name: "tnt_trap", trigger: "pressure_plate",
		parts: []transfer{{"tnt", 2}, {"pressure_plate", 1}, {"redstone", 4}},
		note:  "bury the charge two deep or the plate survives the blast"},
	"item_sorter": {name: "item_sorter", trigger: "comparator",
		parts: []transfer{{"hopper", 5}, {"comparator", 1}, {"repeater", 1}, {"redstone", 6}, {"chest", 2}},
		note:  "the filter hopper holds 41 of the sorted item, never less"},
	"hidden_staircase": {name: "hidden_staircase", trigger: "lever",
		parts: []transfer{{"sticky_piston", 6}, {"redstone", 18}, {"redstone_torch", 4}, {"lever", 1}},
		note:  "pistons retract the floor in pairs from the top down"},
}

var redstoneDeviceAliases = map[string]string{
	"hidden_door":    "piston_door",
	"secret_door":    "piston_door",
	"lamp":           "lamp_circuit",
	"lights":         "lamp_circuit",
	"clock":          "farm_clock",
	"trap":           "tnt_trap",
	"sorter":         "item_sorter",
	"sorting_system": "item_sorter",
}

func redstoneDeviceByName(v string) (redstoneDevice, bool) {
	key := strings.ToLower(strings.TrimSpace(v))
	key = strings.ReplaceAll(key, " ", "_")
	if d, ok := redstoneDevices[key]; ok {
		return d, true
	}
	if canon, ok := redstoneDeviceAliases[key]; ok {
		return redstoneDevices[canon], true
	}
	names := make([]string, 0, len(redstoneDevices))
	for name := range redstoneDevices {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.Contains(key, name) {
			return redstoneDevices[name], true
		}
	}
	return redstoneDevice{}, false
}

// wireRepeaters is how many repeaters a dust run needs: signal dies after
// fifteen blocks.
func wireRepeaters(run int) int {
	if run <= redstoneSignalRange {
		return 0
	}
	return (run+redstoneSignalRange-1)/redstoneSignalRange - 1
}

func planRedstone(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	deviceName := meta.StringOr("", "device", "circuit", "contraption")
	if deviceName == "" {
		deviceName = t.Details
	}
	device, known := redstoneDeviceByName(deviceName)

	run := meta.IntOr(defaultRedstoneWireRun, "run", "length", "wire")
	if run < 1 {
		run = defaultRedstoneWireRun
	}
	repeaters := wireRepeaters(run)

	parts := append([]transfer(nil), device.parts...)
	if !known {
		parts = []transfer{{"redstone", run}, {"redstone_torch", 2}, {"lever", 1}}
	}
	if repeaters > 0 {
		parts = append(parts, transfer{"repeater", repeaters})
	}

	steps := make([]plan.Step, 0, 8)
	design := fmt.Sprintf("Sketch the layout; a signal runs %d blocks before it needs a repeater.", redstoneSignalRange)
	if known {
		design = fmt.Sprintf("Lay out the %s: %s.", device.name, device.note)
	}
	steps = append(steps, plan.Step{
		Title: "Design the circuit", Type: plan.StepPlanning, Command: "design",
		Description: design,
		Metadata:    map[string]any{"run": run, "repeaters": repeaters},
	})
	need := make([]string, len(parts))
	names := make([]string, len(parts))
	for i, pt := range parts {
		need[i] = fmt.Sprintf("%d %s", pt.Count, pt.Name)
		names[i] = pt.Name
	}
	steps = append(steps, plan.Step{
		Title: "Gather components", Type: plan.StepPreparation, Command: "restock",
		Description: "Collect " + strings.Join(need, ", ") + ".",
		Metadata:    map[string]any{"missing": missingGear(items, names)},
	})
	if step, ok := travelStep(ctx, t.Target, "reach the build site"); ok {
		steps = append(steps, step)
	}
	steps = append(steps, plan.Step{
		Title: "Lay the wire", Type: plan.StepConstruction, Command: "place_blocks",
		Description: fmt.Sprintf("Run %d dust with a repeater every %d blocks.", run, redstoneSignalRange),
	})
	steps = append(steps, plan.Step{
		Title: "Place the components", Type: plan.StepConstruction, Command: "place_blocks",
		Description: "Set each component facing the wire, torches last so nothing fires early.",
	})
	trigger := device.trigger
	if trigger == "" {
		trigger = "lever"
	}
	steps = append(steps, plan.Step{
		Title: "Wire the trigger", Type: plan.StepAction, Command: "activate",
		Description: "Hook up the " + trigger + " and keep it off until the test.",
		Metadata:    map[string]any{"trigger": trigger},
	})
	steps = append(steps, plan.Step{
		Title: "Test the circuit", Type: plan.StepReport, Command: "test_circuit",
		Description: "Fire it once, watch every component respond, then reset.",
	})

	total := 0
	resources := make([]string, 0, len(parts))
	for _, pt := range parts {
		total += pt.Count
		resources = append(resources, pt.Name)
	}
	duration := redstoneBaseMillis + total*redstoneMillisPerPart + run*redstoneMillisPerDust
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	risks := []string{}
	for _, pt := range parts {
		if pt.Name == "tnt" {
			risks = append(risks, hazardLine("explosive"))
			break
		}
	}
	risks = append(risks, environmentRisks(ctx)...)

	summary := "Build a redstone circuit"
	if known {
		summary = "Build a " + device.name
	}
	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           summary,
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             risks,
		Metadata: map[string]any{
			"device":    deviceKey(known, device),
			"run":       run,
			"repeaters": repeaters,
			"parts":     parts,
		},
	})
	p.PreferredTraits = []string{"engineer", "precise", "curious"}
	return p
}

func deviceKey(known bool, d redstoneDevice) string {
	if known {
		return d.name
	}
	return "custom"
}
