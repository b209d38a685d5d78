package planner

import (
	"fmt"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	mineBaseDuration    = 4000
	mineMillisPerBlock  = 1000
	mineHazardOverhead  = 1500
	defaultMineQuantity = 16
)

// Directive is a normalized instruction for a mining lifecycle event or
// hazard response.
type Directive struct {
	Action  string `json:"action"`
	Notify  bool   `json:"notify,omitempty"`
	Request string `json:"request,omitempty"`
	Message string `json:"message,omitempty"`
}

// DirectiveSet covers the four mining status blocks.
type DirectiveSet struct {
	Depletion   Directive `json:"depletion"`
	ToolFailure Directive `json:"toolFailure"`
	Resume      Directive `json:"resume"`
	Fallback    Directive `json:"fallback"`
}

// Watcher pairs a hazard with its mitigation and the directive to run when
// the hazard fires.
type Watcher struct {
	Hazard     string    `json:"hazard"`
	Severity   string    `json:"severity"`
	Mitigation string    `json:"mitigation,omitempty"`
	Response   Directive `json:"response"`
}

func parseDirective(v any, fallback string) Directive {
	switch t := v.(type) {
	case nil:
		return Directive{Action: fallback}
	case string:
		return Directive{Action: catalog.NormalizeDirectiveAction(t, fallback)}
	case map[string]any:
		m := task.Metadata(t)
		return Directive{
			Action:  catalog.NormalizeDirectiveAction(m.StringOr("", "action", "response", "do"), fallback),
			Notify:  m.BoolOr(false, "notify", "alert"),
			Request: m.StringOr("", "request"),
			Message: m.StringOr("", "message", "note"),
		}
	case task.Metadata:
		return parseDirective(map[string]any(t), fallback)
	}
	return Directive{Action: fallback}
}

// MiningDirectives normalizes the status-directive blocks from task
// metadata, with serviceable defaults when blocks are missing.
func MiningDirectives(meta task.Metadata) DirectiveSet {
	block, _ := meta.Map("directives", "status_directives", "status")
	set := DirectiveSet{
		Depletion:   Directive{Action: catalog.DirectivePause, Notify: true},
		ToolFailure: Directive{Action: catalog.DirectiveRequestTools, Notify: true},
		Resume:      Directive{Action: catalog.DirectiveResume},
		Fallback:    Directive{Action: catalog.DirectivePause, Notify: true},
	}
	if block == nil {
		return set
	}
	if v, ok := block.Value("depletion"); ok {
		set.Depletion = parseDirective(v, catalog.DirectivePause)
	}
	if v, ok := block.Value("tool_failure"); ok {
		set.ToolFailure = parseDirective(v, catalog.DirectiveRequestTools)
	}
	if v, ok := block.Value("resume"); ok {
		set.Resume = parseDirective(v, catalog.DirectiveResume)
	}
	if v, ok := block.Value("fallback"); ok {
		set.Fallback = parseDirective(v, catalog.DirectivePause)
	}
	return set
}

// MiningWatchers pairs each hazard with the best-matching response from
// metadata: exact type and severity beats type alone beats the fallback
// directive.
func MiningWatchers(meta task.Metadata, hazards []catalog.Hazard, set DirectiveSet) []Watcher {
	type response struct {
		typ      string
		severity string
		dir      Directive
	}
	responses := make([]response, 0, 4)
	if raw, ok := meta.Slice("hazard_responses", "responses"); ok {
		for _, v := range raw {
			m, ok := v.(map[string]any)
			if !ok {
				continue
			}
			mm := task.Metadata(m)
			r := response{
				typ: catalog.NormalizeHazardType(mm.StringOr("", "hazard", "type")),
				dir: parseDirective(v, set.Fallback.Action),
			}
			if s, ok := mm.String("severity"); ok {
				r.severity = catalog.NormalizeSeverity(s)
			}
			responses = append(responses, r)
		}
	}
	out := make([]Watcher, 0, len(hazards))
	for _, h := range hazards {
		w := Watcher{Hazard: h.Type, Severity: h.Severity, Response: set.Fallback}
		if len(h.Mitigations) > 0 {
			w.Mitigation = h.Mitigations[0]
		}
		bestRank := 0
		for _, r := range responses {
			if r.typ != h.Type {
				continue
			}
			rank := 1
			if r.severity != "" {
				if r.severity != h.Severity {
					continue
				}
				rank = 2
			}
			if rank > bestRank {
				bestRank = rank
				w.Response = r.dir
			}
		}
		out = append(out, w)
	}
	return out
}

// mineBlockFromDetails recovers the block name from free text like
// "diamond at (30,12,-4)" when metadata does not name one.
func mineBlockFromDetails(details string) string {
	s := strings.ToLower(strings.TrimSpace(details))
	if s == "" {
		return ""
	}
	if i := strings.Index(s, " at "); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, " near "); i >= 0 {
		s = s[:i]
	}
	for _, prefix := range []string{"mine ", "dig ", "extract ", "collect ", "get ", "find "} {
		s = strings.TrimPrefix(s, prefix)
	}
	name := task.NormalizeItemName(s)
	if name == task.UnspecifiedItem {
		return ""
	}
	return name
}

func planMine(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	items := ctx.Items()

	blocks := meta.Strings("blocks", "block", "targets", "ores", "resource", "item")
	for i, b := range blocks {
		blocks[i] = task.NormalizeItemName(b)
	}
	if len(blocks) == 0 {
		if b := mineBlockFromDetails(t.Details); b != "" {
			blocks = []string{b}
		}
	}
	if len(blocks) == 0 {
		blocks = []string{"stone"}
	}

	strategy := catalog.MiningStrategyByName(meta.StringOr("", "strategy", "method", "approach"))
	hazards := sortHazards(meta.Strings("hazards", "dangers", "risks"))
	quantity := meta.IntOr(defaultMineQuantity, "quantity", "amount", "count")
	if quantity < 1 {
		quantity = defaultMineQuantity
	}

	tools := meta.Strings("tools", "equipment")
	if len(tools) == 0 {
		tools = []string{"iron_pickaxe", "torch"}
	}
	for i, tool := range tools {
		tools[i] = task.NormalizeItemName(tool)
	}
	missingTools := missingGear(items, tools)

	directives := MiningDirectives(meta)
	watchers := MiningWatchers(meta, hazards, directives)

	steps := make([]plan.Step, 0, 8+len(hazards))
	steps = append(steps, plan.Step{
		Title: "Verify tools", Type: plan.StepPreparation,
		Description: "Check " + strings.Join(tools, ", ") + " before descending.",
		Metadata:    map[string]any{"missing": missingTools},
	})
	steps = append(steps, plan.Step{
		Title: "Select strategy", Type: plan.StepPlanning,
		Description: fmt.Sprintf("Use %s: %s.", strategy.Name, strategy.Description),
		Metadata:    map[string]any{"strategy": strategy.Name},
	})
	surveyWhere := task.DescribeTarget(t.Target)
	surveyDesc := fmt.Sprintf("Survey the site at %s and mark the dig line.", surveyWhere)
	if band, ok := catalog.BestBandFor(blocks[0]); ok {
		surveyDesc = fmt.Sprintf("Survey the site at %s and mark the dig line; %s runs from Y=%d to Y=%d.",
			surveyWhere, blocks[0], band.MinY, band.MaxY)
	}
	steps = append(steps, plan.Step{
		Title: "Survey site", Type: plan.StepPlanning, Description: surveyDesc,
	})
	if step, ok := travelStep(ctx, t.Target, "reach the dig site"); ok {
		steps = append(steps, step)
	}
	for _, h := range hazards {
		mit := "proceed cautiously"
		if len(h.Mitigations) > 0 {
			mit = h.Mitigations[0]
		}
		steps = append(steps, plan.Step{
			Title: "Mitigate " + h.Type, Type: plan.StepSafety,
			Description: fmt.Sprintf("Counter %s (%s): %s.", h.Type, h.Severity, mit),
			Metadata:    map[string]any{"hazard": h.Type, "severity": h.Severity},
		})
	}
	steps = append(steps, plan.Step{
		Title: "Extract " + strings.Join(blocks, ", "), Type: plan.StepAction,
		Description: fmt.Sprintf("Mine %d %s following the %s pattern.", quantity, strings.Join(blocks, ", "), strategy.Name),
		Metadata:    map[string]any{"blocks": blocks, "quantity": quantity},
	})
	if store := meta.StringOr("", "deposit", "storage", "chest"); store != "" {
		steps = append(steps, plan.Step{
			Title: "Deposit haul", Type: plan.StepStorage,
			Description: "Store the haul in " + store + ".",
		})
	}

	duration := mineBaseDuration + quantity*mineMillisPerBlock
	if strategy.Efficiency > 0 {
		duration = scaleDuration(duration, 1/strategy.Efficiency)
	}
	duration += len(hazards) * mineHazardOverhead
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	resources := append(append(make([]string, 0, len(tools)+len(blocks)), tools...), blocks...)
	risks := make([]string, 0, len(hazards)+2)
	for _, h := range hazards {
		risks = append(risks, hazardLine(h.Type))
	}
	risks = append(risks, environmentRisks(ctx)...)

	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           fmt.Sprintf("Mine %s at %s", strings.Join(blocks, ", "), task.DescribeTarget(t.Target)),
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             risks,
		Metadata: map[string]any{
			"strategy":   strategy.Name,
			"blocks":     blocks,
			"directives": directives,
			"watchers":   watchers,
		},
	})
	p.PreferredTraits = []string{"miner", "diligent", "brave"}
	return p
}
