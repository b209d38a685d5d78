package plan

import (
	"strings"

	"mindcraftce.ai/internal/task"
)

// Step types used for UI grouping and execution hinting. The set is open;
// these are the ones planners emit today.
const (
	StepPreparation  = "preparation"
	StepPlanning     = "planning"
	StepMovement     = "movement"
	StepAction       = "action"
	StepSafety       = "safety"
	StepConstruction = "construction"
	StepProcessing   = "processing"
	StepStorage      = "storage"
	StepReport       = "report"
)

type Status string

const (
	StatusOK      Status = "ok"
	StatusBlocked Status = "blocked"
	StatusFailed  Status = "failed"
)

// Step is one entry of a plan. Command, when present, is a literal
// slash-command string for the execution runtime.
type Step struct {
	Title       string         `json:"title"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Command     string         `json:"command,omitempty"`
}

// NewStep trims and defaults a step so title and description are never empty.
func NewStep(s Step) Step {
	s.Title = strings.TrimSpace(s.Title)
	s.Type = strings.TrimSpace(s.Type)
	s.Description = strings.TrimSpace(s.Description)
	if s.Title == "" {
		s.Title = "Step"
	}
	if s.Type == "" {
		s.Type = StepAction
	}
	if s.Description == "" {
		s.Description = s.Title
	}
	return s
}

// Bias records how strongly an NPC's personality matched the plan.
type Bias struct {
	Score          int      `json:"score"`
	Matches        []string `json:"matches"`
	TotalPreferred int      `json:"totalPreferred"`
}

// Plan is the advisory artifact every planner returns. It is a value: built
// once, never stored or mutated by the core.
type Plan struct {
	Task    *task.Request `json:"task,omitempty"`
	Summary string        `json:"summary"`
	Steps   []Step        `json:"steps"`

	EstimatedDuration int `json:"estimatedDuration"`

	Resources []string `json:"resources"`
	Risks     []string `json:"risks"`
	Notes     []string `json:"notes"`

	Metadata map[string]any `json:"metadata,omitempty"`

	Status     Status `json:"status,omitempty"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`

	Warnings []string       `json:"warnings,omitempty"`
	Outcome  map[string]any `json:"outcome,omitempty"`

	PreferredTraits []string `json:"preferredTraits,omitempty"`
	PersonalityBias *Bias    `json:"personalityBias,omitempty"`
}

// New builds a plan with every optional field defaulted: steps are passed
// through NewStep, resources are deduplicated (the unspecified-item sentinel
// never survives), and the duration is clamped to a non-negative integer.
func New(p Plan) *Plan {
	p.Summary = strings.TrimSpace(p.Summary)
	if p.Summary == "" {
		p.Summary = "Task plan"
	}
	steps := make([]Step, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, NewStep(s))
	}
	p.Steps = steps
	p.Resources = DedupeResources(p.Resources)
	if p.Risks == nil {
		p.Risks = []string{}
	}
	if p.Notes == nil {
		p.Notes = []string{}
	}
	if p.EstimatedDuration < 0 {
		p.EstimatedDuration = 0
	}
	if p.Status == "" {
		p.Status = StatusOK
	}
	return &p
}

// DedupeResources canonicalizes names (spaces fold to underscores),
// deduplicates, and drops sentinel names while preserving first-seen order.
func DedupeResources(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, r := range in {
		name := task.NormalizeItemName(r)
		if name == task.UnspecifiedItem {
			continue
		}
		key := task.CanonicalItemName(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Failed builds the uniform validation-failure plan.
func Failed(t *task.Request, summary, errMsg, suggestion string) *Plan {
	p := New(Plan{Task: t, Summary: summary})
	p.Status = StatusFailed
	p.Error = errMsg
	p.Suggestion = suggestion
	return p
}

// Blocked marks a (possibly partial) plan as blocked on a precondition.
func Blocked(p *Plan, errMsg, suggestion string) *Plan {
	p.Status = StatusBlocked
	p.Error = errMsg
	p.Suggestion = suggestion
	return p
}
