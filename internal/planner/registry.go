package planner

import (
	"log"
	"os"
	"sort"
	"sync"

	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

// Func is a planner: a pure function from task and context to a plan.
// Planners never mutate their inputs.
type Func func(*task.Request, *task.Context) *plan.Plan

type entry struct {
	fn       Func
	parallel bool
}

// Registry maps action kinds to planners. It is populated at init and
// read-only afterwards; PlanTask is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	log     *log.Logger
}

func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(os.Stdout, "[planner] ", log.LstdFlags|log.Lmicroseconds)
	}
	return &Registry{entries: make(map[string]entry, 24), log: logger}
}

type Option func(*entry)

// Parallel marks a planner as safe to offload to a scoring worker.
func Parallel() Option {
	return func(e *entry) { e.parallel = true }
}

func (r *Registry) Register(action string, fn Func, opts ...Option) {
	if action == "" || fn == nil {
		return
	}
	e := entry{fn: fn}
	for _, opt := range opts {
		opt(&e)
	}
	r.mu.Lock()
	r.entries[action] = e
	r.mu.Unlock()
}

func (r *Registry) HasPlanner(action string) bool {
	r.mu.RLock()
	_, ok := r.entries[action]
	r.mu.RUnlock()
	return ok
}

// Actions lists registered action kinds in sorted order.
func (r *Registry) Actions() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// IsParallel reports whether the action's planner was registered as
// worker-offloadable.
func (r *Registry) IsParallel(action string) bool {
	r.mu.RLock()
	e, ok := r.entries[action]
	r.mu.RUnlock()
	return ok && e.parallel
}

// PlanTask dispatches to the planner registered for the task's action and
// applies the personality bias before returning. Unknown actions and nil
// tasks return nil. A panicking planner is caught, logged once with the
// action name, and yields nil.
func (r *Registry) PlanTask(t *task.Request, ctx *task.Context) (p *plan.Plan) {
	if t == nil {
		return nil
	}
	r.mu.RLock()
	e, ok := r.entries[t.Action]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Printf("planner %q panicked: %v", t.Action, rec)
			p = nil
		}
	}()
	if ctx == nil {
		ctx = &task.Context{}
	}
	p = e.fn(t, ctx)
	if p != nil && ctx.NPC != nil {
		plan.ApplyBias(p, ctx.NPC.PersonalityTraits)
	}
	return p
}

// Default carries every built-in planner.
var Default = NewRegistry(nil)

func init() {
	Default.Register(task.ActionBuild, planBuild)
	Default.Register(task.ActionMine, planMine, Parallel())
	Default.Register(task.ActionExplore, planExplore, Parallel())
	Default.Register(task.ActionGather, planGather)
	Default.Register(task.ActionGuard, planGuard)
	Default.Register(task.ActionCraft, planCraft)
	Default.Register(task.ActionInteract, planInteract)
	Default.Register(task.ActionCombat, planCombat)
	Default.Register(task.ActionEat, planEat)
	Default.Register(task.ActionSleep, planSleep)
	Default.Register(task.ActionDoor, planDoor)
	Default.Register(task.ActionClimb, planClimb)
	Default.Register(task.ActionRedstone, planRedstone)
	Default.Register(task.ActionThrow, planThrow)
	Default.Register(task.ActionTrade, planTrade)
	Default.Register(task.ActionMinecart, planMinecart)
	Default.Register(task.ActionDisplay, planDisplay)
	Default.Register(task.ActionComposter, planComposter)
	Default.Register(task.ActionScaffolding, planScaffolding)
	Default.Register(task.ActionRanged, planRanged)
}

// PlanTask plans against the default registry.
func PlanTask(t *task.Request, ctx *task.Context) *plan.Plan {
	return Default.PlanTask(t, ctx)
}

// HasPlanner reports whether the default registry covers the action.
func HasPlanner(action string) bool {
	return Default.HasPlanner(action)
}
