package planner

import (
	"fmt"
	"math"
	"strings"

	"mindcraftce.ai/internal/catalog"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/task"
)

const (
	buildBaseDuration   = 6000
	buildMillisPerBlock = 120
	scaffoldFromHeight  = 6
	buildOverhead       = 1.10
)

var buildToolKit = []string{"axe", "pickaxe", "shovel"}

// buildSpec is the task metadata with template defaults merged in; explicit
// fields always win over the template.
type buildSpec struct {
	structure    string
	template     *catalog.Template
	dims         catalog.Dimensions
	dimsExplicit bool
	roofStyle    string
	category     string
	orientation  string
	materials    []task.Requirement
	features     []string
}

func resolveBuildSpec(meta task.Metadata) buildSpec {
	var spec buildSpec
	if name := meta.StringOr("", "template"); name != "" {
		if tpl, ok := catalog.TemplateByName(name); ok {
			spec.template = &tpl
			spec.structure = tpl.Name
			spec.dims = tpl.Dimensions
			spec.roofStyle = tpl.RoofStyle
			spec.category = tpl.Category
			spec.materials = tpl.Materials
			spec.features = tpl.Features
		}
	}
	if s := meta.StringOr("", "structure", "structure_type", "building", "kind"); s != "" {
		spec.structure = task.NormalizeItemName(s)
	}
	if spec.structure == "" {
		spec.structure = "structure"
	}
	if l, ok := meta.Int("length", "depth"); ok && l > 0 {
		spec.dims.Length = l
		spec.dimsExplicit = true
	}
	if w, ok := meta.Int("width"); ok && w > 0 {
		spec.dims.Width = w
		spec.dimsExplicit = true
	}
	if h, ok := meta.Int("height"); ok && h > 0 {
		spec.dims.Height = h
		spec.dimsExplicit = true
	}
	if spec.dims.Length < 1 {
		spec.dims.Length = 5
	}
	if spec.dims.Width < 1 {
		spec.dims.Width = 5
	}
	if spec.dims.Height < 1 {
		spec.dims.Height = 3
	}
	if r := meta.StringOr("", "roof_style", "roofstyle", "roof"); r != "" {
		spec.roofStyle = task.NormalizeItemName(r)
	}
	if c := meta.StringOr("", "category"); c != "" {
		spec.category = task.NormalizeItemName(c)
	}
	spec.orientation = meta.StringOr("", "orientation", "facing", "direction")
	if raw, ok := meta.Slice("materials"); ok {
		mats := make([]task.Requirement, 0, len(raw))
		for _, m := range raw {
			name := task.NormalizeItemName(m)
			if name == task.UnspecifiedItem {
				continue
			}
			mats = append(mats, task.Requirement{Name: name, Count: task.ResolveQuantity(m, 1)})
		}
		if len(mats) > 0 {
			spec.materials = mats
		}
	}
	return spec
}

// estimateMaterials prices a hollow-walled box with the roof style applied.
// Counts carry a 10% overhead for breakage and misplacement.
func estimateMaterials(spec buildSpec, block string) ([]task.Requirement, int) {
	l, w, h := spec.dims.Length, spec.dims.Width, spec.dims.Height
	area := l * w
	perim := 2*(l+w) - 4
	if perim < 4 {
		perim = 4
	}
	windows := perim / 5
	if windows < 2 {
		windows = 2
	}
	doors := perim / 24
	if doors < 1 {
		doors = 1
	}
	openings := 2*doors + windows
	walls := perim*h - perim - openings
	if walls < 0 {
		walls = 0
	}
	var roof int
	switch spec.roofStyle {
	case "pitched":
		roof = int(math.Ceil(1.5 * float64(area)))
	case "flat":
		roof = area
	case "battlements":
		roof = int(math.Ceil(1.5 * float64(2*(l+w))))
	case "domed":
		roof = int(math.Ceil(1.2 * float64(area)))
	case "none", "":
		roof = 0
	default:
		roof = area
	}
	floors := h / 4
	if floors < 1 {
		floors = 1
	}
	lighting := int(math.Ceil(float64(area)/8)) * floors
	structural := int(math.Ceil(float64(walls+roof) * buildOverhead))
	mats := []task.Requirement{
		{Name: block, Count: structural},
		{Name: "glass_pane", Count: windows},
		{Name: "oak_door", Count: doors},
		{Name: "torch", Count: lighting},
	}
	return mats, walls + roof
}

func planBuild(t *task.Request, ctx *task.Context) *plan.Plan {
	meta := t.Meta()
	spec := resolveBuildSpec(meta)
	items := ctx.Items()

	blocks := 0
	if spec.template == nil || spec.dimsExplicit {
		block := task.NormalizeItemName(meta.StringOr("", "material", "block"))
		if block == task.UnspecifiedItem {
			block = "oak_planks"
		}
		spec.materials, blocks = estimateMaterials(spec, block)
	}

	missingTools := missingGear(items, buildToolKit)
	missing := make([]task.Requirement, 0, len(spec.materials))
	for _, m := range spec.materials {
		have := task.CountItems(items, m.Name)
		if have < m.Count {
			missing = append(missing, task.Requirement{Name: m.Name, Count: m.Count - have})
		}
	}

	steps := make([]plan.Step, 0, 14)
	steps = append(steps, plan.Step{
		Title: "Verify tools", Type: plan.StepPreparation,
		Description: "Check the toolkit: " + strings.Join(buildToolKit, ", ") + ".",
		Metadata:    map[string]any{"missing": missingTools},
	})
	if len(missing) > 0 {
		steps = append(steps, plan.Step{
			Title: "Restock materials", Type: plan.StepPreparation,
			Description: "Acquire " + task.FormatRequirementList(missing) + " before starting.",
		})
	}
	surveyDesc := fmt.Sprintf("Walk the footprint at %s and mark the corners.", task.DescribeTarget(t.Target))
	if spec.orientation != "" {
		surveyDesc = fmt.Sprintf("Walk the footprint at %s and mark the corners, entrance facing %s.",
			task.DescribeTarget(t.Target), spec.orientation)
	}
	steps = append(steps, plan.Step{
		Title: "Survey site", Type: plan.StepPlanning, Description: surveyDesc,
		Metadata: map[string]any{"orientation": spec.orientation},
	})
	if meta.BoolOr(false, "clear_terrain", "prepare_terrain", "level_ground") {
		steps = append(steps, plan.Step{
			Title: "Prepare terrain", Type: plan.StepPreparation,
			Description: "Level the ground and clear vegetation across the footprint.",
		})
	}
	steps = append(steps, plan.Step{
		Title: "Stage materials", Type: plan.StepPreparation,
		Description: "Lay out " + task.FormatRequirementList(spec.materials) + " within reach of the site.",
	})
	if spec.category == "defensive" || meta.BoolOr(false, "secure_perimeter") {
		steps = append(steps, plan.Step{
			Title: "Secure perimeter", Type: plan.StepSafety,
			Description: "Light and fence the surroundings before construction.",
		})
	}
	steps = append(steps, plan.Step{
		Title: "Lay foundation", Type: plan.StepConstruction,
		Description: fmt.Sprintf("Place the %dx%d foundation.", spec.dims.Length, spec.dims.Width),
		Metadata:    map[string]any{"length": spec.dims.Length, "width": spec.dims.Width},
	})
	if spec.dims.Height > scaffoldFromHeight {
		steps = append(steps, plan.Step{
			Title: "Place scaffolding", Type: plan.StepConstruction,
			Description: fmt.Sprintf("Raise scaffolding for work above %d blocks.", scaffoldFromHeight),
		})
	}
	steps = append(steps, plan.Step{
		Title: "Assemble structure", Type: plan.StepConstruction,
		Description: fmt.Sprintf("Raise the walls to %d blocks and frame openings.", spec.dims.Height),
	})
	if spec.roofStyle != "" && spec.roofStyle != "none" {
		steps = append(steps, plan.Step{
			Title: "Install roof", Type: plan.StepConstruction,
			Description: fmt.Sprintf("Fit the %s roof.", spec.roofStyle),
		})
	}
	if meta.BoolOr(false, "redstone") || hasFeature(spec.features, "redstone") {
		steps = append(steps, plan.Step{
			Title: "Install redstone", Type: plan.StepConstruction,
			Description: "Wire lighting and mechanisms.",
		})
	}
	steps = append(steps, plan.Step{
		Title: "Finish and inspect", Type: plan.StepAction,
		Description: "Fill gaps, check symmetry, and torch dark corners.",
	})
	if spec.category == "residential" || meta.BoolOr(false, "furnish", "interior") {
		steps = append(steps, plan.Step{
			Title: "Outfit interior", Type: plan.StepAction,
			Description: "Place bed, chests, and a crafting corner inside.",
		})
	}
	if meta.BoolOr(false, "cleanup") {
		steps = append(steps, plan.Step{
			Title: "Clean up", Type: plan.StepAction,
			Description: "Collect leftover materials and remove scaffolding.",
		})
	}

	duration := 0
	if d, ok := meta.Int("duration", "estimated_duration"); ok && d > 0 {
		duration = d
	} else if spec.template != nil && !spec.dimsExplicit {
		duration = spec.template.EstimatedDuration
	} else {
		duration = buildBaseDuration + blocks*buildMillisPerBlock
		if spec.dims.Height > scaffoldFromHeight {
			duration += 2500
		}
		duration = scaleDuration(duration, terrainMultiplier(ctx))
	}
	if ctx.Position != nil && t.Target.HasPoint() {
		duration += travelDuration(ctx, t.Target)
	}

	resources := make([]string, 0, len(spec.materials)+len(buildToolKit))
	for _, m := range spec.materials {
		resources = append(resources, m.Name)
	}
	resources = append(resources, buildToolKit...)

	risks := environmentRisks(ctx)
	if spec.dims.Height > scaffoldFromHeight {
		risks = append(risks, hazardLine("fall")+" while working at height")
	}

	notes := make([]string, 0, 3)
	if spec.template != nil {
		notes = append(notes, fmt.Sprintf("Using template: %s (%s).", spec.template.DisplayName, spec.template.Category))
	}
	if len(missing) > 0 {
		notes = append(notes, "Missing materials: "+task.FormatRequirementList(missing)+".")
	}

	summary := fmt.Sprintf("Build %s at %s", spec.structure, task.DescribeTarget(t.Target))
	p := plan.New(plan.Plan{
		Task:              t,
		Summary:           summary,
		Steps:             steps,
		EstimatedDuration: duration,
		Resources:         resources,
		Risks:             risks,
		Notes:             notes,
		Metadata: map[string]any{
			"structure":  spec.structure,
			"dimensions": spec.dims,
			"roofStyle":  spec.roofStyle,
		},
	})
	p.PreferredTraits = []string{"builder", "creative", "patient"}
	return p
}

func hasFeature(features []string, want string) bool {
	for _, f := range features {
		if strings.Contains(strings.ToLower(f), want) {
			return true
		}
	}
	return false
}
