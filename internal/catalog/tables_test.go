package catalog

import "testing"

func TestTemplates(t *testing.T) {
	tpl, ok := TemplateByName("basic_house")
	if !ok {
		t.Fatalf("basic_house missing")
	}
	if tpl.DisplayName != "Basic House" || tpl.Category != "residential" {
		t.Fatalf("identity: got %q (%s)", tpl.DisplayName, tpl.Category)
	}
	if tpl.EstimatedDuration != 18000 {
		t.Fatalf("duration: got %d want 18000", tpl.EstimatedDuration)
	}
	found := false
	for _, m := range tpl.Materials {
		if m.Name == "oak_planks" {
			found = true
		}
	}
	if !found {
		t.Fatalf("oak_planks missing from bill of materials")
	}

	t.Run("synonym", func(t *testing.T) {
		if tpl, ok := TemplateByName("house"); !ok || tpl.Name != "basic_house" {
			t.Fatalf("got %v ok=%v", tpl.Name, ok)
		}
	})
	t.Run("five categories", func(t *testing.T) {
		cats := map[string]bool{}
		for _, tpl := range Templates {
			cats[tpl.Category] = true
		}
		for _, want := range []string{"residential", "defensive", "agricultural", "storage", "monumental"} {
			if !cats[want] {
				t.Fatalf("category %q missing", want)
			}
		}
	})
}

func TestScaffoldingFormulas(t *testing.T) {
	d := Dimensions{Length: 4, Width: 3, Height: 10}
	cases := []struct {
		pattern string
		want    int
	}{
		{"tower", 10},
		{"platform", 12},
		{"bridge", 12},
		{"spiral", 20},
		{"cage", 140},
		{"waterlogged", 15},
	}
	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			p, ok := ScaffoldPatternByName(tc.pattern)
			if !ok {
				t.Fatalf("pattern missing")
			}
			if got := p.BlocksNeeded(d); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}

	t.Run("craft batches", func(t *testing.T) {
		batches, bamboo, str := ScaffoldCraftBatches(13)
		if batches != 3 || bamboo != 18 || str != 3 {
			t.Fatalf("got %d/%d/%d want 3/18/3", batches, bamboo, str)
		}
		if b, _, _ := ScaffoldCraftBatches(0); b != 0 {
			t.Fatalf("no deficit should need no crafting")
		}
	})
}

func TestHazards(t *testing.T) {
	if got := NormalizeHazardType("lava"); got != HazardLava {
		t.Fatalf("got %q", got)
	}
	if h := HazardFor("lava pool ahead"); h.Type != HazardLava || h.Severity != SeverityCritical {
		t.Fatalf("lava: got %+v", h)
	}
	if h := HazardFor("total nonsense"); h.Type != HazardUnknown {
		t.Fatalf("unknown fallback: got %+v", h)
	}
	if got := NormalizeHazardType("roof collapse"); got != HazardCaveIn {
		t.Fatalf("collapse: got %q", got)
	}
	if SeverityRank(SeverityCritical) <= SeverityRank(SeverityHigh) {
		t.Fatalf("severity order broken")
	}
	if got := NormalizeSeverity("deadly"); got != SeverityCritical {
		t.Fatalf("deadly: got %q", got)
	}
	if got := NormalizeSeverity("whatever"); got != SeverityModerate {
		t.Fatalf("default severity: got %q", got)
	}
}

func TestMiningStrategies(t *testing.T) {
	cases := []struct{ in, want string }{
		{"branch", StrategyBranchMining},
		{"branch_mining", StrategyBranchMining},
		{"strip mine the level", StrategyStripMining},
		{"spiral staircase", StrategySpiralStair},
		{"dig a staircase down", StrategyStaircase},
		{"vertical", StrategyVerticalShaft},
		{"open pit", StrategyQuarry},
		{"just look around caves", StrategyExploration},
		{"", StrategyBranchMining},
		{"gibberish", StrategyBranchMining},
	}
	for _, tc := range cases {
		if got := NormalizeMiningStrategy(tc.in); got != tc.want {
			t.Fatalf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestDirectiveActions(t *testing.T) {
	cases := []struct{ in, fallback, want string }{
		{"pause", "continue", "pause"},
		{"stop everything", "continue", "pause"},
		{"go around it", "pause", "reroute"},
		{"need a better pickaxe", "pause", "request_tools"},
		{"call for backup", "pause", "request_support"},
		{"", "resume", "resume"},
		{"??", "not_an_action", "continue"},
	}
	for _, tc := range cases {
		if got := NormalizeDirectiveAction(tc.in, tc.fallback); got != tc.want {
			t.Fatalf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestSleepRules(t *testing.T) {
	if !WithinSleepWindow(12541) || !WithinSleepWindow(23458) || !WithinSleepWindow(18000) {
		t.Fatalf("window bounds are inclusive")
	}
	if WithinSleepWindow(12540) || WithinSleepWindow(23459) || WithinSleepWindow(6000) {
		t.Fatalf("daytime should be outside the window")
	}
	if !BedAllowedIn("") || !BedAllowedIn("overworld") {
		t.Fatalf("overworld sleep should be allowed")
	}
	if BedAllowedIn("the_nether") || BedAllowedIn("the_end") {
		t.Fatalf("nether and end must refuse beds")
	}
	if !IsBed("red_bed") || !IsBed("bed") || !IsBed("Light Blue Bed") {
		t.Fatalf("bed variants not recognized")
	}
	if IsBed("bedrock") {
		t.Fatalf("bedrock is not a bed")
	}
	if !MobBlocksSleep("zombie") {
		t.Fatalf("zombies block sleep")
	}
	if MobBlocksSleep("zombified_piglin") {
		t.Fatalf("zombified piglin is on the ignore list")
	}
}

func TestThrowables(t *testing.T) {
	pearl, ok := ThrowableByName("ender pearl")
	if !ok || pearl.FallDamage != 5 || !pearl.ConsumesOnThrow {
		t.Fatalf("pearl: got %+v ok=%v", pearl, ok)
	}
	trident, ok := ThrowableByName("trident")
	if !ok || trident.ConsumesOnThrow {
		t.Fatalf("trident must not be consumed: %+v ok=%v", trident, ok)
	}
	if MaxThrowRange != 120 {
		t.Fatalf("throw cap: got %d", MaxThrowRange)
	}
}

func TestStancesAndEnemies(t *testing.T) {
	s, ok := StanceByName("tank")
	if !ok || s.Name != "defensive" {
		t.Fatalf("tank: got %v ok=%v", s.Name, ok)
	}
	if len(Stances) != 5 {
		t.Fatalf("stance count: got %d want 5", len(Stances))
	}
	e, ok := EnemyByName("charged creeper")
	if !ok || e.Priority != 1 {
		t.Fatalf("charged creeper: got %+v ok=%v", e, ok)
	}
	items := CountermeasuresFor([]string{"skeleton", "creeper", "skeleton"})
	if len(items) == 0 || items[0] != "shield" {
		t.Fatalf("countermeasures: got %v", items)
	}
	seen := map[string]bool{}
	for _, it := range items {
		if seen[it] {
			t.Fatalf("duplicate countermeasure %q", it)
		}
		seen[it] = true
	}
}

func TestBiomesAndBands(t *testing.T) {
	b, ok := BiomeByName("mesa")
	if !ok || b.Name != "badlands" {
		t.Fatalf("mesa: got %v ok=%v", b.Name, ok)
	}
	if band := BandForY(-59); band.Name != "lava_depths" {
		t.Fatalf("y=-59: got %q", band.Name)
	}
	if band := BandForY(70); band.Name != "surface" {
		t.Fatalf("y=70: got %q", band.Name)
	}
	if band := BandForY(-500); band.Name != "lava_depths" {
		t.Fatalf("below floor should clamp: got %q", band.Name)
	}
	band, ok := BestBandFor("diamond_ore")
	if !ok || band.Name != "lava_depths" {
		t.Fatalf("diamond band: got %q ok=%v", band.Name, ok)
	}
	if band, ok := BestBandFor("diamond"); !ok || band.Name != "lava_depths" {
		t.Fatalf("bare diamond should match ore entries: got %q ok=%v", band.Name, ok)
	}
	w, ok := WeatherByName("storm")
	if !ok || w.Name != "thunderstorm" {
		t.Fatalf("storm: got %v ok=%v", w.Name, ok)
	}
}

func TestStructuresAndNavigation(t *testing.T) {
	if len(Structures) < 12 {
		t.Fatalf("structure table too small: %d", len(Structures))
	}
	s, ok := StructureByName("desert temple")
	if !ok || s.Name != "desert_pyramid" {
		t.Fatalf("desert temple: got %v ok=%v", s.Name, ok)
	}
	if len(NavStrategies) != 12 {
		t.Fatalf("navigation strategy count: got %d want 12", len(NavStrategies))
	}
	nav := SuggestNavStrategy("stronghold")
	if nav.Name != "eye_tracking" {
		t.Fatalf("stronghold search: got %q", nav.Name)
	}
	if nav := SuggestNavStrategy("nowhere"); nav.Name != "grid" {
		t.Fatalf("fallback: got %q", nav.Name)
	}
}
