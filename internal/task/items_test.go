package task

import (
	"math"
	"testing"
)

func TestNormalizeItemName_TotalAndIdempotent(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"simple", "Iron_Pickaxe", "iron_pickaxe"},
		{"whitespace", "  Oak   Planks ", "oak planks"},
		{"empty", "", UnspecifiedItem},
		{"nil", nil, UnspecifiedItem},
		{"number", float64(264), "264"},
		{"object name", map[string]any{"name": "Diamond"}, "diamond"},
		{"object item", map[string]any{"item": " Golden Apple "}, "golden apple"},
		{"object id", map[string]any{"id": "TORCH"}, "torch"},
		{"object empty", map[string]any{"name": ""}, UnspecifiedItem},
		{"junk", []int{1, 2}, UnspecifiedItem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeItemName(tc.in)
			if got != tc.want {
				t.Fatalf("NormalizeItemName(%v): got %q want %q", tc.in, got, tc.want)
			}
			if again := NormalizeItemName(got); again != got {
				t.Fatalf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestResolveQuantity(t *testing.T) {
	cases := []struct {
		name     string
		in       any
		fallback int
		want     int
	}{
		{"int", 3, 1, 3},
		{"float", 2.9, 1, 2},
		{"numeric string", "12", 1, 12},
		{"count object", map[string]any{"count": float64(5)}, 1, 5},
		{"quantity object", map[string]any{"quantity": "7"}, 1, 7},
		{"zero", 0, 4, 4},
		{"negative", -3, 4, 4},
		{"nan", math.NaN(), 4, 4},
		{"inf", math.Inf(1), 4, 4},
		{"junk string", "many", 4, 4},
		{"nil", nil, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveQuantity(tc.in, tc.fallback); got != tc.want {
				t.Fatalf("ResolveQuantity(%v, %d): got %d want %d", tc.in, tc.fallback, got, tc.want)
			}
		})
	}
}

func TestDescribeTarget(t *testing.T) {
	if got := DescribeTarget(nil); got != "the designated location" {
		t.Fatalf("nil target: got %q", got)
	}
	if got := DescribeTarget(PointTarget(30, 12, -4)); got != "(30,12,-4)" {
		t.Fatalf("point: got %q", got)
	}
	pt := PointTarget(1, 64, 1)
	pt.Dimension = "the_nether"
	if got := DescribeTarget(pt); got != "(1,64,1) in the_nether" {
		t.Fatalf("dimension point: got %q", got)
	}
	if got := DescribeTarget(&Target{Name: "villager"}); got != "villager" {
		t.Fatalf("named: got %q", got)
	}
	if got := DescribeTarget(&Target{Type: "chest"}); got != "chest" {
		t.Fatalf("typed: got %q", got)
	}
	if got := DescribeTarget(&Target{}); got != "the designated location" {
		t.Fatalf("empty: got %q", got)
	}
}

func TestFormatRequirementList(t *testing.T) {
	got := FormatRequirementList([]Requirement{
		{Name: "iron_ingot", Count: 3},
		{Name: "oak_planks"},
		{Name: "torch", Count: 2},
		{Name: "", Count: 9},
	})
	want := "3 iron_ingot, oak_planks, 2 torch"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
