package task

import "testing"

func TestExtractInventory_Shapes(t *testing.T) {
	wantBread := func(t *testing.T, inv []Item) {
		t.Helper()
		if got := CountItems(inv, "bread"); got != 3 {
			t.Fatalf("bread count: got %d want 3", got)
		}
	}

	t.Run("slice", func(t *testing.T) {
		inv := ExtractInventory([]any{map[string]any{"name": "Bread", "count": float64(3)}})
		wantBread(t, inv)
	})
	t.Run("slots", func(t *testing.T) {
		inv := ExtractInventory(map[string]any{"slots": []any{
			map[string]any{"name": "bread", "count": float64(2)},
			map[string]any{"name": "bread", "count": float64(1)},
		}})
		wantBread(t, inv)
	})
	t.Run("items", func(t *testing.T) {
		inv := ExtractInventory(map[string]any{"items": []any{map[string]any{"name": "bread", "count": float64(3)}}})
		wantBread(t, inv)
	})
	t.Run("mapping", func(t *testing.T) {
		inv := ExtractInventory(map[string]any{"bread": float64(3), "stone": float64(12)})
		wantBread(t, inv)
		if got := CountItems(inv, "stone"); got != 12 {
			t.Fatalf("stone count: got %d want 12", got)
		}
	})
	t.Run("mapping with count objects", func(t *testing.T) {
		inv := ExtractInventory(map[string]any{"emerald": map[string]any{"count": float64(30)}})
		if got := CountItems(inv, "emerald"); got != 30 {
			t.Fatalf("emerald count: got %d want 30", got)
		}
	})
	t.Run("junk", func(t *testing.T) {
		if inv := ExtractInventory(42); len(inv) != 0 {
			t.Fatalf("junk input: got %d items", len(inv))
		}
	})
}

func TestHasItem_CaseAndSeparators(t *testing.T) {
	inv := []Item{{Name: "iron pickaxe", Count: 1}, {Name: "Oak_Planks", Count: 40}}

	if !HasItem(inv, "Iron_Pickaxe", 1) {
		t.Fatalf("expected iron_pickaxe match across separators")
	}
	if !HasItem(inv, "oak planks", 40) {
		t.Fatalf("expected oak planks min-count match")
	}
	if HasItem(inv, "oak planks", 41) {
		t.Fatalf("min above count should fail")
	}
	if HasItem(inv, "", 1) {
		t.Fatalf("sentinel name should never match")
	}
}

func TestCanonicalItemName(t *testing.T) {
	cases := map[string]string{
		"Oak Log":      "oak_log",
		"oak_log":      "oak_log",
		"IRON PICKAXE": "iron_pickaxe",
	}
	for in, want := range cases {
		if got := CanonicalItemName(in); got != want {
			t.Fatalf("CanonicalItemName(%q): got %q want %q", in, got, want)
		}
	}
}
