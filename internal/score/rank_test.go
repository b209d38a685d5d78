package score

import (
	"fmt"
	"testing"
)

func TestRankStrategiesScoresAndOrders(t *testing.T) {
	ranked := RankStrategies([]Candidate{
		{Name: "iron_branch", Value: 10, Efficiency: 0.8, Distance: 3},
		{Name: "diamond_deep", Value: 100, Efficiency: 0.5, Distance: 9},
		{Name: "coal_surface", Value: 5, Efficiency: 1, Distance: 0},
	})
	if len(ranked) != 3 {
		t.Fatalf("ranked: %d", len(ranked))
	}
	// diamond_deep and coal_surface tie at 5.0; stable sort keeps input order.
	wantNames := []string{"diamond_deep", "coal_surface", "iron_branch"}
	wantScores := []float64{5, 5, 2}
	for i := range wantNames {
		if ranked[i].Name != wantNames[i] {
			t.Fatalf("ranked[%d]: got %q want %q", i, ranked[i].Name, wantNames[i])
		}
		if ranked[i].Score != wantScores[i] {
			t.Fatalf("score[%d]: got %v want %v", i, ranked[i].Score, wantScores[i])
		}
	}
}

func TestRankStrategiesCapsAtTen(t *testing.T) {
	cands := make([]Candidate, 0, 12)
	for i := 1; i <= 12; i++ {
		cands = append(cands, Candidate{Name: fmt.Sprintf("s%d", i), Value: float64(i), Efficiency: 1})
	}
	ranked := RankStrategies(cands)
	if len(ranked) != 10 {
		t.Fatalf("ranked: %d", len(ranked))
	}
	if ranked[0].Name != "s12" || ranked[9].Name != "s3" {
		t.Fatalf("order: first %q last %q", ranked[0].Name, ranked[9].Name)
	}
}

func TestRankStrategiesEmpty(t *testing.T) {
	if got := RankStrategies(nil); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
