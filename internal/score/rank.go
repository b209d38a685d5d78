package score

import "sort"

// maxRanked bounds how many scored strategies a ranking pass reports.
const maxRanked = 10

// Candidate is one mining strategy under evaluation.
type Candidate struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Efficiency float64 `json:"efficiency"`
	Distance   int     `json:"distance"`
}

// Scored pairs a candidate with its computed score.
type Scored struct {
	Candidate
	Score float64 `json:"score"`
}

// RankStrategies scores each candidate as value*efficiency/(distance+1)
// and returns the best ten, highest first. Ties keep input order.
func RankStrategies(cands []Candidate) []Scored {
	out := make([]Scored, 0, len(cands))
	for _, c := range cands {
		out = append(out, Scored{
			Candidate: c,
			Score:     c.Value * c.Efficiency / float64(c.Distance+1),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > maxRanked {
		out = out[:maxRanked]
	}
	return out
}
