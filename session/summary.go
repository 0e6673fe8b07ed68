package session

import (
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a finished or running session.
type Summary struct {
	Rounds       int     `json:"rounds"`
	Done         bool    `json:"done"`
	Found        int     `json:"found"`
	Exhausted    int     `json:"exhausted"`
	MeanSteps    float64 `json:"mean_steps"`     // over slots that found a path
	MeanPathCost float64 `json:"mean_path_cost"` // over slots that found a path
	MeanExplored float64 `json:"mean_explored"`  // over all slots
	// Best is the slot with the cheapest path, fewer steps breaking ties;
	// -1 when no slot has found a path.
	Best int `json:"best"`
}

// Summary computes aggregate figures over all slots.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{Rounds: s.rounds, Done: s.done(), Best: -1}
	var steps, costs []float64
	explored := make([]float64, 0, len(s.slots))
	for i, sl := range s.slots {
		st := sl.stats
		explored = append(explored, float64(st.Explored))
		if st.Exhausted {
			sum.Exhausted++
		}
		if !st.Found {
			continue
		}
		sum.Found++
		steps = append(steps, float64(st.Steps))
		costs = append(costs, float64(st.PathCost))

		if sum.Best < 0 {
			sum.Best = i
			continue
		}
		best := s.slots[sum.Best].stats
		if st.PathCost < best.PathCost || (st.PathCost == best.PathCost && st.Steps < best.Steps) {
			sum.Best = i
		}
	}
	if len(steps) > 0 {
		sum.MeanSteps = stat.Mean(steps, nil)
		sum.MeanPathCost = stat.Mean(costs, nil)
	}
	sum.MeanExplored = stat.Mean(explored, nil)

	return sum
}
