package grid

// ConnectedComponents finds all contiguous regions of open cells under
// 4-connectivity. Each component lists Points in flood order; components
// are ordered by their first cell in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Point {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Point

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if !g.IsOpen(p) || seen[g.index(p)] {
				continue
			}
			comps = append(comps, g.flood(p, seen, nil))
		}
	}
	return comps
}

// Reachable reports whether to can be reached from from by orthogonal moves
// over open cells. Both endpoints must be open.
func (g *Grid) Reachable(from, to Point) bool {
	if !g.IsOpen(from) || !g.IsOpen(to) {
		return false
	}
	if from == to {
		return true
	}
	found := false
	g.flood(from, make([]bool, g.Width*g.Height), func(p Point) bool {
		found = p == to
		return found
	})
	return found
}

// flood collects the open component containing start, marking seen as it
// goes. If stop is non-nil and returns true for a visited Point the fill
// ends early.
func (g *Grid) flood(start Point, seen []bool, stop func(Point) bool) []Point {
	queue := []Point{start}
	seen[g.index(start)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if stop != nil && stop(u) {
			return queue[:qi+1]
		}
		for _, v := range Neighbors(u) {
			if !g.IsOpen(v) || seen[g.index(v)] {
				continue
			}
			seen[g.index(v)] = true
			queue = append(queue, v)
		}
	}
	return queue
}
