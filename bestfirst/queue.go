package bestfirst

import "github.com/katalvlaran/pathrace/grid"

// entry is one frontier record. Several entries may exist for the same
// Point; only the one whose f matches the registry is live.
type entry struct {
	p   grid.Point
	f   float64
	seq uint64 // insertion counter, breaks f ties FIFO
}

// entryPQ is a min-heap of entries ordered by (f, seq).
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
