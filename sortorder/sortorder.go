package sortorder

import (
	"container/heap"

	"github.com/katalvlaran/subiso/graph"
)

// Sort returns the order in which pattern nodes should be considered when
// building the root matching state: a connectivity-aware, degree-greedy
// traversal of pattern that visits every node exactly once, regardless of
// how many connected components pattern has.
//
// Complexity: O(V log V + E log V).
func Sort(pattern *graph.Graph) []int {
	n := pattern.NodeCount()
	order := make([]int, 0, n)
	visited := make([]bool, n)

	degree := make([]int, n)
	for i := 0; i < n; i++ {
		degree[i] = pattern.Degree(i)
	}

	pq := &nodeHeap{}
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		// Seed the next component with the lowest-id unvisited node; the
		// heap then always dequeues the highest-degree frontier node next.
		heap.Push(pq, heapEntry{id: i, degree: degree[i]})
		for pq.Len() > 0 {
			e := heap.Pop(pq).(heapEntry)
			if visited[e.id] {
				continue
			}
			visited[e.id] = true
			order = append(order, e.id)
			for _, nb := range pattern.Neighbors(e.id) {
				if !visited[nb] {
					heap.Push(pq, heapEntry{id: int(nb), degree: degree[nb]})
				}
			}
		}
	}

	return order
}

type heapEntry struct {
	id     int
	degree int
}

// nodeHeap is a max-heap on degree, min-heap on id as a tiebreak, giving a
// deterministic traversal order for graphs with repeated degrees.
type nodeHeap []heapEntry

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].degree != h[j].degree {
		return h[i].degree > h[j].degree
	}

	return h[i].id < h[j].id
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(heapEntry)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
