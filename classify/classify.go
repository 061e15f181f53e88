package classify

import (
	"sort"

	"github.com/katalvlaran/subiso/graph"
)

// Classification maps every node of one graph to an equivalence class id.
type Classification struct {
	classes       []int32
	count         int
	labelToClass  map[graph.Label]int32
	nextUnmatched int32
}

// Class returns the class id of nodeID.
func (c *Classification) Class(nodeID int) int32 {
	return c.classes[nodeID]
}

// Classes returns the per-node class id slice, indexed by node id.
func (c *Classification) Classes() []int32 {
	return c.classes
}

// Count returns the target graph's number of distinct classes. For a
// ClassifyTarget result that is the graph's own class count; a
// ClassifyPattern result reports its target's count, without the extra
// ids given to pattern labels absent from the target.
func (c *Classification) Count() int {
	return c.count
}

// ClassifyTarget builds a Classification over g, assigning class ids 0..k-1
// to g's k distinct labels in ascending label order (deterministic across
// runs given the same graph).
func ClassifyTarget(g *graph.Graph) *Classification {
	n := g.NodeCount()
	labels := make([]graph.Label, n)
	for i := 0; i < n; i++ {
		lbl, _ := g.Label(i)
		labels[i] = lbl
	}

	distinct := distinctSorted(labels)
	labelToClass := make(map[graph.Label]int32, len(distinct))
	for i, lbl := range distinct {
		labelToClass[lbl] = int32(i)
	}

	classes := make([]int32, n)
	for i, lbl := range labels {
		classes[i] = labelToClass[lbl]
	}

	return &Classification{
		classes:       classes,
		count:         len(distinct),
		labelToClass:  labelToClass,
		nextUnmatched: int32(len(distinct)),
	}
}

// ClassifyPattern builds a Classification over g using target's class id
// space. Labels present in target map to target's class id; labels never
// seen in target each get a fresh id beyond target.Count(), guaranteeing
// no target node shares their class.
func ClassifyPattern(g *graph.Graph, target *Classification) *Classification {
	n := g.NodeCount()
	classes := make([]int32, n)

	unmatched := make(map[graph.Label]int32)
	next := target.nextUnmatched
	for i := 0; i < n; i++ {
		lbl, _ := g.Label(i)
		if cls, ok := target.labelToClass[lbl]; ok {
			classes[i] = cls
			continue
		}
		cls, ok := unmatched[lbl]
		if !ok {
			cls = next
			unmatched[lbl] = cls
			next++
		}
		classes[i] = cls
	}

	return &Classification{
		classes: classes,
		count:   target.count,
	}
}

func distinctSorted(labels []graph.Label) []graph.Label {
	seen := make(map[graph.Label]struct{})
	out := make([]graph.Label, 0, len(labels))
	for _, lbl := range labels {
		if _, ok := seen[lbl]; !ok {
			seen[lbl] = struct{}{}
			out = append(out, lbl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
