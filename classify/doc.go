// Package classify partitions graph nodes into equivalence classes by
// label, mirroring VF3's NodeClassifier collaborator. Class ids are
// assigned from the target graph's distinct labels; the pattern graph is
// then classified against that same id space so a pattern node and a
// target node are comparable by class id alone (no string/label
// comparison needed on the matching hot path).
//
// A pattern label absent from the target is given a class id at or beyond
// the target's class count — Classification.Count()+k for the unmatched
// label first seen k-th, counting from 0 —
// so any node carrying it is guaranteed to never share a class with a
// target node, without requiring the matching state to special-case it.
package classify
