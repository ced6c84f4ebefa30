package proportion

import (
	"github.com/Link2738/GMod-PM-Proportions-Tool/qc"
	"github.com/Link2738/GMod-PM-Proportions-Tool/valvebiped"
)

// MatchedBone is one bone of the compacted output skeleton: its canonical
// name and the output index of its nearest matched ancestor (-1 = root).
type MatchedBone struct {
	Name        string
	ParentIndex int
}

// Match intersects the model skeleton with the canonical core list and
// the reference skeleton.
//
// A canonical name is matched iff it exists in ref (exact) and in model
// (case-insensitive). The result preserves canonical-list order - the
// index contract for both output files - regardless of model declaration
// order. Each matched bone's ParentIndex is resolved by walking the
// reference parent chain until an ancestor is itself matched; unmatched
// intermediates are skipped, so a surviving grandchild re-parents to its
// nearest surviving ancestor instead of orphaning.
//
// Returns an empty slice when nothing matches; callers decide whether
// that is an error.
//
// Complexity: O(C·D) where C is the canonical list size and D the
// reference hierarchy depth.
func Match(model, ref *qc.Skeleton) []MatchedBone {
	var names []string
	for _, name := range valvebiped.CanonicalBones() {
		if ref.Bone(name) != nil && model.HasFold(name) {
			names = append(names, name)
		}
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	out := make([]MatchedBone, len(names))
	for i, name := range names {
		out[i] = MatchedBone{
			Name:        name,
			ParentIndex: nearestMatchedAncestor(ref, name, index),
		}
	}
	return out
}

// nearestMatchedAncestor walks ref's parent chain upward from name's
// declared parent and returns the output index of the first ancestor in
// the matched set, or -1 when the chain ends at a root or leaves the
// skeleton. A visited set bounds the walk so a corrupted reference chain
// cannot loop.
func nearestMatchedAncestor(ref *qc.Skeleton, name string, matched map[string]int) int {
	seen := make(map[string]struct{})
	parent := ref.Bone(name).Parent
	for parent != "" {
		if idx, ok := matched[parent]; ok {
			return idx
		}
		if _, revisited := seen[parent]; revisited {
			return -1
		}
		seen[parent] = struct{}{}
		bone := ref.Bone(parent)
		if bone == nil {
			return -1
		}
		parent = bone.Parent
	}
	return -1
}
