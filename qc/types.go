// Package qc defines the bone data model, the ordered Skeleton catalog,
// and sentinel errors for the qc subpackage of
// github.com/Link2738/GMod-PM-Proportions-Tool.
package qc

import (
	"errors"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for qc parsing operations.
var (
	// ErrMalformedRecord indicates a $definebone line matched the grammar
	// but carried a non-numeric field where a number is required.
	ErrMalformedRecord = errors.New("qc: malformed $definebone record")
)

// BoneDefinition is one bone inside a skeleton, exactly as declared by a
// $definebone line.
//
// Parent is the declaring skeleton's parent bone name, or "" for a root.
// Position is the model-space offset from the parent, in source units.
// RotationDeg holds Euler angles in degrees, source axis order (X,Y,Z);
// RotationRad is the same triple converted to radians at parse time.
type BoneDefinition struct {
	Name        string
	Parent      string
	Position    r3.Vec
	RotationDeg r3.Vec
	RotationRad r3.Vec
}

// IsRoot reports whether the bone declares no parent.
func (b *BoneDefinition) IsRoot() bool { return b.Parent == "" }

// Skeleton is an insertion-ordered catalog of bones keyed by name, with a
// case-folded secondary index for case-insensitive lookup.
//
// Ordering contract: Names() enumerates bones in declaration order, and a
// later re-definition of an existing name silently replaces the record
// AND moves the name to the end of the order - the position of the last
// occurrence wins. This order is the only indexable order available and
// is preserved through all outputs.
//
// Skeleton is not safe for concurrent mutation; parse results are used
// fresh per request, and the one shared instance (the cached reference
// skeleton) is never mutated after construction.
type Skeleton struct {
	order  []string
	bones  map[string]*BoneDefinition
	folded map[string]string // lower-cased name → declared name
}

// NewSkeleton returns an empty Skeleton ready for Put.
func NewSkeleton() *Skeleton {
	return &Skeleton{
		bones:  make(map[string]*BoneDefinition),
		folded: make(map[string]string),
	}
}

// Put inserts or replaces a bone definition. On replacement the name is
// moved to the tail of the enumeration order (last occurrence wins).
// Complexity: O(1) amortized for insert, O(n) for a replacement (order
// slice compaction).
func (s *Skeleton) Put(b *BoneDefinition) {
	if b == nil || b.Name == "" {
		return
	}
	if _, exists := s.bones[b.Name]; exists {
		for i, name := range s.order {
			if name == b.Name {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.order = append(s.order, b.Name)
	s.bones[b.Name] = b
	s.folded[strings.ToLower(b.Name)] = b.Name
}

// Len returns the number of bones in the skeleton.
func (s *Skeleton) Len() int { return len(s.order) }

// Names returns the bone names in declaration order. The slice is a copy;
// callers may keep or mutate it freely.
func (s *Skeleton) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Bone returns the definition for an exact name, or nil when absent.
func (s *Skeleton) Bone(name string) *BoneDefinition {
	return s.bones[name]
}

// BoneFold returns the definition whose name matches case-insensitively,
// or nil when absent. When two declared names collide under folding the
// most recently declared one wins, mirroring Put's replacement rule.
func (s *Skeleton) BoneFold(name string) *BoneDefinition {
	declared, ok := s.folded[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return s.bones[declared]
}

// HasFold reports whether any bone name matches case-insensitively.
func (s *Skeleton) HasFold(name string) bool {
	_, ok := s.folded[strings.ToLower(name)]
	return ok
}
