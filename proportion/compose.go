package proportion

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Link2738/GMod-PM-Proportions-Tool/qc"
	"github.com/Link2738/GMod-PM-Proportions-Tool/smd"
)

// Compose builds the two output bone lists from a matched set.
//
// Per bone, in matched order:
//   - rotation: the model bone's cached radians, remapped from
//     $definebone axis order (X,Y,Z) to SMD order (Z,X,Y). The same
//     triple goes into BOTH lists - this field-for-field identity is
//     what makes the downstream subtraction rotation-free, so the value
//     is computed exactly once.
//   - props position: the model bone's position, raw.
//   - hl2 position: the reference bone's position, raw.
//
// Hierarchy (name, order, parent index) is shared between the lists.
func Compose(matched []MatchedBone, model, ref *qc.Skeleton) (props, hl2 []smd.BoneRecord) {
	props = make([]smd.BoneRecord, 0, len(matched))
	hl2 = make([]smd.BoneRecord, 0, len(matched))
	for _, mb := range matched {
		modelBone := model.BoneFold(mb.Name)
		refBone := ref.Bone(mb.Name)
		rad := modelBone.RotationRad
		rotation := r3.Vec{X: rad.Z, Y: rad.X, Z: rad.Y}

		props = append(props, smd.BoneRecord{
			Name:        mb.Name,
			ParentIndex: mb.ParentIndex,
			Position:    modelBone.Position,
			Rotation:    rotation,
		})
		hl2 = append(hl2, smd.BoneRecord{
			Name:        mb.Name,
			ParentIndex: mb.ParentIndex,
			Position:    refBone.Position,
			Rotation:    rotation,
		})
	}
	return props, hl2
}
