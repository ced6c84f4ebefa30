package proportion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Link2738/GMod-PM-Proportions-Tool/qc"
	"github.com/Link2738/GMod-PM-Proportions-Tool/valvebiped"
)

func mustParse(t *testing.T, text string) *qc.Skeleton {
	t.Helper()
	skel, err := qc.ParseBones(text)
	require.NoError(t, err)
	return skel
}

// TestMatch_FullReferenceModel verifies a model carrying the whole
// reference skeleton matches all 53 core bones in canonical order, with
// every parent index pointing strictly backwards.
func TestMatch_FullReferenceModel(t *testing.T) {
	model, err := valvebiped.ParseReference()
	require.NoError(t, err)
	ref := valvebiped.Reference()

	matched := Match(model, ref)
	require.Len(t, matched, 53)

	canonical := valvebiped.CanonicalBones()
	for i, mb := range matched {
		require.Equal(t, canonical[i], mb.Name)
		require.Less(t, mb.ParentIndex, i, "parent must precede child in output order")
		require.GreaterOrEqual(t, mb.ParentIndex, -1)
	}
	require.Equal(t, -1, matched[0].ParentIndex, "pelvis is the root")
}

// TestMatch_CanonicalOrderWinsOverModelOrder verifies output order is
// the canonical list's, not the model's declaration order.
func TestMatch_CanonicalOrderWinsOverModelOrder(t *testing.T) {
	model := mustParse(t, `
$definebone "ValveBiped.Bip01_Head1" "" 0 0 0 0 0 0
$definebone "ValveBiped.Bip01_Spine" "" 0 0 0 0 0 0
$definebone "ValveBiped.Bip01_Pelvis" "" 0 0 0 0 0 0
`)
	matched := Match(model, valvebiped.Reference())
	require.Len(t, matched, 3)
	require.Equal(t, "ValveBiped.Bip01_Pelvis", matched[0].Name)
	require.Equal(t, "ValveBiped.Bip01_Spine", matched[1].Name)
	require.Equal(t, "ValveBiped.Bip01_Head1", matched[2].Name)
}

// TestMatch_ReparentsAcrossUnmatchedAncestors verifies a bone whose
// declared ancestor is absent re-parents to its nearest surviving
// ancestor in the reference chain.
func TestMatch_ReparentsAcrossUnmatchedAncestors(t *testing.T) {
	// Spine1's reference parent is Spine, which this model lacks. The
	// walk must continue to Pelvis.
	model := mustParse(t, `
$definebone "ValveBiped.Bip01_Pelvis" "" 0 0 0 0 0 0
$definebone "ValveBiped.Bip01_Spine1" "" 0 0 0 0 0 0
`)
	matched := Match(model, valvebiped.Reference())
	require.Len(t, matched, 2)
	require.Equal(t, -1, matched[0].ParentIndex)
	require.Equal(t, 0, matched[1].ParentIndex)
}

// TestMatch_ChainWithNoSurvivorsIsRoot verifies that a bone whose whole
// ancestor chain is unmatched becomes a root.
func TestMatch_ChainWithNoSurvivorsIsRoot(t *testing.T) {
	model := mustParse(t, `$definebone "ValveBiped.Bip01_Head1" "" 0 0 0 0 0 0`)
	matched := Match(model, valvebiped.Reference())
	require.Len(t, matched, 1)
	require.Equal(t, -1, matched[0].ParentIndex)
}

// TestMatch_CaseInsensitiveModelNames verifies model spelling never
// matters and the output always carries canonical spelling.
func TestMatch_CaseInsensitiveModelNames(t *testing.T) {
	model := mustParse(t, `$definebone "valvebiped.bip01_pelvis" "" 0 0 0 0 0 0`)
	matched := Match(model, valvebiped.Reference())
	require.Len(t, matched, 1)
	require.Equal(t, "ValveBiped.Bip01_Pelvis", matched[0].Name)
}

// TestMatch_NothingMatches verifies an empty result, not an error, for
// an incompatible rig.
func TestMatch_NothingMatches(t *testing.T) {
	model := mustParse(t, `$definebone "mixamorig:Hips" "" 0 0 0 0 0 0`)
	require.Empty(t, Match(model, valvebiped.Reference()))
}

// TestNearestMatchedAncestor_CycleGuard verifies a corrupted reference
// with a parent cycle terminates as root instead of looping.
func TestNearestMatchedAncestor_CycleGuard(t *testing.T) {
	ref := mustParse(t, `
$definebone "a" "b" 0 0 0 0 0 0
$definebone "b" "a" 0 0 0 0 0 0
`)
	require.Equal(t, -1, nearestMatchedAncestor(ref, "a", map[string]int{}))
}
