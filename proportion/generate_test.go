package proportion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// pelvisQC is the smallest generatable model: one canonical root bone,
// positioned at (0, 0, 10) with a 90 degree roll on the third axis.
const pelvisQC = `$modelname "player/pelvis_only.mdl"
$definebone "ValveBiped.Bip01_Pelvis" "" 0 0 10 0 0 90
`

// GenerateSuite exercises the whole pipeline against temp directories.
type GenerateSuite struct {
	suite.Suite

	dir    string
	qcPath string
	events []Event
	opts   Options
}

func (s *GenerateSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.qcPath = filepath.Join(s.dir, "model.qc")
	s.events = nil
	s.opts = DefaultOptions()
	s.opts.OnEvent = func(e Event) { s.events = append(s.events, e) }
}

func (s *GenerateSuite) writeQC(content string) {
	s.Require().NoError(os.WriteFile(s.qcPath, []byte(content), 0o644))
}

func (s *GenerateSuite) readFile(path string) string {
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	return string(data)
}

func (s *GenerateSuite) eventMessages() []string {
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = string(e.Level) + " " + e.Message
	}
	return out
}

// TestPelvisScenario pins the end-to-end output for the one-bone model:
// paths, bone count, and both SMD payloads byte for byte.
func (s *GenerateSuite) TestPelvisScenario() {
	s.writeQC(pelvisQC)

	result, err := Generate(s.qcPath, s.dir, s.opts)
	s.Require().NoError(err)
	s.Equal(1, result.BoneCount)
	s.Equal(filepath.Join(s.dir, "anims", "proportions.smd"), result.ProportionsPath)
	s.Equal(filepath.Join(s.dir, "anims", "hl2_female_reference.smd"), result.ReferencePath)
	s.Equal(filepath.Join(s.dir, "corrective_qc_snippet.txt"), result.SnippetPath)

	wantProps := "version 1\n" +
		"nodes\n" +
		"  0 \"ValveBiped.Bip01_Pelvis\" -1\n" +
		"end\n" +
		"skeleton\n" +
		"time 0\n" +
		"  0  0.000000 0.000000 10.000000  1.570796 0.000000 0.000000\n" +
		"end\n"
	s.Equal(wantProps, s.readFile(result.ProportionsPath))

	wantHL2 := "version 1\n" +
		"nodes\n" +
		"  0 \"ValveBiped.Bip01_Pelvis\" -1\n" +
		"end\n" +
		"skeleton\n" +
		"time 0\n" +
		"  0  -0.000005 -0.788460 37.913784  1.570796 0.000000 0.000000\n" +
		"end\n"
	s.Equal(wantHL2, s.readFile(result.ReferencePath))
}

// TestSnippetReadBack verifies the returned text equals the rendered
// snippet and the bytes on disk.
func (s *GenerateSuite) TestSnippetReadBack() {
	s.writeQC(pelvisQC)

	result, err := Generate(s.qcPath, s.dir, s.opts)
	s.Require().NoError(err)
	s.Equal(Snippet("anims", false), result.SnippetText)
	s.Equal(result.SnippetText, s.readFile(result.SnippetPath))
}

// TestDeterminism verifies two runs over the same input produce byte
// identical files.
func (s *GenerateSuite) TestDeterminism() {
	s.writeQC(pelvisQC)

	outA := filepath.Join(s.dir, "a")
	outB := filepath.Join(s.dir, "b")
	resA, err := Generate(s.qcPath, outA, s.opts)
	s.Require().NoError(err)
	resB, err := Generate(s.qcPath, outB, s.opts)
	s.Require().NoError(err)

	s.Equal(s.readFile(resA.ProportionsPath), s.readFile(resB.ProportionsPath))
	s.Equal(s.readFile(resA.ReferencePath), s.readFile(resB.ReferencePath))
	s.Equal(s.readFile(resA.SnippetPath), s.readFile(resB.SnippetPath))
}

// TestCustomSubFolder verifies Options.SubFolder moves the SMDs and is
// reflected inside the snippet.
func (s *GenerateSuite) TestCustomSubFolder() {
	s.writeQC(pelvisQC)
	s.opts.SubFolder = "proportion_anims"

	result, err := Generate(s.qcPath, s.dir, s.opts)
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "proportion_anims", "proportions.smd"), result.ProportionsPath)
	s.Contains(result.SnippetText, `"proportion_anims/proportions.smd"`)
}

// TestIKChainAdvisory verifies $ikchain in the model QC flips the
// snippet advisory and emits the follow-up event.
func (s *GenerateSuite) TestIKChainAdvisory() {
	s.writeQC(pelvisQC + `$ikchain "rfoot" "ValveBiped.Bip01_R_Foot" knee 0.707 0.707 0` + "\n")

	result, err := Generate(s.qcPath, s.dir, s.opts)
	s.Require().NoError(err)
	s.Contains(result.SnippetText, "$ikchain detected")
	s.Contains(s.eventMessages(), "INFO $ikchain detected -- see snippet for notes.")
}

// TestEventStream verifies the progress narration a front end renders:
// the analysis lines, the per-file completions, and the closing summary.
func (s *GenerateSuite) TestEventStream() {
	s.writeQC(pelvisQC + `$definebone "jiggle_tie" "ValveBiped.Bip01_Pelvis" 0 0 0 0 0 0` + "\n")

	_, err := Generate(s.qcPath, s.dir, s.opts)
	s.Require().NoError(err)

	msgs := s.eventMessages()
	s.Contains(msgs, "INFO Model: model")
	s.Contains(msgs, "INFO Target skeleton: 2 bones")
	s.Contains(msgs, "INFO Reference skeleton: 70 bones")
	s.Contains(msgs, "INFO Matched ValveBiped: 1/2")
	s.Contains(msgs, "INFO Custom bones (1): jiggle_tie")
	s.Contains(msgs, "INFO Format: SMD")
	s.Contains(msgs, "DONE proportions.smd (1 bones)")
	s.Contains(msgs, "DONE hl2_female_reference.smd (1 bones)")
	s.Contains(msgs, "DONE corrective_qc_snippet.txt")
	s.Contains(msgs, "DONE All files generated successfully.")
}

// TestMissingQC verifies ErrNotFound with nothing written.
func (s *GenerateSuite) TestMissingQC() {
	_, err := Generate(filepath.Join(s.dir, "missing.qc"), s.dir, s.opts)
	s.Require().ErrorIs(err, ErrNotFound)
	s.noOutputWritten()
}

// TestEmptySkeleton verifies a boneless QC is rejected before any file
// is created.
func (s *GenerateSuite) TestEmptySkeleton() {
	s.writeQC(`$modelname "player/empty.mdl"`)

	_, err := Generate(s.qcPath, s.dir, s.opts)
	s.Require().ErrorIs(err, ErrEmptySkeleton)
	s.noOutputWritten()
}

// TestNoMatchedBones verifies a rig with only foreign bones is rejected
// before any file is created.
func (s *GenerateSuite) TestNoMatchedBones() {
	s.writeQC(`$definebone "mixamorig:Hips" "" 0 0 0 0 0 0`)

	_, err := Generate(s.qcPath, s.dir, s.opts)
	s.Require().ErrorIs(err, ErrNoMatchedBones)
	s.noOutputWritten()
}

// noOutputWritten asserts neither the animation folder nor the snippet
// exists under the output directory.
func (s *GenerateSuite) noOutputWritten() {
	_, err := os.Stat(filepath.Join(s.dir, DefaultSubFolder))
	s.True(os.IsNotExist(err), "animation folder must not exist")
	_, err = os.Stat(filepath.Join(s.dir, SnippetFileName))
	s.True(os.IsNotExist(err), "snippet must not exist")
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}

// TestGenerate_NilSinkAndDefaults verifies a zero Options value works:
// no sink, default sub-folder, built-in reference.
func TestGenerate_NilSinkAndDefaults(t *testing.T) {
	dir := t.TempDir()
	qcPath := filepath.Join(dir, "model.qc")
	require.NoError(t, os.WriteFile(qcPath, []byte(pelvisQC), 0o644))

	result, err := Generate(qcPath, dir, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, result.BoneCount)
	require.Equal(t, filepath.Join(dir, "anims", "proportions.smd"), result.ProportionsPath)
}
