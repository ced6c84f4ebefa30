package proportion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Snippet renders the QC integration snippet referencing the two
// generated SMDs under subFolder. When hasIK is true an informational
// comment block lists the $ikchain declarations the model is expected to
// define. Output is byte-deterministic for a given (subFolder, hasIK).
func Snippet(subFolder string, hasIK bool) string {
	hl2Path := subFolder + "/" + ReferenceFileName
	propPath := subFolder + "/" + ProportionsFileName

	var b strings.Builder
	b.WriteString("// -- Corrective Proportion Trick (CaptainBigButt method) --\n")
	b.WriteString("// Paste this AFTER your $sequence \"reference\" line.\n")
	b.WriteString("//\n")
	b.WriteString("// hl2_female_reference.smd = HL2 skeleton with model rotations\n")
	b.WriteString("// proportions.smd         = model skeleton (core biped only)\n")
	b.WriteString("// The delta = model positions - HL2 positions (zero rotation).\n")
	b.WriteString("//\n")
	if hasIK {
		b.WriteString("// $ikchain detected -- make sure these are defined before this block:\n")
		b.WriteString("//   $ikchain \"rhand\" \"ValveBiped.Bip01_R_Hand\" ...\n")
		b.WriteString("//   $ikchain \"lhand\" \"ValveBiped.Bip01_L_Hand\" ...\n")
		b.WriteString("//   $ikchain \"rfoot\" \"ValveBiped.Bip01_R_Foot\" ...\n")
		b.WriteString("//   $ikchain \"lfoot\" \"ValveBiped.Bip01_L_Foot\" ...\n")
		b.WriteString("//   $ikautoplaylock \"rfoot\" 0.5 0.1\n")
		b.WriteString("//   $ikautoplaylock \"lfoot\" 0.5 0.1\n")
		b.WriteString("//\n")
	}
	fmt.Fprintf(&b, "\n$sequence hl2_ref \"%s\" fps 1 hidden\n", hl2Path)
	fmt.Fprintf(&b, "\n$animation a_proportions \"%s\" subtract hl2_ref 0\n", propPath)
	b.WriteString("\n$sequence proportions a_proportions delta autoplay\n")
	b.WriteString("\n$Sequence \"ragdoll\" {\n")
	fmt.Fprintf(&b, "\t\"%s\"\n", hl2Path)
	b.WriteString("\tactivity \"ACT_DIERAGDOLL\" 1\n")
	b.WriteString("\tfadein 0.2\n")
	b.WriteString("\tfadeout 0.2\n")
	b.WriteString("\tfps 30\n")
	b.WriteString("}\n")
	return b.String()
}

// WriteSnippet writes the rendered snippet to path, creating missing
// parent directories.
func WriteSnippet(path, subFolder string, hasIK bool) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("proportion: create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(Snippet(subFolder, hasIK)), 0o644); err != nil {
		return fmt.Errorf("proportion: write %s: %w", path, err)
	}
	return nil
}
