package proportion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Link2738/GMod-PM-Proportions-Tool/qc"
	"github.com/Link2738/GMod-PM-Proportions-Tool/smd"
	"github.com/Link2738/GMod-PM-Proportions-Tool/valvebiped"
)

// customPreviewLimit caps how many custom bone names the progress log
// spells out before collapsing the rest into a "+N more" suffix.
const customPreviewLimit = 6

// Generate runs the full proportion-trick pipeline for one model:
// parse → match/reparent → compose → write both SMDs → detect $ikchain →
// write the QC snippet → read it back for the caller.
//
// Files written:
//
//	<outputDir>/<subFolder>/proportions.smd
//	<outputDir>/<subFolder>/hl2_female_reference.smd
//	<outputDir>/corrective_qc_snippet.txt
//
// There is no partial-success state: every hard failure aborts with a
// single error, and on a write failure the caller must assume partial
// output may exist and treat the whole request as failed. The optional
// event sink receives leveled progress messages only - never errors.
//
// Errors: ErrNotFound, ErrEmptySkeleton, ErrNoMatchedBones, parser
// errors, and wrapped IO failures.
func Generate(path, outputDir string, opts Options) (GenerateResult, error) {
	emit := opts.OnEvent
	if emit == nil {
		emit = func(Event) {}
	}
	subFolder := opts.SubFolder
	if subFolder == "" {
		subFolder = DefaultSubFolder
	}
	ref := opts.Reference
	if ref == nil {
		ref = valvebiped.Reference()
	}

	if !isRegularFile(path) {
		return GenerateResult{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	model, err := qc.ParseBonesFile(path)
	if err != nil {
		return GenerateResult{}, err
	}
	if model.Len() == 0 {
		return GenerateResult{}, fmt.Errorf("%w: %s", ErrEmptySkeleton, path)
	}

	emit(Event{LevelInfo, fmt.Sprintf("Model: %s", modelName(path))})
	emit(Event{LevelInfo, fmt.Sprintf("Target skeleton: %d bones", model.Len())})
	emit(Event{LevelInfo, fmt.Sprintf("Reference skeleton: %d bones", ref.Len())})

	matched := Match(model, ref)
	emit(Event{LevelInfo, fmt.Sprintf("Matched ValveBiped: %d/%d", len(matched), model.Len())})
	if len(matched) == 0 {
		return GenerateResult{}, fmt.Errorf("%w: incompatible skeleton", ErrNoMatchedBones)
	}
	if custom := customBoneNames(model); len(custom) > 0 {
		emit(Event{LevelInfo, fmt.Sprintf("Custom bones (%d): %s", len(custom), previewNames(custom))})
	}

	propsPath := filepath.Join(outputDir, subFolder, ProportionsFileName)
	hl2Path := filepath.Join(outputDir, subFolder, ReferenceFileName)
	snippetPath := filepath.Join(outputDir, SnippetFileName)

	emit(Event{LevelInfo, "Format: SMD"})
	props, hl2 := Compose(matched, model, ref)
	if err := writePair(propsPath, hl2Path, props, hl2); err != nil {
		return GenerateResult{}, err
	}
	emit(Event{LevelDone, fmt.Sprintf("%s (%d bones)", ProportionsFileName, len(matched))})
	emit(Event{LevelDone, fmt.Sprintf("%s (%d bones)", ReferenceFileName, len(matched))})

	hasIK := qc.DetectIKChains(path)
	if err := WriteSnippet(snippetPath, subFolder, hasIK); err != nil {
		return GenerateResult{}, err
	}
	emit(Event{LevelDone, SnippetFileName})
	if hasIK {
		emit(Event{LevelInfo, "$ikchain detected -- see snippet for notes."})
	}

	snippetText, err := os.ReadFile(snippetPath)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("proportion: read back %s: %w", snippetPath, err)
	}

	emit(Event{LevelDone, "All files generated successfully."})
	emit(Event{LevelInfo, fmt.Sprintf("Output: %s", outputDir)})
	emit(Event{LevelInfo, fmt.Sprintf("Paste %s into your QC and recompile.", SnippetFileName)})

	return GenerateResult{
		BoneCount:       len(matched),
		ProportionsPath: propsPath,
		ReferencePath:   hl2Path,
		SnippetPath:     snippetPath,
		SnippetText:     string(snippetText),
	}, nil
}

// writePair writes both SMDs as one paired operation: a failure on
// either surfaces before success is declared.
func writePair(propsPath, hl2Path string, props, hl2 []smd.BoneRecord) error {
	if err := smd.WriteFile(propsPath, props); err != nil {
		return err
	}
	return smd.WriteFile(hl2Path, hl2)
}

// customBoneNames lists model bones outside the canonical core list,
// model order, model spelling.
func customBoneNames(model *qc.Skeleton) []string {
	var custom []string
	for _, name := range model.Names() {
		if !valvebiped.IsCanonicalFold(name) {
			custom = append(custom, name)
		}
	}
	return custom
}

// previewNames joins up to customPreviewLimit names, collapsing the
// remainder into a "+N more" suffix.
func previewNames(names []string) string {
	if len(names) <= customPreviewLimit {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s ... +%d more",
		strings.Join(names[:customPreviewLimit], ", "), len(names)-customPreviewLimit)
}
