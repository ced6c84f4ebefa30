package proportion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Link2738/GMod-PM-Proportions-Tool/qc"
	"github.com/Link2738/GMod-PM-Proportions-Tool/valvebiped"
)

// Analyze inspects a decompiled model's QC for skeleton compatibility
// without writing anything.
//
// Bones are reported in model declaration order under the model's own
// spelling; canonical membership is case-insensitive. Returns ErrNotFound
// when path is not an existing file, ErrEmptySkeleton when no
// $definebone lines are found, and parser errors unchanged.
func Analyze(path string) (AnalysisResult, error) {
	if !isRegularFile(path) {
		return AnalysisResult{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	model, err := qc.ParseBonesFile(path)
	if err != nil {
		return AnalysisResult{}, err
	}
	if model.Len() == 0 {
		return AnalysisResult{}, fmt.Errorf("%w: %s", ErrEmptySkeleton, path)
	}

	var matched, custom []string
	for _, name := range model.Names() {
		if valvebiped.IsCanonicalFold(name) {
			matched = append(matched, name)
		} else {
			custom = append(custom, name)
		}
	}

	return AnalysisResult{
		ModelName:    modelName(path),
		TotalBones:   model.Len(),
		MatchedNames: matched,
		CustomNames:  custom,
		HasIKChains:  qc.DetectIKChains(path),
	}, nil
}

// modelName derives the model's display name: file base without extension.
func modelName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// isRegularFile reports whether path names an existing regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
