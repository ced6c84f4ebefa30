// Package proportion defines options, results, events, and sentinel
// errors for the proportion subpackage of
// github.com/Link2738/GMod-PM-Proportions-Tool.
package proportion

import (
	"errors"

	"github.com/Link2738/GMod-PM-Proportions-Tool/qc"
)

// Output file names. The two SMDs land inside Options.SubFolder, the
// snippet directly inside the output directory.
const (
	ProportionsFileName = "proportions.smd"
	ReferenceFileName   = "hl2_female_reference.smd"
	SnippetFileName     = "corrective_qc_snippet.txt"

	// DefaultSubFolder is the animation sub-folder used when
	// Options.SubFolder is empty.
	DefaultSubFolder = "anims"
)

// Sentinel errors for proportion operations.
var (
	// ErrNotFound indicates the input QC path does not exist.
	ErrNotFound = errors.New("proportion: qc file not found")
	// ErrEmptySkeleton indicates the QC contained no $definebone lines.
	ErrEmptySkeleton = errors.New("proportion: no $definebone lines found")
	// ErrNoMatchedBones indicates no canonical bone matched the model
	// skeleton - an incompatible rig.
	ErrNoMatchedBones = errors.New("proportion: no matching ValveBiped bones found")
)

// EventLevel tags a progress event for presentation.
type EventLevel string

// Event levels, matching the tags front ends colorize.
const (
	LevelInfo  EventLevel = "INFO"
	LevelDone  EventLevel = "DONE"
	LevelWarn  EventLevel = "WARN"
	LevelError EventLevel = "ERROR"
)

// Event is one leveled progress message emitted during Generate.
// Events are informational only; errors travel through return values,
// never through the sink.
type Event struct {
	Level   EventLevel
	Message string
}

// EventSink receives progress events. A nil sink disables reporting.
type EventSink func(Event)

// Options configures Generate.
//
// Fields:
//   - SubFolder - animation sub-folder name inside the output directory;
//     "" means DefaultSubFolder.
//   - Reference - reference skeleton to match against; nil means the
//     cached valvebiped.Reference(). Inject a ParseReference() value to
//     avoid the shared singleton.
//   - OnEvent   - optional progress sink.
type Options struct {
	SubFolder string
	Reference *qc.Skeleton
	OnEvent   EventSink
}

// DefaultOptions returns Options with the default animation sub-folder,
// the built-in reference skeleton, and no event sink.
func DefaultOptions() Options {
	return Options{SubFolder: DefaultSubFolder}
}

// AnalysisResult reports a read-only compatibility inspection of a
// decompiled model's QC file.
type AnalysisResult struct {
	// ModelName is the QC file name without extension.
	ModelName string
	// TotalBones counts every $definebone in the model.
	TotalBones int
	// MatchedNames lists model bones (model order, model spelling) that
	// match the canonical core list case-insensitively.
	MatchedNames []string
	// CustomNames lists the remaining model bones, model order.
	CustomNames []string
	// HasIKChains reports whether the QC declares any $ikchain.
	HasIKChains bool
}

// GenerateResult reports a completed generation run.
type GenerateResult struct {
	BoneCount       int
	ProportionsPath string
	ReferencePath   string
	SnippetPath     string
	SnippetText     string
}
