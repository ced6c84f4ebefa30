// Package proportionstool generates CaptainBigButt proportion-trick
// animation files for Garry's Mod playermodels - straight from a
// decompiled QC's $definebone block, no Blender required.
//
// 🚀 What does it do?
//
//	Given one model skeleton it emits two single-frame SMD animations
//	plus a ready-to-paste QC snippet:
//		• proportions.smd          - model positions + model rotations
//		• hl2_female_reference.smd - HL2 positions   + model rotations
//		• corrective_qc_snippet.txt - $sequence/$animation wiring
//
//	Because both SMDs share identical rotations per bone, studiomdl's
//	"subtract" yields a pure positional delta - the whole trick.
//
// ✨ Why this shape?
//
//   - Deterministic – byte-identical output for identical input
//   - Pure Go – the math is done directly on $definebone data
//   - Library first – the CLI under cmd/proptool is a thin shell
//
// Everything is organized under four packages:
//
//	qc/         - $definebone grammar parser, ordered Skeleton, IK detector
//	valvebiped/ - canonical core bone list + embedded HL2 female reference
//	proportion/ - matching, reparenting, composition, Analyze/Generate
//	smd/        - byte-exact single-frame SMD emission
//
// Quick sketch of the pipeline:
//
//	QC text ──parse──▶ Skeleton ──match/reparent──▶ matched set
//	                                │
//	                                ├─▶ proportions.smd
//	                                └─▶ hl2_female_reference.smd
//
//	go get github.com/Link2738/GMod-PM-Proportions-Tool
package proportionstool
