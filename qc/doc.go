// Package qc parses the $definebone grammar of decompiled Source-engine
// QC files into an ordered Skeleton, and scans for $ikchain declarations.
//
// What:
//
//   - ParseBones / ParseBonesFile extract every $definebone line into a
//     Skeleton: insertion-ordered, name-keyed, with a case-folded index.
//   - All other QC directives are ignored; only the bone grammar matters.
//   - DetectIKChains reports whether a QC declares any $ikchain.
//
// Why:
//
//   - The proportion trick needs nothing but bone names, parents,
//     positions and rotations - the rest of the QC grammar is noise here.
//   - Decompilers emit QC files in whatever byte soup the toolchain used;
//     reading is permissive (invalid UTF-8 falls back to Windows-1252
//     with replacement), so a stray byte never aborts a run.
//
// Grammar (keyword case-insensitive, parent may be empty = root):
//
//	$definebone "<name>" "<parent>" <px> <py> <pz> <rx> <ry> <rz>
//
// Errors:
//
//   - ErrMalformedRecord: a matched line carries a non-numeric field
//     where a signed float is required. Hard failure - values are never
//     coerced to zero.
//
// A file with zero matching lines parses to an empty Skeleton, not an
// error; callers decide whether empty is acceptable.
package qc
