// Package proportion implements the CaptainBigButt proportion trick:
// matching a model skeleton against the canonical ValveBiped core,
// re-parenting the survivors into a compacted hierarchy, and composing
// two single-frame SMD skeletons whose subtraction is a pure positional
// delta.
//
// What:
//
//   - Match - intersects a model skeleton with the canonical bone list
//     and the HL2 reference, resolving each bone's nearest surviving
//     ancestor to a compacted parent index.
//   - Compose - builds the two output bone lists: model positions vs.
//     reference positions, both under the model's rotations converted to
//     radians and remapped from $definebone (X,Y,Z) to SMD (Z,X,Y).
//   - Analyze - read-only compatibility report for a QC file.
//   - Generate - the full pipeline: parse → match → compose → write both
//     SMDs → detect $ikchain → write and read back the QC snippet.
//
// Why:
//
//   - Both output skeletons share names, order, parent indices, and
//     bit-identical rotation triples per bone; studiomdl's "subtract"
//     therefore cancels rotation exactly and isolates the positional
//     offset. That identity is the correctness property of the whole
//     tool, and every stage here is written to preserve it.
//
// Determinism:
//
//   - Matched order is always canonical-list order filtered by
//     membership, never model order; identical input produces
//     byte-identical output files.
//
// Errors:
//
//   - ErrNotFound: input QC path does not exist.
//   - ErrEmptySkeleton: QC parsed to zero bone records.
//   - ErrNoMatchedBones: no canonical bone present in the model.
//
// All hard failures abort before declaring success; the event sink is a
// progress channel, not an error channel.
package proportion
