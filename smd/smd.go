// Package smd emits single-frame, skeleton-only SMD animation files.
//
// What:
//
//   - BoneRecord is one output bone: name, compacted parent index,
//     position, rotation (radians, SMD axis order).
//   - Write serializes an ordered record list to the fixed SMD layout;
//     WriteFile additionally creates parent directories.
//
// The layout is byte-exact and deterministic: indices are 0-based in
// list order, every float is printed with six fixed decimals, and lines
// end with a bare \n regardless of platform. studiomdl's "subtract"
// compares these files field by field, so formatting is part of the
// contract, not presentation.
package smd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"
)

// BoneRecord is one bone of an output skeleton. ParentIndex refers to an
// earlier record in the same list, or -1 for a root. Rotation is in
// radians, already remapped to the SMD axis order.
type BoneRecord struct {
	Name        string
	ParentIndex int
	Position    r3.Vec
	Rotation    r3.Vec
}

// Write serializes bones as a version-1 single-frame SMD:
//
//	version 1
//	nodes
//	  <i> "<name>" <parent>
//	end
//	skeleton
//	time 0
//	  <i>  <px> <py> <pz>  <rx> <ry> <rz>
//	end
//
// Complexity: O(n) over the record list.
func Write(w io.Writer, bones []BoneRecord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "version 1\n")
	fmt.Fprintf(bw, "nodes\n")
	for i, b := range bones {
		fmt.Fprintf(bw, "  %d \"%s\" %d\n", i, b.Name, b.ParentIndex)
	}
	fmt.Fprintf(bw, "end\n")
	fmt.Fprintf(bw, "skeleton\n")
	fmt.Fprintf(bw, "time 0\n")
	for i, b := range bones {
		fmt.Fprintf(bw, "  %d  %.6f %.6f %.6f  %.6f %.6f %.6f\n",
			i,
			b.Position.X, b.Position.Y, b.Position.Z,
			b.Rotation.X, b.Rotation.Y, b.Rotation.Z)
	}
	fmt.Fprintf(bw, "end\n")
	return bw.Flush()
}

// WriteFile writes the SMD to path, creating missing parent directories.
// The file handle is closed on every exit path; any failure is returned
// wrapped, and the caller must assume a partial file may exist.
func WriteFile(path string, bones []BoneRecord) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("smd: create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("smd: create %s: %w", path, err)
	}
	if err := Write(f, bones); err != nil {
		f.Close()
		return fmt.Errorf("smd: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("smd: close %s: %w", path, err)
	}
	return nil
}
