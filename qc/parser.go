package qc

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gonum.org/v1/gonum/spatial/r3"
)

// defineBoneRE matches one $definebone declaration: quoted name, quoted
// parent (empty = root), then six signed float fields - position X Y Z
// followed by rotation X Y Z in degrees.
var defineBoneRE = regexp.MustCompile(
	`(?i)\$definebone\s+` +
		`"([^"]+)"\s+` +
		`"([^"]*)"\s+` +
		`([-+0-9.eE]+)\s+([-+0-9.eE]+)\s+([-+0-9.eE]+)\s+` +
		`([-+0-9.eE]+)\s+([-+0-9.eE]+)\s+([-+0-9.eE]+)`,
)

// ParseBones extracts every $definebone declaration from raw QC text into
// a Skeleton. Unrelated text is ignored. A later duplicate of a bone name
// silently replaces the earlier record (see Skeleton.Put).
//
// Returns ErrMalformedRecord (wrapped with the bone name) when a matched
// line carries a field that fails float parsing; an input with zero
// matches yields an empty Skeleton and a nil error.
//
// Complexity: O(len(text)) scan + O(1) per matched line.
func ParseBones(text string) (*Skeleton, error) {
	skel := NewSkeleton()
	for _, m := range defineBoneRE.FindAllStringSubmatch(text, -1) {
		name := m[1]
		fields := make([]float64, 6)
		for i := 0; i < 6; i++ {
			v, err := strconv.ParseFloat(m[3+i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bone %q field %q", ErrMalformedRecord, name, m[3+i])
			}
			fields[i] = v
		}
		deg := r3.Vec{X: fields[3], Y: fields[4], Z: fields[5]}
		skel.Put(&BoneDefinition{
			Name:        name,
			Parent:      m[2],
			Position:    r3.Vec{X: fields[0], Y: fields[1], Z: fields[2]},
			RotationDeg: deg,
			RotationRad: r3.Vec{X: radians(deg.X), Y: radians(deg.Y), Z: radians(deg.Z)},
		})
	}
	return skel, nil
}

// ParseBonesFile reads a QC file permissively (see readTextLossy) and
// parses its $definebone declarations.
func ParseBonesFile(path string) (*Skeleton, error) {
	text, err := readTextLossy(path)
	if err != nil {
		return nil, fmt.Errorf("qc: read %s: %w", path, err)
	}
	return ParseBones(text)
}

// DetectIKChains reports whether any line of the file, after trimming
// whitespace, begins case-insensitively with "$ikchain". Detection is
// advisory: every read failure is swallowed and reported as false.
func DetectIKChains(path string) bool {
	text, err := readTextLossy(path)
	if err != nil {
		return false
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "$ikchain") {
			return true
		}
	}
	return false
}

// readTextLossy loads a text file without ever failing on encoding.
// Valid UTF-8 passes through untouched; anything else is re-decoded as
// Windows-1252, whose undefined bytes surface as U+FFFD replacements.
func readTextLossy(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�"), nil
	}
	return string(decoded), nil
}

// radians converts degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }
