// Package cube provides the coordinate, axis and face types shared by the
// block, world and entity packages.
package cube

import "math"

// Pos represents the position of a block. The position is represented of an
// array of 3 ints, and is thus immutable.
type Pos [3]int

// X returns the X coordinate of the block position.
func (p Pos) X() int { return p[0] }

// Y returns the Y coordinate of the block position.
func (p Pos) Y() int { return p[1] }

// Z returns the Z coordinate of the block position.
func (p Pos) Z() int { return p[2] }

// Add adds the other Pos to the current one and returns a new Pos with the
// combined values.
func (p Pos) Add(other Pos) Pos {
	return Pos{p[0] + other[0], p[1] + other[1], p[2] + other[2]}
}

// Sub subtracts the other Pos from the current one and returns a new Pos with
// the combined values.
func (p Pos) Sub(other Pos) Pos {
	return Pos{p[0] - other[0], p[1] - other[1], p[2] - other[2]}
}

// Side returns the position on the given side of the block position. The
// side is one of the six Face constants.
func (p Pos) Side(face Face) Pos {
	return p.Add(face.Offset())
}

// Neighbours calls f for each of the six block positions directly adjacent to
// p, in Face order (-Y, +Y, -Z, +Z, -X, +X).
func (p Pos) Neighbours(f func(Pos)) {
	for _, face := range Faces() {
		f(p.Side(face))
	}
}

// OutOfBounds reports whether the Pos's Y coordinate lies outside r: true
// if it is below r's Min or above its Max, false otherwise.
func (p Pos) OutOfBounds(r Range) bool {
	return p[1] < r[0] || p[1] > r[1]
}

// ChunkX returns the X chunk coordinate the block position falls in: p[0]
// divided by 16, rounded down.
func (p Pos) ChunkX() int { return p[0] >> 4 }

// ChunkZ returns the Z chunk coordinate the block position falls in.
func (p Pos) ChunkZ() int { return p[2] >> 4 }

// SectionY returns the Y value for a section of a chunk the block position
// occupies. This is always the Y value divided by 16.
func (p Pos) SectionY(sectionCount int) int { return (p[1] - MinHeight(sectionCount)) >> 4 }

// MinHeight returns the minimum valid Y for a chunk composed of sectionCount
// 16-block tall sections starting at 0. Java 1.7.10 worlds always span
// [0, 255], so this is always 0, but the helper keeps intent local to one
// place instead of scattering the literal.
func MinHeight(int) int { return 0 }

// Vec3 converts the Pos into a mgl64.Vec3-friendly triple of float64 values
// ordered (x, y, z), representing the position at the negative-most corner
// of the block.
func (p Pos) Vec3() [3]float64 {
	return [3]float64{float64(p[0]), float64(p[1]), float64(p[2])}
}

// Vec3Centre returns the vector at the centre of the block position.
func (p Pos) Vec3Centre() [3]float64 {
	return [3]float64{float64(p[0]) + 0.5, float64(p[1]) + 0.5, float64(p[2]) + 0.5}
}

// Range represents the height range of a Dimension in blocks. Min is the
// first index, Max the last.
type Range [2]int

// Height returns the total height of the Range: the number of Y values
// from Min to Max inclusive.
func (r Range) Height() int { return r[1] - r[0] + 1 }

// Min returns the minimum value of the Range.
func (r Range) Min() int { return r[0] }

// Max returns the maximum value of the Range.
func (r Range) Max() int { return r[1] }

// ManhattanDistance returns the Manhattan (taxicab) distance between two
// block positions: the sum of the absolute differences of their coordinates.
func ManhattanDistance(a, b Pos) int {
	return iabs(a[0]-b[0]) + iabs(a[1]-b[1]) + iabs(a[2]-b[2])
}

// EuclideanDistance returns the straight-line distance between two block
// positions.
func EuclideanDistance(a, b Pos) float64 {
	dx, dy, dz := float64(a[0]-b[0]), float64(a[1]-b[1]), float64(a[2]-b[2])
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
