package cube

import "math"

// AABB represents an axis-aligned bounding box, used for collision and
// combat math. It is a value type: 6 doubles, cheaply copied. Grounded on
// net.minecraft.util.AxisAlignedBB's method set.
type AABB struct {
	min, max [3]float64
}

// NewAABB creates a new axis-aligned bounding box from the minimum and
// maximum corners passed.
func NewAABB(min, max [3]float64) AABB {
	return AABB{min: min, max: max}
}

// Min returns the minimum corner of the AABB.
func (a AABB) Min() [3]float64 { return a.min }

// Max returns the maximum corner of the AABB.
func (a AABB) Max() [3]float64 { return a.max }

// Width, Height and Length return the size of the AABB along each axis.
func (a AABB) Width() float64  { return a.max[0] - a.min[0] }
func (a AABB) Height() float64 { return a.max[1] - a.min[1] }
func (a AABB) Length() float64 { return a.max[2] - a.min[2] }

// Extend grows the AABB in the direction of the vector passed, matching
// Java's addCoord: it only extends the face facing the direction of travel.
func (a AABB) Extend(dx, dy, dz float64) AABB {
	min, max := a.min, a.max
	if dx < 0 {
		min[0] += dx
	} else if dx > 0 {
		max[0] += dx
	}
	if dy < 0 {
		min[1] += dy
	} else if dy > 0 {
		max[1] += dy
	}
	if dz < 0 {
		min[2] += dz
	} else if dz > 0 {
		max[2] += dz
	}
	return AABB{min: min, max: max}
}

// Grow expands the AABB symmetrically by the amount passed on every axis.
func (a AABB) Grow(x float64) AABB {
	return AABB{
		min: [3]float64{a.min[0] - x, a.min[1] - x, a.min[2] - x},
		max: [3]float64{a.max[0] + x, a.max[1] + x, a.max[2] + x},
	}
}

// Translate moves the AABB by the offset passed.
func (a AABB) Translate(x, y, z float64) AABB {
	return AABB{
		min: [3]float64{a.min[0] + x, a.min[1] + y, a.min[2] + z},
		max: [3]float64{a.max[0] + x, a.max[1] + y, a.max[2] + z},
	}
}

// Centre returns the vector at the centre of the AABB.
func (a AABB) Centre() [3]float64 {
	return [3]float64{
		(a.min[0] + a.max[0]) / 2,
		(a.min[1] + a.max[1]) / 2,
		(a.min[2] + a.max[2]) / 2,
	}
}

// IntersectsWith checks if the AABB intersects with the other AABB passed.
func (a AABB) IntersectsWith(b AABB) bool {
	return a.min[0] < b.max[0] && a.max[0] > b.min[0] &&
		a.min[1] < b.max[1] && a.max[1] > b.min[1] &&
		a.min[2] < b.max[2] && a.max[2] > b.min[2]
}

// Vec3WithinYZ returns true if the point (y, z) lies within the AABB's Y/Z
// face, used by calculateXOffset-style collision sweeps.
func (a AABB) Vec3WithinYZ(y, z float64) bool {
	return y >= a.min[1] && y <= a.max[1] && z >= a.min[2] && z <= a.max[2]
}

func (a AABB) Vec3WithinXZ(x, z float64) bool {
	return x >= a.min[0] && x <= a.max[0] && z >= a.min[2] && z <= a.max[2]
}

func (a AABB) Vec3WithinXY(x, y float64) bool {
	return x >= a.min[0] && x <= a.max[0] && y >= a.min[1] && y <= a.max[1]
}

// CalculateXOffset computes how far along the X axis, starting from motion,
// an object with this AABB can move before colliding with other. Matches
// net.minecraft.util.AxisAlignedBB#calculateXOffset exactly, including its
// sign-dependent clamping.
func (a AABB) CalculateXOffset(other AABB, motion float64) float64 {
	if other.max[1] <= a.min[1] || other.min[1] >= a.max[1] {
		return motion
	}
	if other.max[2] <= a.min[2] || other.min[2] >= a.max[2] {
		return motion
	}
	if motion > 0 && other.max[0] <= a.min[0] {
		if d := a.min[0] - other.max[0]; d < motion {
			motion = d
		}
	}
	if motion < 0 && other.min[0] >= a.max[0] {
		if d := a.max[0] - other.min[0]; d > motion {
			motion = d
		}
	}
	return motion
}

// CalculateYOffset is the Y-axis analogue of CalculateXOffset.
func (a AABB) CalculateYOffset(other AABB, motion float64) float64 {
	if other.max[0] <= a.min[0] || other.min[0] >= a.max[0] {
		return motion
	}
	if other.max[2] <= a.min[2] || other.min[2] >= a.max[2] {
		return motion
	}
	if motion > 0 && other.max[1] <= a.min[1] {
		if d := a.min[1] - other.max[1]; d < motion {
			motion = d
		}
	}
	if motion < 0 && other.min[1] >= a.max[1] {
		if d := a.max[1] - other.min[1]; d > motion {
			motion = d
		}
	}
	return motion
}

// CalculateZOffset is the Z-axis analogue of CalculateXOffset.
func (a AABB) CalculateZOffset(other AABB, motion float64) float64 {
	if other.max[0] <= a.min[0] || other.min[0] >= a.max[0] {
		return motion
	}
	if other.max[1] <= a.min[1] || other.min[1] >= a.max[1] {
		return motion
	}
	if motion > 0 && other.max[2] <= a.min[2] {
		if d := a.min[2] - other.max[2]; d < motion {
			motion = d
		}
	}
	if motion < 0 && other.min[2] >= a.max[2] {
		if d := a.max[2] - other.min[2]; d > motion {
			motion = d
		}
	}
	return motion
}

// ClosestPointTo returns the point on or within the AABB closest to p, used
// to compute the eye-to-surface vector for explosion exposure checks.
func (a AABB) ClosestPointTo(p [3]float64) [3]float64 {
	return [3]float64{
		clamp(p[0], a.min[0], a.max[0]),
		clamp(p[1], a.min[1], a.max[1]),
		clamp(p[2], a.min[2], a.max[2]),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
