package generator

import (
	"math"

	"github.com/sablecore/voxelserver/server/internal/javarand"
	"github.com/sablecore/voxelserver/server/world/chunk"
)

// placeVein implements spec.md §4.2.3's ore-vein placement exactly: a
// parametric line through the column with an ellipsoidal radius that
// bulges at its midpoint, replacing every block whose id equals replaceID
// with oreID.
func placeVein(col *chunk.Column, rng *javarand.Rand, x, y, z int, oreID, replaceID uint16, veinSize int) {
	theta := rng.NextDouble() * math.Pi

	size := float64(veinSize)
	x1 := float64(x) + 8 + math.Sin(theta)*size/8
	x2 := float64(x) + 8 - math.Sin(theta)*size/8
	z1 := float64(z) + 8 + math.Cos(theta)*size/8
	z2 := float64(z) + 8 - math.Cos(theta)*size/8
	y1 := float64(y) + float64(rng.NextInt(3)-2)
	y2 := float64(y) + float64(rng.NextInt(3)-2)

	for step := 0; step <= veinSize; step++ {
		t := float64(step) / size
		cx := x1 + (x2-x1)*t
		cy := y1 + (y2-y1)*t
		cz := z1 + (z2-z1)*t

		r := (math.Sin(t*math.Pi) + 1) * rng.NextDouble() * size / 16
		if r < 0.5 {
			r = 0.5
		}

		minX, maxX := int(cx-r), int(cx+r)
		minY, maxY := int(cy-r), int(cy+r)
		minZ, maxZ := int(cz-r), int(cz+r)

		for bx := minX; bx <= maxX; bx++ {
			lx := bx - int(col.X)*16
			if lx < 0 || lx >= 16 {
				continue
			}
			for bz := minZ; bz <= maxZ; bz++ {
				lz := bz - int(col.Z)*16
				if lz < 0 || lz >= 16 {
					continue
				}
				for by := minY; by <= maxY; by++ {
					if by < 0 || by > 255 {
						continue
					}
					dx, dy, dz := (float64(bx)+0.5-cx)/r, (float64(by)+0.5-cy)/r, (float64(bz)+0.5-cz)/r
					if dx*dx+dy*dy+dz*dz >= 1 {
						continue
					}
					id, meta := col.Block(lx, by, lz)
					if id == replaceID {
						col.SetBlock(lx, by, lz, oreID, meta)
					}
				}
			}
		}
	}
}
