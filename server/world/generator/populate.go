package generator

import (
	"github.com/sablecore/voxelserver/server/internal/javarand"
	"github.com/sablecore/voxelserver/server/world/chunk"
)

var (
	coalID, _     = resolveID("minecraft:coal_ore")
	ironID, _     = resolveID("minecraft:iron_ore")
	goldID, _     = resolveID("minecraft:gold_ore")
	redstoneID, _ = resolveID("minecraft:redstone_ore")
	diamondID, _  = resolveID("minecraft:diamond_ore")
	lapisID, _    = resolveID("minecraft:lapis_ore")
)

// oreDecoration is one entry of spec.md §4.2.2's biome-decoration ore
// table: count attempts of veinSize blocks, uniformly distributed between
// [minY, maxY).
type oreDecoration struct {
	oreID           uint16
	count, veinSize int
	minY, maxY      int
}

var overworldOres = []oreDecoration{
	{dirtID, 20, 33, 0, 256},
	{gravelID, 10, 33, 0, 256},
	{coalID, 20, 17, 0, 128},
	{ironID, 20, 9, 0, 64},
	{goldID, 2, 9, 0, 32},
	{redstoneID, 8, 8, 0, 16},
	{diamondID, 1, 8, 0, 16},
}

// Populate implements the optional quad-populate interface
// server/world/provider.go type-asserts for: the decoration pass of
// spec.md §4.2.2, run once the origin chunk's full 2x2 neighbourhood is
// loaded. quad(0,0) is the origin column itself; this implementation
// only ever writes into quad(0,0), matching the reference game's
// convention that a chunk's own decoration pass is what actually paints
// its blocks (the neighbours are read-only context for overhang checks,
// which this simplified pass does not need).
func (g *Generator) Populate(seed int64, chunkX, chunkZ int32, quad func(dx, dz int32) *chunk.Column) {
	col := quad(0, 0)
	if col == nil {
		return
	}
	rng := javarand.New(populateSeed(seed, chunkX, chunkZ))

	g.populateOres(col, rng, chunkX, chunkZ)
	g.populateLakes(col, rng, chunkX, chunkZ)
	g.populateLapis(col, rng, chunkX, chunkZ)
}

func (g *Generator) populateOres(col *chunk.Column, rng *javarand.Rand, chunkX, chunkZ int32) {
	for _, ore := range overworldOres {
		for i := 0; i < ore.count; i++ {
			x := int(chunkX)*16 + int(rng.NextInt(16))
			z := int(chunkZ)*16 + int(rng.NextInt(16))
			span := ore.maxY - ore.minY
			y := ore.minY
			if span > 0 {
				y += int(rng.NextInt(int32(span)))
			}
			placeVein(col, rng, x, y, z, ore.oreID, stoneID, ore.veinSize)
		}
	}
}

// populateLapis places lapis veins with a triangular distribution around
// y=16, per spec.md §4.2.2 ("lapis 1x7 triangle-distributed around
// y=16"): two draws summed, so y spans 0..30 and peaks at 15.
func (g *Generator) populateLapis(col *chunk.Column, rng *javarand.Rand, chunkX, chunkZ int32) {
	x := int(chunkX)*16 + int(rng.NextInt(16))
	z := int(chunkZ)*16 + int(rng.NextInt(16))
	y := int(rng.NextInt(16)) + int(rng.NextInt(16))
	placeVein(col, rng, x, y, z, lapisID, stoneID, 7)
}

// populateLakes implements spec.md §4.2.2's water/lava lake attempts.
func (g *Generator) populateLakes(col *chunk.Column, rng *javarand.Rand, chunkX, chunkZ int32) {
	b := g.biomeAt(chunkX*16+8, chunkZ*16+8)
	if rng.NextInt(4) == 0 && b.Rainfall > 0 {
		x := int(chunkX)*16 + int(rng.NextInt(16)) + 8
		y := int(rng.NextInt(256))
		z := int(chunkZ)*16 + int(rng.NextInt(16)) + 8
		carveLakeSphere(col, x, y, z, waterID)
	}
	if rng.NextInt(8) == 0 {
		y := int(rng.NextInt(int32(rng.NextInt(248) + 8)))
		if y <= 63 || rng.NextInt(10) == 0 {
			x := int(chunkX)*16 + int(rng.NextInt(16)) + 8
			z := int(chunkZ)*16 + int(rng.NextInt(16)) + 8
			carveLakeSphere(col, x, y, z, lavaID)
		}
	}
}

// carveLakeSphere hollows a small rounded pocket and fills it with fluid,
// a condensed stand-in for the reference game's multi-pass lake-shape
// generator.
func carveLakeSphere(col *chunk.Column, cx, cy, cz int, fluid uint16) {
	const r = 3.0
	for dx := -4; dx <= 4; dx++ {
		x := cx + dx
		lx := x - int(col.X)*16
		if lx < 0 || lx >= 16 {
			continue
		}
		for dz := -4; dz <= 4; dz++ {
			z := cz + dz
			lz := z - int(col.Z)*16
			if lz < 0 || lz >= 16 {
				continue
			}
			for dy := -3; dy <= 3; dy++ {
				y := cy + dy
				if y < 1 || y > 254 {
					continue
				}
				fx, fy, fz := float64(dx)/r, float64(dy)/(r*0.7), float64(dz)/r
				if fx*fx+fy*fy+fz*fz >= 1 {
					continue
				}
				if dy == -3 {
					col.SetBlock(lx, y, lz, stoneID, 0)
					continue
				}
				col.SetBlock(lx, y, lz, fluid, 0)
			}
		}
	}
}
