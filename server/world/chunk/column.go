package chunk

import (
	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/block/cube"
)

// TileEntity is the interface a chunk needs from a tile entity to store it
// without depending on the tileentity package's concrete types, breaking
// the chunk<->tileentity<->world cycle spec.md §9 calls out ("Cyclic
// references... Break them by storing only positions").
type TileEntity interface {
	Pos() cube.Pos
	TypeID() string
	Invalid() bool
}

// Column represents a 16x16 footprint at a (chunkX, chunkZ) coordinate, per
// spec.md §3. It owns up to 16 Sections. A section is allocated when a
// block or a light value is first written into it, so an allocated
// section may hold only air.
type Column struct {
	X, Z int32

	sections [16]*Section
	hasSky   bool

	heightMap [256]int32
	biomes    [256]byte

	LastUpdate       int64
	InhabitedTime    int64
	TerrainPopulated bool
	LightPopulated   bool
	isModified       bool

	tileEntities map[cube.Pos]TileEntity

	// Entities holds the entity list owned by this column. It is exported
	// for the world package, which is the only thing that knows how to
	// manage entity membership across chunk boundaries.
	Entities []uint32
}

// NewColumn returns an empty Column at the given chunk coordinates.
func NewColumn(x, z int32, hasSky bool) *Column {
	return &Column{
		X: x, Z: z,
		hasSky:       hasSky,
		tileEntities: make(map[cube.Pos]TileEntity),
	}
}

// HasSky reports whether this column's dimension tracks sky light.
func (c *Column) HasSky() bool { return c.hasSky }

// Section returns the section at the given section-Y (0..15), or nil if it
// is empty/unallocated.
func (c *Column) Section(y int) *Section {
	if y < 0 || y > 15 {
		return nil
	}
	return c.sections[y]
}

// sectionFor returns the section at the given section-Y, allocating it
// (and its sky-light channel, per the column's dimension) if absent.
func (c *Column) sectionFor(y int) *Section {
	if c.sections[y] == nil {
		c.sections[y] = NewSection(c.hasSky)
	}
	return c.sections[y]
}

// localXZ splits a global block position into in-column (x,z) in [0,16).
func localXZ(x, z int) (int, int) { return x & 15, z & 15 }

// Block returns the (id, meta) of the block at the local-column position
// (x in [0,16), y in [0,256), z in [0,16)).
func (c *Column) Block(x, y, z int) (id uint16, meta byte) {
	if y < 0 || y > 255 {
		return block.Air, 0
	}
	s := c.sections[y>>4]
	if s == nil {
		return block.Air, 0
	}
	lx, lz := localXZ(x, z)
	return s.Block(lx, y&15, lz)
}

// SetBlock writes the (id, meta) pair at the local-column position and
// maintains the section's cached counts and the column height map,
// matching the invariant in spec.md §3: "The height map entry for (x,z)
// equals max{y+1 : block(x,y,z) is opaque} ∪ {0}".
func (c *Column) SetBlock(x, y, z int, id uint16, meta byte) {
	if y < 0 || y > 255 {
		return
	}
	lx, lz := localXZ(x, z)
	secY := y >> 4
	s := c.sectionFor(secY)

	wasID, _ := s.Block(lx, y&15, lz)
	wasProps := block.ByID(wasID)
	newProps := block.ByID(id)
	wasAir := wasID == block.Air
	isAir := id == block.Air

	s.SetBlock(lx, y&15, lz, id, meta, wasAir, isAir, wasProps.RandomTickable, newProps.RandomTickable)
	if s.Empty() {
		c.sections[secY] = nil
	}

	c.updateHeightMapColumn(x, z)
	c.isModified = true
}

// updateHeightMapColumn recomputes the height-map entry for one (x,z)
// column by scanning from the top. Called after any SetBlock; spec.md §8
// property 4 requires this hold after every edit.
func (c *Column) updateHeightMapColumn(x, z int) {
	lx, lz := localXZ(x, z)
	for y := 255; y >= 0; y-- {
		s := c.sections[y>>4]
		if s == nil {
			continue
		}
		id, _ := s.Block(lx, y&15, lz)
		if block.ByID(id).Opaque() {
			c.heightMap[lz*16+lx] = int32(y + 1)
			return
		}
	}
	c.heightMap[lz*16+lx] = 0
}

// HeightMap returns the cached top-opaque-block+1 value for local (x,z).
func (c *Column) HeightMap(x, z int) int32 {
	lx, lz := localXZ(x, z)
	return c.heightMap[lz*16+lx]
}

// RecalculateHeightMap rebuilds the entire height map from scratch, used
// after bulk section writes (generation, NBT load).
func (c *Column) RecalculateHeightMap() {
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			c.updateHeightMapColumn(x, z)
		}
	}
}

// Biome returns the biome id stored at local (x,z).
func (c *Column) Biome(x, z int) byte {
	lx, lz := localXZ(x, z)
	return c.biomes[lz*16+lx]
}

// SetBiome sets the biome id at local (x,z).
func (c *Column) SetBiome(x, z int, id byte) {
	lx, lz := localXZ(x, z)
	c.biomes[lz*16+lx] = id
}

// Modified reports whether the column has unsaved changes.
func (c *Column) Modified() bool { return c.isModified }

// SetModified marks (or clears) the column's dirty flag.
func (c *Column) SetModified(v bool) { c.isModified = v }

// TileEntity returns the tile entity at pos, if any.
func (c *Column) TileEntity(pos cube.Pos) (TileEntity, bool) {
	te, ok := c.tileEntities[pos]
	return te, ok
}

// SetTileEntity installs a tile entity at its own position.
func (c *Column) SetTileEntity(te TileEntity) {
	c.tileEntities[te.Pos()] = te
}

// RemoveTileEntity deletes any tile entity at pos.
func (c *Column) RemoveTileEntity(pos cube.Pos) {
	delete(c.tileEntities, pos)
}

// SweepInvalidTileEntities removes every tile entity that reports itself
// invalid. Per spec.md §3: "invalidated entries are removed on next
// observation" — this is that sweep, run once per tick by the world.
func (c *Column) SweepInvalidTileEntities() {
	for pos, te := range c.tileEntities {
		if te.Invalid() {
			delete(c.tileEntities, pos)
		}
	}
}

// TileEntities returns every tile entity currently owned by the column.
func (c *Column) TileEntities() map[cube.Pos]TileEntity { return c.tileEntities }

// ForEachSection invokes f for each populated section in ascending Y order.
func (c *Column) ForEachSection(f func(y int, s *Section)) {
	for y := 0; y < 16; y++ {
		if c.sections[y] != nil {
			f(y, c.sections[y])
		}
	}
}

// BlockLight and SkyLight read the packed light channels at a
// local-column position. BlockLight returns 0 outside [0,255] and for
// unallocated sections. SkyLight returns 0 in a column without sky, 15
// outside [0,255], and for an unallocated section 15 at or above the
// height map and 0 below it.
func (c *Column) BlockLight(x, y, z int) byte {
	if y < 0 || y > 255 {
		return 0
	}
	s := c.sections[y>>4]
	if s == nil {
		return 0
	}
	lx, lz := localXZ(x, z)
	return s.BlockLight(lx, y&15, lz)
}

func (c *Column) SkyLight(x, y, z int) byte {
	if !c.hasSky {
		return 0
	}
	if y < 0 || y > 255 {
		return 15
	}
	s := c.sections[y>>4]
	if s == nil {
		// An unallocated section above the height map is open sky.
		if int32(y) >= c.HeightMap(x, z) {
			return 15
		}
		return 0
	}
	lx, lz := localXZ(x, z)
	return s.SkyLight(lx, y&15, lz)
}

func (c *Column) SetBlockLight(x, y, z int, v byte) {
	if y < 0 || y > 255 {
		return
	}
	s := c.sectionFor(y >> 4)
	lx, lz := localXZ(x, z)
	s.SetBlockLight(lx, y&15, lz, v)
}

func (c *Column) SetSkyLight(x, y, z int, v byte) {
	if !c.hasSky || y < 0 || y > 255 {
		return
	}
	s := c.sectionFor(y >> 4)
	lx, lz := localXZ(x, z)
	s.SetSkyLight(lx, y&15, lz, v)
}

// CanSeeSky reports whether the block at local (x,y,z) has no opaque block
// above it in the column, per spec.md §3's sky-light invariant.
func (c *Column) CanSeeSky(x, y, z int) bool {
	return int32(y) >= c.HeightMap(x, z)
}
