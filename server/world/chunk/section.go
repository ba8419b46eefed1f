package chunk

import "github.com/sablecore/voxelserver/server/block"

// Section is one 16x16x16 sub-cube of a Column, indexed by section-Y 0..15.
// The in-section linear index of a block is y*256 + z*16 + x, matching
// spec.md §3.
type Section struct {
	// blocks holds the low 8 bits of every block id in the section.
	blocks [4096]byte
	// add holds the high 4 bits of block ids, only allocated once a block id
	// >= 256 is written into the section (spec.md §3: "present iff any id >=
	// 256").
	add *nibbleArray
	// data holds the 4-bit metadata nibble for every block.
	data nibbleArray
	// blockLight and skyLight hold the 4-bit light channels. skyLight is nil
	// in dimensions without sky (e.g. the Nether/End).
	blockLight nibbleArray
	skyLight   *nibbleArray

	// nonAirCount and tickableCount are cached so emptiness and
	// random-tick eligibility can be queried in O(1); both spec-mandated
	// ("A section carries two cached counts").
	nonAirCount   int
	tickableCount int
}

// NewSection returns an empty Section. sky controls whether a sky-light
// nibble array is allocated.
func NewSection(sky bool) *Section {
	s := &Section{}
	if sky {
		s.skyLight = &nibbleArray{}
		s.skyLight.fill(15)
	}
	return s
}

// index computes the in-section linear index for a local (x,y,z) triple,
// each expected in [0,16).
func index(x, y, z int) int {
	return y*256 + z*16 + x
}

// Block returns the (id, meta) pair stored at the local position.
func (s *Section) Block(x, y, z int) (id uint16, meta byte) {
	i := index(x, y, z)
	id = uint16(s.blocks[i])
	if s.add != nil {
		id |= uint16(s.add.get(i)) << 8
	}
	return id, s.data.get(i)
}

// SetBlock writes the (id, meta) pair at the local position, maintaining
// the cached non-air and tickable counts. wasAir and wasTickable classify
// the old id, isAir and isTickable the new one; the caller (Column.SetBlock)
// looks them up in the block registry, since Section has no knowledge of
// block behaviour.
func (s *Section) SetBlock(x, y, z int, id uint16, meta byte, wasAir, isAir, wasTickable, isTickable bool) {
	i := index(x, y, z)
	s.blocks[i] = byte(id)
	if id > 0xFF {
		if s.add == nil {
			s.add = &nibbleArray{}
		}
		s.add.set(i, byte(id>>8))
	} else if s.add != nil {
		s.add.set(i, 0)
	}
	s.data.set(i, meta)

	if wasAir && !isAir {
		s.nonAirCount++
	} else if !wasAir && isAir {
		s.nonAirCount--
	}
	if wasTickable && !isTickable {
		s.tickableCount--
	} else if !wasTickable && isTickable {
		s.tickableCount++
	}
}

// Empty reports whether the section has zero non-air blocks, per spec.md
// §3's invariant: "A section is present iff its non-air count > 0".
func (s *Section) Empty() bool { return s.nonAirCount == 0 }

// RandomTickable reports whether the section contains any block eligible
// for random ticking.
func (s *Section) RandomTickable() bool { return s.tickableCount > 0 }

// BlockLight and SkyLight return the 4-bit light level at the local
// position. SkyLight returns 0 if the section has no sky-light channel.
func (s *Section) BlockLight(x, y, z int) byte { return s.blockLight.get(index(x, y, z)) }
func (s *Section) SkyLight(x, y, z int) byte {
	if s.skyLight == nil {
		return 0
	}
	return s.skyLight.get(index(x, y, z))
}

func (s *Section) SetBlockLight(x, y, z int, v byte) { s.blockLight.set(index(x, y, z), v) }
func (s *Section) SetSkyLight(x, y, z int, v byte) {
	if s.skyLight == nil {
		return
	}
	s.skyLight.set(index(x, y, z), v)
}

// HasSkyLight reports whether the section tracks sky light at all.
func (s *Section) HasSkyLight() bool { return s.skyLight != nil }

// recomputeCounts rebuilds nonAirCount and tickableCount by scanning
// every block against the block registry, used after bulk loads (NBT
// decode) where SetBlock's incremental bookkeeping was bypassed.
func (s *Section) recomputeCounts() {
	s.nonAirCount, s.tickableCount = 0, 0
	for i := 0; i < 4096; i++ {
		id := uint16(s.blocks[i])
		if s.add != nil {
			id |= uint16(s.add.get(i)) << 8
		}
		props := block.ByID(id)
		if id != block.Air {
			s.nonAirCount++
		}
		if props.RandomTickable {
			s.tickableCount++
		}
	}
}
