package chunk

import "github.com/sablecore/voxelserver/server/internal/nbt"

// TileEntityCodec lets the tileentity package (which chunk must not
// import, to keep the chunk<->tileentity<->world cycle broken per
// spec.md §9) register how to encode/decode its TypeID tags without
// chunk knowing any concrete tile entity type.
type TileEntityCodec struct {
	Encode func(te TileEntity) *nbt.Compound
	Decode func(c *nbt.Compound) TileEntity
}

var tileEntityCodecs = map[string]TileEntityCodec{}

// RegisterTileEntityCodec installs the codec for a tile entity TypeID.
func RegisterTileEntityCodec(typeID string, codec TileEntityCodec) {
	tileEntityCodecs[typeID] = codec
}

// ToNBT serializes the column into the "Level" compound schema spec.md
// §6 defines.
func (c *Column) ToNBT() *nbt.Compound {
	root := nbt.NewCompound()
	root.Set("V", int8(1))
	root.Set("xPos", c.X)
	root.Set("zPos", c.Z)
	root.Set("LastUpdate", c.LastUpdate)
	root.Set("InhabitedTime", c.InhabitedTime)

	hm := make([]int32, 256)
	copy(hm, c.heightMap[:])
	root.Set("HeightMap", hm)

	root.Set("TerrainPopulated", boolByte(c.TerrainPopulated))
	root.Set("LightPopulated", boolByte(c.LightPopulated))

	var sections []any
	for y := 0; y < 16; y++ {
		s := c.sections[y]
		if s == nil {
			continue
		}
		sc := nbt.NewCompound()
		sc.Set("Y", int8(y))
		sc.Set("Blocks", append([]byte(nil), s.blocks[:]...))
		if s.add != nil {
			sc.Set("Add", append([]byte(nil), s.add[:]...))
		}
		sc.Set("Data", append([]byte(nil), s.data[:]...))
		sc.Set("BlockLight", append([]byte(nil), s.blockLight[:]...))
		if s.skyLight != nil {
			sc.Set("SkyLight", append([]byte(nil), s.skyLight[:]...))
		}
		sections = append(sections, sc)
	}
	root.Set("Sections", sections)

	root.Set("Biomes", append([]byte(nil), c.biomes[:]...))

	var entities []any
	root.Set("Entities", entities)

	var tileEntities []any
	for _, te := range c.tileEntities {
		codec, ok := tileEntityCodecs[te.TypeID()]
		if !ok {
			continue
		}
		tc := codec.Encode(te)
		tc.Set("id", te.TypeID())
		p := te.Pos()
		tc.Set("x", int32(p.X()))
		tc.Set("y", int32(p.Y()))
		tc.Set("z", int32(p.Z()))
		tileEntities = append(tileEntities, tc)
	}
	root.Set("TileEntities", tileEntities)

	var tileTicks []any
	root.Set("TileTicks", tileTicks)

	return root
}

func boolByte(b bool) int8 {
	if b {
		return 1
	}
	return 0
}

// FromNBT reconstructs a Column from its "Level" compound, the mirror of
// ToNBT. hasSky must match the owning dimension's sky-light policy.
func FromNBT(root *nbt.Compound, hasSky bool) *Column {
	x := root.Int("xPos")
	z := root.Int("zPos")
	c := NewColumn(x, z, hasSky)

	if v, ok := root.Get("LastUpdate"); ok {
		c.LastUpdate = v.(int64)
	}
	if v, ok := root.Get("InhabitedTime"); ok {
		c.InhabitedTime = v.(int64)
	}
	if v, ok := root.Get("TerrainPopulated"); ok {
		c.TerrainPopulated = v.(int8) != 0
	}
	if v, ok := root.Get("LightPopulated"); ok {
		c.LightPopulated = v.(int8) != 0
	}
	if v, ok := root.Get("HeightMap"); ok {
		copy(c.heightMap[:], v.([]int32))
	}
	if v, ok := root.Get("Biomes"); ok {
		copy(c.biomes[:], v.([]byte))
	}

	if v, ok := root.Get("Sections"); ok {
		for _, raw := range v.([]any) {
			sc := raw.(*nbt.Compound)
			y := int(sc.Byte("Y"))
			s := NewSection(hasSky)
			if b, ok := sc.Get("Blocks"); ok {
				copy(s.blocks[:], b.([]byte))
			}
			if a, ok := sc.Get("Add"); ok {
				na := &nibbleArray{}
				copy(na[:], a.([]byte))
				s.add = na
			}
			if d, ok := sc.Get("Data"); ok {
				copy(s.data[:], d.([]byte))
			}
			if bl, ok := sc.Get("BlockLight"); ok {
				copy(s.blockLight[:], bl.([]byte))
			}
			if sl, ok := sc.Get("SkyLight"); ok && hasSky {
				na := &nibbleArray{}
				copy(na[:], sl.([]byte))
				s.skyLight = na
			}
			s.recomputeCounts()
			c.sections[y] = s
		}
	}

	if v, ok := root.Get("TileEntities"); ok {
		for _, raw := range v.([]any) {
			tc := raw.(*nbt.Compound)
			codec, ok := tileEntityCodecs[tc.String("id")]
			if !ok {
				continue
			}
			te := codec.Decode(tc)
			c.SetTileEntity(te)
		}
	}

	return c
}
