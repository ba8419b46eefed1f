package tileentity

import (
	"github.com/sablecore/voxelserver/server/block/cube"
	"github.com/sablecore/voxelserver/server/internal/nbt"
	"github.com/sablecore/voxelserver/server/world/chunk"
)

func posOf(c *nbt.Compound) cube.Pos {
	return cube.Pos{int(c.Int("x")), int(c.Int("y")), int(c.Int("z"))}
}

func encodeInventory(c *nbt.Compound, inv *Inventory) {
	var items []any
	for i := 0; i < inv.Size(); i++ {
		s := inv.Slot(i)
		if s.Empty() {
			continue
		}
		item := nbt.NewCompound()
		item.Set("Slot", int8(i))
		item.Set("id", s.ID)
		item.Set("Damage", s.Damage)
		item.Set("Count", int8(s.Count))
		items = append(items, item)
	}
	c.Set("Items", items)
}

func decodeInventory(c *nbt.Compound, size int) *Inventory {
	inv := NewInventory(size)
	if v, ok := c.Get("Items"); ok {
		for _, raw := range v.([]any) {
			item := raw.(*nbt.Compound)
			slot := int(item.Byte("Slot"))
			inv.SetSlot(slot, ItemStack{ID: item.Short("id"), Damage: item.Short("Damage"), Count: byte(item.Byte("Count"))})
		}
	}
	return inv
}

func init() {
	chunk.RegisterTileEntityCodec(TypeFurnace, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			f := t.(*Furnace)
			c := nbt.NewCompound()
			c.Set("BurnTime", f.BurnTime)
			c.Set("CookTime", f.CookTime)
			c.Set("CookTimeTotal", f.CurrentItemBurnTime)
			encodeInventory(c, f.Inventory)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			f := NewFurnace(posOf(c))
			f.BurnTime = c.Short("BurnTime")
			f.CookTime = c.Short("CookTime")
			f.CurrentItemBurnTime = c.Short("CookTimeTotal")
			f.Inventory = decodeInventory(c, 3)
			return f
		},
	})

	chunk.RegisterTileEntityCodec(TypeChest, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			ch := t.(*Chest)
			c := nbt.NewCompound()
			encodeInventory(c, ch.Inventory)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			ch := NewChest(posOf(c))
			ch.Inventory = decodeInventory(c, 27)
			return ch
		},
	})

	chunk.RegisterTileEntityCodec(TypeSign, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			s := t.(*Sign)
			c := nbt.NewCompound()
			c.Set("Text1", s.Lines[0])
			c.Set("Text2", s.Lines[1])
			c.Set("Text3", s.Lines[2])
			c.Set("Text4", s.Lines[3])
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			s := NewSign(posOf(c))
			s.Lines = [4]string{c.String("Text1"), c.String("Text2"), c.String("Text3"), c.String("Text4")}
			return s
		},
	})

	chunk.RegisterTileEntityCodec(TypeHopper, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			h := t.(*Hopper)
			c := nbt.NewCompound()
			c.Set("TransferCooldown", h.TransferCooldown)
			encodeInventory(c, h.Inventory)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			h := NewHopper(posOf(c))
			h.TransferCooldown = c.Int("TransferCooldown")
			h.Inventory = decodeInventory(c, 5)
			return h
		},
	})

	chunk.RegisterTileEntityCodec(TypeDropper, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			d := t.(*Dropper)
			c := nbt.NewCompound()
			encodeInventory(c, d.Inventory)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			d := NewDropper(posOf(c))
			d.Inventory = decodeInventory(c, 9)
			return d
		},
	})

	chunk.RegisterTileEntityCodec(TypeDispenser, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			d := t.(*Dispenser)
			c := nbt.NewCompound()
			encodeInventory(c, d.Inventory)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			d := NewDispenser(posOf(c))
			d.Inventory = decodeInventory(c, 9)
			return d
		},
	})

	chunk.RegisterTileEntityCodec(TypeBrewingStand, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			b := t.(*BrewingStand)
			c := nbt.NewCompound()
			c.Set("BrewTime", b.BrewTime)
			encodeInventory(c, b.Inventory)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			b := NewBrewingStand(posOf(c))
			b.BrewTime = c.Int("BrewTime")
			b.Inventory = decodeInventory(c, 4)
			return b
		},
	})

	chunk.RegisterTileEntityCodec(TypeNoteBlock, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			n := t.(*NoteBlock)
			c := nbt.NewCompound()
			c.Set("note", int8(n.Note))
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			n := NewNoteBlock(posOf(c))
			n.Note = byte(c.Byte("note"))
			return n
		},
	})

	chunk.RegisterTileEntityCodec(TypeJukebox, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			j := t.(*Jukebox)
			c := nbt.NewCompound()
			c.Set("Record", j.Record)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			j := NewJukebox(posOf(c))
			j.Record = c.Short("Record")
			return j
		},
	})

	chunk.RegisterTileEntityCodec(TypeSkull, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			s := t.(*Skull)
			c := nbt.NewCompound()
			c.Set("SkullType", int8(s.SkullType))
			c.Set("Rot", int8(s.Rotation))
			c.Set("ExtraType", s.OwnerName)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			s := NewSkull(posOf(c))
			s.SkullType = byte(c.Byte("SkullType"))
			s.Rotation = byte(c.Byte("Rot"))
			s.OwnerName = c.String("ExtraType")
			return s
		},
	})

	chunk.RegisterTileEntityCodec(TypeFlowerPot, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			f := t.(*FlowerPot)
			c := nbt.NewCompound()
			c.Set("Item", f.ItemID)
			c.Set("Data", f.ItemData)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			f := NewFlowerPot(posOf(c))
			f.ItemID = c.Short("Item")
			f.ItemData = c.Short("Data")
			return f
		},
	})

	chunk.RegisterTileEntityCodec(TypeComparator, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			cmp := t.(*Comparator)
			c := nbt.NewCompound()
			c.Set("OutputSignal", cmp.OutputSignal)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			cmp := NewComparator(posOf(c))
			cmp.OutputSignal = c.Int("OutputSignal")
			return cmp
		},
	})

	chunk.RegisterTileEntityCodec(TypeCommandBlock, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			cb := t.(*CommandBlock)
			c := nbt.NewCompound()
			c.Set("Command", cb.Command)
			c.Set("SuccessCount", cb.SuccessCount)
			c.Set("TrackOutput", boolByte(cb.TrackOutput))
			c.Set("LastOutput", cb.LastOutput)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			cb := NewCommandBlock(posOf(c))
			cb.Command = c.String("Command")
			cb.SuccessCount = c.Int("SuccessCount")
			cb.TrackOutput = c.Byte("TrackOutput") != 0
			cb.LastOutput = c.String("LastOutput")
			return cb
		},
	})

	chunk.RegisterTileEntityCodec(TypeBeacon, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			b := t.(*Beacon)
			c := nbt.NewCompound()
			c.Set("Levels", int32(b.Levels))
			c.Set("Primary", b.Primary)
			c.Set("Secondary", b.Secondary)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			b := NewBeacon(posOf(c))
			b.Levels = int(c.Int("Levels"))
			b.Primary = c.Short("Primary")
			b.Secondary = c.Short("Secondary")
			return b
		},
	})

	chunk.RegisterTileEntityCodec(TypeMobSpawner, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			m := t.(*MobSpawner)
			c := nbt.NewCompound()
			c.Set("EntityId", m.EntityID)
			c.Set("Delay", m.Delay)
			c.Set("MinSpawnDelay", m.MinSpawnDelay)
			c.Set("MaxSpawnDelay", m.MaxSpawnDelay)
			c.Set("SpawnCount", m.SpawnCount)
			c.Set("MaxNearbyEntities", m.MaxNearbyEntities)
			c.Set("RequiredPlayerRange", m.RequiredPlayerRange)
			c.Set("SpawnRange", m.SpawnRange)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			m := NewMobSpawner(posOf(c), c.String("EntityId"))
			m.Delay = c.Short("Delay")
			m.MinSpawnDelay = c.Short("MinSpawnDelay")
			m.MaxSpawnDelay = c.Short("MaxSpawnDelay")
			m.SpawnCount = c.Short("SpawnCount")
			m.MaxNearbyEntities = c.Short("MaxNearbyEntities")
			m.RequiredPlayerRange = c.Short("RequiredPlayerRange")
			m.SpawnRange = c.Short("SpawnRange")
			return m
		},
	})

	chunk.RegisterTileEntityCodec(TypeEnchantTable, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			e := t.(*EnchantTable)
			c := nbt.NewCompound()
			c.Set("CustomName", e.CustomName)
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			e := NewEnchantTable(posOf(c))
			e.CustomName = c.String("CustomName")
			return e
		},
	})

	chunk.RegisterTileEntityCodec(TypeEnderChest, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound { return nbt.NewCompound() },
		Decode: func(c *nbt.Compound) chunk.TileEntity { return NewEnderChest(posOf(c)) },
	})

	chunk.RegisterTileEntityCodec(TypeDaylightDetector, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound { return nbt.NewCompound() },
		Decode: func(c *nbt.Compound) chunk.TileEntity { return NewDaylightDetector(posOf(c)) },
	})

	chunk.RegisterTileEntityCodec(TypeEndPortal, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound { return nbt.NewCompound() },
		Decode: func(c *nbt.Compound) chunk.TileEntity { return NewEndPortal(posOf(c)) },
	})

	chunk.RegisterTileEntityCodec(TypePistonMoving, chunk.TileEntityCodec{
		Encode: func(t chunk.TileEntity) *nbt.Compound {
			p := t.(*PistonMoving)
			c := nbt.NewCompound()
			c.Set("blockId", int32(p.StoredID))
			c.Set("blockData", int32(p.StoredMeta))
			c.Set("facing", int32(p.Facing))
			c.Set("extending", boolByte(p.Extending))
			c.Set("progress", float32(p.Progress))
			return c
		},
		Decode: func(c *nbt.Compound) chunk.TileEntity {
			p := NewPistonMoving(posOf(c), uint16(c.Int("blockId")), byte(c.Int("blockData")), cube.Face(c.Int("facing")), c.Byte("extending") != 0)
			p.Progress = float64(c.Float("progress"))
			return p
		},
	})
}

func boolByte(b bool) int8 {
	if b {
		return 1
	}
	return 0
}
