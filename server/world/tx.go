package world

import (
	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/block/cube"
	"github.com/sablecore/voxelserver/server/world/chunk"
)

// Tx is a single synchronised transaction against a World's state. It is
// only valid for the duration of the ExecFunc it is passed to; using one
// after that call returns panics, the same discipline the teacher's
// transaction system enforces to catch a handler leaking its *Tx into a
// goroutine.
type Tx struct {
	w      *World
	closed bool
}

func (tx *Tx) guard() {
	if tx.closed {
		panic("world: Tx used after its ExecFunc returned")
	}
}

func (tx *Tx) invalidate() { tx.closed = true }

// World returns the World the transaction operates on.
func (tx *Tx) World() *World {
	tx.guard()
	return tx.w
}

func (tx *Tx) column(pos cube.Pos) *chunk.Column {
	return tx.w.chunkColumnAt(pos)
}

func (tx *Tx) chunkLoaded(pos cube.Pos) bool {
	if pos.Y() < 0 || pos.Y() > 255 {
		return false
	}
	return tx.column(pos) != nil
}

// blockAt reads the (id, meta) pair at pos, loading or generating the
// owning chunk if needed.
func (tx *Tx) blockAt(pos cube.Pos) (id uint16, meta byte) {
	if pos.Y() < 0 || pos.Y() > 255 {
		return block.Air, 0
	}
	c, err := tx.w.provider.provideChunk(chunkPosFromBlockPos(pos))
	if err != nil {
		return block.Air, 0
	}
	return c.Block(pos.X(), pos.Y(), pos.Z())
}

// Block is the public read accessor for the block id and metadata at pos.
func (tx *Tx) Block(pos cube.Pos) (id uint16, meta byte) {
	tx.guard()
	return tx.blockAt(pos)
}

// SetBlock writes id/meta at pos, maintains the height map, queues the
// position for the next tick's light catch-up, and notifies the six
// neighbours, per spec.md §9's dynamic
// block-behaviour dispatch and §4.3's light fixed-point invariant.
func (tx *Tx) SetBlock(pos cube.Pos, id uint16, meta byte) {
	tx.guard()
	if pos.Y() < 0 || pos.Y() > 255 {
		return
	}
	c, err := tx.w.provider.provideChunk(chunkPosFromBlockPos(pos))
	if err != nil {
		return
	}
	c.SetBlock(pos.X(), pos.Y(), pos.Z(), id, meta)
	tx.w.markLightDirty(pos)

	pos.Neighbours(func(n cube.Pos) {
		tx.updateNeighbour(n, pos)
	})
}

func (tx *Tx) updateNeighbour(pos, changed cube.Pos) {
	if !tx.chunkLoaded(pos) {
		return
	}
	id, _ := tx.blockAt(pos)
	if b := behaviorFor(id).Neighbour; b != nil {
		b(tx, pos, changed)
	}
}

func (tx *Tx) skyLightAt(pos cube.Pos) byte {
	c := tx.column(pos)
	if c == nil || pos.Y() < 0 || pos.Y() > 255 {
		return 0
	}
	return c.SkyLight(pos.X(), pos.Y(), pos.Z())
}

func (tx *Tx) blockLightAt(pos cube.Pos) byte {
	c := tx.column(pos)
	if c == nil || pos.Y() < 0 || pos.Y() > 255 {
		return 0
	}
	return c.BlockLight(pos.X(), pos.Y(), pos.Z())
}

func (tx *Tx) setSkyLightAt(pos cube.Pos, v byte) {
	c := tx.column(pos)
	if c == nil || pos.Y() < 0 || pos.Y() > 255 {
		return
	}
	c.SetSkyLight(pos.X(), pos.Y(), pos.Z(), v)
}

func (tx *Tx) setBlockLightAt(pos cube.Pos, v byte) {
	c := tx.column(pos)
	if c == nil || pos.Y() < 0 || pos.Y() > 255 {
		return
	}
	c.SetBlockLight(pos.X(), pos.Y(), pos.Z(), v)
}

func (tx *Tx) canSeeSky(pos cube.Pos) bool {
	c := tx.column(pos)
	if c == nil || pos.Y() < 0 || pos.Y() > 255 {
		return false
	}
	return c.CanSeeSky(pos.X(), pos.Y(), pos.Z())
}

// SkyLight and BlockLight are the public light accessors, subtracting the
// celestial-angle sky-time table at read time for SkyLight, per spec.md
// §4.3 ("this is applied at read time by the sky-brightness table, not
// stored").
func (tx *Tx) SkyLight(pos cube.Pos) byte {
	tx.guard()
	raw := tx.skyLightAt(pos)
	sub := skyTimeSubtraction(tx.w.celestialAngle())
	if int(raw)-int(sub) < 0 {
		return 0
	}
	return raw - sub
}

func (tx *Tx) BlockLight(pos cube.Pos) byte {
	tx.guard()
	return tx.blockLightAt(pos)
}

// ScheduleBlockUpdate queues a scheduled tick at pos for blockID after
// delay ticks at the given priority, per spec.md §4.4.
func (tx *Tx) ScheduleBlockUpdate(pos cube.Pos, blockID uint16, delay int64, priority int32) {
	tx.guard()
	tx.w.scheduled.schedule(pos, blockID, tx.w.worldTime, delay, priority)
}

// AddBlockEvent enqueues a block event (piston extend/retract, note block
// play) for the current tick's event-processing phase.
func (tx *Tx) AddBlockEvent(pos cube.Pos, blockID uint16, eventID, eventParam int32) {
	tx.guard()
	tx.w.blockEvents.addEvent(blockEvent{pos: pos, blockID: blockID, eventID: eventID, eventParam: eventParam})
}

// HeightMap returns the cached height-map value for the column owning
// pos's (x,z), or 0 if the column is not loaded.
func (tx *Tx) HeightMap(x, z int) int32 {
	tx.guard()
	c := tx.column(cube.Pos{x, 0, z})
	if c == nil {
		return 0
	}
	return c.HeightMap(x, z)
}

// TileEntity returns the tile entity at pos, or nil.
func (tx *Tx) TileEntity(pos cube.Pos) chunk.TileEntity {
	tx.guard()
	c := tx.column(pos)
	if c == nil {
		return nil
	}
	te, ok := c.TileEntity(pos)
	if !ok {
		return nil
	}
	return te
}

// SetTileEntity installs a tile entity, replacing any at the same
// position.
func (tx *Tx) SetTileEntity(te chunk.TileEntity) {
	tx.guard()
	c := tx.column(te.Pos())
	if c == nil {
		return
	}
	c.SetTileEntity(te)
}

// RemoveTileEntity removes the tile entity at pos, if any.
func (tx *Tx) RemoveTileEntity(pos cube.Pos) {
	tx.guard()
	c := tx.column(pos)
	if c == nil {
		return
	}
	c.RemoveTileEntity(pos)
}
