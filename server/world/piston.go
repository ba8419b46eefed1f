package world

import (
	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/block/cube"
	"github.com/sablecore/voxelserver/server/world/tileentity"
)

// maxPistonPush is the maximum number of blocks a piston push may collect
// before the push aborts, per spec.md §4.4 ("If the count would exceed
// 12 -> abort").
const maxPistonPush = 12

// pistonPush walks forward from head (the block directly in front of the
// piston base) up to 13 cells collecting the blocks a push would carry,
// per spec.md §4.4. It returns the collected (pos, id, meta) tuples in
// near-to-far order and whether the push succeeds.
func pistonPush(tx *Tx, head cube.Pos, face cube.Face) (moved []pistonBlock, ok bool) {
	pos := head
	for i := 0; i < 13; i++ {
		id, meta := tx.Block(pos)
		props := block.ByID(id)

		if id == block.Air {
			return moved, true
		}
		if props.PistonBehavior == block.PistonImmovable {
			return nil, false
		}
		if props.Hardness < 0 {
			return nil, false
		}
		if tx.TileEntity(pos) != nil {
			return nil, false
		}
		if props.PistonBehavior == block.PistonBreak {
			moved = append(moved, pistonBlock{pos: pos, id: id, meta: meta, breaks: true})
			return moved, true
		}
		if len(moved) >= maxPistonPush {
			return nil, false
		}
		moved = append(moved, pistonBlock{pos: pos, id: id, meta: meta})
		pos = pos.Side(face)
	}
	return nil, false
}

type pistonBlock struct {
	pos    cube.Pos
	id     uint16
	meta   byte
	breaks bool
}

// ExtendPiston performs a piston push at base facing face, per spec.md
// §4.4: collect, then on success emit actions back-to-front, installing a
// piston-extension tile entity on the moving head and notifying
// neighbours.
func ExtendPiston(tx *Tx, base cube.Pos, face cube.Face) bool {
	head := base.Side(face)
	moved, ok := pistonPush(tx, head, face)
	if !ok {
		return false
	}

	for i := len(moved) - 1; i >= 0; i-- {
		m := moved[i]
		if m.breaks {
			tx.SetBlock(m.pos, block.Air, 0)
			continue
		}
		dest := m.pos.Side(face)
		tx.SetTileEntity(tileentity.NewPistonMoving(dest, m.id, m.meta, face, true))
		tx.SetBlock(dest, m.id, m.meta)
	}
	tx.SetBlock(head, block.Air, 0)
	return true
}

// RetractPiston performs a sticky-piston retraction: if the block two
// cells forward from base is pullable, it is drawn back into the vacated
// head cell; otherwise the head cell is simply cleared.
func RetractPiston(tx *Tx, base cube.Pos, face cube.Face, sticky bool) {
	head := base.Side(face)
	if !sticky {
		tx.SetBlock(head, block.Air, 0)
		return
	}

	pullFrom := head.Side(face)
	id, meta := tx.Block(pullFrom)
	props := block.ByID(id)
	if id == block.Air || props.PistonBehavior != block.PistonNormal || tx.TileEntity(pullFrom) != nil {
		tx.SetBlock(head, block.Air, 0)
		return
	}

	tx.SetTileEntity(tileentity.NewPistonMoving(head, id, meta, face, false))
	tx.SetBlock(head, id, meta)
	tx.SetBlock(pullFrom, block.Air, 0)
}
