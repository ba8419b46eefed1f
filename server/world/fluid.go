package world

import (
	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/block/cube"
)

// fluid tick rates in game ticks, per spec.md §4.4.
const (
	waterTickRate       = 5
	lavaTickRate        = 30
	lavaTickRateNether  = 10
)

// Fluid ids and their flowing/source pairing are supplied by the caller
// (the block behaviour table) rather than hardcoded here, since this
// package has no block-name table of its own; fluidKind captures just
// enough to run the spec.md §4.4 formula.
type fluidKind struct {
	sourceID, flowingID uint16
	isLava              bool
	isNether            bool
}

const horizontalSearchDepth = 4

var fluidHorizontal = [4]cube.Face{cube.FaceNorth, cube.FaceSouth, cube.FaceWest, cube.FaceEast}

// TickRate returns this fluid's scheduled-tick delay.
func (k fluidKind) TickRate() int64 {
	if !k.isLava {
		return waterTickRate
	}
	if k.isNether {
		return lavaTickRateNether
	}
	return lavaTickRate
}

func (k fluidKind) decay() byte {
	if k.isLava && !k.isNether {
		return 2
	}
	return 1
}

func (k fluidKind) isOwnFluid(id uint16) bool { return id == k.sourceID || id == k.flowingID }

// TickFluid runs one fluid-flow update at pos per spec.md §4.4's formula
// and reschedules itself at the resulting tick rate.
func TickFluid(tx *Tx, pos cube.Pos, k fluidKind, rng func(n int) int) {
	id, meta := tx.Block(pos)
	if !k.isOwnFluid(id) {
		return
	}
	isSource := id == k.sourceID
	current := meta
	if isSource {
		current = 0
	}

	newLevel, becomesAir := computeFluidLevel(tx, pos, k, current)

	above, _ := tx.Block(pos.Side(cube.FaceUp))
	if k.isOwnFluid(above) {
		_, aboveMeta := tx.Block(pos.Side(cube.FaceUp))
		if aboveMeta >= 8 {
			newLevel = aboveMeta
		} else {
			newLevel = aboveMeta + 8
		}
		becomesAir = false
	}

	rate := k.TickRate()
	if k.isLava && current < 8 && newLevel > current && rng(4) != 0 {
		rate *= 4
	}

	// A source's own cell is never rewritten by the decay formula: its
	// level is always 0 by definition, regardless of what its neighbors
	// compute. Only the spread into neighbors (below or sideways) depends
	// on newLevel.
	if !isSource {
		if becomesAir {
			tx.SetBlock(pos, block.Air, 0)
		} else if newLevel != current {
			tx.SetBlock(pos, k.flowingID, newLevel)
		}
	}

	below := pos.Side(cube.FaceDown)
	belowID, _ := tx.Block(below)
	if acceptsFluidFlow(belowID) {
		if k.isLava {
			waterID, waterFlowing := waterIDsFor(k)
			if belowID == waterID || belowID == waterFlowing {
				tx.SetBlock(below, stoneID, 0)
				return
			}
		}
		v := newLevel
		if v < 8 {
			v += 8
		}
		tx.SetBlock(below, k.flowingID, v)
		return
	}

	spreadHorizontally(tx, pos, k, newLevel)
	tx.ScheduleBlockUpdate(pos, k.flowingID, rate, 0)
}

// computeFluidLevel scans the four horizontal neighbors for the minimum
// flow level and any adjacent source blocks, per spec.md §4.4.
func computeFluidLevel(tx *Tx, pos cube.Pos, k fluidKind, current byte) (level byte, becomesAir bool) {
	minNeighbor := byte(255)
	sourceCount := 0
	for _, f := range fluidHorizontal {
		id, meta := tx.Block(pos.Side(f))
		if id == k.sourceID {
			sourceCount++
			if 0 < minNeighbor {
				minNeighbor = 0
			}
		} else if id == k.flowingID {
			if meta < minNeighbor {
				minNeighbor = meta
			}
		}
	}

	if minNeighbor == 255 {
		return 0, true
	}
	level = minNeighbor + k.decay()
	if level > 7 {
		return 0, true
	}

	if !k.isLava && sourceCount >= 2 {
		below := pos.Side(cube.FaceDown)
		belowID, _ := tx.Block(below)
		if block.ByID(belowID).Solid || belowID == k.sourceID {
			return 0, false
		}
	}
	return level, false
}

// spreadHorizontally runs the depth-4 breadth-limited drop-off search and
// flows every minimum-cost direction simultaneously, per spec.md §4.4.
func spreadHorizontally(tx *Tx, pos cube.Pos, k fluidKind, level byte) {
	if level >= 7 {
		return
	}
	best := horizontalSearchDepth + 1
	var bestFaces []cube.Face
	for _, f := range fluidHorizontal {
		n := pos.Side(f)
		if isFluidBlocking(tx, n) {
			continue
		}
		depth := dropOffDepth(tx, n, k, horizontalSearchDepth)
		switch {
		case depth < best:
			best = depth
			bestFaces = []cube.Face{f}
		case depth == best:
			bestFaces = append(bestFaces, f)
		}
	}
	for _, f := range bestFaces {
		n := pos.Side(f)
		id, _ := tx.Block(n)
		if k.isOwnFluid(id) {
			continue
		}
		if k.isLava {
			waterID, waterFlowing := waterIDsFor(k)
			if id == waterID || id == waterFlowing {
				tx.SetBlock(n, cobblestoneID, 0)
				continue
			}
		}
		if !isFluidBlocking(tx, n) {
			tx.SetBlock(n, k.flowingID, level+k.decay())
		}
	}
}

// dropOffDepth performs a bounded BFS looking for the nearest downward
// exit, returning a depth in [0, limit]; limit itself means "no exit
// found within range".
func dropOffDepth(tx *Tx, from cube.Pos, k fluidKind, limit int) int {
	below := from.Side(cube.FaceDown)
	belowID, _ := tx.Block(below)
	if acceptsFluidFlow(belowID) {
		return 0
	}
	if limit == 0 {
		return limit
	}
	best := limit
	for _, f := range fluidHorizontal {
		n := from.Side(f)
		if isFluidBlocking(tx, n) {
			continue
		}
		if d := dropOffDepth(tx, n, k, limit-1) + 1; d < best {
			best = d
		}
	}
	return best
}

func acceptsFluidFlow(id uint16) bool {
	if id == block.Air {
		return true
	}
	return !block.ByID(id).Solid
}

// isFluidBlocking reports whether the block at pos is solid. Only solid
// blocks block fluid flow; non-solid doors, signs, ladders, reeds and
// portal blocks are not treated as blocking.
func isFluidBlocking(tx *Tx, pos cube.Pos) bool {
	id, _ := tx.Block(pos)
	return block.ByID(id).Solid
}

// waterIDsFor and the stone/cobblestone/water ids below are registry ids
// resolved once the data/blocks.yaml table is loaded; declared as package
// variables here so the generator/registry init path can set them without
// this package importing the data table directly (spec.md §9's sum-type-
// as-function-table discipline keeps id knowledge out of the flow math).
var (
	stoneID       uint16
	cobblestoneID uint16
	waterSourceID uint16
	waterFlowID   uint16
)

func waterIDsFor(fluidKind) (source, flowing uint16) { return waterSourceID, waterFlowID }

// RegisterFluidIDs wires the concrete block ids the lava/water interaction
// side effects need (stone, cobblestone, and water's own pair), called
// once from the server's startup registration pass.
func RegisterFluidIDs(stone, cobblestone, waterSource, waterFlowing uint16) {
	stoneID, cobblestoneID, waterSourceID, waterFlowID = stone, cobblestone, waterSource, waterFlowing
}
