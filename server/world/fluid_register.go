package world

import "github.com/sablecore/voxelserver/server/block/cube"

// RegisterFluidBehavior wires a fluid's flowing-block id against the
// scheduled-tick table, so a live World.Tick() drives TickFluid the same
// way a scheduled block update drives any other block, per spec.md
// §4.4. Only the flowing id needs a ScheduledTick handler: whenever
// TickFluid reschedules itself (after a sideways spread; it does not
// after flowing into the block below) it does so under k.flowingID,
// whether the position holds the source or the flowing block, and a
// source's own cell is never rewritten by the decay formula (see
// fluid.go), so no handler is needed for the source id itself.
//
// neighbourReschedule additionally schedules a tick whenever a block
// adjacent to a fluid cell changes, so flow reacts to newly placed or
// removed blocks (a door opening, a wall breaking) and not only to its
// own rescheduling chain.
func RegisterFluidBehavior(sourceID, flowingID uint16, isLava, isNether bool, rng func(n int) int) {
	k := fluidKind{sourceID: sourceID, flowingID: flowingID, isLava: isLava, isNether: isNether}

	tick := func(tx *Tx, pos cube.Pos) {
		TickFluid(tx, pos, k, rng)
	}
	neighbour := func(tx *Tx, pos, changed cube.Pos) {
		if id, _ := tx.Block(pos); k.isOwnFluid(id) {
			tx.ScheduleBlockUpdate(pos, flowingID, k.TickRate(), 0)
		}
	}

	RegisterBehavior(flowingID, Behavior{ScheduledTick: tick, Neighbour: neighbour})
	RegisterBehavior(sourceID, Behavior{Neighbour: neighbour})
}
