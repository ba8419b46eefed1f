package world

import "github.com/sablecore/voxelserver/server/block/cube"

// Behavior holds the per-block-id function table spec.md §9 calls for:
// "Block behavior... is polymorphic over id. Represent as a table of
// function pointers... indexed by block id... populated once and then
// read-only." It lives in the world package rather than block so that
// handlers can take a *Tx without block importing world.
type Behavior struct {
	// ScheduledTick runs when a scheduled tick fires at pos for this
	// block id. May be nil.
	ScheduledTick func(tx *Tx, pos cube.Pos)
	// RandomTick runs when the block is chosen by the random tick
	// selector. May be nil.
	RandomTick func(tx *Tx, pos cube.Pos)
	// Neighbour runs when a block directly adjacent to pos changes. May
	// be nil.
	Neighbour func(tx *Tx, pos, changed cube.Pos)
	// BlockEvent handles a dispatched block event (piston extend/retract,
	// note block play) and reports whether it should additionally be
	// relayed to clients.
	BlockEvent func(tx *Tx, pos cube.Pos, eventID, eventParam int32) bool
}

var behaviors = map[uint16]Behavior{}

// RegisterBehavior installs the Behavior for a block id. It is called
// during startup, before the world starts running, matching the
// registry's "populated once, read-only" contract.
func RegisterBehavior(id uint16, b Behavior) {
	behaviors[id] = b
}

// behaviorFor returns the Behavior table entry for id, or the zero value
// (all nil handlers) if none was registered.
func behaviorFor(id uint16) Behavior {
	return behaviors[id]
}
