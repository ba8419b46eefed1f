package world

import "github.com/sablecore/voxelserver/server/block/cube"

// blockEvent is one dispatched block event (piston extend/retract, note
// block play), per spec.md §4.4.
type blockEvent struct {
	pos        cube.Pos
	blockID    uint16
	eventID    int32
	eventParam int32
}

// blockEventQueue implements the two ping-pong buffers spec.md §4.4
// describes: addEvent appends to the active buffer, rejecting exact
// duplicates; processEvents repeatedly swaps and drains until both
// buffers are empty.
type blockEventQueue struct {
	buffers     [2][]blockEvent
	activeIndex int
}

// addEvent appends ev to the active buffer unless an identical
// (x,y,z,blockId,eventId,eventParam) entry is already queued.
func (q *blockEventQueue) addEvent(ev blockEvent) {
	active := q.buffers[q.activeIndex]
	for _, e := range active {
		if e == ev {
			return
		}
	}
	q.buffers[q.activeIndex] = append(active, ev)
}

// processEvents repeatedly swaps the active buffer and hands every entry
// in the now-inactive buffer to handler, collecting the entries for
// which handler reports true (meaning: relay to clients), until both
// buffers drain empty.
func (q *blockEventQueue) processEvents(handler func(ev blockEvent) bool) []blockEvent {
	var forClients []blockEvent
	for len(q.buffers[0]) > 0 || len(q.buffers[1]) > 0 {
		draining := q.activeIndex
		q.activeIndex = 1 - q.activeIndex
		pending := q.buffers[draining]
		q.buffers[draining] = nil

		for _, ev := range pending {
			if handler(ev) {
				forClients = append(forClients, ev)
			}
		}
	}
	return forClients
}
