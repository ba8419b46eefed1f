package world

import (
	"container/heap"

	"github.com/cespare/xxhash/v2"

	"github.com/sablecore/voxelserver/server/block/cube"
)

// scheduledTick is one entry in the scheduled-tick engine, per spec.md
// §4.4: an ordered-set member keyed by (scheduledTime asc, priority asc,
// insertionSeq asc) that also belongs to a hash set keyed by
// (x,y,z,blockId) for O(1) de-duplication.
type scheduledTick struct {
	pos      cube.Pos
	blockID  uint16
	time     int64
	priority int32
	seq      uint64

	index int // heap.Interface bookkeeping
}

// dedupKey hashes (x,y,z,blockId) with xxhash for the de-dup hash set,
// matching SPEC_FULL.md's choice of cespare/xxhash/v2 for this role.
func dedupKey(pos cube.Pos, blockID uint16) uint64 {
	var buf [14]byte
	putInt32(buf[0:4], int32(pos.X()))
	putInt32(buf[4:8], int32(pos.Y()))
	putInt32(buf[8:12], int32(pos.Z()))
	buf[12] = byte(blockID)
	buf[13] = byte(blockID >> 8)
	return xxhash.Sum64(buf[:])
}

func putInt32(b []byte, v int32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// scheduledTickHeap implements container/heap.Interface, giving the
// ordered-set side of the engine its strict total order: time, then
// priority, then insertion sequence, per spec.md §5 ("guaranteeing
// deterministic replay for a given seed").
type scheduledTickHeap []*scheduledTick

func (h scheduledTickHeap) Len() int { return len(h) }
func (h scheduledTickHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.time != b.time {
		return a.time < b.time
	}
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}
func (h scheduledTickHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *scheduledTickHeap) Push(x any) {
	t := x.(*scheduledTick)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *scheduledTickHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// scheduledTickQueue is the combined ordered-set + hash-set engine.
type scheduledTickQueue struct {
	heap    scheduledTickHeap
	byKey   map[uint64]*scheduledTick
	nextSeq uint64

	// thisTick holds the snapshot popped by the most recent processTicks
	// call, so isScheduledThisTick can consult it per spec.md §4.4.
	thisTick map[uint64]struct{}
}

func newScheduledTickQueue() *scheduledTickQueue {
	return &scheduledTickQueue{byKey: map[uint64]*scheduledTick{}, thisTick: map[uint64]struct{}{}}
}

// schedule inserts a scheduled tick, a no-op if the same (pos, blockID)
// key is already present — the de-duplication rule of spec.md §4.4.
func (q *scheduledTickQueue) schedule(pos cube.Pos, blockID uint16, worldTime int64, delay int64, priority int32) {
	key := dedupKey(pos, blockID)
	if _, ok := q.byKey[key]; ok {
		return
	}
	t := &scheduledTick{pos: pos, blockID: blockID, time: worldTime + delay, priority: priority, seq: q.nextSeq}
	q.nextSeq++
	q.byKey[key] = t
	heap.Push(&q.heap, t)
}

// isScheduledThisTick reports whether (pos, blockID) was part of the most
// recent processTicks snapshot.
func (q *scheduledTickQueue) isScheduledThisTick(pos cube.Pos, blockID uint16) bool {
	_, ok := q.thisTick[dedupKey(pos, blockID)]
	return ok
}

// processTicks implements spec.md §4.4's processTicks: size-capped at
// 1000, popping entries with scheduledTime <= worldTime (or all entries,
// if forceAll), removing them from the hash set and returning the
// snapshot for the caller to execute.
func (q *scheduledTickQueue) processTicks(worldTime int64, forceAll bool) []*scheduledTick {
	clear(q.thisTick)
	limit := len(q.heap)
	if limit > 1000 {
		limit = 1000
	}
	var popped []*scheduledTick
	for len(popped) < limit && q.heap.Len() > 0 {
		next := q.heap[0]
		if !forceAll && next.time > worldTime {
			break
		}
		heap.Pop(&q.heap)
		key := dedupKey(next.pos, next.blockID)
		delete(q.byKey, key)
		q.thisTick[key] = struct{}{}
		popped = append(popped, next)
	}
	return popped
}

// getTicksInChunk returns (and optionally removes) every scheduled tick
// whose (x,z) falls within the 18x18 footprint centred on the chunk at
// cx,cz, per spec.md §4.4 ("used on chunk save (drain) and load
// (restore)").
func (q *scheduledTickQueue) getTicksInChunk(cx, cz int32, remove bool) []*scheduledTick {
	minX, maxX := int(cx)*16-1, int(cx)*16+16
	minZ, maxZ := int(cz)*16-1, int(cz)*16+16
	var out []*scheduledTick
	var toRemove []*scheduledTick
	for _, t := range q.heap {
		if t.pos.X() >= minX && t.pos.X() <= maxX && t.pos.Z() >= minZ && t.pos.Z() <= maxZ {
			out = append(out, t)
			if remove {
				toRemove = append(toRemove, t)
			}
		}
	}
	for _, t := range toRemove {
		heap.Remove(&q.heap, t.index)
		delete(q.byKey, dedupKey(t.pos, t.blockID))
	}
	return out
}

// reconcile rebuilds the hash set from the ordered set, the recovery
// path spec.md §7 specifies for a "scheduler invariant violation" (the
// two collections' sizes diverging).
func (q *scheduledTickQueue) reconcile() {
	q.byKey = make(map[uint64]*scheduledTick, len(q.heap))
	for _, t := range q.heap {
		q.byKey[dedupKey(t.pos, t.blockID)] = t
	}
}

// consistent reports whether the ordered-set and hash-set sizes agree.
func (q *scheduledTickQueue) consistent() bool { return len(q.heap) == len(q.byKey) }

// Len returns the number of pending scheduled ticks.
func (q *scheduledTickQueue) Len() int { return q.heap.Len() }
