package world

import (
	"testing"

	"github.com/sablecore/voxelserver/server/block/cube"
)

// TestScheduledTickDedup exercises spec.md §8's Testable Property 6
// ("no two ordered-set entries share (x,y,z,blockId)") and scenario S5:
// scheduling the same (pos, blockId) three times still yields exactly
// one pending entry, and processTicks at the matching world time
// returns a single action.
func TestScheduledTickDedup(t *testing.T) {
	q := newScheduledTickQueue()
	pos := cube.Pos{5, 5, 5}

	q.schedule(pos, 8, 0, 10, 0)
	q.schedule(pos, 8, 0, 10, 0)
	q.schedule(pos, 8, 0, 10, 0)

	if q.Len() != 1 {
		t.Fatalf("expected exactly one pending entry after three identical schedules, got %d", q.Len())
	}

	popped := q.processTicks(10, false)
	if len(popped) != 1 {
		t.Fatalf("expected processTicks to return exactly one action, got %d", len(popped))
	}
	if popped[0].pos != pos || popped[0].blockID != 8 {
		t.Fatalf("unexpected popped entry: %+v", popped[0])
	}
	if q.Len() != 0 {
		t.Fatalf("expected queue to be empty after draining the only entry, got len %d", q.Len())
	}
}

// TestScheduledTickDedupAllowsReschedulingAfterPop confirms the
// de-duplication key is released once an entry is popped, so the same
// (pos, blockId) can be scheduled again afterwards.
func TestScheduledTickDedupAllowsReschedulingAfterPop(t *testing.T) {
	q := newScheduledTickQueue()
	pos := cube.Pos{1, 2, 3}

	q.schedule(pos, 1, 0, 5, 0)
	q.processTicks(5, false)
	q.schedule(pos, 1, 5, 5, 0)

	if q.Len() != 1 {
		t.Fatalf("expected rescheduling after pop to succeed, got len %d", q.Len())
	}
}

// TestScheduledTickOrdering checks the ordered-set's strict total order:
// earlier scheduledTime sorts first, ties broken by priority, then by
// insertion order.
func TestScheduledTickOrdering(t *testing.T) {
	q := newScheduledTickQueue()
	q.schedule(cube.Pos{0, 0, 0}, 1, 0, 20, 0)
	q.schedule(cube.Pos{1, 0, 0}, 2, 0, 5, 0)
	q.schedule(cube.Pos{2, 0, 0}, 3, 0, 5, 1)

	popped := q.processTicks(1000, true)
	if len(popped) != 3 {
		t.Fatalf("expected all three entries, got %d", len(popped))
	}
	if popped[0].blockID != 2 || popped[1].blockID != 3 || popped[2].blockID != 1 {
		t.Fatalf("unexpected pop order: %d, %d, %d", popped[0].blockID, popped[1].blockID, popped[2].blockID)
	}
}

// TestScheduledTickReconcile exercises the reconcile recovery path
// spec.md §7 specifies for a scheduler invariant violation.
func TestScheduledTickReconcile(t *testing.T) {
	q := newScheduledTickQueue()
	q.schedule(cube.Pos{0, 0, 0}, 1, 0, 10, 0)
	q.schedule(cube.Pos{1, 0, 0}, 2, 0, 10, 0)

	delete(q.byKey, dedupKey(cube.Pos{0, 0, 0}, 1))
	if q.consistent() {
		t.Fatalf("expected an induced divergence to be detected as inconsistent")
	}

	q.reconcile()
	if !q.consistent() {
		t.Fatalf("expected reconcile to restore consistency")
	}
}
