package scoreboard

import "testing"

// TestSortedScoresNonIncreasing covers spec.md §8 testable property 11:
// getSortedScores returns entries in non-increasing scorePoints order.
func TestSortedScoresNonIncreasing(t *testing.T) {
	sb := New()
	obj := sb.AddObjective("kills", "Kills", CriterionDummy)
	obj.SetScore("alice", 7)
	obj.SetScore("bob", 12)
	obj.SetScore("carol", 12)
	obj.SetScore("dave", 0)

	entries := obj.SortedScores()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score < entries[i].Score {
			t.Fatalf("scores not non-increasing at %d: %+v", i, entries)
		}
	}
	if entries[0].Score != 12 || entries[1].Score != 12 {
		t.Fatalf("expected the two 12-scores first, got %+v", entries[:2])
	}
	if entries[0].Entry != "bob" {
		t.Fatalf("expected tie broken alphabetically, got %+v", entries[0])
	}
}

func TestScoreboardSlots(t *testing.T) {
	sb := New()
	sb.AddObjective("health", "Health", CriterionDummy)
	sb.SetSlot("sidebar", "health")

	if sb.SlotObjective("sidebar") == nil {
		t.Fatalf("expected sidebar slot to resolve")
	}
	sb.RemoveObjective("health")
	if sb.SlotObjective("sidebar") != nil {
		t.Fatalf("expected slot cleared after objective removal")
	}
}
