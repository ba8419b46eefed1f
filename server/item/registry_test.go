package item

import "testing"

// TestStackLimits covers spec.md §9's open question: ender pearls stack
// to 16, tools (damageable items) stack to 1, plain items default to 64.
func TestStackLimits(t *testing.T) {
	pearl, ok := ByName("minecraft:ender_pearl")
	if !ok || pearl.StackLimit != 16 {
		t.Fatalf("expected ender pearl stack limit 16, got %+v ok=%v", pearl, ok)
	}

	pick, ok := ByName("minecraft:iron_pickaxe")
	if !ok || pick.StackLimit != 1 || !pick.Damageable() {
		t.Fatalf("expected iron pickaxe to be a 1-stack damageable tool, got %+v", pick)
	}

	apple, ok := ByName("minecraft:apple")
	if !ok || apple.StackLimit != 64 {
		t.Fatalf("expected apple stack limit 64, got %+v", apple)
	}

	if got := StackLimit(999999); got != DefaultStackLimit {
		t.Fatalf("expected unregistered id to default to %d, got %d", DefaultStackLimit, got)
	}
}

func TestStackMerge(t *testing.T) {
	a := Stack{ID: byName["minecraft:apple"], Count: 40}
	b := Stack{ID: byName["minecraft:apple"], Count: 30}

	merged, remainder := a.Merge(b)
	if merged.Count != 64 || remainder.Count != 6 {
		t.Fatalf("expected merged=64 remainder=6, got merged=%d remainder=%d", merged.Count, remainder.Count)
	}
}

func TestStackMergeDamageableNeverCombines(t *testing.T) {
	id := byName["minecraft:iron_pickaxe"]
	a := Stack{ID: id, Count: 1}
	b := Stack{ID: id, Count: 1}

	merged, remainder := a.Merge(b)
	if merged.Count != 1 || remainder.Count != 1 {
		t.Fatalf("expected damageable items to never merge, got merged=%d remainder=%d", merged.Count, remainder.Count)
	}
}
