package entity

import (
	"testing"

	"github.com/google/uuid"
)

// TestAttributeInstanceThreePhaseFormula covers spec.md §3's
// AttributeInstance formula: add-amounts snapshot first, then percent-add
// modifiers apply to that snapshot, then percent-multiply modifiers
// compound, then the result clamps.
func TestAttributeInstanceThreePhaseFormula(t *testing.T) {
	inst := NewAttributeInstance(AttributeDefinition{Name: "generic.attackDamage", Min: 0, Max: 2048}, 2)

	inst.AddModifier(AttributeModifier{ID: uuid.New(), Amount: 3, Operation: OpAdd})
	// base' = 2+3 = 5
	inst.AddModifier(AttributeModifier{ID: uuid.New(), Amount: 0.5, Operation: OpAddPercent})
	// v = 5 + 5*0.5 = 7.5
	inst.AddModifier(AttributeModifier{ID: uuid.New(), Amount: 1.0, Operation: OpMultiplyPercent})
	// v = 7.5 * 2 = 15

	if got := inst.Value(); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func TestAttributeInstanceModifierReplacementByUUID(t *testing.T) {
	inst := NewAttributeInstance(AttributeDefinition{Name: "generic.maxHealth", Min: 0, Max: 1024}, 20)
	id := uuid.New()

	inst.AddModifier(AttributeModifier{ID: id, Amount: 5, Operation: OpAdd})
	if got := inst.Value(); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}

	inst.AddModifier(AttributeModifier{ID: id, Amount: 10, Operation: OpAdd})
	if got := inst.Value(); got != 30 {
		t.Fatalf("expected replacement to give 30, got %v", got)
	}
}

func TestAttributeInstanceClamps(t *testing.T) {
	inst := NewAttributeInstance(AttributeDefinition{Name: "generic.knockbackResistance", Min: 0, Max: 1}, 0)
	inst.AddModifier(AttributeModifier{ID: uuid.New(), Amount: 5, Operation: OpAdd})
	if got := inst.Value(); got != 1 {
		t.Fatalf("expected clamp to max 1, got %v", got)
	}
}

// TestAttributeInstanceModifierApplyThenRemoveRestoresValue covers
// spec.md §8's round-trip law: applying and then removing a modifier
// (same uuid) restores the cached value within floating-point equality.
func TestAttributeInstanceModifierApplyThenRemoveRestoresValue(t *testing.T) {
	inst := NewAttributeInstance(AttributeDefinition{Name: "generic.movementSpeed", Min: 0, Max: 1024}, 0.1)
	before := inst.Value()

	id := uuid.New()
	inst.AddModifier(AttributeModifier{ID: id, Amount: 0.3, Operation: OpAddPercent})
	if got := inst.Value(); got == before {
		t.Fatalf("expected the modifier to change the value away from %v, got %v", before, got)
	}

	inst.RemoveModifier(id)
	if got := inst.Value(); got != before {
		t.Fatalf("expected removal to restore %v, got %v", before, got)
	}
}

// TestAttributeInstanceRepeatedReadsAreStable covers spec.md §8 testable
// property 7's second clause: two successive reads without mutation
// return equal results.
func TestAttributeInstanceRepeatedReadsAreStable(t *testing.T) {
	inst := NewAttributeInstance(MaxHealth, 20)
	inst.AddModifier(AttributeModifier{ID: uuid.New(), Amount: 5, Operation: OpAdd})

	first := inst.Value()
	second := inst.Value()
	if first != second {
		t.Fatalf("expected stable reads, got %v then %v", first, second)
	}
}

func TestAttributeMapLookup(t *testing.T) {
	m := NewAttributeMap()
	m.Register(NewAttributeInstance(MaxHealth, 20))

	if got := m.Value(MaxHealth.Name); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := m.Value("unregistered"); got != 0 {
		t.Fatalf("expected 0 for unregistered attribute, got %v", got)
	}
}
