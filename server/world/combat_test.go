package world

import "testing"

func TestCombatTrackerDeathMessageFellFinish(t *testing.T) {
	c := &CombatTracker{}
	c.RecordDamage(0, combatEntry{damageType: "player", damageAmount: 2, attackerName: "Alice", attackerIsPlayer: true})
	c.RecordDamage(5, combatEntry{damageType: "fall", damageAmount: 20, fallDistance: 10, attackerName: "Alice", attackerIsPlayer: true})

	key, attacker := c.DeathMessage()
	if key != "death.fell.finish" {
		t.Fatalf("key = %q, want death.fell.finish", key)
	}
	if attacker != "Alice" {
		t.Fatalf("attacker = %q, want Alice", attacker)
	}
}

func TestCombatTrackerDeathMessageAssist(t *testing.T) {
	c := &CombatTracker{}
	c.RecordDamage(0, combatEntry{damageType: "player", damageAmount: 2, attackerName: "Bob", attackerIsPlayer: true})
	c.RecordDamage(5, combatEntry{damageType: "fall", damageAmount: 20, fallDistance: 10, attackerName: "Alice", attackerIsPlayer: true})

	key, attacker := c.DeathMessage()
	if key != "death.fell.assist" {
		t.Fatalf("key = %q, want death.fell.assist", key)
	}
	if attacker != "Bob" {
		t.Fatalf("attacker = %q, want Bob", attacker)
	}
}

func TestCombatTrackerDeathMessagePlainAttack(t *testing.T) {
	c := &CombatTracker{}
	c.RecordDamage(0, combatEntry{damageType: "mob", damageAmount: 6, attackerName: "Zombie"})

	key, attacker := c.DeathMessage()
	if key != "death.attack.mob" {
		t.Fatalf("key = %q, want death.attack.mob", key)
	}
	if attacker != "Zombie" {
		t.Fatalf("attacker = %q, want Zombie", attacker)
	}
}

func TestCombatTrackerDeathMessageGeneric(t *testing.T) {
	c := &CombatTracker{}
	key, _ := c.DeathMessage()
	if key != "death.attack.generic" {
		t.Fatalf("key = %q, want death.attack.generic", key)
	}
}

func TestCombatTrackerStrongestAttackerPlayerThreshold(t *testing.T) {
	c := &CombatTracker{}
	c.RecordDamage(0, combatEntry{damageType: "mob", damageAmount: 9, attackerName: "Zombie"})
	c.RecordDamage(1, combatEntry{damageType: "player", damageAmount: 3, attackerName: "Alice", attackerIsPlayer: true})

	name, isPlayer, ok := c.strongestAttacker()
	if !ok || !isPlayer || name != "Alice" {
		t.Fatalf("strongestAttacker = (%q, %v, %v), want (Alice, true, true)", name, isPlayer, ok)
	}
}

func TestCombatTrackerStrongestAttackerFallsBackToLiving(t *testing.T) {
	c := &CombatTracker{}
	c.RecordDamage(0, combatEntry{damageType: "mob", damageAmount: 10, attackerName: "Zombie"})
	c.RecordDamage(1, combatEntry{damageType: "player", damageAmount: 1, attackerName: "Alice", attackerIsPlayer: true})

	name, isPlayer, ok := c.strongestAttacker()
	if !ok || isPlayer || name != "Zombie" {
		t.Fatalf("strongestAttacker = (%q, %v, %v), want (Zombie, false, true)", name, isPlayer, ok)
	}
}

// TestCombatTrackerMonotoneDecay matches testable property 9: after 300
// ticks without further damage, entries is empty and inCombat is false.
func TestCombatTrackerMonotoneDecay(t *testing.T) {
	c := &CombatTracker{}
	c.RecordDamage(0, combatEntry{damageType: "player", damageAmount: 2, attackerName: "Alice", attackerIsPlayer: true})
	if !c.InCombat() {
		t.Fatalf("expected InCombat after a living attacker's hit")
	}

	c.Decay(300)
	if c.Empty() {
		t.Fatalf("expected entries to survive at exactly the 300-tick boundary")
	}

	c.Decay(301)
	if !c.Empty() || c.InCombat() {
		t.Fatalf("expected entries empty and InCombat false past the 300-tick window")
	}
}

func TestCombatTrackerOutOfCombatWindowIsShorter(t *testing.T) {
	c := &CombatTracker{}
	c.RecordDamage(0, combatEntry{damageType: "fall", damageAmount: 2, fallDistance: 1})
	if c.InCombat() {
		t.Fatalf("a fall with no living attacker should not start combat")
	}

	c.Decay(100)
	if c.Empty() {
		t.Fatalf("expected entries to survive at exactly the 100-tick boundary")
	}

	c.Decay(101)
	if !c.Empty() {
		t.Fatalf("expected entries cleared past the 100-tick out-of-combat window")
	}
}
