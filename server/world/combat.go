package world

// combatEntry records one damage event against a tracked entity, per
// spec.md §4.6.
type combatEntry struct {
	damageType         string
	tick               int64
	healthBeforeDamage float64
	damageAmount       float64
	locationContext    string // "", "ladder", "vines", "water"
	fallDistance       float64
	attackerID         uint64
	attackerIDSet      bool
	attackerName       string
	attackerIsPlayer   bool
}

// CombatTracker accumulates recent damage entries for one living entity
// and derives the eventual death message, per spec.md §4.6.
type CombatTracker struct {
	entries []combatEntry

	inCombat     bool
	lastDamageTick int64
	dead         bool
}

// clearIfStale resets the tracker's entries once the staleness window has
// elapsed: 300 ticks in combat, 100 otherwise, or immediately on death.
func (c *CombatTracker) clearIfStale(now int64) {
	if c.dead {
		c.entries = nil
		c.inCombat = false
		return
	}
	window := int64(100)
	if c.inCombat {
		window = 300
	}
	if len(c.entries) > 0 && now-c.lastDamageTick > window {
		c.entries = nil
		c.inCombat = false
	}
}

// RecordDamage appends one damage entry, clearing stale state first and
// starting combat if the attacker is living.
func (c *CombatTracker) RecordDamage(now int64, e combatEntry) {
	c.clearIfStale(now)
	e.tick = now
	c.entries = append(c.entries, e)
	c.lastDamageTick = now
	if (e.attackerIDSet || e.attackerName != "") && !c.inCombat {
		c.inCombat = true
	}
}

// MarkDead flags the tracked entity as dead, clearing its state on the
// next decay pass.
func (c *CombatTracker) MarkDead() { c.dead = true }

// Decay clears stale combat state for one tick boundary. Called once per
// world tick for every tracker, per spec.md §5's "combat tracker decay".
func (c *CombatTracker) Decay(now int64) { c.clearIfStale(now) }

// Empty reports whether the tracker currently holds no entries.
func (c *CombatTracker) Empty() bool { return len(c.entries) == 0 }

// InCombat reports whether the tracker is in its wider 300-tick window.
func (c *CombatTracker) InCombat() bool { return c.inCombat }

// strongestAttacker implements spec.md §4.6's strongest-attacker rule:
// track best-damage-by-player and best-damage-by-any-living separately,
// returning the player if its damage is at least a third of the best
// living damage, else the best living attacker.
func (c *CombatTracker) strongestAttacker() (name string, isPlayer, ok bool) {
	var bestPlayerDamage, bestLivingDamage float64
	var bestPlayerName, bestLivingName string
	var havePlayer, haveLiving bool

	for _, e := range c.entries {
		if e.attackerName == "" {
			continue
		}
		haveLiving = true
		if e.damageAmount > bestLivingDamage {
			bestLivingDamage = e.damageAmount
			bestLivingName = e.attackerName
		}
		if e.attackerIsPlayer {
			havePlayer = true
			if e.damageAmount > bestPlayerDamage {
				bestPlayerDamage = e.damageAmount
				bestPlayerName = e.attackerName
			}
		}
	}
	if !haveLiving {
		return "", false, false
	}
	if havePlayer && bestPlayerDamage >= bestLivingDamage/3 {
		return bestPlayerName, true, true
	}
	return bestLivingName, false, true
}

// DeathMessage derives the death-message key and attacker name per
// spec.md §4.6's fall-cause scan and matching scenario S6.
func (c *CombatTracker) DeathMessage() (key, attacker string) {
	if len(c.entries) == 0 {
		return "death.attack.generic", ""
	}
	last := c.entries[len(c.entries)-1]

	// Find the entry with the greatest fallDistance > 5 among fall/
	// outOfWorld entries; the fall cause is whatever immediately
	// preceded it.
	fallEntryIdx := -1
	var greatestFall float64
	for i, e := range c.entries {
		if e.fallDistance <= 5 {
			continue
		}
		if (e.damageType == "fall" || e.damageType == "outOfWorld") && e.fallDistance > greatestFall {
			greatestFall = e.fallDistance
			fallEntryIdx = i
		}
	}

	var fallCause *combatEntry
	if fallEntryIdx > 0 {
		fallCause = &c.entries[fallEntryIdx-1]
	}

	if fallCause != nil && last.damageType == "fall" {
		switch {
		case fallCause.attackerName != "" && fallCause.attackerName != last.attackerName:
			return "death.fell.assist", fallCause.attackerName
		case last.attackerName != "":
			return "death.fell.finish", last.attackerName
		case fallCause.attackerName != "":
			return "death.fell.killer", fallCause.attackerName
		default:
			ctx := fallCause.locationContext
			if ctx == "" {
				ctx = "generic"
			}
			return "death.fell.accident." + ctx, ""
		}
	}

	return "death.attack." + last.damageType, last.attackerName
}

// combatTrackerFor returns (creating if absent) the tracker for entity id.
func (w *World) combatTrackerFor(id uint64) *CombatTracker {
	w.combatMu.Lock()
	defer w.combatMu.Unlock()
	t, ok := w.combat[id]
	if !ok {
		t = &CombatTracker{}
		w.combat[id] = t
	}
	return t
}

// decayCombatTrackers runs the per-tick combat-tracker decay pass and
// forgets any tracker left empty and out of combat, per spec.md §9's
// testable property that empty+inCombat==false trackers need not persist.
func (w *World) decayCombatTrackers() {
	w.combatMu.Lock()
	defer w.combatMu.Unlock()
	for id, t := range w.combat {
		t.Decay(w.worldTime)
		if t.Empty() && !t.InCombat() {
			delete(w.combat, id)
		}
	}
}
