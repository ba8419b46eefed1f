package entity

// DamageSource classifies how damage was dealt, matching the death-
// message keys the combat tracker derives in spec.md §4.6
// ("death.attack.<type>", "death.fell.*").
type DamageSource struct {
	Type string // e.g. "mob", "player", "fall", "outOfWorld", "lava", "fire", "drown", "explosion", "cactus", "anvil", "generic"

	// Attacker, if non-empty, is the display name credited for the kill
	// (or the preceding push, for fall deaths).
	Attacker string
	// AttackerID identifies the attacking entity, when it is a living
	// entity rather than an environmental cause.
	AttackerID    uint32
	AttackerIsSet bool
	AttackerIsPlayer bool

	// LocationContext distinguishes an accidental-fall cause, per
	// spec.md §4.6 ("", "ladder", "vines", "water").
	LocationContext string

	// FallDistance is only meaningful when Type is "fall" or
	// "outOfWorld".
	FallDistance float64
}

// Named damage source constructors mirroring the reference game's
// DamageSource factory methods.

func FallDamage(distance float64, context string) DamageSource {
	return DamageSource{Type: "fall", FallDistance: distance, LocationContext: context}
}

func MobDamage(attackerID uint32, attackerName string) DamageSource {
	return DamageSource{Type: "mob", Attacker: attackerName, AttackerID: attackerID, AttackerIsSet: true}
}

func PlayerDamage(attackerID uint32, attackerName string) DamageSource {
	return DamageSource{Type: "player", Attacker: attackerName, AttackerID: attackerID, AttackerIsSet: true, AttackerIsPlayer: true}
}

func EnvironmentalDamage(kind string) DamageSource { return DamageSource{Type: kind} }

func ExplosionDamage(attackerID uint32, attackerName string) DamageSource {
	return DamageSource{Type: "explosion", Attacker: attackerName, AttackerID: attackerID, AttackerIsSet: attackerName != ""}
}
