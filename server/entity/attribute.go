// Package entity implements the Entity/AttributeMap/AttributeInstance
// model of spec.md §3, the DamageSource taxonomy feeding the combat
// tracker (spec.md §4.6) and the minimal view the explosion resolver
// needs of a nearby entity (server/world.ExplodableEntity).
package entity

import "github.com/google/uuid"

// ModifierOp is the operation an AttributeModifier applies, per spec.md
// §3's three-phase formula.
type ModifierOp int

const (
	// OpAdd adds amount directly to the running base.
	OpAdd ModifierOp = iota
	// OpAddPercent adds base*amount, all such modifiers summed before
	// applying.
	OpAddPercent
	// OpMultiplyPercent multiplies by (1+amount), each applied
	// independently.
	OpMultiplyPercent
)

// AttributeModifier is one named, UUID-keyed adjustment to an
// AttributeInstance, per spec.md §3 ("(uuid, name, amount, operation,
// saved?)").
type AttributeModifier struct {
	ID        uuid.UUID
	Name      string
	Amount    float64
	Operation ModifierOp
	Saved     bool
}

// AttributeDefinition names an attribute and bounds its final value.
type AttributeDefinition struct {
	Name     string
	Min, Max float64
}

// Well-known attribute definitions, per spec.md §3.
var (
	MaxHealth          = AttributeDefinition{Name: "generic.maxHealth", Min: 0, Max: 1024}
	FollowRange        = AttributeDefinition{Name: "generic.followRange", Min: 0, Max: 2048}
	KnockbackResistance = AttributeDefinition{Name: "generic.knockbackResistance", Min: 0, Max: 1}
	MovementSpeed      = AttributeDefinition{Name: "generic.movementSpeed", Min: 0, Max: 1024}
	AttackDamage       = AttributeDefinition{Name: "generic.attackDamage", Min: 0, Max: 2048}
)

// AttributeInstance holds one attribute's base value and modifier list,
// per spec.md §3. Applying a modifier whose uuid already exists replaces
// it. The computed value is cached and recomputed lazily.
type AttributeInstance struct {
	Definition AttributeDefinition
	Base       float64

	modifiers map[uuid.UUID]AttributeModifier
	cached    float64
	dirty     bool
}

// NewAttributeInstance returns an instance at its definition's base
// value with no modifiers.
func NewAttributeInstance(def AttributeDefinition, base float64) *AttributeInstance {
	return &AttributeInstance{Definition: def, Base: base, modifiers: map[uuid.UUID]AttributeModifier{}, dirty: true}
}

// AddModifier installs or replaces (by uuid) a modifier and invalidates
// the cache.
func (a *AttributeInstance) AddModifier(m AttributeModifier) {
	a.modifiers[m.ID] = m
	a.dirty = true
}

// RemoveModifier removes a modifier by uuid and invalidates the cache.
func (a *AttributeInstance) RemoveModifier(id uuid.UUID) {
	delete(a.modifiers, id)
	a.dirty = true
}

// Value returns the final attribute value, per spec.md §3's three-phase
// formula: base + sum(op0) snapshotted, times (1 + sum(op1)), times
// product(1+op2), clamped to [min,max].
func (a *AttributeInstance) Value() float64 {
	if !a.dirty {
		return a.cached
	}
	v := a.Base
	for _, m := range a.modifiers {
		if m.Operation == OpAdd {
			v += m.Amount
		}
	}
	base := v
	var pctSum float64
	for _, m := range a.modifiers {
		if m.Operation == OpAddPercent {
			pctSum += m.Amount
		}
	}
	v = base + base*pctSum
	for _, m := range a.modifiers {
		if m.Operation == OpMultiplyPercent {
			v *= 1 + m.Amount
		}
	}
	if v < a.Definition.Min {
		v = a.Definition.Min
	}
	if v > a.Definition.Max {
		v = a.Definition.Max
	}
	a.cached = v
	a.dirty = false
	return v
}

// AttributeMap is an entity's attribute collection, keyed by attribute
// name per spec.md §3.
type AttributeMap struct {
	instances map[string]*AttributeInstance
}

// NewAttributeMap returns an empty map.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{instances: map[string]*AttributeInstance{}}
}

// Register installs an instance under its definition's name.
func (m *AttributeMap) Register(inst *AttributeInstance) {
	m.instances[inst.Definition.Name] = inst
}

// Get returns the named instance, or nil if unregistered.
func (m *AttributeMap) Get(name string) *AttributeInstance { return m.instances[name] }

// Value is a convenience for Get(name).Value(), returning 0 for an
// unregistered attribute.
func (m *AttributeMap) Value(name string) float64 {
	if inst := m.instances[name]; inst != nil {
		return inst.Value()
	}
	return 0
}
