package entity

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Type tags an entity's kind; the concrete behaviour table (movement AI,
// rendering metadata) lives in server/data's entity-list table, keyed by
// this same name.
type Type struct {
	Name   string
	Width  float64
	Height float64
}

// Well-known entity types; IsPlayer compares against TypePlayer.
var (
	TypePlayer  = Type{Name: "player", Width: 0.6, Height: 1.8}
	TypeZombie  = Type{Name: "zombie", Width: 0.6, Height: 1.95}
	TypeSkeleton = Type{Name: "skeleton", Width: 0.6, Height: 1.99}
)

// Entity is the shared state every in-world object carries, per spec.md
// §3: an id, position/rotation, an AABB, bookkeeping floats, a type tag,
// and (for attribute-bearing entities) an AttributeMap.
type Entity struct {
	ID uint32

	Type Type

	X, Y, Z       float64
	Yaw, Pitch    float64

	Health          float64
	FallDistance    float64
	FireTicks       int
	PortalCooldown  int

	Attributes *AttributeMap

	Dead bool
}

// NewEntity returns an Entity of the given type and id with zero
// attributes registered; callers add whichever attributes their type
// needs via Attributes.Register.
func NewEntity(id uint32, t Type) *Entity {
	return &Entity{ID: id, Type: t, Attributes: NewAttributeMap()}
}

// Position returns the entity's (x,y,z) as a vector.
func (e *Entity) Position() mgl64.Vec3 { return mgl64.Vec3{e.X, e.Y, e.Z} }

// EyePosition approximates the eye height as 90% of the type's bounding
// height above the feet position, matching the reference game's
// per-type eye-height convention closely enough for the explosion
// resolver's line-of-sight checks.
func (e *Entity) EyePosition() mgl64.Vec3 {
	return mgl64.Vec3{e.X, e.Y + e.Type.Height*0.9, e.Z}
}

// AABB returns the entity's axis-aligned bounding box centred on its feet
// position, sized by its type.
func (e *Entity) AABB() (min, max mgl64.Vec3) {
	hw := e.Type.Width / 2
	min = mgl64.Vec3{e.X - hw, e.Y, e.Z - hw}
	max = mgl64.Vec3{e.X + hw, e.Y + e.Type.Height, e.Z + hw}
	return
}

// IsPlayer reports whether this entity is a player, satisfying
// server/world.ExplodableEntity.
func (e *Entity) IsPlayer() bool { return e.Type == TypePlayer }

// BlastProtectionFactor returns the fraction of knockback an equipped
// blast-protection enchantment would cancel; entities without armour
// state wired in take none.
func (e *Entity) BlastProtectionFactor() float64 { return 0 }

// MaxHealthValue reads the maxHealth attribute, or 20 (the vanilla
// default) if unregistered.
func (e *Entity) MaxHealthValue() float64 {
	if inst := e.Attributes.Get(MaxHealth.Name); inst != nil {
		return inst.Value()
	}
	return 20
}

// ApplyDamage subtracts amount from Health, clamping at zero and setting
// Dead once health reaches it.
func (e *Entity) ApplyDamage(amount float64) {
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Dead = true
	}
}
