// Package tileentity implements the per-block extra-state objects chunks
// keep alongside their block grid: furnaces, chests, signs, hoppers, and
// the other tagged variants enumerated in spec.md §3 ("up to 20 known
// type tags"). The package imports chunk only to register its NBT codecs
// and never imports world; chunk.Column refers back to tile entities only
// through the structural chunk.TileEntity interface, which keeps the
// dependency graph acyclic
// (spec.md §9, "Cyclic references... break them by storing only
// positions/ids and re-resolving through the owning structure").
package tileentity

import "github.com/sablecore/voxelserver/server/block/cube"

// Base carries the fields common to every tile entity: its fixed position
// and an invalidation flag set once the owning block is removed. Concrete
// tile entity types embed Base.
type Base struct {
	pos     cube.Pos
	invalid bool
}

// NewBase returns a Base anchored at pos.
func NewBase(pos cube.Pos) Base { return Base{pos: pos} }

// Pos returns the tile entity's fixed block position.
func (b *Base) Pos() cube.Pos { return b.pos }

// Invalid reports whether the tile entity has been detached from its
// block and should be swept from the owning column.
func (b *Base) Invalid() bool { return b.invalid }

// Invalidate marks the tile entity for removal on the next sweep.
func (b *Base) Invalidate() { b.invalid = true }

// TypeID values match the Java "id" string stored in each tile entity's
// NBT compound, per spec.md §6's persistence schema.
const (
	TypeFurnace          = "Furnace"
	TypeChest            = "Chest"
	TypeSign             = "Sign"
	TypeHopper           = "Hopper"
	TypePistonMoving     = "Piston"
	TypeMobSpawner       = "MobSpawner"
	TypeCommandBlock     = "Control"
	TypeBeacon           = "Beacon"
	TypeSkull            = "Skull"
	TypeFlowerPot        = "FlowerPot"
	TypeComparator       = "Comparator"
	TypeBrewingStand     = "Cauldron"
	TypeNoteBlock        = "Music"
	TypeJukebox          = "RecordPlayer"
	TypeDaylightDetector = "DLDetector"
	TypeEndPortal        = "Airportal"
	TypeEnchantTable     = "EnchantTable"
	TypeEnderChest       = "EnderChest"
	TypeDropper          = "Dropper"
	TypeDispenser        = "Trap"
)
