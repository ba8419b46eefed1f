package tileentity

import "github.com/sablecore/voxelserver/server/block/cube"

// Furnace holds smelting state: its 3-slot inventory (input, fuel,
// output), remaining burn time for the current fuel item, the total burn
// time that fuel started with (for gauge rendering), and smelt progress.
type Furnace struct {
	Base
	Inventory *Inventory

	BurnTime      int16
	CurrentItemBurnTime int16
	CookTime      int16
}

func NewFurnace(pos cube.Pos) *Furnace {
	return &Furnace{Base: NewBase(pos), Inventory: NewInventory(3)}
}

func (f *Furnace) TypeID() string { return TypeFurnace }

// Lit reports whether the furnace is currently consuming fuel.
func (f *Furnace) Lit() bool { return f.BurnTime > 0 }

// Chest holds a 27-slot inventory. Large chests (two adjacent single
// chests) are not modelled as one unit; each Chest only knows its own 27
// slots.
type Chest struct {
	Base
	Inventory *Inventory
}

func NewChest(pos cube.Pos) *Chest {
	return &Chest{Base: NewBase(pos), Inventory: NewInventory(27)}
}

func (c *Chest) TypeID() string { return TypeChest }

// Sign holds four lines of raw (unparsed) text.
type Sign struct {
	Base
	Lines [4]string
}

func NewSign(pos cube.Pos) *Sign { return &Sign{Base: NewBase(pos)} }

func (s *Sign) TypeID() string { return TypeSign }

// Hopper holds a 5-slot inventory and a transfer cooldown counter. It
// stores nothing about the containers it pulls from or pushes to (hoppers
// hold no back-pointer, per the acyclic-ownership rule).
type Hopper struct {
	Base
	Inventory      *Inventory
	TransferCooldown int32
}

func NewHopper(pos cube.Pos) *Hopper {
	return &Hopper{Base: NewBase(pos), Inventory: NewInventory(5)}
}

func (h *Hopper) TypeID() string { return TypeHopper }

// PistonMoving is installed on the block a piston head just displaced,
// per spec.md §4.4 ("tagging the piston-extension tile entity on the
// moving head"). It records the stored (id, meta) of the block being
// animated, the direction of travel, whether this is an extend or
// retract, and progress in [0,1].
type PistonMoving struct {
	Base
	StoredID   uint16
	StoredMeta byte
	Facing     cube.Face
	Extending  bool
	Progress   float64
}

func NewPistonMoving(pos cube.Pos, id uint16, meta byte, facing cube.Face, extending bool) *PistonMoving {
	return &PistonMoving{Base: NewBase(pos), StoredID: id, StoredMeta: meta, Facing: facing, Extending: extending}
}

func (p *PistonMoving) TypeID() string { return TypePistonMoving }

// MobSpawner holds the entity type it spawns and its countdown/range
// fields, mirroring the reference spawner's tick contract.
type MobSpawner struct {
	Base
	EntityID       string
	Delay          int16
	MinSpawnDelay  int16
	MaxSpawnDelay  int16
	SpawnCount     int16
	MaxNearbyEntities int16
	RequiredPlayerRange int16
	SpawnRange     int16
}

func NewMobSpawner(pos cube.Pos, entityID string) *MobSpawner {
	return &MobSpawner{
		Base: NewBase(pos), EntityID: entityID,
		Delay: 20, MinSpawnDelay: 200, MaxSpawnDelay: 800,
		SpawnCount: 4, MaxNearbyEntities: 6,
		RequiredPlayerRange: 16, SpawnRange: 4,
	}
}

func (m *MobSpawner) TypeID() string { return TypeMobSpawner }

// CommandBlock holds its stored command line, the last execution's
// success metric, and whether it should broadcast output to nearby
// players on activation.
type CommandBlock struct {
	Base
	Command      string
	SuccessCount int32
	TrackOutput  bool
	LastOutput   string
}

func NewCommandBlock(pos cube.Pos) *CommandBlock { return &CommandBlock{Base: NewBase(pos), TrackOutput: true} }

func (c *CommandBlock) TypeID() string { return TypeCommandBlock }

// Beacon holds its confirmed pyramid tier (0-4) and the two selected
// status-effect ids (primary/secondary, secondary only unlocked at tier
// 4), per the original beacon's effect-selection UI contract.
type Beacon struct {
	Base
	Levels    int
	Primary   int16
	Secondary int16
}

func NewBeacon(pos cube.Pos) *Beacon { return &Beacon{Base: NewBase(pos)} }

func (b *Beacon) TypeID() string { return TypeBeacon }

// Skull holds the skull's rendered type (0-5: skeleton, wither skeleton,
// zombie, player, creeper, dragon), its rotation nibble, and the owning
// player name for player-head variants.
type Skull struct {
	Base
	SkullType byte
	Rotation  byte
	OwnerName string
}

func NewSkull(pos cube.Pos) *Skull { return &Skull{Base: NewBase(pos)} }

func (s *Skull) TypeID() string { return TypeSkull }

// FlowerPot holds the contained item id/metadata, or the zero value if
// empty.
type FlowerPot struct {
	Base
	ItemID   int16
	ItemData int16
}

func NewFlowerPot(pos cube.Pos) *FlowerPot { return &FlowerPot{Base: NewBase(pos)} }

func (f *FlowerPot) TypeID() string { return TypeFlowerPot }

// Comparator holds the output strength latched at its last update.
type Comparator struct {
	Base
	OutputSignal int32
}

func NewComparator(pos cube.Pos) *Comparator { return &Comparator{Base: NewBase(pos)} }

func (c *Comparator) TypeID() string { return TypeComparator }

// BrewingStand holds its 4-slot inventory (3 potion slots + 1 ingredient
// slot) and remaining brew time.
type BrewingStand struct {
	Base
	Inventory *Inventory
	BrewTime  int32
}

func NewBrewingStand(pos cube.Pos) *BrewingStand {
	return &BrewingStand{Base: NewBase(pos), Inventory: NewInventory(4)}
}

func (b *BrewingStand) TypeID() string { return TypeBrewingStand }

// NoteBlock holds the current pitch (0-24).
type NoteBlock struct {
	Base
	Note byte
}

func NewNoteBlock(pos cube.Pos) *NoteBlock { return &NoteBlock{Base: NewBase(pos)} }

func (n *NoteBlock) TypeID() string { return TypeNoteBlock }

// Jukebox holds the currently inserted record's item id, or 0 if empty.
type Jukebox struct {
	Base
	Record int16
}

func NewJukebox(pos cube.Pos) *Jukebox { return &Jukebox{Base: NewBase(pos)} }

func (j *Jukebox) TypeID() string { return TypeJukebox }

// DaylightDetector has no persisted state beyond its position and no
// tick logic of its own.
type DaylightDetector struct {
	Base
}

func NewDaylightDetector(pos cube.Pos) *DaylightDetector { return &DaylightDetector{Base: NewBase(pos)} }

func (d *DaylightDetector) TypeID() string { return TypeDaylightDetector }

// EndPortal has no persisted state; its presence alone drives teleport
// and rendering logic.
type EndPortal struct {
	Base
}

func NewEndPortal(pos cube.Pos) *EndPortal { return &EndPortal{Base: NewBase(pos)} }

func (e *EndPortal) TypeID() string { return TypeEndPortal }

// EnchantTable holds the custom name set via an anvil, if any (affects
// the reference client's GUI title only).
type EnchantTable struct {
	Base
	CustomName string
}

func NewEnchantTable(pos cube.Pos) *EnchantTable { return &EnchantTable{Base: NewBase(pos)} }

func (e *EnchantTable) TypeID() string { return TypeEnchantTable }

// EnderChest has no persisted inventory of its own; no slots are stored
// for it, in the block or elsewhere.
type EnderChest struct {
	Base
}

func NewEnderChest(pos cube.Pos) *EnderChest { return &EnderChest{Base: NewBase(pos)} }

func (e *EnderChest) TypeID() string { return TypeEnderChest }

// Dropper holds a 9-slot inventory.
type Dropper struct {
	Base
	Inventory *Inventory
}

func NewDropper(pos cube.Pos) *Dropper { return &Dropper{Base: NewBase(pos), Inventory: NewInventory(9)} }

func (d *Dropper) TypeID() string { return TypeDropper }

// Dispenser holds a 9-slot inventory, identical in shape to Dropper but
// distinguished by its TypeID and dispense-vs-drop placement behaviour
// at the world layer.
type Dispenser struct {
	Base
	Inventory *Inventory
}

func NewDispenser(pos cube.Pos) *Dispenser { return &Dispenser{Base: NewBase(pos), Inventory: NewInventory(9)} }

func (d *Dispenser) TypeID() string { return TypeDispenser }
