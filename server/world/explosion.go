package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/block/cube"
)

// explosionGridSize is the side length of the cube the ray-cast shell is
// drawn over, per spec.md §4.5.
const explosionGridSize = 16

// ExplodableEntity is the minimal view the entity pass needs of a nearby
// entity, satisfied by the entity package's concrete type without this
// package importing it (spec.md §9's acyclic-ownership discipline).
type ExplodableEntity interface {
	EyePosition() mgl64.Vec3
	AABB() (min, max mgl64.Vec3)
	IsPlayer() bool
	BlastProtectionFactor() float64
}

// ExplosionResult carries the destroyed-block set and per-entity effects
// of one resolved explosion.
type ExplosionResult struct {
	Destroyed []cube.Pos
	Effects   []EntityBlastEffect
}

// EntityBlastEffect is the damage and knockback one entity receives from
// an explosion, per spec.md §4.5's entity pass.
type EntityBlastEffect struct {
	Entity      ExplodableEntity
	Damage      float64
	Knockback   mgl64.Vec3
	UncappedPush mgl64.Vec3 // players only; zero value for non-players
}

// Explosion describes the inputs to Resolve, per spec.md §4.5.
type Explosion struct {
	Origin    mgl64.Vec3
	Size      float64
	IsFlaming bool
	IsSmoking bool

	// Rng supplies [0,1) uniform draws for the strength jitter and the
	// item-drop/fire probability checks; Rng must be provided by the
	// caller so the resolver stays a pure function of its inputs otherwise.
	Rng func() float64

	// BlockDensity computes the caller's line-of-sight exposure fraction
	// for the entity pass (spec.md §4.5: "blockDensity(origin, entity.AABB)
	// in [0,1] (caller-supplied)").
	BlockDensity func(origin mgl64.Vec3, aabbMin, aabbMax mgl64.Vec3) float64
}

// Resolve runs the ray-cast destruction pass and the entity damage pass,
// per spec.md §4.5.
func (e Explosion) Resolve(tx *Tx, nearby []ExplodableEntity) ExplosionResult {
	destroyed := e.rayCast(tx)
	effects := e.entityPass(nearby)

	if e.IsSmoking {
		for _, pos := range destroyed {
			id, _ := tx.Block(pos)
			if id == block.Air {
				continue
			}
			tx.SetBlock(pos, block.Air, 0)
			if e.Size > 0 && e.Rng() < 1/e.Size {
				tx.AddBlockEvent(pos, id, blockEventItemDrop, 0)
			}
		}
	}
	if e.IsFlaming {
		for _, pos := range destroyed {
			id, _ := tx.Block(pos)
			if id != block.Air {
				continue
			}
			belowID, _ := tx.Block(pos.Side(cube.FaceDown))
			if !block.ByID(belowID).Solid {
				continue
			}
			if e.Rng() < 1.0/3 {
				tx.SetBlock(pos, fireID, 0)
			}
		}
	}

	return ExplosionResult{Destroyed: destroyed, Effects: effects}
}

// blockEventItemDrop is a synthetic event id the behaviour table's block
// event handlers recognise to spawn a loose item drop; the concrete item
// stack is resolved by the block's own event handler, not here.
const blockEventItemDrop = -1

// fireID is the registry id for fire, wired once at startup by
// RegisterFireID so explosion.go never hardcodes a magic block id.
var fireID uint16

// RegisterFireID wires the fire block id the flaming-explosion pass
// places.
func RegisterFireID(id uint16) { fireID = id }

// rayCast walks the 1352 shell directions of a 16-cube centred on the
// explosion origin, per spec.md §4.5.
func (e Explosion) rayCast(tx *Tx) []cube.Pos {
	seen := map[cube.Pos]struct{}{}
	var out []cube.Pos

	for i := 0; i < explosionGridSize; i++ {
		for j := 0; j < explosionGridSize; j++ {
			for k := 0; k < explosionGridSize; k++ {
				if i != 0 && i != explosionGridSize-1 && j != 0 && j != explosionGridSize-1 && k != 0 && k != explosionGridSize-1 {
					continue
				}
				dir := mgl64.Vec3{
					float64(i)/15*2 - 1,
					float64(j)/15*2 - 1,
					float64(k)/15*2 - 1,
				}
				if dir.Len() == 0 {
					continue
				}
				dir = dir.Normalize()

				pos := e.Origin
				strength := e.Size * (0.7 + e.Rng()*0.6)
				for strength > 0 {
					bp := cube.Pos{int(math.Floor(pos.X())), int(math.Floor(pos.Y())), int(math.Floor(pos.Z()))}
					id, _ := tx.Block(bp)
					if id != block.Air {
						strength -= (block.ByID(id).Resistance + 0.3) * 0.3
						if strength > 0 {
							if _, ok := seen[bp]; !ok {
								seen[bp] = struct{}{}
								out = append(out, bp)
							}
						}
					} else if strength > 0 {
						if _, ok := seen[bp]; !ok {
							seen[bp] = struct{}{}
							out = append(out, bp)
						}
					}
					strength -= 0.225
					pos = pos.Add(dir.Mul(0.3))
				}
			}
		}
	}
	return out
}

// entityPass implements spec.md §4.5's entity damage/knockback formula.
func (e Explosion) entityPass(nearby []ExplodableEntity) []EntityBlastEffect {
	var effects []EntityBlastEffect
	twoSize := 2 * e.Size
	for _, ent := range nearby {
		eye := ent.EyePosition()
		delta := eye.Sub(e.Origin)
		dist := delta.Len()
		if dist == 0 {
			continue
		}
		r := dist / twoSize
		if r >= 1 {
			continue
		}
		min, max := ent.AABB()
		exposure := e.BlockDensity(e.Origin, min, max)

		impact := (1 - r) * exposure
		damage := ((impact*impact+impact)/2)*8*twoSize + 1

		dirHat := delta.Normalize()
		knockback := dirHat.Mul(impact * (1 - ent.BlastProtectionFactor()))

		eff := EntityBlastEffect{Entity: ent, Damage: damage, Knockback: knockback}
		if ent.IsPlayer() {
			eff.UncappedPush = dirHat.Mul(impact)
		}
		effects = append(effects, eff)
	}
	return effects
}
