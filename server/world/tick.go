package world

import (
	"math"

	"github.com/sablecore/voxelserver/server/block/cube"
	"github.com/sablecore/voxelserver/server/world/chunk"
	"github.com/sablecore/voxelserver/server/world/light"
)

// celestialAngle returns the sun/moon angle in [0,1) for the current
// world time, one full cycle per 24000 ticks, matching the reference
// day/night cycle.
func (w *World) celestialAngle() float64 {
	return float64(w.worldTime%24000) / 24000
}

// skyTimeSubtraction implements spec.md §4.3's sky-time subtraction
// table: "floor(11 * clamp(1 - (2*cos(2*pi*celestialAngle) + 0.5), 0, 1))".
func skyTimeSubtraction(celestialAngle float64) byte {
	v := 1 - (2*math.Cos(2*math.Pi*celestialAngle) + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(math.Floor(11 * v))
}

// markLightDirty queues pos for the next tick's light catch-up phase.
// Cross-chunk light propagation is deferred here rather than run inline
// in SetBlock, per spec.md §5: "Cross-chunk light updates are deferred to
// the catch-up phase to ensure neighborhood completeness."
func (w *World) markLightDirty(pos cube.Pos) {
	w.dirtyLight = append(w.dirtyLight, pos)
}

// Tick advances the world by one tick, running the pipeline in the exact
// order spec.md §5 mandates: weather -> entity removal -> scheduled-tick
// snapshot -> scheduled-tick execution -> block events -> entity updates
// -> random ticks -> light catch-up -> save sweep.
func (w *World) Tick() {
	w.Exec(func(tx *Tx) {
		w.currentTick++
		w.worldTime++

		w.tickWeather()
		// Entity removal and entity updates are driven by the entity set
		// owner's own per-tick sweep; the world tick only reserves their
		// ordering slot here, since this package holds no entity list of
		// its own (spec.md §9: entities resolved via position, not owned
		// by chunk or world directly).

		snapshot := w.scheduled.processTicks(w.worldTime, false)
		for _, t := range snapshot {
			if b := behaviorFor(t.blockID).ScheduledTick; b != nil {
				b(tx, t.pos)
			}
		}
		if !w.scheduled.consistent() {
			w.log.Warn("scheduled tick queue inconsistent, reconciling")
			w.scheduled.reconcile()
		}

		w.blockEvents.processEvents(func(ev blockEvent) bool {
			b := behaviorFor(ev.blockID).BlockEvent
			if b == nil {
				return false
			}
			return b(tx, ev.pos, ev.eventID, ev.eventParam)
		})

		w.tickRandom(tx)
		w.lightCatchUp(tx)
		w.decayCombatTrackers()

		w.provider.unloadQueuedChunks()
		w.provider.saveChunks(false)
	})
}

// tickWeather advances rain/thunder countdowns. The reference game
// reseeds these from a per-tick RNG when they expire; this keeps the
// countdown contract without depending on a weather RNG the spec does
// not define.
func (w *World) tickWeather() {
	if w.weather.rainTime > 0 {
		w.weather.rainTime--
		if w.weather.rainTime == 0 {
			w.weather.raining = !w.weather.raining
		}
	}
	if w.weather.thunderTime > 0 {
		w.weather.thunderTime--
		if w.weather.thunderTime == 0 {
			w.weather.thundering = !w.weather.thundering
		}
	}
}

// tickRandom performs three random ticks per random-tickable section per
// world tick, per spec.md §4.4.
func (w *World) tickRandom(tx *Tx) {
	w.provider.forEachLoadedChunk(func(pos ChunkPos, col *chunk.Column) {
		col.ForEachSection(func(secY int, s *chunk.Section) {
			if !s.RandomTickable() {
				return
			}
			draws := w.randomTick.randomSectionPositions()
			for _, d := range draws {
				x, y, z := d[0], d[1], d[2]
				gy := secY*16 + y
				id, _ := s.Block(x, y, z)
				if b := behaviorFor(id).RandomTick; b != nil {
					b(tx, cube.Pos{int(pos.X())*16 + x, gy, int(pos.Z())*16 + z})
				}
			}
		})
	})
}

// lightCatchUp drains the dirty-light queue, running the light engine on
// each distinct queued position. A position whose own column is not loaded
// stays queued for a later tick; one whose surrounding chunks are not all
// loaded is dropped without a light update.
func (w *World) lightCatchUp(tx *Tx) {
	if len(w.dirtyLight) == 0 {
		return
	}
	pending := w.dirtyLight
	w.dirtyLight = nil
	seen := map[cube.Pos]struct{}{}
	for _, pos := range pending {
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}
		if !tx.chunkLoaded(pos) {
			w.dirtyLight = append(w.dirtyLight, pos)
			continue
		}
		w.skyLight.UpdateLightByType(lightView{tx: tx}, pos, light.Sky)
		w.blkLight.UpdateLightByType(lightView{tx: tx}, pos, light.Block)
	}
}
