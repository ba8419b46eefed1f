package world

import (
	"log/slog"
	"sync"

	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/block/cube"
	"github.com/sablecore/voxelserver/server/world/chunk"
	"github.com/sablecore/voxelserver/server/world/light"
)

// Config bundles the dependencies a World needs at construction, mirroring
// the teacher's conf.Provider/conf.Generator/conf.Log style (server/conf.go).
type Config struct {
	Dir       string
	Seed      int64
	HasSky    bool
	Generator Generator
	Log       *slog.Logger
}

// weather holds the rain/thunder state persisted in level.dat, per
// spec.md §6.
type weather struct {
	raining     bool
	rainTime    int32
	thundering  bool
	thunderTime int32
}

// World owns one dimension's chunk cache, tick engines and light engine,
// and serialises every mutation through a single queue drained by
// handleTransactions, exactly as the teacher's World.Exec/ExecFunc
// pattern does (server/world/world.go).
type World struct {
	log *slog.Logger

	provider *Provider
	skyLight *light.Engine
	blkLight *light.Engine

	queue chan transaction

	worldTime   int64
	currentTick int64
	weather     weather

	scheduled   *scheduledTickQueue
	blockEvents *blockEventQueue
	randomTick  randomTickLCG

	combatMu sync.Mutex
	combat   map[uint64]*CombatTracker

	dirtyLight []cube.Pos

	spawn cube.Pos

	metaMu     sync.RWMutex
	difficulty int32
	gameType   int32
	hardcore   bool
	gameRules  map[string]string

	closing chan struct{}
	running sync.WaitGroup
}

// defaultGameRules mirrors spec.md §6's enumerated game rules, each
// stringly-typed ("true"/"false") the way level.dat stores them.
func defaultGameRules() map[string]string {
	return map[string]string{
		"doFireTick":          "true",
		"mobGriefing":         "true",
		"keepInventory":       "false",
		"doMobSpawning":       "true",
		"doMobLoot":           "true",
		"doTileDrops":         "true",
		"commandBlockOutput":  "true",
		"naturalRegeneration": "true",
		"doDaylightCycle":     "true",
	}
}

// transaction is enqueued on World.queue and run by handleTransactions.
type transaction interface {
	Run(w *World)
}

type normalTransaction struct {
	c chan struct{}
	f ExecFunc
}

func (t normalTransaction) Run(w *World) {
	defer close(t.c)
	tx := &Tx{w: w}
	t.f(tx)
	tx.invalidate()
}

// New constructs a World ready to tick. Callers must call Run to start
// the transaction-queue goroutine.
func New(conf Config) *World {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	w := &World{
		log:         conf.Log,
		provider:    NewProvider(conf.Dir, conf.Seed, conf.HasSky, conf.Generator),
		skyLight:    light.NewEngine(),
		blkLight:    light.NewEngine(),
		queue:       make(chan transaction, 64),
		scheduled:   newScheduledTickQueue(),
		blockEvents: &blockEventQueue{},
		combat:      map[uint64]*CombatTracker{},
		gameType:    -1,
		gameRules:   defaultGameRules(),
		closing:     make(chan struct{}),
	}
	return w
}

// Seed returns the world seed chunks are generated from.
func (w *World) Seed() int64 { return w.provider.Seed() }

// Difficulty returns the current difficulty level (0-3), per spec.md §6's
// persisted world metadata.
func (w *World) Difficulty() int32 {
	w.metaMu.RLock()
	defer w.metaMu.RUnlock()
	return w.difficulty
}

// SetDifficulty sets the difficulty level, clamped to 0-3.
func (w *World) SetDifficulty(d int32) {
	if d < 0 {
		d = 0
	} else if d > 3 {
		d = 3
	}
	w.metaMu.Lock()
	w.difficulty = d
	w.metaMu.Unlock()
}

// GameType returns the default game mode (0-3, or -1 if not set).
func (w *World) GameType() int32 {
	w.metaMu.RLock()
	defer w.metaMu.RUnlock()
	return w.gameType
}

// SetGameType sets the default game mode.
func (w *World) SetGameType(t int32) {
	w.metaMu.Lock()
	w.gameType = t
	w.metaMu.Unlock()
}

// Hardcore reports whether the world is in hardcore mode.
func (w *World) Hardcore() bool {
	w.metaMu.RLock()
	defer w.metaMu.RUnlock()
	return w.hardcore
}

// SetHardcore sets the world's hardcore flag.
func (w *World) SetHardcore(h bool) {
	w.metaMu.Lock()
	w.hardcore = h
	w.metaMu.Unlock()
}

// GameRule returns the stringly-typed value of a game rule and whether it
// is recognised, per spec.md §6.
func (w *World) GameRule(name string) (string, bool) {
	w.metaMu.RLock()
	defer w.metaMu.RUnlock()
	v, ok := w.gameRules[name]
	return v, ok
}

// SetGameRule sets a game rule's stringly-typed value.
func (w *World) SetGameRule(name, value string) {
	w.metaMu.Lock()
	w.gameRules[name] = value
	w.metaMu.Unlock()
}

// GameRuleBool interprets a game rule's value as "true"/"false", per
// spec.md §6 ("reader interprets true/false"); unrecognised rules and
// unparsable values default to false.
func (w *World) GameRuleBool(name string) bool {
	v, ok := w.GameRule(name)
	return ok && v == "true"
}

// ExecFunc performs a synchronised transaction on a World.
type ExecFunc func(tx *Tx)

// Exec queues f to run on the world's single tick thread and returns a
// channel closed once it completes, per the teacher's Exec/queue/
// handleTransactions pattern.
func (w *World) Exec(f ExecFunc) <-chan struct{} {
	c := make(chan struct{})
	w.queue <- normalTransaction{c: c, f: f}
	return c
}

// Run drains the transaction queue until Close is called. It is started
// in its own goroutine. Run does not call Tick, and nothing else in this
// repository calls it either.
func (w *World) Run() {
	w.running.Add(1)
	defer w.running.Done()
	for {
		select {
		case tx := <-w.queue:
			tx.Run(w)
		case <-w.closing:
			return
		}
	}
}

// Close stops the world's goroutine and flushes every modified chunk to
// disk.
func (w *World) Close() error {
	close(w.closing)
	w.running.Wait()
	return w.provider.Close()
}

// SetSpawn records the world spawn point, used both by player respawn
// logic and the chunk provider's spawn-area pin (spec.md §4.1).
func (w *World) SetSpawn(pos cube.Pos) {
	w.spawn = pos
	w.provider.SetSpawn(int32(pos.X()), int32(pos.Z()))
}

// Spawn returns the world spawn point.
func (w *World) Spawn() cube.Pos { return w.spawn }

// Time returns the current world time (ticks since world creation, mod
// 24000 for the day/night cycle at the caller's discretion).
func (w *World) Time() int64 { return w.worldTime }

// SetTime sets the world time.
func (w *World) SetTime(t int64) { w.worldTime = t }

// lightView adapts a *Tx into the light.View interface one engine
// invocation needs, scoped to a single channel (sky or block) so Opacity/
// Emission/CanSeeSky don't need a type parameter.
type lightView struct {
	tx  *Tx
	typ light.Type
}

func (v lightView) Loaded(pos cube.Pos) bool { return v.tx.chunkLoaded(pos) }

func (v lightView) Light(pos cube.Pos, typ light.Type) byte {
	if typ == light.Sky {
		return v.tx.skyLightAt(pos)
	}
	return v.tx.blockLightAt(pos)
}

func (v lightView) SetLight(pos cube.Pos, typ light.Type, level byte) {
	if typ == light.Sky {
		v.tx.setSkyLightAt(pos, level)
	} else {
		v.tx.setBlockLightAt(pos, level)
	}
}

func (v lightView) Opacity(pos cube.Pos) byte {
	id, _ := v.tx.blockAt(pos)
	return block.ByID(id).LightOpacity
}

func (v lightView) Emission(pos cube.Pos) byte {
	id, _ := v.tx.blockAt(pos)
	return block.ByID(id).LightEmission
}

func (v lightView) CanSeeSky(pos cube.Pos) bool { return v.tx.canSeeSky(pos) }

// chunkColumnAt returns the loaded column owning pos, or nil.
func (w *World) chunkColumnAt(pos cube.Pos) *chunk.Column {
	return w.provider.getChunkIfLoaded(chunkPosFromBlockPos(pos))
}
