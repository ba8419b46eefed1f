package world

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/brentp/intintmap"

	"github.com/sablecore/voxelserver/server/world/chunk"
)

// ErrChunkLoadFailed reports that a chunk could not be loaded from disk
// nor produced by the generator, per spec.md §4.1.
var ErrChunkLoadFailed = errors.New("world: chunk load failed")

// regionStore lazily opens one *chunk.Region per 32x32 chunk-coordinate
// region file and keeps it open for the process lifetime.
type regionStore struct {
	dir string

	mu      sync.Mutex
	regions map[int64]*chunk.Region
}

func newRegionStore(dir string) *regionStore {
	return &regionStore{dir: dir, regions: map[int64]*chunk.Region{}}
}

func regionKey(rx, rz int32) int64 { return int64(uint32(rx))<<32 | int64(uint32(rz)) }

func (s *regionStore) regionFor(cx, cz int32) (*chunk.Region, int, int, error) {
	rx, rz := cx>>5, cz>>5
	localX, localZ := int(cx&31), int(cz&31)

	s.mu.Lock()
	defer s.mu.Unlock()
	key := regionKey(rx, rz)
	r, ok := s.regions[key]
	if ok {
		return r, localX, localZ, nil
	}
	path := filepath.Join(s.dir, fmt.Sprintf("r.%d.%d.mca", rx, rz))
	r, err := chunk.OpenRegion(path)
	if err != nil {
		return nil, 0, 0, err
	}
	s.regions[key] = r
	return r, localX, localZ, nil
}

func (s *regionStore) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.regions {
		r.Close()
	}
}

// Generator produces a brand-new chunk column deterministically from a
// world seed and chunk coordinate, per spec.md §4.2. Implemented by the
// generator package; declared here to avoid provider<->generator import
// coupling in the wrong direction (generator depends on nothing in
// world).
type Generator interface {
	GenerateColumn(seed int64, x, z int32) *chunk.Column
}

// Provider owns the in-memory chunk cache, the pending-save (drop) set,
// and the disk/generator fallback chain, per spec.md §4.1. Its cache
// index is a brentp/intintmap keyed by the packed chunk position,
// mapping to a slot in a parallel slice of *chunk.Column pointers — this
// gives the O(1), allocation-light lookup spec.md's chunk provider
// calls for on the hot per-block-access path.
type Provider struct {
	mu    sync.RWMutex
	index *intintmap.Map
	slots []*chunk.Column

	dropMu  sync.Mutex
	pending map[int64]struct{}

	loadedCoords []ChunkPos

	region    *regionStore
	generator Generator
	seed      int64
	hasSky    bool

	// spawn holds the (blockX, blockZ) pin dropChunk checks against, per
	// spec.md §4.1's "honors a spawn-area pin".
	spawn         [2]int32
	savingEnabled bool
}

func NewProvider(dir string, seed int64, hasSky bool, generator Generator) *Provider {
	return &Provider{
		index:         intintmap.New(1024, 0.75),
		pending:       map[int64]struct{}{},
		region:        newRegionStore(dir),
		generator:     generator,
		seed:          seed,
		hasSky:        hasSky,
		savingEnabled: true,
	}
}

// SetSpawn records the spawn-area pin dropChunk consults.
func (p *Provider) SetSpawn(blockX, blockZ int32) { p.spawn = [2]int32{blockX, blockZ} }

// Seed returns the world seed chunks are generated from.
func (p *Provider) Seed() int64 { return p.seed }

// chunkExists reports whether pos is currently resident in the cache.
func (p *Provider) chunkExists(pos ChunkPos) bool {
	return p.getChunkIfLoaded(pos) != nil
}

// getChunkIfLoaded returns the cached column for pos without touching disk
// or the generator, or nil if it is not currently resident. A slot whose
// column has been evicted is left in the intintmap index as a tombstone
// (the library offers no delete) and is recognised here by its nil slot
// value, per the eviction contract in evict.
func (p *Provider) getChunkIfLoaded(pos ChunkPos) *chunk.Column {
	p.mu.RLock()
	defer p.mu.RUnlock()
	slot, ok := p.index.Get(pos.key())
	if !ok {
		return nil
	}
	return p.slots[slot]
}

// provideChunk returns the column at pos, loading or generating it first
// if necessary, per spec.md §4.1.
func (p *Provider) provideChunk(pos ChunkPos) (*chunk.Column, error) {
	if c := p.getChunkIfLoaded(pos); c != nil {
		p.dropMu.Lock()
		delete(p.pending, pos.key())
		p.dropMu.Unlock()
		return c, nil
	}
	return p.loadChunk(pos)
}

// loadChunk implements the disk -> generator fallback chain: (1) clear any
// pending-drop mark, (2) try the region-file adaptor, (3) fall back to the
// generator on a disk miss, (4) insert the result into the cache under an
// exclusive lock and record it in loadedCoords, (5) populate neighbouring
// terrain if this is the corner of a freshly-completed 2x2 quad, (6) mark
// the column modified and return it.
func (p *Provider) loadChunk(pos ChunkPos) (*chunk.Column, error) {
	p.dropMu.Lock()
	delete(p.pending, pos.key())
	p.dropMu.Unlock()

	col, err := p.loadFromDisk(pos)
	if err != nil && p.generator == nil {
		return nil, fmt.Errorf("%w: %v", ErrChunkLoadFailed, err)
	}
	if col == nil {
		if p.generator == nil {
			return nil, ErrChunkLoadFailed
		}
		col = p.generator.GenerateColumn(p.seed, pos.X(), pos.Z())
		if col == nil {
			return nil, ErrChunkLoadFailed
		}
	}

	p.mu.Lock()
	slot := len(p.slots)
	p.slots = append(p.slots, col)
	p.index.Put(pos.key(), int64(slot))
	p.loadedCoords = append(p.loadedCoords, pos)
	p.mu.Unlock()

	p.populateIfQuadReady(pos)
	col.SetModified(true)
	return col, nil
}

// loadFromDisk attempts to read pos from its backing region file. A
// missing region file or a chunk not yet written within an existing region
// file are both reported as (nil, nil): a disk miss, not an error.
func (p *Provider) loadFromDisk(pos ChunkPos) (*chunk.Column, error) {
	r, lx, lz, err := p.region.regionFor(pos.X(), pos.Z())
	if err != nil {
		return nil, nil
	}
	if !r.Has(lx, lz) {
		return nil, nil
	}
	root, err := r.Load(lx, lz)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	return chunk.FromNBT(root, p.hasSky), nil
}

// populateIfQuadReady runs terrain population on every chunk in pos's
// 2x2-or-more neighbourhood once all the chunks needed to populate it
// deterministically (a chunk's decorators may reach into its +X/+Z
// neighbours) are themselves loaded, per spec.md §4.2's population-order
// rule. A column only populates once (TerrainPopulated latches it).
func (p *Provider) populateIfQuadReady(pos ChunkPos) {
	for dx := int32(-1); dx <= 0; dx++ {
		for dz := int32(-1); dz <= 0; dz++ {
			origin := ChunkPos{pos.X() + dx, pos.Z() + dz}
			if p.quadLoaded(origin) {
				p.populateQuad(origin)
			}
		}
	}
}

func (p *Provider) quadLoaded(origin ChunkPos) bool {
	for dx := int32(0); dx <= 1; dx++ {
		for dz := int32(0); dz <= 1; dz++ {
			if p.getChunkIfLoaded(ChunkPos{origin.X() + dx, origin.Z() + dz}) == nil {
				return false
			}
		}
	}
	return true
}

func (p *Provider) populateQuad(origin ChunkPos) {
	c := p.getChunkIfLoaded(origin)
	if c == nil || c.TerrainPopulated {
		return
	}
	if gen, ok := p.generator.(interface {
		Populate(seed int64, x, z int32, quad func(dx, dz int32) *chunk.Column)
	}); ok {
		gen.Populate(p.seed, origin.X(), origin.Z(), func(dx, dz int32) *chunk.Column {
			return p.getChunkIfLoaded(ChunkPos{origin.X() + dx, origin.Z() + dz})
		})
	}
	c.TerrainPopulated = true
	c.SetModified(true)
}

// dropChunk marks pos for unloading unless it falls within the 128-block
// spawn-area pin, per spec.md §4.1.
func (p *Provider) dropChunk(pos ChunkPos) {
	const spawnRadius = 128
	dx := pos.X()*16 + 8 - p.spawn[0]
	dz := pos.Z()*16 + 8 - p.spawn[1]
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	if dx <= spawnRadius && dz <= spawnRadius {
		return
	}
	p.dropMu.Lock()
	p.pending[pos.key()] = struct{}{}
	p.dropMu.Unlock()
}

// unloadQueuedChunks pops up to 100 pending-drop chunks, saves them if
// saving is enabled, and evicts them from the cache.
func (p *Provider) unloadQueuedChunks() {
	p.dropMu.Lock()
	var toDrop []int64
	for k := range p.pending {
		toDrop = append(toDrop, k)
		if len(toDrop) >= 100 {
			break
		}
	}
	for _, k := range toDrop {
		delete(p.pending, k)
	}
	p.dropMu.Unlock()

	for _, k := range toDrop {
		pos := chunkPosFromKey(k)
		p.evict(pos)
	}
}

func (p *Provider) evict(pos ChunkPos) {
	p.mu.Lock()
	slot, ok := p.index.Get(pos.key())
	if !ok {
		p.mu.Unlock()
		return
	}
	col := p.slots[slot]
	p.slots[slot] = nil

	for i, lp := range p.loadedCoords {
		if lp == pos {
			p.loadedCoords[i] = p.loadedCoords[len(p.loadedCoords)-1]
			p.loadedCoords = p.loadedCoords[:len(p.loadedCoords)-1]
			break
		}
	}
	p.mu.Unlock()

	if p.savingEnabled && col != nil {
		p.saveOne(pos, col)
	}
}

func (p *Provider) saveOne(pos ChunkPos, col *chunk.Column) error {
	r, lx, lz, err := p.region.regionFor(pos.X(), pos.Z())
	if err != nil {
		return err
	}
	if err := r.Save(lx, lz, col.ToNBT(), uint32(col.LastUpdate)); err != nil {
		return err
	}
	col.SetModified(false)
	return nil
}

// saveChunks writes every modified, loaded column to disk. Unless saveAll
// is set it stops after 24 columns per call, spreading the I/O cost of a
// full-world save sweep across several tick invocations. It returns true
// only when it stopped at that 24-column limit, and false otherwise.
func (p *Provider) saveChunks(saveAll bool) bool {
	if !p.savingEnabled {
		return false
	}
	p.mu.RLock()
	coords := append([]ChunkPos(nil), p.loadedCoords...)
	p.mu.RUnlock()

	saved := 0
	for _, pos := range coords {
		col := p.getChunkIfLoaded(pos)
		if col == nil || !col.Modified() {
			continue
		}
		if err := p.saveOne(pos, col); err != nil {
			continue
		}
		saved++
		if !saveAll && saved >= 24 {
			return true
		}
	}
	return false
}

// forEachLoadedChunk invokes fn for every currently-resident column.
func (p *Provider) forEachLoadedChunk(fn func(pos ChunkPos, col *chunk.Column)) {
	p.mu.RLock()
	coords := append([]ChunkPos(nil), p.loadedCoords...)
	p.mu.RUnlock()

	for _, pos := range coords {
		if col := p.getChunkIfLoaded(pos); col != nil {
			fn(pos, col)
		}
	}
}

// Close flushes all modified chunks and closes every open region file.
func (p *Provider) Close() error {
	p.saveChunks(true)
	p.region.closeAll()
	return nil
}
