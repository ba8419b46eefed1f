// Package light implements the BFS flood-fill light engine described in
// spec.md §4.3: darken/brighten phases operating on a bounded, 17-block
// Manhattan-radius neighborhood, shared between the sky and block light
// channels. The engine is decoupled from the concrete chunk/world storage
// behind the View interface so it has no import on the world package
// (which in turn depends on chunk, which depends on block) — this keeps
// the dependency graph the acyclic chain spec.md §2 lays out: "math/AABB
// /coords -> registries -> chunk data -> noise -> generator -> chunk
// provider -> light -> tick engines".
package light

import "github.com/sablecore/voxelserver/server/block/cube"

// Type distinguishes the two 4-bit light channels a position carries.
type Type int

const (
	Sky Type = iota
	Block
)

// View is the read/write surface the light engine needs from whatever
// owns the block grid. Implementations must report positions outside the
// currently loaded neighborhood via Loaded so the engine can abort rather
// than read stale or zero-valued data, per spec.md §4.3 ("Abort if the
// 17-block chunk neighborhood is not all loaded").
type View interface {
	Loaded(pos cube.Pos) bool
	Light(pos cube.Pos, typ Type) byte
	SetLight(pos cube.Pos, typ Type, level byte)
	// Opacity returns the block's light opacity, already clamped to
	// [0,15] by the caller's registry.
	Opacity(pos cube.Pos) byte
	// Emission returns the block's light emission; always 0 for sky
	// light callers, since sky light has no per-block emission.
	Emission(pos cube.Pos) byte
	// CanSeeSky reports whether pos has no opaque block above it in its
	// column, per the height-map invariant.
	CanSeeSky(pos cube.Pos) bool
}

// ComputeLightValue implements spec.md §4.3's computeLightValue: the
// light level a position *should* have given its neighbors and type, with
// no side effects.
func ComputeLightValue(v View, pos cube.Pos, typ Type) byte {
	if typ == Sky && v.CanSeeSky(pos) {
		return 15
	}
	var emission byte
	if typ == Block {
		emission = v.Emission(pos)
	}
	opacity := v.Opacity(pos)
	if opacity < 1 {
		opacity = 1
	}
	if opacity >= 15 {
		if emission > 0 {
			opacity = 1
		} else {
			return 0
		}
	}
	if emission >= 14 {
		return emission
	}
	best := emission
	for _, f := range cube.Faces() {
		n := pos.Add(f.Offset())
		if !v.Loaded(n) {
			continue
		}
		level := v.Light(n, typ)
		if level > opacity {
			if cand := level - opacity; cand > best {
				best = cand
			}
		}
	}
	return best
}

// packed-int work array entry layout, per spec.md §4.3: offsets are
// biased by +32 into 6-bit fields so they pack alongside a level nibble
// in a single int32.
const (
	offsetBias  = 32
	offsetBits  = 6
	offsetMask  = (1 << offsetBits) - 1
	levelShift  = 3 * offsetBits
	workArraySize = 1 << 15 // 32768 entries
	maxManhattan  = 17
)

func pack(dx, dy, dz int, level byte) int32 {
	return int32(dx+offsetBias) | int32(dy+offsetBias)<<offsetBits | int32(dz+offsetBias)<<(2*offsetBits) | int32(level)<<levelShift
}

func unpack(entry int32) (dx, dy, dz int, level byte) {
	dx = int(entry&offsetMask) - offsetBias
	dy = int((entry>>offsetBits)&offsetMask) - offsetBias
	dz = int((entry>>(2*offsetBits))&offsetMask) - offsetBias
	level = byte(entry >> levelShift)
	return
}

// queue is a fixed-capacity ring buffer over the packed work array,
// matching the "preallocated packed-int work array of 32768 entries"
// spec.md calls for.
type queue struct {
	buf        [workArraySize]int32
	head, tail int
}

func (q *queue) reset() { q.head, q.tail = 0, 0 }
func (q *queue) empty() bool { return q.head == q.tail }
func (q *queue) full() bool  { return q.tail-q.head >= workArraySize }

func (q *queue) push(dx, dy, dz int, level byte) bool {
	if q.full() {
		return false
	}
	q.buf[q.tail%workArraySize] = pack(dx, dy, dz, level)
	q.tail++
	return true
}

func (q *queue) pop() (dx, dy, dz int, level byte, ok bool) {
	if q.empty() {
		return 0, 0, 0, 0, false
	}
	dx, dy, dz, level = unpack(q.buf[q.head%workArraySize])
	q.head++
	return dx, dy, dz, level, true
}

// Engine runs updateLightByType for a single light channel, reusing one
// preallocated queue across calls.
type Engine struct {
	q queue
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine { return &Engine{} }

func manhattan(dx, dy, dz int) int {
	a, b, c := dx, dy, dz
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if c < 0 {
		c = -c
	}
	return a + b + c
}

// UpdateLightByType implements spec.md §4.3's updateLightByType: darken
// any region whose light decreased below its stored value, then
// re-brighten from the cleared region (and the original seed, if it did
// not decrease). Returns false without effect if pos, its six face
// neighbors, or any chunk within 17 blocks horizontally of pos is not
// loaded.
func (e *Engine) UpdateLightByType(v View, pos cube.Pos, typ Type) bool {
	for _, f := range cube.Faces() {
		if !v.Loaded(pos.Add(f.Offset())) {
			return false
		}
	}
	// Samples at most 16 blocks apart cover every chunk from -17 to +17.
	for _, dx := range [...]int{-maxManhattan, -1, 15, maxManhattan} {
		for _, dz := range [...]int{-maxManhattan, -1, 15, maxManhattan} {
			if !v.Loaded(pos.Add(cube.Pos{dx, 0, dz})) {
				return false
			}
		}
	}
	if !v.Loaded(pos) {
		return false
	}

	saved := v.Light(pos, typ)
	computed := ComputeLightValue(v, pos, typ)

	if computed < saved {
		e.darken(v, pos, typ, saved)
	}
	e.brighten(v, pos, typ)
	return true
}

// darken implements phase 3: seed the queue with the stale seed level,
// zero every position whose current value matches the popped level, and
// push darker neighbors along the same gradient.
func (e *Engine) darken(v View, origin cube.Pos, typ Type, saved byte) {
	e.q.reset()
	e.q.push(0, 0, 0, saved)

	for {
		dx, dy, dz, level, ok := e.q.pop()
		if !ok {
			break
		}
		p := cube.Pos{origin.X() + dx, origin.Y() + dy, origin.Z() + dz}
		if !v.Loaded(p) {
			continue
		}
		if v.Light(p, typ) != level {
			continue
		}
		v.SetLight(p, typ, 0)
		if level == 0 {
			continue
		}
		for _, f := range cube.Faces() {
			ndx, ndy, ndz := dx+f.Offset().X(), dy+f.Offset().Y(), dz+f.Offset().Z()
			if manhattan(ndx, ndy, ndz) >= maxManhattan {
				continue
			}
			q := cube.Pos{origin.X() + ndx, origin.Y() + ndy, origin.Z() + ndz}
			if !v.Loaded(q) {
				continue
			}
			op := v.Opacity(q)
			if op < 1 {
				op = 1
			}
			if int(level)-int(op) < 0 {
				continue
			}
			if v.Light(q, typ) == level-op {
				e.q.push(ndx, ndy, ndz, level-op)
			}
		}
	}
}

// brighten implements phase 4: recompute each popped position from
// scratch and propagate any increase outward.
func (e *Engine) brighten(v View, origin cube.Pos, typ Type) {
	e.q.reset()
	e.q.push(0, 0, 0, 0)

	for {
		dx, dy, dz, _, ok := e.q.pop()
		if !ok {
			break
		}
		p := cube.Pos{origin.X() + dx, origin.Y() + dy, origin.Z() + dz}
		if !v.Loaded(p) {
			continue
		}
		cur := v.Light(p, typ)
		c := ComputeLightValue(v, p, typ)
		if c == cur {
			continue
		}
		v.SetLight(p, typ, c)
		if c <= cur {
			continue
		}
		if manhattan(dx, dy, dz) >= maxManhattan {
			continue
		}
		for _, f := range cube.Faces() {
			ndx, ndy, ndz := dx+f.Offset().X(), dy+f.Offset().Y(), dz+f.Offset().Z()
			q := cube.Pos{origin.X() + ndx, origin.Y() + ndy, origin.Z() + ndz}
			if !v.Loaded(q) {
				continue
			}
			if v.Light(q, typ) < c {
				if !e.q.push(ndx, ndy, ndz, 0) {
					return
				}
			}
		}
	}
}
