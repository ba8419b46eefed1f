package generator

import "math"

// fade is the smoothstep-style interpolant 6t^5-15t^4+10t^3 used to blend
// lattice samples without a visible grid.
func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// hash3 mixes three lattice coordinates and a seed into a 64-bit value via
// a splitmix64-style avalanche, giving a stable, seed-keyed lattice value
// without needing a shuffled permutation table.
func hash3(x, y, z int64, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(z)*0x165667B19E3779F9 ^ uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v ^= v >> 31
	return v
}

// lattice3 returns a deterministic value in [-1,1] for an integer lattice
// point.
func lattice3(x, y, z int64, seed int64) float64 {
	h := hash3(x, y, z, seed)
	return float64(h&0xFFFFFF)/float64(0xFFFFFF)*2 - 1
}

// valueNoise3D samples trilinearly-interpolated lattice noise at a
// fractional (x,y,z), in [-1,1]. This replaces the exact Minecraft
// improved-Perlin-noise port with a simpler, self-contained value-noise
// function in the same octave-summation style (grounded on the pack's
// dantero-ps-mini-mc-go/internal/world/noise.go value-noise approach),
// deliberately non-bit-exact with the reference game.
func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)
	fx, fy, fz := fade(x-x0), fade(y-y0), fade(z-z0)

	c000 := lattice3(ix, iy, iz, seed)
	c100 := lattice3(ix+1, iy, iz, seed)
	c010 := lattice3(ix, iy+1, iz, seed)
	c110 := lattice3(ix+1, iy+1, iz, seed)
	c001 := lattice3(ix, iy, iz+1, seed)
	c101 := lattice3(ix+1, iy, iz+1, seed)
	c011 := lattice3(ix, iy+1, iz+1, seed)
	c111 := lattice3(ix+1, iy+1, iz+1, seed)

	x00 := lerp(c000, c100, fx)
	x10 := lerp(c010, c110, fx)
	x01 := lerp(c001, c101, fx)
	x11 := lerp(c011, c111, fx)

	y0v := lerp(x00, x10, fy)
	y1v := lerp(x01, x11, fy)
	return lerp(y0v, y1v, fz)
}

// octave3D sums several scaled valueNoise3D layers, normalised to
// [-1,1], the fractal-Brownian-motion pattern the pack's noise helper
// uses for octaveNoise2D.
func octave3D(x, y, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude, frequency, sum, norm := 1.0, 1.0, 0.0, 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i)*131) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func octave2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	return octave3D(x, 0, z, seed, octaves, persistence, lacunarity)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
