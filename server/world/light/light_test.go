package light_test

import (
	"testing"

	"github.com/sablecore/voxelserver/server/block/cube"
	"github.com/sablecore/voxelserver/server/world/light"
)

// gridView is a fixed-size in-memory light.View over an arena of air
// blocks with a configurable emitter, used to exercise the BFS engine
// without depending on the chunk/world packages.
type gridView struct {
	levels map[cube.Pos]byte
	origin cube.Pos
}

func newGridView() *gridView {
	return &gridView{levels: map[cube.Pos]byte{}}
}

func (g *gridView) Loaded(cube.Pos) bool { return true }

func (g *gridView) Light(pos cube.Pos, _ light.Type) byte { return g.levels[pos] }

func (g *gridView) SetLight(pos cube.Pos, _ light.Type, level byte) { g.levels[pos] = level }

func (g *gridView) Opacity(cube.Pos) byte { return 0 }

func (g *gridView) Emission(pos cube.Pos) byte {
	if pos == g.origin {
		return 14
	}
	return 0
}

func (g *gridView) CanSeeSky(cube.Pos) bool { return false }

// TestUpdateLightByTypeMatchesS2 exercises spec.md §8's S2 scenario: a
// torch (emission 14) lit in an otherwise empty, fully-transparent
// arena produces the exact falloff the BFS brighten phase is specified
// to compute.
func TestUpdateLightByTypeMatchesS2(t *testing.T) {
	v := newGridView()
	torch := cube.Pos{8, 8, 8}
	v.origin = torch

	e := light.NewEngine()
	if !e.UpdateLightByType(v, torch, light.Block) {
		t.Fatalf("expected UpdateLightByType to succeed on a fully loaded arena")
	}

	cases := []struct {
		pos  cube.Pos
		want byte
	}{
		{cube.Pos{8, 8, 8}, 14},
		{cube.Pos{9, 8, 8}, 13},
		{cube.Pos{14, 8, 8}, 8},
		{cube.Pos{15, 8, 8}, 7},
		{cube.Pos{23, 8, 8}, 0},
	}
	for _, c := range cases {
		if got := v.Light(c.pos, light.Block); got != c.want {
			t.Errorf("light at %v = %d, want %d", c.pos, got, c.want)
		}
	}
}

// TestUpdateLightByTypeFixedPoint exercises Testable Property 5: after
// UpdateLightByType, every touched position's stored light equals what
// ComputeLightValue would independently recompute for it.
func TestUpdateLightByTypeFixedPoint(t *testing.T) {
	v := newGridView()
	torch := cube.Pos{8, 8, 8}
	v.origin = torch

	e := light.NewEngine()
	e.UpdateLightByType(v, torch, light.Block)

	for pos, stored := range v.levels {
		if want := light.ComputeLightValue(v, pos, light.Block); want != stored {
			t.Errorf("position %v not at fixed point: stored=%d computeLightValue=%d", pos, stored, want)
		}
	}
}

// TestUpdateLightByTypeAbortsWhenNotLoaded ensures the engine reports
// failure rather than touching state when the 17-block neighborhood
// around pos is not fully loaded, per spec.md §4.3.
func TestUpdateLightByTypeAbortsWhenNotLoaded(t *testing.T) {
	v := &partialView{gridView: newGridView(), missing: cube.Pos{9, 8, 8}}
	e := light.NewEngine()
	if e.UpdateLightByType(v, cube.Pos{8, 8, 8}, light.Block) {
		t.Fatalf("expected UpdateLightByType to abort when a neighbor is not loaded")
	}
}

type partialView struct {
	*gridView
	missing cube.Pos
}

func (p *partialView) Loaded(pos cube.Pos) bool { return pos != p.missing }
