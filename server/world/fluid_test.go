package world

import (
	"testing"

	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/block/cube"
	"github.com/sablecore/voxelserver/server/world/generator"
)

// TestWaterFlowSpreadsWithDistanceDecayScenarioS3 exercises spec.md §8's
// S3: source water over a flat stone floor settles into flow levels equal
// to Chebyshev distance for k=1..7, with air beyond.
//
// Real play drives this through the scheduled-tick queue that
// RegisterFluidBehavior wires, one flowing cell scheduling the next; this
// test drives TickFluid directly instead, sweeping every currently-flowing
// cell once per round the same number of times a fully wired queue would
// need to reach the documented steady state.
func TestWaterFlowSpreadsWithDistanceDecayScenarioS3(t *testing.T) {
	w := New(Config{Dir: t.TempDir(), Seed: 11, Generator: generator.New(11)})
	tx := &Tx{w: w}

	waterSrc, ok := block.ByName("minecraft:water")
	if !ok {
		t.Fatal("minecraft:water not registered")
	}
	waterFlow, ok := block.ByName("minecraft:flowing_water")
	if !ok {
		t.Fatal("minecraft:flowing_water not registered")
	}
	stone, ok := block.ByName("minecraft:stone")
	if !ok {
		t.Fatal("minecraft:stone not registered")
	}

	for x := -9; x <= 9; x++ {
		for z := -1; z <= 1; z++ {
			tx.SetBlock(cube.Pos{x, 63, z}, stone.ID, 0)
			tx.SetBlock(cube.Pos{x, 64, z}, block.Air, 0)
		}
	}

	source := cube.Pos{0, 64, 0}
	tx.SetBlock(source, waterSrc.ID, 0)

	k := fluidKind{sourceID: waterSrc.ID, flowingID: waterFlow.ID}
	rng := func(int) int { return 1 }

	for round := 0; round < 8; round++ {
		TickFluid(tx, source, k, rng)
		for x := -8; x <= 8; x++ {
			for z := -1; z <= 1; z++ {
				p := cube.Pos{x, 64, z}
				if id, _ := tx.Block(p); id == k.flowingID {
					TickFluid(tx, p, k, rng)
				}
			}
		}
	}

	if id, _ := tx.Block(source); id != waterSrc.ID {
		t.Fatalf("expected the source cell to remain minecraft:water, got id=%d", id)
	}
	for kk := 1; kk <= 7; kk++ {
		if id, meta := tx.Block(cube.Pos{kk, 64, 0}); id != waterFlow.ID || meta != byte(kk) {
			t.Errorf("at distance %d: got id=%d meta=%d, want id=%d meta=%d", kk, id, meta, waterFlow.ID, kk)
		}
		if id, meta := tx.Block(cube.Pos{-kk, 64, 0}); id != waterFlow.ID || meta != byte(kk) {
			t.Errorf("at distance -%d: got id=%d meta=%d, want id=%d meta=%d", kk, id, meta, waterFlow.ID, kk)
		}
	}
	if id, _ := tx.Block(cube.Pos{8, 64, 0}); id != block.Air {
		t.Errorf("at distance 8: got id=%d, want air", id)
	}
	if id, _ := tx.Block(cube.Pos{-8, 64, 0}); id != block.Air {
		t.Errorf("at distance -8: got id=%d, want air", id)
	}
}
