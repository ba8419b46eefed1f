package world

import (
	"testing"

	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/block/cube"
	"github.com/sablecore/voxelserver/server/world/generator"
)

// TestExtendPistonConservesBlocks exercises spec.md §8's Testable
// Property 10: after a successful push of k non-air blocks, the chunk
// contains the same multiset of (blockId, meta) tuples shifted one step
// in the push direction, plus a piston-head tile entity at the
// vacated-head's destination.
func TestExtendPistonConservesBlocks(t *testing.T) {
	w := New(Config{Dir: t.TempDir(), Seed: 99, Generator: generator.New(99)})
	tx := &Tx{w: w}

	base := cube.Pos{0, 80, 0}
	face := cube.FaceEast
	head := base.Side(face)
	second := head.Side(face)

	stone, _ := block.ByName("minecraft:stone")
	dirt, _ := block.ByName("minecraft:dirt")
	tx.SetBlock(head, stone.ID, 2)
	tx.SetBlock(second, dirt.ID, 5)
	tx.SetBlock(second.Side(face), block.Air, 0)

	if !ExtendPiston(tx, base, face) {
		t.Fatalf("expected the push to succeed")
	}

	if id, meta := tx.Block(head); id != block.Air {
		t.Fatalf("expected the head cell to be vacated, got id=%d meta=%d", id, meta)
	}
	if id, meta := tx.Block(second); id != stone.ID || meta != 2 {
		t.Fatalf("expected the stone block shifted to %v, got id=%d meta=%d", second, id, meta)
	}
	if id, meta := tx.Block(second.Side(face)); id != dirt.ID || meta != 5 {
		t.Fatalf("expected the dirt block shifted to %v, got id=%d meta=%d", second.Side(face), id, meta)
	}
	if te := tx.TileEntity(second); te == nil {
		t.Fatalf("expected a piston-moving tile entity at %v", second)
	}
}

// TestExtendPistonAbortsOnImmovableBlock confirms a push that meets an
// immovable block is rejected and leaves the chunk untouched.
func TestExtendPistonAbortsOnImmovableBlock(t *testing.T) {
	w := New(Config{Dir: t.TempDir(), Seed: 1, Generator: generator.New(1)})
	tx := &Tx{w: w}

	base := cube.Pos{0, 80, 0}
	face := cube.FaceEast
	head := base.Side(face)

	bedrock, ok := block.ByName("minecraft:bedrock")
	if !ok {
		t.Fatal("minecraft:bedrock not registered")
	}
	tx.SetBlock(head, bedrock.ID, 0)

	if ExtendPiston(tx, base, face) {
		t.Fatalf("expected the push against an immovable block to fail")
	}
	if id, _ := tx.Block(head); id != bedrock.ID {
		t.Fatalf("expected the immovable block to remain in place, got id=%d", id)
	}
}
