package chunk_test

import (
	"testing"

	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/world/chunk"
)

// TestHeightMapTracksTopOpaqueBlock exercises spec.md §8's Testable
// Property 4: after any block edit affecting (x,z), heightMap[x,z] = 1 +
// the highest opaque block's y (0 if the column is fully transparent).
func TestHeightMapTracksTopOpaqueBlock(t *testing.T) {
	stone, ok := block.ByName("minecraft:stone")
	if !ok {
		t.Fatal("minecraft:stone not registered")
	}

	c := chunk.NewColumn(0, 0, true)
	if got := c.HeightMap(4, 4); got != 0 {
		t.Fatalf("empty column height = %d, want 0", got)
	}

	c.SetBlock(4, 10, 4, stone.ID, 0)
	if got := c.HeightMap(4, 4); got != 11 {
		t.Fatalf("after placing stone at y=10, height = %d, want 11", got)
	}

	c.SetBlock(4, 50, 4, stone.ID, 0)
	if got := c.HeightMap(4, 4); got != 51 {
		t.Fatalf("after placing a higher stone at y=50, height = %d, want 51", got)
	}

	c.SetBlock(4, 50, 4, block.Air, 0)
	if got := c.HeightMap(4, 4); got != 11 {
		t.Fatalf("after removing the top block, height = %d, want 11 (the one below)", got)
	}

	c.SetBlock(4, 10, 4, block.Air, 0)
	if got := c.HeightMap(4, 4); got != 0 {
		t.Fatalf("after clearing the column, height = %d, want 0", got)
	}
}
