package chunk_test

import (
	"bytes"
	"testing"

	"github.com/sablecore/voxelserver/server/internal/nbt"
	"github.com/sablecore/voxelserver/server/world/chunk"
)

// TestColumnNBTRoundTrip exercises spec.md §8's Testable Property 2:
// saving a chunk via the NBT serializer and immediately loading it
// produces equal block, metadata, light, biome and height-map contents
// (ignoring LastUpdate, which this test pins anyway for determinism).
func TestColumnNBTRoundTrip(t *testing.T) {
	c := chunk.NewColumn(3, -2, true)
	c.LastUpdate = 42
	c.InhabitedTime = 7
	c.TerrainPopulated = true
	c.LightPopulated = true

	c.SetBlock(1, 70, 1, 5, 3)
	c.SetBlock(8, 64, 8, 1, 0)
	c.SetBlockLight(1, 70, 1, 9)
	c.SetSkyLight(1, 70, 1, 12)
	c.SetBiome(1, 1, 4)
	c.SetBiome(8, 8, 6)

	var buf bytes.Buffer
	if err := nbt.NewEncoder(&buf).Encode("Level", c.ToNBT()); err != nil {
		t.Fatalf("encode: %v", err)
	}

	_, root, err := nbt.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	loaded := chunk.FromNBT(root, true)

	if loaded.LastUpdate != c.LastUpdate || loaded.InhabitedTime != c.InhabitedTime {
		t.Fatalf("metadata mismatch: got LastUpdate=%d InhabitedTime=%d", loaded.LastUpdate, loaded.InhabitedTime)
	}
	if loaded.TerrainPopulated != c.TerrainPopulated || loaded.LightPopulated != c.LightPopulated {
		t.Fatalf("populated flags mismatch")
	}

	if id, meta := loaded.Block(1, 70, 1); id != 5 || meta != 3 {
		t.Errorf("block(1,70,1) = (%d,%d), want (5,3)", id, meta)
	}
	if id, meta := loaded.Block(8, 64, 8); id != 1 || meta != 0 {
		t.Errorf("block(8,64,8) = (%d,%d), want (1,0)", id, meta)
	}
	if got := loaded.BlockLight(1, 70, 1); got != 9 {
		t.Errorf("block light(1,70,1) = %d, want 9", got)
	}
	if got := loaded.SkyLight(1, 70, 1); got != 12 {
		t.Errorf("sky light(1,70,1) = %d, want 12", got)
	}
	if got := loaded.Biome(1, 1); got != 4 {
		t.Errorf("biome(1,1) = %d, want 4", got)
	}
	if got := loaded.Biome(8, 8); got != 6 {
		t.Errorf("biome(8,8) = %d, want 6", got)
	}
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			if got, want := loaded.HeightMap(x, z), c.HeightMap(x, z); got != want {
				t.Errorf("heightMap(%d,%d) = %d, want %d", x, z, got, want)
			}
		}
	}
}
