package chunk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sablecore/voxelserver/server/world/chunk"
)

// TestRegionSaveIsSectorStable exercises spec.md §8's sector-allocation
// stability property: re-saving a chunk whose encoded size has not
// changed must reuse the same sector span rather than growing the file.
func TestRegionSaveIsSectorStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.0.0.mcr")
	r, err := chunk.OpenRegion(path)
	if err != nil {
		t.Fatalf("open region: %v", err)
	}
	defer r.Close()

	c := chunk.NewColumn(5, 5, true)
	c.SetBlock(1, 70, 1, 1, 0)

	if err := r.Save(5, 5, c.ToNBT(), 1); err != nil {
		t.Fatalf("first save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat after first save: %v", err)
	}
	sizeAfterFirst := info.Size()

	if err := r.Save(5, 5, c.ToNBT(), 2); err != nil {
		t.Fatalf("second save: %v", err)
	}
	info, err = os.Stat(path)
	if err != nil {
		t.Fatalf("stat after second save: %v", err)
	}
	if info.Size() != sizeAfterFirst {
		t.Fatalf("re-saving an unchanged-size chunk grew the file: %d -> %d", sizeAfterFirst, info.Size())
	}

	loaded, err := r.Load(5, 5)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := chunk.FromNBT(loaded, true)
	if id, meta := got.Block(1, 70, 1); id != 1 || meta != 0 {
		t.Fatalf("block(1,70,1) = (%d,%d), want (1,0)", id, meta)
	}
}

// TestRegionSaveGrownChunkRoundTrips confirms a chunk whose encoded
// payload grows between saves is re-saved and loads back intact.
func TestRegionSaveGrownChunkRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.0.0.mcr")
	r, err := chunk.OpenRegion(path)
	if err != nil {
		t.Fatalf("open region: %v", err)
	}
	defer r.Close()

	small := chunk.NewColumn(1, 1, true)
	if err := r.Save(1, 1, small.ToNBT(), 1); err != nil {
		t.Fatalf("save small: %v", err)
	}

	full := chunk.NewColumn(1, 1, true)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 128; y++ {
				full.SetBlock(x, y, z, uint16(1+(x+y+z)%200), byte(y%16))
			}
		}
	}
	if err := r.Save(1, 1, full.ToNBT(), 2); err != nil {
		t.Fatalf("save full: %v", err)
	}

	loaded, err := r.Load(1, 1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := chunk.FromNBT(loaded, true)
	if id, meta := got.Block(3, 40, 7); id == 0 {
		t.Fatalf("unexpected air at (3,40,7): id=%d meta=%d", id, meta)
	}
}
