package chunk

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/sablecore/voxelserver/server/internal/nbt"
)

// Region-file layout constants, per spec.md §6: a 32x32 chunk grid, a 4KiB
// offset table, a 4KiB timestamp table, and 4KiB payload sectors.
const (
	regionWidth  = 32
	sectorSize   = 4096
	headerTables = 2 * sectorSize

	compressionGZip = 1
	compressionZlib = 2
)

// Region is a single on-disk container for a 32x32 grid of chunk columns.
// It keeps only the header tables in memory; payload sectors are read and
// written directly against the backing file.
type Region struct {
	mu sync.Mutex
	f  *os.File

	// offsets[i] packs (sector offset<<8 | sector count), matching the
	// on-disk 3-byte-offset/1-byte-count header entry.
	offsets    [regionWidth * regionWidth]uint32
	timestamps [regionWidth * regionWidth]uint32

	// sectorsUsed tracks which of the sectors beyond the header are in use, so a
	// re-save can keep a chunk's existing footprint when its size does
	// not change, satisfying the sector-allocation-stability property in
	// spec.md §8 ("re-saving unchanged chunks does not grow the file
	// beyond ±1 sector per chunk").
	sectorsUsed []bool
}

// OpenRegion opens (creating if absent) the region file at path and parses
// its header tables.
func OpenRegion(path string) (*Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("chunk: open region %s: %w", path, err)
	}
	r := &Region{f: f}
	if err := r.readHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func (r *Region) readHeader() error {
	info, err := r.f.Stat()
	if err != nil {
		return err
	}
	if info.Size() < headerTables {
		// Fresh file: allocate the two header sectors and leave the
		// tables zeroed (no chunks present).
		if err := r.f.Truncate(headerTables); err != nil {
			return fmt.Errorf("chunk: init region header: %w", err)
		}
		r.sectorsUsed = make([]bool, 2)
		return nil
	}
	buf := make([]byte, headerTables)
	if _, err := r.f.ReadAt(buf, 0); err != nil {
		return fmt.Errorf("chunk: read region header: %w", err)
	}
	sectorCount := int(info.Size()/sectorSize) + 1
	r.sectorsUsed = make([]bool, sectorCount)
	r.sectorsUsed[0], r.sectorsUsed[1] = true, true

	for i := 0; i < regionWidth*regionWidth; i++ {
		off := uint32(buf[4*i])<<16 | uint32(buf[4*i+1])<<8 | uint32(buf[4*i+2])
		cnt := uint32(buf[4*i+3])
		r.offsets[i] = off<<8 | cnt
		ts := uint32(buf[sectorSize+4*i])<<24 | uint32(buf[sectorSize+4*i+1])<<16 |
			uint32(buf[sectorSize+4*i+2])<<8 | uint32(buf[sectorSize+4*i+3])
		r.timestamps[i] = ts
		if cnt > 0 {
			for s := int(off); s < int(off)+int(cnt) && s < len(r.sectorsUsed); s++ {
				r.sectorsUsed[s] = true
			}
		}
	}
	return nil
}

func regionIndex(localX, localZ int) int { return localZ*regionWidth + localX }

// Has reports whether the region file holds data for the chunk at
// region-local (x,z) (each in [0,32)).
func (r *Region) Has(localX, localZ int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offsets[regionIndex(localX, localZ)]&0xFF != 0
}

// Load reads and decompresses the chunk payload at region-local (x,z),
// returning its decoded "Level" compound. Any corruption (bad length,
// unknown compression tag, truncated payload) is reported as a plain
// error; per spec.md §7 the caller treats this as a disk miss and
// regenerates.
func (r *Region) Load(localX, localZ int) (*nbt.Compound, error) {
	r.mu.Lock()
	entry := r.offsets[regionIndex(localX, localZ)]
	r.mu.Unlock()

	cnt := entry & 0xFF
	if cnt == 0 {
		return nil, fmt.Errorf("chunk: no data for region-local (%d,%d)", localX, localZ)
	}
	off := int64(entry>>8) * sectorSize

	lenTag := make([]byte, 5)
	if _, err := r.f.ReadAt(lenTag, off); err != nil {
		return nil, fmt.Errorf("chunk: read sector header: %w", err)
	}
	length := int(lenTag[0])<<24 | int(lenTag[1])<<16 | int(lenTag[2])<<8 | int(lenTag[3])
	if length < 1 {
		return nil, fmt.Errorf("chunk: invalid payload length %d", length)
	}
	tag := lenTag[4]

	payload := make([]byte, length-1)
	if _, err := r.f.ReadAt(payload, off+5); err != nil {
		return nil, fmt.Errorf("chunk: read payload: %w", err)
	}

	var reader io.Reader
	switch tag {
	case compressionGZip:
		gr, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("chunk: gzip header: %w", err)
		}
		defer gr.Close()
		reader = gr
	case compressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("chunk: zlib header: %w", err)
		}
		defer zr.Close()
		reader = zr
	default:
		return nil, fmt.Errorf("chunk: unknown compression tag %d", tag)
	}

	_, root, err := nbt.NewDecoder(reader).Decode()
	if err != nil {
		return nil, fmt.Errorf("chunk: decode nbt: %w", err)
	}
	return root, nil
}

// Save compresses root with zlib (matching the reference anvil format's
// default) and writes it at region-local (x,z), reusing the chunk's
// existing sector span when the new payload still fits, per spec.md §8's
// sector-stability property.
func (r *Region) Save(localX, localZ int, root *nbt.Compound, timestamp uint32) error {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if err := nbt.NewEncoder(zw).Encode("", root); err != nil {
		zw.Close()
		return fmt.Errorf("chunk: encode nbt: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("chunk: flush zlib: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := regionIndex(localX, localZ)
	needed := (buf.Len() + 5 + sectorSize - 1) / sectorSize
	entry := r.offsets[idx]
	curOff, curCnt := int(entry>>8), int(entry&0xFF)

	var startSector int
	if curCnt >= needed && curCnt > 0 {
		startSector = curOff
		for s := curOff + needed; s < curOff+curCnt; s++ {
			r.sectorsUsed[s] = false
		}
	} else {
		if curCnt > 0 {
			for s := curOff; s < curOff+curCnt; s++ {
				r.sectorsUsed[s] = false
			}
		}
		startSector = r.allocate(needed)
	}
	for s := startSector; s < startSector+needed; s++ {
		r.sectorsUsed[s] = true
	}

	payloadLen := buf.Len() + 1
	header := make([]byte, 5)
	header[0] = byte(payloadLen >> 24)
	header[1] = byte(payloadLen >> 16)
	header[2] = byte(payloadLen >> 8)
	header[3] = byte(payloadLen)
	header[4] = compressionZlib

	out := make([]byte, needed*sectorSize)
	copy(out, header)
	copy(out[5:], buf.Bytes())

	if _, err := r.f.WriteAt(out, int64(startSector)*sectorSize); err != nil {
		return fmt.Errorf("chunk: write payload: %w", err)
	}

	r.offsets[idx] = uint32(startSector)<<8 | uint32(needed)
	r.timestamps[idx] = timestamp
	return r.writeHeaderEntry(idx)
}

// allocate finds (or extends the file to make) a run of `needed`
// contiguous free sectors, first-fit.
func (r *Region) allocate(needed int) int {
	run := 0
	for i := 2; i < len(r.sectorsUsed); i++ {
		if !r.sectorsUsed[i] {
			run++
			if run == needed {
				return i - needed + 1
			}
		} else {
			run = 0
		}
	}
	start := len(r.sectorsUsed)
	for len(r.sectorsUsed) < start+needed {
		r.sectorsUsed = append(r.sectorsUsed, false)
	}
	return start
}

func (r *Region) writeHeaderEntry(idx int) error {
	var buf [4]byte
	off, cnt := r.offsets[idx]>>8, r.offsets[idx]&0xFF
	buf[0], buf[1], buf[2], buf[3] = byte(off>>16), byte(off>>8), byte(off), byte(cnt)
	if _, err := r.f.WriteAt(buf[:], int64(4*idx)); err != nil {
		return fmt.Errorf("chunk: write offset entry: %w", err)
	}
	ts := r.timestamps[idx]
	buf[0], buf[1], buf[2], buf[3] = byte(ts>>24), byte(ts>>16), byte(ts>>8), byte(ts)
	if _, err := r.f.WriteAt(buf[:], int64(sectorSize+4*idx)); err != nil {
		return fmt.Errorf("chunk: write timestamp entry: %w", err)
	}
	return nil
}

// Close flushes and releases the backing file.
func (r *Region) Close() error { return r.f.Close() }

// PopulatedCoords returns the region-local (x,z) pairs with stored data,
// sorted for deterministic iteration (used by tooling/tests).
func (r *Region) PopulatedCoords() [][2]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out [][2]int
	for i, entry := range r.offsets {
		if entry&0xFF != 0 {
			out = append(out, [2]int{i % regionWidth, i / regionWidth})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][1] != out[j][1] {
			return out[i][1] < out[j][1]
		}
		return out[i][0] < out[j][0]
	})
	return out
}
