package world

import (
	"github.com/sablecore/voxelserver/server/block/cube"
)

// ChunkPos represents the position of a 16x16 chunk column.
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 { return p[0] }

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 { return p[1] }

// key packs the chunk position into a single int64 so it can be used with
// the intintmap-backed chunk cache, per the chunk provider's O(1) lookup
// requirement (spec.md §4.1).
func (p ChunkPos) key() int64 {
	return int64(uint32(p[0])) | int64(uint32(p[1]))<<32
}

func chunkPosFromKey(k int64) ChunkPos {
	return ChunkPos{int32(uint32(k)), int32(uint32(k >> 32))}
}

// chunkPosFromBlockPos returns the ChunkPos a block position falls in.
func chunkPosFromBlockPos(pos cube.Pos) ChunkPos {
	return ChunkPos{int32(pos.ChunkX()), int32(pos.ChunkZ())}
}
