// Package protocol implements the 1.7.10-era wire primitives of spec.md
// §6: the VarInt/VarLong base-128 codec, position/rotation encodings,
// and the chat-JSON component serializer, grounded on the teacher's
// own byte-level NBT encoder (server/internal/nbt) for the big-endian
// fixed-width conventions.
package protocol

import (
	"bytes"
	"errors"
	"io"
)

// ErrVarIntTooLong reports a VarInt/VarLong exceeding its maximum byte
// length (5 for VarInt, 10 for VarLong), per spec.md §6.
var ErrVarIntTooLong = errors.New("protocol: varint too long")

// ErrTruncated reports a VarInt/VarLong cut off by end of input.
var ErrTruncated = errors.New("protocol: truncated varint")

const (
	continueBit = 0x80
	segmentBits = 0x7F
)

// WriteVarInt appends the base-128 encoding of v to w, per spec.md §6.
func WriteVarInt(w *bytes.Buffer, v int32) {
	u := uint32(v)
	for {
		if u&^uint32(segmentBits) == 0 {
			w.WriteByte(byte(u))
			return
		}
		w.WriteByte(byte(u&segmentBits) | continueBit)
		u >>= 7
	}
}

// ReadVarInt decodes a VarInt from r, per spec.md §6 ("MSB=1 means
// 'more'; VarInt <= 5 bytes").
func ReadVarInt(r io.ByteReader) (int32, error) {
	var value uint32
	var position uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrTruncated
		}
		value |= uint32(b&segmentBits) << position
		if b&continueBit == 0 {
			break
		}
		position += 7
		if position >= 35 {
			return 0, ErrVarIntTooLong
		}
	}
	return int32(value), nil
}

// WriteVarLong appends the base-128 encoding of v to w, per spec.md §6.
func WriteVarLong(w *bytes.Buffer, v int64) {
	u := uint64(v)
	for {
		if u&^uint64(segmentBits) == 0 {
			w.WriteByte(byte(u))
			return
		}
		w.WriteByte(byte(u&segmentBits) | continueBit)
		u >>= 7
	}
}

// ReadVarLong decodes a VarLong from r, per spec.md §6 ("VarLong <= 10
// bytes").
func ReadVarLong(r io.ByteReader) (int64, error) {
	var value uint64
	var position uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrTruncated
		}
		value |= uint64(b&segmentBits) << position
		if b&continueBit == 0 {
			break
		}
		position += 7
		if position >= 70 {
			return 0, ErrVarIntTooLong
		}
	}
	return int64(value), nil
}

// WriteString writes a VarInt byte length followed by the UTF-8 bytes of
// s, per spec.md §6.
func WriteString(w *bytes.Buffer, s string) {
	WriteVarInt(w, int32(len(s)))
	w.WriteString(s)
}

// ReadString reads a VarInt-prefixed UTF-8 string from r.
func ReadString(r *bytes.Reader) (string, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errors.New("protocol: negative string length")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ErrTruncated
	}
	return string(buf), nil
}

// EncodePosition packs a block position into a 64-bit value: x in the top
// 26 bits (38-63), y in the next 12 bits (26-37) and z in the lowest 26
// bits.
func EncodePosition(x, y, z int) uint64 {
	return (uint64(x)&0x3FFFFFF)<<38 | (uint64(y)&0xFFF)<<26 | (uint64(z) & 0x3FFFFFF)
}

// DecodePosition unpacks EncodePosition's bit layout, sign-extending each
// field from its packed width.
func DecodePosition(v uint64) (x, y, z int) {
	x = int(v >> 38)
	if x >= 1<<25 {
		x -= 1 << 26
	}
	y = int((v >> 26) & 0xFFF)
	if y >= 1<<11 {
		y -= 1 << 12
	}
	z = int(v & 0x3FFFFFF)
	if z >= 1<<25 {
		z -= 1 << 26
	}
	return
}

// EncodeAngle converts a float degree rotation to the protocol's
// single-byte angle encoding (256 steps per full turn).
func EncodeAngle(degrees float64) byte { return byte(int32(degrees*256/360) & 0xFF) }
