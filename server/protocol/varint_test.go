package protocol

import (
	"bytes"
	"testing"
)

// TestVarIntBijection covers spec.md §8 testable property 3: encode then
// decode must return the original value for every representable int32.
func TestVarIntBijection(t *testing.T) {
	cases := []int32{0, 1, -1, 127, 128, 255, 2097151, 2147483647, -2147483648, 25565}
	for _, v := range cases {
		var buf bytes.Buffer
		WriteVarInt(&buf, v)
		got, err := ReadVarInt(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("ReadVarInt(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("roundtrip mismatch: wrote %d, read %d", v, got)
		}
		if buf.Len() > 5 {
			t.Fatalf("VarInt encoding of %d exceeded 5 bytes: %d", v, buf.Len())
		}
	}
}

func TestVarLongBijection(t *testing.T) {
	cases := []int64{0, 1, -1, 1 << 40, -(1 << 40), 9223372036854775807, -9223372036854775808}
	for _, v := range cases {
		var buf bytes.Buffer
		WriteVarLong(&buf, v)
		got, err := ReadVarLong(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("ReadVarLong(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("roundtrip mismatch: wrote %d, read %d", v, got)
		}
		if buf.Len() > 10 {
			t.Fatalf("VarLong encoding of %d exceeded 10 bytes: %d", v, buf.Len())
		}
	}
}

func TestReadVarIntTruncated(t *testing.T) {
	// A single continuation byte with no terminator.
	buf := []byte{0x80}
	if _, err := ReadVarInt(bytes.NewReader(buf)); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestReadVarIntTooLong(t *testing.T) {
	buf := bytes.Repeat([]byte{0x80}, 6)
	if _, err := ReadVarInt(bytes.NewReader(buf)); err != ErrVarIntTooLong {
		t.Fatalf("expected ErrVarIntTooLong, got %v", err)
	}
}

func TestPositionRoundtrip(t *testing.T) {
	cases := [][3]int{{0, 0, 0}, {100, 64, -100}, {-33554432, 0, 33554431}, {5, 255, -5}}
	for _, c := range cases {
		packed := EncodePosition(c[0], c[1], c[2])
		x, y, z := DecodePosition(packed)
		if x != c[0] || y != c[1] || z != c[2] {
			t.Fatalf("position roundtrip mismatch: wrote %v, read (%d,%d,%d)", c, x, y, z)
		}
	}
}

func TestStringRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	WriteString(&buf, "hello, world")
	got, err := ReadString(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "hello, world" {
		t.Fatalf("roundtrip mismatch: got %q", got)
	}
}
