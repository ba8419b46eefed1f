package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encoder writes NBT tags to an io.Writer in big-endian wire format.
type Encoder struct {
	w   io.Writer
	err error
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Encode writes the root compound under the given name. Region-file
// payloads use an empty name, with the chunk's Level fields stored
// directly in the root compound.
func (e *Encoder) Encode(name string, root *Compound) error {
	e.writeTagHeader(TagCompound, name)
	e.writeCompound(root)
	return e.err
}

func (e *Encoder) writeTagHeader(id TagID, name string) {
	e.writeByte(byte(id))
	e.writeString(name)
}

func (e *Encoder) writeByte(b byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write([]byte{b})
}

func (e *Encoder) writeString(s string) {
	if e.err != nil {
		return
	}
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(len(s)))
	if _, err := e.w.Write(buf[:]); err != nil {
		e.err = err
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *Encoder) writeRaw(v any) {
	if e.err != nil {
		return
	}
	e.err = binary.Write(e.w, binary.BigEndian, v)
}

func (e *Encoder) writeCompound(c *Compound) {
	for _, key := range c.keys {
		v := c.values[key]
		id := tagIDOf(v)
		e.writeTagHeader(id, key)
		e.writeValue(id, v)
	}
	// TAG_End terminates the compound.
	e.writeByte(byte(TagEnd))
}

func (e *Encoder) writeValue(id TagID, v any) {
	switch id {
	case TagByte:
		e.writeRaw(v.(int8))
	case TagShort:
		e.writeRaw(v.(int16))
	case TagInt:
		e.writeRaw(v.(int32))
	case TagLong:
		e.writeRaw(v.(int64))
	case TagFloat:
		e.writeRaw(v.(float32))
	case TagDouble:
		e.writeRaw(v.(float64))
	case TagByteArray:
		b := v.([]byte)
		e.writeRaw(int32(len(b)))
		if e.err == nil {
			_, e.err = e.w.Write(b)
		}
	case TagString:
		e.writeString(v.(string))
	case TagIntArray:
		arr := v.([]int32)
		e.writeRaw(int32(len(arr)))
		for _, x := range arr {
			e.writeRaw(x)
		}
	case TagCompound:
		e.writeCompound(v.(*Compound))
	case TagList:
		e.writeList(v.([]any))
	default:
		e.err = fmt.Errorf("nbt: unsupported tag id %d", id)
	}
}

func (e *Encoder) writeList(list []any) {
	elemID := TagEnd
	if len(list) > 0 {
		elemID = tagIDOf(list[0])
	}
	e.writeByte(byte(elemID))
	e.writeRaw(int32(len(list)))
	for _, v := range list {
		e.writeValue(elemID, v)
	}
}

func tagIDOf(v any) TagID {
	switch v.(type) {
	case int8:
		return TagByte
	case int16:
		return TagShort
	case int32:
		return TagInt
	case int64:
		return TagLong
	case float32:
		return TagFloat
	case float64:
		return TagDouble
	case []byte:
		return TagByteArray
	case string:
		return TagString
	case []int32:
		return TagIntArray
	case *Compound:
		return TagCompound
	case []any:
		return TagList
	default:
		panic(fmt.Sprintf("nbt: cannot encode Go type %T", v))
	}
}

// Decoder reads NBT tags from an io.Reader.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// Decode reads one root-level named compound tag, returning its name and
// contents.
func (d *Decoder) Decode() (name string, root *Compound, err error) {
	id, err := d.readByteID()
	if err != nil {
		return "", nil, err
	}
	if TagID(id) != TagCompound {
		return "", nil, fmt.Errorf("nbt: expected root TAG_Compound, got id %d", id)
	}
	name, err = d.readString()
	if err != nil {
		return "", nil, err
	}
	root, err = d.readCompound()
	return name, root, err
}

func (d *Decoder) readByteID() (byte, error) {
	var buf [1]byte
	_, err := io.ReadFull(d.r, buf[:])
	return buf[0], err
}

func (d *Decoder) readString() (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(d.r, lenBuf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}

func (d *Decoder) readCompound() (*Compound, error) {
	c := NewCompound()
	for {
		id, err := d.readByteID()
		if err != nil {
			return nil, err
		}
		if TagID(id) == TagEnd {
			return c, nil
		}
		name, err := d.readString()
		if err != nil {
			return nil, err
		}
		v, err := d.readValue(TagID(id))
		if err != nil {
			return nil, fmt.Errorf("nbt: tag %q: %w", name, err)
		}
		c.Set(name, v)
	}
}

func (d *Decoder) readValue(id TagID) (any, error) {
	switch id {
	case TagByte:
		var v int8
		return v, binary.Read(d.r, binary.BigEndian, &v)
	case TagShort:
		var v int16
		return v, binary.Read(d.r, binary.BigEndian, &v)
	case TagInt:
		var v int32
		return v, binary.Read(d.r, binary.BigEndian, &v)
	case TagLong:
		var v int64
		return v, binary.Read(d.r, binary.BigEndian, &v)
	case TagFloat:
		var v float32
		return v, binary.Read(d.r, binary.BigEndian, &v)
	case TagDouble:
		var v float64
		return v, binary.Read(d.r, binary.BigEndian, &v)
	case TagByteArray:
		var n int32
		if err := binary.Read(d.r, binary.BigEndian, &n); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: negative byte array length %d", n)
		}
		buf := make([]byte, n)
		if n > 0 {
			if _, err := io.ReadFull(d.r, buf); err != nil {
				return nil, err
			}
		}
		return buf, nil
	case TagString:
		return d.readString()
	case TagIntArray:
		var n int32
		if err := binary.Read(d.r, binary.BigEndian, &n); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: negative int array length %d", n)
		}
		arr := make([]int32, n)
		for i := range arr {
			if err := binary.Read(d.r, binary.BigEndian, &arr[i]); err != nil {
				return nil, err
			}
		}
		return arr, nil
	case TagCompound:
		return d.readCompound()
	case TagList:
		return d.readList()
	default:
		return nil, fmt.Errorf("nbt: unsupported tag id %d", id)
	}
}

func (d *Decoder) readList() ([]any, error) {
	elemIDByte, err := d.readByteID()
	if err != nil {
		return nil, err
	}
	elemID := TagID(elemIDByte)
	var n int32
	if err := binary.Read(d.r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("nbt: negative list length %d", n)
	}
	if elemID == TagEnd {
		return []any{}, nil
	}
	list := make([]any, n)
	for i := range list {
		v, err := d.readValue(elemID)
		if err != nil {
			return nil, err
		}
		list[i] = v
	}
	return list, nil
}
