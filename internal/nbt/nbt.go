// Package nbt implements the Named Binary Tag codec used for chunk
// heightmaps, block entities, and the Join Game dimension/biome registries.
// A named tag is encoded as <type:u8> [<name_length:u16> <name>] <payload>;
// the name header is omitted for End tags and for tags nested in a List.
package nbt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Kind identifies one of the 13 NBT tag kinds.
type Kind byte

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

// Tag is a recursive tagged value. Exactly one of the typed fields is valid
// for a given Kind.
type Tag struct {
	Kind Kind

	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	Str       string
	// List holds ListElem-kind children; all share ListElem.
	List     []Tag
	ListElem Kind
	// Compound holds named children, insertion order preserved.
	Compound     []CompoundEntry
	IntArray     []int32
	LongArray    []int64
}

// CompoundEntry is one named child of a Compound tag.
type CompoundEntry struct {
	Name string
	Tag  Tag
}

// Get looks up a named child of a Compound tag.
func (t Tag) Get(name string) (Tag, bool) {
	for _, e := range t.Compound {
		if e.Name == name {
			return e.Tag, true
		}
	}
	return Tag{}, false
}

// Put appends or replaces a named child of a Compound tag.
func (t *Tag) Put(name string, child Tag) {
	for i, e := range t.Compound {
		if e.Name == name {
			t.Compound[i].Tag = child
			return
		}
	}
	t.Compound = append(t.Compound, CompoundEntry{Name: name, Tag: child})
}

// NewCompound builds a Compound tag from entries, in order.
func NewCompound(entries ...CompoundEntry) Tag {
	return Tag{Kind: KindCompound, Compound: entries}
}

// Entry is a convenience constructor for a CompoundEntry.
func Entry(name string, tag Tag) CompoundEntry {
	return CompoundEntry{Name: name, Tag: tag}
}

func ByteTag(v int8) Tag        { return Tag{Kind: KindByte, Byte: v} }
func ShortTag(v int16) Tag      { return Tag{Kind: KindShort, Short: v} }
func IntTag(v int32) Tag        { return Tag{Kind: KindInt, Int: v} }
func LongTag(v int64) Tag       { return Tag{Kind: KindLong, Long: v} }
func FloatTag(v float32) Tag    { return Tag{Kind: KindFloat, Float: v} }
func DoubleTag(v float64) Tag   { return Tag{Kind: KindDouble, Double: v} }
func StringTag(v string) Tag    { return Tag{Kind: KindString, Str: v} }
func IntArrayTag(v []int32) Tag { return Tag{Kind: KindIntArray, IntArray: v} }
func LongArrayTag(v []int64) Tag { return Tag{Kind: KindLongArray, LongArray: v} }
func ListTag(elem Kind, items []Tag) Tag {
	return Tag{Kind: KindList, ListElem: elem, List: items}
}

// Encode writes a named root tag to w: <type> <name_length:u16> <name>
// <payload>.
func Encode(w io.Writer, name string, t Tag) error {
	if _, err := w.Write([]byte{byte(t.Kind)}); err != nil {
		return err
	}
	if t.Kind == KindEnd {
		return nil
	}
	if err := writeNBTString(w, name); err != nil {
		return err
	}
	return writePayload(w, t)
}

// Decode reads a named root tag from r.
func Decode(r io.Reader) (name string, t Tag, err error) {
	var kindByte [1]byte
	if _, err = io.ReadFull(r, kindByte[:]); err != nil {
		return "", Tag{}, err
	}
	kind := Kind(kindByte[0])
	if kind == KindEnd {
		return "", Tag{Kind: KindEnd}, nil
	}

	name, err = readNBTString(r)
	if err != nil {
		return "", Tag{}, err
	}
	t, err = readPayload(r, kind)
	return name, t, err
}

// EncodeGzip encodes a named root tag through a gzip writer, as used when
// persisting or transmitting a compressed NBT document.
func EncodeGzip(w io.Writer, name string, t Tag) error {
	gz := gzip.NewWriter(w)
	if err := Encode(gz, name, t); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// DecodeGzip reads a named root tag through a gzip reader.
func DecodeGzip(r io.Reader) (name string, t Tag, err error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return "", Tag{}, fmt.Errorf("nbt: gzip header: %w", err)
	}
	defer gz.Close()
	return Decode(gz)
}

func writeNBTString(w io.Writer, s string) error {
	raw := []byte(s)
	if len(raw) > 0xFFFF {
		return errors.New("nbt: string too long")
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(raw))); err != nil {
		return err
	}
	_, err := w.Write(raw)
	return err
}

func readNBTString(r io.Reader) (string, error) {
	var length uint16
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writePayload(w io.Writer, t Tag) error {
	switch t.Kind {
	case KindByte:
		return binary.Write(w, binary.BigEndian, t.Byte)
	case KindShort:
		return binary.Write(w, binary.BigEndian, t.Short)
	case KindInt:
		return binary.Write(w, binary.BigEndian, t.Int)
	case KindLong:
		return binary.Write(w, binary.BigEndian, t.Long)
	case KindFloat:
		return binary.Write(w, binary.BigEndian, t.Float)
	case KindDouble:
		return binary.Write(w, binary.BigEndian, t.Double)
	case KindByteArray:
		if err := binary.Write(w, binary.BigEndian, int32(len(t.ByteArray))); err != nil {
			return err
		}
		_, err := w.Write(t.ByteArray)
		return err
	case KindString:
		return writeNBTString(w, t.Str)
	case KindList:
		if _, err := w.Write([]byte{byte(t.ListElem)}); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, int32(len(t.List))); err != nil {
			return err
		}
		for _, item := range t.List {
			if err := writePayload(w, item); err != nil {
				return err
			}
		}
		return nil
	case KindCompound:
		for _, e := range t.Compound {
			if err := Encode(w, e.Name, e.Tag); err != nil {
				return err
			}
		}
		_, err := w.Write([]byte{byte(KindEnd)})
		return err
	case KindIntArray:
		if err := binary.Write(w, binary.BigEndian, int32(len(t.IntArray))); err != nil {
			return err
		}
		return binary.Write(w, binary.BigEndian, t.IntArray)
	case KindLongArray:
		if err := binary.Write(w, binary.BigEndian, int32(len(t.LongArray))); err != nil {
			return err
		}
		return binary.Write(w, binary.BigEndian, t.LongArray)
	default:
		return fmt.Errorf("nbt: unknown tag kind %d", t.Kind)
	}
}

func readPayload(r io.Reader, kind Kind) (Tag, error) {
	switch kind {
	case KindByte:
		var v int8
		err := binary.Read(r, binary.BigEndian, &v)
		return Tag{Kind: kind, Byte: v}, err
	case KindShort:
		var v int16
		err := binary.Read(r, binary.BigEndian, &v)
		return Tag{Kind: kind, Short: v}, err
	case KindInt:
		var v int32
		err := binary.Read(r, binary.BigEndian, &v)
		return Tag{Kind: kind, Int: v}, err
	case KindLong:
		var v int64
		err := binary.Read(r, binary.BigEndian, &v)
		return Tag{Kind: kind, Long: v}, err
	case KindFloat:
		var v float32
		err := binary.Read(r, binary.BigEndian, &v)
		return Tag{Kind: kind, Float: v}, err
	case KindDouble:
		var v float64
		err := binary.Read(r, binary.BigEndian, &v)
		return Tag{Kind: kind, Double: v}, err
	case KindByteArray:
		var n int32
		if err := binary.Read(r, binary.BigEndian, &n); err != nil {
			return Tag{}, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, ByteArray: buf}, nil
	case KindString:
		s, err := readNBTString(r)
		return Tag{Kind: kind, Str: s}, err
	case KindList:
		var elemByte [1]byte
		if _, err := io.ReadFull(r, elemByte[:]); err != nil {
			return Tag{}, err
		}
		elem := Kind(elemByte[0])
		var n int32
		if err := binary.Read(r, binary.BigEndian, &n); err != nil {
			return Tag{}, err
		}
		if n < 0 {
			return Tag{}, errors.New("nbt: negative list length")
		}
		items := make([]Tag, 0, n)
		for i := int32(0); i < n; i++ {
			item, err := readPayload(r, elem)
			if err != nil {
				return Tag{}, err
			}
			items = append(items, item)
		}
		return Tag{Kind: kind, ListElem: elem, List: items}, nil
	case KindCompound:
		var entries []CompoundEntry
		for {
			name, child, err := Decode(r)
			if err != nil {
				return Tag{}, err
			}
			if child.Kind == KindEnd {
				break
			}
			entries = append(entries, CompoundEntry{Name: name, Tag: child})
		}
		return Tag{Kind: kind, Compound: entries}, nil
	case KindIntArray:
		var n int32
		if err := binary.Read(r, binary.BigEndian, &n); err != nil {
			return Tag{}, err
		}
		if n < 0 {
			return Tag{}, errors.New("nbt: negative int array length")
		}
		arr := make([]int32, n)
		if err := binary.Read(r, binary.BigEndian, arr); err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, IntArray: arr}, nil
	case KindLongArray:
		var n int32
		if err := binary.Read(r, binary.BigEndian, &n); err != nil {
			return Tag{}, err
		}
		if n < 0 {
			return Tag{}, errors.New("nbt: negative long array length")
		}
		arr := make([]int64, n)
		if err := binary.Read(r, binary.BigEndian, arr); err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, LongArray: arr}, nil
	default:
		return Tag{}, fmt.Errorf("nbt: unknown tag kind %d", kind)
	}
}
