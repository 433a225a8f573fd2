package protocol

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestVarIntBoundary(t *testing.T) {
	cases := []struct {
		value VarInt
		wire  []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{-1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	}

	for _, c := range cases {
		var buf bytes.Buffer
		if _, err := c.value.WriteTo(&buf); err != nil {
			t.Fatalf("encode(%d): %v", c.value, err)
		}
		if !bytes.Equal(buf.Bytes(), c.wire) {
			t.Fatalf("encode(%d) = % x, want % x", c.value, buf.Bytes(), c.wire)
		}

		var decoded VarInt
		if _, err := decoded.ReadFrom(bytes.NewReader(c.wire)); err != nil {
			t.Fatalf("decode(% x): %v", c.wire, err)
		}
		if decoded != c.value {
			t.Fatalf("decode(% x) = %d, want %d", c.wire, decoded, c.value)
		}
	}
}

func TestVarIntTooLong(t *testing.T) {
	wire := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	var v VarInt
	if _, err := v.ReadFrom(bytes.NewReader(wire)); err == nil {
		t.Fatal("expected error decoding a 6-byte VarInt")
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []String{"", "hello", "héllo wörld", "TestPlayer"} {
		var buf bytes.Buffer
		if _, err := s.WriteTo(&buf); err != nil {
			t.Fatalf("encode(%q): %v", s, err)
		}
		var decoded String
		if _, err := decoded.ReadFrom(&buf); err != nil {
			t.Fatalf("decode(%q): %v", s, err)
		}
		if decoded != s {
			t.Fatalf("decode(%q) = %q", s, decoded)
		}
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	_, _ = VarInt(2).WriteTo(&buf)
	buf.Write([]byte{0xFF, 0xFE})

	var s String
	if _, err := s.ReadFrom(&buf); err == nil {
		t.Fatal("expected error decoding invalid UTF-8")
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	id := UUID(uuid.New())
	var buf bytes.Buffer
	if _, err := id.WriteTo(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var decoded UUID
	if _, err := decoded.ReadFrom(&buf); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != id {
		t.Fatalf("decode() = %v, want %v", decoded, id)
	}
}

func TestNumericRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	_, _ = UnsignedShort(25565).WriteTo(&buf)
	_, _ = Int(-12345).WriteTo(&buf)
	_, _ = Long(0x123456789abcdef0).WriteTo(&buf)
	_, _ = Float(3.14).WriteTo(&buf)
	_, _ = Double(2.718281828).WriteTo(&buf)

	var us UnsignedShort
	var i Int
	var l Long
	var f Float
	var d Double

	if _, err := us.ReadFrom(&buf); err != nil || us != 25565 {
		t.Fatalf("UnsignedShort round trip failed: %v %v", us, err)
	}
	if _, err := i.ReadFrom(&buf); err != nil || i != -12345 {
		t.Fatalf("Int round trip failed: %v %v", i, err)
	}
	if _, err := l.ReadFrom(&buf); err != nil || l != 0x123456789abcdef0 {
		t.Fatalf("Long round trip failed: %v %v", l, err)
	}
	if _, err := f.ReadFrom(&buf); err != nil || f != 3.14 {
		t.Fatalf("Float round trip failed: %v %v", f, err)
	}
	if _, err := d.ReadFrom(&buf); err != nil || d != 2.718281828 {
		t.Fatalf("Double round trip failed: %v %v", d, err)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	frame := NewFrame(0x00, VarInt(754), String("localhost"), UnsignedShort(25565), VarInt(2))

	var wire bytes.Buffer
	if err := WriteFrame(&wire, frame); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	decoded, err := ReadFrame(&wire)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if decoded.ID != 0x00 {
		t.Fatalf("ID = %d, want 0", decoded.ID)
	}

	var protocolVersion VarInt
	var addr String
	var port UnsignedShort
	var next VarInt
	if _, err := protocolVersion.ReadFrom(decoded); err != nil {
		t.Fatal(err)
	}
	if _, err := addr.ReadFrom(decoded); err != nil {
		t.Fatal(err)
	}
	if _, err := port.ReadFrom(decoded); err != nil {
		t.Fatal(err)
	}
	if _, err := next.ReadFrom(decoded); err != nil {
		t.Fatal(err)
	}

	if protocolVersion != 754 || addr != "localhost" || port != 25565 || next != 2 {
		t.Fatalf("unexpected decoded fields: %d %q %d %d", protocolVersion, addr, port, next)
	}
}
