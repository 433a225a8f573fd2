package registry

import (
	"bytes"
	"testing"

	"github.com/mc754/server/internal/protocol"
)

func TestPlayerPositionDecode(t *testing.T) {
	var buf bytes.Buffer
	fields := []protocol.Field{
		protocol.Double(1.5),
		protocol.Double(64.0),
		protocol.Double(2.5),
		protocol.Float(90.0),
		protocol.Float(-10.0),
		protocol.Boolean(true),
	}
	for _, f := range fields {
		if _, err := f.WriteTo(&buf); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}

	pos := &PlayerPosition{}
	if err := pos.Decode(&buf); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if pos.X != 1.5 || pos.Y != 64.0 || pos.Z != 2.5 {
		t.Fatalf("position = (%v,%v,%v), want (1.5,64,2.5)", pos.X, pos.Y, pos.Z)
	}
	if pos.Yaw != 90.0 || pos.Pitch != -10.0 {
		t.Fatalf("yaw/pitch = (%v,%v), want (90,-10)", pos.Yaw, pos.Pitch)
	}
	if !pos.OnGround {
		t.Fatal("OnGround = false, want true")
	}
}

func TestPlayerPositionAndLookEncode(t *testing.T) {
	p := &PlayerPositionAndLook{X: 1, Y: 64, Z: 2, Yaw: 0, Pitch: 0, Flags: 0, TeleportID: 7}
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var x, y, z protocol.Double
	var yaw, pitch protocol.Float
	var flags protocol.UnsignedByte
	var teleportID protocol.VarInt

	if _, err := x.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := y.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := z.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := yaw.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := pitch.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := flags.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := teleportID.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}

	if float64(x) != 1 || float64(y) != 64 || float64(z) != 2 {
		t.Fatalf("got (%v,%v,%v)", x, y, z)
	}
	if int32(teleportID) != 7 {
		t.Fatalf("teleport id = %d, want 7", teleportID)
	}
}
