package registry

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/mc754/server/internal/protocol"
)

func TestLoginStartDecode(t *testing.T) {
	var buf bytes.Buffer
	if _, err := protocol.String("TestPlayer").WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	start := &LoginStart{}
	if err := start.Decode(&buf); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if start.Username != "TestPlayer" {
		t.Fatalf("Username = %q, want TestPlayer", start.Username)
	}
}

func TestLoginSuccessEncode(t *testing.T) {
	id := uuid.NewMD5(uuid.NameSpaceDNS, []byte("OfflinePlayer:TestPlayer"))
	success := &LoginSuccess{UUID: protocol.UUID(id), Username: "TestPlayer"}

	var buf bytes.Buffer
	if err := success.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decodedUUID protocol.UUID
	if _, err := decodedUUID.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	var decodedUsername protocol.String
	if _, err := decodedUsername.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}

	if uuid.UUID(decodedUUID) != id {
		t.Fatalf("uuid round trip mismatch: got %v, want %v", uuid.UUID(decodedUUID), id)
	}
	if string(decodedUsername) != "TestPlayer" {
		t.Fatalf("username round trip mismatch: got %q", decodedUsername)
	}
}

func TestOfflineUUIDScenario(t *testing.T) {
	got := uuid.NewMD5(uuid.NameSpaceDNS, []byte("OfflinePlayer:TestPlayer"))
	want := uuid.NewMD5(uuid.NameSpaceDNS, []byte("OfflinePlayer:TestPlayer"))
	if got != want {
		t.Fatalf("UUIDv3 derivation is not deterministic: %v != %v", got, want)
	}
}
