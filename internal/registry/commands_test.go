package registry

import (
	"bytes"
	"testing"

	"github.com/mc754/server/internal/protocol"
)

func TestEmptyDeclareCommandsEncode(t *testing.T) {
	d := EmptyDeclareCommands()
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var nodeCount protocol.VarInt
	if _, err := nodeCount.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if nodeCount != 1 {
		t.Fatalf("node count = %d, want 1", nodeCount)
	}

	var flags protocol.UnsignedByte
	if _, err := flags.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if flags != 0 {
		t.Fatalf("root node flags = %#x, want 0 (root, no children, not executable)", flags)
	}

	var childCount protocol.VarInt
	if _, err := childCount.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if childCount != 0 {
		t.Fatalf("child count = %d, want 0", childCount)
	}

	var rootIndex protocol.VarInt
	if _, err := rootIndex.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if rootIndex != 0 {
		t.Fatalf("root index = %d, want 0", rootIndex)
	}
	if buf.Len() != 0 {
		t.Fatalf("%d trailing bytes after decoding the whole packet", buf.Len())
	}
}
