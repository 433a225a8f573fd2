package chunk

import (
	"bytes"
	"testing"
)

func TestColumnGetSetAcrossSections(t *testing.T) {
	col := NewChunkColumn(0, 0)
	stone := vanillaState(t, "minecraft:stone", 0)

	if err := col.Set(5, 64, 9, stone); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := col.Get(5, 64, 9); got != stone {
		t.Fatalf("Get = %+v, want %+v", got, stone)
	}
	if got := col.Get(5, 63, 9); !got.IsAir() {
		t.Fatalf("neighbouring cell should still be air, got %+v", got)
	}
	if got := col.Get(5, 200, 9); !got.IsAir() {
		t.Fatalf("absent section should read as air, got %+v", got)
	}
}

func TestHeightmapSingleBlock(t *testing.T) {
	col := NewChunkColumn(0, 0)
	stone := vanillaState(t, "minecraft:stone", 0)
	if err := col.Set(0, 64, 0, stone); err != nil {
		t.Fatal(err)
	}

	tag := col.Heightmap()
	motion, ok := tag.Get("MOTION_BLOCKING")
	if !ok {
		t.Fatal("missing MOTION_BLOCKING entry")
	}

	packed := make([]uint64, len(motion.LongArray))
	for i, v := range motion.LongArray {
		packed[i] = uint64(v)
	}

	entry0 := readCell(packed, 9, 0)
	if entry0 != 64 {
		t.Fatalf("heightmap[0] = %d, want 64", entry0)
	}
	for i := 1; i < 256; i++ {
		if readCell(packed, 9, i) != 0 {
			t.Fatalf("heightmap[%d] = %d, want 0", i, readCell(packed, 9, i))
		}
	}
}

func TestPrimaryBitMask(t *testing.T) {
	col := NewChunkColumn(0, 0)
	stone := vanillaState(t, "minecraft:stone", 0)
	if err := col.Set(0, 0, 0, stone); err != nil {
		t.Fatal(err)
	}
	if err := col.Set(0, 64, 0, stone); err != nil {
		t.Fatal(err)
	}

	mask := col.PrimaryBitMask()
	want := int32(1<<0 | 1<<4)
	if mask != want {
		t.Fatalf("PrimaryBitMask = %b, want %b", mask, want)
	}
}

func TestSerializePayloadDoesNotError(t *testing.T) {
	col := NewChunkColumn(3, -2)
	stone := vanillaState(t, "minecraft:stone", 0)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			if err := col.Set(x, 0, z, stone); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := col.SerializePayload(&buf, true); err != nil {
		t.Fatalf("SerializePayload: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty payload")
	}
}
