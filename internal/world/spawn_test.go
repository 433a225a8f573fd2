package world

import "testing"

func TestSpawnColumnIsFlatPlatform(t *testing.T) {
	col := SpawnColumn()

	bedrock := mustState("minecraft:bedrock")
	stone := mustState("minecraft:stone")
	grass := mustState("minecraft:grass_block")

	if got := col.Get(0, bedrockY, 0); got != bedrock {
		t.Fatalf("y=0 = %+v, want bedrock", got)
	}
	if got := col.Get(5, 30, 5); got != stone {
		t.Fatalf("y=30 = %+v, want stone", got)
	}
	if got := col.Get(15, grassY, 15); got != grass {
		t.Fatalf("y=63 = %+v, want grass", got)
	}
	if !col.Get(0, grassY+1, 0).IsAir() {
		t.Fatal("above the platform should be air")
	}
}

func TestSpawnColumnSectionsArePresent(t *testing.T) {
	col := SpawnColumn()
	mask := col.PrimaryBitMask()
	// Sections 0-3 cover y=0..63.
	if mask&0x0F != 0x0F {
		t.Fatalf("primary bit mask = %#x, want low 4 bits set", mask)
	}
}
