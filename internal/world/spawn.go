// Package world builds the static spawn area served to every joining
// player. The teacher hardcodes a single baked chunk; this keeps that
// shape (one flat platform, generated once at startup) but builds it
// through the adaptive palette chunk engine instead of a fixed byte blob.
package world

import "github.com/mc754/server/internal/chunk"

const (
	bedrockY = 0
	stoneTop = 62
	grassY   = 63
)

// SpawnColumn builds the chunk column at (0,0): bedrock at y=0, stone from
// y=1 to 62, grass at y=63, air above. Every other chunk the client
// requests beyond view distance is this implementation's explicit
// non-goal (spec.md limits the world to the spawn chunk).
func SpawnColumn() *chunk.ChunkColumn {
	col := chunk.NewChunkColumn(0, 0)

	bedrock := mustState("minecraft:bedrock")
	stone := mustState("minecraft:stone")
	grass := mustState("minecraft:grass_block")

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			mustSet(col, x, bedrockY, z, bedrock)
			for y := 1; y <= stoneTop; y++ {
				mustSet(col, x, y, z, stone)
			}
			mustSet(col, x, grassY, z, grass)
		}
	}

	for i := 0; i < 16; i++ {
		if s := col.Section(i); s != nil {
			s.Optimize()
		}
	}
	return col
}

func mustState(name string) chunk.BlockState {
	s, ok := chunk.Global.StateByName(name)
	if !ok {
		panic("world: block name not in global palette: " + name)
	}
	return s
}

func mustSet(col *chunk.ChunkColumn, x, y, z int, s chunk.BlockState) {
	if err := col.Set(x, y, z, s); err != nil {
		panic(err)
	}
}
