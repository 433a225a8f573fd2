package registry

import (
	"io"

	"github.com/mc754/server/internal/chunk"
)

// ChunkData is the client-bound packet wrapping a chunk column's full
// serialized payload (spec.md §4.5). FullChunk controls whether biomes
// are included; it is true for a chunk's initial send.
type ChunkData struct {
	Column    *chunk.ChunkColumn
	FullChunk bool
}

// PacketID implements ClientPacket.
func (c *ChunkData) PacketID() int32 { return ChunkDataID }

// Encode writes the ChunkData payload.
func (c *ChunkData) Encode(w io.Writer) error {
	return c.Column.SerializePayload(w, c.FullChunk)
}
