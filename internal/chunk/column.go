// Package chunk implements the 3-D bit-packed block store: BlockState, the
// process-wide GLOBAL_PALETTE, adaptive per-section palettes, and chunk
// column assembly (heightmaps, biomes, section serialization).
package chunk

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mc754/server/internal/nbt"
	"github.com/mc754/server/internal/protocol"
)

const (
	sectionsPerColumn = 16
	columnHeight      = 256
	voidBiome         = 127
)

// ChunkColumn is 16 vertically stacked sections at chunk coordinates (x,z),
// a biome grid, block entities, and a heightmap.
type ChunkColumn struct {
	X, Z     int32
	sections [sectionsPerColumn]*Section
	biomes   [1024]int32

	// BlockEntities holds one NBT compound per block entity in the column.
	BlockEntities []nbt.Tag
}

// NewChunkColumn returns an empty column at the given chunk coordinates,
// with the default void biome (127) everywhere.
func NewChunkColumn(x, z int32) *ChunkColumn {
	c := &ChunkColumn{X: x, Z: z}
	for i := range c.biomes {
		c.biomes[i] = voidBiome
	}
	return c
}

func sectionIndexAndLocalY(y int) (section int, localY int) {
	return y >> 4, y & 15
}

// Get returns the block state at absolute column coordinates (x,y,z),
// 0<=x,z<16 and 0<=y<256. A missing section reads as air.
func (c *ChunkColumn) Get(x, y, z int) BlockState {
	si, ly := sectionIndexAndLocalY(y)
	if si < 0 || si >= sectionsPerColumn {
		return Air
	}
	section := c.sections[si]
	if section == nil {
		return Air
	}
	return section.Get(x, ly, z)
}

// Set stores a block state at absolute column coordinates, lazily
// allocating the target section.
func (c *ChunkColumn) Set(x, y, z int, state BlockState) error {
	si, ly := sectionIndexAndLocalY(y)
	if si < 0 || si >= sectionsPerColumn {
		return fmt.Errorf("chunk: y=%d out of range", y)
	}
	if c.sections[si] == nil {
		c.sections[si] = NewSection()
	}
	return c.sections[si].Set(x, ly, z, state)
}

// Section returns the section at the given vertical index (0-15), or nil if
// absent.
func (c *ChunkColumn) Section(index int) *Section {
	return c.sections[index]
}

// SetBiome sets the biome id for the 4x4x4 sub-volume containing (x,y,z).
func (c *ChunkColumn) SetBiome(x, y, z int, biomeID int32) {
	idx := biomeIndex(x, y, z)
	c.biomes[idx] = biomeID
}

// Biome returns the biome id for the 4x4x4 sub-volume containing (x,y,z).
func (c *ChunkColumn) Biome(x, y, z int) int32 {
	return c.biomes[biomeIndex(x, y, z)]
}

func biomeIndex(x, y, z int) int {
	return ((y >> 2) << 4) | ((z >> 2) << 2) | (x >> 2)
}

// PrimaryBitMask reports which of the 16 vertical sections are present, bit
// i set iff section i is non-nil.
func (c *ChunkColumn) PrimaryBitMask() int32 {
	var mask int32
	for i, s := range c.sections {
		if s != nil {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// Heightmap computes the MOTION_BLOCKING heightmap NBT compound: for each
// (x,z), the greatest y with a non-air block, else 0, packed 9 bits per
// entry into 36 longs.
func (c *ChunkColumn) Heightmap() nbt.Tag {
	values := make([]uint64, 256)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			height := uint64(0)
			for y := columnHeight - 1; y >= 0; y-- {
				if !c.Get(x, y, z).IsAir() {
					height = uint64(y)
					break
				}
			}
			values[z*16+x] = height
		}
	}

	packed := make([]uint64, wordsFor(256, 9))
	for i, v := range values {
		writeCell(packed, 9, i, v)
	}

	longs := make([]int64, len(packed))
	for i, w := range packed {
		longs[i] = int64(w)
	}

	return nbt.NewCompound(nbt.Entry("MOTION_BLOCKING", nbt.LongArrayTag(longs)))
}

// SerializePayload writes the Chunk Data packet payload (spec.md §4.5):
// <VarInt chunk_x> <VarInt chunk_z> <bool full_chunk> <VarInt
// primary_bit_mask> <NBT heightmaps> [<1024 x VarInt biomes> if full_chunk]
// <VarInt size> <sections...> <VarInt block_entity_count> <block entities>.
func (c *ChunkColumn) SerializePayload(w io.Writer, fullChunk bool) error {
	if _, err := protocol.VarInt(c.X).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.VarInt(c.Z).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Boolean(fullChunk).WriteTo(w); err != nil {
		return err
	}

	mask := c.PrimaryBitMask()
	if _, err := protocol.VarInt(mask).WriteTo(w); err != nil {
		return err
	}

	if err := nbt.Encode(w, "", c.Heightmap()); err != nil {
		return err
	}

	if fullChunk {
		for _, biome := range c.biomes {
			if _, err := protocol.VarInt(biome).WriteTo(w); err != nil {
				return err
			}
		}
	}

	var sectionData bytes.Buffer
	for i, section := range c.sections {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		if err := section.Serialize(&sectionData); err != nil {
			return err
		}
	}
	if _, err := protocol.VarInt(sectionData.Len()).WriteTo(w); err != nil {
		return err
	}
	if _, err := sectionData.WriteTo(w); err != nil {
		return err
	}

	if _, err := protocol.VarInt(len(c.BlockEntities)).WriteTo(w); err != nil {
		return err
	}
	for _, be := range c.BlockEntities {
		if err := nbt.Encode(w, "", be); err != nil {
			return err
		}
	}

	return nil
}
