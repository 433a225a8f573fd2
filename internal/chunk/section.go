package chunk

import (
	"fmt"
	"io"

	"github.com/mc754/server/internal/protocol"
)

const sectionVolume = 16 * 16 * 16 // 4096 cells

// Section is a 16x16x16 cube of block states: a bit-packed cell array and
// the palette that interprets its values, plus per-block light data.
type Section struct {
	blockCount int
	palette    *palette
	data       []uint64
	blockLight [2048]byte
	skyLight   *[2048]byte
}

// NewSection returns an empty section: all-air, indirect palette at 4 bits
// per block, full-bright sky light (matching an overworld default).
func NewSection() *Section {
	s := &Section{
		palette: newIndirectPalette(4),
	}
	s.data = make([]uint64, wordsFor(sectionVolume, s.palette.bits))
	airID := Global.MustStateToID(Air)
	// Seed index 0 with air so the zero-valued data array means "all air".
	if _, ok := s.palette.localValue(airID); !ok {
		panic("chunk: fresh indirect palette rejected air, capacity bug")
	}
	sky := [2048]byte{}
	for i := range sky {
		sky[i] = 0xFF
	}
	s.skyLight = &sky
	return s
}

// BlockCount is the number of non-air cells in the section.
func (s *Section) BlockCount() int { return s.blockCount }

// BitsPerBlock is the section's current packed cell width.
func (s *Section) BitsPerBlock() int { return s.palette.bits }

// Get returns the block state at local coordinates (x,y,z), each in [0,16).
func (s *Section) Get(x, y, z int) BlockState {
	idx := cellIndex(x, y, z)
	value := readCell(s.data, s.palette.bits, idx)
	global := s.palette.globalID(value)
	state, ok := Global.IDToState(global)
	if !ok {
		panic(fmt.Sprintf("chunk: global id %d from section cell has no block state", global))
	}
	return state
}

// Set stores state at local coordinates (x,y,z), growing the palette if
// needed and keeping blockCount in sync with the true non-air count.
func (s *Section) Set(x, y, z int, state BlockState) error {
	global, ok := Global.StateToID(state)
	if !ok {
		return fmt.Errorf("chunk: block state %+v is not in the global palette", state)
	}

	idx := cellIndex(x, y, z)
	wasAir := s.Get(x, y, z).IsAir()

	for {
		value, fits := s.palette.localValue(global)
		if fits {
			writeCell(s.data, s.palette.bits, idx, value)
			break
		}
		s.promote()
	}

	switch {
	case wasAir && !state.IsAir():
		s.blockCount++
	case !wasAir && state.IsAir():
		s.blockCount--
	}
	return nil
}

// promote widens the palette by one stage and rewrites data under the new
// geometry, per spec.md §4.4.
func (s *Section) promote() {
	oldPalette := s.palette
	oldData := s.data
	newPalette := oldPalette.grow()

	newData := make([]uint64, wordsFor(sectionVolume, newPalette.bits))
	for i := 0; i < sectionVolume; i++ {
		oldValue := readCell(oldData, oldPalette.bits, i)
		global := oldPalette.globalID(oldValue)
		newValue, fits := newPalette.localValue(global)
		if !fits {
			// The wider/direct palette must fit everything the old one held.
			panic("chunk: palette promotion failed to accommodate existing cell")
		}
		writeCell(newData, newPalette.bits, i, newValue)
	}

	s.palette = newPalette
	s.data = newData
}

// Optimize recomputes the minimum legal palette width for the section's
// actual distinct states and rewrites data accordingly. Idempotent;
// callers invoke it once write pressure stops, e.g. before serialization.
func (s *Section) Optimize() {
	unique := make(map[uint32]struct{})
	globals := make([]uint32, sectionVolume)
	for i := 0; i < sectionVolume; i++ {
		value := readCell(s.data, s.palette.bits, i)
		global := s.palette.globalID(value)
		globals[i] = global
		unique[global] = struct{}{}
	}

	bits := minimumIndirectBits(len(unique))
	var newPalette *palette
	if bits == 0 {
		newPalette = newDirectPalette()
	} else {
		newPalette = newIndirectPalette(bits)
	}

	newData := make([]uint64, wordsFor(sectionVolume, newPalette.bits))
	for i, global := range globals {
		value, fits := newPalette.localValue(global)
		if !fits {
			panic("chunk: optimize computed a width too small for its own unique count")
		}
		writeCell(newData, newPalette.bits, i, value)
	}

	s.palette = newPalette
	s.data = newData
}

// Serialize writes the section payload: <u16 block_count> <u8 bits_per_block>
// <palette?> <VarInt data_words> <words> <2048 block_light> <2048
// sky_light?>.
func (s *Section) Serialize(w io.Writer) error {
	if _, err := protocol.Short(int16(s.blockCount)).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.UnsignedByte(s.palette.bits).WriteTo(w); err != nil {
		return err
	}

	if s.palette.kind == paletteIndirect {
		if _, err := protocol.VarInt(len(s.palette.ids)).WriteTo(w); err != nil {
			return err
		}
		for _, id := range s.palette.ids {
			if _, err := protocol.VarInt(id).WriteTo(w); err != nil {
				return err
			}
		}
	}

	if _, err := protocol.VarInt(len(s.data)).WriteTo(w); err != nil {
		return err
	}
	for _, word := range s.data {
		if _, err := protocol.Long(word).WriteTo(w); err != nil {
			return err
		}
	}

	if _, err := w.Write(s.blockLight[:]); err != nil {
		return err
	}
	if s.skyLight != nil {
		if _, err := w.Write(s.skyLight[:]); err != nil {
			return err
		}
	}
	return nil
}

// DeserializeSection reads a section payload written by Serialize.
// hasSkyLight must match what the writer included (the Update Light bitmask
// carries that information out of band from the section bytes themselves).
func DeserializeSection(r io.Reader, hasSkyLight bool) (*Section, error) {
	var blockCount protocol.Short
	if _, err := blockCount.ReadFrom(r); err != nil {
		return nil, err
	}
	var bits protocol.UnsignedByte
	if _, err := bits.ReadFrom(r); err != nil {
		return nil, err
	}

	s := &Section{blockCount: int(blockCount)}

	if int(bits) >= directBitsPerBlock {
		s.palette = newDirectPalette()
	} else {
		s.palette = newIndirectPalette(int(bits))
		var paletteLen protocol.VarInt
		if _, err := paletteLen.ReadFrom(r); err != nil {
			return nil, err
		}
		for i := 0; i < int(paletteLen); i++ {
			var id protocol.VarInt
			if _, err := id.ReadFrom(r); err != nil {
				return nil, err
			}
			s.palette.ids = append(s.palette.ids, uint32(id))
			s.palette.lookup[uint32(id)] = i
		}
	}

	var wordCount protocol.VarInt
	if _, err := wordCount.ReadFrom(r); err != nil {
		return nil, err
	}
	s.data = make([]uint64, wordCount)
	for i := range s.data {
		var word protocol.Long
		if _, err := word.ReadFrom(r); err != nil {
			return nil, err
		}
		s.data[i] = uint64(word)
	}

	if _, err := io.ReadFull(r, s.blockLight[:]); err != nil {
		return nil, err
	}
	if hasSkyLight {
		var sky [2048]byte
		if _, err := io.ReadFull(r, sky[:]); err != nil {
			return nil, err
		}
		s.skyLight = &sky
	}

	return s, nil
}
