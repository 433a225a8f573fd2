package registry

import (
	"io"

	"github.com/mc754/server/internal/protocol"
)

// UpdateLight is the client-bound packet carrying per-section light arrays.
// Each mask is a bitset over the 18 possible sections (one below and one
// above the 16 stored sections); a set bit in SkyLightMask/BlockLightMask
// means the corresponding entry in SkyLightArrays/BlockLightArrays carries
// a real 2048-byte array, sent in ascending section order.
type UpdateLight struct {
	ChunkX, ChunkZ      int32
	TrustEdges          bool
	SkyLightMask        int64
	BlockLightMask      int64
	EmptySkyLightMask   int64
	EmptyBlockLightMask int64
	SkyLightArrays      [][2048]byte
	BlockLightArrays    [][2048]byte
}

// PacketID implements ClientPacket.
func (u *UpdateLight) PacketID() int32 { return UpdateLightID }

// Encode writes the UpdateLight payload.
func (u *UpdateLight) Encode(w io.Writer) error {
	if _, err := protocol.VarInt(u.ChunkX).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.VarInt(u.ChunkZ).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Boolean(u.TrustEdges).WriteTo(w); err != nil {
		return err
	}
	masks := []int64{u.SkyLightMask, u.BlockLightMask, u.EmptySkyLightMask, u.EmptyBlockLightMask}
	for _, m := range masks {
		if _, err := protocol.VarInt(m).WriteTo(w); err != nil {
			return err
		}
	}
	for _, arr := range u.SkyLightArrays {
		if err := writeLightArray(w, arr); err != nil {
			return err
		}
	}
	for _, arr := range u.BlockLightArrays {
		if err := writeLightArray(w, arr); err != nil {
			return err
		}
	}
	return nil
}

func writeLightArray(w io.Writer, arr [2048]byte) error {
	if _, err := protocol.VarInt(len(arr)).WriteTo(w); err != nil {
		return err
	}
	_, err := w.Write(arr[:])
	return err
}

// FullBrightSection returns a 2048-byte light array with every nibble set
// to the maximum light level (0xF), used for the spawn chunk's sky light.
func FullBrightSection() [2048]byte {
	var arr [2048]byte
	for i := range arr {
		arr[i] = 0xFF
	}
	return arr
}

// DarkSection returns a 2048-byte light array with every nibble at zero.
func DarkSection() [2048]byte {
	return [2048]byte{}
}
