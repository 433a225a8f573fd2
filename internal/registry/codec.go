package registry

import (
	"io"

	"github.com/mc754/server/internal/protocol"
)

// ClientPacket is a client-bound packet: a static ID and an encode operation
// against an already-framed payload writer.
type ClientPacket interface {
	PacketID() int32
	Encode(w io.Writer) error
}

// ServerPacket is a server-bound packet: a decode operation that assumes the
// packet ID VarInt has already been consumed by the dispatcher.
type ServerPacket interface {
	Decode(r io.Reader) error
}

// Send frames and writes a client-bound packet.
func Send(w io.Writer, p ClientPacket) error {
	frame := &protocol.Frame{ID: p.PacketID()}
	if err := p.Encode(frame); err != nil {
		return err
	}
	return protocol.WriteFrame(w, frame)
}
