package registry

import (
	"io"

	"github.com/mc754/server/internal/protocol"
)

// NextState is the handshake's requested follow-on phase.
type NextState int32

const (
	NextStateStatus NextState = 1
	NextStateLogin  NextState = 2
)

// Handshake is the server-bound packet that opens every connection:
// protocol version, the address/port the client dialed, and the requested
// next phase.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       NextState
}

// Decode reads a Handshake payload.
func (h *Handshake) Decode(r io.Reader) error {
	var version, next protocol.VarInt
	var addr protocol.String
	var port protocol.UnsignedShort

	if _, err := version.ReadFrom(r); err != nil {
		return err
	}
	if _, err := addr.ReadFrom(r); err != nil {
		return err
	}
	if _, err := port.ReadFrom(r); err != nil {
		return err
	}
	if _, err := next.ReadFrom(r); err != nil {
		return err
	}

	h.ProtocolVersion = int32(version)
	h.ServerAddress = string(addr)
	h.ServerPort = uint16(port)
	h.NextState = NextState(next)
	return nil
}
