package registry

import (
	"io"

	"github.com/mc754/server/internal/protocol"
)

// KeepAliveClient is the client-bound liveness ping; the client must answer
// with a KeepAliveServer carrying the same ID within the timeout window.
type KeepAliveClient struct {
	ID int64
}

// PacketID implements ClientPacket.
func (k *KeepAliveClient) PacketID() int32 { return KeepAliveClientID }

// Encode writes the KeepAliveClient payload.
func (k *KeepAliveClient) Encode(w io.Writer) error {
	_, err := protocol.Long(k.ID).WriteTo(w)
	return err
}

// KeepAliveServer is the server-bound echo of a KeepAliveClient ID.
type KeepAliveServer struct {
	ID int64
}

// Decode reads a KeepAliveServer payload.
func (k *KeepAliveServer) Decode(r io.Reader) error {
	var id protocol.Long
	if _, err := id.ReadFrom(r); err != nil {
		return err
	}
	k.ID = int64(id)
	return nil
}
