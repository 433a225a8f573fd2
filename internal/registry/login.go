package registry

import (
	"encoding/json"
	"io"

	"github.com/mc754/server/internal/protocol"
)

// LoginStart is the server-bound packet carrying the client's requested
// username (offline mode: the server accepts any value, max 16 chars).
type LoginStart struct {
	Username string
}

// Decode reads a LoginStart payload.
func (l *LoginStart) Decode(r io.Reader) error {
	var username protocol.String
	if _, err := username.ReadFrom(r); err != nil {
		return err
	}
	l.Username = string(username)
	return nil
}

// LoginSuccess is the client-bound packet confirming login: the derived
// offline-mode UUID and the accepted username.
type LoginSuccess struct {
	UUID     protocol.UUID
	Username string
}

// PacketID implements ClientPacket.
func (l *LoginSuccess) PacketID() int32 { return LoginSuccessID }

// Encode writes the LoginSuccess payload.
func (l *LoginSuccess) Encode(w io.Writer) error {
	if _, err := l.UUID.WriteTo(w); err != nil {
		return err
	}
	_, err := protocol.String(l.Username).WriteTo(w)
	return err
}

// LoginDisconnect is the client-bound packet rejecting a login attempt with
// a JSON chat-component reason, sent before closing the socket.
type LoginDisconnect struct {
	Reason string
}

// PacketID implements ClientPacket.
func (l *LoginDisconnect) PacketID() int32 { return LoginDisconnectID }

// Encode writes the LoginDisconnect payload.
func (l *LoginDisconnect) Encode(w io.Writer) error {
	raw, err := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: l.Reason})
	if err != nil {
		return err
	}
	_, err = protocol.String(raw).WriteTo(w)
	return err
}
