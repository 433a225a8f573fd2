package registry

import (
	"encoding/json"
	"io"

	"github.com/mc754/server/internal/protocol"
)

// StatusRequest is the empty server-bound request for a Status Response.
type StatusRequest struct{}

// Decode reads a StatusRequest payload, which carries no fields.
func (s *StatusRequest) Decode(io.Reader) error { return nil }

// StatusResponse is the client-bound JSON server-list-ping reply.
type StatusResponse struct {
	VersionName     string
	ProtocolVersion int
	MaxPlayers      int
	OnlinePlayers   int
	SamplePlayers   []StatusSamplePlayer
	Description     string
}

// StatusSamplePlayer is one entry of the status response's player sample.
type StatusSamplePlayer struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type statusJSON struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int                  `json:"max"`
		Online int                  `json:"online"`
		Sample []StatusSamplePlayer `json:"sample"`
	} `json:"players"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
}

// PacketID implements ClientPacket.
func (s *StatusResponse) PacketID() int32 { return StatusResponseID }

// Encode writes the Status Response JSON payload.
func (s *StatusResponse) Encode(w io.Writer) error {
	body := statusJSON{}
	body.Version.Name = s.VersionName
	body.Version.Protocol = s.ProtocolVersion
	body.Players.Max = s.MaxPlayers
	body.Players.Online = s.OnlinePlayers
	body.Players.Sample = s.SamplePlayers
	body.Description.Text = s.Description

	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	_, err = protocol.String(raw).WriteTo(w)
	return err
}
