// Package registry defines the concrete packet types for protocol 754: one
// value object per packet, each with a static numeric ID, an encode
// operation to the wire codec, and (for server-bound packets) a decode
// operation from it. The registry is open — new packet kinds live in their
// own file and need no change to the dispatch core in internal/server.
package registry

// Client-bound packet IDs (spec.md §4.3).
const (
	StatusResponseID      = 0x00
	LoginDisconnectID     = 0x00
	LoginSuccessID        = 0x02
	DeclareCommandsID     = 0x10
	KeepAliveClientID     = 0x1F
	ChunkDataID           = 0x22
	UpdateLightID         = 0x23
	JoinGameID            = 0x24
	PlayerPosAndLookID    = 0x34
	HeldItemChangeID      = 0x3F
	UpdateViewPositionID  = 0x40
	DeclareRecipesID      = 0x5A
	TagsID                = 0x5B
)

// Server-bound packet IDs, scoped by connection phase.
const (
	HandshakeID        = 0x00
	StatusRequestID    = 0x00
	LoginStartID       = 0x00
	ClientSettingsID   = 0x05
	KeepAliveServerID  = 0x0F
	PlayerPositionID   = 0x11
)
