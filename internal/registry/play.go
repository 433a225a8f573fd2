package registry

import (
	"io"

	"github.com/mc754/server/internal/protocol"
)

// PlayerPosition is the server-bound movement update the play loop folds
// into the broadcast Player Position And Look.
type PlayerPosition struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

// Decode reads a PlayerPosition payload.
func (p *PlayerPosition) Decode(r io.Reader) error {
	var x, y, z protocol.Double
	var yaw, pitch protocol.Float
	var onGround protocol.Boolean

	if _, err := x.ReadFrom(r); err != nil {
		return err
	}
	if _, err := y.ReadFrom(r); err != nil {
		return err
	}
	if _, err := z.ReadFrom(r); err != nil {
		return err
	}
	if _, err := yaw.ReadFrom(r); err != nil {
		return err
	}
	if _, err := pitch.ReadFrom(r); err != nil {
		return err
	}
	if _, err := onGround.ReadFrom(r); err != nil {
		return err
	}

	p.X, p.Y, p.Z = float64(x), float64(y), float64(z)
	p.Yaw, p.Pitch = float32(yaw), float32(pitch)
	p.OnGround = bool(onGround)
	return nil
}

// PositionFlags controls which Player Position And Look fields the client
// interprets as relative instead of absolute.
type PositionFlags uint8

const (
	FlagRelX     PositionFlags = 0x01
	FlagRelY     PositionFlags = 0x02
	FlagRelZ     PositionFlags = 0x04
	FlagRelYaw   PositionFlags = 0x08
	FlagRelPitch PositionFlags = 0x10
)

// PlayerPositionAndLook is the client-bound teleport/broadcast packet.
type PlayerPositionAndLook struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      PositionFlags
	TeleportID int32
}

// PacketID implements ClientPacket.
func (p *PlayerPositionAndLook) PacketID() int32 { return PlayerPosAndLookID }

// Encode writes the PlayerPositionAndLook payload.
func (p *PlayerPositionAndLook) Encode(w io.Writer) error {
	if _, err := protocol.Double(p.X).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Double(p.Y).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Double(p.Z).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Float(p.Yaw).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.Float(p.Pitch).WriteTo(w); err != nil {
		return err
	}
	if _, err := protocol.UnsignedByte(p.Flags).WriteTo(w); err != nil {
		return err
	}
	_, err := protocol.VarInt(p.TeleportID).WriteTo(w)
	return err
}

// ClientSettings is the server-bound locale/render-distance/chat preference
// packet. The play loop decodes it and logs the locale; the settings are
// not kept on the session and have no behavioral effect.
type ClientSettings struct {
	Locale             string
	ViewDistance       uint8
	ChatMode           int32
	ChatColors         bool
	DisplayedSkinParts uint8
	MainHand           int32
}

// Decode reads a ClientSettings payload.
func (c *ClientSettings) Decode(r io.Reader) error {
	var locale protocol.String
	var viewDistance protocol.UnsignedByte
	var chatMode protocol.VarInt
	var chatColors protocol.Boolean
	var skinParts protocol.UnsignedByte
	var mainHand protocol.VarInt

	if _, err := locale.ReadFrom(r); err != nil {
		return err
	}
	if _, err := viewDistance.ReadFrom(r); err != nil {
		return err
	}
	if _, err := chatMode.ReadFrom(r); err != nil {
		return err
	}
	if _, err := chatColors.ReadFrom(r); err != nil {
		return err
	}
	if _, err := skinParts.ReadFrom(r); err != nil {
		return err
	}
	if _, err := mainHand.ReadFrom(r); err != nil {
		return err
	}

	c.Locale = string(locale)
	c.ViewDistance = uint8(viewDistance)
	c.ChatMode = int32(chatMode)
	c.ChatColors = bool(chatColors)
	c.DisplayedSkinParts = uint8(skinParts)
	c.MainHand = int32(mainHand)
	return nil
}

// HeldItemChange is the client-bound packet announcing the player's
// selected hotbar slot at spawn.
type HeldItemChange struct {
	Slot int8
}

// PacketID implements ClientPacket.
func (h *HeldItemChange) PacketID() int32 { return HeldItemChangeID }

// Encode writes the HeldItemChange payload.
func (h *HeldItemChange) Encode(w io.Writer) error {
	_, err := protocol.Byte(h.Slot).WriteTo(w)
	return err
}

// UpdateViewPosition is the client-bound packet telling the client which
// chunk the server considers the player's center for loading purposes.
type UpdateViewPosition struct {
	ChunkX, ChunkZ int32
}

// PacketID implements ClientPacket.
func (u *UpdateViewPosition) PacketID() int32 { return UpdateViewPositionID }

// Encode writes the UpdateViewPosition payload.
func (u *UpdateViewPosition) Encode(w io.Writer) error {
	if _, err := protocol.VarInt(u.ChunkX).WriteTo(w); err != nil {
		return err
	}
	_, err := protocol.VarInt(u.ChunkZ).WriteTo(w)
	return err
}
