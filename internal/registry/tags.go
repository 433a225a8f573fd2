package registry

import (
	"io"

	"github.com/mc754/server/internal/protocol"
)

// tagCategories are the registry names 1.16.5 expects a Tags packet to
// enumerate, even when every category carries zero tags.
var tagCategories = []string{
	"minecraft:block",
	"minecraft:item",
	"minecraft:fluid",
	"minecraft:entity_type",
}

// Tags is the client-bound packet declaring tag groups (block/item/fluid/
// entity_type). The server defines no tags of its own; it still sends one
// empty group per category so clients don't treat the categories as absent.
type Tags struct{}

// PacketID implements ClientPacket.
func (t *Tags) PacketID() int32 { return TagsID }

// Encode writes the Tags payload.
func (t *Tags) Encode(w io.Writer) error {
	if _, err := protocol.VarInt(len(tagCategories)).WriteTo(w); err != nil {
		return err
	}
	for _, category := range tagCategories {
		if _, err := protocol.String(category).WriteTo(w); err != nil {
			return err
		}
		// Zero tags in this category.
		if _, err := protocol.VarInt(0).WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
