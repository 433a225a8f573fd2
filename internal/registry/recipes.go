package registry

import (
	"io"

	"github.com/mc754/server/internal/protocol"
)

// DeclareRecipes is the client-bound crafting-recipe-book packet. The
// server carries no recipe data (crafting is out of scope), so it always
// sends an empty list; clients render the book but crafting succeeds or
// fails by their own local rules.
type DeclareRecipes struct{}

// PacketID implements ClientPacket.
func (d *DeclareRecipes) PacketID() int32 { return DeclareRecipesID }

// Encode writes the DeclareRecipes payload: a zero-length recipe list.
func (d *DeclareRecipes) Encode(w io.Writer) error {
	_, err := protocol.VarInt(0).WriteTo(w)
	return err
}
