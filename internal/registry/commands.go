package registry

import (
	"io"

	"github.com/mc754/server/internal/protocol"
)

// CommandNodeType is the low two bits of a Declare Commands node's flags.
type CommandNodeType uint8

const (
	NodeRoot     CommandNodeType = 0
	NodeLiteral  CommandNodeType = 1
	NodeArgument CommandNodeType = 2
)

const (
	flagExecutable  = 0x04
	flagHasRedirect = 0x08
	flagHasSuggest  = 0x10
)

// CommandNode is one node of the Declare Commands graph; children and
// redirect are indices into the packet's flat node array, per spec.md's
// note that the index-based representation is the idiomatic model here.
type CommandNode struct {
	Type         CommandNodeType
	Executable   bool
	Children     []int32
	Redirect     *int32
	Name         string
	Parser       string
	ParserProps  []byte
	SuggestType  string
}

// DeclareCommands is the client-bound command-graph packet. A server with
// no custom commands still sends a single root node with no children.
type DeclareCommands struct {
	Nodes     []CommandNode
	RootIndex int32
}

// PacketID implements ClientPacket.
func (d *DeclareCommands) PacketID() int32 { return DeclareCommandsID }

// Encode writes the DeclareCommands payload.
func (d *DeclareCommands) Encode(w io.Writer) error {
	if _, err := protocol.VarInt(len(d.Nodes)).WriteTo(w); err != nil {
		return err
	}
	for _, n := range d.Nodes {
		flags := uint8(n.Type) & 0x03
		if n.Executable {
			flags |= flagExecutable
		}
		if n.Redirect != nil {
			flags |= flagHasRedirect
		}
		if n.SuggestType != "" {
			flags |= flagHasSuggest
		}
		if _, err := protocol.UnsignedByte(flags).WriteTo(w); err != nil {
			return err
		}
		if _, err := protocol.VarInt(len(n.Children)).WriteTo(w); err != nil {
			return err
		}
		for _, child := range n.Children {
			if _, err := protocol.VarInt(child).WriteTo(w); err != nil {
				return err
			}
		}
		if n.Redirect != nil {
			if _, err := protocol.VarInt(*n.Redirect).WriteTo(w); err != nil {
				return err
			}
		}
		if n.Type == NodeLiteral || n.Type == NodeArgument {
			if _, err := protocol.String(n.Name).WriteTo(w); err != nil {
				return err
			}
		}
		if n.Type == NodeArgument {
			if _, err := protocol.String(n.Parser).WriteTo(w); err != nil {
				return err
			}
			if _, err := w.Write(n.ParserProps); err != nil {
				return err
			}
		}
		if n.SuggestType != "" {
			if _, err := protocol.String(n.SuggestType).WriteTo(w); err != nil {
				return err
			}
		}
	}
	_, err := protocol.VarInt(d.RootIndex).WriteTo(w)
	return err
}

// EmptyDeclareCommands builds the minimal legal command graph: a single
// root node with no children, used when the server exposes no commands.
func EmptyDeclareCommands() *DeclareCommands {
	return &DeclareCommands{
		Nodes:     []CommandNode{{Type: NodeRoot}},
		RootIndex: 0,
	}
}
