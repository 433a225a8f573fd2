package protocol

import (
	"bytes"
	"io"
)

// Frame is a decoded wire frame: a packet ID and its raw payload, ready for
// field-by-field decoding. Frame implements io.Reader/io.Writer over its
// payload so packet Decode/Encode methods can read and write fields through
// the same Field interface used for framing.
//
//	+--------+-----------+------+
//	| Length | Packet ID | Data |
//	+--------+-----------+------+
type Frame struct {
	ID      int32
	payload bytes.Buffer
}

// NewFrame builds a Frame from a packet ID and a sequence of fields, encoding
// each into the payload in order.
func NewFrame(id int32, fields ...Field) *Frame {
	f := &Frame{ID: id}
	for _, field := range fields {
		// Encoding into an in-memory buffer never fails.
		_, _ = field.WriteTo(f)
	}
	return f
}

// Read implements io.Reader over the frame's remaining payload.
func (f *Frame) Read(p []byte) (int, error) {
	return f.payload.Read(p)
}

// Write implements io.Writer, appending to the frame's payload.
func (f *Frame) Write(p []byte) (int, error) {
	return f.payload.Write(p)
}

// Len reports the number of unread payload bytes.
func (f *Frame) Len() int {
	return f.payload.Len()
}

// WriteFrame writes the frame's length prefix, packet ID, and payload to w.
func WriteFrame(w io.Writer, f *Frame) error {
	var out bytes.Buffer
	id := VarInt(f.ID)

	if _, err := VarInt(id.Len() + f.payload.Len()).WriteTo(&out); err != nil {
		return err
	}
	if _, err := id.WriteTo(&out); err != nil {
		return err
	}
	if _, err := f.payload.WriteTo(&out); err != nil {
		return err
	}

	_, err := out.WriteTo(w)
	return err
}

// ReadFrame reads one length-prefixed frame from r: a VarInt total length
// (counting the packet ID onward), a VarInt packet ID, and the remaining
// payload bytes.
func ReadFrame(r io.Reader) (*Frame, error) {
	var length VarInt
	if _, err := length.ReadFrom(r); err != nil {
		return nil, err
	}
	if length < 1 {
		return nil, newInvalidData("frame length must be positive")
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, wrapEOF(err)
	}

	body := bytes.NewBuffer(buf)
	var id VarInt
	if _, err := id.ReadFrom(body); err != nil {
		return nil, err
	}

	f := &Frame{ID: int32(id)}
	f.payload = *body
	return f, nil
}
