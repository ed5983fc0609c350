// Package cmd provides typed builders for the HCI commands this stack
// sends, and structs for their return parameters.
package cmd

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Command is a marshalable HCI command.
type Command interface {
	OpCode() int
	Len() int
	Marshal([]byte) error
}

// CommandRP is an unmarshalable return parameter block.
type CommandRP interface {
	Unmarshal(b []byte) error
}

func marshal(c Command, b []byte) error {
	buf := bytes.NewBuffer(b)
	buf.Reset()
	if buf.Cap() < c.Len() {
		return io.ErrShortBuffer
	}
	return binary.Write(buf, binary.LittleEndian, c)
}

func unmarshal(c CommandRP, b []byte) error {
	buf := bytes.NewBuffer(b)
	return binary.Read(buf, binary.LittleEndian, c)
}
