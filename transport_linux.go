//go:build linux
// +build linux

package hci

import (
	"github.com/rigado/hci/h4"
	"github.com/rigado/hci/hal"
	"github.com/rigado/hci/socket"
)

// The user channel delivers one whole H4 packet per read, which the frame
// assembler passes through untouched, so the same adapter serves both the
// socket and true byte streams.
func newSocketHal(id int) (hal.Hal, error) {
	skt, err := socket.NewSocket(id)
	if err != nil {
		return nil, err
	}
	return h4.NewHal(skt), nil
}
