package h4

import (
	"io"
	"time"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
)

// DefaultSerialOptions returns UART settings suitable for most H4 modules.
// Callers set PortName and adjust the baud rate as needed.
func DefaultSerialOptions() serial.OpenOptions {
	return serial.OpenOptions{
		BaudRate:          115200,
		DataBits:          8,
		StopBits:          1,
		RTSCTSFlowControl: true,
	}
}

// NewSerial opens the UART and drains any stale controller output so the
// frame assembler starts on a packet boundary.
func NewSerial(opts serial.OpenOptions) (io.ReadWriteCloser, error) {
	// reads must time out for the receive pump to notice Close
	opts.MinimumReadSize = 0
	opts.InterCharacterTimeout = 100

	sp, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "can't open serial port")
	}

	// a reset elicits output from controllers stuck mid-packet
	b := make([]byte, 2048)
	sp.Write([]byte{cmdPacket, 0x03, 0x0c, 0x00})
	<-time.After(time.Millisecond * 250)
	if _, err := sp.Read(b); err != nil {
		sp.Close()
		return nil, errors.Wrap(err, "can't flush serial port")
	}

	return sp, nil
}
