package h4

import (
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
)

const defaultSocketTimeout = time.Second

// NewSocket dials a TCP H4 server, such as an emulated controller, and
// returns the connection with per-operation deadlines applied so the
// receive pump can observe Close.
func NewSocket(addr string, timeout time.Duration) (io.ReadWriteCloser, error) {
	c, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "can't dial h4 server")
	}

	if timeout <= 0 {
		timeout = defaultSocketTimeout
	}

	return &connWithTimeout{c: c, timeout: timeout}, nil
}

type connWithTimeout struct {
	c       net.Conn
	timeout time.Duration
}

func (cwt *connWithTimeout) Read(b []byte) (int, error) {
	// with deadline
	cwt.c.SetReadDeadline(time.Now().Add(cwt.timeout))
	return cwt.c.Read(b)
}

func (cwt *connWithTimeout) Write(b []byte) (int, error) {
	// with deadline
	cwt.c.SetWriteDeadline(time.Now().Add(cwt.timeout))
	return cwt.c.Write(b)
}

func (cwt *connWithTimeout) Close() error {
	return cwt.c.Close()
}
