// Package h4 implements the UART transport framing from [Vol 4, Part A]:
// every packet is prefixed with a type octet, and inbound packets are
// reassembled from the byte stream using the per-type header length rules.
// It turns any io.ReadWriteCloser carrying such a stream into a hal.Hal.
package h4

import (
	"io"
	"net"
	"sync"

	"github.com/pkg/errors"

	"github.com/rigado/hci/hal"
)

const rxQueueSize = 64

// Hal frames outbound packets onto, and reassembles inbound packets from,
// an H4 byte stream.
type Hal struct {
	rwc io.ReadWriteCloser
	wmu sync.Mutex

	mu sync.Mutex
	cb hal.Callbacks

	rxQueue chan []byte

	done chan int
	cmu  sync.Mutex
}

// NewHal returns a hal.Hal speaking H4 over rwc. Reads on rwc should time
// out periodically (returning n==0 or a timeout error) so Close can take
// effect promptly.
func NewHal(rwc io.ReadWriteCloser) *Hal {
	return &Hal{
		rwc:     rwc,
		rxQueue: make(chan []byte, rxQueueSize),
		done:    make(chan int),
	}
}

func (h *Hal) RegisterCallbacks(cb hal.Callbacks) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb = cb
}

func (h *Hal) UnregisterCallbacks() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb = nil
}

// Start launches the receive pump. RegisterCallbacks should be called first
// so no inbound packet is dropped.
func (h *Hal) Start() error {
	if !h.isOpen() {
		return errors.New("h4 closed")
	}

	go h.rxLoop()
	go h.dispatchLoop()
	return nil
}

func (h *Hal) SendCommand(b []byte) error { return h.write(cmdPacket, b) }

func (h *Hal) SendAcl(b []byte) error { return h.write(aclPacket, b) }

func (h *Hal) SendSco(b []byte) error { return h.write(scoPacket, b) }

func (h *Hal) SendIso(b []byte) error { return h.write(isoPacket, b) }

func (h *Hal) write(typ byte, b []byte) error {
	if !h.isOpen() {
		return io.EOF
	}

	pkt := make([]byte, 1+len(b))
	pkt[0] = typ
	copy(pkt[1:], b)

	h.wmu.Lock()
	defer h.wmu.Unlock()

	n, err := h.rwc.Write(pkt)
	if err != nil {
		return errors.Wrap(err, "can't write h4")
	}
	if n != len(pkt) {
		return errors.Errorf("short h4 write: %v of %v", n, len(pkt))
	}
	return nil
}

func (h *Hal) Close() error {
	h.cmu.Lock()
	defer h.cmu.Unlock()

	select {
	case <-h.done:
		return nil

	default:
		close(h.done)
		err := h.rwc.Close()
		return errors.Wrap(err, "can't close h4")
	}
}

func (h *Hal) isOpen() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

func (h *Hal) callbacks() hal.Callbacks {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cb
}

func (h *Hal) rxLoop() {
	defer close(h.rxQueue)

	fr := newFrame(h.rxQueue)
	tmp := make([]byte, 512)

	for {
		select {
		case <-h.done:
			return
		default:
		}

		n, err := h.rwc.Read(tmp)

		switch {
		case n == 0 && err == nil:
			// read timeout
			continue

		case err != nil:
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			if h.isOpen() {
				if cb := h.callbacks(); cb != nil {
					cb.OnError(errors.Wrap(err, "h4 read"))
				}
			}
			return

		default:
			fr.Assemble(tmp[:n])
		}
	}
}

func (h *Hal) dispatchLoop() {
	for {
		var pkt []byte
		var ok bool

		select {
		case <-h.done:
			return
		case pkt, ok = <-h.rxQueue:
			if !ok {
				return
			}
		}

		cb := h.callbacks()
		if cb == nil {
			continue
		}

		typ, b := pkt[0], pkt[1:]
		switch typ {
		case eventPacket:
			cb.OnEvent(b)
		case aclPacket:
			cb.OnAcl(b)
		case scoPacket:
			cb.OnSco(b)
		case isoPacket:
			cb.OnIso(b)
		case cmdPacket:
			// host side never receives commands
		}
	}
}
