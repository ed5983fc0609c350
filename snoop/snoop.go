// Package snoop captures HCI traffic crossing a transport adapter. Wrap
// decorates a hal.Hal so every packet, in both directions, is offered to a
// Sink; the package ships sinks for the BTSnoop v1 capture format and for
// a line-delimited JSON stream.
package snoop

import (
	"time"

	"github.com/rigado/hci/hal"
)

var now = time.Now // for tests

// Dir is the direction a packet traveled.
type Dir uint8

const (
	// Sent packets go host to controller.
	Sent Dir = iota
	// Rcvd packets go controller to host.
	Rcvd
)

func (d Dir) String() string {
	if d == Sent {
		return "tx"
	}
	return "rx"
}

// Class is the packet class, numbered like the H4 packet type octets.
type Class uint8

const (
	Command Class = 0x01
	Acl     Class = 0x02
	Sco     Class = 0x03
	Event   Class = 0x04
	Iso     Class = 0x05
)

func (c Class) String() string {
	switch c {
	case Command:
		return "cmd"
	case Acl:
		return "acl"
	case Sco:
		return "sco"
	case Event:
		return "evt"
	case Iso:
		return "iso"
	default:
		return "unknown"
	}
}

// Record is one captured packet. Payload is the packet without its H4 type
// octet and must not be retained past the Record call.
type Record struct {
	Ts      time.Time
	Dir     Dir
	Class   Class
	Payload []byte
}

// Sink consumes capture records. Record may be called from multiple
// goroutines. A Sink that returns an error is not called again.
type Sink interface {
	Record(r Record) error
	Close() error
}

// Wrap decorates h so all traffic is offered to s. The sink is closed when
// the returned hal is. Sink failures disable capture but never disturb the
// wrapped transport.
func Wrap(h hal.Hal, s Sink) hal.Hal {
	return &wrapped{inner: h, sink: newGate(s)}
}

type wrapped struct {
	inner hal.Hal
	sink  *gate
}

func (w *wrapped) SendCommand(b []byte) error {
	w.sink.record(Sent, Command, b)
	return w.inner.SendCommand(b)
}

func (w *wrapped) SendAcl(b []byte) error {
	w.sink.record(Sent, Acl, b)
	return w.inner.SendAcl(b)
}

func (w *wrapped) SendSco(b []byte) error {
	w.sink.record(Sent, Sco, b)
	return w.inner.SendSco(b)
}

func (w *wrapped) SendIso(b []byte) error {
	w.sink.record(Sent, Iso, b)
	return w.inner.SendIso(b)
}

func (w *wrapped) RegisterCallbacks(cb hal.Callbacks) {
	w.inner.RegisterCallbacks(&tapCallbacks{cb: cb, sink: w.sink})
}

func (w *wrapped) UnregisterCallbacks() {
	w.inner.UnregisterCallbacks()
}

func (w *wrapped) Start() error { return w.inner.Start() }

func (w *wrapped) Close() error {
	err := w.inner.Close()
	w.sink.close()
	return err
}

// tapCallbacks records inbound packets before handing them on.
type tapCallbacks struct {
	cb   hal.Callbacks
	sink *gate
}

func (t *tapCallbacks) OnEvent(b []byte) {
	t.sink.record(Rcvd, Event, b)
	t.cb.OnEvent(b)
}

func (t *tapCallbacks) OnAcl(b []byte) {
	t.sink.record(Rcvd, Acl, b)
	t.cb.OnAcl(b)
}

func (t *tapCallbacks) OnSco(b []byte) {
	t.sink.record(Rcvd, Sco, b)
	t.cb.OnSco(b)
}

func (t *tapCallbacks) OnIso(b []byte) {
	t.sink.record(Rcvd, Iso, b)
	t.cb.OnIso(b)
}

func (t *tapCallbacks) OnError(err error) { t.cb.OnError(err) }
