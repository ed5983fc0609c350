// Package hal defines the transport boundary between the HCI core and
// whatever moves raw packets to the controller (UART, user-channel socket,
// an emulator link, or a test double).
package hal

// Callbacks receives inbound packets from the transport. The payload passed
// to each method is the packet without its H4 type octet; the buffer belongs
// to the callee once the call returns. OnError is invoked at most once, when
// the transport fails terminally; no packet callbacks follow it.
type Callbacks interface {
	OnEvent(b []byte)
	OnAcl(b []byte)
	OnSco(b []byte)
	OnIso(b []byte)
	OnError(err error)
}

// Hal moves whole HCI packets in both directions. Send* take the packet
// without the H4 type octet and transfer buffer ownership to the transport.
// At most one Callbacks may be registered at a time; RegisterCallbacks must
// be called before Start so no inbound packet is dropped.
type Hal interface {
	SendCommand(b []byte) error
	SendAcl(b []byte) error
	SendSco(b []byte) error
	SendIso(b []byte) error

	RegisterCallbacks(cb Callbacks)
	UnregisterCallbacks()

	Start() error
	Close() error
}
