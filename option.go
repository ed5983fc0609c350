package hci

import (
	"time"

	"github.com/rigado/hci/hal"
	"github.com/rigado/hci/snoop"
)

// An Option is a configuration function, which configures the HCI at
// construction time.
type Option func(*HCI) error

// DEPRECATED: legacy stuff
func OptDeviceID(id int) Option {
	return OptTransportHCISocket(id)
}

// OptTransportHCISocket selects the HCI user channel socket of device id.
func OptTransportHCISocket(id int) Option {
	return func(h *HCI) error {
		return h.SetTransportHCISocket(id)
	}
}

// OptTransportH4Socket selects an H4 stream served over TCP.
func OptTransportH4Socket(addr string, timeout time.Duration) Option {
	return func(h *HCI) error {
		return h.SetTransportH4Socket(addr, timeout)
	}
}

// OptTransportH4Uart selects an H4 uart device.
func OptTransportH4Uart(path string) Option {
	return func(h *HCI) error {
		return h.SetTransportH4Uart(path)
	}
}

// OptTransport injects a ready-made transport adapter. Used for custom
// hardware glue and by tests.
func OptTransport(t hal.Hal) Option {
	return func(h *HCI) error {
		return h.SetTransport(t)
	}
}

// OptCommandTimeout overrides the watchdog interval for sent commands.
func OptCommandTimeout(d time.Duration) Option {
	return func(h *HCI) error {
		return h.SetCommandTimeout(d)
	}
}

// OptErrorHandler sets error handler
func OptErrorHandler(handler func(error)) Option {
	return func(h *HCI) error {
		return h.SetErrorHandler(handler)
	}
}

// OptSnoopSink records all transport traffic to s.
func OptSnoopSink(s snoop.Sink) Option {
	return func(h *HCI) error {
		return h.SetSnoopSink(s)
	}
}

// SetTransportHCISocket sets HCI device for hci socket
func (h *HCI) SetTransportHCISocket(id int) error {
	h.transport = transport{
		hci: &transportHci{id},
	}
	return nil
}

// SetTransportH4Socket sets h4 socket server
func (h *HCI) SetTransportH4Socket(addr string, timeout time.Duration) error {
	h.transport = transport{
		h4socket: &transportH4Socket{addr, timeout},
	}
	return nil
}

// SetTransportH4Uart sets h4 uart path
func (h *HCI) SetTransportH4Uart(path string) error {
	h.transport = transport{
		h4uart: &transportH4Uart{path},
	}
	return nil
}

// SetTransport sets a prebuilt transport adapter
func (h *HCI) SetTransport(t hal.Hal) error {
	h.transport = transport{
		custom: &transportCustom{t},
	}
	return nil
}

// SetCommandTimeout sets the watchdog interval
func (h *HCI) SetCommandTimeout(d time.Duration) error {
	h.cmdTimeout = d
	return nil
}

// SetErrorHandler ...
func (h *HCI) SetErrorHandler(handler func(error)) error {
	h.errorHandler = handler
	return nil
}

// SetSnoopSink sets the packet trace sink
func (h *HCI) SetSnoopSink(s snoop.Sink) error {
	h.snoopSink = s
	return nil
}
