package hci

import (
	"github.com/rigado/hci/cmd"
	"github.com/rigado/hci/evt"
)

// securityEvents are the generic event codes a security module needs to
// observe to run authentication, encryption and pairing flows.
var securityEvents = []int{
	evt.EncryptionChangeCode,
	evt.EncryptionKeyRefreshCompleteCode,
	evt.LinkKeyRequestCode,
	evt.LinkKeyNotificationCode,
	evt.PINCodeRequestCode,
	evt.SimplePairingCompleteCode,
	evt.IOCapabilityRequestCode,
	evt.IOCapabilityResponseCode,
	evt.UserConfirmationRequestCode,
	evt.UserPasskeyRequestCode,
	evt.RemoteOOBDataRequestCode,
}

// leSecurityEvents are the LE Meta subevent codes behind LE pairing and
// encryption.
var leSecurityEvents = []int{
	evt.LELongTermKeyRequestSubCode,
	evt.LEReadLocalP256PublicKeyCompleteSubCode,
	evt.LEGenerateDHKeyCompleteSubCode,
}

// SecurityInterface is a stable handle for a security module: its catch-all
// handler observes the classic security events, and commands it sends take
// the ordinary credit-gated path.
type SecurityInterface struct {
	h *HCI
}

func (s *SecurityInterface) Send(c cmd.Command, r cmd.CommandRP) error {
	return s.h.Send(c, r)
}

func (s *SecurityInterface) EnqueueCommand(c cmd.Command, fn HandlerFunc) error {
	return s.h.EnqueueCommand(c, fn)
}

// LeSecurityInterface is the LE counterpart of SecurityInterface.
type LeSecurityInterface struct {
	h *HCI
}

func (s *LeSecurityInterface) Send(c cmd.Command, r cmd.CommandRP) error {
	return s.h.Send(c, r)
}

func (s *LeSecurityInterface) EnqueueCommand(c cmd.Command, fn HandlerFunc) error {
	return s.h.EnqueueCommand(c, fn)
}

// GetSecurityInterface installs f over the classic security events and
// returns the security handle. The first caller wins: later calls return
// the same handle and their handler argument is ignored.
//
// f receives whole event views (code, parameter length, parameters) so one
// handler can tell the security events apart.
func (h *HCI) GetSecurityInterface(f HandlerFunc) *SecurityInterface {
	h.muSec.Lock()
	defer h.muSec.Unlock()

	if h.sec != nil {
		return h.sec
	}

	for _, c := range securityEvents {
		code := c
		h.RegisterEventHandler(code, func(b []byte) error {
			e := make([]byte, 2+len(b))
			e[0] = byte(code)
			e[1] = byte(len(b))
			copy(e[2:], b)
			return f(e)
		})
	}

	h.sec = &SecurityInterface{h: h}
	return h.sec
}

// GetLeSecurityInterface installs f over the LE security subevents and
// returns the LE security handle. First caller wins, as with
// GetSecurityInterface.
//
// f receives the LE Meta parameter block with the subevent code at offset
// 0, ready for the evt subevent views.
func (h *HCI) GetLeSecurityInterface(f HandlerFunc) *LeSecurityInterface {
	h.muSec.Lock()
	defer h.muSec.Unlock()

	if h.leSec != nil {
		return h.leSec
	}

	for _, sub := range leSecurityEvents {
		h.RegisterLeEventHandler(sub, f)
	}

	h.leSec = &LeSecurityInterface{h: h}
	return h.leSec
}
