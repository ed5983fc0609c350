package hci

import (
	"fmt"

	"github.com/rigado/hci/evt"
)

// HandlerFunc consumes one decoded event. Handlers registered by event code
// receive the event parameter block; handlers registered by LE subevent
// code receive the LE Meta parameter block, subevent code at offset 0, so
// the evt views apply directly. A returned error is logged, never fatal.
type HandlerFunc func(b []byte) error

// RegisterEventHandler routes event code c to f. The terminal codes
// (Command Complete, Command Status) and the LE Meta code belong to the
// transport layer itself; registering one of them, or a code that already
// has a handler, is a programming error and panics.
func (h *HCI) RegisterEventHandler(c int, f HandlerFunc) {
	h.muHandlers.Lock()
	defer h.muHandlers.Unlock()

	switch c {
	case evt.CommandCompleteCode, evt.CommandStatusCode, evt.LEMetaCode:
		panic(fmt.Sprintf("hci: event code 0x%02X is reserved", c))
	}
	if _, ok := h.evth[c]; ok {
		panic(fmt.Sprintf("hci: event code 0x%02X already has a handler", c))
	}
	h.evth[c] = f
}

// UnregisterEventHandler removes the handler for event code c, if any.
func (h *HCI) UnregisterEventHandler(c int) {
	h.muHandlers.Lock()
	defer h.muHandlers.Unlock()
	delete(h.evth, c)
}

// RegisterLeEventHandler routes LE Meta subevent code sub to f. Registering
// a subevent code that already has a handler panics.
func (h *HCI) RegisterLeEventHandler(sub int, f HandlerFunc) {
	h.muHandlers.Lock()
	defer h.muHandlers.Unlock()

	if _, ok := h.subh[sub]; ok {
		panic(fmt.Sprintf("hci: le subevent code 0x%02X already has a handler", sub))
	}
	h.subh[sub] = f
}

// UnregisterLeEventHandler removes the handler for subevent code sub, if any.
func (h *HCI) UnregisterLeEventHandler(sub int) {
	h.muHandlers.Lock()
	defer h.muHandlers.Unlock()
	delete(h.subh, sub)
}

func (h *HCI) handler(c int) HandlerFunc {
	h.muHandlers.Lock()
	defer h.muHandlers.Unlock()
	return h.evth[c]
}

func (h *HCI) leHandler(sub int) HandlerFunc {
	h.muHandlers.Lock()
	defer h.muHandlers.Unlock()
	return h.subh[sub]
}

// handleEvt demultiplexes one event packet. Terminal events go to the
// command queue, LE Meta events to the subevent table, everything else to
// the handler table. Malformed or unclaimed events are dropped with a log
// line; neither is fatal.
func (h *HCI) handleEvt(b []byte) {
	if len(b) < 2 || int(b[1]) != len(b[2:]) {
		h.log.Warnf("invalid event packet: [% X]", b)
		return
	}
	code := int(b[0])

	switch code {
	case evt.CommandCompleteCode:
		e := evt.CommandComplete(b[2:])
		if _, err := e.CommandOpcodeWErr(); err != nil {
			h.log.Warnf("invalid command complete: [% X]", b)
			return
		}
		h.cq.onCommandComplete(e)
		return

	case evt.CommandStatusCode:
		e := evt.CommandStatus(b[2:])
		if !e.Valid() {
			h.log.Warnf("invalid command status: [% X]", b)
			return
		}
		h.cq.onCommandStatus(e)
		return

	case evt.LEMetaCode:
		h.handleLEMeta(b[2:])
		return
	}

	if f := h.handler(code); f != nil {
		if err := f(b[2:]); err != nil {
			h.log.Errorf("event 0x%02X handler: %v", code, err)
		}
		return
	}

	if code == 0xff {
		// some controllers push vendor events that were never asked for
		return
	}
	h.log.Debugf("no handler for event 0x%02X, dropped", code)
}

func (h *HCI) handleLEMeta(b []byte) {
	if len(b) == 0 {
		h.log.Warnf("empty le meta event")
		return
	}
	sub := int(evt.LEMeta(b).SubeventCode())

	if f := h.leHandler(sub); f != nil {
		if err := f(b); err != nil {
			h.log.Errorf("le event 0x%02X handler: %v", sub, err)
		}
		return
	}
	h.log.Debugf("no handler for le event 0x%02X, dropped", sub)
}
