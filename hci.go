// Package hci implements the transport layer of a Bluetooth host stack: a
// credit-gated command queue with a watchdog per sent command, an event
// dispatcher keyed by event code and LE subevent code, and pull-based
// queue ends for ACL and ISO data, all over a pluggable transport adapter.
//
// Construct with NewHCI, configure through options, then Init: the
// controller is reset before any other traffic and the command credit
// advertised by its responses gates everything that follows.
package hci

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/rigado/hci/cmd"
	"github.com/rigado/hci/hal"
	"github.com/rigado/hci/snoop"
)

// HCI moves commands to a Bluetooth controller and routes events and bulk
// data back up. All methods are safe for concurrent use.
type HCI struct {
	log Logger

	transport    transport
	cmdTimeout   time.Duration
	errorHandler func(error)
	snoopSink    snoop.Sink

	cq   *cmdQ
	aclQ *QueueEnd
	isoQ *QueueEnd

	muHandlers sync.Mutex
	evth       map[int]HandlerFunc
	subh       map[int]HandlerFunc

	muSec sync.Mutex
	sec   *SecurityInterface
	leSec *LeSecurityInterface

	muState sync.Mutex
	hal     hal.Hal

	done chan struct{}
}

// NewHCI returns an HCI with the given options applied. Nothing touches
// hardware until Init.
func NewHCI(opts ...Option) (*HCI, error) {
	h := &HCI{
		log:        GetLogger().ChildLogger(map[string]interface{}{"subsystem": "hci"}),
		cmdTimeout: defaultCmdTimeout,
		evth:       map[int]HandlerFunc{},
		subh:       map[int]HandlerFunc{},
		done:       make(chan struct{}),
	}

	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, errors.Wrap(err, "can't apply option")
		}
	}

	h.cq = newCmdQ(h.sendCommand, h.cmdTimeout, h.dispatchError, h.fail, h.log)
	h.aclQ = newQueueEnd("acl", h.sendAcl, h.fail, h.log)
	h.isoQ = newQueueEnd("iso", h.sendIso, h.fail, h.log)

	return h, nil
}

// Init opens the configured transport and resets the controller. Reset is
// the first command on the wire; with the implicit credit of one, nothing
// else can be in flight until the reset response reports the controller's
// real allowance. The ACL and ISO outgoing sides stay gated until then.
func (h *HCI) Init() error {
	if !h.isOpen() {
		return ErrClosed
	}

	h.muState.Lock()
	if h.hal != nil {
		h.muState.Unlock()
		return errors.New("already initialized")
	}

	t, err := getTransport(h.transport)
	if err != nil {
		h.muState.Unlock()
		return errors.Wrap(err, "can't open transport")
	}
	if h.snoopSink != nil {
		t = snoop.Wrap(t, h.snoopSink)
	}

	t.RegisterCallbacks(halCallbacks{h})
	if err := t.Start(); err != nil {
		t.UnregisterCallbacks()
		t.Close()
		h.muState.Unlock()
		return errors.Wrap(err, "can't start transport")
	}
	h.hal = t
	h.muState.Unlock()

	if err := h.Send(&cmd.Reset{}, nil); err != nil {
		return errors.Wrap(err, "reset failed")
	}

	h.aclQ.enable()
	h.isoQ.enable()
	return nil
}

// Close stops the transport and releases every registration. Commands
// still pending are dropped without their continuations. Close is
// idempotent.
func (h *HCI) Close() error {
	h.muState.Lock()
	defer h.muState.Unlock()

	select {
	case <-h.done:
		return nil
	default:
	}
	close(h.done)

	h.cq.close()
	h.aclQ.disable()
	h.isoQ.disable()

	h.muHandlers.Lock()
	h.evth = map[int]HandlerFunc{}
	h.subh = map[int]HandlerFunc{}
	h.muHandlers.Unlock()

	if h.hal != nil {
		h.hal.UnregisterCallbacks()
		if err := h.hal.Close(); err != nil {
			return errors.Wrap(err, "can't close transport")
		}
	}
	return nil
}

// EnqueueCommand accepts c for sending and returns once it is queued.
// Completion is asynchronous: fn receives the return parameters of the
// command's Command Complete event. Commands go on the wire in enqueue
// order as credit allows.
func (h *HCI) EnqueueCommand(c cmd.Command, fn HandlerFunc) error {
	if h.halRef() == nil {
		return ErrNotReady
	}
	if !h.isOpen() {
		return ErrClosed
	}
	return h.cq.enqueue(c, kindComplete, fn)
}

// EnqueueCommandExpectingStatus is EnqueueCommand for commands answered by
// Command Status; fn receives a single status byte.
func (h *HCI) EnqueueCommandExpectingStatus(c cmd.Command, fn HandlerFunc) error {
	if h.halRef() == nil {
		return ErrNotReady
	}
	if !h.isOpen() {
		return ErrClosed
	}
	return h.cq.enqueue(c, kindStatus, fn)
}

// Send ...
func (h *HCI) Send(c cmd.Command, r cmd.CommandRP) error {
	b, err := h.sendAndWait(c)
	if err != nil {
		return err
	}
	if len(b) > 0 && b[0] != 0x00 {
		return ErrCommand(b[0])
	}
	if r != nil {
		return r.Unmarshal(b)
	}
	return nil
}

func (h *HCI) sendAndWait(c cmd.Command) ([]byte, error) {
	ch := make(chan []byte, 1)
	err := h.EnqueueCommand(c, func(b []byte) error {
		ch <- b
		return nil
	})
	if err != nil {
		return nil, err
	}

	// emergency timeout to keep callers from locking up when the
	// controller stops answering; the watchdog escalation has already
	// fired by the time this trips
	select {
	case b := <-ch:
		return b, nil
	case <-h.done:
		return nil, ErrClosed
	case <-time.After(h.cmdTimeout + time.Second):
		return nil, errors.Errorf("no response to command 0x%04X", c.OpCode())
	}
}

// GetAclQueueEnd returns the ACL data stream end. The outgoing side opens
// once Init's reset completes.
func (h *HCI) GetAclQueueEnd() *QueueEnd { return h.aclQ }

// GetIsoQueueEnd returns the ISO data stream end. The outgoing side opens
// once Init's reset completes.
func (h *HCI) GetIsoQueueEnd() *QueueEnd { return h.isoQ }

func (h *HCI) halRef() hal.Hal {
	h.muState.Lock()
	defer h.muState.Unlock()
	return h.hal
}

func (h *HCI) sendCommand(b []byte) error {
	t := h.halRef()
	if t == nil {
		return ErrNotReady
	}
	return t.SendCommand(b)
}

func (h *HCI) sendAcl(b []byte) error {
	t := h.halRef()
	if t == nil {
		return ErrNotReady
	}
	return t.SendAcl(b)
}

func (h *HCI) sendIso(b []byte) error {
	t := h.halRef()
	if t == nil {
		return ErrNotReady
	}
	return t.SendIso(b)
}

func (h *HCI) isOpen() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// dispatchError hands an asynchronous failure to the configured handler,
// or logs it when none is set. Errors raised during teardown are dropped.
func (h *HCI) dispatchError(e error) {
	switch {
	case h.errorHandler == nil:
		h.log.Errorf("%v", e)
	case !h.isOpen():
		h.log.Debugf("hci closed, dropping error: %v", e)
	default:
		h.errorHandler(e)
	}
}

// fail reports a transport failure and tears the stack down. A transport
// that failed a send or receive is past saving.
func (h *HCI) fail(err error) {
	h.dispatchError(err)
	if cerr := h.Close(); cerr != nil {
		h.log.Errorf("close after failure: %v", cerr)
	}
}

// halCallbacks feeds transport deliveries into the dispatcher without
// exposing the callback surface on HCI itself.
type halCallbacks struct {
	h *HCI
}

func (c halCallbacks) OnEvent(b []byte) { c.h.handleEvt(b) }

func (c halCallbacks) OnAcl(b []byte) { c.h.aclQ.push(b) }

// SCO has no queue end; voice data is outside this layer's scope.
func (c halCallbacks) OnSco(b []byte) { c.h.log.Debugf("sco packet dropped: [% X]", b) }

func (c halCallbacks) OnIso(b []byte) { c.h.isoQ.push(b) }

func (c halCallbacks) OnError(err error) { c.h.fail(errors.Wrap(err, "transport")) }
