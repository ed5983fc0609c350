package hci

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/rigado/hci/cmd"
	"github.com/rigado/hci/evt"
)

type terminalKind byte

const (
	kindComplete terminalKind = iota
	kindStatus
)

func (k terminalKind) String() string {
	if k == kindStatus {
		return "command status"
	}
	return "command complete"
}

// pendingCommand is a command the queue has accepted but not yet answered.
// It is owned by the queue from enqueue until its continuation fires or the
// queue shuts down.
type pendingCommand struct {
	b        []byte // marshaled packet, opcode + length + parameters
	op       int
	kind     terminalKind
	fn       HandlerFunc
	enqueued time.Time
	watchdog *time.Timer // nil for the debug probe
}

// cmdQ serializes command traffic to the controller. Commands go out in
// enqueue order, never more at once than the credit the controller last
// reported, and every sent command is watched for a terminal event.
//
// The controller answers its single command channel in order, so terminal
// events are matched to the oldest unanswered command rather than by
// opcode. The kind declared at enqueue time is checked against the kind
// observed; a mismatch is a protocol error.
type cmdQ struct {
	send    func([]byte) error
	timeout time.Duration
	report  func(error) // protocol errors and watchdog escalations
	fatal   func(error) // transport failures, the queue is done
	log     Logger

	mu       sync.Mutex
	credit   int // last reported allowance, implicit 1 at start
	backlog  []*pendingCommand
	inflight []*pendingCommand // sent and unanswered, oldest first
	sending  bool
	closed   bool
}

func newCmdQ(send func([]byte) error, timeout time.Duration, report, fatal func(error), log Logger) *cmdQ {
	return &cmdQ{
		send:    send,
		timeout: timeout,
		report:  report,
		fatal:   fatal,
		log:     log,
		credit:  1,
	}
}

func marshalCommand(c cmd.Command) ([]byte, error) {
	if c.Len() > maxHciPayload {
		return nil, errors.Errorf("command 0x%04X payload too long: %v", c.OpCode(), c.Len())
	}

	b := make([]byte, 3+c.Len())
	b[0] = byte(c.OpCode())
	b[1] = byte(c.OpCode() >> 8)
	b[2] = byte(c.Len())
	if err := c.Marshal(b[3:]); err != nil {
		return nil, errors.Wrapf(err, "can't marshal command 0x%04X", c.OpCode())
	}
	return b, nil
}

// enqueue accepts a command for sending. Completion is asynchronous: fn
// receives the return parameters (expected Complete) or a one byte status
// (expected Status) once the terminal event arrives.
func (q *cmdQ) enqueue(c cmd.Command, kind terminalKind, fn HandlerFunc) error {
	b, err := marshalCommand(c)
	if err != nil {
		return err
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.backlog = append(q.backlog, &pendingCommand{
		b:        b,
		op:       c.OpCode(),
		kind:     kind,
		fn:       fn,
		enqueued: time.Now(),
	})
	q.mu.Unlock()

	q.pump()
	return nil
}

// pump drains the backlog onto the wire while credit remains. Only one
// pass runs at a time, which keeps the transport seeing commands in
// backlog order even when enqueues and terminal events race.
func (q *cmdQ) pump() {
	q.mu.Lock()
	if q.sending {
		q.mu.Unlock()
		return
	}
	q.sending = true

	for {
		if q.closed || len(q.backlog) == 0 || len(q.inflight) >= q.credit {
			q.sending = false
			q.mu.Unlock()
			return
		}
		p := q.backlog[0]
		q.backlog = q.backlog[1:]
		p.watchdog = time.AfterFunc(q.timeout, func() { q.onTimeout(p) })
		q.inflight = append(q.inflight, p)
		q.mu.Unlock()

		if err := q.send(p.b); err != nil {
			q.mu.Lock()
			q.sending = false
			q.mu.Unlock()
			q.fatal(errors.Wrapf(err, "can't send command 0x%04X", p.op))
			return
		}

		q.mu.Lock()
	}
}

// onCommandComplete consumes a Command Complete terminal event.
func (q *cmdQ) onCommandComplete(e evt.CommandComplete) {
	q.handleTerminal(kindComplete, int(e.CommandOpcode()), int(e.NumHCICommandPackets()), e.ReturnParameters())
}

// onCommandStatus consumes a Command Status terminal event. The one byte
// payload keeps the status-in-first-byte convention of return parameters.
func (q *cmdQ) onCommandStatus(e evt.CommandStatus) {
	q.handleTerminal(kindStatus, int(e.CommandOpcode()), int(e.NumHCICommandPackets()), []byte{e.Status()})
}

func (q *cmdQ) handleTerminal(kind terminalKind, op, credit int, payload []byte) {
	var fire *pendingCommand
	var mismatch error

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}

	// the allowance replaces, never adds to, the previous one
	q.credit = credit

	switch {
	case op == opcodeNop:
		// flow control only, matches no sent command

	case len(q.inflight) == 0:
		q.log.Infof("spurious %v: opcode 0x%04X, credit %v", kind, op, credit)

	default:
		p := q.inflight[0]
		q.inflight = q.inflight[1:]
		if p.watchdog != nil {
			p.watchdog.Stop()
		}

		switch {
		case p.kind != kind:
			mismatch = errors.Errorf("%v for command 0x%04X which expects %v", kind, p.op, p.kind)

		default:
			if p.op != op {
				q.log.Warnf("%v opcode 0x%04X answers command 0x%04X", kind, op, p.op)
			}
			fire = p
		}
	}

	q.mu.Unlock()

	if mismatch != nil {
		q.report(mismatch)
	}
	if fire != nil && fire.fn != nil {
		if err := fire.fn(payload); err != nil {
			q.log.Errorf("command 0x%04X continuation: %v", fire.op, err)
		}
	}
	q.pump()
}

// onTimeout escalates a command that outlived its watchdog: one debug
// information probe straight to the transport, skipping the credit gate,
// and one fatal report. The command stays pending so a late terminal event
// still completes it; the probe carries no watchdog of its own.
func (q *cmdQ) onTimeout(p *pendingCommand) {
	probe, err := marshalCommand(&cmd.ControllerDebugInfo{})
	if err != nil {
		return
	}

	q.mu.Lock()
	if q.closed || !q.inflightLocked(p) {
		q.mu.Unlock()
		return
	}
	q.inflight = append(q.inflight, &pendingCommand{
		b:        probe,
		op:       (&cmd.ControllerDebugInfo{}).OpCode(),
		kind:     kindComplete,
		fn: func(b []byte) error {
			q.log.Infof("controller debug info: [% X]", b)
			return nil
		},
		enqueued: time.Now(),
	})
	elapsed := time.Since(p.enqueued)
	q.mu.Unlock()

	if err := q.send(probe); err != nil {
		q.fatal(errors.Wrap(err, "can't send debug probe"))
		return
	}
	q.report(&TimeoutError{OpCode: p.op, Elapsed: elapsed})
}

func (q *cmdQ) inflightLocked(p *pendingCommand) bool {
	for _, c := range q.inflight {
		if c == p {
			return true
		}
	}
	return false
}

// close stops all watchdogs and drops pending commands without invoking
// their continuations.
func (q *cmdQ) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for _, p := range q.inflight {
		if p.watchdog != nil {
			p.watchdog.Stop()
		}
	}
	q.inflight = nil
	q.backlog = nil
}
