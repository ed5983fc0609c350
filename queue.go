package hci

import (
	"sync"

	"github.com/pkg/errors"
)

// ProviderFunc supplies the next outgoing unit of its data class. It is
// invoked once per transport capacity signal and should return exactly one
// unit; a provider with nothing left to send should unregister instead of
// returning nil. It may call UnregisterEnqueue from inside the callback.
type ProviderFunc func() []byte

// ConsumerFunc receives one incoming unit. Buffer ownership passes to the
// consumer.
type ConsumerFunc func(b []byte)

// QueueEnd is one end of a bidirectional data stream between the transport
// and a single upper module. The outgoing side pulls from a registered
// provider whenever the transport can take another unit; the incoming side
// buffers arrivals, in order and without bound, until a consumer takes
// them.
type QueueEnd struct {
	name  string
	send  func([]byte) error
	fatal func(error)
	log   Logger

	mu         sync.Mutex
	provider   ProviderFunc
	gen        int // bumped per RegisterEnqueue, detects re-registration mid-pump
	consumer   ConsumerFunc
	in         [][]byte
	enabled    bool
	pumping    bool
	delivering bool
}

func newQueueEnd(name string, send func([]byte) error, fatal func(error), log Logger) *QueueEnd {
	return &QueueEnd{
		name:  name,
		send:  send,
		fatal: fatal,
		log:   log,
	}
}

// RegisterEnqueue installs the sole outgoing provider. Registering a second
// provider before unregistering the first panics.
func (q *QueueEnd) RegisterEnqueue(p ProviderFunc) {
	q.mu.Lock()
	if q.provider != nil {
		q.mu.Unlock()
		panic("hci: " + q.name + " queue end already has an enqueue provider")
	}
	q.provider = p
	q.gen++
	q.mu.Unlock()

	q.kick()
}

// UnregisterEnqueue removes the outgoing provider. Safe to call from inside
// the provider callback.
func (q *QueueEnd) UnregisterEnqueue() {
	q.mu.Lock()
	q.provider = nil
	q.mu.Unlock()
}

// RegisterDequeue installs the sole incoming consumer. Units buffered while
// no consumer was registered are delivered immediately, oldest first.
// Registering a second consumer before unregistering the first panics.
func (q *QueueEnd) RegisterDequeue(c ConsumerFunc) {
	q.mu.Lock()
	if q.consumer != nil {
		q.mu.Unlock()
		panic("hci: " + q.name + " queue end already has a dequeue consumer")
	}
	q.consumer = c
	q.mu.Unlock()

	q.deliver()
}

// UnregisterDequeue removes the incoming consumer. Buffered units are kept
// for the next consumer or for TryDequeue.
func (q *QueueEnd) UnregisterDequeue() {
	q.mu.Lock()
	q.consumer = nil
	q.mu.Unlock()
}

// TryDequeue pops the oldest buffered incoming unit, or returns nil when
// nothing is buffered.
func (q *QueueEnd) TryDequeue() []byte {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.in) == 0 {
		return nil
	}
	b := q.in[0]
	q.in = q.in[1:]
	return b
}

// push buffers one incoming unit and hands it on if a consumer is waiting.
func (q *QueueEnd) push(b []byte) {
	q.mu.Lock()
	q.in = append(q.in, b)
	c := q.consumer
	q.mu.Unlock()

	if c != nil {
		q.deliver()
	}
}

// enable opens the outgoing side. The incoming side is always open.
func (q *QueueEnd) enable() {
	q.mu.Lock()
	q.enabled = true
	q.mu.Unlock()

	q.log.Debugf("%s queue end open", q.name)
	q.kick()
}

// disable closes the outgoing side and drops both registrations.
func (q *QueueEnd) disable() {
	q.mu.Lock()
	q.enabled = false
	q.provider = nil
	q.consumer = nil
	q.mu.Unlock()
}

// kick starts one pump pass if the outgoing side is open, has a provider,
// and no pass is already running.
func (q *QueueEnd) kick() {
	q.mu.Lock()
	if q.pumping || !q.enabled || q.provider == nil {
		q.mu.Unlock()
		return
	}
	q.pumping = true
	q.mu.Unlock()

	go q.pump()
}

func (q *QueueEnd) pump() {
	for {
		q.mu.Lock()
		p, gen := q.provider, q.gen
		if !q.enabled || p == nil {
			q.pumping = false
			q.mu.Unlock()
			return
		}
		q.mu.Unlock()

		// pull outside the lock; the provider may unregister here, or
		// unregister and hand the slot to a successor
		b := p()
		if b == nil {
			q.mu.Lock()
			if q.provider != nil && q.gen != gen {
				// a fresh provider took over mid-pull, serve it
				q.mu.Unlock()
				continue
			}
			q.pumping = false
			stale := q.provider != nil
			q.mu.Unlock()
			if stale {
				q.log.Warnf("%s provider returned nothing but stayed registered", q.name)
			}
			return
		}

		if err := q.send(b); err != nil {
			q.mu.Lock()
			q.pumping = false
			q.mu.Unlock()
			q.fatal(errors.Wrapf(err, "can't send %s", q.name))
			return
		}
	}
}

// deliver drains buffered units to the consumer, one at a time, preserving
// arrival order. Only one drain runs at a time so deliveries never reorder.
func (q *QueueEnd) deliver() {
	q.mu.Lock()
	if q.delivering {
		q.mu.Unlock()
		return
	}
	q.delivering = true
	q.mu.Unlock()

	for {
		q.mu.Lock()
		c := q.consumer
		if c == nil || len(q.in) == 0 {
			q.delivering = false
			q.mu.Unlock()
			return
		}
		b := q.in[0]
		q.in = q.in[1:]
		q.mu.Unlock()

		c(b)
	}
}
