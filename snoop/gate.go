package snoop

import "sync"

// gate serializes sink access and latches the first failure so a sick sink
// (full disk, closed pipe) cannot slow or break the transport path.
type gate struct {
	mu     sync.Mutex
	sink   Sink
	err    error
	closed bool
}

func newGate(s Sink) *gate {
	return &gate{sink: s}
}

func (g *gate) record(d Dir, c Class, payload []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed || g.err != nil {
		return
	}
	g.err = g.sink.Record(Record{
		Ts:      now(),
		Dir:     d,
		Class:   c,
		Payload: payload,
	})
}

func (g *gate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.closed = true
	g.sink.Close()
}
