package hci

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
)

// sendRec records what a queue end put on the wire, with an optional
// injected failure.
type sendRec struct {
	mu   sync.Mutex
	sent [][]byte
	err  error
}

func (s *sendRec) send(b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, append([]byte{}, b...))
	return nil
}

func (s *sendRec) all() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte{}, s.sent...)
}

func TestQueueEndProviderHandoff(t *testing.T) {
	rec := &sendRec{}
	q := newQueueEnd("test", rec.send, func(err error) { t.Errorf("fatal: %v", err) }, GetLogger())
	q.enable()

	q.RegisterEnqueue(func() []byte {
		// hand the slot to a successor and end this pull empty handed
		q.UnregisterEnqueue()
		var i byte
		q.RegisterEnqueue(func() []byte {
			i++
			if i == 3 {
				q.UnregisterEnqueue()
			}
			return []byte{i}
		})
		return nil
	})

	waitFor(t, "successor packets", func() bool { return len(rec.all()) == 3 })
	for i, b := range rec.all() {
		if !bytes.Equal(b, []byte{byte(i + 1)}) {
			t.Fatalf("packet %v: got % X", i, b)
		}
	}
}

func TestQueueEndSendFailure(t *testing.T) {
	rec := &sendRec{err: errors.New("uart gone")}

	var mu sync.Mutex
	var fatals []error
	var pulls int
	q := newQueueEnd("test", rec.send, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		fatals = append(fatals, err)
	}, GetLogger())
	q.enable()

	q.RegisterEnqueue(func() []byte {
		mu.Lock()
		pulls++
		mu.Unlock()
		return []byte{0x01}
	})

	waitFor(t, "fatal report", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fatals) == 1
	})

	// the pump stopped with the transport; no further pulls
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if pulls != 1 {
		t.Fatalf("pulls after failure: got %v", pulls)
	}
}

func TestQueueEndDisableDropsRegistrations(t *testing.T) {
	rec := &sendRec{}
	q := newQueueEnd("test", rec.send, func(err error) { t.Errorf("fatal: %v", err) }, GetLogger())
	q.enable()

	q.RegisterEnqueue(func() []byte { return []byte{0xaa} })
	waitFor(t, "first packets", func() bool { return len(rec.all()) >= 1 })

	q.disable()
	time.Sleep(50 * time.Millisecond)
	n := len(rec.all())
	time.Sleep(50 * time.Millisecond)
	if len(rec.all()) != n {
		t.Fatal("pull continued after disable")
	}

	// the old provider slot was dropped, a new registration is clean
	done := make(chan struct{})
	q.RegisterEnqueue(func() []byte {
		q.UnregisterEnqueue()
		close(done)
		return []byte{0xbb}
	})
	select {
	case <-done:
		t.Fatal("pulled while disabled")
	case <-time.After(50 * time.Millisecond):
	}

	q.enable()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("no pull after re-enable")
	}
}

func TestQueueEndUnregisterDequeueKeepsBuffer(t *testing.T) {
	q := newQueueEnd("test", func(b []byte) error { return nil }, func(err error) {}, GetLogger())

	var got [][]byte
	q.RegisterDequeue(func(b []byte) { got = append(got, b) })
	q.push([]byte{0x01})
	if len(got) != 1 {
		t.Fatalf("first delivery: got %v", got)
	}

	q.UnregisterDequeue()
	q.push([]byte{0x02})
	q.push([]byte{0x03})
	if len(got) != 1 {
		t.Fatalf("delivery without consumer: got %v", got)
	}

	if b := q.TryDequeue(); !bytes.Equal(b, []byte{0x02}) {
		t.Fatalf("try dequeue: got % X", b)
	}

	// re-registration flushes what TryDequeue left behind
	q.RegisterDequeue(func(b []byte) { got = append(got, b) })
	if len(got) != 2 || !bytes.Equal(got[1], []byte{0x03}) {
		t.Fatalf("flush on re-register: got %v", got)
	}
}

func TestQueueEndDeliveryOrderUnderLoad(t *testing.T) {
	q := newQueueEnd("test", func(b []byte) error { return nil }, func(err error) {}, GetLogger())

	var mu sync.Mutex
	var got [][]byte
	q.RegisterDequeue(func(b []byte) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, b)
	})

	const n = 200
	go func() {
		for i := 0; i < n; i++ {
			q.push([]byte{byte(i), byte(i >> 8)})
		}
	}()

	waitFor(t, "all deliveries", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == n
	})

	mu.Lock()
	defer mu.Unlock()
	for i, b := range got {
		if !bytes.Equal(b, []byte{byte(i), byte(i >> 8)}) {
			t.Fatalf("delivery %v out of order: % X", i, b)
		}
	}
}
