package h4

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
)

// fakeRWC is a scripted byte stream. Reads block until a chunk or an error
// is injected, or until the stream is closed.
type fakeRWC struct {
	mu sync.Mutex
	wr [][]byte

	rd     chan []byte
	rdErr  chan error
	closed chan struct{}
}

func newFakeRWC() *fakeRWC {
	return &fakeRWC{
		rd:     make(chan []byte, 8),
		rdErr:  make(chan error, 1),
		closed: make(chan struct{}),
	}
}

func (f *fakeRWC) Read(p []byte) (int, error) {
	select {
	case b := <-f.rd:
		return copy(p, b), nil
	case err := <-f.rdErr:
		return 0, err
	case <-f.closed:
		return 0, io.EOF
	}
}

func (f *fakeRWC) Write(p []byte) (int, error) {
	select {
	case <-f.closed:
		return 0, io.EOF
	default:
	}

	b := make([]byte, len(p))
	copy(b, p)
	f.mu.Lock()
	f.wr = append(f.wr, b)
	f.mu.Unlock()
	return len(p), nil
}

func (f *fakeRWC) Close() error {
	select {
	case <-f.closed:
	default:
		close(f.closed)
	}
	return nil
}

func (f *fakeRWC) writes() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.wr))
	copy(out, f.wr)
	return out
}

type recordingCallbacks struct {
	mu   sync.Mutex
	evts [][]byte
	acls [][]byte
	scos [][]byte
	isos [][]byte
	errs []error
}

func (c *recordingCallbacks) OnEvent(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evts = append(c.evts, b)
}

func (c *recordingCallbacks) OnAcl(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.acls = append(c.acls, b)
}

func (c *recordingCallbacks) OnSco(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scos = append(c.scos, b)
}

func (c *recordingCallbacks) OnIso(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isos = append(c.isos, b)
}

func (c *recordingCallbacks) OnError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

func (c *recordingCallbacks) snapshot() (evts, acls, scos, isos [][]byte, errs []error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte{}, c.evts...),
		append([][]byte{}, c.acls...),
		append([][]byte{}, c.scos...),
		append([][]byte{}, c.isos...),
		append([]error{}, c.errs...)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %v", what)
}

func TestSendAddsTypeOctet(t *testing.T) {
	rwc := newFakeRWC()
	h := NewHal(rwc)
	defer h.Close()

	if err := h.SendCommand([]byte{0x03, 0x0c, 0x00}); err != nil {
		t.Fatal(err)
	}
	if err := h.SendAcl([]byte{0x40, 0x00, 0x01, 0x00, 0xaa}); err != nil {
		t.Fatal(err)
	}
	if err := h.SendSco([]byte{0x40, 0x00, 0x01, 0xbb}); err != nil {
		t.Fatal(err)
	}
	if err := h.SendIso([]byte{0x60, 0x00, 0x01, 0x00, 0xcc}); err != nil {
		t.Fatal(err)
	}

	wr := rwc.writes()
	if len(wr) != 4 {
		t.Fatalf("writes: got %v, want 4", len(wr))
	}

	want := [][]byte{
		{cmdPacket, 0x03, 0x0c, 0x00},
		{aclPacket, 0x40, 0x00, 0x01, 0x00, 0xaa},
		{scoPacket, 0x40, 0x00, 0x01, 0xbb},
		{isoPacket, 0x60, 0x00, 0x01, 0x00, 0xcc},
	}
	for i := range want {
		if !bytes.Equal(wr[i], want[i]) {
			t.Fatalf("write %v: got % X, want % X", i, wr[i], want[i])
		}
	}
}

func TestReceiveDemux(t *testing.T) {
	rwc := newFakeRWC()
	cb := &recordingCallbacks{}

	h := NewHal(rwc)
	h.RegisterCallbacks(cb)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	rwc.rd <- []byte{eventPacket, 0x0e, 0x04, 0x01, 0x03, 0x0c, 0x00}
	rwc.rd <- []byte{aclPacket, 0x40, 0x20, 0x02, 0x00, 0xaa, 0xbb}
	rwc.rd <- []byte{scoPacket, 0x40, 0x00, 0x01, 0xcc}
	rwc.rd <- []byte{isoPacket, 0x60, 0x00, 0x01, 0x00, 0xdd}

	waitFor(t, "all packet classes", func() bool {
		evts, acls, scos, isos, _ := cb.snapshot()
		return len(evts) == 1 && len(acls) == 1 && len(scos) == 1 && len(isos) == 1
	})

	evts, acls, scos, isos, errs := cb.snapshot()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	// type octet must be stripped before dispatch
	if !bytes.Equal(evts[0], []byte{0x0e, 0x04, 0x01, 0x03, 0x0c, 0x00}) {
		t.Fatalf("event payload: got % X", evts[0])
	}
	if !bytes.Equal(acls[0], []byte{0x40, 0x20, 0x02, 0x00, 0xaa, 0xbb}) {
		t.Fatalf("acl payload: got % X", acls[0])
	}
	if !bytes.Equal(scos[0], []byte{0x40, 0x00, 0x01, 0xcc}) {
		t.Fatalf("sco payload: got % X", scos[0])
	}
	if !bytes.Equal(isos[0], []byte{0x60, 0x00, 0x01, 0x00, 0xdd}) {
		t.Fatalf("iso payload: got % X", isos[0])
	}
}

func TestReceiveChunked(t *testing.T) {
	rwc := newFakeRWC()
	cb := &recordingCallbacks{}

	h := NewHal(rwc)
	h.RegisterCallbacks(cb)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	// one event split mid-header, mid-parameters
	rwc.rd <- []byte{eventPacket, 0x3e}
	rwc.rd <- []byte{0x03, 0x05}
	rwc.rd <- []byte{0x40, 0x00}

	waitFor(t, "reassembled event", func() bool {
		evts, _, _, _, _ := cb.snapshot()
		return len(evts) == 1
	})

	evts, _, _, _, _ := cb.snapshot()
	if !bytes.Equal(evts[0], []byte{0x3e, 0x03, 0x05, 0x40, 0x00}) {
		t.Fatalf("event payload: got % X", evts[0])
	}
}

func TestReceiveIgnoresLoopedCommand(t *testing.T) {
	rwc := newFakeRWC()
	cb := &recordingCallbacks{}

	h := NewHal(rwc)
	h.RegisterCallbacks(cb)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	// some UARTs echo outbound traffic; a command packet on the inbound
	// path must not be surfaced
	rwc.rd <- []byte{cmdPacket, 0x03, 0x0c, 0x00}
	rwc.rd <- []byte{eventPacket, 0x10, 0x01, 0x42}

	waitFor(t, "event after echoed command", func() bool {
		evts, _, _, _, _ := cb.snapshot()
		return len(evts) == 1
	})

	evts, acls, scos, isos, errs := cb.snapshot()
	if len(acls)+len(scos)+len(isos)+len(errs) != 0 {
		t.Fatalf("unexpected dispatches: %v %v %v %v", acls, scos, isos, errs)
	}
	if !bytes.Equal(evts[0], []byte{0x10, 0x01, 0x42}) {
		t.Fatalf("event payload: got % X", evts[0])
	}
}

func TestReadErrorReported(t *testing.T) {
	rwc := newFakeRWC()
	cb := &recordingCallbacks{}

	h := NewHal(rwc)
	h.RegisterCallbacks(cb)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	rwc.rdErr <- errors.New("tty gone")

	waitFor(t, "transport error", func() bool {
		_, _, _, _, errs := cb.snapshot()
		return len(errs) == 1
	})
}

func TestCloseStopsIO(t *testing.T) {
	rwc := newFakeRWC()
	cb := &recordingCallbacks{}

	h := NewHal(rwc)
	h.RegisterCallbacks(cb)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}

	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	// second close is a no-op
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	if err := h.SendCommand([]byte{0x03, 0x0c, 0x00}); err == nil {
		t.Fatal("send after close should fail")
	}
	if err := h.Start(); err == nil {
		t.Fatal("start after close should fail")
	}

	// the read pump saw io.EOF after close; that is a shutdown, not an error
	time.Sleep(50 * time.Millisecond)
	_, _, _, _, errs := cb.snapshot()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors after close: %v", errs)
	}
}
