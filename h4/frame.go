package h4

import (
	"fmt"
	"time"
)

// H4 packet type octets [Vol 4, Part A, 2].
const (
	cmdPacket   = 0x01
	aclPacket   = 0x02
	scoPacket   = 0x03
	eventPacket = 0x04
	isoPacket   = 0x05
)

const frameTimeout = time.Millisecond * 500

// frame reassembles whole H4 packets from an arbitrarily chunked byte
// stream. Completed packets, including their type octet, are pushed to out.
type frame struct {
	b       []byte
	timeout time.Time
	out     chan []byte
	pktType byte
}

func newFrame(c chan []byte) *frame {
	fr := &frame{
		b:   make([]byte, 0, 256),
		out: c,
	}

	return fr
}

func (f *frame) Assemble(b []byte) {
	switch {
	case len(b) == 0:
		// nothing to look at
		return

	case !f.timeout.IsZero() && time.Now().After(f.timeout):
		//timed out
		fallthrough
	case f.b == nil:
		//lazy init
		f.reset()

	default:
		// ok
	}

	if len(f.b) == 0 {
		err := f.waitStart(b)
		if err != nil {
			return
		}
	} else {
		bb := make([]byte, len(b))
		copy(bb, b)
		f.b = append(f.b, bb...)
	}

	rf, err := f.frame()
	if err != nil {
		return
	}
	out := make([]byte, len(rf))
	copy(out, rf)
	f.out <- out

	// shift
	if len(f.b) > len(rf) {
		rem := make([]byte, len(f.b[len(rf):]))
		copy(rem, f.b[len(rf):])
		f.reset()
		f.Assemble(rem)
	} else {
		f.reset()
	}
}

func (f *frame) reset() {
	f.b = make([]byte, 0, 256)
	f.timeout = time.Time{}
}

func (f *frame) waitStart(b []byte) error {
	// find the start byte
	var i int
	var v byte
	var ok bool
	for i, v = range b {
		switch v {
		case cmdPacket, aclPacket, scoPacket, eventPacket, isoPacket:
			f.pktType = v
		default:
			continue
		}

		ok = true
		f.timeout = time.Now().Add(frameTimeout)
		break
	}

	if !ok {
		return fmt.Errorf("couldnt find start byte")
	}

	bb := make([]byte, len(b[i:]))
	copy(bb, b[i:])
	f.b = append(f.b, bb...)
	return nil
}

func (f *frame) dataLength() (int, error) {
	switch f.pktType {
	case cmdPacket:
		return f.commandLength()
	case aclPacket:
		return f.aclLength()
	case scoPacket:
		return f.scoLength()
	case eventPacket:
		return f.eventLength()
	case isoPacket:
		return f.isoLength()
	default:
		return 0, fmt.Errorf("invalid packet type %v", f.pktType)
	}
}

func (f *frame) commandLength() (int, error) {
	if len(f.b) < 4 {
		return 0, fmt.Errorf("not enough bytes")
	}

	return int(f.b[3]) + 4, nil
}

func (f *frame) eventLength() (int, error) {
	if len(f.b) < 3 {
		return 0, fmt.Errorf("not enough bytes")
	}

	return int(f.b[2]) + 3, nil
}

func (f *frame) aclLength() (int, error) {
	if len(f.b) < 5 {
		return 0, fmt.Errorf("not enough bytes")
	}

	l := int(f.b[3]) | (int(f.b[4]) << 8)
	return l + 5, nil
}

func (f *frame) scoLength() (int, error) {
	if len(f.b) < 4 {
		return 0, fmt.Errorf("not enough bytes")
	}

	return int(f.b[3]) + 4, nil
}

func (f *frame) isoLength() (int, error) {
	if len(f.b) < 5 {
		return 0, fmt.Errorf("not enough bytes")
	}

	// upper two bits of the load length field are reserved
	l := (int(f.b[3]) | (int(f.b[4]) << 8)) & 0x3fff
	return l + 5, nil
}

func (f *frame) frame() ([]byte, error) {
	tl, err := f.dataLength()
	if err != nil {
		return nil, err
	}

	if len(f.b) < tl {
		return nil, fmt.Errorf("not enough bytes")
	}
	return f.b[:tl], nil
}
