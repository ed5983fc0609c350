package h4

import (
	"bytes"
	"testing"
)

func drain(c chan []byte) [][]byte {
	var out [][]byte
	for {
		select {
		case b := <-c:
			out = append(out, b)
		default:
			return out
		}
	}
}

func TestFrameEventSingleChunk(t *testing.T) {
	c := make(chan []byte, 4)
	f := newFrame(c)

	// command complete for reset
	pkt := []byte{eventPacket, 0x0e, 0x04, 0x01, 0x03, 0x0c, 0x00}
	f.Assemble(pkt)

	got := drain(c)
	if len(got) != 1 {
		t.Fatalf("frames: got %v, want 1", len(got))
	}
	if !bytes.Equal(got[0], pkt) {
		t.Fatalf("frame: got % X", got[0])
	}
}

func TestFrameEventByteAtATime(t *testing.T) {
	c := make(chan []byte, 4)
	f := newFrame(c)

	pkt := []byte{eventPacket, 0x3e, 0x03, 0x05, 0x40, 0x00}
	for _, b := range pkt {
		f.Assemble([]byte{b})
	}

	got := drain(c)
	if len(got) != 1 || !bytes.Equal(got[0], pkt) {
		t.Fatalf("frames: got % X", got)
	}
}

func TestFrameTwoPacketsOneChunk(t *testing.T) {
	c := make(chan []byte, 4)
	f := newFrame(c)

	p1 := []byte{eventPacket, 0x13, 0x05, 0x01, 0x40, 0x00, 0x01, 0x00}
	p2 := []byte{aclPacket, 0x40, 0x20, 0x02, 0x00, 0xaa, 0xbb}
	f.Assemble(append(append([]byte{}, p1...), p2...))

	got := drain(c)
	if len(got) != 2 {
		t.Fatalf("frames: got %v, want 2", len(got))
	}
	if !bytes.Equal(got[0], p1) || !bytes.Equal(got[1], p2) {
		t.Fatalf("frames: got % X / % X", got[0], got[1])
	}
}

func TestFrameGarbageBeforeStart(t *testing.T) {
	c := make(chan []byte, 4)
	f := newFrame(c)

	pkt := []byte{eventPacket, 0x10, 0x01, 0x42}
	f.Assemble(append([]byte{0x00, 0xf7, 0xff}, pkt...))

	got := drain(c)
	if len(got) != 1 || !bytes.Equal(got[0], pkt) {
		t.Fatalf("frames: got % X", got)
	}
}

func TestFrameAclSplitInHeader(t *testing.T) {
	c := make(chan []byte, 4)
	f := newFrame(c)

	pkt := []byte{aclPacket, 0x40, 0x00, 0x04, 0x00, 0xde, 0xad, 0xbe, 0xef}
	f.Assemble(pkt[:3]) // type + partial header, length unknown yet
	if got := drain(c); len(got) != 0 {
		t.Fatalf("early frame: % X", got)
	}
	f.Assemble(pkt[3:])

	got := drain(c)
	if len(got) != 1 || !bytes.Equal(got[0], pkt) {
		t.Fatalf("frames: got % X", got)
	}
}

func TestFrameScoAndIso(t *testing.T) {
	c := make(chan []byte, 4)
	f := newFrame(c)

	sco := []byte{scoPacket, 0x40, 0x00, 0x02, 0x11, 0x22}
	iso := []byte{isoPacket, 0x60, 0x00, 0x03, 0x40, 0xaa, 0xbb, 0xcc} // reserved bits set in load length
	f.Assemble(sco)
	f.Assemble(iso)

	got := drain(c)
	if len(got) != 2 {
		t.Fatalf("frames: got %v, want 2", len(got))
	}
	if !bytes.Equal(got[0], sco) {
		t.Fatalf("sco frame: got % X", got[0])
	}
	if !bytes.Equal(got[1], iso) {
		t.Fatalf("iso frame: got % X", got[1])
	}
}

func TestFrameCommandLoopback(t *testing.T) {
	c := make(chan []byte, 4)
	f := newFrame(c)

	pkt := []byte{cmdPacket, 0x06, 0x04, 0x03, 0x40, 0x00, 0x13}
	f.Assemble(pkt)

	got := drain(c)
	if len(got) != 1 || !bytes.Equal(got[0], pkt) {
		t.Fatalf("frames: got % X", got)
	}
}
