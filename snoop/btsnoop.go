package snoop

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// BTSnoop v1 file layout: a 16 byte header followed by one record per
// packet, all fields big endian. Payloads carry the H4 type octet, matching
// the HCI UART datalink type.
var btsnoopMagic = []byte{'b', 't', 's', 'n', 'o', 'o', 'p', 0}

const (
	btsnoopVersion = 1
	btsnoopLinkH4  = 1002
	btsnoopHdrLen  = 16
	btsnoopRecHdr  = 24
	flagDirRcvd    = 0x01
	flagTypeCmdEvt = 0x02
)

// btsnoopEpochOfs is the microsecond delta between the btsnoop epoch
// (year 0) and the unix epoch.
const btsnoopEpochOfs = 0x00dcddb30f2f8000

// BtsnoopWriter is a Sink producing the capture format read by Wireshark,
// btmon and the Android tooling.
type BtsnoopWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBtsnoopWriter writes the file header and returns the sink. The writer
// is closed with the sink when it implements io.Closer.
func NewBtsnoopWriter(w io.Writer) (*BtsnoopWriter, error) {
	hdr := make([]byte, btsnoopHdrLen)
	copy(hdr, btsnoopMagic)
	binary.BigEndian.PutUint32(hdr[8:], btsnoopVersion)
	binary.BigEndian.PutUint32(hdr[12:], btsnoopLinkH4)

	if _, err := w.Write(hdr); err != nil {
		return nil, errors.Wrap(err, "can't write btsnoop header")
	}
	return &BtsnoopWriter{w: w}, nil
}

func (s *BtsnoopWriter) Record(r Record) error {
	flags := uint32(0)
	if r.Dir == Rcvd {
		flags |= flagDirRcvd
	}
	if r.Class == Command || r.Class == Event {
		flags |= flagTypeCmdEvt
	}

	n := len(r.Payload) + 1 // with the H4 type octet
	rec := make([]byte, btsnoopRecHdr+n)
	binary.BigEndian.PutUint32(rec[0:], uint32(n))
	binary.BigEndian.PutUint32(rec[4:], uint32(n))
	binary.BigEndian.PutUint32(rec[8:], flags)
	binary.BigEndian.PutUint32(rec[12:], 0) // cumulative drops
	binary.BigEndian.PutUint64(rec[16:], uint64(r.Ts.UnixMicro()+btsnoopEpochOfs))
	rec[btsnoopRecHdr] = byte(r.Class)
	copy(rec[btsnoopRecHdr+1:], r.Payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(rec)
	return errors.Wrap(err, "can't write btsnoop record")
}

func (s *BtsnoopWriter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.w.(io.Closer); ok {
		return errors.Wrap(c.Close(), "can't close btsnoop writer")
	}
	return nil
}
