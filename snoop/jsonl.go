package snoop

import (
	"encoding/hex"
	"io"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type jsonlRecord struct {
	Ts      time.Time `json:"ts"`
	Dir     string    `json:"dir"`
	Class   string    `json:"class"`
	Len     int       `json:"len"`
	Payload string    `json:"payload"`
}

// JsonlWriter is a Sink emitting one JSON object per packet, one per line.
// Handy for piping through jq when a full btsnoop capture is overkill.
type JsonlWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewJsonlWriter(w io.Writer) *JsonlWriter {
	return &JsonlWriter{w: w}
}

func (s *JsonlWriter) Record(r Record) error {
	out, err := jsoniter.Marshal(jsonlRecord{
		Ts:      r.Ts,
		Dir:     r.Dir.String(),
		Class:   r.Class.String(),
		Len:     len(r.Payload),
		Payload: hex.EncodeToString(r.Payload),
	})
	if err != nil {
		return errors.Wrap(err, "can't marshal snoop record")
	}
	out = append(out, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.w.Write(out)
	return errors.Wrap(err, "can't write snoop record")
}

func (s *JsonlWriter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.w.(io.Closer); ok {
		return errors.Wrap(c.Close(), "can't close snoop writer")
	}
	return nil
}
