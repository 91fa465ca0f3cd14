package export

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/san-kum/aurasim/internal/sim"
)

// FrameLog is a sim.Observer that streams one JSON line per frame,
// optionally zstd-compressed.
type FrameLog struct {
	enc *zstd.Encoder
	w   *bufio.Writer
	err error
}

func NewFrameLog(w io.Writer, compress bool) (*FrameLog, error) {
	l := &FrameLog{}
	if compress {
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return nil, err
		}
		l.enc = enc
		w = enc
	}
	l.w = bufio.NewWriterSize(w, 64*1024)
	return l, nil
}

func (l *FrameLog) OnFrame(s sim.Snapshot) {
	if l.err != nil {
		return
	}
	b, err := json.Marshal(NewRecord(s))
	if err != nil {
		l.err = err
		return
	}
	if _, err := l.w.Write(b); err != nil {
		l.err = err
		return
	}
	l.err = l.w.WriteByte('\n')
}

// Close flushes buffered lines and ends the zstd frame. It returns the
// first write error seen, if any.
func (l *FrameLog) Close() error {
	if err := l.w.Flush(); err != nil && l.err == nil {
		l.err = err
	}
	if l.enc != nil {
		if err := l.enc.Close(); err != nil && l.err == nil {
			l.err = err
		}
	}
	return l.err
}
