// Package mtrand holds the helpers shared by the mtrand command line tool.
package mtrand

import (
	"bytes"
	"io"
	"sync"
)

const lineFlushSize = 4096

// Sink serializes output from many goroutines onto one writer, whole lines
// at a time.
type Sink struct {
	w  io.Writer
	mu sync.Mutex
}

// NewSink create a new Sink writing to w
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(p)
	return err
}

// LineWriter buffers one goroutine's output and passes complete lines to
// its Sink. It is not safe for concurrent use; create one per goroutine.
type LineWriter struct {
	s   *Sink
	buf []byte
}

// NewLineWriter create a LineWriter feeding s
func (s *Sink) NewLineWriter() *LineWriter {
	return &LineWriter{s: s}
}

func (l *LineWriter) Write(p []byte) (n int, err error) {
	l.buf = append(l.buf, p...)
	if len(l.buf) < lineFlushSize {
		return len(p), nil
	}
	i := bytes.LastIndexByte(l.buf, '\n')
	if i < 0 {
		return len(p), nil
	}
	if err := l.s.write(l.buf[:i+1]); err != nil {
		return 0, err
	}
	l.buf = append(l.buf[:0], l.buf[i+1:]...)
	return len(p), nil
}

// Flush writes whatever is buffered, including a trailing partial line.
func (l *LineWriter) Flush() error {
	if len(l.buf) == 0 {
		return nil
	}
	err := l.s.write(l.buf)
	l.buf = l.buf[:0]
	return err
}
