package reporter

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

// DefaultPath is the unknown-error log used when none is configured.
const DefaultPath = "unknown_errors.txt"

// WriterSink writes each record as a single Write of one full line. The
// mutex keeps lines whole even when w itself is not safe for concurrent use.
type WriterSink struct {
	name string
	mu   sync.Mutex
	w    io.Writer
}

// NewWriterSink wraps w.
func NewWriterSink(name string, w io.Writer) *WriterSink {
	return &WriterSink{name: name, w: w}
}

// Name implements Sink.
func (s *WriterSink) Name() string { return s.name }

// Append implements Sink.
func (s *WriterSink) Append(_ context.Context, rec Record) error {
	line := []byte(rec.Line())
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return errors.New("sink closed")
	}
	_, err := s.w.Write(line)
	return err
}

// Close closes the underlying writer when it is an io.Closer.
func (s *WriterSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return nil
	}
	var err error
	if c, ok := s.w.(io.Closer); ok {
		err = c.Close()
	}
	s.w = nil
	return err
}

// OpenFileSink opens path in append mode, creating it and its directory
// when missing. O_APPEND makes every line land at the current end of file
// even when other processes append to the same log.
func OpenFileSink(path string) (*WriterSink, error) {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	return NewWriterSink("file", f), nil
}

// RotationOptions configures OpenRotatingFileSink.
type RotationOptions struct {
	// MaxAge removes rotated files older than this. Zero keeps 7 days.
	MaxAge time.Duration
	// RotationTime is the interval between rotations. Zero rotates daily.
	RotationTime time.Duration
}

// OpenRotatingFileSink writes to dir/{base}.%Y%m%d.log with a
// dir/{base}.log symlink pointing at the current file.
func OpenRotatingFileSink(dir, base string, opts RotationOptions) (*WriterSink, error) {
	if dir == "" {
		dir = "."
	}
	if base == "" {
		base = "unknown_errors"
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 7 * 24 * time.Hour
	}
	if opts.RotationTime <= 0 {
		opts.RotationTime = 24 * time.Hour
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	writer, err := rotatelogs.New(
		filepath.Join(dir, base+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, base+".log")),
		rotatelogs.WithMaxAge(opts.MaxAge),
		rotatelogs.WithRotationTime(opts.RotationTime),
	)
	if err != nil {
		return nil, err
	}
	return NewWriterSink("rotating_file", writer), nil
}
