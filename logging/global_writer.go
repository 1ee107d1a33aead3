package logging

import (
	"io"
	"os"
	"sync"
)

// swappableWriter forwards writes to a target that can be replaced while
// loggers hold on to it.
type swappableWriter struct {
	mu     sync.RWMutex
	target io.Writer
}

func (s *swappableWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.Write(p)
}

func (s *swappableWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = w
}

var stderrSink = &swappableWriter{target: os.Stderr}

// SetGlobalOutput redirects the stderr sink of every logger, including ones
// already created. The CLI points it at its injected error stream.
func SetGlobalOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	stderrSink.set(w)
}

// GetGlobalOutput returns the shared stderr sink.
func GetGlobalOutput() io.Writer {
	return stderrSink
}
