// Package terminal connects the navigator to a real POSIX terminal: a raw
// mode key reader and a line-oriented screen.
package terminal

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/grovetools/consoleui/errors"
	"github.com/grovetools/consoleui/logging"
	"github.com/grovetools/consoleui/tui/components/navigator"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// KeyReader reads key events from a terminal. The terminal is switched to raw
// mode only while a read is in progress, so activation callbacks and child
// processes see a normal cooked terminal.
type KeyReader struct {
	in  io.Reader
	fd  int
	log *logrus.Entry

	mu      sync.Mutex
	state   *term.State
	pending []byte
	closed  bool
}

type readResult struct {
	data []byte
	err  error
}

// NewKeyReader creates a reader for the given terminal file. It fails with
// TERMINAL_UNAVAILABLE when f is not a terminal.
func NewKeyReader(f *os.File) (*KeyReader, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.TerminalUnavailable("input is not a terminal", nil).
			WithDetail("name", f.Name())
	}
	return &KeyReader{
		in:  f,
		fd:  fd,
		log: logging.NewLogger("terminal"),
	}, nil
}

// NextKeyEvent blocks for the next key. Bytes that arrive together are
// decoded one event per call.
func (r *KeyReader) NextKeyEvent(ctx context.Context) (navigator.KeyEvent, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return navigator.KeyEvent{}, io.ErrClosedPipe
	}
	if len(r.pending) > 0 {
		ev := r.consume()
		r.mu.Unlock()
		return ev, nil
	}
	r.mu.Unlock()

	if err := r.enterRaw(); err != nil {
		return navigator.KeyEvent{}, err
	}
	defer r.restore()

	results := make(chan readResult, 1)
	go func() {
		buf := make([]byte, 64)
		n, err := r.in.Read(buf)
		results <- readResult{data: buf[:n], err: err}
	}()

	select {
	case <-ctx.Done():
		return navigator.KeyEvent{}, ctx.Err()
	case res := <-results:
		if res.err != nil {
			return navigator.KeyEvent{}, res.err
		}
		if len(res.data) == 0 {
			return navigator.KeyEvent{}, io.EOF
		}

		r.mu.Lock()
		defer r.mu.Unlock()
		r.pending = append(r.pending, res.data...)
		ev := r.consume()
		r.log.WithFields(logrus.Fields{
			"key":   ev.Code.String(),
			"bytes": len(res.data),
		}).Trace("Key decoded")
		return ev, nil
	}
}

// consume decodes one event from pending. Callers hold mu.
func (r *KeyReader) consume() navigator.KeyEvent {
	ev, n := DecodeNext(r.pending)
	if n <= 0 || n >= len(r.pending) {
		r.pending = r.pending[:0]
	} else {
		r.pending = r.pending[n:]
	}
	return ev
}

func (r *KeyReader) enterRaw() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := term.MakeRaw(r.fd)
	if err != nil {
		return errors.TerminalUnavailable("enable raw mode", err)
	}
	r.state = state
	return nil
}

func (r *KeyReader) restore() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == nil {
		return
	}
	if err := term.Restore(r.fd, r.state); err != nil {
		r.log.WithError(err).Warn("Failed to restore terminal state")
	}
	r.state = nil
}

// Close restores the terminal if a read left it in raw mode. Further reads
// fail.
func (r *KeyReader) Close() error {
	r.restore()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// IsInteractive reports whether both ends of the session are terminals.
func IsInteractive(in, out *os.File) bool {
	return isTTY(in) && isTTY(out)
}

func isTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
