// Package testutil provides scripted terminals and fixtures for driving the
// navigator in tests.
package testutil

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/x/ansi"
	nav "github.com/grovetools/consoleui/tui/components/navigator"
	"github.com/stretchr/testify/require"
)

// ScriptedKeys is a KeySource that replays a fixed list of events. Once the
// script is exhausted it returns Err, or io.EOF when Err is nil.
type ScriptedKeys struct {
	mu     sync.Mutex
	events []nav.KeyEvent
	next   int
	Err    error
}

// NewScriptedKeys creates a key source replaying events in order.
func NewScriptedKeys(events ...nav.KeyEvent) *ScriptedKeys {
	return &ScriptedKeys{events: events}
}

// Presses is shorthand for a script of key presses.
func Presses(codes ...nav.KeyCode) *ScriptedKeys {
	events := make([]nav.KeyEvent, len(codes))
	for i, code := range codes {
		events[i] = nav.Press(code)
	}
	return NewScriptedKeys(events...)
}

// NextKeyEvent implements navigator.KeySource.
func (s *ScriptedKeys) NextKeyEvent(ctx context.Context) (nav.KeyEvent, error) {
	if err := ctx.Err(); err != nil {
		return nav.KeyEvent{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.events) {
		if s.Err != nil {
			return nav.KeyEvent{}, s.Err
		}
		return nav.KeyEvent{}, io.EOF
	}
	ev := s.events[s.next]
	s.next++
	return ev, nil
}

// Remaining returns how many events have not been read yet.
func (s *ScriptedKeys) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events) - s.next
}

// RecordingSurface is a Surface that records every frame. A frame starts at
// each Clear.
type RecordingSurface struct {
	mu     sync.Mutex
	width  int
	frames [][]string

	// ClearErr and WriteErr, when set, are returned by Clear and WriteLine.
	ClearErr error
	WriteErr error
}

// NewRecordingSurface creates a surface reporting the given width.
func NewRecordingSurface(width int) *RecordingSurface {
	return &RecordingSurface{width: width}
}

// Width implements navigator.Surface.
func (r *RecordingSurface) Width() int {
	return r.width
}

// Clear implements navigator.Surface.
func (r *RecordingSurface) Clear() error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, nil)
	return nil
}

// WriteLine implements navigator.Surface.
func (r *RecordingSurface) WriteLine(text string) error {
	if r.WriteErr != nil {
		return r.WriteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		r.frames = append(r.frames, nil)
	}
	last := len(r.frames) - 1
	r.frames[last] = append(r.frames[last], text)
	return nil
}

// Frames returns every recorded frame with styling removed.
func (r *RecordingSurface) Frames() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]string, len(r.frames))
	for i, frame := range r.frames {
		out[i] = StripLines(frame)
	}
	return out
}

// LastFrame returns the most recent frame with styling removed, or nil.
func (r *RecordingSurface) LastFrame() []string {
	frames := r.Frames()
	if len(frames) == 0 {
		return nil
	}
	return frames[len(frames)-1]
}

// StripLines removes ANSI escape sequences from every line.
func StripLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Strip(line)
	}
	return out
}

// WriteMenuFile writes content to name inside a fresh temporary directory and
// returns the file path.
func WriteMenuFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0600))
	return path
}
