package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Screen is a Surface writing to a terminal through termenv.
type Screen struct {
	out *termenv.Output
	fd  int
}

// NewScreen creates a screen on w. Width is only known when w is a terminal
// file; otherwise it reports 0 and rendering falls back to the default width.
func NewScreen(w io.Writer) *Screen {
	fd := -1
	if f, ok := w.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Screen{out: termenv.NewOutput(w), fd: fd}
}

// Width returns the terminal column count, or 0 when unknown.
func (s *Screen) Width() int {
	if s.fd < 0 {
		return 0
	}
	width, _, err := term.GetSize(s.fd)
	if err != nil {
		return 0
	}
	return width
}

// Clear erases the display and homes the cursor.
func (s *Screen) Clear() error {
	_, err := s.out.WriteString(
		fmt.Sprintf(termenv.CSI+termenv.EraseDisplaySeq, 2) +
			fmt.Sprintf(termenv.CSI+termenv.CursorPositionSeq, 1, 1))
	return err
}

// WriteLine writes text followed by CR LF, which positions the cursor
// correctly in both raw and cooked mode.
func (s *Screen) WriteLine(text string) error {
	_, err := s.out.WriteString(text + "\r\n")
	return err
}
