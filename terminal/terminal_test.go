package terminal

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/grovetools/consoleui/errors"
	nav "github.com/grovetools/consoleui/tui/components/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  nav.KeyCode
	}{
		{"carriage return", "\r", nav.CodeEnter},
		{"line feed", "\n", nav.CodeEnter},
		{"lone escape", "\x1b", nav.CodeEscape},
		{"ctrl+c", "\x03", nav.CodeEscape},
		{"csi up", "\x1b[A", nav.CodeUp},
		{"csi down", "\x1b[B", nav.CodeDown},
		{"csi right", "\x1b[C", nav.CodeRight},
		{"csi left", "\x1b[D", nav.CodeLeft},
		{"ss3 up", "\x1bOA", nav.CodeUp},
		{"ss3 down", "\x1bOB", nav.CodeDown},
		{"ss3 right", "\x1bOC", nav.CodeRight},
		{"ss3 left", "\x1bOD", nav.CodeLeft},
		{"modified arrow", "\x1b[1;5A", nav.CodeUp},
		{"home key", "\x1b[H", nav.CodeOther},
		{"delete key", "\x1b[3~", nav.CodeOther},
		{"letter", "a", nav.CodeOther},
		{"vi key", "k", nav.CodeOther},
		{"alt+letter", "\x1bx", nav.CodeOther},
		{"multibyte rune", "ü", nav.CodeOther},
		{"empty", "", nav.CodeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Decode([]byte(tt.input))
			assert.Equal(t, nav.KeyPress, ev.Type)
			assert.Equal(t, tt.want, ev.Code)
		})
	}
}

func TestDecodeNextConsumesWholeSequence(t *testing.T) {
	data := []byte("\x1b[B\x1b[Bx\r\n\x1bOD")

	var codes []nav.KeyCode
	for len(data) > 0 {
		ev, n := DecodeNext(data)
		require.Positive(t, n)
		codes = append(codes, ev.Code)
		data = data[n:]
	}

	assert.Equal(t, []nav.KeyCode{
		nav.CodeDown, nav.CodeDown, nav.CodeOther, nav.CodeEnter, nav.CodeLeft,
	}, codes)
}

func TestDecodeNextTruncatedSequences(t *testing.T) {
	ev, n := DecodeNext([]byte("\x1b["))
	assert.Equal(t, nav.CodeOther, ev.Code)
	assert.Equal(t, 2, n)

	ev, n = DecodeNext([]byte("\x1bO"))
	assert.Equal(t, nav.CodeOther, ev.Code)
	assert.Equal(t, 2, n)

	ev, n = DecodeNext([]byte{0xe2, 0x82})
	assert.Equal(t, nav.CodeOther, ev.Code)
	assert.Equal(t, 2, n)
}

func TestScreenWritesFrames(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	assert.Equal(t, 0, s.Width())
	require.NoError(t, s.Clear())
	require.NoError(t, s.WriteLine("Home"))

	assert.Equal(t, "\x1b[2J\x1b[1;1HHome\r\n", buf.String())
}

func TestNewKeyReaderRejectsNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "keys")
	require.NoError(t, err)
	defer f.Close()

	_, err = NewKeyReader(f)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTerminalUnavailable, errors.GetCode(err))
	assert.False(t, IsInteractive(f, f))
}

func TestClosedReaderFails(t *testing.T) {
	r := &KeyReader{closed: true}
	_, err := r.NextKeyEvent(context.Background())
	assert.Error(t, err)
}

func TestPendingBytesServedWithoutRead(t *testing.T) {
	r := &KeyReader{pending: []byte("\x1b[A\r")}

	ev, err := r.NextKeyEvent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nav.CodeUp, ev.Code)

	ev, err = r.NextKeyEvent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nav.CodeEnter, ev.Code)
}
