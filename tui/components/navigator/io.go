package navigator

import (
	"context"
	stderrors "errors"

	"github.com/grovetools/consoleui/errors"
	"github.com/sirupsen/logrus"
)

// EventType distinguishes key presses from key releases.
type EventType uint8

const (
	KeyPress EventType = iota
	KeyRelease
)

// KeyCode is the closed set of logical keys the navigator understands.
// Platform layers map raw input onto these; anything else is CodeOther.
type KeyCode uint8

const (
	CodeOther KeyCode = iota
	CodeEnter
	CodeEscape
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
)

var keyCodeNames = map[KeyCode]string{
	CodeOther:  "other",
	CodeEnter:  "enter",
	CodeEscape: "escape",
	CodeUp:     "up",
	CodeDown:   "down",
	CodeLeft:   "left",
	CodeRight:  "right",
}

func (c KeyCode) String() string {
	if name, ok := keyCodeNames[c]; ok {
		return name
	}
	return "other"
}

// KeyEvent is one logical key event.
type KeyEvent struct {
	Type EventType
	Code KeyCode
}

// Press is shorthand for a key press event.
func Press(code KeyCode) KeyEvent {
	return KeyEvent{Type: KeyPress, Code: code}
}

// KeySource supplies key events. NextKeyEvent blocks until an event is
// available, the source fails, or ctx is done.
type KeySource interface {
	NextKeyEvent(ctx context.Context) (KeyEvent, error)
}

// Surface is the output side of a terminal.
type Surface interface {
	// Width returns the column count, or 0 when it cannot be determined.
	Width() int
	Clear() error
	WriteLine(text string) error
}

// Outcome reports how an interactive session ended.
type Outcome int

const (
	// OutcomeNone means the session is still running.
	OutcomeNone Outcome = iota
	// OutcomeActivated means the user confirmed a selection.
	OutcomeActivated
	// OutcomeCancelled means the user left without confirming.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeActivated:
		return "activated"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// HandleKey applies one key event to the navigator. Releases and unknown
// keys are ignored. Enter activates the current page and ends the session;
// Escape ends it without activating. Page boundary errors are soft: they are
// logged and the session continues. Every other error is returned.
func (n *Navigator) HandleKey(ev KeyEvent) (Outcome, error) {
	if ev.Type != KeyPress {
		return OutcomeNone, nil
	}

	var err error
	switch ev.Code {
	case CodeEnter:
		return OutcomeActivated, n.Activate()
	case CodeEscape:
		return OutcomeCancelled, nil
	case CodeUp:
		err = n.Scroll(Up)
	case CodeDown:
		err = n.Scroll(Down)
	case CodeLeft:
		err = n.PrevPage()
	case CodeRight:
		err = n.NextPage()
	default:
		return OutcomeNone, nil
	}

	if errors.GetCode(err) == errors.ErrCodeBoundary {
		n.log.WithFields(logrus.Fields{
			"key":  ev.Code.String(),
			"page": n.currentPage,
		}).Debugf("Navigation boundary: %v", err)
		return OutcomeNone, nil
	}
	return OutcomeNone, err
}

// Draw clears the surface and writes the rendered current page to it.
func Draw(n *Navigator, surface Surface) error {
	lines, err := n.Render(surface.Width())
	if err != nil {
		return err
	}
	if err := surface.Clear(); err != nil {
		return asTerminalError("clear screen", err)
	}
	for _, line := range lines {
		if err := surface.WriteLine(line); err != nil {
			return asTerminalError("write line", err)
		}
	}
	return nil
}

// Run drives the navigator from a key source until the user confirms or
// cancels. Every iteration redraws the whole page and then blocks for one
// key event. Failure to read input or draw is fatal and returned, as is any
// navigation error other than a page boundary.
func Run(ctx context.Context, n *Navigator, keys KeySource, surface Surface) (Outcome, error) {
	if n.PageCount() == 0 {
		return OutcomeNone, errors.NoPages("run")
	}

	for {
		if err := ctx.Err(); err != nil {
			return OutcomeNone, err
		}

		if err := Draw(n, surface); err != nil {
			return OutcomeNone, err
		}

		ev, err := keys.NextKeyEvent(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return OutcomeNone, ctxErr
			}
			return OutcomeNone, errors.InputFailed(err)
		}

		outcome, err := n.HandleKey(ev)
		if err != nil {
			return outcome, err
		}
		if outcome != OutcomeNone {
			n.log.WithField("outcome", outcome.String()).Debug("Navigation finished")
			return outcome, nil
		}
	}
}

func asTerminalError(op string, err error) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return err
	}
	return errors.TerminalUnavailable(op, err)
}
