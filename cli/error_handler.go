package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/consoleui/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message tailored to the error code and returns err
// unchanged so callers can still pick an exit status.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	var e *errors.Error
	stderrors.As(err, &e)
	detail := func(key string) interface{} {
		if e == nil {
			return nil
		}
		return e.Details[key]
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ No menu file found. Create consoleui.yml or pass --config.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		if path := detail("path"); path != nil {
			fmt.Fprintf(h.Out, "❌ Invalid menu file %v\n", path)
		} else {
			fmt.Fprintf(h.Out, "❌ Invalid menu file\n")
		}
		fmt.Fprintf(h.Out, "%v\n", err)
		fmt.Fprintf(h.Out, "Run 'consoleui schema' to see the expected format.\n")

	case errors.ErrCodeTerminalUnavailable:
		fmt.Fprintf(h.Out, "❌ %v\n", err)
		fmt.Fprintf(h.Out, "Run the menu from an interactive terminal, or use --tui.\n")

	case errors.ErrCodeActionFailed:
		fmt.Fprintf(h.Out, "❌ The action of page '%v' failed: %v\n", detail("title"), stderrors.Unwrap(err))

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(h.Out, "❌ %v\n", err)

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	if h.Verbose && e != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", e.ToJSON())
	}
	return err
}

// ExitCode maps an error onto a process exit status. A failed run action
// propagates the command's own status when it has one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		if e, ok := cur.(*errors.Error); ok && e.Code == errors.ErrCodeCommandFailed {
			if code, ok := e.Details["exitCode"].(int); ok && code > 0 {
				return code
			}
		}
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound, errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		return 2
	default:
		return 1
	}
}
