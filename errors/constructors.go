package errors

import (
	"fmt"
	"os/exec"
)

// InvalidPage creates an error for a page that cannot be registered
func InvalidPage(title string, reason string) *Error {
	return New(ErrCodeInvalidPage, fmt.Sprintf("invalid page '%s': %s", title, reason)).
		WithDetail("title", title)
}

// NoPages creates an error for an operation on a navigator without pages
func NoPages(operation string) *Error {
	return New(ErrCodeNoPages, fmt.Sprintf("%s: navigator has no pages", operation)).
		WithDetail("operation", operation)
}

// Boundary creates a soft navigation error for moving past the first or last page
func Boundary(message string, page int) *Error {
	return New(ErrCodeBoundary, message).
		WithDetail("page", page)
}

// EmptyOptions creates an error for scrolling on a page with no options
func EmptyOptions(page int) *Error {
	return New(ErrCodeEmptyOptions, fmt.Sprintf("page %d has no options to select", page)).
		WithDetail("page", page)
}

// ActionFailed wraps an error returned by a page activation callback
func ActionFailed(title string, err error) *Error {
	return Wrap(err, ErrCodeActionFailed, fmt.Sprintf("activation of page '%s' failed", title)).
		WithDetail("title", title)
}

// TerminalUnavailable creates an error for a terminal that cannot be driven
func TerminalUnavailable(reason string, err error) *Error {
	return Wrap(err, ErrCodeTerminalUnavailable, fmt.Sprintf("terminal unavailable: %s", reason))
}

// InputFailed wraps a failure to read a key event
func InputFailed(err error) *Error {
	return Wrap(err, ErrCodeInputFailed, "failed to read key event")
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *Error {
	e := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		e = e.WithDetail("exitCode", exitErr.ExitCode())
	}

	return e
}
