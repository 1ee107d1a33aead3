// Package actions turns the action section of a menu page into the
// page's activation callback.
//
// Messages and run arguments may contain placeholders that are filled in at
// activation time:
//
//	{title}  the page title as written in the menu file
//	{option} the selected option label
//	{index}  the selected option index, starting at 0
//	{page}   the current page index, starting at 0
package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/grovetools/consoleui/command"
	"github.com/grovetools/consoleui/config"
	"github.com/grovetools/consoleui/errors"
	"github.com/grovetools/consoleui/logging"
	nav "github.com/grovetools/consoleui/tui/components/navigator"
	"github.com/sirupsen/logrus"
)

// Config holds the collaborators actions use at activation time. Zero values
// fall back to the process's standard streams, a real command builder and
// os.Exit.
type Config struct {
	Context context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer

	// Builder validates and starts run commands.
	Builder *command.SafeBuilder

	// Timeout bounds run commands; 0 uses command.DefaultTimeout.
	Timeout time.Duration

	// Exit terminates the process for exit actions.
	Exit func(code int)

	Logger *logrus.Entry
}

// Binder builds activation callbacks from action configuration.
type Binder struct {
	ctx     context.Context
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	builder *command.SafeBuilder
	timeout time.Duration
	exit    func(code int)
	log     *logrus.Entry
}

// New creates a binder, filling defaults for unset fields.
func New(cfg Config) *Binder {
	b := &Binder{
		ctx:     cfg.Context,
		stdin:   cfg.Stdin,
		stdout:  cfg.Stdout,
		stderr:  cfg.Stderr,
		builder: cfg.Builder,
		timeout: cfg.Timeout,
		exit:    cfg.Exit,
		log:     cfg.Logger,
	}
	if b.ctx == nil {
		b.ctx = context.Background()
	}
	if b.stdin == nil {
		b.stdin = os.Stdin
	}
	if b.stdout == nil {
		b.stdout = os.Stdout
	}
	if b.stderr == nil {
		b.stderr = os.Stderr
	}
	if b.builder == nil {
		b.builder = command.NewSafeBuilder()
	}
	if b.exit == nil {
		b.exit = os.Exit
	}
	if b.log == nil {
		b.log = logging.NewLogger("actions")
	}
	return b
}

// Bind returns the activation callback for a page. A nil action yields a nil
// callback, which makes activation a no-op.
func (b *Binder) Bind(pageTitle string, action *config.ActionConfig) (nav.ActivateFunc, error) {
	if action == nil {
		return nil, nil
	}

	switch action.Type {
	case config.ActionPrint:
		message := action.Message
		if message == "" {
			message = "{option}"
		}
		return b.print(pageTitle, message), nil
	case config.ActionRun:
		if action.Command == "" {
			return nil, errors.New(errors.ErrCodeConfigValidation, "run action requires a command").
				WithDetail("title", pageTitle)
		}
		return b.run(pageTitle, action.Command, action.Args), nil
	case config.ActionExit:
		return b.exitWith(action.Code), nil
	default:
		return nil, errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown action type '%s'", action.Type)).
			WithDetail("title", pageTitle)
	}
}

func (b *Binder) print(pageTitle, message string) nav.ActivateFunc {
	return func(c nav.Controller) error {
		text, err := Expand(message, pageTitle, c)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(b.stdout, text); err != nil {
			return errors.TerminalUnavailable("write message", err)
		}
		return nil
	}
}

func (b *Binder) run(pageTitle, name string, args []string) nav.ActivateFunc {
	return func(c nav.Controller) error {
		expanded := make([]string, len(args))
		for i, arg := range args {
			value, err := Expand(arg, pageTitle, c)
			if err != nil {
				return err
			}
			expanded[i] = value
		}

		cmd, err := b.builder.Build(b.ctx, name, expanded...)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInvalidInput, "refusing to run command").
				WithDetail("command", name)
		}
		if b.timeout > 0 {
			cmd.WithTimeout(b.timeout)
		}

		b.log.WithFields(logrus.Fields{
			"command": cmd.String(),
			"timeout": cmd.Timeout().String(),
		}).Debug("Running command")

		if err := cmd.WithIO(b.stdin, b.stdout, b.stderr).Run(); err != nil {
			return errors.CommandFailed(cmd.String(), err)
		}
		return nil
	}
}

func (b *Binder) exitWith(code int) nav.ActivateFunc {
	return func(c nav.Controller) error {
		b.log.WithField("code", code).Debug("Exiting")
		b.exit(code)
		return nil
	}
}

// Expand substitutes placeholders in template using the controller's
// current selection.
func Expand(template, pageTitle string, c nav.Controller) (string, error) {
	if !strings.Contains(template, "{") {
		return template, nil
	}

	option, err := c.SelectedOption()
	if err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		"{title}", pageTitle,
		"{option}", option,
		"{index}", strconv.Itoa(c.Selected()),
		"{page}", strconv.Itoa(c.CurrentIndex()),
	)
	return r.Replace(template), nil
}
