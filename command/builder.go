package command

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
)

const (
	// DefaultTimeout is the default command execution timeout
	DefaultTimeout = 2 * time.Minute

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 10 * time.Minute
)

// SafeBuilder validates and builds commands started by menu actions.
// Commands are executed directly, never through a shell.
type SafeBuilder struct {
	defaultTimeout time.Duration
	executor       Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		defaultTimeout: DefaultTimeout,
		executor:       exec,
	}
}

// WithDefaultTimeout sets the timeout applied to commands built afterwards.
func (sb *SafeBuilder) WithDefaultTimeout(timeout time.Duration) *SafeBuilder {
	sb.defaultTimeout = clampTimeout(timeout)
	return sb
}

// validateExecutable rejects names that only make sense to a shell.
func validateExecutable(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if strings.ContainsAny(name, ";|&$`<>") {
		return fmt.Errorf("command name contains shell metacharacters: %s", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("command name contains control characters: %q", name)
		}
	}
	return nil
}

// validateArgument rejects arguments the OS cannot pass through.
func validateArgument(arg string) error {
	if strings.ContainsRune(arg, 0) {
		return fmt.Errorf("argument contains a NUL byte: %q", arg)
	}
	return nil
}

func clampTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultTimeout
	}
	if timeout > MaxTimeout {
		return MaxTimeout
	}
	return timeout
}

// Command is a validated command ready to run
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	timeout  time.Duration
	executor Executor

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Build creates a new command with validation
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if err := validateExecutable(name); err != nil {
		return nil, err
	}
	for _, arg := range args {
		if err := validateArgument(arg); err != nil {
			return nil, err
		}
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     append([]string(nil), args...),
		timeout:  sb.defaultTimeout,
		executor: sb.executor,
	}, nil
}

// WithTimeout sets a custom timeout for the command
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	c.timeout = clampTimeout(timeout)
	return c
}

// WithIO connects the command's standard streams. Nil leaves a stream unset.
func (c *Command) WithIO(stdin io.Reader, stdout, stderr io.Writer) *Command {
	c.stdin = stdin
	c.stdout = stdout
	c.stderr = stderr
	return c
}

// Timeout returns the timeout that Run applies.
func (c *Command) Timeout() time.Duration {
	return c.timeout
}

// String renders the command line for logs and error messages.
func (c *Command) String() string {
	if len(c.args) == 0 {
		return c.name
	}
	return c.name + " " + strings.Join(c.args, " ")
}

// Run starts the command and waits for it to finish or time out.
func (c *Command) Run() error {
	ctx, cancel := context.WithTimeout(c.ctx, c.timeout)
	defer cancel()

	cmd := c.executor.CommandContext(ctx, c.name, c.args...) //nolint:gosec // validated by SafeBuilder
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	return cmd.Run()
}
