package command

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingExecutor substitutes every command with `true` and remembers
// what was asked for.
type recordingExecutor struct {
	name string
	args []string
}

func (r *recordingExecutor) Command(name string, args ...string) *exec.Cmd {
	return r.CommandContext(context.Background(), name, args...)
}

func (r *recordingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	r.name = name
	r.args = args
	return exec.CommandContext(ctx, "true")
}

func TestValidateExecutable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "echo", false},
		{"absolute path", "/usr/bin/env", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"semicolon", "echo; rm -rf /", true},
		{"pipe", "cat | sh", true},
		{"dollar", "$(whoami)", true},
		{"backtick", "`whoami`", true},
		{"redirect", "echo>out", true},
		{"control character", "echo\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateExecutable(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildRejectsNULArgument(t *testing.T) {
	_, err := NewSafeBuilder().Build(context.Background(), "echo", "ok", "bad\x00arg")
	assert.Error(t, err)
}

func TestBuildCopiesArgs(t *testing.T) {
	args := []string{"a", "b"}
	cmd, err := NewSafeBuilder().Build(context.Background(), "echo", args...)
	require.NoError(t, err)

	args[0] = "changed"
	assert.Equal(t, "echo a b", cmd.String())
}

func TestWithTimeoutClamps(t *testing.T) {
	cmd, err := NewSafeBuilder().Build(context.Background(), "echo")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, cmd.Timeout())

	cmd.WithTimeout(time.Hour)
	assert.Equal(t, MaxTimeout, cmd.Timeout())

	cmd.WithTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, cmd.Timeout())

	cmd.WithTimeout(0)
	assert.Equal(t, DefaultTimeout, cmd.Timeout())
}

func TestDefaultTimeoutApplied(t *testing.T) {
	sb := NewSafeBuilder().WithDefaultTimeout(3 * time.Second)
	cmd, err := sb.Build(context.Background(), "echo")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cmd.Timeout())
}

func TestRunUsesExecutor(t *testing.T) {
	rec := &recordingExecutor{}
	cmd, err := NewSafeBuilderWithExecutor(rec).Build(context.Background(), "deploy", "--env", "prod")
	require.NoError(t, err)

	require.NoError(t, cmd.Run())
	assert.Equal(t, "deploy", rec.name)
	assert.Equal(t, []string{"--env", "prod"}, rec.args)
}

func TestRunCapturesOutput(t *testing.T) {
	var out bytes.Buffer
	cmd, err := NewSafeBuilder().Build(context.Background(), "echo", "hello")
	require.NoError(t, err)

	require.NoError(t, cmd.WithIO(nil, &out, nil).Run())
	assert.Equal(t, "hello\n", out.String())
}

func TestRunReportsExitStatus(t *testing.T) {
	cmd, err := NewSafeBuilder().Build(context.Background(), "false")
	require.NoError(t, err)

	err = cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}
