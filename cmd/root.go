// Package cmd assembles the consoleui command tree.
package cmd

import (
	"context"
	stderrors "errors"
	"os"

	"github.com/grovetools/consoleui/cli"
	"github.com/grovetools/consoleui/logging"
	"github.com/grovetools/consoleui/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the `consoleui` command with every subcommand attached.
func NewRootCmd(deps Deps) *cobra.Command {
	deps = deps.withDefaults()
	root := cli.NewStandardCommand(
		"consoleui",
		"Page-based keyboard menus for the terminal",
	)
	root.SetIn(deps.Stdin)
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)
	cli.SetVersionTemplate(root, version.GetInfo())

	root.AddCommand(NewRunCmd(deps))
	root.AddCommand(NewDescribeCmd(deps))
	root.AddCommand(NewSchemaCmd())
	root.AddCommand(NewValidateCmd())
	root.AddCommand(cli.NewVersionCommand("consoleui"))

	cli.ApplyStyledHelpRecursive(root)
	return root
}

// Execute runs the command tree with args and returns the process exit
// status. Errors and logs go to deps.Stderr.
func Execute(ctx context.Context, deps Deps, args []string) int {
	deps = deps.withDefaults()
	logging.SetGlobalOutput(deps.Stderr)
	defer logging.SetGlobalOutput(os.Stderr)

	root := NewRootCmd(deps)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil || stderrors.Is(err, context.Canceled) {
		return 0
	}

	verbose, _ := root.PersistentFlags().GetBool("verbose")
	handler := cli.NewErrorHandler(verbose)
	handler.Out = deps.Stderr
	_ = handler.Handle(err)
	return cli.ExitCode(err)
}
