package cmd

import (
	"github.com/grovetools/consoleui/cli"
	"github.com/grovetools/consoleui/config"
	"github.com/grovetools/consoleui/terminal"
	"github.com/grovetools/consoleui/tui"
	nav "github.com/grovetools/consoleui/tui/components/navigator"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the `run` command.
func NewRunCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the menu and wait for a selection",
		Long: `Loads the menu file and runs it in the terminal. Arrow keys move the
selection and switch pages, Enter runs the page action, Escape leaves.

Examples:
  # Run the nearest consoleui.yml
  consoleui run

  # Run a specific menu with the bubbletea front end
  consoleui run -c menus/deploy.toml --tui

  # Force centered layout
  consoleui run --centered
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, deps)
		},
	}

	cmd.Flags().Bool("tui", false, "Use the full-screen bubbletea front end")
	cmd.Flags().Bool("centered", false, "Center the page, overriding the menu file")

	return cmd
}

func runMenu(cmd *cobra.Command, deps Deps) error {
	opts := cli.GetOptions(cmd)

	cfg, err := loadMenu(opts)
	if err != nil {
		return err
	}
	if err := applyConfig(cfg, opts.Verbose); err != nil {
		return err
	}
	logger := cli.GetLogger(cmd)
	tui.InitializeTUI()

	centered := cfg.Centered
	if cmd.Flags().Changed("centered") {
		centered, _ = cmd.Flags().GetBool("centered")
	}

	ctx := cmd.Context()
	n, err := buildNavigator(ctx, cfg, centered, deps)
	if err != nil {
		return err
	}

	var outcome nav.Outcome
	if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
		outcome, err = nav.RunProgram(ctx, n)
	} else {
		keys, surface := deps.Keys, deps.Surface
		if keys == nil {
			reader, rerr := terminal.NewKeyReader(deps.Stdin)
			if rerr != nil {
				return rerr
			}
			defer reader.Close()
			keys = reader
		}
		if surface == nil {
			surface = terminal.NewScreen(deps.Stdout)
		}
		outcome, err = nav.Run(ctx, n, keys, surface)
	}

	logger.WithField("outcome", outcome.String()).Debug("Menu finished")
	return err
}

func loadMenu(opts cli.CommandOptions) (*config.Config, error) {
	path, err := cli.InitConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
