package cmd

import (
	"fmt"
	"sort"

	"github.com/grovetools/consoleui/cli"
	"github.com/grovetools/consoleui/config"
	"github.com/grovetools/consoleui/logging"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the `validate` command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a menu file without running it",
		Long: `Loads the menu file, validates it against the schema and the page rules,
and prints a short summary.

Examples:
  consoleui validate
  consoleui validate -c menus/deploy.toml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			path, err := cli.InitConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Success(path + " is valid")
			pretty.Field("format", config.FormatFromPath(path))
			pretty.Field("pages", len(cfg.Pages))
			for i, page := range cfg.Pages {
				action := "none"
				if page.Action != nil {
					action = page.Action.Type
				}
				pretty.Field(fmt.Sprintf("  %d %s", i, page.Title), fmt.Sprintf("%d options, action %s", len(page.Options), action))
			}
			if len(cfg.Extensions) > 0 {
				keys := make([]string, 0, len(cfg.Extensions))
				for key := range cfg.Extensions {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				pretty.InfoPretty("extensions:")
				for _, key := range keys {
					pretty.Code(key)
				}
			}
			return nil
		},
	}
}
