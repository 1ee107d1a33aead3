package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/grovetools/consoleui/cli"
	"github.com/grovetools/consoleui/errors"
	nav "github.com/grovetools/consoleui/tui/components/navigator"
	"github.com/spf13/cobra"
)

// pageDescription is the --json form of `describe`.
type pageDescription struct {
	Index       int      `json:"index"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options"`
	Action      string   `json:"action,omitempty"`
}

// NewDescribeCmd creates the `describe` command.
func NewDescribeCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <page>",
		Short: "Print the fields of one page",
		Long: `Prints the title, description, options and action of a page, one
numbered line per field. Pages are numbered from 0 in file order.

Examples:
  consoleui describe 0
  consoleui describe 1 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("page must be a number, got '%s'", args[0]))
			}

			opts := cli.GetOptions(cmd)
			cfg, err := loadMenu(opts)
			if err != nil {
				return err
			}
			if err := applyConfig(cfg, opts.Verbose); err != nil {
				return err
			}

			n, err := buildNavigator(cmd.Context(), cfg, false, deps)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !opts.JSONOutput {
				text, err := n.Describe(nav.PageID(id))
				if err != nil {
					return err
				}
				fmt.Fprint(out, text)
				return nil
			}

			// Validates the id the same way as the text form.
			if _, err := n.Page(nav.PageID(id)); err != nil {
				return err
			}
			page := cfg.Pages[id]
			desc := pageDescription{
				Index:       id,
				Title:       page.Title,
				Description: page.Description,
				Options:     page.Options,
			}
			if page.Action != nil {
				desc.Action = page.Action.Type
			}
			data, err := json.MarshalIndent(desc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}
}
