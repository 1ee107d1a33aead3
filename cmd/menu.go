package cmd

import (
	"context"
	"io"
	"os"

	"github.com/grovetools/consoleui/actions"
	"github.com/grovetools/consoleui/config"
	"github.com/grovetools/consoleui/logging"
	nav "github.com/grovetools/consoleui/tui/components/navigator"
	"github.com/grovetools/consoleui/tui/components/logo"
	"github.com/grovetools/consoleui/tui/theme"
)

// Deps are the process collaborators commands use. Nil Keys and Surface make
// the run command open the controlling terminal.
type Deps struct {
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(code int)

	Keys    nav.KeySource
	Surface nav.Surface
}

// DefaultDeps wires the real process streams.
func DefaultDeps() Deps {
	return Deps{}.withDefaults()
}

// withDefaults fills unset streams with the process's own.
func (d Deps) withDefaults() Deps {
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.Exit == nil {
		d.Exit = os.Exit
	}
	return d
}

// applyConfig installs the menu file's logging section and theme. An explicit
// CONSOLEUI_THEME in the environment wins over the file.
func applyConfig(cfg *config.Config, verbose bool) error {
	var logCfg logging.Config
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		return err
	}
	if verbose {
		logCfg.Level = "debug"
	}
	logging.Configure(logCfg)

	if cfg.Theme != "" && os.Getenv("CONSOLEUI_THEME") == "" {
		theme.SetDefault(cfg.Theme)
	}
	return nil
}

// buildNavigator registers every configured page, in file order, on a new
// navigator. Pages with logo enabled get the configured art above their title.
func buildNavigator(ctx context.Context, cfg *config.Config, centered bool, deps Deps) (*nav.Navigator, error) {
	n := nav.New(nav.Config{
		Centered: centered,
		Theme:    theme.DefaultTheme,
	})

	binder := actions.New(actions.Config{
		Context: ctx,
		Stdin:   deps.Stdin,
		Stdout:  deps.Stdout,
		Stderr:  deps.Stderr,
		Exit:    deps.Exit,
	})

	art := logo.RenderWithTheme(theme.DefaultTheme, cfg.Logo, 0, false)
	for _, page := range cfg.Pages {
		fn, err := binder.Bind(page.Title, page.Action)
		if err != nil {
			return nil, err
		}

		title := page.Title
		if page.Logo {
			title = art + title
		}

		opts := []nav.PageOption{nav.WithOnActivate(fn)}
		if page.Description != "" {
			opts = append(opts, nav.WithDescription(page.Description))
		}
		if _, err := n.AddPage(title, page.Options, opts...); err != nil {
			return nil, err
		}
	}
	return n, nil
}
