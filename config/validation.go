package config

import (
	"fmt"

	"github.com/grovetools/consoleui/errors"
)

// Validate checks the semantic rules the schema cannot express.
func (c *Config) Validate() error {
	if len(c.Pages) == 0 {
		return errors.New(errors.ErrCodeConfigValidation, "at least one page is required")
	}

	for i, page := range c.Pages {
		if err := validatePage(&page, len(c.Logo) > 0); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, fmt.Sprintf("invalid page %d", i)).
				WithDetail("page", i).
				WithDetail("title", page.Title)
		}
	}

	return nil
}

func validatePage(page *PageConfig, hasLogo bool) error {
	if page.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len(page.Options) == 0 {
		return fmt.Errorf("options cannot be empty")
	}
	for i, option := range page.Options {
		if option == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if page.Logo && !hasLogo {
		return fmt.Errorf("logo requested but no top-level logo is configured")
	}
	if page.Action != nil {
		return validateAction(page.Action)
	}
	return nil
}

func validateAction(action *ActionConfig) error {
	switch action.Type {
	case ActionPrint:
		return nil
	case ActionRun:
		if action.Command == "" {
			return fmt.Errorf("run action requires a command")
		}
		return nil
	case ActionExit:
		if action.Code < 0 || action.Code > 255 {
			return fmt.Errorf("exit code %d out of range 0-255", action.Code)
		}
		return nil
	default:
		return fmt.Errorf("unknown action type '%s'", action.Type)
	}
}
