package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Action types understood by the actions package.
const (
	ActionPrint = "print"
	ActionRun   = "run"
	ActionExit  = "exit"
)

// Config is a menu definition file.
type Config struct {
	Version  string       `yaml:"version" toml:"version" json:"version" jsonschema:"description=Configuration version (e.g. '1.0')"`
	Centered bool         `yaml:"centered,omitempty" toml:"centered,omitempty" json:"centered,omitempty" jsonschema:"description=Center title and options horizontally"`
	Theme    string       `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color palette: terminal\\, kanagawa or gruvbox"`
	Logo     []string     `yaml:"logo,omitempty" toml:"logo,omitempty" json:"logo,omitempty" jsonschema:"description=ASCII art lines shown above titles of pages with logo enabled"`
	Pages    []PageConfig `yaml:"pages" toml:"pages" json:"pages" jsonschema:"required,minItems=1,description=Pages in navigation order"`

	// Extensions captures all other top-level keys (e.g. logging).
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// PageConfig describes one page of the menu.
type PageConfig struct {
	Title       string        `yaml:"title" toml:"title" json:"title" jsonschema:"required,minLength=1,description=Page title"`
	Logo        bool          `yaml:"logo,omitempty" toml:"logo,omitempty" json:"logo,omitempty" jsonschema:"description=Render the configured logo above the title"`
	Description string        `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty" jsonschema:"description=Line rendered under the title"`
	Options     []string      `yaml:"options" toml:"options" json:"options" jsonschema:"required,minItems=1,description=Selectable option labels"`
	Action      *ActionConfig `yaml:"action,omitempty" toml:"action,omitempty" json:"action,omitempty" jsonschema:"description=What happens when a selection on this page is confirmed"`
}

// ActionConfig names the activation callback of a page.
type ActionConfig struct {
	Type    string   `yaml:"type" toml:"type" json:"type" jsonschema:"required,enum=print,enum=run,enum=exit"`
	Message string   `yaml:"message,omitempty" toml:"message,omitempty" json:"message,omitempty" jsonschema:"description=print: text to write; {title}\\, {option} and {index} are substituted"`
	Command string   `yaml:"command,omitempty" toml:"command,omitempty" json:"command,omitempty" jsonschema:"description=run: executable to start"`
	Args    []string `yaml:"args,omitempty" toml:"args,omitempty" json:"args,omitempty" jsonschema:"description=run: arguments; placeholders as for message"`
	Code    int      `yaml:"code,omitempty" toml:"code,omitempty" json:"code,omitempty" jsonschema:"description=exit: process exit status"`
}

// knownKeys are the top-level keys decoded into Config fields.
var knownKeys = map[string]bool{
	"version":  true,
	"centered": true,
	"theme":    true,
	"logo":     true,
	"pages":    true,
}

// SetDefaults applies default values to unset fields.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	for i := range c.Pages {
		if a := c.Pages[i].Action; a != nil && a.Type == ActionPrint && a.Message == "" {
			a.Message = "{option}"
		}
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded menu file into the provided target struct. The target must be a pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
