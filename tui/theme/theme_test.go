package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "terminal"},
		{"terminal", "terminal"},
		{"Kanagawa Dragon", "kanagawa"},
		{"gruvbox_light", "gruvbox"},
		{"classic", "terminal"},
		{"no-such-theme", "terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewThemeWithName(tt.input).Name)
		})
	}
}

func TestSetDefault(t *testing.T) {
	original := DefaultTheme
	defer func() { DefaultTheme = original }()

	SetDefault("gruvbox")
	assert.Equal(t, "gruvbox", DefaultTheme.Name)
}

func TestEveryRegisteredNameResolves(t *testing.T) {
	for _, name := range Names() {
		assert.Equal(t, name, NewThemeWithName(name).Name)
	}
}
