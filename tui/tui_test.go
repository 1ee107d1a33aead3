package tui

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestProfileFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    termenv.Profile
		wantSet bool
	}{
		{"nothing set", nil, termenv.Ascii, false},
		{"no color", map[string]string{"NO_COLOR": "1"}, termenv.Ascii, true},
		{"no color wins", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, termenv.Ascii, true},
		{"forced", map[string]string{"CLICOLOR_FORCE": "1"}, termenv.TrueColor, true},
		{"truecolor terminal", map[string]string{"COLORTERM": "truecolor"}, termenv.TrueColor, true},
		{"256 color terminal", map[string]string{"COLORTERM": "256color"}, termenv.Ascii, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, ok := profileFromEnv(func(key string) string { return tt.env[key] })
			assert.Equal(t, tt.wantSet, ok)
			assert.Equal(t, tt.want, profile)
		})
	}
}
