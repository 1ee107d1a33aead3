// Package tui holds terminal setup shared by the menu front ends.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI picks the lipgloss color profile from the environment before
// anything is rendered:
//
//   - NO_COLOR set (any value) disables color.
//   - CLICOLOR_FORCE=1 or COLORTERM=truecolor forces true color, so styled
//     output survives pipes and CI logs.
//
// Without these variables lipgloss keeps detecting the profile itself.
func InitializeTUI() {
	if profile, ok := profileFromEnv(os.Getenv); ok {
		lipgloss.SetColorProfile(profile)
	}
}

func profileFromEnv(getenv func(string) string) (termenv.Profile, bool) {
	if getenv("NO_COLOR") != "" {
		return termenv.Ascii, true
	}
	if getenv("CLICOLOR_FORCE") == "1" || getenv("COLORTERM") == "truecolor" {
		return termenv.TrueColor, true
	}
	return termenv.Ascii, false
}
