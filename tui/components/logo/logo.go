// Package logo renders multi-line ASCII art for page titles.
package logo

import (
	"strings"

	"github.com/grovetools/consoleui/tui/theme"
	"github.com/grovetools/consoleui/tui/utils/center"
)

// Render paints every line in the theme's logo color and terminates it with a
// newline. When centered, all lines share one pad computed from the widest
// line, so the art keeps its shape. A width of 0 or less uses the default.
func Render(lines []string, width int, centered bool) string {
	return RenderWithTheme(theme.DefaultTheme, lines, width, centered)
}

// RenderWithTheme is Render with an explicit theme.
func RenderWithTheme(t *theme.Theme, lines []string, width int, centered bool) string {
	if len(lines) == 0 {
		return ""
	}

	pad := ""
	if centered {
		pad = center.BlockPadFor(width, lines)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(pad)
		b.WriteString(t.Logo.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
