// Package center computes the horizontal padding that places text in the
// middle of a terminal line.
//
// Every length is a visible cell width: ANSI styling sequences count as zero
// and wide runes count as two, so styled and unstyled text center identically.
package center

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is used whenever the terminal width cannot be determined.
const DefaultWidth = 80

// VisibleWidth returns the number of terminal cells s occupies.
// For multi-line input the widest line is returned.
func VisibleWidth(s string) int {
	return lipgloss.Width(s)
}

// EffectiveWidth returns width, or DefaultWidth when width is unknown (<= 0).
func EffectiveWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	return width
}

// Pad returns floor((width - textWidth) / 2), clamped to zero.
func Pad(width, textWidth int) int {
	pad := (width - textWidth) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

// PadFor returns the left padding string that centers text within width.
func PadFor(width int, text string) string {
	return strings.Repeat(" ", Pad(EffectiveWidth(width), VisibleWidth(text)))
}

// MaxWidth returns the widest visible width among items, 0 for no items.
func MaxWidth(items []string) int {
	widest := 0
	for _, item := range items {
		if w := VisibleWidth(item); w > widest {
			widest = w
		}
	}
	return widest
}

// BlockPadFor returns one padding string that centers the block of items as a
// unit, measured by its widest item. Every row shares it, so shorter rows stay
// left-aligned inside the centered block.
func BlockPadFor(width int, items []string) string {
	return strings.Repeat(" ", Pad(EffectiveWidth(width), MaxWidth(items)))
}
