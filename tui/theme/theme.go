package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "terminal"

// --- Terminal (ANSI-friendly) palette ---
// Mirrors the classic 16-color console look: white marker, bright red selection,
// bright black descriptions and a red logo.
const (
	terminalRed       = "1"
	terminalGreen     = "2"
	terminalYellow    = "3"
	terminalViolet    = "5"
	terminalLightText = "15"
	terminalMutedText = "8"
	terminalBrightRed = "9"
	terminalBorder    = "8"
)

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaDarkGreen     = "#98BB6C"
	kanagawaDarkYellow    = "#FF9E3B"
	kanagawaDarkRed       = "#FF5D62"
	kanagawaDarkOrange    = "#FFA066"
	kanagawaDarkViolet    = "#957FB8"
	kanagawaDarkLightText = "#DCD7BA"
	kanagawaDarkMutedText = "#727169"
	kanagawaDarkBorder    = "#363646"
)

// --- Kanagawa Wave (light-inspired) palette ---
const (
	kanagawaLightGreen     = "#4E7C5A"
	kanagawaLightYellow    = "#A68A64"
	kanagawaLightRed       = "#C34043"
	kanagawaLightOrange    = "#CC6B4E"
	kanagawaLightViolet    = "#674D7A"
	kanagawaLightLightText = "#2B2F42"
	kanagawaLightMutedText = "#6C7086"
	kanagawaLightBorder    = "#B5BDC5"
)

// --- Gruvbox palette ---
const (
	gruvboxDarkGreen      = "#B8BB26"
	gruvboxLightGreen     = "#98971A"
	gruvboxDarkYellow     = "#FABD2F"
	gruvboxLightYellow    = "#D79921"
	gruvboxDarkRed        = "#FB4934"
	gruvboxLightRed       = "#CC241D"
	gruvboxDarkOrange     = "#FE8019"
	gruvboxLightOrange    = "#D65D0E"
	gruvboxDarkViolet     = "#B16286"
	gruvboxLightViolet    = "#8F3F71"
	gruvboxDarkLightText  = "#EBDBB2"
	gruvboxLightLightText = "#3C3836"
	gruvboxDarkMutedText  = "#BDAE93"
	gruvboxLightMutedText = "#928374"
	gruvboxDarkBorder     = "#504945"
	gruvboxLightBorder    = "#D5C4A1"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Emphasis  lipgloss.TerminalColor // selected option label
	Violet    lipgloss.TerminalColor
	LightText lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
}

// Theme holds the pre-configured styles used to paint menu pages.
type Theme struct {
	Name   string
	Colors Colors

	// Page parts
	Title       lipgloss.Style
	Description lipgloss.Style
	Marker      lipgloss.Style // the "> " in front of the selected option
	Selected    lipgloss.Style // the selected option label
	Option      lipgloss.Style // every other option label
	Logo        lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Special styles
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"terminal": newTerminalColors,
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
}

var themeAliases = map[string]string{
	"ansi":            "terminal",
	"classic":         "terminal",
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
}

// DefaultTheme is the theme used by renderers that are not handed one explicitly.
// It honours the CONSOLEUI_THEME environment variable.
var DefaultTheme = NewThemeWithName(os.Getenv("CONSOLEUI_THEME"))

// NewThemeWithName constructs a theme from a palette name. Unknown or empty
// names resolve to the terminal palette.
func NewThemeWithName(name string) *Theme {
	key := resolveName(name)
	return newThemeFromColors(themeRegistry[key](), key)
}

// SetDefault replaces DefaultTheme with the named palette.
func SetDefault(name string) {
	DefaultTheme = NewThemeWithName(name)
}

// Names lists the registered palettes.
func Names() []string {
	return []string{"terminal", "kanagawa", "gruvbox"}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Title: lipgloss.NewStyle(),

		Description: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Bold(true),

		Marker: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Selected: lipgloss.NewStyle().
			Foreground(colors.Emphasis),

		Option: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Logo: lipgloss.NewStyle().
			Foreground(colors.Red),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),
	}
}

func resolveName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func newTerminalColors() Colors {
	return Colors{
		Green:     lipgloss.Color(terminalGreen),
		Yellow:    lipgloss.Color(terminalYellow),
		Red:       lipgloss.Color(terminalRed),
		Emphasis:  lipgloss.Color(terminalBrightRed),
		Violet:    lipgloss.Color(terminalViolet),
		LightText: lipgloss.Color(terminalLightText),
		MutedText: lipgloss.Color(terminalMutedText),
		Border:    lipgloss.Color(terminalBorder),
	}
}

func newKanagawaColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: kanagawaLightGreen, Dark: kanagawaDarkGreen},
		Yellow:    lipgloss.AdaptiveColor{Light: kanagawaLightYellow, Dark: kanagawaDarkYellow},
		Red:       lipgloss.AdaptiveColor{Light: kanagawaLightRed, Dark: kanagawaDarkRed},
		Emphasis:  lipgloss.AdaptiveColor{Light: kanagawaLightOrange, Dark: kanagawaDarkOrange},
		Violet:    lipgloss.AdaptiveColor{Light: kanagawaLightViolet, Dark: kanagawaDarkViolet},
		LightText: lipgloss.AdaptiveColor{Light: kanagawaLightLightText, Dark: kanagawaDarkLightText},
		MutedText: lipgloss.AdaptiveColor{Light: kanagawaLightMutedText, Dark: kanagawaDarkMutedText},
		Border:    lipgloss.AdaptiveColor{Light: kanagawaLightBorder, Dark: kanagawaDarkBorder},
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: gruvboxLightGreen, Dark: gruvboxDarkGreen},
		Yellow:    lipgloss.AdaptiveColor{Light: gruvboxLightYellow, Dark: gruvboxDarkYellow},
		Red:       lipgloss.AdaptiveColor{Light: gruvboxLightRed, Dark: gruvboxDarkRed},
		Emphasis:  lipgloss.AdaptiveColor{Light: gruvboxLightOrange, Dark: gruvboxDarkOrange},
		Violet:    lipgloss.AdaptiveColor{Light: gruvboxLightViolet, Dark: gruvboxDarkViolet},
		LightText: lipgloss.AdaptiveColor{Light: gruvboxLightLightText, Dark: gruvboxDarkLightText},
		MutedText: lipgloss.AdaptiveColor{Light: gruvboxLightMutedText, Dark: gruvboxDarkMutedText},
		Border:    lipgloss.AdaptiveColor{Light: gruvboxLightBorder, Dark: gruvboxDarkBorder},
	}
}
