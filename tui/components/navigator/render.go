package navigator

import (
	"strings"

	"github.com/grovetools/consoleui/tui/utils/center"
)

// SelectionMarker prefixes the highlighted option.
const SelectionMarker = "> "

// Render lays out the current page for a terminal of the given width and
// returns the lines to display. It performs no I/O. A width <= 0 means the
// width is unknown and center.DefaultWidth is assumed.
//
// When centering is enabled the title and description are padded
// independently, while the options share one pad computed from the widest
// label, so the options block is centered as a unit.
func (n *Navigator) Render(width int) ([]string, error) {
	page, err := n.CurrentPage()
	if err != nil {
		return nil, err
	}
	t := n.theme

	var lines []string

	// A multi-line title (e.g. an ASCII logo) is centered as a block.
	titleLines := strings.Split(page.title, "\n")
	titlePad := ""
	if n.centered {
		titlePad = center.BlockPadFor(width, titleLines)
	}
	for _, line := range titleLines {
		lines = append(lines, titlePad+t.Title.Render(line))
	}

	if page.description != "" {
		descPad := ""
		if n.centered {
			descPad = center.PadFor(width, page.description)
		}
		lines = append(lines, descPad+t.Description.Render(page.description))
	}

	optionPad := ""
	if n.centered {
		optionPad = center.BlockPadFor(width, page.options)
	}
	for i, option := range page.options {
		if i == n.selected {
			lines = append(lines, optionPad+t.Marker.Render(SelectionMarker)+t.Selected.Render(option))
		} else {
			lines = append(lines, optionPad+t.Option.Render(option))
		}
	}

	return lines, nil
}
