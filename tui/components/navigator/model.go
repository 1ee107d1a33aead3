package navigator

import (
	"fmt"
	"strings"

	"github.com/grovetools/consoleui/errors"
	"github.com/grovetools/consoleui/logging"
	"github.com/grovetools/consoleui/tui/theme"
	"github.com/sirupsen/logrus"
)

// Navigator holds an append-only sequence of pages and a cursor made of the
// current page index and the selected option index on that page.
//
// A Navigator is owned by a single goroutine; it does no locking.
type Navigator struct {
	pages       []Page
	currentPage int
	selected    int

	centered bool
	theme    *theme.Theme
	log      *logrus.Entry
}

// Config defines the configuration for the navigator.
type Config struct {
	// Centered pads the title, description and options block so they sit in
	// the middle of the terminal.
	Centered bool

	// Theme paints rendered lines. Defaults to theme.DefaultTheme.
	Theme *theme.Theme

	// Logger receives navigation diagnostics. Defaults to the "navigator" component logger.
	Logger *logrus.Entry
}

// New creates an empty navigator with the given configuration.
func New(cfg Config) *Navigator {
	n := &Navigator{
		centered: cfg.Centered,
		theme:    cfg.Theme,
		log:      cfg.Logger,
	}
	if n.theme == nil {
		n.theme = theme.DefaultTheme
	}
	if n.log == nil {
		n.log = logging.NewLogger("navigator")
	}
	return n
}

// Centered reports whether rendering centers its output.
func (n *Navigator) Centered() bool {
	return n.centered
}

// AddPage appends a page and returns its id. A page without options or
// without a title is rejected and nothing is stored.
func (n *Navigator) AddPage(title string, options []string, opts ...PageOption) (PageID, error) {
	if title == "" {
		return -1, errors.InvalidPage(title, "title must not be empty")
	}
	if len(options) == 0 {
		return -1, errors.InvalidPage(title, "options must not be empty")
	}

	page := Page{
		title:   title,
		options: make([]string, len(options)),
	}
	copy(page.options, options)
	for _, opt := range opts {
		opt(&page)
	}

	n.pages = append(n.pages, page)
	id := PageID(len(n.pages) - 1)
	n.log.WithFields(logrus.Fields{
		"page":    int(id),
		"options": len(options),
	}).Debug("Page added")
	return id, nil
}

// PageCount returns the number of registered pages.
func (n *Navigator) PageCount() int {
	return len(n.pages)
}

// Page returns the page with the given id.
func (n *Navigator) Page(id PageID) (Page, error) {
	if int(id) < 0 || int(id) >= len(n.pages) {
		return Page{}, errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("page %d does not exist", id)).
			WithDetail("page", int(id)).
			WithDetail("pageCount", len(n.pages))
	}
	return n.pages[id], nil
}

// CurrentPage returns the page under the cursor.
func (n *Navigator) CurrentPage() (Page, error) {
	if len(n.pages) == 0 {
		return Page{}, errors.NoPages("current page")
	}
	return n.pages[n.currentPage], nil
}

// CurrentIndex returns the index of the current page.
func (n *Navigator) CurrentIndex() int {
	return n.currentPage
}

// Selected returns the index of the highlighted option on the current page.
func (n *Navigator) Selected() int {
	return n.selected
}

// SelectedOption returns the label of the highlighted option.
func (n *Navigator) SelectedOption() (string, error) {
	page, err := n.CurrentPage()
	if err != nil {
		return "", err
	}
	return page.options[n.selected], nil
}

// NextPage moves to the following page and resets the selection. On the last
// page it returns a BOUNDARY error and leaves the cursor untouched.
func (n *Navigator) NextPage() error {
	if len(n.pages) == 0 {
		return errors.NoPages("next page")
	}
	if n.currentPage >= len(n.pages)-1 {
		return errors.Boundary("limit reached", n.currentPage)
	}
	n.currentPage++
	n.selected = 0
	return nil
}

// PrevPage moves to the preceding page and resets the selection. On the first
// page it logs that there is no previous page and returns a BOUNDARY error
// with the cursor untouched.
func (n *Navigator) PrevPage() error {
	if len(n.pages) == 0 {
		return errors.NoPages("previous page")
	}
	if n.currentPage == 0 {
		n.log.WithField("page", n.currentPage).Info("There is no previous page")
		return errors.Boundary("no previous page", n.currentPage)
	}
	n.currentPage--
	n.selected = 0
	return nil
}

// Scroll moves the selection one option up or down, wrapping around at both
// ends of the current page's option list.
func (n *Navigator) Scroll(dir Direction) error {
	page, err := n.CurrentPage()
	if err != nil {
		return err
	}
	count := len(page.options)
	if count == 0 {
		return errors.EmptyOptions(n.currentPage)
	}

	switch dir {
	case Up:
		n.selected = ((n.selected-1)%count + count) % count
	case Down:
		n.selected = (n.selected + 1) % count
	default:
		return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unknown scroll direction %d", int(dir)))
	}
	return nil
}

// Activate invokes the current page's callback with the navigator as its
// Controller. Pages without a callback make this a no-op.
func (n *Navigator) Activate() error {
	page, err := n.CurrentPage()
	if err != nil {
		return err
	}
	if page.onActivate == nil {
		return nil
	}

	n.log.WithFields(logrus.Fields{
		"page":     n.currentPage,
		"selected": n.selected,
	}).Debug("Activating page")

	if err := page.onActivate(n); err != nil {
		return errors.ActionFailed(page.title, err)
	}
	return nil
}

// Describe dumps one page's fields, one numbered line per field.
func (n *Navigator) Describe(id PageID) (string, error) {
	page, err := n.Page(id)
	if err != nil {
		return "", err
	}

	action := "none"
	if page.onActivate != nil {
		action = "set"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "0 title: %s\n", page.title)
	fmt.Fprintf(&b, "1 description: %s\n", page.description)
	fmt.Fprintf(&b, "2 options: [%s]\n", strings.Join(page.options, ", "))
	fmt.Fprintf(&b, "3 action: %s\n", action)
	return b.String(), nil
}
