package navigator

// PageID is the stable index of a page, assigned in append order.
type PageID int

// ActivateFunc is invoked when the user confirms a selection on a page.
// It receives the navigator through the narrow Controller capability.
type ActivateFunc func(c Controller) error

// Page is an immutable menu screen: a title, an optional description and a
// non-empty list of option labels, plus an optional activation callback.
type Page struct {
	title       string
	description string
	options     []string
	onActivate  ActivateFunc
}

// Title returns the page title.
func (p Page) Title() string { return p.title }

// Description returns the page description, empty when none was given.
func (p Page) Description() string { return p.description }

// Options returns a copy of the option labels.
func (p Page) Options() []string {
	out := make([]string, len(p.options))
	copy(out, p.options)
	return out
}

// OptionCount returns the number of options on the page.
func (p Page) OptionCount() int { return len(p.options) }

// Option returns the label at index i.
func (p Page) Option(i int) string { return p.options[i] }

// HasAction reports whether the page carries an activation callback.
func (p Page) HasAction() bool { return p.onActivate != nil }

// PageOption configures optional page attributes at AddPage time.
type PageOption func(*Page)

// WithDescription sets the line rendered under the title.
func WithDescription(description string) PageOption {
	return func(p *Page) {
		p.description = description
	}
}

// WithOnActivate registers the page's activation callback.
func WithOnActivate(fn ActivateFunc) PageOption {
	return func(p *Page) {
		p.onActivate = fn
	}
}

// Direction is the way Scroll moves the selection.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Controller is the subset of navigator operations exposed to activation
// callbacks. Activate itself is not part of it, so a callback cannot
// re-enter activation.
type Controller interface {
	CurrentPage() (Page, error)
	CurrentIndex() int
	Selected() int
	SelectedOption() (string, error)
	PageCount() int
	NextPage() error
	PrevPage() error
	Scroll(dir Direction) error
}
