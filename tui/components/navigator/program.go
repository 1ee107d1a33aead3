package navigator

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/consoleui/errors"
)

// ProgramModel adapts a Navigator to bubbletea. Confirming a selection ends
// the program; the page callback is run by RunProgram once the program has
// released the terminal, so callbacks can write to stdout freely.
type ProgramModel struct {
	nav     *Navigator
	keys    KeyMap
	help    help.Model
	width   int
	outcome Outcome
	err     error
}

// NewProgramModel creates a bubbletea model driving nav with DefaultKeyMap.
func NewProgramModel(nav *Navigator) ProgramModel {
	return ProgramModel{
		nav:  nav,
		keys: DefaultKeyMap,
		help: help.New(),
	}
}

// Init initializes the model.
func (m ProgramModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ev := m.keys.Translate(msg)
		switch ev.Code {
		case CodeEnter:
			m.outcome = OutcomeActivated
			return m, tea.Quit
		case CodeEscape:
			m.outcome = OutcomeCancelled
			return m, tea.Quit
		}

		if _, err := m.nav.HandleKey(ev); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the current page followed by a one-line key help.
func (m ProgramModel) View() string {
	if m.outcome != OutcomeNone || m.err != nil {
		return ""
	}

	lines, err := m.nav.Render(m.width)
	if err != nil {
		return m.nav.theme.Error.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Outcome returns how the program ended.
func (m ProgramModel) Outcome() Outcome {
	return m.outcome
}

// Err returns the fatal navigation error that stopped the program, if any.
func (m ProgramModel) Err() error {
	return m.err
}

// RunProgram runs nav under bubbletea on the alternate screen and, when the
// user confirmed a selection, activates the current page afterwards.
func RunProgram(ctx context.Context, nav *Navigator, opts ...tea.ProgramOption) (Outcome, error) {
	if nav.PageCount() == 0 {
		return OutcomeNone, errors.NoPages("run")
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewProgramModel(nav), opts...)

	final, err := p.Run()
	if err != nil {
		return OutcomeNone, err
	}

	m := final.(ProgramModel)
	if m.err != nil {
		return OutcomeNone, m.err
	}
	if m.outcome == OutcomeActivated {
		return OutcomeActivated, nav.Activate()
	}
	return m.outcome, nil
}
