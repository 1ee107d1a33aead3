package navigator_test

import (
	"context"
	stderrors "errors"
	"io"
	"testing"

	"github.com/grovetools/consoleui/errors"
	nav "github.com/grovetools/consoleui/tui/components/navigator"
	"github.com/grovetools/consoleui/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietNavigator(t *testing.T, centered bool) *nav.Navigator {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return nav.New(nav.Config{Centered: centered, Logger: logrus.NewEntry(logger)})
}

// twoPages builds Home [A B exit] and Page1 [OK], recording activations.
func twoPages(t *testing.T, activations *[]string) *nav.Navigator {
	t.Helper()
	n := quietNavigator(t, false)
	record := func(c nav.Controller) error {
		page, err := c.CurrentPage()
		if err != nil {
			return err
		}
		option, err := c.SelectedOption()
		if err != nil {
			return err
		}
		*activations = append(*activations, page.Title()+"/"+option)
		return nil
	}
	_, err := n.AddPage("Home", []string{"A", "B", "exit"}, nav.WithOnActivate(record))
	require.NoError(t, err)
	_, err = n.AddPage("Page1", []string{"OK"}, nav.WithDescription("page 1"), nav.WithOnActivate(record))
	require.NoError(t, err)
	return n
}

func TestHandleKeyDispatch(t *testing.T) {
	tests := []struct {
		name        string
		keys        []nav.KeyEvent
		wantPage    int
		wantSel     int
		wantOutcome nav.Outcome
	}{
		{"down", []nav.KeyEvent{nav.Press(nav.CodeDown)}, 0, 1, nav.OutcomeNone},
		{"up wraps", []nav.KeyEvent{nav.Press(nav.CodeUp)}, 0, 2, nav.OutcomeNone},
		{"right", []nav.KeyEvent{nav.Press(nav.CodeRight)}, 1, 0, nav.OutcomeNone},
		{"left at first page is soft", []nav.KeyEvent{nav.Press(nav.CodeLeft)}, 0, 0, nav.OutcomeNone},
		{"right at last page is soft", []nav.KeyEvent{nav.Press(nav.CodeRight), nav.Press(nav.CodeRight)}, 1, 0, nav.OutcomeNone},
		{"release ignored", []nav.KeyEvent{{Type: nav.KeyRelease, Code: nav.CodeDown}}, 0, 0, nav.OutcomeNone},
		{"other ignored", []nav.KeyEvent{nav.Press(nav.CodeOther)}, 0, 0, nav.OutcomeNone},
		{"escape cancels", []nav.KeyEvent{nav.Press(nav.CodeEscape)}, 0, 0, nav.OutcomeCancelled},
		{"enter activates", []nav.KeyEvent{nav.Press(nav.CodeEnter)}, 0, 0, nav.OutcomeActivated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var activations []string
			n := twoPages(t, &activations)

			outcome := nav.OutcomeNone
			for _, ev := range tt.keys {
				var err error
				outcome, err = n.HandleKey(ev)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantPage, n.CurrentIndex())
			assert.Equal(t, tt.wantSel, n.Selected())
		})
	}
}

func TestRunActivatesSelection(t *testing.T) {
	var activations []string
	n := twoPages(t, &activations)
	keys := testutil.Presses(nav.CodeDown, nav.CodeDown, nav.CodeOther, nav.CodeEnter, nav.CodeDown)
	surface := testutil.NewRecordingSurface(40)

	outcome, err := nav.Run(context.Background(), n, keys, surface)
	require.NoError(t, err)

	assert.Equal(t, nav.OutcomeActivated, outcome)
	assert.Equal(t, []string{"Home/exit"}, activations)
	assert.Equal(t, 1, keys.Remaining(), "keys after enter are not read")
	// one frame per key read
	assert.Len(t, surface.Frames(), 4)
	assert.Equal(t, []string{"Home", "A", "B", "> exit"}, surface.LastFrame())
}

func TestRunNavigatesPages(t *testing.T) {
	var activations []string
	n := twoPages(t, &activations)
	keys := testutil.Presses(nav.CodeLeft, nav.CodeRight, nav.CodeRight, nav.CodeEnter)
	surface := testutil.NewRecordingSurface(40)

	outcome, err := nav.Run(context.Background(), n, keys, surface)
	require.NoError(t, err)
	assert.Equal(t, nav.OutcomeActivated, outcome)
	assert.Equal(t, []string{"Page1/OK"}, activations)
	assert.Equal(t, []string{"Page1", "page 1", "> OK"}, surface.LastFrame())
}

func TestRunCancel(t *testing.T) {
	var activations []string
	n := twoPages(t, &activations)

	outcome, err := nav.Run(context.Background(), n, testutil.Presses(nav.CodeDown, nav.CodeEscape), testutil.NewRecordingSurface(40))
	require.NoError(t, err)
	assert.Equal(t, nav.OutcomeCancelled, outcome)
	assert.Empty(t, activations)
}

func TestRunWithoutPages(t *testing.T) {
	_, err := nav.Run(context.Background(), quietNavigator(t, false), testutil.Presses(), testutil.NewRecordingSurface(40))
	assert.Equal(t, errors.ErrCodeNoPages, errors.GetCode(err))
}

func TestRunInputFailure(t *testing.T) {
	var activations []string
	n := twoPages(t, &activations)

	_, err := nav.Run(context.Background(), n, testutil.Presses(nav.CodeDown), testutil.NewRecordingSurface(40))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInputFailed, errors.GetCode(err))
	assert.True(t, stderrors.Is(err, io.EOF))
}

func TestRunSurfaceFailure(t *testing.T) {
	var activations []string
	n := twoPages(t, &activations)
	surface := testutil.NewRecordingSurface(40)
	surface.WriteErr = stderrors.New("broken pipe")

	_, err := nav.Run(context.Background(), n, testutil.Presses(nav.CodeEnter), surface)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTerminalUnavailable, errors.GetCode(err))
	assert.Empty(t, activations)
}

func TestRunActivationFailureIsReturned(t *testing.T) {
	n := quietNavigator(t, false)
	_, err := n.AddPage("Home", []string{"A"}, nav.WithOnActivate(func(nav.Controller) error {
		return stderrors.New("boom")
	}))
	require.NoError(t, err)

	outcome, err := nav.Run(context.Background(), n, testutil.Presses(nav.CodeEnter), testutil.NewRecordingSurface(40))
	assert.Equal(t, nav.OutcomeActivated, outcome)
	assert.Equal(t, errors.ErrCodeActionFailed, errors.GetCode(err))
}

func TestRunHonorsCancelledContext(t *testing.T) {
	var activations []string
	n := twoPages(t, &activations)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := nav.Run(ctx, n, testutil.Presses(nav.CodeEnter), testutil.NewRecordingSurface(40))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, activations)
}

func TestDrawCentersWithSurfaceWidth(t *testing.T) {
	n := quietNavigator(t, true)
	_, err := n.AddPage("Home", []string{"OK"})
	require.NoError(t, err)

	surface := testutil.NewRecordingSurface(10)
	require.NoError(t, nav.Draw(n, surface))
	assert.Equal(t, []string{"   Home", "    > OK"}, surface.LastFrame())
}
