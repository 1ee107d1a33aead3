package navigator

import (
	"testing"

	"github.com/grovetools/consoleui/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNavigator(t *testing.T) (*Navigator, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(Config{Logger: logrus.NewEntry(logger)}), hook
}

func addPage(t *testing.T, n *Navigator, title string, options []string, opts ...PageOption) PageID {
	t.Helper()
	id, err := n.AddPage(title, options, opts...)
	require.NoError(t, err)
	return id
}

func TestAddPageAssignsSequentialIDs(t *testing.T) {
	n, _ := newTestNavigator(t)

	assert.Equal(t, PageID(0), addPage(t, n, "Home", []string{"A"}))
	assert.Equal(t, PageID(1), addPage(t, n, "Page1", []string{"OK"}))
	assert.Equal(t, 2, n.PageCount())
}

func TestAddPageCopiesOptions(t *testing.T) {
	n, _ := newTestNavigator(t)
	options := []string{"A", "B"}
	addPage(t, n, "Home", options)

	options[0] = "mutated"
	page, err := n.CurrentPage()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, page.Options())

	page.Options()[1] = "also mutated"
	assert.Equal(t, "B", page.Option(1))
}

func TestAddPageRejectsInvalidPages(t *testing.T) {
	n, _ := newTestNavigator(t)

	// empty options
	id, err := n.AddPage("X", []string{})
	require.Error(t, err)
	assert.Equal(t, PageID(-1), id)
	assert.Equal(t, errors.ErrCodeInvalidPage, errors.GetCode(err))
	assert.Equal(t, 0, n.PageCount())

	// nil options
	_, err = n.AddPage("X", nil)
	assert.Equal(t, errors.ErrCodeInvalidPage, errors.GetCode(err))

	// empty title
	_, err = n.AddPage("", []string{"A"})
	assert.Equal(t, errors.ErrCodeInvalidPage, errors.GetCode(err))
	assert.Equal(t, 0, n.PageCount())
}

func TestEmptyNavigator(t *testing.T) {
	n, _ := newTestNavigator(t)

	_, err := n.CurrentPage()
	assert.Equal(t, errors.ErrCodeNoPages, errors.GetCode(err))
	_, err = n.SelectedOption()
	assert.Equal(t, errors.ErrCodeNoPages, errors.GetCode(err))
	assert.Equal(t, errors.ErrCodeNoPages, errors.GetCode(n.NextPage()))
	assert.Equal(t, errors.ErrCodeNoPages, errors.GetCode(n.PrevPage()))
	assert.Equal(t, errors.ErrCodeNoPages, errors.GetCode(n.Scroll(Down)))
	assert.Equal(t, errors.ErrCodeNoPages, errors.GetCode(n.Activate()))
	_, err = n.Render(80)
	assert.Equal(t, errors.ErrCodeNoPages, errors.GetCode(err))
}

func TestScrollWrapsAround(t *testing.T) {
	for count := 1; count <= 5; count++ {
		for start := 0; start < count; start++ {
			for _, dir := range []Direction{Up, Down} {
				n, _ := newTestNavigator(t)
				options := make([]string, count)
				for i := range options {
					options[i] = string(rune('A' + i))
				}
				addPage(t, n, "P", options)
				n.selected = start

				for i := 0; i < count; i++ {
					require.NoError(t, n.Scroll(dir))
					require.GreaterOrEqual(t, n.Selected(), 0)
					require.Less(t, n.Selected(), count)
				}
				assert.Equal(t, start, n.Selected(), "count=%d start=%d dir=%s", count, start, dir)
			}
		}
	}
}

func TestScrollUpFromFirstOptionWrapsToLast(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A", "B", "exit"})

	require.NoError(t, n.Scroll(Up))
	assert.Equal(t, 2, n.Selected())
}

func TestScrollUnknownDirection(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A"})

	err := n.Scroll(Direction(7))
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
	assert.Equal(t, 0, n.Selected())
}

func TestPageChangeResetsSelection(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A", "B", "C"})
	addPage(t, n, "Page1", []string{"X", "Y", "Z"})

	n.selected = 2
	require.NoError(t, n.NextPage())
	assert.Equal(t, 1, n.CurrentIndex())
	assert.Equal(t, 0, n.Selected())

	n.selected = 1
	require.NoError(t, n.PrevPage())
	assert.Equal(t, 0, n.CurrentIndex())
	assert.Equal(t, 0, n.Selected())
}

func TestBoundaries(t *testing.T) {
	n, hook := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A", "B"})
	addPage(t, n, "Page1", []string{"OK"})

	require.NoError(t, n.Scroll(Down))
	err := n.PrevPage()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBoundary, errors.GetCode(err))
	assert.Equal(t, 0, n.CurrentIndex())
	assert.Equal(t, 1, n.Selected(), "boundary leaves the selection alone")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "There is no previous page", entry.Message)

	require.NoError(t, n.NextPage())
	hook.Reset()
	err = n.NextPage()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBoundary, errors.GetCode(err))
	assert.Equal(t, "limit reached", err.(*errors.Error).Message)
	assert.Equal(t, 1, n.CurrentIndex())
	assert.Empty(t, hook.AllEntries(), "next page boundary is reported, not logged")
}

func TestScenarioA(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A", "B", "exit"})
	addPage(t, n, "Page1", []string{"OK"})

	assert.Equal(t, 0, n.CurrentIndex())
	assert.Equal(t, 0, n.Selected())

	require.NoError(t, n.Scroll(Down))
	opt, err := n.SelectedOption()
	require.NoError(t, err)
	assert.Equal(t, "B", opt)

	require.NoError(t, n.Scroll(Down))
	assert.Equal(t, 2, n.Selected())
	require.NoError(t, n.Scroll(Down))
	opt, _ = n.SelectedOption()
	assert.Equal(t, "A", opt)

	require.NoError(t, n.NextPage())
	opt, _ = n.SelectedOption()
	assert.Equal(t, 1, n.CurrentIndex())
	assert.Equal(t, "OK", opt)

	assert.Equal(t, errors.ErrCodeBoundary, errors.GetCode(n.NextPage()))
	assert.Equal(t, 1, n.CurrentIndex())
}

func TestScenarioBSingleOptionIsFixedPoint(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Only", []string{"OK"})

	require.NoError(t, n.Scroll(Up))
	assert.Equal(t, 0, n.Selected())
	require.NoError(t, n.Scroll(Down))
	assert.Equal(t, 0, n.Selected())
}

func TestActivateDispatchesToCurrentPage(t *testing.T) {
	n, _ := newTestNavigator(t)

	var homeCalls, pageCalls int
	var seenTitle string
	addPage(t, n, "Home", []string{"A"}, WithOnActivate(func(c Controller) error {
		homeCalls++
		return nil
	}))
	addPage(t, n, "Page1", []string{"OK"}, WithOnActivate(func(c Controller) error {
		pageCalls++
		page, err := c.CurrentPage()
		if err != nil {
			return err
		}
		seenTitle = page.Title()
		return nil
	}))

	require.NoError(t, n.NextPage())
	require.NoError(t, n.Activate())

	assert.Equal(t, 0, homeCalls)
	assert.Equal(t, 1, pageCalls)
	assert.Equal(t, "Page1", seenTitle)
}

func TestActivateWithoutCallbackIsNoop(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A", "B"})
	require.NoError(t, n.Scroll(Down))

	require.NoError(t, n.Activate())
	assert.Equal(t, 0, n.CurrentIndex())
	assert.Equal(t, 1, n.Selected())
}

func TestActivateWrapsCallbackError(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A"}, WithOnActivate(func(c Controller) error {
		return errors.New(errors.ErrCodeInternal, "boom")
	}))

	err := n.Activate()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeActionFailed, errors.GetCode(err))
	assert.True(t, errors.Is(err, errors.ErrCodeInternal))
}

func TestCallbackCanNavigate(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A"}, WithOnActivate(func(c Controller) error {
		return c.NextPage()
	}))
	addPage(t, n, "Page1", []string{"OK"})

	require.NoError(t, n.Activate())
	assert.Equal(t, 1, n.CurrentIndex())
}

func TestDescribe(t *testing.T) {
	n, _ := newTestNavigator(t)
	addPage(t, n, "Home", []string{"A", "B"}, WithDescription("start here"),
		WithOnActivate(func(Controller) error { return nil }))
	addPage(t, n, "Page1", []string{"OK"})

	out, err := n.Describe(0)
	require.NoError(t, err)
	assert.Equal(t, "0 title: Home\n1 description: start here\n2 options: [A, B]\n3 action: set\n", out)

	out, err = n.Describe(1)
	require.NoError(t, err)
	assert.Contains(t, out, "3 action: none\n")

	_, err = n.Describe(5)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
	_, err = n.Describe(-1)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}
