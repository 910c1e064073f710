package explorer

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/imagexplorer/internal/catalog"
	"github.com/muurk/imagexplorer/internal/navigator"
	"github.com/muurk/imagexplorer/internal/resources"
)

func newTestModel(t *testing.T, c *catalog.Catalog) Model {
	t.Helper()
	m := NewModel(navigator.New(c), resources.DefaultBundle(), DefaultOptions())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return updated.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// press sends k and then delivers whatever snapshot the navigator published,
// the way the running program would through the Init wait loop.
func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	m, cmd := send(t, m, k)
	select {
	case state, ok := <-m.updates:
		if ok {
			m, _ = send(t, m, stateMsg(state))
		}
	default:
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialView(t *testing.T) {
	m := newTestModel(t, catalog.Default())

	assert.Equal(t, catalog.TitleProfessionals, m.State().Title)

	view := m.View()
	assert.Contains(t, view, "ComPro Professionals")
	assert.Contains(t, view, "1 / 5")
	assert.Contains(t, view, DefaultButtonLabel)
	assert.Contains(t, view, resources.HalfBlock)
}

func TestNextKeysAdvance(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		runes("n"),
		{Type: tea.KeyRight},
	}

	m := newTestModel(t, catalog.Default())
	for i, k := range keys {
		var cmd tea.Cmd
		m, cmd = press(t, m, k)
		assert.Nil(t, cmd)
		assert.Equal(t, i+1, m.State().Index, "key %q", k.String())
	}

	assert.Equal(t, catalog.TitleGraduation, m.State().Title)
	assert.Contains(t, m.View(), "Graduation")
}

func TestWrapAroundThroughKeys(t *testing.T) {
	m := newTestModel(t, catalog.Default())

	for i := 0; i < 5; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}

	assert.Equal(t, 0, m.State().Index)
	assert.Contains(t, m.View(), "ComPro Professionals")
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, catalog.Default())
		_, cmd := send(t, m, k)
		require.NotNil(t, cmd, "key %q", k.String())

		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "key %q should quit", k.String())
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	assert.False(t, m.Help.ShowAll)

	m, _ = send(t, m, runes("?"))
	assert.True(t, m.Help.ShowAll)
	assert.Contains(t, m.View(), "next picture")

	m, _ = send(t, m, runes("?"))
	assert.False(t, m.Help.ShowAll)
}

func TestUnsetReferencesAreOmitted(t *testing.T) {
	c := catalog.MustNew([]catalog.Item{
		{Title: catalog.TitleFriends},
		{Image: catalog.ImageFriends},
	})
	m := newTestModel(t, c)

	view := m.View()
	assert.Contains(t, view, "Friends")
	assert.NotContains(t, view, resources.HalfBlock)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view = m.View()
	assert.NotContains(t, view, "Friends")
	assert.Contains(t, view, resources.HalfBlock)
	assert.Contains(t, view, DefaultButtonLabel)
}

func TestHidePosition(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowPosition = false

	m := NewModel(navigator.New(catalog.Default()), resources.DefaultBundle(), opts)
	assert.NotContains(t, m.View(), "1 / 5")
}

type failingProvider struct {
	*catalog.Catalog
}

func (f failingProvider) NextIndex(int) int { return -1 }

func TestAdvanceErrorIsShown(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	m.nav = navigator.New(failingProvider{catalog.Default()})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Error(t, m.Err)
	assert.True(t, errors.Is(m.Err, catalog.ErrOutOfRange))
	assert.Equal(t, 0, m.State().Index)
}

func TestSmallTerminalStillRenders(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	view := m.View()
	assert.Contains(t, view, DefaultButtonLabel)
	assert.NotContains(t, view, resources.HalfBlock)
}

func TestInitWaitsForPublishedState(t *testing.T) {
	m := newTestModel(t, catalog.Default())

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg, ok := cmd().(stateMsg)
	require.True(t, ok)
	assert.Equal(t, catalog.TitleProfessionals, msg.Title)

	m, cmd = send(t, m, msg)
	require.NotNil(t, cmd, "wait loop must be re-armed")

	_, err := m.nav.Advance()
	require.NoError(t, err)
	assert.Equal(t, 0, m.State().Index, "view changes only through the subscription")

	next, ok := cmd().(stateMsg)
	require.True(t, ok)
	m, _ = send(t, m, next)
	assert.Equal(t, catalog.TitleAdmission, m.State().Title)
	assert.Contains(t, m.View(), "ComPro Admission Team")
}

func TestQuitCancelsSubscription(t *testing.T) {
	m := newTestModel(t, catalog.Default())
	<-m.updates

	m, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)

	_, open := <-m.updates
	assert.False(t, open)
	assert.Nil(t, waitForState(m.updates)())

	m.Close()
}

func TestButtonLabelFromBundle(t *testing.T) {
	bundle := resources.DefaultBundle()
	bundle.SetText(catalog.ButtonNext, "Weiter")

	m := NewModel(navigator.New(catalog.Default()), bundle, DefaultOptions())
	view := m.View()
	assert.Contains(t, view, "Weiter")
	assert.NotContains(t, view, DefaultButtonLabel)
}

func TestButtonLabelFallback(t *testing.T) {
	bundle := resources.NewBundle()
	bundle.SetText(catalog.TitleFriends, "Friends")

	c := catalog.MustNew([]catalog.Item{{Title: catalog.TitleFriends}})
	m := NewModel(navigator.New(c), bundle, DefaultOptions())
	assert.Contains(t, m.View(), DefaultButtonLabel)
}
