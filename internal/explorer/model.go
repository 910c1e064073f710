package explorer

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/imagexplorer/internal/catalog"
	"github.com/muurk/imagexplorer/internal/logging"
	"github.com/muurk/imagexplorer/internal/navigator"
	"github.com/muurk/imagexplorer/internal/resources"
	"github.com/muurk/imagexplorer/internal/ui"
)

// DefaultButtonLabel is shown on the control when the bundle has no
// catalog.ButtonNext text.
const DefaultButtonLabel = "Next"

// Options tune the explorer layout.
type Options struct {
	PictureWidth int  // maximum picture width in columns
	ShowPosition bool // show "i / n" under the caption
}

// DefaultOptions returns the layout used when no settings are given.
func DefaultOptions() Options {
	return Options{PictureWidth: 64, ShowPosition: true}
}

// stateMsg carries a snapshot published by the navigator.
type stateMsg navigator.ViewState

// Model is the explorer screen. It renders the last snapshot received from
// its navigator subscription.
type Model struct {
	nav    *navigator.Navigator
	bundle *resources.Bundle
	opts   Options

	state       navigator.ViewState
	updates     <-chan navigator.ViewState
	unsubscribe func()

	// UI state
	Width  int
	Height int
	Err    error
	Help   help.Model
	Keys   keyMap
}

// NewModel creates the explorer screen over nav.
func NewModel(nav *navigator.Navigator, bundle *resources.Bundle, opts Options) Model {
	if opts.PictureWidth <= 0 {
		opts.PictureWidth = DefaultOptions().PictureWidth
	}

	updates, unsubscribe := nav.Subscribe()

	return Model{
		nav:         nav,
		bundle:      bundle,
		opts:        opts,
		state:       nav.State(),
		updates:     updates,
		unsubscribe: unsubscribe,
		Width:       ui.MinTerminalWidth,
		Height:      24,
		Help:        help.New(),
		Keys:        newKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return waitForState(m.updates)
}

// waitForState blocks until the navigator publishes a snapshot. A closed
// subscription yields no message, which ends the wait loop.
func waitForState(updates <-chan navigator.ViewState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return nil
		}
		return stateMsg(state)
	}
}

// Close cancels the navigator subscription. It is safe to call more than once.
func (m Model) Close() {
	m.unsubscribe()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case stateMsg:
		m.state = navigator.ViewState(msg)
		return m, waitForState(m.updates)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			m.Close()
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil

		case key.Matches(msg, m.Keys.Next):
			return m.advance(), nil
		}
	}

	return m, nil
}

func (m Model) advance() Model {
	if _, err := m.nav.Advance(); err != nil {
		logging.Error("Advance failed", zap.Error(err))
		m.Err = err
		return m
	}
	m.Err = nil
	return m
}

// State returns the snapshot currently on screen.
func (m Model) State() navigator.ViewState {
	return m.state
}

func (m Model) buttonLabel() string {
	if label, ok := m.bundle.Text(catalog.ButtonNext); ok {
		return label
	}
	return DefaultButtonLabel
}

// View implements tea.Model
func (m Model) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

// pictureBounds returns the cells available for the picture.
func (m Model) pictureBounds() (int, int) {
	cols := m.Width - 8
	if cols > m.opts.PictureWidth {
		cols = m.opts.PictureWidth
	}
	rows := m.Height - chromeRows
	if m.Help.ShowAll {
		rows -= 2
	}
	return cols, rows
}

func (m Model) buildContent() string {
	cols, rows := m.pictureBounds()
	frame := ui.Compose(m.state, m.bundle, cols, rows)

	width := m.Width - 4
	if width < MinTerminalWidth-4 {
		width = MinTerminalWidth - 4
	}

	var parts []string
	if frame.HasPicture() {
		parts = append(parts, frame.Picture)
	}
	if frame.HasCaption() {
		parts = append(parts, ui.CaptionStyle.Width(width).MarginTop(1).Render(frame.Caption))
	}
	if m.opts.ShowPosition {
		parts = append(parts, ui.PositionStyle.Width(width).Render(frame.Position()))
	}
	parts = append(parts, ButtonStyle.Render(m.buttonLabel()))
	if m.Err != nil {
		parts = append(parts, ErrorLineStyle.Render(m.Err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// Run starts the explorer full screen and blocks until the user quits.
func Run(nav *navigator.Navigator, bundle *resources.Bundle, opts Options, progOpts ...tea.ProgramOption) error {
	m := NewModel(nav, bundle, opts)
	defer m.Close()

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	_, err := tea.NewProgram(m, progOpts...).Run()
	return err
}
