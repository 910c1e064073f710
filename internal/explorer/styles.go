package explorer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/imagexplorer/internal/ui"
	"github.com/muurk/imagexplorer/internal/version"
)

// Application branding constants
const (
	AppName   = "IMAGE EXPLORER"
	GitHubURL = "github.com/muurk/imagexplorer"
)

// Layout constants
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// chromeRows is everything that is not picture: outer border, header,
	// footer, caption, position and the button.
	chromeRows = 14
)

var (
	// ButtonStyle is the Next button
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(ui.PrimaryColor).
			Bold(true).
			Padding(0, 3).
			MarginTop(1)

	// ErrorLineStyle shows the last navigation error, if any
	ErrorLineStyle = lipgloss.NewStyle().
			Foreground(ui.ErrorColor).
			Italic(true)
)

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps screen content with the header, the
// footer help text and an outer border filling the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight < MinTerminalHeight {
		terminalHeight = MinTerminalHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	// header and footer take two rows each, the outer border two more
	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Height(terminalHeight - 8).
		Align(lipgloss.Center)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(lipgloss.NewStyle().Foreground(ui.MutedColor).Render(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}
