package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/imagexplorer/internal/catalog"
	"github.com/muurk/imagexplorer/internal/resources"
)

// Param is an ordered header parameter.
type Param struct {
	Key   string
	Value string
}

// Printer writes styled components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = ClampWidth(width)
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(RenderHeader(title, command, params, p.width))
}

// PrintFrame prints a picture card: picture, caption and position.
func (p *Printer) PrintFrame(f Frame, showPosition bool) {
	p.Println(RenderCard(f, showPosition, p.width))
}

// PrintCatalog prints every item with its references, marking current.
func (p *Printer) PrintCatalog(items []catalog.Item, bundle *resources.Bundle, current int) {
	p.Println(RenderCatalog(items, bundle, current))
}

// PrintError prints an error box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(RenderErrorBox(title, err, troubleshooting, p.width))
}

// RenderHeader renders a command header box
func RenderHeader(title, command string, params []Param, width int) string {
	titleLine := HeaderTitleStyle.Render(strings.ToUpper(title))
	commandLine := HeaderCommandStyle.Render(command)

	sections := []string{titleLine, commandLine}

	if len(params) > 0 {
		sections = append(sections, RenderHorizontalDivider(width-6, "─"))
		for _, param := range params {
			sections = append(sections, ParamKeyStyle.Render(param.Key+":")+" "+ParamValueStyle.Render(param.Value))
		}
	}

	return BoxStyle(width, PrimaryColor).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// RenderCard renders a frame inside a bordered card. Omitted elements take
// no space.
func RenderCard(f Frame, showPosition bool, width int) string {
	inner := width - 4

	var parts []string
	if f.HasPicture() {
		parts = append(parts, lipgloss.PlaceHorizontal(inner, lipgloss.Center, f.Picture))
	}
	if f.HasCaption() {
		parts = append(parts, CaptionStyle.Width(inner).Render(f.Caption))
	}
	if showPosition && f.Count > 0 {
		parts = append(parts, PositionStyle.Width(inner).Render(f.Position()))
	}

	return BoxStyle(width, PrimaryColor).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// RenderCatalog renders a numbered list of catalog items.
func RenderCatalog(items []catalog.Item, bundle *resources.Bundle, current int) string {
	lines := make([]string, 0, len(items))

	for i, item := range items {
		marker := "  "
		if i == current {
			marker = CurrentMarkerStyle.Render(CurrentMarker) + " "
		}

		caption, ok := bundle.Text(item.Title)
		if !ok {
			caption = "(no caption)"
		}

		refs := ReferenceStyle.Render(fmt.Sprintf("[%s · %s]", refName(string(item.Title)), refName(string(item.Image))))
		lines = append(lines, fmt.Sprintf("%s%2d. %s %s", marker, i+1, caption, refs))
	}

	return strings.Join(lines, "\n")
}

// RenderErrorBox renders an error result box with troubleshooting
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("%s  FAILED  ─  %s", FailureMarker, title)),
		"",
	}

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Width(width-6).Render("Error: "+err.Error()), "")
	}

	if len(troubleshooting) > 0 {
		lines = append(lines, TroubleshootingItemStyle.Bold(true).Render("Troubleshooting:"))
		for _, tip := range troubleshooting {
			lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, "")
	}

	return BoxStyle(width, ErrorColor).Render(strings.Join(lines, "\n"))
}

func refName(ref string) string {
	if ref == catalog.Unset {
		return "unset"
	}
	return ref
}
