// Package explorer implements the full-screen terminal picture explorer.
//
// Built on Bubble Tea, the explorer shows one catalog item at a time: the
// picture, its caption, a position indicator and a single Next button.
// Pressing the button (enter, space, n or the right arrow) advances to the
// next item, wrapping from the last item back to the first.
//
// # Architecture
//
// The Model keeps no navigation state of its own. It holds a
// *navigator.Navigator and renders whatever snapshot the navigator reports;
// every key press that means "next" calls Navigator.Advance. Rendering a
// snapshot goes through ui.Compose, which leaves out the picture or the
// caption when its reference is unset.
//
// All screens are wrapped by RenderApplicationContainer: header with the
// application name and version, content, and a footer with context help
// from bubbles/help.
//
// # Usage Example
//
//	nav := navigator.New(catalog.Default())
//	model := explorer.NewModel(nav, resources.DefaultBundle(), explorer.DefaultOptions())
//	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Bubble Tea delivers all messages on one goroutine, so key presses are
// naturally serialised. The navigator is independently safe for concurrent
// use.
package explorer
