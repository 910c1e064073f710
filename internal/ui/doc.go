// Package ui provides the rendering shared by the interactive explorer and
// the non-interactive commands.
//
// Compose turns a navigator.ViewState into a Frame: the rendered picture and
// the caption text, each left empty when its reference is unset or does not
// resolve in the bundle. Both the full-screen explorer and the Printer used
// by `imagexplorer show` and `imagexplorer list` draw from the same Frame, so
// the omission rules live in exactly one place.
//
// # Printer
//
// Commands that print and exit use a Printer:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Catalog", "imagexplorer list", ui.Param{Key: "Source", Value: "built-in"})
//	p.PrintFrame(frame, true)
//
// # Logging Integration
//
// This package never logs. Logging stays silent unless
// IMAGEXPLORER_LOG_LEVEL or --log-level is set, which keeps styled output
// clean.
package ui
