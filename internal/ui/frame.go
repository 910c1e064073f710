package ui

import (
	"fmt"

	"github.com/muurk/imagexplorer/internal/navigator"
	"github.com/muurk/imagexplorer/internal/resources"
)

// Frame is a ViewState resolved into displayable text.
type Frame struct {
	Picture string // rendered picture, empty when omitted
	Caption string // caption text, empty when omitted
	Index   int
	Count   int
}

// HasPicture reports whether the frame shows a picture.
func (f Frame) HasPicture() bool { return f.Picture != "" }

// HasCaption reports whether the frame shows a caption.
func (f Frame) HasCaption() bool { return f.Caption != "" }

// Position returns the one-based "i / n" indicator.
func (f Frame) Position() string {
	return fmt.Sprintf("%d / %d", f.Index+1, f.Count)
}

// Compose resolves state against bundle. The picture is fitted into
// maxCols x maxRows cells. An element whose reference is unset, does not
// resolve or cannot be rendered is left out of the frame.
func Compose(state navigator.ViewState, bundle *resources.Bundle, maxCols, maxRows int) Frame {
	f := Frame{Index: state.Index, Count: state.Count}

	if text, ok := bundle.Text(state.Title); ok {
		f.Caption = text
	}

	if img, ok := bundle.Picture(state.Image); ok {
		if rendered, err := resources.Render(img, maxCols, maxRows); err == nil {
			f.Picture = rendered
		}
	}

	return f
}
