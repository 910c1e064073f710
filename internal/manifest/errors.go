package manifest

import (
	"errors"
	"fmt"
)

// ErrorKind classifies manifest failures.
type ErrorKind int

const (
	// ErrKindRead indicates the manifest file could not be read
	ErrKindRead ErrorKind = iota
	// ErrKindParse indicates malformed YAML
	ErrKindParse
	// ErrKindVersion indicates an unsupported manifest version
	ErrKindVersion
	// ErrKindEmpty indicates a manifest with no items
	ErrKindEmpty
	// ErrKindReference indicates an item references an unknown string or image
	ErrKindReference
	// ErrKindImage indicates an image file could not be decoded
	ErrKindImage
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindRead:
		return "Read Error"
	case ErrKindParse:
		return "Parse Error"
	case ErrKindVersion:
		return "Version Error"
	case ErrKindEmpty:
		return "Empty Catalog"
	case ErrKindReference:
		return "Reference Error"
	case ErrKindImage:
		return "Image Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error describes why a manifest could not be loaded.
type Error struct {
	Kind    ErrorKind
	Path    string // manifest path
	Item    int    // item index, -1 when not item specific
	Message string
	Err     error
}

func (e *Error) Error() string {
	var where string
	if e.Item >= 0 {
		where = fmt.Sprintf(" (item %d)", e.Item)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s%s: %s: %v", e.Path, e.Kind, where, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s%s: %s", e.Path, e.Kind, where, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Troubleshooting returns hints suitable for an error box.
func (e *Error) Troubleshooting() []string {
	return e.Kind.Troubleshooting()
}

// Troubleshooting returns the hints shared by every error of kind k.
func (k ErrorKind) Troubleshooting() []string {
	switch k {
	case ErrKindRead:
		return []string{
			"Check the --catalog path is correct",
			"Verify the file is readable",
		}
	case ErrKindParse:
		return []string{"Validate the manifest is well-formed YAML"}
	case ErrKindVersion:
		return []string{"Set 'version: 1' at the top of the manifest"}
	case ErrKindEmpty:
		return []string{"Add at least one entry under 'items'"}
	case ErrKindReference:
		return []string{"Every item title must appear under 'strings' and every image under 'images'"}
	case ErrKindImage:
		return []string{
			"Image paths are relative to the manifest directory",
			"Supported formats are PNG, JPEG and GIF",
		}
	default:
		return nil
	}
}

// KindOf returns the kind of a manifest error, or false if err is not one.
func KindOf(err error) (ErrorKind, bool) {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind, true
	}
	return 0, false
}
