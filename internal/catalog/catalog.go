package catalog

import (
	"errors"
	"fmt"
)

// TextRef references a caption in a resources.Bundle string table.
type TextRef string

// ImageRef references a picture in a resources.Bundle image table.
type ImageRef string

// Unset is the sentinel "no reference" value for both TextRef and ImageRef.
// The presentation omits any element whose reference is unset.
const Unset = ""

// IsSet reports whether the reference points at something.
func (r TextRef) IsSet() bool { return r != Unset }

// IsSet reports whether the reference points at something.
func (r ImageRef) IsSet() bool { return r != Unset }

// Item is a single displayable entry: a caption and a picture.
type Item struct {
	Title TextRef  `yaml:"title"`
	Image ImageRef `yaml:"image"`
}

var (
	// ErrEmptyCatalog is returned when a catalog is constructed with no items.
	ErrEmptyCatalog = errors.New("catalog must contain at least one item")

	// ErrOutOfRange is matched by every *OutOfRangeError via errors.Is.
	ErrOutOfRange = errors.New("catalog index out of range")
)

// OutOfRangeError reports a lookup outside [0, Len).
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("catalog index %d out of range [0, %d)", e.Index, e.Len)
}

// Is allows errors.Is(err, ErrOutOfRange).
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Provider is what navigation needs from a catalog.
type Provider interface {
	All() []Item
	At(index int) (Item, error)
	NextIndex(index int) int
}

// Catalog is an immutable, non-empty, ordered sequence of items.
type Catalog struct {
	items []Item
}

var _ Provider = (*Catalog)(nil)

// New builds a catalog from items. The slice is copied, so later changes to
// items do not affect the catalog.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	return &Catalog{items: owned}, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew(items []Item) *Catalog {
	c, err := New(items)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns a copy of the items in order.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the item at index.
func (c *Catalog) At(index int) (Item, error) {
	if index < 0 || index >= len(c.items) {
		return Item{}, &OutOfRangeError{Index: index, Len: len(c.items)}
	}
	return c.items[index], nil
}

// NextIndex returns (index + 1) mod Len. Negative input is normalised into
// range so the result is always a valid index.
func (c *Catalog) NextIndex(index int) int {
	n := len(c.items)
	return ((index+1)%n + n) % n
}
