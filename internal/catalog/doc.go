// Package catalog holds the fixed, ordered sequence of items the explorer
// cycles through.
//
// A Catalog is built once at startup, either from the built-in data set
// (Default) or from a YAML manifest (manifest.Load), and is never mutated
// afterwards. Items carry references, not content: a title is a TextRef and
// a picture is an ImageRef, both resolved later through a resources.Bundle.
//
// # Cursor Arithmetic
//
// The only rule the catalog owns is the wrap-around advance:
//
//	next := c.NextIndex(current) // (current + 1) mod Len()
//
// Because a Catalog can never be empty, NextIndex always yields a valid
// index and At never fails for indices produced by it.
//
// # Usage Example
//
//	c, err := catalog.New([]catalog.Item{
//	    {Title: "title_friends", Image: "friends"},
//	    {Title: "title_graduation", Image: "graduation"},
//	})
//	if err != nil {
//	    log.Fatal(err) // empty catalog is a configuration error
//	}
//
//	item, _ := c.At(c.NextIndex(1)) // wraps to index 0
package catalog
