// Package resources resolves catalog references into displayable content.
//
// A Bundle maps catalog.TextRef values to caption strings and
// catalog.ImageRef values to decoded pictures. Pictures are decoded once,
// when the bundle is built, so rendering never touches the filesystem.
//
// Render turns a picture into terminal cells using the upper half block
// glyph: every cell shows two vertically stacked pixels, the upper one as
// the foreground colour and the lower one as the background colour.
package resources
