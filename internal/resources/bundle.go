package resources

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/muurk/imagexplorer/internal/catalog"
)

// Bundle is a lookup table for captions and pictures.
type Bundle struct {
	texts  map[catalog.TextRef]string
	images map[catalog.ImageRef]image.Image
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{
		texts:  make(map[catalog.TextRef]string),
		images: make(map[catalog.ImageRef]image.Image),
	}
}

// SetText registers a caption for ref.
func (b *Bundle) SetText(ref catalog.TextRef, text string) {
	b.texts[ref] = text
}

// SetPicture registers a picture for ref.
func (b *Bundle) SetPicture(ref catalog.ImageRef, img image.Image) {
	b.images[ref] = img
}

// Text returns the caption for ref. Unset or unknown references report false.
func (b *Bundle) Text(ref catalog.TextRef) (string, bool) {
	if !ref.IsSet() {
		return "", false
	}
	text, ok := b.texts[ref]
	return text, ok
}

// Picture returns the picture for ref. Unset or unknown references report false.
func (b *Bundle) Picture(ref catalog.ImageRef) (image.Image, bool) {
	if !ref.IsSet() {
		return nil, false
	}
	img, ok := b.images[ref]
	return img, ok
}

// HasText reports whether ref resolves to a caption.
func (b *Bundle) HasText(ref catalog.TextRef) bool {
	_, ok := b.texts[ref]
	return ok
}

// HasPicture reports whether ref resolves to a picture.
func (b *Bundle) HasPicture(ref catalog.ImageRef) bool {
	_, ok := b.images[ref]
	return ok
}

// DecodeFile reads and decodes a PNG, JPEG or GIF file.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
