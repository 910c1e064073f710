package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/imagexplorer/internal/catalog"
	"github.com/muurk/imagexplorer/internal/logging"
	"github.com/muurk/imagexplorer/internal/resources"
)

// SupportedVersion is the only manifest version Load accepts.
const SupportedVersion = 1

// File is the on-disk manifest layout.
type File struct {
	Version int                         `yaml:"version"`
	Strings map[catalog.TextRef]string  `yaml:"strings"`
	Images  map[catalog.ImageRef]string `yaml:"images"`
	Items   []catalog.Item              `yaml:"items"`
}

// Load reads the manifest at path and returns the catalog and the bundle
// that resolves its references.
func Load(path string) (*catalog.Catalog, *resources.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &Error{Kind: ErrKindRead, Path: path, Item: -1, Message: "failed to read manifest", Err: err}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, &Error{Kind: ErrKindParse, Path: path, Item: -1, Message: "failed to parse manifest", Err: err}
	}

	return Build(&f, path)
}

// Build validates f and resolves its images relative to the directory of
// path.
func Build(f *File, path string) (*catalog.Catalog, *resources.Bundle, error) {
	if f.Version != SupportedVersion {
		return nil, nil, &Error{
			Kind:    ErrKindVersion,
			Path:    path,
			Item:    -1,
			Message: fmt.Sprintf("unsupported manifest version: %d (expected %d)", f.Version, SupportedVersion),
		}
	}

	for i, item := range f.Items {
		if item.Title.IsSet() {
			if _, ok := f.Strings[item.Title]; !ok {
				return nil, nil, &Error{Kind: ErrKindReference, Path: path, Item: i,
					Message: fmt.Sprintf("unknown title reference %q", item.Title)}
			}
		}
		if item.Image.IsSet() {
			if _, ok := f.Images[item.Image]; !ok {
				return nil, nil, &Error{Kind: ErrKindReference, Path: path, Item: i,
					Message: fmt.Sprintf("unknown image reference %q", item.Image)}
			}
		}
	}

	c, err := catalog.New(f.Items)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyCatalog) {
			return nil, nil, &Error{Kind: ErrKindEmpty, Path: path, Item: -1, Message: "manifest has no items", Err: err}
		}
		return nil, nil, err
	}

	bundle := resources.NewBundle()
	for ref, text := range f.Strings {
		bundle.SetText(ref, text)
	}

	dir := filepath.Dir(path)
	for ref, file := range f.Images {
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		img, err := resources.DecodeFile(file)
		if err != nil {
			return nil, nil, &Error{Kind: ErrKindImage, Path: path, Item: -1,
				Message: fmt.Sprintf("image %q", ref), Err: err}
		}
		bundle.SetPicture(ref, img)
	}

	logging.Debug("Manifest resolved",
		zap.String("path", path),
		zap.Int("strings", len(f.Strings)),
		zap.Int("images", len(f.Images)),
	)

	return c, bundle, nil
}
