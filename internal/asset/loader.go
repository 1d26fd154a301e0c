package asset

import (
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"strings"
)

// Loader performs the external load of an image resource.
type Loader interface {
	Load(path string) (image.Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (image.Image, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (image.Image, error) {
	return f(path)
}

// FSLoader decodes PNG files from a file system, either a directory
// (os.DirFS) or the embedded default asset pack.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Load opens and decodes the PNG at path. A leading slash is accepted and
// treated as the root of the file system.
func (l *FSLoader) Load(path string) (image.Image, error) {
	name := strings.TrimPrefix(path, "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrInvalid)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
