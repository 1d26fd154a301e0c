// Package level loads declarative level files and builds tile worlds from
// them. A level names its tile and decoration prototypes, maps layout
// characters to tile names and places decorations on individual tiles.
package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/level/formats"
)

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("level not found")

//go:embed defaults
var defaultFS embed.FS

// DefaultLevels returns the embedded level pack.
func DefaultLevels() fs.FS {
	sub, err := fs.Sub(defaultFS, "defaults/levels")
	if err != nil {
		panic(err)
	}
	return sub
}

// DefaultAssets returns the images used by the embedded level pack.
func DefaultAssets() fs.FS {
	sub, err := fs.Sub(defaultFS, "defaults/assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Level represents a complete level definition.
type Level struct {
	formats.Level
	FilePath string
}

// Size returns the layout size in tiles.
func (l *Level) Size() (rows, cols int) {
	rows = len(l.Layout)
	if rows > 0 {
		cols = len([]rune(l.Layout[0]))
	}
	return rows, cols
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a level loader over fsys. A nil logger uses the default.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{fsys: fsys, logger: logger}
}

// NewDirLoader creates a level loader for a directory on disk.
func NewDirLoader(dir string, logger *log.Logger) *Loader {
	return NewLoader(os.DirFS(dir), logger)
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			l.logger.Warn("skipping level file", "path", p, "err", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("level: walking levels: %w", err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("level: reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("level: parsing file %s: %w", p, err)
	}
	if parsed.Generate != nil {
		parsed = Generate(parsed)
	}

	return Level{Level: parsed, FilePath: p}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level: %w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
