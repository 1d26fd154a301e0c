// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string                    `yaml:"id"`
	Name        string                    `yaml:"name"`
	TileSize    YAMLSize                  `yaml:"tile_size"`
	Tiles       map[string]YAMLTile       `yaml:"tiles"`
	Decorations map[string]YAMLDecoration `yaml:"decorations"`
	Legend      map[string]string         `yaml:"legend"`
	Layout      []string                  `yaml:"layout"`
	Overlay     []YAMLPlacement           `yaml:"overlay,omitempty"`
	Generate    *YAMLGenerate             `yaml:"generate,omitempty"`
	Metadata    map[string]string         `yaml:"metadata,omitempty"`
}

// YAMLSize represents tile dimensions in pixels.
type YAMLSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLTile describes a tile prototype.
type YAMLTile struct {
	Image    string `yaml:"image"`
	Walkable bool   `yaml:"walkable"`
}

// YAMLDecoration describes a decoration prototype.
type YAMLDecoration struct {
	Image string `yaml:"image"`
}

// YAMLPlacement puts one decoration on one tile.
type YAMLPlacement struct {
	Row        int    `yaml:"row"`
	Col        int    `yaml:"col"`
	Decoration string `yaml:"decoration"`
}

// YAMLGenerate asks for a random layout instead of a drawn one.
type YAMLGenerate struct {
	Rows int                `yaml:"rows"`
	Cols int                `yaml:"cols"`
	Seed int64              `yaml:"seed"`
	Fill map[string]float64 `yaml:"fill"`
}

// TileDef is a parsed tile prototype definition.
type TileDef struct {
	Image    string
	Walkable bool
}

// Placement is a parsed decoration placement.
type Placement struct {
	Row        int
	Col        int
	Decoration string
}

// Generator describes a seeded random layout. Fill maps tile names to
// relative weights.
type Generator struct {
	Rows int
	Cols int
	Seed int64
	Fill map[string]float64
}

// Level represents a parsed level ready for use.
type Level struct {
	ID          string
	Name        string
	TileW       float64
	TileH       float64
	Tiles       map[string]TileDef
	Decorations map[string]string // name -> image path
	Legend      map[rune]string
	Layout      []string
	Overlay     []Placement
	Generate    *Generator
	Metadata    map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}

	level := Level{
		ID:          yl.ID,
		Name:        yl.Name,
		TileW:       yl.TileSize.W,
		TileH:       yl.TileSize.H,
		Tiles:       make(map[string]TileDef, len(yl.Tiles)),
		Decorations: make(map[string]string, len(yl.Decorations)),
		Legend:      make(map[rune]string, len(yl.Legend)),
		Layout:      yl.Layout,
		Metadata:    yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	for name, t := range yl.Tiles {
		level.Tiles[name] = TileDef{Image: t.Image, Walkable: t.Walkable}
	}
	for name, d := range yl.Decorations {
		level.Decorations[name] = d.Image
	}

	// Legend keys are single characters
	for key, name := range yl.Legend {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return Level{}, fmt.Errorf("legend key %q must be a single character", key)
		}
		level.Legend[r] = name
	}

	for _, p := range yl.Overlay {
		level.Overlay = append(level.Overlay, Placement{Row: p.Row, Col: p.Col, Decoration: p.Decoration})
	}

	if g := yl.Generate; g != nil {
		if len(yl.Layout) > 0 {
			return Level{}, fmt.Errorf("layout and generate are mutually exclusive")
		}
		if g.Rows <= 0 || g.Cols <= 0 {
			return Level{}, fmt.Errorf("generate: size %dx%d must be positive", g.Rows, g.Cols)
		}
		var total float64
		for name, weight := range g.Fill {
			if weight < 0 {
				return Level{}, fmt.Errorf("generate: negative weight for %q", name)
			}
			total += weight
		}
		if total <= 0 {
			return Level{}, fmt.Errorf("generate: fill needs at least one positive weight")
		}
		level.Generate = &Generator{Rows: g.Rows, Cols: g.Cols, Seed: g.Seed, Fill: g.Fill}
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
