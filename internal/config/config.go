// Package config provides YAML-based configuration loading for the tile
// viewer: viewport and camera scrolling, terminal rendering, content
// directories, logging, storage and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete viewer configuration.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Camera   CameraConfig   `yaml:"camera"`
	Render   RenderConfig   `yaml:"render"`
	Assets   AssetsConfig   `yaml:"assets"`
	Levels   LevelsConfig   `yaml:"levels"`
	Log      LogConfig      `yaml:"log"`
	Storage  StorageConfig  `yaml:"storage"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// ViewportConfig is the viewport size in world pixels, used when no
// terminal is attached (inspect, snapshot).
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CameraConfig defines scrolling.
type CameraConfig struct {
	ScrollX float64 `yaml:"scroll_x"` // pixels per horizontal move
	ScrollY float64 `yaml:"scroll_y"` // pixels per vertical move
}

// RenderConfig maps world pixels onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // world pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // world pixels per terminal row (two half-blocks)
	TickRate   int     `yaml:"tick_rate"`   // frames per second
}

// AssetsConfig points at an image directory. Empty means the embedded pack.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// LevelsConfig points at a level directory. Empty means the embedded pack.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// StorageConfig locates the sqlite database for positions and bookmarks.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig configures `tiles serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate rejects configurations the viewer cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Camera.ScrollX <= 0 || c.Camera.ScrollY <= 0 {
		errs = append(errs, fmt.Errorf("camera scroll step must be positive, got %vx%v", c.Camera.ScrollX, c.Camera.ScrollY))
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("render cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight))
	}
	if c.Render.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("render tick rate must be positive, got %d", c.Render.TickRate))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}
