package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/asset"
	"github.com/vovakirdan/tui-tiles/internal/camera"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/level"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds the command logger at the configured level.
func newLogger(cfg config.Config, w io.Writer, prefix string) *log.Logger {
	lvl, err := cfg.LogLevel()
	if err != nil {
		fail("%v", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

// openLogFile opens ~/.tiles/tiles.log for commands that own the terminal.
// Logging is dropped when the file cannot be opened.
func openLogFile() io.WriteCloser {
	home, err := os.UserHomeDir()
	if err != nil {
		return nopCloser{io.Discard}
	}
	dir := filepath.Join(home, ".tiles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nopCloser{io.Discard}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tiles.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nopCloser{io.Discard}
	}
	return f
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// levelLoader reads levels from the configured directory or the embedded pack.
func levelLoader(cfg config.Config, logger *log.Logger) *level.Loader {
	if cfg.Levels.Dir != "" {
		return level.NewDirLoader(expandHome(cfg.Levels.Dir), logger)
	}
	return level.NewLoader(level.DefaultLevels(), logger)
}

// assetFS returns the configured image directory or the embedded pack.
func assetFS(cfg config.Config) fs.FS {
	if cfg.Assets.Dir != "" {
		return os.DirFS(expandHome(cfg.Assets.Dir))
	}
	return level.DefaultAssets()
}

// loadWorlds builds every level, loading images as kind.
func loadWorlds(cfg config.Config, logger *log.Logger, kind asset.Kind) *registry.Registry {
	cache := asset.NewCache(asset.NewFSLoader(assetFS(cfg)), logger)
	reg, err := registry.Load(levelLoader(cfg, logger), cache, kind, logger)
	if err != nil {
		fail("%v", err)
	}
	return reg
}

// openStore opens the positions database. The viewer works without it,
// so failures are logged and nil is returned.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open positions database", "path", cfg.Storage.Path, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the viewer for a terminal of width x height cells.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.CellW = cfg.Render.CellWidth
	rc.CellH = cfg.Render.CellHeight
	rc.TickRate = cfg.Render.TickRate
	return rc
}

// Camera anchors for --anchor: what the --x and --y flags position.
const (
	anchorCenter  = "center"
	anchorTopLeft = "topleft"
)

// offlineCamera places a camera of the configured viewport size over w.
// It starts at the top-left; the --x and --y flags of cmd move its centre,
// or its top-left corner when anchor is "topleft".
func offlineCamera(cmd *cobra.Command, cfg config.Config, w *level.World, x, y float64, anchor string) (*camera.Camera, error) {
	cam := camera.New(
		cfg.Viewport.Width, cfg.Viewport.Height,
		camera.BoundsOf(w.Grid.Bounds()),
		cfg.Camera.ScrollX, cfg.Camera.ScrollY,
	)

	var px, py float64
	switch anchor {
	case anchorCenter, "":
		px, py = cam.X(), cam.Y()
	case anchorTopLeft:
		px, py = cam.TopLeft()
	default:
		return nil, fmt.Errorf("unknown anchor %q (expected %s or %s)", anchor, anchorCenter, anchorTopLeft)
	}
	if cmd.Flags().Changed("x") {
		px = x
	}
	if cmd.Flags().Changed("y") {
		py = y
	}

	if anchor == anchorTopLeft {
		cam.SetTopLeft(px, py)
	} else {
		cam.CenterOn(px, py)
	}
	return cam, nil
}
