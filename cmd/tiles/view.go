package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/asset"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [level]",
	Short: "Explore a level",
	Long: `Open a level in the terminal viewer. Without a level, a level picker is shown.

The camera starts where you last left the level.

Controls:
  Arrows/hjkl/wasd - Scroll
  M                - Bookmark the current position
  B                - Open bookmarks
  Ctrl+S           - Save a screenshot (~/.tiles/screenshots)
  Esc              - Back to the level picker
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Logs are written to ~/.tiles/tiles.log.

Examples:
  tiles view
  tiles view meadow
  tiles view meadow --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func runView(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	// The terminal belongs to the viewer; logs go to a file.
	logFile := openLogFile()
	defer logFile.Close()
	logger := newLogger(cfg, logFile, "tiles")

	reg := loadWorlds(cfg, logger, asset.KindGlyph)

	startLevel := ""
	if len(args) == 1 {
		startLevel = args[0]
		if !reg.Exists(startLevel) {
			fail("unknown level %q\nRun 'tiles list' to see available levels.", startLevel)
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	store := openStore(cfg, logger)

	opts := tui.ViewerOptions{
		StepX:  cfg.Camera.ScrollX,
		StepY:  cfg.Camera.ScrollY,
		Logger: logger,
	}
	model, err := tui.NewSessionModel(reg, store, runtimeConfig(cfg, width, height), opts, startLevel)
	if err != nil {
		fail("%v", err)
	}

	runErr := tui.Run(model)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running viewer: %v", runErr)
	}
}
