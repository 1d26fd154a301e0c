package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/asset"
	"github.com/vovakirdan/tui-tiles/internal/platform/snapshot"
)

var (
	flagSnapshotX      float64
	flagSnapshotY      float64
	flagSnapshotOut    string
	flagSnapshotAnchor string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <level>",
	Short: "Render a camera view to a PNG image",
	Long: `Render the view of a camera of the configured viewport size to a PNG,
using the full-resolution tile images.

Examples:
  tiles snapshot meadow
  tiles snapshot meadow --x 512 --y 448 -o centre.png
  tiles snapshot meadow --anchor topleft --x 0 --y 96`,
	Args: cobra.ExactArgs(1),
	Run:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().Float64Var(&flagSnapshotX, "x", 0, "Camera X in world pixels (see --anchor)")
	snapshotCmd.Flags().Float64Var(&flagSnapshotY, "y", 0, "Camera Y in world pixels (see --anchor)")
	snapshotCmd.Flags().StringVarP(&flagSnapshotOut, "output", "o", "", "Output file (default: <level>.png)")
	snapshotCmd.Flags().StringVar(&flagSnapshotAnchor, "anchor", anchorCenter, "What --x/--y position: center or topleft")
}

func runSnapshot(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg, os.Stderr, "tiles")
	reg := loadWorlds(cfg, logger, asset.KindImage)

	w, err := reg.Get(args[0])
	if err != nil {
		fail("%v\nRun 'tiles list' to see available levels.", err)
	}

	cam, err := offlineCamera(cmd, cfg, w, flagSnapshotX, flagSnapshotY, flagSnapshotAnchor)
	if err != nil {
		fail("%v", err)
	}
	sub := w.Grid.VisibleSubset(cam.Rect())
	viewW, viewH := cam.ViewSize()
	img := snapshot.Render(sub, int(math.Ceil(viewW)), int(math.Ceil(viewH)))

	out := flagSnapshotOut
	if out == "" {
		out = w.Level.ID + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		fail("%v", err)
	}
	if err := snapshot.Encode(f, img); err != nil {
		f.Close()
		fail("%v", err)
	}
	if err := f.Close(); err != nil {
		fail("%v", err)
	}

	logger.Info("snapshot written", "path", out, "x", cam.X(), "y", cam.Y())
	fmt.Println(out)
}
