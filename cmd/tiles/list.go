package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/asset"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows every level found in the level directory (or the built-in pack) with its size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg, io.Discard, "tiles")
	reg := loadWorlds(cfg, logger, asset.KindGlyph)

	worlds := reg.List()
	if len(worlds) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, w := range worlds {
		if len(w.ID) > maxIDLen {
			maxIDLen = len(w.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %-11s  %s\n", maxIDLen, "ID", "Tiles", "Pixels", "Title")
	fmt.Printf("  %-*s  %-9s  %-11s  %s\n", maxIDLen, "--", "-----", "------", "-----")

	// Print levels
	for _, w := range worlds {
		fmt.Printf("  %-*s  %-9s  %-11s  %s\n", maxIDLen, w.ID,
			fmt.Sprintf("%dx%d", w.Columns, w.Rows),
			fmt.Sprintf("%.0fx%.0f", w.Width, w.Height),
			w.Title,
		)
	}

	fmt.Println()
	fmt.Println("Run 'tiles view <id>' to explore a level.")
}
