// tiles is a terminal viewer for tile-based worlds.
//
// Usage:
//
//	tiles list                 - List available levels
//	tiles view [level]         - Explore a level (menu when no level is given)
//	tiles inspect <level>      - Print the tiles visible from a camera position
//	tiles snapshot <level>     - Render a camera view to a PNG file
//	tiles bookmarks <level>    - List or delete saved camera positions
//	tiles serve                - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.tiles/configs, ./configs)
//	--db <path>         - Database path (default: ~/.tiles/tiles.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Tiles - Explore tile worlds in your terminal",
	Long: `Tiles renders large tile-based worlds in the terminal. Only the tiles
under the camera are drawn, so worlds of any size scroll smoothly.

Available commands:
  list       - Show all available levels
  view       - Explore a level interactively
  inspect    - Print grid stats and the visible tiles for a camera position
  snapshot   - Render a camera view to a PNG image
  bookmarks  - Manage saved camera positions
  serve      - Start SSH server for remote viewing

Examples:
  tiles list
  tiles view meadow
  tiles inspect meadow --x 400 --y 300
  tiles snapshot meadow -o meadow.png
  tiles serve --ssh :2323`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to positions database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error the way every subcommand reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
