package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/storage"
)

var (
	flagBookmarkDelete string
	flagBookmarkUser   string
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks <level>",
	Short: "List or delete saved camera positions",
	Long: `Show the bookmarks saved for a level and the position the viewer will
resume from. Bookmarks are created in the viewer with M. Positions saved
through 'tiles serve' belong to the SSH user; select them with --user.

Examples:
  tiles bookmarks meadow
  tiles bookmarks meadow --delete mark-2
  tiles bookmarks meadow --user alice`,
	Args: cobra.ExactArgs(1),
	Run:  runBookmarks,
}

func init() {
	bookmarksCmd.Flags().StringVar(&flagBookmarkDelete, "delete", "", "Delete the named bookmark")
	bookmarksCmd.Flags().StringVar(&flagBookmarkUser, "user", "", "SSH user whose bookmarks to show (default: local)")
}

func runBookmarks(_ *cobra.Command, args []string) {
	levelID := args[0]
	cfg := loadConfig()
	logger := newLogger(cfg, io.Discard, "tiles")

	// Open the database
	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening positions database: %v", err)
	}
	defer db.Close()
	store := db.ForUser(flagBookmarkUser)

	if flagBookmarkDelete != "" {
		deleted, err := store.DeleteBookmark(levelID, flagBookmarkDelete)
		if err != nil {
			fail("%v", err)
		}
		if !deleted {
			fail("no bookmark %q for level %q", flagBookmarkDelete, levelID)
		}
		logger.Info("bookmark deleted", "level", levelID, "name", flagBookmarkDelete, "user", flagBookmarkUser)
		fmt.Printf("Deleted %s\n", flagBookmarkDelete)
		return
	}

	marks, err := store.Bookmarks(levelID)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Bookmarks - %s\n", levelID)
	fmt.Println()

	if pos, ok, err := store.LastPosition(levelID); err == nil && ok {
		fmt.Printf("Resumes at (%.0f, %.0f), saved %s\n", pos.X, pos.Y, pos.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Println()
	}

	if len(marks) == 0 {
		fmt.Println("No bookmarks saved yet.")
		fmt.Println()
		fmt.Printf("Press M in 'tiles view %s' to save one.\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-14s  %-8s  %-8s  %s\n", "Name", "X", "Y", "Date")
	fmt.Printf("  %-14s  %-8s  %-8s  %s\n", "----", "-", "-", "----")

	for _, b := range marks {
		fmt.Printf("  %-14s  %-8.0f  %-8.0f  %s\n", b.Name, b.X, b.Y, b.CreatedAt.Format("2006-01-02 15:04"))
	}
}
