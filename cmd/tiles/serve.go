package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/asset"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tiles SSH server",
	Long: `Start an SSH server that lets users connect and explore levels.

Worlds are loaded once and shared by every connection; each SSH session
gets its own camera and level picker. Positions and bookmarks are stored
per SSH user name; see them with 'tiles bookmarks <level> --user <name>'.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses ssh.host_key from the config (auto-generated if missing)

Examples:
  tiles serve                           # Listen on the configured address
  tiles serve --ssh :2222               # Listen on port 2222
  tiles serve --host-key ./my_host_key  # Use specific host key
  tiles serve --db ./tiles.db           # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	logger := newLogger(cfg, os.Stderr, "tiles-ssh")
	reg := loadWorlds(cfg, logger, asset.KindGlyph)

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(&cfg, logger), reg, store, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting tiles SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
