package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2323").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tiles/ssh_host_ed25519.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Render carries the cell size and frame rate every session starts with.
	CellW, CellH float64
	TickRate     int

	// Viewer options shared by every session.
	Viewer ViewerOptions
}

// SSHServerConfigFrom builds the server settings from the loaded configuration.
func SSHServerConfigFrom(cfg *config.Config, logger *log.Logger) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.SSH.IdleTimeout,
		CellW:       cfg.Render.CellWidth,
		CellH:       cfg.Render.CellHeight,
		TickRate:    cfg.Render.TickRate,
		Viewer: ViewerOptions{
			StepX:  cfg.Camera.ScrollX,
			StepY:  cfg.Camera.ScrollY,
			Logger: logger,
		},
	}
}

// SSHServer wraps a Wish SSH server that shows the world viewer.
// All sessions share one registry of worlds; each gets its own camera.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	registry *registry.Registry
	store    *storage.Store
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// positions and bookmarks are not persisted.
func NewSSHServer(cfg SSHServerConfig, reg *registry.Registry, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tiles-ssh",
		})
	}
	if cfg.Viewer.Logger == nil {
		cfg.Viewer.Logger = logger
	}

	srv := &SSHServer{
		config:   cfg,
		registry: reg,
		store:    store,
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" || hostKeyPath[0] == '~' {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		if hostKeyPath == "" {
			hostKeyPath = filepath.Join(home, ".tiles", "ssh_host_ed25519")
		} else {
			hostKeyPath = filepath.Join(home, hostKeyPath[1:])
		}
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// runtimeConfig sizes a session from its PTY.
func (s *SSHServer) runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	if s.config.CellW > 0 {
		cfg.CellW = s.config.CellW
	}
	if s.config.CellH > 0 {
		cfg.CellH = s.config.CellH
	}
	if s.config.TickRate > 0 {
		cfg.TickRate = s.config.TickRate
	}
	return cfg
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := s.runtimeConfig(pty.Window.Width, pty.Window.Height)

	opts := s.config.Viewer
	opts.Logger = opts.Logger.With("user", sshSession.User())

	model, err := NewSessionModel(s.registry, s.sessionStore(sshSession.User()), cfg, opts, "")
	if err != nil {
		s.logger.Error("cannot start session", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionStore scopes positions and bookmarks to the SSH user.
func (s *SSHServer) sessionStore(user string) *storage.Store {
	if s.store == nil {
		return nil
	}
	return s.store.ForUser(user)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "worlds", s.registry.Len())

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errc:
		return fmt.Errorf("tui: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
