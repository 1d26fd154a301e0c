package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 800,
		},
		Camera: CameraConfig{
			ScrollX: 10,
			ScrollY: 10,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 16,
			TickRate:   30,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path: "~/.tiles/tiles.db",
		},
		SSH: SSHConfig{
			Address:     "0.0.0.0:2323",
			HostKey:     "~/.tiles/ssh_host_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}
