// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hearth-home/hearth/lib/protocol"
)

// EnvConfigPath names the config file when the flag is not given.
const EnvConfigPath = "HEARTH_CONFIG"

// EnvSocketPath overrides the listen socket path regardless of the
// config file.
const EnvSocketPath = "HEARTH_LED_SOCKET"

// Duration is a time.Duration that unmarshals from YAML strings like
// "150ms" or "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler via time.ParseDuration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config is the panel daemon's configuration.
type Config struct {
	// SocketPath is the Unix socket the daemon listens on.
	SocketPath string `yaml:"socket_path"`

	// FramebufferPath is the panel's framebuffer device node.
	FramebufferPath string `yaml:"framebuffer_path"`

	// Mock forces mock mode even when hardware is present. Hardware
	// init failure degrades to mock mode regardless of this setting.
	Mock bool `yaml:"mock"`

	// Preview renders each swapped frame to the terminal. "auto"
	// enables it when stdout is a terminal; "on" and "off" force it.
	Preview string `yaml:"preview"`

	// GIFDir is where show_gif resolves <name>.gif files.
	GIFDir string `yaml:"gif_dir"`

	// CycleInterval is the default pair rotation interval for the
	// cycling user-story layout, used when the command carries none.
	CycleInterval Duration `yaml:"cycle_interval"`

	// ScrollInterval is the per-pixel delay of the scrolling title on
	// the single layout.
	ScrollInterval Duration `yaml:"scroll_interval"`

	// FrameDelay is the default per-frame delay for named animations.
	FrameDelay Duration `yaml:"frame_delay"`

	// JoinTimeout bounds how long a cancelled render thread is waited
	// on before being abandoned (leaked but logged).
	JoinTimeout Duration `yaml:"join_timeout"`

	// PopTimeout is the worker's bounded queue wait; shutdown is
	// observed between waits.
	PopTimeout Duration `yaml:"pop_timeout"`
}

// Default returns the configuration the daemon runs with when no file
// is given.
func Default() Config {
	return Config{
		SocketPath:      protocol.DefaultSocketPath,
		FramebufferPath: "/dev/fb0",
		Preview:         "auto",
		GIFDir:          "/var/lib/hearth/gifs",
		CycleInterval:   Duration(10 * time.Second),
		ScrollInterval:  Duration(150 * time.Millisecond),
		FrameDelay:      Duration(200 * time.Millisecond),
		JoinTimeout:     Duration(time.Second),
		PopTimeout:      Duration(500 * time.Millisecond),
	}
}

// Load reads the config file at path, layered over Default(). An empty
// path consults HEARTH_CONFIG; with neither set, Default() is returned
// as-is. HEARTH_LED_SOCKET, when set, wins over both.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if socket := os.Getenv(EnvSocketPath); socket != "" {
		cfg.SocketPath = socket
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks for values the daemon cannot run with.
func (c Config) Validate() error {
	if c.SocketPath == "" {
		return fmt.Errorf("socket_path must not be empty")
	}
	switch c.Preview {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("preview must be auto, on, or off (got %q)", c.Preview)
	}
	for name, d := range map[string]Duration{
		"cycle_interval":  c.CycleInterval,
		"scroll_interval": c.ScrollInterval,
		"frame_delay":     c.FrameDelay,
		"join_timeout":    c.JoinTimeout,
		"pop_timeout":     c.PopTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive (got %s)", name, time.Duration(d))
		}
	}
	return nil
}
