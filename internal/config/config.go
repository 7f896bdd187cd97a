package config

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Default values for configuration
const (
	DefaultTickRate   = 60
	DefaultHoldMillis = 150 // Terminals only report presses, so a key counts as held this long
	MaxTickRate       = 1000
	MinHoldMillis     = 10
	MaxHoldMillis     = 2000
)

// Keys maps each player action to a key name understood by the ui package
type Keys struct {
	P1Up     string `toml:"p1_up"`
	P1Down   string `toml:"p1_down"`
	P1Launch string `toml:"p1_launch"`
	P2Up     string `toml:"p2_up"`
	P2Down   string `toml:"p2_down"`
	P2Launch string `toml:"p2_launch"`
}

// DefaultKeys returns the stock bindings: W/S/Space and Up/Down/Enter
func DefaultKeys() Keys {
	return Keys{
		P1Up:     "w",
		P1Down:   "s",
		P1Launch: "space",
		P2Up:     "up",
		P2Down:   "down",
		P2Launch: "enter",
	}
}

// Config holds the application configuration
type Config struct {
	TickRate     int    `toml:"tick_rate"`
	Mute         bool   `toml:"mute"`
	LogFile      string `toml:"log_file"`
	SpectateAddr string `toml:"spectate"`
	WatchURL     string `toml:"watch"`
	HoldMillis   int    `toml:"hold_ms"`
	Keys         Keys   `toml:"keys"`
}

// Default returns the configuration used when nothing is specified
func Default() *Config {
	return &Config{
		TickRate:   DefaultTickRate,
		HoldMillis: DefaultHoldMillis,
		Keys:       DefaultKeys(),
	}
}

// TickInterval is the wall-clock time between simulation steps
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// HoldWindow is how long a key press keeps counting as held
func (c *Config) HoldWindow() time.Duration {
	return time.Duration(c.HoldMillis) * time.Millisecond
}

// IsWatcher reports whether the app only watches a remote match
func (c *Config) IsWatcher() bool {
	return c.WatchURL != ""
}

// LoadFile reads a TOML configuration file on top of the defaults
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ParseArgs parses command line arguments and returns a Config.
// Flags that are set explicitly override values from --config.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pongduel", flag.ContinueOnError)

	file := fs.String("config", "", "TOML config file")
	tickRate := fs.Int("tick-rate", DefaultTickRate, "simulation steps per second (1-1000)")
	mute := fs.Bool("mute", false, "disable sound effects")
	logFile := fs.String("log", "", "write logs to this file")
	spectate := fs.String("spectate", "", "serve spectators on this address (e.g. :5555)")
	watch := fs.String("watch", "", "watch a match at this websocket URL")
	hold := fs.Int("hold-ms", DefaultHoldMillis, "milliseconds a key press counts as held")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()
	if *file != "" {
		loaded, err := LoadFile(*file)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tick-rate":
			cfg.TickRate = *tickRate
		case "mute":
			cfg.Mute = *mute
		case "log":
			cfg.LogFile = *logFile
		case "spectate":
			cfg.SpectateAddr = *spectate
		case "watch":
			cfg.WatchURL = *watch
		case "hold-ms":
			cfg.HoldMillis = *hold
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and combinations
func (c *Config) Validate() error {
	// Validate: cannot serve spectators while watching someone else
	if c.SpectateAddr != "" && c.WatchURL != "" {
		return errors.New("cannot specify both --spectate and --watch")
	}

	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return fmt.Errorf("tick rate must be between 1 and %d, got %d", MaxTickRate, c.TickRate)
	}

	if c.HoldMillis < MinHoldMillis || c.HoldMillis > MaxHoldMillis {
		return fmt.Errorf("hold-ms must be between %d and %d, got %d", MinHoldMillis, MaxHoldMillis, c.HoldMillis)
	}

	return c.Keys.Validate()
}

// Validate checks that every action has a key and no key is bound twice
func (k Keys) Validate() error {
	bindings := k.Map()
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	seen := make(map[string]string, len(bindings))
	for _, action := range actions {
		key := strings.ToLower(strings.TrimSpace(bindings[action]))
		if key == "" {
			return fmt.Errorf("no key bound to %s", action)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", key, other, action)
		}
		seen[key] = action
	}
	return nil
}

// Map returns the bindings keyed by action name
func (k Keys) Map() map[string]string {
	return map[string]string{
		"p1_up":     k.P1Up,
		"p1_down":   k.P1Down,
		"p1_launch": k.P1Launch,
		"p2_up":     k.P2Up,
		"p2_down":   k.P2Down,
		"p2_launch": k.P2Launch,
	}
}
