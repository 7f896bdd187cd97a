package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pongduel.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("expected tick rate %d, got %d", DefaultTickRate, cfg.TickRate)
	}
	if cfg.HoldMillis != DefaultHoldMillis {
		t.Errorf("expected hold %d, got %d", DefaultHoldMillis, cfg.HoldMillis)
	}
	if cfg.Mute {
		t.Error("expected sound on by default")
	}
	if cfg.IsWatcher() {
		t.Error("expected local play by default")
	}
	if cfg.Keys != DefaultKeys() {
		t.Errorf("expected default keys, got %+v", cfg.Keys)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--tick-rate", "120", "--mute", "--log", "pong.log", "--spectate", ":5555", "--hold-ms", "200"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TickRate != 120 {
		t.Errorf("expected tick rate 120, got %d", cfg.TickRate)
	}
	if !cfg.Mute {
		t.Error("expected Mute to be true")
	}
	if cfg.LogFile != "pong.log" {
		t.Errorf("expected log file 'pong.log', got '%s'", cfg.LogFile)
	}
	if cfg.SpectateAddr != ":5555" {
		t.Errorf("expected spectate ':5555', got '%s'", cfg.SpectateAddr)
	}
	if cfg.HoldWindow() != 200*time.Millisecond {
		t.Errorf("expected hold window 200ms, got %v", cfg.HoldWindow())
	}
}

func TestParseArgs_WatchMode(t *testing.T) {
	cfg, err := ParseArgs([]string{"--watch", "ws://localhost:5555/watch"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsWatcher() {
		t.Error("expected watcher mode")
	}
	if cfg.WatchURL != "ws://localhost:5555/watch" {
		t.Errorf("unexpected watch URL '%s'", cfg.WatchURL)
	}
}

func TestParseArgs_CannotBeBoth(t *testing.T) {
	args := []string{"--spectate", ":5555", "--watch", "ws://localhost:5555/watch"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error when both --spectate and --watch specified")
	}
}

func TestParseArgs_InvalidTickRate(t *testing.T) {
	tests := []struct {
		name string
		rate string
	}{
		{"zero", "0"},
		{"negative", "-5"},
		{"too high", "1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs([]string{"--tick-rate", tt.rate})
			if err == nil {
				t.Errorf("expected error for tick rate %s", tt.rate)
			}
		})
	}
}

func TestParseArgs_InvalidHold(t *testing.T) {
	for _, v := range []string{"0", "5", "5000"} {
		if _, err := ParseArgs([]string{"--hold-ms", v}); err == nil {
			t.Errorf("expected error for hold-ms %s", v)
		}
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	if _, err := ParseArgs([]string{"--server"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestParseArgs_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
tick_rate = 30
mute = true
log_file = "match.log"

[keys]
p1_launch = "f"
p2_launch = "l"
`)

	cfg, err := ParseArgs([]string{"--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("expected tick rate 30, got %d", cfg.TickRate)
	}
	if !cfg.Mute {
		t.Error("expected Mute from file")
	}
	if cfg.LogFile != "match.log" {
		t.Errorf("expected log file from config, got '%s'", cfg.LogFile)
	}
	if cfg.Keys.P1Launch != "f" || cfg.Keys.P2Launch != "l" {
		t.Errorf("expected launch keys f/l, got %s/%s", cfg.Keys.P1Launch, cfg.Keys.P2Launch)
	}
	// Keys not in the file keep their defaults
	if cfg.Keys.P1Up != "w" || cfg.Keys.P2Down != "down" {
		t.Errorf("expected default movement keys, got %+v", cfg.Keys)
	}
}

func TestParseArgs_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "tick_rate = 30\nmute = true\n")

	cfg, err := ParseArgs([]string{"--config", path, "--tick-rate", "90", "--mute=false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TickRate != 90 {
		t.Errorf("expected flag to override tick rate, got %d", cfg.TickRate)
	}
	if cfg.Mute {
		t.Error("expected flag to override mute")
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "tick_rate = 60\nspeed = 9000\n"},
		{"wrong type", "tick_rate = \"fast\"\n"},
		{"broken syntax", "tick_rate = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestKeys_Validate(t *testing.T) {
	keys := DefaultKeys()
	if err := keys.Validate(); err != nil {
		t.Fatalf("default keys should be valid: %v", err)
	}

	dup := DefaultKeys()
	dup.P2Up = "W"
	if err := dup.Validate(); err == nil {
		t.Error("expected error for key bound twice")
	}

	empty := DefaultKeys()
	empty.P1Launch = " "
	if err := empty.Validate(); err == nil {
		t.Error("expected error for empty binding")
	}
}

func TestTickInterval(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 50
	if cfg.TickInterval() != 20*time.Millisecond {
		t.Errorf("expected 20ms, got %v", cfg.TickInterval())
	}
}

func TestDefaultConstants(t *testing.T) {
	if DefaultTickRate != 60 {
		t.Errorf("expected DefaultTickRate 60, got %d", DefaultTickRate)
	}
	if DefaultHoldMillis != 150 {
		t.Errorf("expected DefaultHoldMillis 150, got %d", DefaultHoldMillis)
	}
}
