package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "srs.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
canvas:
  scale: 25
  png: out/scene.png
script:
  timeout: 250ms
log:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("canvas size = %vx%v, want defaults", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Scale != 25 {
		t.Errorf("scale = %v, want 25", cfg.Canvas.Scale)
	}
	if cfg.Canvas.PNG != "out/scene.png" {
		t.Errorf("png = %q", cfg.Canvas.PNG)
	}
	if cfg.Script.Timeout != 250*time.Millisecond {
		t.Errorf("timeout = %s, want 250ms", cfg.Script.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "canvas: [", "parse config"},
		{"negative scale", "canvas:\n  scale: -1\n", "scale"},
		{"zero size", "canvas:\n  width: 0\n", "canvas size"},
		{"bad level", "log:\n  level: loud\n", "log level"},
		{"zero timeout", "script:\n  timeout: 0s\n", "timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}
