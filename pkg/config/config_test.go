package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if want := "/tmp/xdg/babelgallery/config.toml"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if want := filepath.Join(home, ".config", "babelgallery", "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
output_dir = "out"
workers = 3

[server]
addr = "127.0.0.1:9000"
burst = 5
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.Workers != 3 {
		t.Errorf("got output_dir=%q workers=%d", cfg.OutputDir, cfg.Workers)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.Burst != 5 {
		t.Errorf("got server %+v", cfg.Server)
	}
	// Unset keys keep defaults.
	if cfg.Server.Rate != DefaultRate {
		t.Errorf("Server.Rate = %g, want %g", cfg.Server.Rate, DefaultRate)
	}
	if cfg.Preview.Width != DefaultPreviewWidth {
		t.Errorf("Preview.Width = %d, want %d", cfg.Preview.Width, DefaultPreviewWidth)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "workers = "},
		{"unknown key", "colour = \"red\""},
		{"zero workers", "workers = 0"},
		{"no port", "[server]\naddr = \"localhost\""},
		{"negative rate", "[server]\nrate = -1.0"},
		{"zero burst", "[server]\nburst = 0"},
		{"zero preview", "[preview]\nwidth = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.IsValidation(err) {
				t.Errorf("error %v is not a validation error", err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[preview]\nwidth = 128\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Preview.Width != 128 {
		t.Errorf("Preview.Width = %d, want 128", cfg.Preview.Width)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = "exports"
	cfg.Server.Rate = 2.5

	text, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v\n%s", err, text)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
