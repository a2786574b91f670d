// Package config loads babelgallery settings from a TOML file.
//
// The file is optional. Missing keys keep their defaults, and command-line
// flags override whatever the file sets.
//
//	output_dir = "gallery"
//	workers = 8
//
//	[server]
//	addr = ":8080"
//	rate = 20.0
//	burst = 40
//
//	[preview]
//	width = 320
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
)

const (
	appName  = "babelgallery"
	fileName = "config.toml"
)

// Defaults.
const (
	DefaultOutputDir    = "."
	DefaultAddr         = ":8080"
	DefaultRate         = 20.0
	DefaultBurst        = 40
	DefaultPreviewWidth = 320
)

// Config holds every tunable setting.
type Config struct {
	OutputDir string  `toml:"output_dir"`
	Workers   int     `toml:"workers"`
	Server    Server  `toml:"server"`
	Preview   Preview `toml:"preview"`
}

// Server configures the HTTP gallery.
type Server struct {
	Addr  string  `toml:"addr"`
	Rate  float64 `toml:"rate"`  // image generations per second
	Burst int     `toml:"burst"` // token bucket size
}

// Preview configures listing thumbnails.
type Preview struct {
	Width int `toml:"width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Workers:   runtime.NumCPU(),
		Server: Server{
			Addr:  DefaultAddr,
			Rate:  DefaultRate,
			Burst: DefaultBurst,
		},
		Preview: Preview{Width: DefaultPreviewWidth},
	}
}

// Path returns the config file location using the XDG standard
// (~/.config/babelgallery/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path on top of [Default]. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// LoadDefault loads the config from [Path].
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes TOML data on top of [Default] and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), errs.New(errs.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := errs.ValidateOutputDir(c.OutputDir); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if err := errs.ValidateAddr(c.Server.Addr); err != nil {
		return err
	}
	if c.Server.Rate <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "server.rate must be positive, got %g", c.Server.Rate)
	}
	if c.Server.Burst < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "server.burst must be at least 1, got %d", c.Server.Burst)
	}
	if c.Preview.Width < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "preview.width must be at least 1, got %d", c.Preview.Width)
	}
	return nil
}

// Encode renders cfg as TOML.
func (c Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "encode config")
	}
	return buf.String(), nil
}
