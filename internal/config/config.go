// Package config loads the vflex configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/muesli/termenv"
	"k8s.io/klog/v2"
)

// ErrInvalidConfig reports a setting outside its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Default viewport used when neither flags, document nor config give one.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Config is the contents of config.toml.
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Color    string         `toml:"color"`
	Cache    CacheConfig    `toml:"cache"`
}

// ViewportConfig is the fallback viewport.
type ViewportConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// CacheConfig sizes the layout cache.
type CacheConfig struct {
	Capacity int           `toml:"capacity"`
	MaxAge   time.Duration `toml:"max_age"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Color:    "auto",
		Cache:    CacheConfig{Capacity: 64},
	}
}

// Path returns the config file location: $VFLEX_CONFIG_DIR/config.toml when
// that directory exists, otherwise vflex/config.toml under the user config
// directory. It returns "" when neither can be determined.
func Path() string {
	// useful during development or other non-standard setups.
	if dir := os.Getenv("VFLEX_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "vflex", "config.toml")
	}
	return ""
}

// Load reads the config at path. An empty path means Path(), and a missing
// file at that default location yields Default(). An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			klog.V(2).InfoS("no config file, using defaults", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	klog.V(2).InfoS("loaded config", "path", path)
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enum values.
func (c *Config) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("%w: viewport %dx%d is negative", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("%w: cache capacity %d is negative", ErrInvalidConfig, c.Cache.Capacity)
	}
	if c.Cache.MaxAge < 0 {
		return fmt.Errorf("%w: cache max_age %s is negative", ErrInvalidConfig, c.Cache.MaxAge)
	}
	if _, _, err := ParseColorProfile(c.Color); err != nil {
		return err
	}
	return nil
}

// ParseColorProfile maps a profile name to a termenv profile. "auto" and ""
// return ok=false, leaving detection to the renderer.
func ParseColorProfile(name string) (profile termenv.Profile, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "ascii", "none":
		return termenv.Ascii, true, nil
	case "ansi":
		return termenv.ANSI, true, nil
	case "ansi256":
		return termenv.ANSI256, true, nil
	case "truecolor":
		return termenv.TrueColor, true, nil
	default:
		return termenv.Ascii, false, fmt.Errorf("%w: unknown color profile %q (want auto, ascii, ansi, ansi256 or truecolor)", ErrInvalidConfig, name)
	}
}
