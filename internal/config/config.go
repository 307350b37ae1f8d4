// Package config holds the command-line and file settings shared by the
// window and terminal front ends.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"simon/internal/game"
	"simon/internal/palette"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config represents the settings for a game session.
type Config struct {
	// Path is the optional YAML file to read. Only set from flags.
	Path string `yaml:"-"`

	Seed    int64             `yaml:"seed"`
	Flash   time.Duration     `yaml:"flash"`
	TPS     int               `yaml:"tps"`
	Width   int               `yaml:"width"`
	Height  int               `yaml:"height"`
	Sound   bool              `yaml:"sound"`
	Verbose bool              `yaml:"verbose"`
	Palette map[string]string `yaml:"palette"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Flash:  game.DefaultFlashDuration,
		TPS:    60,
		Width:  480,
		Height: 560,
		Sound:  true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "optional YAML config file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for color selection (0 = random)")
	fs.DurationVar(&c.Flash, "flash", c.Flash, "how long a new target stays lit")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a tone per flash (terminal only)")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log picked colors to stderr")
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flagFields copies the field behind each flag name.
var flagFields = map[string]func(dst, src *Config){
	"seed":    func(dst, src *Config) { dst.Seed = src.Seed },
	"flash":   func(dst, src *Config) { dst.Flash = src.Flash },
	"tps":     func(dst, src *Config) { dst.TPS = src.TPS },
	"width":   func(dst, src *Config) { dst.Width = src.Width },
	"height":  func(dst, src *Config) { dst.Height = src.Height },
	"sound":   func(dst, src *Config) { dst.Sound = src.Sound },
	"verbose": func(dst, src *Config) { dst.Verbose = src.Verbose },
}

// Resolve finishes configuration after fs has been parsed into c. When a
// config file was named, its values are loaded and any flag set explicitly
// on the command line wins over the file.
func Resolve(fs *flag.FlagSet, c *Config) (*Config, error) {
	if c.Path == "" {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	}
	file, err := Load(c.Path)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if copyField, ok := flagFields[f.Name]; ok {
			copyField(file, c)
		}
	})
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}

// Validate checks ranges and the palette.
func (c *Config) Validate() error {
	if c.Flash <= 0 {
		return fmt.Errorf("%w: flash must be positive, got %s", ErrInvalid, c.Flash)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalid, c.TPS)
	}
	if c.Width < 120 || c.Height < 160 {
		return fmt.Errorf("%w: window %dx%d is smaller than 120x160", ErrInvalid, c.Width, c.Height)
	}
	if _, err := palette.New(c.Palette); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Rules converts the settings into game rules.
func (c *Config) Rules() game.Rules {
	return game.Rules{FlashDuration: c.Flash}
}

// BuildPalette builds the display palette. Validate has already checked it.
func (c *Config) BuildPalette() palette.Palette {
	p, err := palette.New(c.Palette)
	if err != nil {
		return palette.Default()
	}
	return p
}
