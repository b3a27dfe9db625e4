package specialangles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives a run. Zero values take the defaults from const.go.
type Config struct {
	Sides        []Real `yaml:"sides,omitempty"`
	Visualize    int    `yaml:"visualize,omitempty"` // index into Sides of the rendered cube
	PNGOut       string `yaml:"png,omitempty"`
	GIFOut       string `yaml:"gif,omitempty"`
	ImageSize    int    `yaml:"imageSize,omitempty"`
	Frames       int    `yaml:"frames,omitempty"`
	GIFDelay     int    `yaml:"gifDelay,omitempty"`
	AzimuthDeg   *Real  `yaml:"azimuthDeg,omitempty"`
	ElevationDeg *Real  `yaml:"elevationDeg,omitempty"`
	Window       *bool  `yaml:"window,omitempty"` // nil means open the window
}

// DefaultConfig is the configuration used without a config file.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if len(cfg.Sides) == 0 {
		cfg.Sides = append([]Real(nil), DefaultSides...)
	}
	if cfg.PNGOut == "" {
		cfg.PNGOut = PNGOut
	}
	view := DefaultRenderOptions()
	if cfg.ImageSize <= 0 {
		cfg.ImageSize = view.Size
	}
	if cfg.Frames <= 0 {
		cfg.Frames = Frames
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.Window == nil {
		show := true
		cfg.Window = &show
	}
	if cfg.AzimuthDeg == nil {
		cfg.AzimuthDeg = &view.AzimuthDeg
	}
	if cfg.ElevationDeg == nil {
		cfg.ElevationDeg = &view.ElevationDeg
	}
}

// Validate checks the fields that defaults cannot repair.
func (cfg *Config) Validate() error {
	if cfg.Visualize < 0 || cfg.Visualize >= len(cfg.Sides) {
		return fmt.Errorf("visualize index %d out of range [0, %d)", cfg.Visualize, len(cfg.Sides))
	}
	if cfg.ImageSize > MaxImageSize {
		return fmt.Errorf("imageSize %d exceeds %d", cfg.ImageSize, MaxImageSize)
	}
	for i, r := range cfg.Sides {
		if !validSide(r) {
			return fmt.Errorf("sides[%d]: %w", i, &InvalidInputError{R: r})
		}
	}
	return nil
}

// ShowWindow reports whether the config asks for the viewer window.
func (cfg *Config) ShowWindow() bool { return cfg.Window == nil || *cfg.Window }

// RenderOptions returns the view configured for frames.
func (cfg *Config) RenderOptions() RenderOptions {
	return RenderOptions{Size: cfg.ImageSize, AzimuthDeg: *cfg.AzimuthDeg, ElevationDeg: *cfg.ElevationDeg}
}

// LoadConfig reads a YAML config file; an empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: sides=%v, visualize=%d, png=%q, gif=%q, size=%d", path, cfg.Sides, cfg.Visualize, cfg.PNGOut, cfg.GIFOut, cfg.ImageSize)
	return &cfg, nil
}
