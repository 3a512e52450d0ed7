package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/seesaw/internal/seesaw"
)

const (
	DefaultDataDir      = ".seesaw"
	DefaultFPS          = 60
	DefaultThickness    = 16.0
	DefaultBaseWidth    = 680.0
	DefaultFrequency    = 240.0
	DefaultToneMillis   = 180
	DefaultGain         = 0.12
	DefaultAudioBackend = "beep"
	DefaultTheme        = "cyberpunk"
	DefaultLogFile      = "seesaw.log"
)

type Config struct {
	Plank     PlankConfig     `yaml:"plank"`
	Animation AnimationConfig `yaml:"animation"`
	Storage   StorageConfig   `yaml:"storage"`
	Audio     AudioConfig     `yaml:"audio"`
	UI        UIConfig        `yaml:"ui"`
	Log       LogConfig       `yaml:"log"`
	Seed      int64           `yaml:"seed"`
}

type PlankConfig struct {
	Length       float64 `yaml:"length"`
	Thickness    float64 `yaml:"thickness"`
	MaxAngle     float64 `yaml:"max_angle"`
	AngleDivisor float64 `yaml:"angle_divisor"`
}

type AnimationConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Epsilon   float64 `yaml:"epsilon"`
	FPS       int     `yaml:"fps"`
}

type StorageConfig struct {
	Dir string `yaml:"dir"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Backend    string  `yaml:"backend"`
	Frequency  float64 `yaml:"frequency"`
	DurationMS int     `yaml:"duration_ms"`
	Gain       float64 `yaml:"gain"`
}

type UIConfig struct {
	Theme     string  `yaml:"theme"`
	BaseWidth float64 `yaml:"base_width"`
}

type LogConfig struct {
	File     string `yaml:"file"`
	Capacity int    `yaml:"capacity"`
}

func DefaultConfig() *Config {
	return &Config{
		Plank: PlankConfig{
			Length:       seesaw.DefaultPlankLength,
			Thickness:    DefaultThickness,
			MaxAngle:     seesaw.DefaultMaxAngle,
			AngleDivisor: seesaw.DefaultAngleDivisor,
		},
		Animation: AnimationConfig{
			Stiffness: seesaw.DefaultStiffness,
			Epsilon:   seesaw.DefaultEpsilon,
			FPS:       DefaultFPS,
		},
		Storage: StorageConfig{Dir: DefaultDataDir},
		Audio: AudioConfig{
			Enabled:    true,
			Backend:    DefaultAudioBackend,
			Frequency:  DefaultFrequency,
			DurationMS: DefaultToneMillis,
			Gain:       DefaultGain,
		},
		UI:  UIConfig{Theme: DefaultTheme, BaseWidth: DefaultBaseWidth},
		Log: LogConfig{File: DefaultLogFile, Capacity: seesaw.DefaultJournalCapacity},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep
// the values already in base. base is modified in place.
func LoadOver(path string, cfg *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params extracts the simulation constants.
func (c *Config) Params() seesaw.Params {
	return seesaw.Params{
		PlankLength:  c.Plank.Length,
		MaxAngle:     c.Plank.MaxAngle,
		AngleDivisor: c.Plank.AngleDivisor,
		Stiffness:    c.Animation.Stiffness,
		Epsilon:      c.Animation.Epsilon,
	}
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Plank.Thickness <= 0 {
		return fmt.Errorf("%w: plank thickness must be positive", seesaw.ErrInvalidParams)
	}
	if c.Animation.FPS <= 0 || c.Animation.FPS > 240 {
		return fmt.Errorf("%w: fps must be in (0, 240], got %d", seesaw.ErrInvalidParams, c.Animation.FPS)
	}
	switch c.Audio.Backend {
	case "beep", "portaudio", "none":
	default:
		return fmt.Errorf("%w: unknown audio backend %q", seesaw.ErrInvalidParams, c.Audio.Backend)
	}
	return nil
}

// Apply copies preset values onto c, keeping everything the preset leaves unset.
func (c *Config) Apply(p *Preset) {
	if p.Length > 0 {
		c.Plank.Length = p.Length
	}
	if p.MaxAngle > 0 {
		c.Plank.MaxAngle = p.MaxAngle
	}
	if p.AngleDivisor > 0 {
		c.Plank.AngleDivisor = p.AngleDivisor
	}
	if p.Stiffness > 0 {
		c.Animation.Stiffness = p.Stiffness
	}
}
