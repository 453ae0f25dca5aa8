package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// fileConfig is the on-disk layout of an override file. Every section is
// optional and absent keys keep their current value.
type fileConfig struct {
	Window Config       `yaml:"window"`
	Flight FlightConfig `yaml:"flight"`
	Camera CameraConfig `yaml:"camera"`
	Level  LevelConfig  `yaml:"level"`
	Render RenderConfig `yaml:"render"`
	HUD    HUDConfig    `yaml:"hud"`
	Debug  DebugConfig  `yaml:"debug"`
}

// LoadFile applies YAML overrides from path on top of the defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML overrides and installs them if they validate. On error
// the current configuration is left untouched.
func Apply(data []byte) error {
	f := fileConfig{
		Window: *C,
		Flight: Flight,
		Camera: Camera,
		Level:  Level,
		Render: Render,
		HUD:    HUD,
		Debug:  Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := f.validate(); err != nil {
		return err
	}

	*C = f.Window
	Flight = f.Flight
	Camera = f.Camera
	Level = f.Level
	Render = f.Render
	HUD = f.HUD
	Debug = f.Debug
	return nil
}

func (f *fileConfig) validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, f.Window.Width, f.Window.Height)
	case f.Level.Size <= 0 || f.Level.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, f.Level.Size, f.Level.Height)
	case f.Level.TileSize <= 0:
		return fmt.Errorf("%w: tile size %v", ErrInvalidConfig, f.Level.TileSize)
	case f.Level.Margin < 0:
		return fmt.Errorf("%w: margin %d", ErrInvalidConfig, f.Level.Margin)
	case f.Level.Start < 1:
		return fmt.Errorf("%w: start level %d", ErrInvalidConfig, f.Level.Start)
	case f.Camera.FovY <= 0 || f.Camera.FovY >= 180:
		return fmt.Errorf("%w: fov %v", ErrInvalidConfig, f.Camera.FovY)
	case f.Camera.Near <= 0 || f.Camera.Far <= f.Camera.Near:
		return fmt.Errorf("%w: clip planes %v..%v", ErrInvalidConfig, f.Camera.Near, f.Camera.Far)
	}
	return nil
}
