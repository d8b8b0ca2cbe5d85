package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidWindow = errors.New("config: window width and height must be positive")
	ErrInvalidColor  = errors.New("config: clear_color components must be in the [0, 1] range")
)

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type Camera struct {
	FOVDegrees        float32 `yaml:"fov_degrees"`
	Near              float32 `yaml:"near"`
	Far               float32 `yaml:"far"`
	YawDegrees        float32 `yaml:"yaw_degrees"`
	PitchDegrees      float32 `yaml:"pitch_degrees"` // polar angle from +Z
	Distance          float32 `yaml:"distance"`
	MinDistance       float32 `yaml:"min_distance"`
	MaxDistance       float32 `yaml:"max_distance"`
	MoveSpeed         float32 `yaml:"move_speed"`        // units per second
	FasterMultiplier  float32 `yaml:"faster_multiplier"` // applied while the faster key is held
	RotateSensitivity float32 `yaml:"rotate_sensitivity"`
	ZoomSensitivity   float32 `yaml:"zoom_sensitivity"`
}

type Shaders struct {
	Vertex   string `yaml:"vertex"`   // empty selects the embedded shader
	Fragment string `yaml:"fragment"` // empty selects the embedded shader; a bare file name is looked up next to the vertex shader
}

type Debug struct {
	MarkerSize float32 `yaml:"marker_size"`
	ShowAxes   bool    `yaml:"show_axes"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	ClearColor [3]float32 `yaml:"clear_color,flow"`
	Camera     Camera     `yaml:"camera"`
	Shaders    Shaders    `yaml:"shaders"`
	Debug      Debug      `yaml:"debug"`
	LogLevel   string     `yaml:"log_level"`
}

// Get the default configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "R3D3",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		ClearColor: [3]float32{0.3, 0.3, 0.5},
		Camera: Camera{
			FOVDegrees:        90,
			Near:              0.01,
			Far:               1000,
			YawDegrees:        0,
			PitchDegrees:      45,
			Distance:          2,
			MinDistance:       0.1,
			MaxDistance:       100,
			MoveSpeed:         1,
			FasterMultiplier:  4,
			RotateSensitivity: 0.005,
			ZoomSensitivity:   0.25,
		},
		Debug: Debug{
			MarkerSize: 0.25,
			ShowAxes:   true,
		},
		LogLevel: "notice",
	}
}

// Load a configuration file. Keys missing from the file keep their default
// values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: could not parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Write the configuration to a file.
func Save(path string, c *Config) error {
	b, err := Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Serialize the configuration as yaml.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// Check that all values are within their valid ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return ErrInvalidWindow
	}
	for _, v := range c.ClearColor {
		if !(v >= 0 && v <= 1) {
			return ErrInvalidColor
		}
	}

	cam := c.Camera
	switch {
	case cam.FOVDegrees <= 0 || cam.FOVDegrees >= 180:
		return fmt.Errorf("config: camera fov_degrees must be in (0, 180); got %g", cam.FOVDegrees)
	case cam.Near <= 0:
		return fmt.Errorf("config: camera near must be positive; got %g", cam.Near)
	case cam.Far <= cam.Near:
		return fmt.Errorf("config: camera far (%g) must be greater than near (%g)", cam.Far, cam.Near)
	case cam.MinDistance <= cam.Near:
		return fmt.Errorf("config: camera min_distance (%g) must be greater than near (%g)", cam.MinDistance, cam.Near)
	case cam.MaxDistance < cam.MinDistance:
		return fmt.Errorf("config: camera max_distance (%g) must not be less than min_distance (%g)", cam.MaxDistance, cam.MinDistance)
	case cam.MoveSpeed <= 0 || cam.FasterMultiplier <= 0:
		return fmt.Errorf("config: camera move_speed and faster_multiplier must be positive")
	case cam.RotateSensitivity <= 0 || cam.ZoomSensitivity <= 0:
		return fmt.Errorf("config: camera rotate_sensitivity and zoom_sensitivity must be positive")
	}

	if c.Debug.MarkerSize <= 0 {
		return fmt.Errorf("config: debug marker_size must be positive; got %g", c.Debug.MarkerSize)
	}
	return nil
}
