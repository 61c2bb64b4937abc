package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Render   RenderConfig   `yaml:"render"`
	Assets   AssetsConfig   `yaml:"assets"`
}

type DisplayConfig struct {
	TargetFPS int    `yaml:"target_fps"`
	Color     string `yaml:"color"`
}

type CameraConfig struct {
	Position    [2]float64 `yaml:"position"`
	Heading     float64    `yaml:"heading"`
	FieldOfView float64    `yaml:"field_of_view"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // map units per second
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per second
	JumpFrames    int     `yaml:"jump_frames"`    // ticks for the rising half of a jump
}

type RenderConfig struct {
	MaxHops   int           `yaml:"max_hops"` // grid steps before a ray is treated as sky
	AsciiRamp string        `yaml:"ascii_ramp"`
	Minimap   MinimapConfig `yaml:"minimap"`
}

type MinimapConfig struct {
	WidthFraction  float64 `yaml:"width_fraction"`
	HeightFraction float64 `yaml:"height_fraction"`
	MarginX        int     `yaml:"margin_x"`
	MarginY        int     `yaml:"margin_y"`
}

type AssetsConfig struct {
	Dir            string   `yaml:"dir"`
	Map            string   `yaml:"map"`
	WallTextures   []string `yaml:"wall_textures"`
	SpriteTextures []string `yaml:"sprite_textures"`
}

// defaultAsciiRamp orders glyphs dark to bright. Index 0 doubles as the sky
// glyph and index 1 as the floor glyph.
const defaultAsciiRamp = " .,:;<+*LtCa4U80dQM@"

// LoadConfig loads the configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values, with fallbacks
// for fields the file leaves unset.

func (c *Config) GetTargetFPS() int {
	if c.Display.TargetFPS <= 0 {
		return 30
	}
	return c.Display.TargetFPS
}

func (c *Config) GetMoveSpeed() float64 {
	if c.Movement.MoveSpeed <= 0 {
		return 3.0
	}
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	if c.Movement.RotationSpeed <= 0 {
		return 2.0
	}
	return c.Movement.RotationSpeed
}

func (c *Config) GetJumpFrames() int {
	if c.Movement.JumpFrames <= 0 {
		return 8
	}
	return c.Movement.JumpFrames
}

func (c *Config) GetCameraFOV() float64 {
	if c.Camera.FieldOfView == 0 {
		return 0.66
	}
	return c.Camera.FieldOfView
}

func (c *Config) GetMaxHops() int {
	if c.Render.MaxHops <= 0 {
		return 20
	}
	return c.Render.MaxHops
}

func (c *Config) GetAsciiRamp() string {
	if len(c.Render.AsciiRamp) < 2 {
		return defaultAsciiRamp
	}
	return c.Render.AsciiRamp
}

func (c *Config) GetMinimap() MinimapConfig {
	m := c.Render.Minimap
	if m.WidthFraction <= 0 {
		m.WidthFraction = 0.2
	}
	if m.HeightFraction <= 0 {
		m.HeightFraction = 0.3
	}
	if m.MarginX <= 0 {
		m.MarginX = 5
	}
	if m.MarginY <= 0 {
		m.MarginY = 5
	}
	return m
}
