// Package config provides YAML-based configuration for the tutorial scenes.
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/phanxgames/tutorials/geom"
)

//go:embed defaults/tutorials.yaml
var defaultYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all tunables for the tutorial scenes.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Camera      CameraConfig     `yaml:"camera"`
	AABB        AABBConfig       `yaml:"aabb"`
	Log         LogConfig        `yaml:"log"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// WindowConfig defines the game window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	ShowFPS   bool   `yaml:"show_fps"`
}

// CameraConfig defines the 2D camera scene.
type CameraConfig struct {
	CameraSpeed    float64   `yaml:"camera_speed"`    // world units per second
	PlayerSpeed    float64   `yaml:"player_speed"`    // world units per second
	PlayerStart    geom.Vec2 `yaml:"player_start"`    // top-left
	PlayerSize     geom.Vec2 `yaml:"player_size"`
	World          geom.Rect `yaml:"world"`
	ZoomSpeed      float64   `yaml:"zoom_speed"`      // zoom units per second
	RotationSpeed  float64   `yaml:"rotation_speed"`  // radians per second
	FollowLerp     float64   `yaml:"follow_lerp"`     // 0..1 per frame
	ScrollDuration float32   `yaml:"scroll_duration"` // seconds
	ClampToWorld   bool      `yaml:"clamp_to_world"`  // keep the view inside World
}

// AABBConfig defines the collision scene.
type AABBConfig struct {
	Speed   float64 `yaml:"speed"`
	BoxSize float64 `yaml:"box_size"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ScreenshotConfig defines where screenshots are written.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the embedded default configuration.
func Default() Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic("config: embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.CameraSpeed < 0 || c.Camera.PlayerSpeed < 0 || c.AABB.Speed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalid)
	case c.Camera.ZoomSpeed < 0 || c.Camera.RotationSpeed < 0:
		return fmt.Errorf("%w: zoom and rotation speeds must not be negative", ErrInvalid)
	case c.Camera.PlayerSize.X <= 0 || c.Camera.PlayerSize.Y <= 0:
		return fmt.Errorf("%w: player size %v", ErrInvalid, c.Camera.PlayerSize)
	case c.Camera.World.Width <= 0 || c.Camera.World.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalid, c.Camera.World.Width, c.Camera.World.Height)
	case c.Camera.FollowLerp < 0 || c.Camera.FollowLerp > 1:
		return fmt.Errorf("%w: follow_lerp %v outside [0, 1]", ErrInvalid, c.Camera.FollowLerp)
	case c.Camera.ScrollDuration < 0:
		return fmt.Errorf("%w: scroll_duration %v", ErrInvalid, c.Camera.ScrollDuration)
	case c.AABB.BoxSize <= 0:
		return fmt.Errorf("%w: box_size %v", ErrInvalid, c.AABB.BoxSize)
	}
	return nil
}
