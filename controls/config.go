package controls

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/orbitcam/ecs/component"
)

// RollButtons binds a pair of keys to roll: ccw adds roll, cw subtracts it.
type RollButtons struct {
	CCW component.Button `yaml:"ccw"`
	CW  component.Button `yaml:"cw"`
}

// Config drives the per-frame orbit controller. It is read-only during a
// frame; hosts may rewrite it between frames and the next update picks the
// change up.
//
// A nil binding is meaningful, not a default placeholder: nil RotateButton
// or PanButton means that action follows the pointer unconditionally, nil
// ZoomButton means scrolling always zooms, and nil RollButtons disables
// roll input entirely.
type Config struct {
	Enable         bool `yaml:"enable"`
	EnableZoom     bool `yaml:"enable_zoom"`
	EnableRotation bool `yaml:"enable_rotation"`
	EnablePan      bool `yaml:"enable_pan"`
	EnableRoll     bool `yaml:"enable_roll"`

	ZoomSpeed     float64 `yaml:"zoom_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	PanSpeed      float64 `yaml:"pan_speed"`
	RollSpeed     float64 `yaml:"roll_speed"`

	// ZoomSmoothness in [0, 1): 0 snaps the radius to its target, values
	// approaching 1 converge ever more slowly.
	ZoomSmoothness float64 `yaml:"zoom_smoothness"`

	RotateButton *component.Button `yaml:"rotate_button"`
	ZoomButton   *component.Button `yaml:"zoom_button"`
	PanButton    *component.Button `yaml:"pan_button"`
	RollButtons  *RollButtons      `yaml:"roll_buttons"`
}

// Default returns the stock control scheme: everything enabled, left mouse
// rotates, right mouse pans, scroll always zooms, Q/E roll.
func Default() *Config {
	rotate := component.MouseLeft
	pan := component.MouseRight
	return &Config{
		Enable:         true,
		EnableZoom:     true,
		EnableRotation: true,
		EnablePan:      true,
		EnableRoll:     true,

		ZoomSpeed:     0.2,
		RotationSpeed: 0.4,
		PanSpeed:      0.002,
		RollSpeed:     math.Pi,

		ZoomSmoothness: 0.8,

		RotateButton: &rotate,
		PanButton:    &pan,
		RollButtons: &RollButtons{
			CCW: component.KeyButton("q"),
			CW:  component.KeyButton("e"),
		},
	}
}

// Decode unmarshals yaml over the defaults, so omitted options keep their
// documented values while explicit ones (including explicit false and null)
// override them.
func Decode(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("controls: unmarshal config: %w", err)
	}
	return cfg, nil
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("controls: read %s: %w", path, err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("controls: load %s: %w", path, err)
	}
	return cfg, nil
}

// Buttons returns every binding the config references, for input drivers
// that only sample what is bound.
func (c *Config) Buttons() []component.Button {
	if c == nil {
		return nil
	}
	var out []component.Button
	for _, b := range []*component.Button{c.RotateButton, c.ZoomButton, c.PanButton} {
		if b != nil {
			out = append(out, *b)
		}
	}
	if c.RollButtons != nil {
		out = append(out, c.RollButtons.CCW, c.RollButtons.CW)
	}
	return out
}
