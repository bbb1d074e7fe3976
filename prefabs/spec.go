package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/orbitcam/controls"
)

// Vec3Spec is a yaml-friendly 3D point.
type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// CameraSpec describes the initial orbit of a camera entity. Angles are in
// radians. MinZoom and MaxZoom of zero leave that side unclamped.
type CameraSpec struct {
	Name    string   `yaml:"name"`
	Pivot   Vec3Spec `yaml:"pivot"`
	Radius  float64  `yaml:"radius"`
	Yaw     float64  `yaml:"yaw"`
	Pitch   float64  `yaml:"pitch"`
	Roll    float64  `yaml:"roll"`
	MinZoom float64  `yaml:"min_zoom"`
	MaxZoom float64  `yaml:"max_zoom"`
}

// LoadSpec loads and unmarshals a yaml prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadCameraSpec loads the default camera prefab.
func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadControlsConfig loads the controls prefab over the stock defaults.
func LoadControlsConfig() (*controls.Config, error) {
	data, err := Load("controls.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load controls.yaml: %w", err)
	}
	cfg, err := controls.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: controls.yaml: %w", err)
	}
	return cfg, nil
}
