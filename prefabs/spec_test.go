package prefabs

import (
	"testing"
)

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}
	if spec.Radius <= 0 {
		t.Fatalf("embedded camera spec should have a positive radius, got %v", spec.Radius)
	}
	if spec.Name == "" {
		t.Fatalf("embedded camera spec should be named")
	}
}

func TestLoadControlsConfig(t *testing.T) {
	cfg, err := LoadControlsConfig()
	if err != nil {
		t.Fatalf("LoadControlsConfig: %v", err)
	}
	if !cfg.Enable {
		t.Fatalf("embedded controls should be enabled")
	}
	if cfg.RollButtons == nil {
		t.Fatalf("embedded controls should bind roll keys")
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[CameraSpec]("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"camera.yaml", "camera.yaml"},
		{"prefabs/camera.yaml", "camera.yaml"},
		{"", ""},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.out {
			t.Errorf("cleanPrefabPath(%q): expected %q, got %q", c.in, c.out, got)
		}
	}
}
