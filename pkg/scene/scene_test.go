package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dkossen/mcpt-go/pkg/render"
)

const sceneYAML = `
camera:
  eye: [0, 0, 3]
  look_at: [0, 0, 0]
  up: [0, 1, 0]
  fov_y: 60
  width: 16
  height: 16
materials:
  floor:
    kd: [0.8, 0.8, 0.8]
    ks: [0, 0, 0]
    ns: 1
meshes:
  - file: floor.yaml
    material: floor
`

const floorYAML = `
vertices:
  - p: [-5, -1, -5]
  - p: [5, -1, -5]
  - p: [5, -1, 5]
  - p: [-5, -1, 5]
faces:
  - [0, 1, 2]
  - [0, 2, 3]
`

func writeTestScene(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte(sceneYAML), 0o644); err != nil {
		t.Fatalf("failed to write scene fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "floor.yaml"), []byte(floorYAML), 0o644); err != nil {
		t.Fatalf("failed to write mesh fixture: %v", err)
	}
	return filepath.Join(dir, "scene.yaml")
}

func TestLoad_BuildsSceneWithoutLights(t *testing.T) {
	path := writeTestScene(t)
	s, err := Load(path, render.NullLogger{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !s.Lights.Empty() {
		t.Errorf("expected no emissive geometry in this fixture")
	}
	if s.Camera.Width != 16 || s.Camera.Height != 16 {
		t.Errorf("camera size = %dx%d, want 16x16", s.Camera.Width, s.Camera.Height)
	}
}
