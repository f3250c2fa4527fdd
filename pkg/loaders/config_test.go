package loaders

import (
	"os"
	"path/filepath"
	"testing"
)

const testSceneYAML = `
camera:
  eye: [0, 0, 3]
  look_at: [0, 0, 0]
  up: [0, 1, 0]
  fov_y: 60
  width: 64
  height: 64
materials:
  floor:
    kd: [0.8, 0.8, 0.8]
    ks: [0, 0, 0]
    ns: 1
  glass:
    ior: 1.5
emissive:
  light: [4, 4, 4]
meshes:
  - file: floor.yaml
    material: floor
`

func TestLoadSceneConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(testSceneYAML), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	cfg, baseDir, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig() error = %v", err)
	}
	if baseDir != dir {
		t.Errorf("baseDir = %q, want %q", baseDir, dir)
	}
	if cfg.Camera.Width != 64 || cfg.Camera.Height != 64 {
		t.Errorf("camera size = %dx%d, want 64x64", cfg.Camera.Width, cfg.Camera.Height)
	}
	if len(cfg.Materials) != 2 {
		t.Fatalf("len(Materials) = %d, want 2", len(cfg.Materials))
	}
	if cfg.Materials["glass"].IOR != 1.5 {
		t.Errorf("glass ior = %v, want 1.5", cfg.Materials["glass"].IOR)
	}
	if cfg.Emissive["light"] != [3]float32{4, 4, 4} {
		t.Errorf("emissive[light] = %v, want [4 4 4]", cfg.Emissive["light"])
	}
	if len(cfg.Meshes) != 1 || cfg.Meshes[0].Material != "floor" {
		t.Fatalf("unexpected meshes: %+v", cfg.Meshes)
	}
}

func TestLoadSceneConfig_RejectsZeroSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	bad := `
camera:
  eye: [0,0,0]
  look_at: [0,0,-1]
  up: [0,1,0]
  fov_y: 45
  width: 0
  height: 10
`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}
	if _, _, err := LoadSceneConfig(path); err == nil {
		t.Errorf("expected an error for a zero-width camera")
	}
}
