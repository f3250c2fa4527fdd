// Package loaders ingests scene description files: mesh geometry,
// materials, emissive declarations and camera parameters, all read
// from a YAML scene config, plus texture image decoding.
package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SceneConfig is the top-level scene description: materials, meshes,
// emissive assignments and the camera, read from a single YAML file.
// Any malformed entry is a fatal, reported error.
type SceneConfig struct {
	Camera    CameraConfig              `yaml:"camera"`
	Materials map[string]MaterialConfig `yaml:"materials"`
	Emissive  map[string][3]float32     `yaml:"emissive"` // material name -> radiance RGB
	Meshes    []MeshConfig              `yaml:"meshes"`
}

// CameraConfig mirrors the camera contract.
type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye"`
	LookAt [3]float32 `yaml:"look_at"`
	Up     [3]float32 `yaml:"up"`
	FovY   float64    `yaml:"fov_y"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
}

// MaterialConfig mirrors a material list entry. A material with
// IOR > 1 becomes Glass; every other field is ignored in that case.
type MaterialConfig struct {
	Kd      [3]float32 `yaml:"kd"`
	Ks      [3]float32 `yaml:"ks"`
	Ns      float32    `yaml:"ns"`
	IOR     float32    `yaml:"ior"`
	Texture string     `yaml:"texture"`
}

// MeshConfig names a mesh file and the material every one of its
// faces is assigned, by name.
type MeshConfig struct {
	File     string `yaml:"file"`
	Material string `yaml:"material"`
}

// LoadSceneConfig reads and parses the scene YAML at path. Mesh and
// texture paths inside the config are resolved relative to its
// directory.
func LoadSceneConfig(path string) (*SceneConfig, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("loaders: reading scene config %q: %w", path, err)
	}

	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("loaders: parsing scene config %q: %w", path, err)
	}

	if cfg.Camera.Width <= 0 || cfg.Camera.Height <= 0 {
		return nil, "", fmt.Errorf("loaders: scene config %q: camera width/height must be positive", path)
	}
	for name, mat := range cfg.Materials {
		if mat.IOR < 0 {
			return nil, "", fmt.Errorf("loaders: material %q: negative ior", name)
		}
	}

	return &cfg, filepath.Dir(path), nil
}
