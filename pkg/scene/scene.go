// Package scene assembles loaded triangles, materials, a BVH and an
// EmissiveGroup into the single read-only world the integrator traces
// rays against.
package scene

import (
	"fmt"
	"path/filepath"

	"github.com/dkossen/mcpt-go/pkg/camera"
	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/geometry"
	"github.com/dkossen/mcpt-go/pkg/lighting"
	"github.com/dkossen/mcpt-go/pkg/loaders"
	"github.com/dkossen/mcpt-go/pkg/material"
)

// Scene is the fully built, read-only world for one render: a BVH
// over every triangle, the emissive catalog drawn from it, and the
// camera that casts rays into it.
type Scene struct {
	BVH    *geometry.BVH
	Lights *lighting.EmissiveGroup
	Camera *camera.Camera
}

// Hit satisfies geometry.Hittable by delegating to the scene's BVH,
// so a Scene can stand in anywhere "the world" is expected.
func (s *Scene) Hit(ray core.Ray, tLo, tHi float32) (material.HitRecord, bool) {
	return s.BVH.Hit(ray, tLo, tHi)
}

// Load reads the scene config at configPath, builds every material,
// loads every mesh's triangles, and assembles the BVH, EmissiveGroup
// and camera. Every error here is fatal.
func Load(configPath string, logger core.Logger) (*Scene, error) {
	cfg, baseDir, err := loaders.LoadSceneConfig(configPath)
	if err != nil {
		return nil, err
	}

	materials, err := buildMaterials(cfg, baseDir, logger)
	if err != nil {
		return nil, err
	}

	var prims []*geometry.Triangle
	for _, mc := range cfg.Meshes {
		mat, ok := materials[mc.Material]
		if !ok {
			return nil, fmt.Errorf("scene: mesh %q references unknown material %q", mc.File, mc.Material)
		}
		meshPath := filepath.Join(baseDir, mc.File)
		tris, err := loaders.LoadMesh(meshPath, mat)
		if err != nil {
			return nil, err
		}
		prims = append(prims, tris...)
	}

	for i, t := range prims {
		t.Index = i
	}
	logger.Printf("scene: loaded %d triangles from %d mesh(es)", len(prims), len(cfg.Meshes))

	bvh := geometry.BuildBVH(append([]*geometry.Triangle(nil), prims...))
	logger.Printf("scene: BVH built: %d primitives, depth %d", len(prims), bvh.Depth())
	lights := lighting.NewEmissiveGroup(prims)
	if lights.Empty() {
		logger.Printf("scene: no emissive geometry found; direct lighting will contribute nothing")
	}

	cam := camera.NewCamera(
		vec(cfg.Camera.Eye),
		vec(cfg.Camera.LookAt),
		vec(cfg.Camera.Up),
		cfg.Camera.FovY,
		cfg.Camera.Width,
		cfg.Camera.Height,
	)

	return &Scene{BVH: bvh, Lights: lights, Camera: cam}, nil
}

func vec(v [3]float32) core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

func buildMaterials(cfg *loaders.SceneConfig, baseDir string, logger core.Logger) (map[string]material.Material, error) {
	result := make(map[string]material.Material, len(cfg.Materials))

	for name, mc := range cfg.Materials {
		if mc.IOR > 1 {
			result[name] = material.NewDielectric(mc.IOR)
			continue
		}

		kd := vec(mc.Kd)
		ks := vec(mc.Ks)
		phong := material.NewPhong(kd, ks, mc.Ns)

		if mc.Texture != "" {
			texPath := filepath.Join(baseDir, mc.Texture)
			tex, err := loaders.LoadTexture(texPath)
			if err != nil {
				return nil, fmt.Errorf("scene: material %q: %w", name, err)
			}
			phong.HasTexture = true
			phong.Texture = tex
			logger.Printf("scene: material %q loaded texture %q (%dx%d)", name, mc.Texture, tex.Width, tex.Height)
		}

		if radiance, ok := cfg.Emissive[name]; ok {
			phong.HasEmissive = true
			phong.Ke = vec(radiance)
		}

		result[name] = phong
	}

	return result, nil
}
