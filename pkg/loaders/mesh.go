package loaders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/geometry"
	"github.com/dkossen/mcpt-go/pkg/material"
)

// MeshVertex is one vertex of a mesh file: position is required,
// normal and uv are optional.
type MeshVertex struct {
	Position [3]float32  `yaml:"p"`
	Normal   *[3]float32 `yaml:"n,omitempty"`
	UV       *[2]float32 `yaml:"uv,omitempty"`
}

type meshFileYAML struct {
	Vertices []MeshVertex `yaml:"vertices"`
	Faces    [][]int      `yaml:"faces"`
}

// LoadMesh reads a mesh file and builds Triangle primitives using mat
// for every face, applying the face-normal flip rule: when a
// vertex supplies its own normal, the face normal is negated if its
// dot product with that vertex normal is negative.
func LoadMesh(path string, mat material.Material) ([]*geometry.Triangle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: reading mesh %q: %w", path, err)
	}

	var raw meshFileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("loaders: parsing mesh %q: %w", path, err)
	}

	var tris []*geometry.Triangle
	for faceIdx, face := range raw.Faces {
		if len(face) != 3 {
			return nil, fmt.Errorf("loaders: mesh %q face %d has %d vertices, want 3 (non-triangulated faces are fatal)", path, faceIdx, len(face))
		}

		var p [3]core.Vec3
		for k, vi := range face {
			if vi < 0 || vi >= len(raw.Vertices) {
				return nil, fmt.Errorf("loaders: mesh %q face %d: vertex index %d out of range", path, faceIdx, vi)
			}
			v := raw.Vertices[vi]
			p[k] = core.NewVec3(v.Position[0], v.Position[1], v.Position[2])
		}

		tri := geometry.NewTriangle(p[0], p[1], p[2], mat)

		// orient the face normal to agree with any supplied vertex normal.
		for _, vi := range face {
			v := raw.Vertices[vi]
			if v.Normal == nil {
				continue
			}
			vn := core.NewVec3(v.Normal[0], v.Normal[1], v.Normal[2])
			if tri.Normal.Dot(vn) < 0 {
				tri.Normal = tri.Normal.Negate()
			}
			break
		}

		hasUV := true
		var uv [3]core.Vec2
		for k, vi := range face {
			v := raw.Vertices[vi]
			if v.UV == nil {
				hasUV = false
				break
			}
			uv[k] = core.NewVec2(v.UV[0], v.UV[1])
		}
		if hasUV {
			tri.UV = uv
			tri.HasUV = true
		}

		tris = append(tris, tri)
	}

	return tris, nil
}
