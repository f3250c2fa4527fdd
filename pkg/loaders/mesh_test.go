package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/material"
)

const testMeshYAML = `
vertices:
  - p: [-1, -1, 0]
    n: [0, 0, 1]
  - p: [1, -1, 0]
    n: [0, 0, 1]
  - p: [0, 1, 0]
    n: [0, 0, 1]
faces:
  - [0, 1, 2]
`

func TestLoadMesh_SingleTriangle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.yaml")
	if err := os.WriteFile(path, []byte(testMeshYAML), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	mat := material.NewPhong(core.NewVec3(1, 1, 1), core.Vec3{}, 1)
	tris, err := LoadMesh(path, mat)
	if err != nil {
		t.Fatalf("LoadMesh() error = %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("len(tris) = %d, want 1", len(tris))
	}
	if tris[0].Normal.Z <= 0 {
		t.Errorf("face normal should agree with supplied vertex normal (+z), got %v", tris[0].Normal)
	}
}

const badMeshYAML = `
vertices:
  - p: [0, 0, 0]
  - p: [1, 0, 0]
  - p: [0, 1, 0]
  - p: [0, 0, 1]
faces:
  - [0, 1, 2, 3]
`

func TestLoadMesh_NonTriangulatedFaceIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte(badMeshYAML), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	mat := material.NewPhong(core.NewVec3(1, 1, 1), core.Vec3{}, 1)
	if _, err := LoadMesh(path, mat); err == nil {
		t.Errorf("expected an error for a quad face")
	}
}
