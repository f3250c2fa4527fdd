package lighting

import (
	"testing"

	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/geometry"
	"github.com/dkossen/mcpt-go/pkg/material"
)

func buildLitScene() (*geometry.BVH, *EmissiveGroup) {
	light := material.NewPhong(core.Vec3{}, core.Vec3{}, 1)
	light.HasEmissive = true
	light.Ke = core.NewVec3(4, 4, 4)

	// a downward-facing light quad above the origin (normal -Y).
	l0 := geometry.NewTriangle(core.NewVec3(-1, 2, -1), core.NewVec3(1, 2, -1), core.NewVec3(1, 2, 1), light)
	l1 := geometry.NewTriangle(core.NewVec3(-1, 2, -1), core.NewVec3(1, 2, 1), core.NewVec3(-1, 2, 1), light)
	l0.Index, l1.Index = 0, 1
	// flip normals to face down toward the floor, matching winding that
	// would produce an outward normal pointing -Y for this patch.
	if l0.Normal.Y > 0 {
		l0.Normal = l0.Normal.Negate()
	}
	if l1.Normal.Y > 0 {
		l1.Normal = l1.Normal.Negate()
	}

	floorMat := material.NewPhong(core.NewVec3(0.8, 0.8, 0.8), core.Vec3{}, 1)
	f0 := geometry.NewTriangle(core.NewVec3(-5, 0, -5), core.NewVec3(5, 0, -5), core.NewVec3(5, 0, 5), floorMat)
	f1 := geometry.NewTriangle(core.NewVec3(-5, 0, -5), core.NewVec3(5, 0, 5), core.NewVec3(-5, 0, 5), floorMat)
	f0.Index, f1.Index = 2, 3

	prims := []*geometry.Triangle{l0, l1, f0, f1}
	bvh := geometry.BuildBVH(append([]*geometry.Triangle(nil), prims...))
	group := NewEmissiveGroup(prims)
	return bvh, group
}

func TestEmissiveGroup_SampleRay_ReachesLight(t *testing.T) {
	bvh, group := buildLitScene()
	if group.Empty() {
		t.Fatalf("expected a non-empty emissive group")
	}

	rng := core.NewRNG(1)
	x := core.NewVec3(0, 0.01, 0)
	normal := core.NewVec3(0, 1, 0)

	hits := 0
	for i := 0; i < 500; i++ {
		_, pdf, _, ok := group.SampleRay(x, normal, bvh, rng)
		if ok {
			hits++
			if pdf <= 0 {
				t.Errorf("sample %d: expected positive pdf", i)
			}
		}
	}
	if hits == 0 {
		t.Fatalf("expected at least one successful light sample")
	}
}

func TestEmissiveGroup_PDF_MatchesSampleRay(t *testing.T) {
	bvh, group := buildLitScene()
	rng := core.NewRNG(2)
	x := core.NewVec3(0, 0.01, 0)
	normal := core.NewVec3(0, 1, 0)

	for i := 0; i < 200; i++ {
		wi, pdf, _, ok := group.SampleRay(x, normal, bvh, rng)
		if !ok {
			continue
		}
		gotPDF := group.PDF(x, wi, bvh)
		if gotPDF <= 0 {
			t.Errorf("PDF() = %v, want > 0 for a direction SampleRay produced", gotPDF)
			continue
		}
		diff := gotPDF - pdf
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-3*pdf {
			t.Errorf("PDF() = %v, SampleRay pdf = %v, want them to match", gotPDF, pdf)
		}
	}
}

func TestEmissiveGroup_PDF_ZeroWhenNoLightHit(t *testing.T) {
	bvh, group := buildLitScene()
	// straight down into the floor, away from the light.
	pdf := group.PDF(core.NewVec3(0, 0.01, 0), core.NewVec3(0, -1, 0), bvh)
	if pdf != 0 {
		t.Errorf("PDF() = %v, want 0 when the ray does not hit a light", pdf)
	}
}
