package render

import (
	"testing"

	"github.com/dkossen/mcpt-go/pkg/camera"
	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/geometry"
	"github.com/dkossen/mcpt-go/pkg/lighting"
	"github.com/dkossen/mcpt-go/pkg/scene"
)

func TestRenderer_Run_EmptySceneStaysBlack(t *testing.T) {
	bvh := geometry.BuildBVH(nil)
	lights := lighting.NewEmissiveGroup(nil)
	cam := camera.NewCamera(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 60, 8, 8)
	s := &scene.Scene{BVH: bvh, Lights: lights, Camera: cam}

	r := NewRenderer(s, NullLogger{})
	passes := 0
	r.Run(Config{Samples: 2, Workers: 2, Seed: 1}, func(pass int, due bool) {
		passes++
	})

	if passes != 2 {
		t.Fatalf("expected 2 onPass callbacks, got %d", passes)
	}
	if r.Buffer.Samples() != 2 {
		t.Fatalf("Buffer.Samples() = %d, want 2", r.Buffer.Samples())
	}

	img := r.Buffer.Snapshot()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			rr, g, b, _ := img.At(x, y).RGBA()
			if rr != 0 || g != 0 || b != 0 {
				t.Fatalf("pixel (%d,%d) nonzero in an empty scene", x, y)
			}
		}
	}
}
