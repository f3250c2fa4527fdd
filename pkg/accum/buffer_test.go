package accum

import (
	"testing"

	"github.com/dkossen/mcpt-go/pkg/core"
)

func TestBuffer_EmptySceneIsAllZero(t *testing.T) {
	b := NewBuffer(4, 4)
	b.EndSamplePass()

	img := b.Snapshot()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0 || g != 0 || bl != 0 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want black", x, y, r, g, bl)
			}
		}
	}
}

func TestBuffer_AddSample_DropsNonFinite(t *testing.T) {
	b := NewBuffer(1, 1)
	nan := core.NewVec3(float32(0), float32(0), float32(0))
	nan.X = nan.X / zero()

	if dropped := b.AddSample(0, 0, nan); !dropped {
		t.Errorf("expected a non-finite sample to be dropped")
	}
}

func TestBuffer_Snapshot_AveragesBySampleCount(t *testing.T) {
	b := NewBuffer(1, 1)
	b.AddSample(0, 0, core.NewVec3(1, 1, 1))
	b.EndSamplePass()
	b.AddSample(0, 0, core.NewVec3(0, 0, 0))
	b.EndSamplePass()

	img := b.Snapshot()
	r, _, _, _ := img.At(0, 0).RGBA()
	// average radiance 0.5, gamma 2.0 -> sqrt(0.5) ~ 0.707 -> ~180/255.
	got8 := uint8(r >> 8)
	if got8 < 170 || got8 > 190 {
		t.Errorf("channel = %d, want roughly 180 (sqrt(0.5) tonemapped)", got8)
	}
}

func TestBuffer_Snapshot_PanicsOnNegativeChannel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Snapshot to panic on a negative radiance channel")
		}
	}()

	b := NewBuffer(1, 1)
	b.AddSample(0, 0, core.NewVec3(-1, 0, 0))
	b.EndSamplePass()
	b.Snapshot()
}

func zero() float32 { return 0 }
