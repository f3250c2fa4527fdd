// Package render drives the parallel sampling loop: one goroutine per
// worker, partitioned by image rows, each owning its own RNG and
// writing into disjoint accumulator cells.
package render

import (
	"runtime"
	"sync"

	"github.com/dkossen/mcpt-go/pkg/accum"
	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/integrator"
	"github.com/dkossen/mcpt-go/pkg/scene"
)

// SnapshotInterval is how often (in completed sample passes) a
// progress image is emitted.
const SnapshotInterval = 5

// Config controls one render invocation.
type Config struct {
	Samples int // total samples per pixel
	Workers int // 0 selects runtime.NumCPU()
	Seed    int64
}

// Renderer owns the scene, the path tracer built over it, and the
// accumulator the sampling loop writes into.
type Renderer struct {
	Scene  *scene.Scene
	Tracer *integrator.PathTracer
	Buffer *accum.Buffer
	Logger core.Logger
}

// NewRenderer builds a renderer over s.
func NewRenderer(s *scene.Scene, logger core.Logger) *Renderer {
	return &Renderer{
		Scene:  s,
		Tracer: integrator.NewPathTracer(s.BVH, s.Lights),
		Buffer: accum.NewBuffer(s.Camera.Width, s.Camera.Height),
		Logger: logger,
	}
}

// Run executes cfg.Samples sample passes, calling onPass after every
// pass with the pass index (1-based) and a snapshot flag telling the
// caller whether a progress image is due this pass.
func (r *Renderer) Run(cfg Config, onPass func(pass int, due bool)) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	width, height := r.Scene.Camera.Width, r.Scene.Camera.Height

	for pass := 1; pass <= cfg.Samples; pass++ {
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(worker int) {
				defer wg.Done()
				rng := core.NewRNG(cfg.Seed + int64(pass)*int64(workers) + int64(worker))
				for y := worker; y < height; y += workers {
					for x := 0; x < width; x++ {
						ray := r.Scene.Camera.CastRay(x, y, rng.Float32(), rng.Float32())
						radiance := r.Tracer.Trace(ray, rng)
						if dropped := r.Buffer.AddSample(x, y, radiance); dropped {
							r.Logger.Printf("render: dropped non-finite sample at (%d,%d)", x, y)
						}
					}
				}
			}(w)
		}
		wg.Wait()
		r.Buffer.EndSamplePass()

		due := pass == cfg.Samples || pass%SnapshotInterval == 0
		if onPass != nil {
			onPass(pass, due)
		}
	}
}
