// Package integrator implements the unidirectional path tracer: next-
// event estimation with multiple importance sampling and Russian
// roulette termination.
package integrator

import (
	"math"

	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/geometry"
	"github.com/dkossen/mcpt-go/pkg/lighting"
	"github.com/dkossen/mcpt-go/pkg/material"
)

// rouletteMinBounce is the bounce index at which Russian roulette
// termination begins.
const rouletteMinBounce = 3

// maxBounces is a hard cap that keeps a pathological scene (e.g. a
// roulette draw that never fires) from looping forever.
const maxBounces = 64

// shadowEps is the near-t epsilon used to suppress self-intersection
// on the ray's origin surface.
const shadowEps = 1e-3

// PathTracer traces a single camera ray through world, accumulating
// radiance via next-event estimation and Russian roulette.
type PathTracer struct {
	World  geometry.Hittable
	Lights *lighting.EmissiveGroup
}

// NewPathTracer builds a tracer over a fixed world and light catalog.
func NewPathTracer(world geometry.Hittable, lights *lighting.EmissiveGroup) *PathTracer {
	return &PathTracer{World: world, Lights: lights}
}

// Trace estimates the radiance arriving at the camera along ray,
// implementing the bounce loop.
func (pt *PathTracer) Trace(ray core.Ray, rng *core.RNG) core.Vec3 {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)
	emissiveFlag := true

	for bounce := 0; bounce < maxBounces; bounce++ {
		hit, ok := pt.World.Hit(ray, shadowEps, float32(math.Inf(1)))
		if !ok {
			break
		}

		kind, aux := hit.Mat.Kind()

		if kind == material.KindLight {
			if emissiveFlag && ray.Direction.Dot(hit.Normal) < 0 {
				color = color.Add(throughput.MultiplyVec(aux))
			}
			break
		}

		if kind == material.KindGlass {
			wi, _ := hit.Mat.Scatter(ray.Direction.Negate(), hit, rng)
			bsdf := hit.Mat.BSDF(ray.Direction.Negate(), wi, hit)
			throughput = throughput.MultiplyVec(bsdf)
			emissiveFlag = true
			ray = core.NewRay(hit.P, wi)
			continue
		}

		// Phong: flip the shading normal to face wo, add the MIS direct-
		// light estimate, then sample indirect and continue.
		emissiveFlag = false
		normal := hit.Normal
		wo := ray.Direction.Negate()
		if normal.Dot(wo) < 0 {
			normal = normal.Negate()
		}
		shadingHit := hit
		shadingHit.Normal = normal

		color = color.Add(throughput.MultiplyVec(pt.sampleLight(wo, shadingHit, rng)))

		wi, pdf := shadingHit.Mat.Scatter(wo, shadingHit, rng)
		cosTheta := wi.Dot(normal)
		if cosTheta <= 0 || pdf <= 0 {
			break
		}
		bsdf := shadingHit.Mat.BSDF(wo, wi, shadingHit)
		throughput = throughput.MultiplyVec(bsdf).Multiply(cosTheta / pdf)
		ray = core.NewRay(hit.P, wi)

		if bounce >= rouletteMinBounce {
			q := throughput.MaxComponent()
			if q <= 0 {
				break
			}
			if q > 1 {
				q = 1
			}
			if rng.Float32() < q {
				throughput = throughput.Multiply(1 / q)
			} else {
				break
			}
		}
	}

	if !color.IsFinite() {
		return core.Vec3{}
	}
	return color
}

// sampleLight estimates the direct-lighting contribution at a Phong
// hit using two-strategy MIS with the power heuristic.
func (pt *PathTracer) sampleLight(wo core.Vec3, hit material.HitRecord, rng *core.RNG) core.Vec3 {
	if pt.Lights == nil || pt.Lights.Empty() {
		return core.Vec3{}
	}

	result := core.Vec3{}

	// Strategy L: sample the light, evaluate the material's density for
	// that direction.
	if wiL, pdfL, lightRec, ok := pt.Lights.SampleRay(hit.P, hit.Normal, pt.World, rng); ok {
		pdfB := hit.Mat.PDF(wo, hit, wiL)
		if pdfB > 0 {
			_, le := lightRec.Mat.Kind()
			f := hit.Mat.BSDF(wo, wiL, hit)
			cosTheta := wiL.Dot(hit.Normal)
			weight := core.PowerHeuristic(pdfL, pdfB)
			contribution := f.MultiplyVec(le).Multiply(cosTheta * weight / pdfL)
			result = result.Add(contribution)
		}
	}

	// Strategy B: sample the material, ask the light catalog for its
	// density along that direction.
	wiB, pdfB := hit.Mat.Scatter(wo, hit, rng)
	if pdfB > 0 && wiB.Dot(hit.Normal) > 0 {
		pdfL := pt.Lights.PDF(hit.P, wiB, pt.World)
		if pdfL > 0 {
			lightRec, hitLight := pt.World.Hit(core.NewRay(hit.P, wiB), shadowEps, float32(math.Inf(1)))
			if hitLight {
				if kind, le := lightRec.Mat.Kind(); kind == material.KindLight {
					f := hit.Mat.BSDF(wo, wiB, hit)
					cosTheta := wiB.Dot(hit.Normal)
					weight := core.PowerHeuristic(pdfB, pdfL)
					contribution := f.MultiplyVec(le).Multiply(cosTheta * weight / pdfB)
					result = result.Add(contribution)
				}
			}
		}
	}

	return result
}
