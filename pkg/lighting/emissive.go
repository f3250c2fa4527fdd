// Package lighting implements the EmissiveGroup: the catalog of
// emissive triangles used for next-event estimation, with
// shadow-tested sampling and pdf evaluation.
package lighting

import (
	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/geometry"
	"github.com/dkossen/mcpt-go/pkg/material"
)

// shadowEps is the squared-distance tolerance used to decide whether a
// shadow ray landed back on the sample point it was aimed at.
const shadowEps = 1e-4

// EmissiveGroup catalogs every emissive triangle in the scene. Weights
// are uniform (all 1), giving a running prefix sum equal to the
// 1-based index; area-weighting would be a valid upgrade this
// design does not take.
type EmissiveGroup struct {
	prims     []*geometry.Triangle
	prefixSum []float32
	index     map[int]int // primitive.Index -> position in prims
}

// NewEmissiveGroup builds a group from the triangles whose material
// classifies as Light.
func NewEmissiveGroup(prims []*geometry.Triangle) *EmissiveGroup {
	g := &EmissiveGroup{index: make(map[int]int)}
	var running float32
	for _, p := range prims {
		kind, _ := p.Mat.Kind()
		if kind != material.KindLight {
			continue
		}
		running++
		g.prims = append(g.prims, p)
		g.prefixSum = append(g.prefixSum, running)
		g.index[p.Index] = len(g.prims) - 1
	}
	return g
}

// Empty reports whether the scene has no emissive geometry.
func (g *EmissiveGroup) Empty() bool { return len(g.prims) == 0 }

func (g *EmissiveGroup) pick(rng *core.RNG) *geometry.Triangle {
	if len(g.prims) == 0 {
		return nil
	}
	target := rng.Float32() * g.prefixSum[len(g.prefixSum)-1]
	for i, ps := range g.prefixSum {
		if target < ps {
			return g.prims[i]
		}
	}
	return g.prims[len(g.prims)-1]
}

// SampleRay picks a light primitive, samples a point on it, and casts
// a shadow ray from x toward that point. It returns pdf>0 only when
// the cast lands back on the very sample point, the direction is in
// the shading hemisphere, and the light's normal faces x.
func (g *EmissiveGroup) SampleRay(x core.Vec3, normal core.Vec3, world geometry.Hittable, rng *core.RNG) (wi core.Vec3, pdf float32, lightRec material.HitRecord, ok bool) {
	light := g.pick(rng)
	if light == nil {
		return core.Vec3{}, 0, material.HitRecord{}, false
	}

	y := light.SamplePoint(rng)
	toLight := y.Subtract(x)
	dist := toLight.Length()
	if dist <= 0 {
		return core.Vec3{}, 0, material.HitRecord{}, false
	}
	wi = toLight.Normalize()

	if wi.Dot(normal) <= 0 {
		return core.Vec3{}, 0, material.HitRecord{}, false
	}

	ray := core.NewRay(x, wi)
	rec, hit := world.Hit(ray, 1e-3, dist+1)
	if !hit {
		return core.Vec3{}, 0, material.HitRecord{}, false
	}
	if rec.Obj != light.Index {
		return core.Vec3{}, 0, material.HitRecord{}, false
	}
	landing := rec.P.Subtract(y)
	if landing.LengthSquared() > shadowEps {
		return core.Vec3{}, 0, material.HitRecord{}, false
	}
	if rec.Normal.Dot(wi) >= 0 {
		// light's normal does not face x: this face is not emitting toward us.
		return core.Vec3{}, 0, material.HitRecord{}, false
	}

	distSq := rec.T * rec.T
	cosThetaY := rec.Normal.Dot(wi)
	areaPDF := geometry.AreaToSolidAnglePDF(distSq, light.Area, cosThetaY)
	if areaPDF <= 0 {
		return core.Vec3{}, 0, material.HitRecord{}, false
	}
	pdf = areaPDF / float32(len(g.prims))
	return wi, pdf, rec, true
}

// PDF casts ray against world and, if it terminates on a front-facing
// emissive primitive in the group, returns the same area-to-solid-
// angle density SampleRay would have produced for that direction.
func (g *EmissiveGroup) PDF(origin, wi core.Vec3, world geometry.Hittable) float32 {
	if len(g.prims) == 0 {
		return 0
	}
	ray := core.NewRay(origin, wi)
	rec, hit := world.Hit(ray, 1e-3, float32(1e30))
	if !hit {
		return 0
	}
	pos, isLight := g.index[rec.Obj]
	if !isLight {
		return 0
	}
	if rec.Normal.Dot(wi) >= 0 {
		return 0
	}

	light := g.prims[pos]
	distSq := rec.T * rec.T
	cosThetaY := rec.Normal.Dot(wi)
	areaPDF := geometry.AreaToSolidAnglePDF(distSq, light.Area, cosThetaY)
	if areaPDF <= 0 {
		return 0
	}
	return areaPDF / float32(len(g.prims))
}
