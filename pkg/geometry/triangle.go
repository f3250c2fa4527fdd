package geometry

import (
	"math"

	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/material"
)

// parallelEps is the Möller–Trumbore parallel-ray rejection threshold.
const parallelEps = 1e-7

// Triangle is the tracer's only primitive: three vertices, an
// optional per-vertex uv, a precomputed face normal, bounding box and
// area. Area is the conventional geometric area, half the
// cross-product magnitude.
type Triangle struct {
	P        [3]core.Vec3
	UV       [3]core.Vec2
	Normal   core.Vec3
	Box      AABB
	Area     float32
	HasUV    bool
	Mat      material.Material
	Index    int // this triangle's position in the owning scene's primitive list, written by the loader
}

// NewTriangle builds a Triangle from three positions, precomputing
// its face normal, bounding box and area.
func NewTriangle(p0, p1, p2 core.Vec3, mat material.Material) *Triangle {
	e1 := p1.Subtract(p0)
	e2 := p2.Subtract(p0)
	cross := e1.Cross(e2)

	box := EmptyAABB().Update(p0).Update(p1).Update(p2)

	return &Triangle{
		P:      [3]core.Vec3{p0, p1, p2},
		Normal: cross.Normalize(),
		Box:    box,
		Area:   cross.Length() * 0.5,
		Mat:    mat,
	}
}

// BoundingBox returns the triangle's precomputed AABB.
func (t *Triangle) BoundingBox() AABB { return t.Box }

// Hit implements Möller–Trumbore intersection. Barycentrics (u,v,
// w=1-u-v) interpolate uv; the face normal is constant across the
// triangle. Intersections at t<=tLo are rejected by the caller-
// supplied interval, preventing self-hits on the origin surface.
func (t *Triangle) Hit(ray core.Ray, tLo, tHi float32) (material.HitRecord, bool) {
	var rec material.HitRecord

	edge1 := t.P[1].Subtract(t.P[0])
	edge2 := t.P[2].Subtract(t.P[0])
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if absf32(a) < parallelEps {
		return rec, false
	}
	f := 1 / a
	s := ray.Origin.Subtract(t.P[0])
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return rec, false
	}
	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return rec, false
	}
	tHit := f * edge2.Dot(q)
	if tHit <= tLo || tHit >= tHi {
		return rec, false
	}

	w := 1 - u - v
	rec.P = ray.At(tHit)
	rec.T = tHit
	rec.Normal = t.Normal
	rec.Mat = t.Mat
	rec.Obj = t.Index
	if t.HasUV {
		rec.UV = t.UV[0].Multiply(w).Add(t.UV[1].Multiply(u)).Add(t.UV[2].Multiply(v))
	}
	return rec, true
}

// SamplePoint draws a uniformly random point on the triangle's
// surface using p = (1-sqrt(r1))*p0 + sqrt(r1)(1-r2)*p1 + sqrt(r1)*r2*p2.
func (t *Triangle) SamplePoint(rng *core.RNG) core.Vec3 {
	r1 := rng.Float32()
	r2 := rng.Float32()
	sqrtR1 := float32(math.Sqrt(float64(r1)))

	a := t.P[0].Multiply(1 - sqrtR1)
	b := t.P[1].Multiply(sqrtR1 * (1 - r2))
	c := t.P[2].Multiply(sqrtR1 * r2)
	return a.Add(b).Add(c)
}
