// Package geometry implements the axis-aligned bounding box, the
// Triangle primitive, and the BVH spatial index used to accelerate
// ray-scene intersection.
package geometry

import (
	"math"

	"github.com/dkossen/mcpt-go/pkg/core"
)

// AABB is an axis-aligned box. The zero value is not a valid box; use
// EmptyAABB to get one that behaves correctly under repeated Update.
type AABB struct {
	Min, Max core.Vec3
}

// EmptyAABB returns a box initialized to +inf/-inf so that any
// sequence of Update calls produces a tight box.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: core.NewVec3(inf, inf, inf),
		Max: core.NewVec3(-inf, -inf, -inf),
	}
}

// NewAABB constructs a box directly from min/max corners. Callers
// must ensure min <= max componentwise; a degenerate box is a
// programming error.
func NewAABB(min, max core.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Update grows the box to include p.
func (b AABB) Update(p core.Vec3) AABB {
	return AABB{
		Min: core.NewVec3(fmin(b.Min.X, p.X), fmin(b.Min.Y, p.Y), fmin(b.Min.Z, p.Z)),
		Max: core.NewVec3(fmax(b.Max.X, p.X), fmax(b.Max.Y, p.Y), fmax(b.Max.Z, p.Z)),
	}
}

// Union returns the box that bounds both b and o.
func (b AABB) Union(o AABB) AABB {
	return b.Update(o.Min).Update(o.Max)
}

// IsValid reports whether min <= max on every axis.
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// LongestAxis returns the axis (0=X,1=Y,2=Z) with the largest extent,
// used by the BVH build to choose a split axis.
func (b AABB) LongestAxis() int {
	size := b.Max.Subtract(b.Min)
	axis := 0
	best := size.X
	if size.Y > best {
		axis, best = 1, size.Y
	}
	if size.Z > best {
		axis = 2
	}
	return axis
}

// Hit implements the slab test: for each axis it computes the
// inverse direction once, derives t0/t1, swaps them when the inverse
// direction is negative, tightens [tLo,tHi], and rejects as soon as
// tHi < tLo. On hit it returns the tightened near-t.
func (b AABB) Hit(ray core.Ray, tLo, tHi float32) (float32, bool) {
	bmin := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	bmax := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float32{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		invD := 1 / dir[axis]
		t0 := (bmin[axis] - origin[axis]) * invD
		t1 := (bmax[axis] - origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tLo {
			tLo = t0
		}
		if t1 < tHi {
			tHi = t1
		}
		if tHi < tLo {
			return 0, false
		}
	}
	return tLo, true
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
