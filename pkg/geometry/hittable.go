package geometry

import (
	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/material"
)

// Hittable is anything a ray can intersect: a single Triangle or a
// BVH root. The integrator and the EmissiveGroup's shadow test both
// go through this interface as "the world".
type Hittable interface {
	Hit(ray core.Ray, tLo, tHi float32) (material.HitRecord, bool)
}

// AreaToSolidAnglePDF converts a surface-area sampling pdf (1/area)
// into a pdf with respect to solid angle at the shading point x, per
// pdf_w(wi) = |x-y|^2 / (area * |cos(theta_y)|).
func AreaToSolidAnglePDF(distSq, area, cosThetaY float32) float32 {
	denom := area * absf32(cosThetaY)
	if denom <= 0 {
		return 0
	}
	return distSq / denom
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
