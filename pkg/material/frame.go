package material

import (
	"math"

	"github.com/dkossen/mcpt-go/pkg/core"
)

// onb is an orthonormal basis with Z aligned to a chosen axis (the
// shading normal, or a reflection lobe's reference direction).
type onb struct {
	T, B, N core.Vec3
}

// newONB builds an orthonormal basis with N=axis. The tangent is
// chosen by crossing axis with whichever world axis has the smallest
// |component|, avoiding the near-parallel case that would otherwise
// degenerate the cross product.
func newONB(axis core.Vec3) onb {
	n := axis.Normalize()

	var helper core.Vec3
	ax, ay, az := absf(n.X), absf(n.Y), absf(n.Z)
	switch {
	case ax <= ay && ax <= az:
		helper = core.NewVec3(1, 0, 0)
	case ay <= ax && ay <= az:
		helper = core.NewVec3(0, 1, 0)
	default:
		helper = core.NewVec3(0, 0, 1)
	}

	t := helper.Cross(n).Normalize()
	b := n.Cross(t)
	return onb{T: t, B: b, N: n}
}

// ToWorld maps a local-frame direction (x,y,z with z along N) to world
// space.
func (f onb) ToWorld(local core.Vec3) core.Vec3 {
	return f.T.Multiply(local.X).Add(f.B.Multiply(local.Y)).Add(f.N.Multiply(local.Z))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// angleToCartesian converts (cosTheta, phi) spherical coordinates
// about the local Z axis into a local-frame unit vector.
func angleToCartesian(cosTheta, phi float32) core.Vec3 {
	sinTheta := float32(math.Sqrt(math.Max(0, float64(1-cosTheta*cosTheta))))
	return core.NewVec3(sinTheta*cosf(phi), sinTheta*sinf(phi), cosTheta)
}

func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }
func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
func powf(x, y float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Pow(float64(x), float64(y)))
}

func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

const piF = float32(math.Pi)
const twoPiF = float32(2 * math.Pi)
