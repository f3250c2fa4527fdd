// Package material implements the BSDF models (Phong and dielectric)
// and their importance sampling, plus the HitRecord type threaded
// through intersection, scattering and light sampling.
package material

import "github.com/dkossen/mcpt-go/pkg/core"

// HitRecord is the pure output of a ray/primitive intersection. It is
// written once by the intersecting primitive and is otherwise owned
// by the caller's stack frame.
type HitRecord struct {
	P      core.Vec3 // world-space intersection point
	Normal core.Vec3 // unit geometric outward normal
	T      float32   // ray parameter at the hit
	UV     core.Vec2 // interpolated texture coordinates
	Mat    Material  // material at the hit point
	Obj    int       // index of the intersected primitive in its owning arena
}

// Kind classifies a material for the integrator's per-bounce dispatch.
type Kind int

const (
	KindPhong Kind = iota
	KindLight
	KindGlass
)

// Material is the BSDF interface every material kind implements. All
// directions (wo, wi) are unit vectors pointing away from the
// shading point, each outgoing toward its own side.
type Material interface {
	// Scatter importance-samples an outgoing direction wi and returns
	// its pdf with respect to solid angle.
	Scatter(wo core.Vec3, hit HitRecord, rng *core.RNG) (wi core.Vec3, pdf float32)

	// PDF evaluates the density the sampler would assign to wi.
	PDF(wo core.Vec3, hit HitRecord, wi core.Vec3) float32

	// BSDF evaluates f(wo,wi), without the cosine term.
	BSDF(wo, wi core.Vec3, hit HitRecord) core.Vec3

	// Kind classifies the material. For KindLight, aux is the emitted
	// radiance; for KindGlass, aux.X is the index of refraction.
	Kind() (kind Kind, aux core.Vec3)
}
