package material

import "github.com/dkossen/mcpt-go/pkg/core"

// Dielectric is a smooth glass material. It has no albedo: scatter
// always returns a delta-function direction with pdf=1 and a
// constant, near-white BSDF, so the integrator applies
// `throughput *= bsdf` verbatim with no cosine/pdf factor.
type Dielectric struct {
	IOR float32 // index of refraction, > 1
}

// NewDielectric creates a glass material with the given IOR.
func NewDielectric(ior float32) *Dielectric {
	return &Dielectric{IOR: ior}
}

// glassAttenuation is the constant, near-white BSDF value glass
// returns instead of a physically-derived transmittance.
var glassAttenuation = core.NewVec3(0.9, 0.9, 0.9)

func refract(wo, normal core.Vec3, eta float32) core.Vec3 {
	cosTheta := wo.Dot(normal)
	perp := normal.Multiply(cosTheta).Subtract(wo).Multiply(eta)
	parallel := normal.Multiply(-sqrtf(1 - perp.LengthSquared()))
	return perp.Add(parallel)
}

// reflectance is Schlick's approximation for Fresnel reflectance.
func reflectance(cosine, eta float32) float32 {
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	return r0 + (1-r0)*powf(1-cosine, 5)
}

// Scatter determines entering vs. exiting by the sign of normal.wo,
// then reflects or refracts per Snell's law with Schlick reflectance.
func (d *Dielectric) Scatter(wo core.Vec3, hit HitRecord, rng *core.RNG) (core.Vec3, float32) {
	entering := hit.Normal.Dot(wo) > 0
	normal := hit.Normal
	eta := d.IOR
	if entering {
		eta = 1 / d.IOR
	} else {
		normal = normal.Negate()
	}

	cosTheta := wo.Dot(normal)
	sinTheta := sqrtf(1 - cosTheta*cosTheta)
	cannotRefract := eta*sinTheta > 1

	var wi core.Vec3
	if cannotRefract || reflectance(cosTheta, eta) > rng.Float32() {
		wi = reflect(wo, normal)
	} else {
		wi = refract(wo, normal, eta)
	}
	return wi.Normalize(), 1
}

// PDF is always 1 for the delta-function glass BSDF.
func (d *Dielectric) PDF(wo core.Vec3, hit HitRecord, wi core.Vec3) float32 { return 1 }

// BSDF returns a constant near-white value; the integrator's glass
// branch multiplies throughput by this directly.
func (d *Dielectric) BSDF(wo, wi core.Vec3, hit HitRecord) core.Vec3 { return glassAttenuation }

// Kind returns KindGlass with the IOR in aux.X.
func (d *Dielectric) Kind() (Kind, core.Vec3) {
	return KindGlass, core.NewVec3(d.IOR, 0, 0)
}
