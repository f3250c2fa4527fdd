package material

import "github.com/dkossen/mcpt-go/pkg/core"

// Phong is a diffuse+glossy material: a cosine-weighted Lambertian
// lobe mixed with a Phong specular reflection lobe, optionally
// emissive and optionally textured.
//
// The specular lobe uses the reflection-lobe convention: it is
// centered on reflect(wo,n) rather than on the half vector between wo
// and wi. Sampler, PDF and BSDF all share that one convention.
type Phong struct {
	Kd, Ks, Ke  core.Vec3
	Ns          float32
	HasEmissive bool
	HasTexture  bool
	Texture     *Texture
}

// NewPhong creates a non-emissive, non-textured Phong material.
func NewPhong(kd, ks core.Vec3, ns float32) *Phong {
	return &Phong{Kd: kd, Ks: ks, Ns: ns}
}

func (p *Phong) diffuseAlbedo(hit HitRecord) core.Vec3 {
	if p.HasTexture {
		return p.Texture.At(hit.UV)
	}
	return p.Kd
}

// sampleProbability returns the probability of choosing the diffuse
// lobe over the specular lobe, P = max(Kd)/(max(Kd)+max(Ks)).
func sampleProbability(kd, ks core.Vec3) float32 {
	sum := kd.MaxComponent() + ks.MaxComponent()
	if sum <= 0 {
		return 0
	}
	return kd.MaxComponent() / sum
}

func sampleLambertian(normal core.Vec3, rng *core.RNG) core.Vec3 {
	phi := rng.Range(0, twoPiF)
	cosTheta := sqrtf(1 - rng.Float32())
	local := angleToCartesian(cosTheta, phi)
	return newONB(normal).ToWorld(local)
}

func pdfLambertian(normal, wi core.Vec3) float32 {
	cos := wi.Dot(normal)
	if cos <= 0 {
		return 0
	}
	return cos / piF
}

func reflect(v, n core.Vec3) core.Vec3 {
	return n.Multiply(2 * v.Dot(n)).Subtract(v)
}

func sampleSpecular(wo, normal core.Vec3, ns float32, rng *core.RNG) core.Vec3 {
	phi := rng.Range(0, twoPiF)
	cosTheta := powf(rng.Float32(), 1/(ns+1))
	local := angleToCartesian(cosTheta, phi)
	reflAxis := reflect(wo, normal)
	return newONB(reflAxis).ToWorld(local)
}

func pdfSpecular(wo, normal, wi core.Vec3, ns float32) float32 {
	if wi.Dot(normal) <= 0 {
		return 0
	}
	reflAxis := reflect(wo, normal)
	cosAlpha := wi.Dot(reflAxis)
	if cosAlpha <= 0 {
		return 0
	}
	return (ns + 1) * powf(cosAlpha, ns) / twoPiF
}

// Scatter picks the diffuse or specular lobe with probability P, then
// returns the sampled direction and the mixture pdf of both lobes.
func (p *Phong) Scatter(wo core.Vec3, hit HitRecord, rng *core.RNG) (core.Vec3, float32) {
	kd := p.diffuseAlbedo(hit)
	prob := sampleProbability(kd, p.Ks)
	if prob <= 0 && p.Ks.MaxComponent() <= 0 {
		return core.Vec3{}, 0
	}

	var wi core.Vec3
	if rng.Float32() < prob {
		wi = sampleLambertian(hit.Normal, rng)
	} else {
		wi = sampleSpecular(wo, hit.Normal, p.Ns, rng)
	}

	if wi.Dot(hit.Normal) <= 0 {
		return wi, 0
	}

	pdf := prob*pdfLambertian(hit.Normal, wi) + (1-prob)*pdfSpecular(wo, hit.Normal, wi, p.Ns)
	return wi, pdf
}

// PDF evaluates the mixture density the sampler above would assign to wi.
func (p *Phong) PDF(wo core.Vec3, hit HitRecord, wi core.Vec3) float32 {
	if wi.Dot(hit.Normal) < 0 {
		return 0
	}
	kd := p.diffuseAlbedo(hit)
	prob := sampleProbability(kd, p.Ks)
	return prob*pdfLambertian(hit.Normal, wi) + (1-prob)*pdfSpecular(wo, hit.Normal, wi, p.Ns)
}

// BSDF evaluates f(wo,wi) = Kd/pi + Ks*(Ns+2)*(cos alpha)^Ns/(2*pi),
// the canonical (C=1/2) reflection-lobe Phong form, where alpha is the
// angle between wi and reflect(wo,n).
func (p *Phong) BSDF(wo, wi core.Vec3, hit HitRecord) core.Vec3 {
	if wi.Dot(hit.Normal) <= 0 {
		return core.Vec3{}
	}
	kd := p.diffuseAlbedo(hit)
	reflAxis := reflect(wo, hit.Normal)
	cosAlpha := wi.Dot(reflAxis)
	if cosAlpha < 0 {
		cosAlpha = 0
	}
	spec := p.Ks.Multiply((p.Ns + 2) * powf(cosAlpha, p.Ns) * 0.5 / piF)
	diff := kd.Multiply(1 / piF)
	return diff.Add(spec)
}

// Kind returns KindLight with Ke when emissive, KindPhong otherwise.
func (p *Phong) Kind() (Kind, core.Vec3) {
	if p.HasEmissive {
		return KindLight, p.Ke
	}
	return KindPhong, core.Vec3{}
}

