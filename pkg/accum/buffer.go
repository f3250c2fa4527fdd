// Package accum implements the sample accumulation buffer and the
// final tonemap: divide by sample count, clamp, gamma-correct,
// quantize to 8-bit RGB.
package accum

import (
	"image"
	"image/color"
	"math"

	"github.com/dkossen/mcpt-go/pkg/core"
)

// DefaultGamma is the tonemap exponent used when a Buffer's Gamma
// field is left at zero.
const DefaultGamma = 2.0

// Buffer is a width x height array of running radiance sums, one cell
// per pixel, plus the sample count each cell has accumulated.
type Buffer struct {
	Width, Height int
	Gamma         float64 // tonemap exponent; 0 means DefaultGamma
	sum           []core.Vec3
	samples       int
}

// NewBuffer allocates a zeroed accumulator with the default gamma.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Gamma:  DefaultGamma,
		sum:    make([]core.Vec3, width*height),
	}
}

// AddSample adds one radiance estimate to pixel (x,y). Non-finite
// samples are dropped rather than accumulated; the caller
// is expected to log the drop.
func (b *Buffer) AddSample(x, y int, radiance core.Vec3) (dropped bool) {
	if !radiance.IsFinite() {
		return true
	}
	b.sum[y*b.Width+x] = b.sum[y*b.Width+x].Add(radiance)
	return false
}

// EndSamplePass records that every pixel received one more sample
// this pass, advancing the shared divisor used at output time.
func (b *Buffer) EndSamplePass() {
	b.samples++
}

// Samples reports how many sample passes have completed.
func (b *Buffer) Samples() int { return b.samples }

// Final tonemaps the buffer into the image handed to the JPEG
// encoder; it is Snapshot under another name, kept distinct because
// callers reach for them at different points in the render loop.
func (b *Buffer) Final() *image.RGBA { return b.Snapshot() }

// Snapshot tonemaps the buffer's current running average into an
// 8-bit RGB image using the running divisor, so progress previews can
// be emitted mid-render.
func (b *Buffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	divisor := float32(1)
	if b.samples > 0 {
		divisor = float32(b.samples)
	}

	gamma := b.Gamma
	if gamma == 0 {
		gamma = DefaultGamma
	}

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			avg := b.sum[y*b.Width+x].Multiply(1 / divisor)
			r, g, bl := tonemap(avg, gamma)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return img
}

// tonemap clamps to [0,1], applies gamma correction and quantizes a
// single pixel to 8-bit channels. Negative channels are a programming
// error and panic.
func tonemap(c core.Vec3, gamma float64) (r, g, b uint8) {
	return toChannel(c.X, gamma), toChannel(c.Y, gamma), toChannel(c.Z, gamma)
}

func toChannel(v float32, gamma float64) uint8 {
	if v < 0 {
		panic("accum: negative radiance channel reached the tonemap")
	}
	if v > 1 {
		v = 1
	}
	gammaCorrected := powf32(v, 1/gamma)
	return uint8(gammaCorrected*255 + 0.5)
}

func powf32(x float32, y float64) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Pow(float64(x), y))
}
