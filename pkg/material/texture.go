package material

import (
	"math"

	"github.com/dkossen/mcpt-go/pkg/core"
)

// Texture is a 2D float RGB image, sampled with periodic wrap-around
// on both axes and nearest-neighbor filtering. uv=(0,0) is bottom-left.
type Texture struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x]
}

// NewTexture wraps an already-decoded float RGB buffer.
func NewTexture(width, height int, pixels []core.Vec3) *Texture {
	return &Texture{Width: width, Height: height, Pixels: pixels}
}

// At samples the texture at uv, wrapping periodically on both axes
// and flipping v so that uv=(0,0) maps to the bottom-left pixel.
func (t *Texture) At(uv core.Vec2) core.Vec3 {
	x := int(math.Floor(float64(uv.X * float32(t.Width))))
	y := t.Height - 1 - int(math.Floor(float64(uv.Y*float32(t.Height))))
	x = wrapIndex(x, t.Width)
	y = wrapIndex(y, t.Height)
	return t.Pixels[y*t.Width+x]
}

// wrapIndex reduces i to [0,n) using periodic (not clamped) wrapping,
// matching the original's `(x % width + width) % width` idiom.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
