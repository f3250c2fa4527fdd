// Package camera implements the pinhole camera: a fixed eye, view
// basis and image plane, with jittered ray casting per pixel.
package camera

import (
	"math"

	"github.com/dkossen/mcpt-go/pkg/core"
)

// Camera casts rays through a fixed pinhole. It is built once from
// eye/lookat/up/fovy/width/height and is read-only during rendering.
type Camera struct {
	Eye           core.Vec3
	Width, Height int
	corner        core.Vec3 // top-left of the image plane, world space
	du, dv        core.Vec3 // per-pixel step vectors, world space
}

// NewCamera builds the view basis (x right, y up, -z forward) and
// caches the image-plane corner and per-pixel steps.
func NewCamera(eye, lookAt, up core.Vec3, fovYDegrees float64, width, height int) *Camera {
	forward := lookAt.Subtract(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward).Normalize()

	fovY := float32(fovYDegrees * math.Pi / 180)
	halfHeight := float32(math.Tan(float64(fovY) / 2))
	aspect := float32(width) / float32(height)
	halfWidth := halfHeight * aspect

	// image plane at z=-1 in view space: center = eye + forward.
	center := eye.Add(forward)
	topLeft := center.Add(trueUp.Multiply(halfHeight)).Subtract(right.Multiply(halfWidth))

	du := right.Multiply(2 * halfWidth / float32(width))
	dv := trueUp.Multiply(-2 * halfHeight / float32(height))

	return &Camera{
		Eye:    eye,
		Width:  width,
		Height: height,
		corner: topLeft,
		du:     du,
		dv:     dv,
	}
}

// CastRay casts a ray through pixel (px,py), jittered within the
// pixel footprint by (jx,jy) in [0,1).
func (c *Camera) CastRay(px, py int, jx, jy float32) core.Ray {
	u := float32(px) + jx
	v := float32(py) + jy
	point := c.corner.Add(c.du.Multiply(u)).Add(c.dv.Multiply(v))
	dir := point.Subtract(c.Eye)
	return core.NewRay(c.Eye, dir)
}
