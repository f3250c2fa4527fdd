package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/material"
)

// LoadTexture decodes an image file into a 3-channel float RGB
// texture. Go's image package normalizes every decoded format to
// color.Color, so a genuinely non-3-channel source can't arise once
// decoding succeeds.
func LoadTexture(path string) (*material.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening texture %q: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepathExt(path), ".bmp") {
		img, err = bmp.Decode(f)
	} else if strings.EqualFold(filepathExt(path), ".png") {
		img, err = png.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("loaders: decoding texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = core.NewVec3(
				float32(r)/65535,
				float32(g)/65535,
				float32(b)/65535,
			)
		}
	}

	return material.NewTexture(w, h, pixels), nil
}

func filepathExt(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return path[i:]
}
