package raster

import "image"

// SampleTexture performs nearest-neighbour sampling with UV wrapping.
// Pixel atlases must not be interpolated: bilinear filtering bleeds
// neighbouring atlas regions into each other at face edges.
// V increases upward; image rows increase downward.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	// Wrap UVs into [0,1)
	u = u - float64(int(u))
	if u < 0 {
		u += 1.0
	}
	v = v - float64(int(v))
	if v < 0 {
		v += 1.0
	}

	x := int(u * float64(w))
	y := int((1 - v) * float64(h))
	if x >= w {
		x = w - 1
	}
	if y >= h {
		y = h - 1
	}

	i := y*tex.Stride + x*4
	return tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3]
}
