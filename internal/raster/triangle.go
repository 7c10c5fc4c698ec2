package raster

import (
	"image"
	"math"
)

// RasterizeTriangle rasterizes a single textured triangle with z-buffer,
// alpha cutout, and flat shading.
//
// This is the HOT PATH — designed for zero allocation in the inner loop.
// px/py are screen coordinates, pz is depth (larger = closer). uvs are
// index-aligned with the vertex slices; passing tex == nil falls back to
// the default solid color.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float64,
	tri [3]int,
	tex *image.NRGBA,
	defaultR, defaultG, defaultB, defaultA uint8,
	shade float64,
) {
	nv := len(px)
	for _, i := range tri {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[tri[0]], py[tri[0]], pz[tri[0]]
	x1, y1, z1 := px[tri[1]], py[tri[1]], pz[tri[1]]
	x2, y2, z2 := px[tri[2]], py[tri[2]], pz[tri[2]]

	hasUV := tex != nil && len(uvs) == nv
	var u0, v0, u1, v1, u2, v2 float64
	if hasUV {
		u0, v0 = uvs[tri[0]][0], uvs[tri[0]][1]
		u1, v1 = uvs[tri[1]][0], uvs[tri[1]][1]
		u2, v2 = uvs[tri[2]][0], uvs[tri[2]][1]
	}

	// Bounding box clipped to the framebuffer
	w, h := fb.Width, fb.Height
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			var cr, cg, cb, ca uint8
			if hasUV {
				u := w0*u0 + w1*u1 + w2*u2
				v := w0*v0 + w1*v1 + w2*v2
				cr, cg, cb, ca = SampleTexture(tex, u, v)
			} else {
				cr, cg, cb, ca = defaultR, defaultG, defaultB, defaultA
			}

			// Alpha cutout: fully skip near-transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(float64(cr) * shade)
			fb.Color[pxIdx+1] = clamp255(float64(cg) * shade)
			fb.Color[pxIdx+2] = clamp255(float64(cb) * shade)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
