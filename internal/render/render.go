// Package render turns interpreted box descriptors into a shaded image:
// meshes are normalized per the assembled framing, viewed from the framing
// camera, and rasterized.
package render

import (
	"image"
	"math"

	"github.com/idkyet312/minecraftviewer/internal/cube"
	"github.com/idkyet312/minecraftviewer/internal/geometry"
	"github.com/idkyet312/minecraftviewer/internal/mathutil"
	"github.com/idkyet312/minecraftviewer/internal/raster"
	"github.com/idkyet312/minecraftviewer/internal/scene"
)

// DefaultFOV is the vertical camera field of view in degrees.
const DefaultFOV = 50.0

// Options holds render settings.
type Options struct {
	Size        int // output square size in pixels
	Supersample int // internal oversampling factor, >= 1
	FOV         float64
	Light       raster.LightConfig
}

// Model renders the box descriptors with the given texture atlas and
// returns the image together with the assembled framing. tex may be nil;
// faces then use a neutral solid color. An empty descriptor list yields a
// fully transparent image.
func Model(boxes []geometry.BoxDescriptor, tex *image.NRGBA, opts Options) (*image.NRGBA, scene.Framing) {
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	if opts.FOV <= 0 {
		opts.FOV = DefaultFOV
	}

	meshes := cube.BuildAll(boxes)
	bounders := make([]scene.Bounder, len(meshes))
	for i, m := range meshes {
		bounders[i] = m
	}
	framing := scene.Assemble(bounders)

	renderSize := opts.Size * opts.Supersample
	if framing.Empty {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize)), framing
	}

	// Camera space: normalize vertices, then view from the framing camera
	// toward the orbit target.
	view := mathutil.LookAt(framing.CameraPosition, framing.OrbitTarget, mathutil.Vec3{0, 1, 0})

	camVerts := make([][]mathutil.Vec3, len(meshes))
	for i, m := range meshes {
		vs := make([]mathutil.Vec3, len(m.Verts))
		for j, v := range m.Verts {
			n := v.Add(framing.Translation).Scale(framing.Scale)
			vs[j] = view.MulPoint(n)
		}
		camVerts[i] = vs
	}

	// Perspective divide onto the image plane, then fit the resulting 2D
	// span into the framebuffer with a pixel margin.
	tanHalf := math.Tan(mathutil.Deg2Rad(opts.FOV) / 2)
	planeX := make([][]float64, len(meshes))
	planeY := make([][]float64, len(meshes))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, vs := range camVerts {
		xs := make([]float64, len(vs))
		ys := make([]float64, len(vs))
		for j, c := range vs {
			depth := -c[2]
			if depth < framing.NearPlane {
				depth = framing.NearPlane
			}
			xs[j] = c[0] / (depth * tanHalf)
			ys[j] = c[1] / (depth * tanHalf)
			minX = math.Min(minX, xs[j])
			maxX = math.Max(maxX, xs[j])
			minY = math.Min(minY, ys[j])
			maxY = math.Max(maxY, ys[j])
		}
		planeX[i] = xs
		planeY[i] = ys
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span < 1e-9 {
		span = 1e-9
	}
	margin := 16 * opts.Supersample
	pxScale := float64(renderSize-2*margin) / span
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	half := float64(renderSize) / 2

	fb := raster.NewFrameBuffer(renderSize, renderSize)
	lc := opts.Light
	if lc == (raster.LightConfig{}) {
		lc = raster.DefaultLightConfig()
	}

	var defR, defG, defB, defA uint8 = 160, 160, 170, 255
	if tex != nil {
		defR, defG, defB, defA = averageColor(tex)
	}

	for i, m := range meshes {
		n := len(m.Verts)
		px := make([]float64, n)
		py := make([]float64, n)
		pz := make([]float64, n)
		for j := 0; j < n; j++ {
			px[j] = (planeX[i][j]-cx)*pxScale + half
			py[j] = -(planeY[i][j]-cy)*pxScale + half
			pz[j] = camVerts[i][j][2]
		}

		for _, tri := range m.Tris {
			shade := lc.ComputeShade(faceNormal(camVerts[i], tri))
			raster.RasterizeTriangle(fb, px, py, pz, m.UVs, tri, tex, defR, defG, defB, defA, shade)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)
	return img, framing
}

// faceNormal returns the triangle's unit normal in camera space, so the
// fixed light direction stays camera-relative.
func faceNormal(verts []mathutil.Vec3, tri [3]int) mathutil.Vec3 {
	e1 := verts[tri[1]].Sub(verts[tri[0]])
	e2 := verts[tri[2]].Sub(verts[tri[0]])
	return e1.Cross(e2).Normalize()
}

func averageColor(tex *image.NRGBA) (uint8, uint8, uint8, uint8) {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 160, 160, 170, 255
	}

	var sumR, sumG, sumB float64
	stride := tex.Stride
	for y := 0; y < h; y++ {
		off := y * stride
		for x := 0; x < w; x++ {
			i := off + x*4
			sumR += float64(tex.Pix[i])
			sumG += float64(tex.Pix[i+1])
			sumB += float64(tex.Pix[i+2])
		}
	}
	n := float64(w * h)
	return uint8(sumR/n + 0.5), uint8(sumG/n + 0.5), uint8(sumB/n + 0.5), 255
}
