package raster

import (
	"math"

	"github.com/idkyet312/minecraftviewer/internal/mathutil"
)

// LightConfig holds flat-shading parameters.
type LightConfig struct {
	LightDir mathutil.Vec3
	Ambient  float64
	Hemi     float64
	Direct   float64
}

// DefaultLightConfig returns a soft key light from above-right plus
// hemisphere fill, tuned so unlit faces stay readable on block models.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		LightDir: mathutil.Vec3{0.6, 0.8, 0.5}.Normalize(),
		Ambient:  0.45,
		Hemi:     0.25,
		Direct:   0.55,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal,
// clamped to [0,1]. Lambertian term uses abs() so back faces of the
// double-sided cubes shade the same as front faces.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	ndl := math.Abs(normal.Dot(lc.LightDir))
	hemi := ((1.0-math.Abs(normal[1]))*0.5 + 0.5) * lc.Hemi
	shade := lc.Ambient + hemi + ndl*lc.Direct
	if shade > 1 {
		shade = 1
	}
	return shade
}
