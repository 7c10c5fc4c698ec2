// Package scene aggregates primitive bounds and derives the normalization
// and camera framing for a loaded model. It is pure geometry: no texture
// or UV dependency.
package scene

import (
	"math"

	"github.com/idkyet312/minecraftviewer/internal/mathutil"
)

const (
	// TargetSize is the normalized extent of the assembled model: after
	// scaling, its largest bounding-box dimension measures 60 units.
	TargetSize = 60.0

	// NearPlane is the fixed camera near plane.
	NearPlane = 0.1
)

// Bounds is an axis-aligned bounding box. The zero-ish "empty" state has
// Min > Max on every axis so Extend works without special cases.
type Bounds struct {
	Min, Max mathutil.Vec3
}

// EmptyBounds returns a box that contains nothing.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: mathutil.Vec3{inf, inf, inf},
		Max: mathutil.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Bounds) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// ExtendPoint grows the box to include p.
func (b Bounds) ExtendPoint(p mathutil.Vec3) Bounds {
	return Bounds{Min: mathutil.MinElems(b.Min, p), Max: mathutil.MaxElems(b.Max, p)}
}

// Union grows the box to include o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Bounds{Min: mathutil.MinElems(b.Min, o.Min), Max: mathutil.MaxElems(b.Max, o.Max)}
}

// Center returns the box midpoint.
func (b Bounds) Center() mathutil.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent per axis.
func (b Bounds) Size() mathutil.Vec3 {
	return b.Max.Sub(b.Min)
}

// Bounder is any renderable primitive that can report its own local-space
// bounding box for aggregation.
type Bounder interface {
	Bounds() Bounds
}

// Framing holds the assembled scene parameters: the aggregate bounding
// box, the normalization transform, and the derived camera placement.
type Framing struct {
	Bounds      Bounds
	Translation mathutil.Vec3 // applied to the root so its origin is the bbox center
	Scale       float64       // uniform, TargetSize / maxDimension

	CameraDistance float64
	CameraPosition mathutil.Vec3
	NearPlane      float64
	FarPlane       float64
	OrbitTarget    mathutil.Vec3

	// Empty is set when there were no primitives; normalization and
	// framing are skipped and the root is exposed untransformed.
	Empty bool
}

// Assemble computes the aggregate bounds of all primitives and derives
// translation, scale, and camera framing. Camera distance comes from the
// pre-scale bounding box, matching the reference viewer.
func Assemble(prims []Bounder) Framing {
	bounds := EmptyBounds()
	for _, p := range prims {
		bounds = bounds.Union(p.Bounds())
	}

	if bounds.IsEmpty() {
		return Framing{Bounds: bounds, Scale: 1, Empty: true}
	}

	f := Framing{Bounds: bounds, Scale: 1}
	f.Translation = bounds.Center().Scale(-1)

	maxDim := bounds.Size().MaxComponent()
	if maxDim > 0 {
		f.Scale = TargetSize / maxDim
	}

	dist := 2 * maxDim
	f.CameraDistance = dist
	f.CameraPosition = mathutil.Vec3{0.8 * dist, 0.6 * dist, 1.2 * dist}
	f.NearPlane = NearPlane
	f.FarPlane = 10*dist + 100
	f.OrbitTarget = mathutil.Vec3{}
	return f
}
