package geometry

import "github.com/idkyet312/minecraftviewer/internal/mathutil"

// Face identifies one side of a cube by its outward axis.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	FaceCount
)

// FaceRect is one atlas region in normalized UV space, fractions of the
// texture in [0,1] with V increasing upward. U0/V0 is the lower-left
// corner, U1/V1 the upper-right. Mirrored faces have U0 > U1.
type FaceRect struct {
	U0, V0 float64
	U1, V1 float64
}

// FaceUVs holds the six face regions of one cube, indexed by Face.
type FaceUVs [FaceCount]FaceRect

// Transform is an optional rotation group around a pivot point.
// Rotation is intrinsic XYZ Euler, in degrees.
type Transform struct {
	Pivot    mathutil.Vec3
	Rotation mathutil.Vec3
}

// BoxDescriptor is the interpreter output for one cube: a sized box at a
// model-space center, an optional pivot/rotation group, and optional face
// UV regions (nil means default unmapped UVs).
type BoxDescriptor struct {
	Size      mathutil.Vec3
	Center    mathutil.Vec3
	Transform *Transform
	UVs       *FaceUVs
}

// MeshOffset is the box's local position inside its rotation group, chosen
// so the box still occupies Center when rotation is zero. Zero without a
// transform group.
func (b *BoxDescriptor) MeshOffset() mathutil.Vec3 {
	if b.Transform == nil {
		return mathutil.Vec3{}
	}
	return b.Center.Sub(b.Transform.Pivot)
}
