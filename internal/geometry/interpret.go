package geometry

import (
	"fmt"
	"math"

	"github.com/idkyet312/minecraftviewer/internal/logger"
	"github.com/idkyet312/minecraftviewer/internal/mathutil"
)

// Interpret converts the first geometry of a model into box descriptors,
// one per cube, in bone-then-cube order. texW/texH are the atlas dimensions
// used to normalize UV texel coordinates (see Description.TextureSize).
//
// Cubes are positioned absolutely: bone parent chains are never composed.
// A failed UV computation downgrades that cube to unmapped UVs and the
// interpretation continues.
func Interpret(model *ModelDescription, texW, texH int) ([]BoxDescriptor, error) {
	if model == nil || len(model.Geometries) == 0 {
		return nil, &MalformedModelError{Reason: "missing or empty minecraft:geometry"}
	}

	geo := &model.Geometries[0]
	boxes := make([]BoxDescriptor, 0, geo.CubeCount())

	for bi := range geo.Bones {
		bone := &geo.Bones[bi]
		for ci := range bone.Cubes {
			boxes = append(boxes, interpretCube(bone, &bone.Cubes[ci], texW, texH))
		}
	}
	return boxes, nil
}

func interpretCube(bone *Bone, cube *Cube, texW, texH int) BoxDescriptor {
	origin := vecOr(cube.Origin, mathutil.Vec3{})
	size := vecOr(cube.Size, mathutil.Vec3{1, 1, 1})
	center := origin.Add(size.Scale(0.5))

	box := BoxDescriptor{Size: size, Center: center}

	if cube.UV != nil {
		uvs, err := faceUVs(cube.UV[0], cube.UV[1], size, texW, texH, cube.Mirror)
		if err != nil {
			// Best-effort: the cube renders with default UVs.
			logger.Warnf("uv mapping failed for cube in bone %q: %v", bone.Name, err)
		} else {
			box.UVs = uvs
		}
	}

	if cube.Pivot != nil || cube.Rotation != nil {
		box.Transform = &Transform{
			Pivot:    vecOr(cube.Pivot, mathutil.Vec3{}),
			Rotation: vecOr(cube.Rotation, mathutil.Vec3{}),
		}
	}
	return box
}

// faceUVs lays the six faces out in the Bedrock cube net. With UV origin
// (u,v) and cube size (w,h,d) the atlas regions are, in texels:
//
//	        (u+d,v)      (u+d+w,v)
//	          [+Y  w×d]    [-Y  w×d]
//	(u,v+d) (u+d,v+d)    (u+d+w,v+d) (u+d+w+d,v+d)
//	[-X d×h]  [+Z  w×h]    [+X  d×h]   [-Z  w×h]
func faceUVs(u, v float64, size mathutil.Vec3, texW, texH int, mirror bool) (*FaceUVs, error) {
	if texW <= 0 || texH <= 0 {
		return nil, fmt.Errorf("non-positive texture size %dx%d", texW, texH)
	}
	w, h, d := size[0], size[1], size[2]

	var uvs FaceUVs
	uvs[FacePosX] = texelRect(u+d+w, v+d, d, h, texW, texH)
	uvs[FaceNegX] = texelRect(u, v+d, d, h, texW, texH)
	uvs[FacePosY] = texelRect(u+d, v, w, d, texW, texH)
	uvs[FaceNegY] = texelRect(u+d+w, v, w, d, texW, texH)
	uvs[FacePosZ] = texelRect(u+d, v+d, w, h, texW, texH)
	uvs[FaceNegZ] = texelRect(u+d+w+d, v+d, w, h, texW, texH)

	for i := range uvs {
		r := &uvs[i]
		if !isFinite(r.U0) || !isFinite(r.V0) || !isFinite(r.U1) || !isFinite(r.V1) {
			return nil, fmt.Errorf("non-finite uv rect for face %d", i)
		}
		if mirror {
			// Horizontal flip only, independent per face.
			r.U0, r.U1 = r.U1, r.U0
		}
	}
	return &uvs, nil
}

// texelRect converts an atlas region at texel (x,y) with size (rw,rh) to
// fractional UVs. The atlas origin is top-left, UV origin bottom-left, so
// the V axis flips: V range is [1-(y+rh)/texH, 1-y/texH].
func texelRect(x, y, rw, rh float64, texW, texH int) FaceRect {
	fw, fh := float64(texW), float64(texH)
	return FaceRect{
		U0: x / fw,
		V0: 1 - (y+rh)/fh,
		U1: (x + rw) / fw,
		V1: 1 - y/fh,
	}
}

func vecOr(p *[3]float64, def mathutil.Vec3) mathutil.Vec3 {
	if p == nil {
		return def
	}
	return mathutil.Vec3{p[0], p[1], p[2]}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
