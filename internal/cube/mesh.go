// Package cube realizes box descriptors as triangle meshes for the
// software rasterizer.
package cube

import (
	"github.com/idkyet312/minecraftviewer/internal/geometry"
	"github.com/idkyet312/minecraftviewer/internal/mathutil"
	"github.com/idkyet312/minecraftviewer/internal/scene"
)

// Mesh holds one cube as renderable geometry: 24 vertices (4 per face, so
// each face carries its own atlas region) and 12 triangles. Verts and UVs
// are index-aligned.
type Mesh struct {
	Verts []mathutil.Vec3
	UVs   [][2]float64
	Tris  [][3]int
}

// corner multipliers per face, in UV order: bottom-left, bottom-right,
// top-right, top-left (as seen from outside the face).
var faceCorners = [geometry.FaceCount][4][3]float64{
	geometry.FacePosX: {{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	geometry.FaceNegX: {{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	geometry.FacePosY: {{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	geometry.FaceNegY: {{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	geometry.FacePosZ: {{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	geometry.FaceNegZ: {{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
}

// defaultFaceUVs maps the whole atlas onto every face, the fallback for
// cubes without an explicit uv origin.
var defaultFaceUVs = func() geometry.FaceUVs {
	var uvs geometry.FaceUVs
	for i := range uvs {
		uvs[i] = geometry.FaceRect{U0: 0, V0: 0, U1: 1, V1: 1}
	}
	return uvs
}()

// Build realizes one box descriptor in model space, applying its optional
// pivot/rotation group to the vertices.
func Build(box *geometry.BoxDescriptor) *Mesh {
	uvs := defaultFaceUVs
	if box.UVs != nil {
		uvs = *box.UVs
	}

	half := box.Size.Scale(0.5)

	rot := mathutil.Mat3Identity()
	base := box.Center
	if box.Transform != nil {
		rot = mathutil.EulerXYZDeg(
			box.Transform.Rotation[0],
			box.Transform.Rotation[1],
			box.Transform.Rotation[2],
		)
		base = box.Transform.Pivot
	}
	offset := box.MeshOffset()

	m := &Mesh{
		Verts: make([]mathutil.Vec3, 0, 24),
		UVs:   make([][2]float64, 0, 24),
		Tris:  make([][3]int, 0, 12),
	}

	for face := geometry.Face(0); face < geometry.FaceCount; face++ {
		r := uvs[face]
		cornerUVs := [4][2]float64{
			{r.U0, r.V0}, {r.U1, r.V0}, {r.U1, r.V1}, {r.U0, r.V1},
		}
		vi := len(m.Verts)
		for c := 0; c < 4; c++ {
			mul := faceCorners[face][c]
			local := mathutil.Vec3{mul[0] * half[0], mul[1] * half[1], mul[2] * half[2]}
			world := base.Add(rot.MulVec3(offset.Add(local)))
			m.Verts = append(m.Verts, world)
			m.UVs = append(m.UVs, cornerUVs[c])
		}
		m.Tris = append(m.Tris, [3]int{vi, vi + 1, vi + 2}, [3]int{vi, vi + 2, vi + 3})
	}
	return m
}

// BuildAll realizes every descriptor in order.
func BuildAll(boxes []geometry.BoxDescriptor) []*Mesh {
	meshes := make([]*Mesh, len(boxes))
	for i := range boxes {
		meshes[i] = Build(&boxes[i])
	}
	return meshes
}

// Bounds implements scene.Bounder over the transformed vertices.
func (m *Mesh) Bounds() scene.Bounds {
	b := scene.EmptyBounds()
	for _, v := range m.Verts {
		b = b.ExtendPoint(v)
	}
	return b
}
