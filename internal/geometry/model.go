package geometry

import (
	"encoding/json"
	"fmt"
)

// DefaultTextureSize is assumed when the description omits atlas dimensions.
const DefaultTextureSize = 64

// ModelDescription is the root document of a Bedrock geometry JSON file.
// Only the first geometry entry is rendered.
type ModelDescription struct {
	FormatVersion string     `json:"format_version"`
	Geometries    []Geometry `json:"minecraft:geometry"`
}

// Geometry holds one model: atlas description plus an ordered bone list.
type Geometry struct {
	Description Description `json:"description"`
	Bones       []Bone      `json:"bones"`
}

// Description carries the shared texture atlas dimensions.
type Description struct {
	Identifier    string `json:"identifier"`
	TextureWidth  int    `json:"texture_width"`
	TextureHeight int    `json:"texture_height"`
}

// TextureSize returns the declared atlas dimensions, defaulting to 64×64.
func (d Description) TextureSize() (int, int) {
	w, h := d.TextureWidth, d.TextureHeight
	if w <= 0 {
		w = DefaultTextureSize
	}
	if h <= 0 {
		h = DefaultTextureSize
	}
	return w, h
}

// Bone is a named cube container. Parent is stored as an informational
// string and never dereferenced: cubes are placed in model space, not
// relative to their bone's ancestors.
type Bone struct {
	Name   string      `json:"name"`
	Parent string      `json:"parent,omitempty"`
	Pivot  *[3]float64 `json:"pivot,omitempty"`
	Cubes  []Cube      `json:"cubes,omitempty"`
}

// Cube is a single box primitive. Optional fields are pointers so that
// "absent" is distinguishable from an explicit zero value.
type Cube struct {
	Origin   *[3]float64 `json:"origin,omitempty"`
	Size     *[3]float64 `json:"size,omitempty"`
	Pivot    *[3]float64 `json:"pivot,omitempty"`
	Rotation *[3]float64 `json:"rotation,omitempty"`
	UV       *[2]float64 `json:"uv,omitempty"`
	Mirror   bool        `json:"mirror,omitempty"`
}

// BoneIndex returns an ownership-free lookup table from bone name to its
// entry in the bone list. Later duplicates win, matching JSON object
// semantics in the reference viewer.
func (g *Geometry) BoneIndex() map[string]*Bone {
	m := make(map[string]*Bone, len(g.Bones))
	for i := range g.Bones {
		m[g.Bones[i].Name] = &g.Bones[i]
	}
	return m
}

// CubeCount returns the total cube count across all bones.
func (g *Geometry) CubeCount() int {
	n := 0
	for i := range g.Bones {
		n += len(g.Bones[i].Cubes)
	}
	return n
}

// MalformedModelError reports a fatal structural problem with the model
// document: undecodable JSON or a missing/empty minecraft:geometry array.
type MalformedModelError struct {
	Reason string
	Err    error
}

func (e *MalformedModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geometry: %s: %v", e.Reason, e.Err)
	}
	return "geometry: " + e.Reason
}

func (e *MalformedModelError) Unwrap() error { return e.Err }

// Parse decodes a geometry JSON document and validates that at least one
// geometry entry is present. Per-field validation is deliberately absent:
// missing values fall back to documented defaults during interpretation.
func Parse(data []byte) (*ModelDescription, error) {
	var m ModelDescription
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &MalformedModelError{Reason: "decode model JSON", Err: err}
	}
	if len(m.Geometries) == 0 {
		return nil, &MalformedModelError{Reason: "missing or empty minecraft:geometry"}
	}
	return &m, nil
}
