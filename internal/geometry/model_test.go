package geometry

import (
	"errors"
	"testing"
)

const sampleModel = `{
  "format_version": "1.12.0",
  "minecraft:geometry": [
    {
      "description": {
        "identifier": "geometry.creeper",
        "texture_width": 64,
        "texture_height": 32
      },
      "bones": [
        {"name": "body", "pivot": [0, 0, 0], "cubes": [
          {"origin": [-4, 6, -2], "size": [8, 12, 4], "uv": [16, 16]}
        ]},
        {"name": "head", "parent": "body", "cubes": [
          {"origin": [-4, 18, -4], "size": [8, 8, 8], "uv": [0, 0]}
        ]}
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	model, err := Parse([]byte(sampleModel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(model.Geometries) != 1 {
		t.Fatalf("expected 1 geometry, got %d", len(model.Geometries))
	}

	geo := &model.Geometries[0]
	if geo.Description.Identifier != "geometry.creeper" {
		t.Errorf("expected identifier geometry.creeper, got %s", geo.Description.Identifier)
	}
	if len(geo.Bones) != 2 {
		t.Fatalf("expected 2 bones, got %d", len(geo.Bones))
	}
	if geo.Bones[1].Parent != "body" {
		t.Errorf("expected head parent body, got %q", geo.Bones[1].Parent)
	}
	if geo.CubeCount() != 2 {
		t.Errorf("expected 2 cubes, got %d", geo.CubeCount())
	}
}

func TestParseMissingGeometry(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no field", `{"format_version": "1.12.0"}`},
		{"empty array", `{"minecraft:geometry": []}`},
		{"not json", `{{{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var mErr *MalformedModelError
			if !errors.As(err, &mErr) {
				t.Errorf("expected MalformedModelError, got %T: %v", err, err)
			}
		})
	}
}

func TestTextureSizeDefaults(t *testing.T) {
	var d Description
	w, h := d.TextureSize()
	if w != 64 || h != 64 {
		t.Errorf("expected default 64x64, got %dx%d", w, h)
	}

	d = Description{TextureWidth: 128, TextureHeight: 32}
	w, h = d.TextureSize()
	if w != 128 || h != 32 {
		t.Errorf("expected 128x32, got %dx%d", w, h)
	}
}

func TestBoneIndex(t *testing.T) {
	model, err := Parse([]byte(sampleModel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	idx := model.Geometries[0].BoneIndex()
	if len(idx) != 2 {
		t.Fatalf("expected 2 bones in index, got %d", len(idx))
	}
	head, ok := idx["head"]
	if !ok {
		t.Fatal("head not in index")
	}
	if head.Parent != "body" {
		t.Errorf("expected head parent body, got %q", head.Parent)
	}
}
