package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/idkyet312/minecraftviewer/internal/geometry"
)

const testModel = `{
  "minecraft:geometry": [
    {
      "description": {"texture_width": 16, "texture_height": 16},
      "bones": [{"name": "root", "cubes": [{"origin": [0,0,0], "size": [2,2,2]}]}]
    }
  ]
}`

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestLoadPairHTTP(t *testing.T) {
	atlas := pngBytes(t, 16, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/model.geo.json":
			w.Write([]byte(testModel))
		case "/atlas.png":
			w.Write(atlas)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	model, img, err := LoadPair(srv.URL+"/model.geo.json", srv.URL+"/atlas.png")
	if err != nil {
		t.Fatalf("LoadPair failed: %v", err)
	}
	if model.Geometries[0].CubeCount() != 1 {
		t.Errorf("expected 1 cube, got %d", model.Geometries[0].CubeCount())
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("expected 16x16 atlas, got %v", img.Bounds())
	}
}

func TestLoadPairFiles(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.geo.json")
	atlasPath := filepath.Join(dir, "atlas.png")
	if err := os.WriteFile(modelPath, []byte(testModel), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(atlasPath, pngBytes(t, 8, 8), 0644); err != nil {
		t.Fatal(err)
	}

	model, img, err := LoadPair(modelPath, atlasPath)
	if err != nil {
		t.Fatalf("LoadPair failed: %v", err)
	}
	if len(model.Geometries) != 1 {
		t.Errorf("expected 1 geometry, got %d", len(model.Geometries))
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("expected 8px atlas, got %v", img.Bounds())
	}
}

func TestLoadPairMissingAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/model.geo.json" {
			w.Write([]byte(testModel))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, _, err := LoadPair(srv.URL+"/model.geo.json", srv.URL+"/missing.png")
	if err == nil {
		t.Fatal("expected error for missing texture")
	}
	var lErr *LoadError
	if !errors.As(err, &lErr) {
		t.Fatalf("expected LoadError, got %T: %v", err, err)
	}
	if lErr.Asset != "texture" {
		t.Errorf("expected texture asset error, got %q", lErr.Asset)
	}
}

func TestLoadPairMalformedModel(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "bad.geo.json")
	atlasPath := filepath.Join(dir, "atlas.png")
	if err := os.WriteFile(modelPath, []byte(`{"format_version": "1.12.0"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(atlasPath, pngBytes(t, 4, 4), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadPair(modelPath, atlasPath)
	if err == nil {
		t.Fatal("expected error for model without minecraft:geometry")
	}
	var mErr *geometry.MalformedModelError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedModelError, got %T: %v", err, err)
	}
}

func TestFetchLocal(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(p, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := Fetch(p)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("expected hello, got %q", data)
	}

	if _, err := Fetch(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
