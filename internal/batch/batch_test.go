package batch

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/idkyet312/minecraftviewer/internal/texture"
)

const testModel = `{
  "minecraft:geometry": [
    {
      "description": {"texture_width": 16, "texture_height": 16},
      "bones": [{"name": "body", "cubes": [{"origin": [-2,0,-2], "size": [4,4,4], "uv": [0,0]}]}]
    }
  ]
}`

func writeAtlas(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 90, G: 160, B: 60, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zombie.geo.json", "creeper.geo.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	items, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// Sorted by stem, .geo suffix stripped.
	if items[0].Name != "creeper" || items[1].Name != "zombie" {
		t.Errorf("unexpected item order: %v", items)
	}
}

func TestRunRendersModel(t *testing.T) {
	modelDir := t.TempDir()
	outDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(modelDir, "creeper.geo.json"), []byte(testModel), 0644); err != nil {
		t.Fatal(err)
	}
	writeAtlas(t, filepath.Join(modelDir, "creeper.png"))

	items, err := Discover(modelDir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	results := Run(Config{
		OutputDir:   outDir,
		Atlases:     texture.NewCache(texture.BuildIndex(modelDir)),
		RenderSize:  32,
		Supersample: 1,
		Workers:     1,
	}, items)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if !r.Success {
		t.Fatalf("render failed: %s", r.Error)
	}
	if r.Cubes != 1 {
		t.Errorf("expected 1 cube, got %d", r.Cubes)
	}

	if _, err := os.Stat(filepath.Join(outDir, "creeper.webp")); err != nil {
		t.Errorf("expected output image: %v", err)
	}
}

func TestRunReportsBadModel(t *testing.T) {
	modelDir := t.TempDir()
	outDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(modelDir, "broken.geo.json"), []byte(`{"x": 1}`), 0644); err != nil {
		t.Fatal(err)
	}

	items, _ := Discover(modelDir)
	results := Run(Config{
		OutputDir:   outDir,
		Atlases:     texture.NewCache(texture.BuildIndex(modelDir)),
		RenderSize:  16,
		Supersample: 1,
		Workers:     1,
	}, items)

	if len(results) != 1 || results[0].Success {
		t.Fatal("expected a failed result for the malformed model")
	}
	if results[0].Error == "" {
		t.Error("expected an error message")
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	results := []Result{
		{Name: "creeper", Image: "creeper.webp", Cubes: 6, Success: true},
		{Name: "broken", Error: "boom"},
	}
	if err := WriteManifest(path, results); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only successful entries, got %d", len(entries))
	}
	if entries[0].Name != "creeper" || entries[0].Cubes != 6 {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}
