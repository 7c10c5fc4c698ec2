package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.RenderSize != 256 {
		t.Errorf("expected render size 256, got %d", cfg.RenderSize)
	}
	if cfg.Supersample != 2 {
		t.Errorf("expected supersample 2, got %d", cfg.Supersample)
	}
	if cfg.WebPQuality != 90 {
		t.Errorf("expected quality 90, got %d", cfg.WebPQuality)
	}
	if cfg.FOV != 50 {
		t.Errorf("expected fov 50, got %v", cfg.FOV)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("expected %d workers, got %d", runtime.NumCPU(), cfg.Workers)
	}
	if cfg.OutputDir != "renders" {
		t.Errorf("expected output dir renders, got %s", cfg.OutputDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Config{RenderSize: 128, Workers: 2}
	cfg.Resolve(Flags{
		ModelDir:  "/models",
		OutputDir: "/out",
		Size:      512,
		Quality:   75,
		Workers:   8,
	})

	if cfg.ModelDir != "/models" {
		t.Errorf("expected model dir /models, got %s", cfg.ModelDir)
	}
	if cfg.OutputDir != "/out" {
		t.Errorf("expected output dir /out, got %s", cfg.OutputDir)
	}
	if cfg.RenderSize != 512 {
		t.Errorf("flag must override config, got %d", cfg.RenderSize)
	}
	if cfg.WebPQuality != 75 {
		t.Errorf("expected quality 75, got %d", cfg.WebPQuality)
	}
	if cfg.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Workers)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
  "model_dir": "models",
  "output_dir": "thumbs",
  "render_size": 128,
  "supersample": 4,
  "log_level": "debug"
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ModelDir != "models" || cfg.OutputDir != "thumbs" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
	if cfg.RenderSize != 128 || cfg.Supersample != 4 {
		t.Errorf("unexpected render settings: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
