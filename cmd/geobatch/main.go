package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/idkyet312/minecraftviewer/internal/batch"
	"github.com/idkyet312/minecraftviewer/internal/config"
	"github.com/idkyet312/minecraftviewer/internal/logger"
	"github.com/idkyet312/minecraftviewer/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	modelDir := flag.String("models", "", "Directory of geometry JSON files (required)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	testN := flag.Int("test", 0, "Render only first N models for testing")
	size := flag.Int("size", 0, "Output size in pixels (default: 256)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		ModelDir:  *modelDir,
		OutputDir: *outputDir,
		Size:      *size,
		Quality:   *quality,
		Workers:   *workers,
	})
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	if cfg.ModelDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no model directory. Use -models flag or config.json.")
		os.Exit(1)
	}

	items, err := batch.Discover(cfg.ModelDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *testN > 0 && *testN < len(items) {
		items = items[:*testN]
	}
	if len(items) == 0 {
		fmt.Println("No models to render.")
		os.Exit(0)
	}

	// Atlases live next to the geometry files, matched by stem.
	texIndex := texture.BuildIndex(cfg.ModelDir)
	texCache := texture.NewCache(texIndex)

	fmt.Printf("Bedrock geometry batch renderer → WebP\n")
	fmt.Printf("Models: %d, Atlases: %d, Workers: %d\n", len(items), texIndex.Len(), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Atlases:     texCache,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		FOV:         cfg.FOV,
		Workers:     cfg.Workers,
	}, items)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(items))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
