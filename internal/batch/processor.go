// Package batch renders every geometry file under a directory to WebP
// thumbnails using a worker pool.
package batch

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/idkyet312/minecraftviewer/internal/assets"
	"github.com/idkyet312/minecraftviewer/internal/geometry"
	"github.com/idkyet312/minecraftviewer/internal/logger"
	"github.com/idkyet312/minecraftviewer/internal/postprocess"
	"github.com/idkyet312/minecraftviewer/internal/render"
	"github.com/idkyet312/minecraftviewer/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Atlases     texture.Resolver
	RenderSize  int
	Supersample int
	FOV         float64
	Workers     int
}

// Item is one geometry file to render.
type Item struct {
	Name      string // stem, e.g. "creeper" for creeper.geo.json
	ModelPath string
}

// Result holds the outcome of processing one item.
type Result struct {
	Name    string
	Image   string
	Cubes   int
	Success bool
	Error   string
}

// Discover lists geometry JSON files under dir, sorted by name.
func Discover(dir string) ([]Item, error) {
	var items []Item
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(path), ".json") {
			return nil
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		stem = strings.TrimSuffix(stem, ".geo")
		items = append(items, Item{Name: stem, ModelPath: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// Run processes all items using a worker pool.
func Run(cfg Config, items []Item) []Result {
	total := len(items)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Infof("[%d/%d] %.1f models/sec", p, total, rate)
				}
			}
		}
	}()

	itemChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range itemChan {
				results[idx] = processItem(cfg, items[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range items {
		itemChan <- i
	}
	close(itemChan)
	wg.Wait()
	close(done)

	return results
}

func processItem(cfg Config, item Item) Result {
	raw, err := assets.Fetch(item.ModelPath)
	if err != nil {
		return Result{Name: item.Name, Error: err.Error()}
	}

	model, err := geometry.Parse(raw)
	if err != nil {
		return Result{Name: item.Name, Error: err.Error()}
	}

	texW, texH := model.Geometries[0].Description.TextureSize()
	boxes, err := geometry.Interpret(model, texW, texH)
	if err != nil {
		return Result{Name: item.Name, Error: err.Error()}
	}

	var atlas *image.NRGBA
	if cfg.Atlases != nil {
		atlas = cfg.Atlases.Resolve(item.Name)
	}

	img, _ := render.Model(boxes, atlas, render.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		FOV:         cfg.FOV,
	})
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, item.Name+".webp")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: item.Name, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Name: item.Name, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Name: item.Name, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{
		Name:    item.Name,
		Image:   item.Name + ".webp",
		Cubes:   len(boxes),
		Success: true,
	}
}
