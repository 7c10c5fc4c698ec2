package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/idkyet312/minecraftviewer/internal/assets"
	"github.com/idkyet312/minecraftviewer/internal/config"
	"github.com/idkyet312/minecraftviewer/internal/geometry"
	"github.com/idkyet312/minecraftviewer/internal/logger"
	"github.com/idkyet312/minecraftviewer/internal/postprocess"
	"github.com/idkyet312/minecraftviewer/internal/render"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	modelSrc := flag.String("model", "", "Geometry JSON path or URL (required)")
	atlasSrc := flag.String("texture", "", "Texture atlas path or URL (required)")
	outPath := flag.String("out", "", "Output image path, .webp or .png (default: <model>.webp)")
	size := flag.Int("size", 0, "Output size in pixels (default: 256)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
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
	cfg.Resolve(config.Flags{Size: *size, Quality: *quality})
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	if *modelSrc == "" || *atlasSrc == "" {
		fmt.Fprintln(os.Stderr, "Error: -model and -texture are required.")
		flag.Usage()
		os.Exit(1)
	}

	// Model JSON and atlas are independent fetches, joined here.
	model, atlas, err := assets.LoadPair(*modelSrc, *atlasSrc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	geo := &model.Geometries[0]
	texW, texH := geo.Description.TextureSize()
	logger.Infof("model %s: %d bones, %d cubes, atlas %dx%d",
		geo.Description.Identifier, len(geo.Bones), geo.CubeCount(), texW, texH)

	boxes, err := geometry.Interpret(model, texW, texH)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, framing := render.Model(boxes, atlas, render.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		FOV:         cfg.FOV,
	})
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	if framing.Empty {
		logger.Infof("empty model: no cubes to frame")
	} else {
		logger.Infof("framing: scale %.3f, camera dist %.1f, far plane %.1f",
			framing.Scale, framing.CameraDistance, framing.FarPlane)
	}

	out := *outPath
	if out == "" {
		stem := strings.TrimSuffix(filepath.Base(*modelSrc), filepath.Ext(*modelSrc))
		out = strings.TrimSuffix(stem, ".geo") + ".webp"
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(out), ".png") {
		err = png.Encode(f, img)
	} else {
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %s → %s (%dpx)\n", *modelSrc, out, cfg.RenderSize)
}
