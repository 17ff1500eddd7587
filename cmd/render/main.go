package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"solarsys/internal/app"
	"solarsys/internal/batch"
	"solarsys/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json or .toml)")
	assetDir := flag.String("assets", "", "Directory holding textures/ (default: auto-detect)")
	outputDir := flag.String("output", "", "Output directory (default: <assets>/frames)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	width := flag.Int("width", 0, "Frame width (default: 1280)")
	height := flag.Int("height", 0, "Frame height (default: 720)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()
	app.SetupLogging(os.Stderr, *verbose)

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AssetDir:  *assetDir,
		OutputDir: *outputDir,
		Width:     *width,
		Height:    *height,
		Workers:   *workers,
		Frames:    *frames,
	})

	sc, err := app.LoadScene(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	assets, err := app.LoadAssets(cfg, sc)
	if err != nil {
		slog.Error("cannot load placeholder texture", "err", err)
		os.Exit(1)
	}

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Frames:      cfg.Frames,
		FPS:         cfg.FPS,
		Camera:      cfg.Camera.State(),
		YawSpeed:    cfg.Camera.YawSpeed,
		Scene:       cfg.Scene,
	}

	fmt.Printf("Solar system frame export\n")
	fmt.Printf("Frames: %d at %.0f fps, %dx%d, Workers: %d\n", cfg.Frames, cfg.FPS, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	jobs := batch.Plan(sc, batchCfg)
	results := batch.Run(ctx, batchCfg, assets, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success := 0
	var failed []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, e := range failed[:min(len(failed), 20)] {
			fmt.Printf("  %s: %s\n", e.File, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, jobs); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
