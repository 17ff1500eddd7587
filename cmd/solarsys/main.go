package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"solarsys/internal/app"
	"solarsys/internal/config"
	"solarsys/internal/viewer"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json or .toml)")
	assetDir := flag.String("assets", "", "Directory holding textures/ (default: auto-detect)")
	width := flag.Int("width", 0, "Window width (default: 1280)")
	height := flag.Int("height", 0, "Window height (default: 720)")
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
		AssetDir: *assetDir,
		Width:    *width,
		Height:   *height,
	})
	if cfg.AssetDir == "" {
		slog.Warn("no textures/ directory found, bodies will use placeholders; use -assets")
	}

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

	sceneCfg := cfg.Scene
	game := viewer.New(sc, assets, &sceneCfg, viewer.Options{
		Title:       "Solar System",
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Camera:      cfg.Camera.State(),
	})
	if err := viewer.Run(game); err != nil {
		slog.Error("viewer", "err", err)
		os.Exit(1)
	}
}
