// Package app holds the startup steps shared by the binaries: logging, the
// body catalog and texture loading.
package app

import (
	"io"
	"log/slog"

	"solarsys/internal/config"
	"solarsys/internal/raster"
	"solarsys/internal/scene"
	"solarsys/internal/texture"
)

// SetupLogging installs a text slog handler on w as the default logger.
func SetupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// LoadScene reads the configured catalog, or the built-in one when none is set.
func LoadScene(cfg config.Config) (*scene.Scene, error) {
	cat, err := scene.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	return scene.New(cat, cfg.Seed), nil
}

// LoadAssets indexes AssetDir and loads every texture sc needs. A configured
// placeholder must load; otherwise a generated checkerboard stands in.
func LoadAssets(cfg config.Config, sc *scene.Scene) (*raster.Assets, error) {
	idx := texture.BuildIndex(cfg.AssetDir)
	store := texture.NewStore(idx)
	slog.Debug("textures indexed", "dir", cfg.AssetDir, "count", idx.Len())

	var placeholder texture.Handle
	if cfg.Placeholder != "" {
		h, err := store.LoadRequired(cfg.Placeholder)
		if err != nil {
			return nil, err
		}
		placeholder = h
	} else {
		placeholder = store.AddPlaceholder(texture.DefaultPlaceholderColor)
	}

	assets := raster.LoadAssets(sc, store, placeholder)
	slog.Info("assets loaded", "textures", store.Len(), "bodies", len(sc.Bodies))
	return assets, nil
}
