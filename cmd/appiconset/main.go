// Command appiconset renders the app icon set and writes its Contents.json.
//
// It takes no arguments. Settings come from the YAML file named by
// APPICON_CONFIG_PATH (default appicon.yaml, optional) and APPICON_*
// environment variables.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sydlexius/appiconset/internal/config"
	"github.com/sydlexius/appiconset/internal/icon"
	"github.com/sydlexius/appiconset/internal/iconset"
	"github.com/sydlexius/appiconset/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("APPICON_CONFIG_PATH")
	if configPath == "" {
		configPath = "appicon.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logCfg := logging.Config{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		FilePath: cfg.Logging.FilePath,
	}
	logManager, logger := logging.NewManager(logCfg, os.Stderr)
	defer logManager.Close() //nolint:errcheck
	logger = logging.ForRun(logger)
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		slog.String("config", configPath),
		slog.String("logging", logCfg.String()))

	// Without a usable font nothing can be drawn, so fail before any output.
	labelFont, err := icon.LoadFont(cfg.Render.FontPath, logger)
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	renderer := icon.NewRenderer(labelFont, cfg.Render.Label)

	gen := iconset.NewGenerator(renderer, cfg.Output.Dir, iconset.DefaultEntries(), os.Stdout, logger)
	res, err := gen.Run()
	if err != nil {
		return err
	}

	logger.Info("icon set generated",
		slog.String("dir", res.Dir),
		slog.Int("images", len(res.Images)),
		slog.String("manifest", res.Manifest))
	return nil
}
