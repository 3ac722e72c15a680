// Package main is the entry point for the interactive spritelight viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/spritelight/internal/config"
	"github.com/Faultbox/spritelight/internal/engine/capture"
	"github.com/Faultbox/spritelight/internal/logger"
	"github.com/Faultbox/spritelight/internal/stage"
	"github.com/Faultbox/spritelight/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== spritelight viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Textures and the lit scene
	assets := stage.NewManager(cfg)
	defer assets.Close()
	sc, err := stage.Build(cfg, assets)
	if err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		os.Exit(1)
	}

	format, err := cfg.OutputFormat()
	if err != nil {
		logger.Error("invalid output format", zap.Error(err))
		os.Exit(1)
	}
	shots, err := capture.New(cfg.Output.Dir, "screenshot", format, cfg.Output.Scale)
	if err != nil {
		logger.Error("failed to create capture", zap.Error(err))
		os.Exit(1)
	}

	// Create and run viewer
	v, err := viewer.New(viewer.Config{
		Title:      cfg.Window.Title,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		FPSLimit:   cfg.Window.FPSLimit,
	}, sc, shots)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Run the render loop
	if err := v.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
