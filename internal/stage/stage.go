// Package stage assembles a lit scene from configuration and textures.
package stage

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/spritelight/internal/assets"
	"github.com/Faultbox/spritelight/internal/config"
	"github.com/Faultbox/spritelight/internal/engine/scene"
	"github.com/Faultbox/spritelight/internal/engine/surface"
	"github.com/Faultbox/spritelight/internal/engine/texture"
	"github.com/Faultbox/spritelight/internal/logger"
)

// SphereNormal is the Normal value that requests a generated dome normal map.
const SphereNormal = "sphere"

// NewManager creates an asset manager over the configured search paths.
// Missing directories are logged and skipped.
func NewManager(cfg *config.Config) *assets.Manager {
	m := assets.NewManager()
	for _, dir := range cfg.Assets.SearchPaths {
		if err := m.AddSearchPath(dir); err != nil {
			logger.Warn("skipping search path", zap.String("path", dir), zap.Error(err))
		}
	}
	return m
}

// Build creates the scene with one shared engine and every configured surface.
func Build(cfg *config.Config, m *assets.Manager) (*scene.Scene, error) {
	eng, err := cfg.Engine()
	if err != nil {
		return nil, fmt.Errorf("configuring engine: %w", err)
	}

	sc, err := scene.New(cfg.SceneConfig(), eng, cfg.PointLight(), cfg.HueCycle())
	if err != nil {
		return nil, err
	}

	for _, def := range cfg.Surfaces {
		surf, err := Surface(def, m)
		if err != nil {
			return nil, err
		}
		sc.AddSurface(surf)
	}

	logger.Info("stage ready",
		zap.Int("surfaces", len(cfg.Surfaces)),
		zap.Stringer("light", cfg.PointLight()),
	)
	return sc, nil
}

// Surface creates one sprite from its config.
func Surface(sc config.SurfaceConfig, m *assets.Manager) (*surface.Surface, error) {
	var diffuse *image.NRGBA
	if sc.Diffuse == "" {
		diffuse = texture.Solid(sc.Size[0], sc.Size[1], config.Color(sc.Color).NRGBA())
	} else {
		img, err := m.Texture(sc.Diffuse)
		if err != nil {
			return nil, fmt.Errorf("surface %s: %w", sc.Name, err)
		}
		diffuse = img
	}

	var normals *image.NRGBA
	switch sc.Normal {
	case "":
	case SphereNormal:
		b := diffuse.Bounds()
		normals = texture.Sphere(b.Dx(), b.Dy()).Image()
	default:
		img, err := m.Texture(sc.Normal)
		if err != nil {
			return nil, fmt.Errorf("surface %s: %w", sc.Name, err)
		}
		normals = img
	}

	surf, err := surface.New(sc.Name, diffuse, normals)
	if err != nil {
		return nil, err
	}
	surf.Tint = config.Color(sc.Tint)
	surf.Position = config.Vec2(sc.Position)
	surf.SortZ = sc.SortZ
	return surf, nil
}
