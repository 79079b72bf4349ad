package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/younwookim/wars/internal/domain/entity"
	"github.com/younwookim/wars/internal/infrastructure/config"
	"github.com/younwookim/wars/internal/infrastructure/render"
)

const (
	backgroundW = 128
	backgroundH = 72
	spriteSize  = 64
	borderWidth = 2
)

var borderColor = color.RGBA{200, 200, 200, 255}

// Generate writes a placeholder PNG for every texture named in the scenes
// config. Slot 0 is a background; other slots get a bordered sprite tile.
// Existing files are kept unless force is set. Returns the written paths.
func Generate(scenes *config.ScenesConfig, outDir string, force bool) ([]string, error) {
	var written []string
	seen := make(map[string]bool)

	for _, ac := range []config.AssetsConfig{scenes.Menu.Assets, scenes.HardModeMenu.Assets, scenes.Game, scenes.Dummy} {
		for _, tc := range ac.Textures {
			if seen[tc.Path] {
				continue
			}
			seen[tc.Path] = true

			dst := filepath.Join(outDir, filepath.FromSlash(tc.Path))
			if !force {
				if _, err := os.Stat(dst); err == nil {
					continue
				}
			}
			if err := savePNG(dst, placeholder(tc.Slot)); err != nil {
				return written, err
			}
			written = append(written, dst)
		}
	}
	return written, nil
}

func placeholder(slot int) *image.RGBA {
	fill := render.PlaceholderColor(slot, entity.White)
	if slot == 0 {
		img := image.NewRGBA(image.Rect(0, 0, backgroundW, backgroundH))
		draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{borderColor}, image.Point{}, draw.Src)
	inner := image.Rect(borderWidth, borderWidth, spriteSize-borderWidth, spriteSize-borderWidth)
	draw.Draw(img, inner, &image.Uniform{fill}, image.Point{}, draw.Src)
	return img
}

func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
