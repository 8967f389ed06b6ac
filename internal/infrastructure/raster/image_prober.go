package raster

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"

	"roof-coco/internal/domain/entity"
	"roof-coco/internal/domain/port"
)

// ImageProber читает размеры растра из заголовка файла (TIFF, PNG, JPEG).
type ImageProber struct{}

// NewImageProber создаёт пробер на основе image.DecodeConfig
func NewImageProber() *ImageProber {
	return &ImageProber{}
}

// Probe возвращает размеры растра, не декодируя пиксели.
func (p *ImageProber) Probe(ctx context.Context, path string) (entity.RasterSize, error) {
	if err := ctx.Err(); err != nil {
		return entity.RasterSize{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return entity.RasterSize{}, fmt.Errorf("%w: open %s: %v", port.ErrUnreadableRaster, path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return entity.RasterSize{}, fmt.Errorf("%w: decode header %s: %v", port.ErrUnreadableRaster, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return entity.RasterSize{}, fmt.Errorf("%w: %s %s has invalid size %dx%d", port.ErrUnreadableRaster, format, path, cfg.Width, cfg.Height)
	}

	return entity.RasterSize{Width: cfg.Width, Height: cfg.Height}, nil
}

// Проверка реализации интерфейса
var _ port.RasterProber = (*ImageProber)(nil)
