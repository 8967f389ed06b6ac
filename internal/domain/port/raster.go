package port

import (
	"context"
	"errors"

	"roof-coco/internal/domain/entity"
)

// ErrUnreadableRaster возвращается, если растр не удалось открыть или прочитать заголовок
var ErrUnreadableRaster = errors.New("unreadable raster")

// RasterProber интерфейс чтения размеров растра
type RasterProber interface {
	// Probe возвращает ширину и высоту растра без чтения пикселей
	Probe(ctx context.Context, path string) (entity.RasterSize, error)
}
