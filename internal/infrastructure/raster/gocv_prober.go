//go:build gocv
// +build gocv

package raster

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"roof-coco/internal/domain/entity"
	"roof-coco/internal/domain/port"
)

// GoCVProber читает размеры растра через OpenCV.
// Подходит для многоканальных GeoTIFF, которые не разбирает image/tiff.
// В отличие от ImageProber, IMRead декодирует все пиксели: это медленнее
// и требует памяти под весь растр, поэтому бэкенд включается только явно.
type GoCVProber struct {
	Flags gocv.IMReadFlag
}

// NewGoCVProber создаёт пробер, читающий файл без преобразования каналов.
func NewGoCVProber() *GoCVProber {
	return &GoCVProber{Flags: gocv.IMReadUnchanged}
}

// Probe открывает растр и возвращает его ширину и высоту.
func (p *GoCVProber) Probe(ctx context.Context, path string) (entity.RasterSize, error) {
	if err := ctx.Err(); err != nil {
		return entity.RasterSize{}, err
	}

	mat := gocv.IMRead(path, p.Flags)
	defer mat.Close()

	if mat.Empty() {
		return entity.RasterSize{}, fmt.Errorf("%w: opencv failed to read %s", port.ErrUnreadableRaster, path)
	}

	return entity.RasterSize{Width: mat.Cols(), Height: mat.Rows()}, nil
}

// GoCVAvailable сообщает, собран ли бинарник с OpenCV.
const GoCVAvailable = true

var _ port.RasterProber = (*GoCVProber)(nil)
