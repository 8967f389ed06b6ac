//go:build !gocv
// +build !gocv

package raster

import (
	"context"
	"errors"

	"roof-coco/internal/domain/entity"
	"roof-coco/internal/domain/port"
)

// GoCVProber заглушка без OpenCV
type GoCVProber struct{}

// NewGoCVProber создаёт пробер-заглушку (без OpenCV).
func NewGoCVProber() *GoCVProber {
	return &GoCVProber{}
}

// Probe возвращает ошибку, если сборка без тега gocv.
func (p *GoCVProber) Probe(ctx context.Context, path string) (entity.RasterSize, error) {
	_ = ctx
	_ = path
	return entity.RasterSize{}, errors.New("gocv build tag is not enabled")
}

// GoCVAvailable сообщает, собран ли бинарник с OpenCV.
const GoCVAvailable = false

var _ port.RasterProber = (*GoCVProber)(nil)
