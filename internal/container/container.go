package container

import (
	"fmt"
	"log"

	app "roof-coco/internal/application"
	"roof-coco/internal/domain/port"
	"roof-coco/internal/infrastructure/geojson"
	"roof-coco/internal/infrastructure/raster"
	"roof-coco/internal/infrastructure/storage"
)

const (
	RasterBackendImage = "image"
	RasterBackendGoCV  = "gocv"
)

type Container struct {
	ConvertService *app.ConvertService
}

// New собирает сервис конвертации с выбранным способом чтения растров.
func New(rasterBackend string, logger *log.Logger) (*Container, error) {
	prober, err := newProber(rasterBackend)
	if err != nil {
		return nil, err
	}

	convertService := app.NewConvertService(prober, geojson.NewReader(), storage.NewJSONWriter(), logger)

	return &Container{
		ConvertService: convertService,
	}, nil
}

func newProber(backend string) (port.RasterProber, error) {
	switch backend {
	case "", RasterBackendImage:
		return raster.NewImageProber(), nil
	case RasterBackendGoCV:
		if !raster.GoCVAvailable {
			return nil, fmt.Errorf("raster backend %q requires the gocv build tag", backend)
		}
		return raster.NewGoCVProber(), nil
	default:
		return nil, fmt.Errorf("unknown raster backend %q", backend)
	}
}
