package geojson

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"roof-coco/internal/domain/entity"
	"roof-coco/internal/domain/port"
)

// Reader загружает GeoJSON FeatureCollection с диска
type Reader struct{}

// NewReader создаёт читатель GeoJSON
func NewReader() *Reader {
	return &Reader{}
}

// Read разбирает файл и приводит геометрии объектов к entity.Geometry.
func (r *Reader) Read(ctx context.Context, path string) (*entity.FeatureCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", port.ErrUnreadableGeometry, path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", port.ErrUnreadableGeometry, path, err)
	}

	features := make([]entity.Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		features = append(features, entity.Feature{
			Geometry:   toGeometry(f.Geometry),
			Properties: map[string]interface{}(f.Properties),
		})
	}

	return &entity.FeatureCollection{Features: features}, nil
}

// toGeometry переводит геометрию orb в вид, понятный домену.
func toGeometry(g orb.Geometry) entity.Geometry {
	switch g := g.(type) {
	case nil:
		return entity.Geometry{Kind: entity.GeometryNone}
	case orb.Polygon:
		return entity.PolygonGeometry(g)
	case orb.MultiPolygon:
		return entity.MultiPolygonGeometry(g)
	default:
		if isEmptyCollection(g) {
			return entity.Geometry{Kind: entity.GeometryNone}
		}
		return entity.Geometry{Kind: entity.GeometryOther}
	}
}

func isEmptyCollection(g orb.Geometry) bool {
	switch g := g.(type) {
	case orb.Collection:
		return len(g) == 0
	case orb.MultiPoint:
		return len(g) == 0
	case orb.LineString:
		return len(g) == 0
	case orb.MultiLineString:
		return len(g) == 0
	default:
		return false
	}
}

var _ port.FeatureReader = (*Reader)(nil)
