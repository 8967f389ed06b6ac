package entity

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// GeometryKind тип геометрии объекта
type GeometryKind int

const (
	GeometryNone         GeometryKind = iota // null или пустая геометрия
	GeometryPolygon                          // простой полигон
	GeometryMultiPolygon                     // набор полигонов
	GeometryOther                            // точки, линии и прочее
)

func (k GeometryKind) String() string {
	switch k {
	case GeometryNone:
		return "none"
	case GeometryPolygon:
		return "polygon"
	case GeometryMultiPolygon:
		return "multipolygon"
	default:
		return "other"
	}
}

// Geometry геометрия объекта, приведённая к одному из поддерживаемых видов.
// Для GeometryPolygon Parts содержит ровно один полигон,
// для GeometryMultiPolygon все части, для остальных видов пуст.
type Geometry struct {
	Kind  GeometryKind
	Parts []orb.Polygon
}

// PolygonGeometry оборачивает простой полигон
func PolygonGeometry(p orb.Polygon) Geometry {
	if polygonEmpty(p) {
		return Geometry{Kind: GeometryNone}
	}
	return Geometry{Kind: GeometryPolygon, Parts: []orb.Polygon{p}}
}

// MultiPolygonGeometry оборачивает мультиполигон
func MultiPolygonGeometry(mp orb.MultiPolygon) Geometry {
	if len(mp) == 0 {
		return Geometry{Kind: GeometryNone}
	}
	return Geometry{Kind: GeometryMultiPolygon, Parts: []orb.Polygon(mp)}
}

// Decompose раскладывает геометрию на простые полигоны.
// Пустые части мультиполигона отбрасываются.
func (g Geometry) Decompose() []SimplePolygon {
	switch g.Kind {
	case GeometryPolygon, GeometryMultiPolygon:
		polygons := make([]SimplePolygon, 0, len(g.Parts))
		for _, p := range g.Parts {
			if polygonEmpty(p) {
				continue
			}
			polygons = append(polygons, SimplePolygon{polygon: p})
		}
		return polygons
	default:
		return nil
	}
}

// SimplePolygon одиночный полигон, из которого строится аннотация
type SimplePolygon struct {
	polygon orb.Polygon
}

// NewSimplePolygon создаёт полигон из внешнего кольца и дыр
func NewSimplePolygon(p orb.Polygon) SimplePolygon {
	return SimplePolygon{polygon: p}
}

// Exterior возвращает координаты внешнего кольца плоским списком x,y.
// Замыкающая точка не повторяется; дыры не кодируются.
func (p SimplePolygon) Exterior() []float64 {
	ring := p.polygon[0]
	if len(ring) > 1 && ring.Closed() {
		ring = ring[:len(ring)-1]
	}
	coords := make([]float64, 0, 2*len(ring))
	for _, pt := range ring {
		coords = append(coords, pt.X(), pt.Y())
	}
	return coords
}

// BBox возвращает [xmin, ymin, ширина, высота]
func (p SimplePolygon) BBox() [4]float64 {
	b := p.polygon.Bound()
	return [4]float64{b.Min.X(), b.Min.Y(), b.Max.X() - b.Min.X(), b.Max.Y() - b.Min.Y()}
}

// Area возвращает площадь в исходных единицах координат (дыры вычитаются).
func (p SimplePolygon) Area() float64 {
	return math.Abs(planar.Area(p.polygon))
}

func polygonEmpty(p orb.Polygon) bool {
	return len(p) == 0 || len(p[0]) == 0
}
