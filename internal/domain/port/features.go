package port

import (
	"context"
	"errors"

	"roof-coco/internal/domain/entity"
)

// ErrUnreadableGeometry возвращается, если геометрический файл не удалось разобрать
var ErrUnreadableGeometry = errors.New("unreadable geometry file")

// FeatureReader интерфейс чтения набора объектов
type FeatureReader interface {
	// Read загружает все объекты геометрического файла в исходном порядке
	Read(ctx context.Context, path string) (*entity.FeatureCollection, error)
}
