package port

import (
	"context"

	"roof-coco/internal/domain/entity"
)

// DatasetWriter интерфейс сохранения датасета
type DatasetWriter interface {
	// Write сохраняет документ COCO, создавая недостающие каталоги
	Write(ctx context.Context, path string, dataset *entity.Dataset) error
}
