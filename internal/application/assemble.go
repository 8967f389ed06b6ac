package app

import "roof-coco/internal/domain/entity"

// idSequence выдаёт последовательные идентификаторы, начиная с 1.
// Принадлежит одному запуску конвертации.
type idSequence struct {
	last int
}

func (s *idSequence) next() int {
	s.last++
	return s.last
}

// assembly накапливает записи COCO и счётчики одного запуска.
type assembly struct {
	dataset     *entity.Dataset
	imageIDs    idSequence
	annotations idSequence
	report      entity.Report
}

func newAssembly() *assembly {
	return &assembly{dataset: entity.NewDataset()}
}

// addImage резервирует ID изображения и добавляет запись.
func (a *assembly) addImage(fileName string, size entity.RasterSize) int {
	id := a.imageIDs.next()
	a.dataset.Images = append(a.dataset.Images, entity.ImageRecord{
		ID:       id,
		FileName: fileName,
		Width:    size.Width,
		Height:   size.Height,
	})
	a.report.Images++
	return id
}

// addPolygon добавляет аннотацию для одного простого полигона.
func (a *assembly) addPolygon(imageID, categoryID int, p entity.SimplePolygon) {
	a.dataset.Annotations = append(a.dataset.Annotations, entity.AnnotationRecord{
		ID:           a.annotations.next(),
		ImageID:      imageID,
		CategoryID:   categoryID,
		Segmentation: [][]float64{p.Exterior()},
		BBox:         p.BBox(),
		Area:         p.Area(),
		IsCrowd:      0,
	})
	a.report.Annotations++
}
