package entity

// ImageRecord описывает одно изображение датасета в формате COCO
type ImageRecord struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// AnnotationRecord описывает один простой полигон объекта
type AnnotationRecord struct {
	ID           int         `json:"id"`
	ImageID      int         `json:"image_id"`
	CategoryID   int         `json:"category_id"`
	Segmentation [][]float64 `json:"segmentation"` // один плоский список x1,y1,x2,y2,...
	BBox         [4]float64  `json:"bbox"`         // xmin, ymin, ширина, высота
	Area         float64     `json:"area"`
	IsCrowd      int         `json:"iscrowd"` // всегда 0
}

// CategoryRecord описывает класс объектов
type CategoryRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Dataset итоговый документ с тремя коллекциями COCO.
type Dataset struct {
	Images      []ImageRecord      `json:"images"`
	Annotations []AnnotationRecord `json:"annotations"`
	Categories  []CategoryRecord   `json:"categories"`
}

// NewDataset создаёт пустой датасет; коллекции сериализуются как [], а не null.
func NewDataset() *Dataset {
	return &Dataset{
		Images:      []ImageRecord{},
		Annotations: []AnnotationRecord{},
		Categories:  []CategoryRecord{},
	}
}

// RasterSize размеры растра в пикселях
type RasterSize struct {
	Width  int
	Height int
}
