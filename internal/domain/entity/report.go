package entity

// Report сводка одного запуска конвертации
type Report struct {
	Images               int // записанные изображения
	Annotations          int // записанные аннотации
	MissingGeometryPairs int // растры без геометрического файла
	MissingColumnPairs   int // геометрия без нужного столбца
	UnreadablePairs      int // пропущенные из-за ошибок чтения
	UnmappedFeatures     int // объекты с неизвестной категорией
	EmptyGeometries      int // объекты с пустой геометрией
	NonPolygonFeatures   int // объекты с неполигональной геометрией
}
