package entity

import "fmt"

// Feature один объект геометрического файла
type Feature struct {
	Geometry   Geometry
	Properties map[string]interface{}
}

// Attribute возвращает значение атрибута в виде строки.
// Отсутствующее или null значение возвращает ok=false.
func (f Feature) Attribute(column string) (string, bool) {
	v, ok := f.Properties[column]
	if !ok || v == nil {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	return fmt.Sprint(v), true
}

// FeatureCollection упорядоченный набор объектов одного файла
type FeatureCollection struct {
	Features []Feature
}

// HasColumn проверяет наличие столбца атрибутов:
// столбец есть, если хотя бы один объект содержит это свойство.
func (c *FeatureCollection) HasColumn(column string) bool {
	if c == nil {
		return false
	}
	for _, f := range c.Features {
		if _, ok := f.Properties[column]; ok {
			return true
		}
	}
	return false
}
