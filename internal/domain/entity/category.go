package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCategoryToken = errors.New("invalid category token")
	ErrDuplicateCategory    = errors.New("duplicate category name")
)

// CategoryMap сопоставляет значение атрибута с идентификатором категории.
// Порядок добавления сохраняется: из него строится список categories.
type CategoryMap struct {
	names []string
	ids   map[string]int
}

// NewCategoryMap создаёт пустую таблицу категорий
func NewCategoryMap() *CategoryMap {
	return &CategoryMap{ids: make(map[string]int)}
}

// Add добавляет категорию; повторное имя считается ошибкой.
func (m *CategoryMap) Add(name string, id int) error {
	if _, exists := m.ids[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	m.names = append(m.names, name)
	m.ids[name] = id
	return nil
}

// Resolve возвращает ID категории для значения атрибута.
func (m *CategoryMap) Resolve(value string) (int, bool) {
	if m == nil {
		return 0, false
	}
	id, ok := m.ids[value]
	return id, ok
}

// Len возвращает количество категорий
func (m *CategoryMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Categories строит список категорий COCO в порядке добавления,
// независимо от того, встречалась ли категория в аннотациях.
func (m *CategoryMap) Categories() []CategoryRecord {
	categories := make([]CategoryRecord, 0, m.Len())
	if m == nil {
		return categories
	}
	for _, name := range m.names {
		categories = append(categories, CategoryRecord{ID: m.ids[name], Name: name})
	}
	return categories
}

// ParseCategoryMap разбирает токены вида "corrugated=1".
func ParseCategoryMap(tokens []string) (*CategoryMap, error) {
	m := NewCategoryMap()
	for _, token := range tokens {
		name, idStr, ok := strings.Cut(token, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategoryToken, token)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCategoryToken, token, err)
		}
		if err := m.Add(name, id); err != nil {
			return nil, err
		}
	}
	return m, nil
}
