package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ImageDir       string
	OutputPath     string
	Categories     []string // токены вида name=id
	CategoryColumn string
	RasterExt      string
	GeometryExt    string
	RasterBackend  string
	MakeRelative   bool
	SkipMissing    bool
	SkipUnreadable bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ImageDir:       os.Getenv("COCO_IMAGE_DIR"),
		OutputPath:     os.Getenv("COCO_OUTPUT"),
		Categories:     SplitCategories(os.Getenv("COCO_CATEGORIES")),
		CategoryColumn: getenv("COCO_CATEGORY_COLUMN", "roof_mater"),
		RasterExt:      getenv("COCO_RASTER_EXT", ".tif"),
		GeometryExt:    getenv("COCO_GEOMETRY_EXT", ".geojson"),
		RasterBackend:  getenv("COCO_RASTER_BACKEND", "image"),
	}

	var err error
	if cfg.MakeRelative, err = getbool("COCO_RELATIVE"); err != nil {
		return nil, err
	}
	if cfg.SkipMissing, err = getbool("COCO_SKIP_MISSING"); err != nil {
		return nil, err
	}
	if cfg.SkipUnreadable, err = getbool("COCO_SKIP_UNREADABLE"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SplitCategories разбивает строку "a=1 b=2,c=3" на токены.
func SplitCategories(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getbool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &InvalidValueError{Key: key, Value: v}
	}
	return b, nil
}

// InvalidValueError ошибка некорректного значения переменной окружения
type InvalidValueError struct {
	Key   string
	Value string
}

func (e *InvalidValueError) Error() string {
	return "invalid value " + strconv.Quote(e.Value) + " for " + e.Key
}
