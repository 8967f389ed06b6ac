package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// pair растр и соответствующий ему геометрический файл
type pair struct {
	RasterName   string
	RasterPath   string
	GeometryPath string
}

// discoverPairs перечисляет растры каталога (без рекурсии) в порядке имён
// и подбирает к каждому геометрический файл с той же основой имени.
// Растры без геометрии возвращаются отдельно.
func discoverPairs(dir, rasterExt, geometryExt string) (pairs []pair, orphans []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("list image dir: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, rasterExt) {
			continue
		}

		base := strings.TrimSuffix(name, rasterExt)
		geometryPath := joinPath(dir, base+geometryExt)
		if info, err := os.Stat(geometryPath); err != nil || info.IsDir() {
			orphans = append(orphans, name)
			continue
		}

		pairs = append(pairs, pair{
			RasterName:   name,
			RasterPath:   joinPath(dir, name),
			GeometryPath: geometryPath,
		})
	}

	return pairs, orphans, nil
}

// joinPath добавляет имя к каталогу, не нормализуя сам каталог:
// путь к изображению сохраняется в том виде, в каком его передали.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
