package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"roof-coco/internal/domain/entity"
	"roof-coco/internal/domain/port"
)

const (
	DefaultCategoryColumn = "roof_mater"
	DefaultRasterExt      = ".tif"
	DefaultGeometryExt    = ".geojson"

	// метка для объектов без значения категории в логах
	nullValue = "<null>"
)

// Options параметры одного запуска конвертации
type Options struct {
	ImageDir       string
	OutputPath     string
	Categories     *entity.CategoryMap
	CategoryColumn string // столбец атрибутов с категорией
	RasterExt      string
	GeometryExt    string
	MakeRelative   bool // хранить пути относительно рабочего каталога
	SkipMissing    bool // не предупреждать о неизвестных категориях
	SkipUnreadable bool // пропускать пары с нечитаемыми файлами вместо остановки
}

func (o Options) withDefaults() Options {
	if o.CategoryColumn == "" {
		o.CategoryColumn = DefaultCategoryColumn
	}
	if o.RasterExt == "" {
		o.RasterExt = DefaultRasterExt
	}
	if o.GeometryExt == "" {
		o.GeometryExt = DefaultGeometryExt
	}
	return o
}

// ConvertService превращает пары растр + GeoJSON в датасет COCO.
type ConvertService struct {
	prober port.RasterProber
	reader port.FeatureReader
	writer port.DatasetWriter
	logger *log.Logger
}

// NewConvertService создаёт сервис конвертации. logger может быть nil.
func NewConvertService(prober port.RasterProber, reader port.FeatureReader, writer port.DatasetWriter, logger *log.Logger) *ConvertService {
	if logger == nil {
		logger = log.Default()
	}
	return &ConvertService{
		prober: prober,
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

// Run выполняет конвертацию и сохраняет результат в opts.OutputPath.
func (s *ConvertService) Run(ctx context.Context, opts Options) (*entity.Report, error) {
	if s.writer == nil {
		return nil, errors.New("writer is not configured")
	}
	if opts.OutputPath == "" {
		return nil, errors.New("output path is required")
	}

	dataset, report, err := s.Convert(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Write(ctx, opts.OutputPath, dataset); err != nil {
		return nil, fmt.Errorf("write dataset: %w", err)
	}
	s.logger.Printf("Saved COCO annotations to %s", opts.OutputPath)

	return report, nil
}

// Convert обходит пары последовательно и собирает датасет в памяти.
// Ошибка чтения растра или геометрии прерывает весь запуск,
// если не выставлен SkipUnreadable.
func (s *ConvertService) Convert(ctx context.Context, opts Options) (*entity.Dataset, *entity.Report, error) {
	if s.prober == nil || s.reader == nil {
		return nil, nil, errors.New("prober and reader must be configured")
	}
	opts = opts.withDefaults()

	pairs, orphans, err := discoverPairs(opts.ImageDir, opts.RasterExt, opts.GeometryExt)
	if err != nil {
		return nil, nil, err
	}

	asm := newAssembly()
	asm.report.MissingGeometryPairs = len(orphans)
	for _, name := range orphans {
		s.logger.Printf("Skipping %s: no %s file", name, opts.GeometryExt)
	}

	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if err := s.convertPair(ctx, opts, p, asm); err != nil {
			return nil, nil, err
		}
	}

	asm.dataset.Categories = opts.Categories.Categories()

	r := asm.report
	s.logger.Printf("Converted %d images, %d annotations (no geometry: %d, no %q column: %d, unreadable: %d, unmapped features: %d)",
		r.Images, r.Annotations, r.MissingGeometryPairs, opts.CategoryColumn, r.MissingColumnPairs, r.UnreadablePairs, r.UnmappedFeatures)

	return asm.dataset, &r, nil
}

// convertPair обрабатывает один растр и его геометрию.
func (s *ConvertService) convertPair(ctx context.Context, opts Options, p pair, asm *assembly) error {
	size, err := s.prober.Probe(ctx, p.RasterPath)
	if err != nil {
		if opts.SkipUnreadable && errors.Is(err, port.ErrUnreadableRaster) {
			s.logger.Printf("Skipping %s: %v", p.RasterName, err)
			asm.report.UnreadablePairs++
			return nil
		}
		return fmt.Errorf("probe raster %s: %w", p.RasterName, err)
	}

	fc, err := s.reader.Read(ctx, p.GeometryPath)
	if err != nil {
		if opts.SkipUnreadable && errors.Is(err, port.ErrUnreadableGeometry) {
			s.logger.Printf("Skipping %s: %v", p.RasterName, err)
			asm.report.UnreadablePairs++
			return nil
		}
		return fmt.Errorf("read features for %s: %w", p.RasterName, err)
	}

	if !fc.HasColumn(opts.CategoryColumn) {
		s.logger.Printf("Skipping %s: no %q column", p.RasterName, opts.CategoryColumn)
		asm.report.MissingColumnPairs++
		return nil
	}

	imageID := asm.addImage(imageFileName(p.RasterPath, opts.MakeRelative), size)

	unmapped := make(map[string]int)
	for _, f := range fc.Features {
		value, ok := f.Attribute(opts.CategoryColumn)
		if !ok {
			unmapped[nullValue]++
			asm.report.UnmappedFeatures++
			continue
		}
		categoryID, ok := opts.Categories.Resolve(value)
		if !ok {
			unmapped[value]++
			asm.report.UnmappedFeatures++
			continue
		}

		switch f.Geometry.Kind {
		case entity.GeometryNone:
			asm.report.EmptyGeometries++
			continue
		case entity.GeometryOther:
			asm.report.NonPolygonFeatures++
			continue
		}

		for _, poly := range f.Geometry.Decompose() {
			asm.addPolygon(imageID, categoryID, poly)
		}
	}

	if len(unmapped) > 0 && !opts.SkipMissing {
		s.logger.Printf("Warning: %s: dropped %d features with unmapped %q values: %s",
			p.RasterName, countValues(unmapped), opts.CategoryColumn, formatValues(unmapped))
	}

	return nil
}

// imageFileName возвращает путь к растру как есть или относительно рабочего каталога.
func imageFileName(path string, relative bool) string {
	if !relative {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil {
		return path
	}
	return rel
}

func countValues(values map[string]int) int {
	total := 0
	for _, n := range values {
		total += n
	}
	return total
}

func formatValues(values map[string]int) string {
	names := make([]string, 0, len(values))
	for v := range values {
		names = append(names, v)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, v := range names {
		label := v
		if label == "" {
			label = "<empty>"
		}
		parts = append(parts, fmt.Sprintf("%s=%d", label, values[v]))
	}
	return strings.Join(parts, ", ")
}
