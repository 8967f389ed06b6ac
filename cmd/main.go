package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"roof-coco/config"
	app "roof-coco/internal/application"
	"roof-coco/internal/container"
	"roof-coco/internal/domain/entity"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	imageDir := flag.String("image-dir", cfg.ImageDir, "Directory with raster/geometry pairs")
	out := flag.String("out", cfg.OutputPath, "Output COCO JSON path (.gz to compress)")
	categories := flag.String("categories", strings.Join(cfg.Categories, " "), "Category mappings like \"corrugated=1 tile=2 other=3\"")
	column := flag.String("column", cfg.CategoryColumn, "Attribute column holding the category value")
	rasterExt := flag.String("raster-ext", cfg.RasterExt, "Raster file extension")
	geometryExt := flag.String("geometry-ext", cfg.GeometryExt, "Geometry file extension")
	backend := flag.String("raster-backend", cfg.RasterBackend, "Raster reader: image or gocv")
	relative := flag.Bool("relative", cfg.MakeRelative, "Store image paths relative to the working directory")
	skipMissing := flag.Bool("skip-missing", cfg.SkipMissing, "Drop features with unmapped categories without warnings")
	skipUnreadable := flag.Bool("skip-unreadable", cfg.SkipUnreadable, "Skip pairs with unreadable files instead of aborting")
	flag.Parse()

	if *imageDir == "" || *out == "" {
		log.Fatal("-image-dir and -out are required")
	}

	// Токены категорий можно передать и позиционными аргументами
	tokens := append(config.SplitCategories(*categories), flag.Args()...)
	if len(tokens) == 0 {
		log.Fatal("-categories is required")
	}
	categoryMap, err := entity.ParseCategoryMap(tokens)
	if err != nil {
		log.Fatalf("Invalid categories: %v", err)
	}

	appContainer, err := container.New(*backend, log.Default())
	if err != nil {
		log.Fatalf("Failed to build converter: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = appContainer.ConvertService.Run(ctx, app.Options{
		ImageDir:       *imageDir,
		OutputPath:     *out,
		Categories:     categoryMap,
		CategoryColumn: *column,
		RasterExt:      *rasterExt,
		GeometryExt:    *geometryExt,
		MakeRelative:   *relative,
		SkipMissing:    *skipMissing,
		SkipUnreadable: *skipUnreadable,
	})
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
}
