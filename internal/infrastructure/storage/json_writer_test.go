package storage

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"roof-coco/internal/domain/entity"
)

func sampleDataset() *entity.Dataset {
	ds := entity.NewDataset()
	ds.Images = append(ds.Images, entity.ImageRecord{ID: 1, FileName: "a.tif", Width: 100, Height: 80})
	ds.Annotations = append(ds.Annotations, entity.AnnotationRecord{
		ID: 1, ImageID: 1, CategoryID: 2,
		Segmentation: [][]float64{{0, 0, 10, 0, 10, 10, 0, 10}},
		BBox:         [4]float64{0, 0, 10, 10},
		Area:         100,
	})
	ds.Categories = append(ds.Categories, entity.CategoryRecord{ID: 2, Name: "tile"})
	return ds
}

func TestJSONWriter_CreatesDirsAndIndents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "coco.json")

	require.NoError(t, NewJSONWriter().Write(context.Background(), path, sampleDataset()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  \"images\": [")

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 3)
	require.Contains(t, doc, "images")
	require.Contains(t, doc, "annotations")
	require.Contains(t, doc, "categories")
}

func TestJSONWriter_EmptyCollectionsAreArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coco.json")
	require.NoError(t, NewJSONWriter().Write(context.Background(), path, entity.NewDataset()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"images":[],"annotations":[],"categories":[]}`, string(data))
}

func TestJSONWriter_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coco.json.gz")
	require.NoError(t, NewJSONWriter().Write(context.Background(), path, sampleDataset()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	var ds entity.Dataset
	require.NoError(t, json.NewDecoder(zr).Decode(&ds))
	require.Equal(t, *sampleDataset(), ds)
}

func TestJSONWriter_FailedEncodeKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coco.json")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	bad := sampleDataset()
	bad.Annotations[0].Area = math.NaN()
	require.Error(t, NewJSONWriter().Write(context.Background(), path, bad))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestJSONWriter_FailedEncodeLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "coco.json.gz")

	bad := sampleDataset()
	bad.Annotations[0].Area = math.Inf(1)
	require.Error(t, NewJSONWriter().Write(context.Background(), path, bad))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
