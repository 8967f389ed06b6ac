package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"roof-coco/internal/domain/entity"
	"roof-coco/internal/domain/port"
)

// JSONWriter сохраняет датасет в файл JSON с отступами.
// Пути с суффиксом .gz пишутся в сжатом виде.
type JSONWriter struct {
	Indent string
}

// NewJSONWriter создаёт writer с отступом в два пробела
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{Indent: "  "}
}

// Write создаёт недостающие каталоги и сохраняет документ.
// Документ пишется во временный файл рядом с целевым и переименовывается
// только после успешной записи, так что при ошибке прежний файл не затрагивается.
func (w *JSONWriter) Write(ctx context.Context, path string, dataset *entity.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmp := f.Name()

	if err := w.encode(f, path, dataset); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}

func (w *JSONWriter) encode(f io.Writer, path string, dataset *entity.Dataset) error {
	buf := bufio.NewWriter(f)

	var out io.Writer = buf
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(buf)
		out = gz
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", w.Indent)
	if err := enc.Encode(dataset); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("compress output: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.DatasetWriter = (*JSONWriter)(nil)
