package local

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artie-labs/anonymize/lib/csvreader"
	"github.com/artie-labs/anonymize/lib/csvwriter"
	"github.com/artie-labs/anonymize/lib/parquetutil"
	"github.com/artie-labs/anonymize/models"
)

type Format string

const (
	CSV     Format = "csv"
	Parquet Format = "parquet"
)

// Store reads and writes datasets on the local filesystem.
type Store struct {
	delimiter rune
}

func NewStore(delimiter rune) Store {
	return Store{delimiter: delimiter}
}

type fileDetails struct {
	format     Format
	compressed bool
	delimiter  rune
}

func (s Store) detect(fp string) fileDetails {
	name := strings.ToLower(filepath.Base(fp))
	details := fileDetails{format: CSV, delimiter: s.delimiter}
	if trimmed, found := strings.CutSuffix(name, ".gz"); found {
		details.compressed = true
		name = trimmed
	}

	switch filepath.Ext(name) {
	case ".parquet":
		details.format = Parquet
	case ".tsv":
		details.delimiter = '\t'
	}

	return details
}

func (s Store) Load(_ context.Context, fp string) (*models.Dataset, error) {
	details := s.detect(fp)
	if details.format == Parquet {
		return nil, fmt.Errorf("reading parquet is not supported: %q", fp)
	}

	file, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if details.compressed {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	dataset, err := csvreader.Read(reader, details.delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", fp, err)
	}

	slog.Debug("Loaded dataset", slog.String("path", fp), slog.Int("rows", dataset.RowCount()), slog.Int("columns", len(dataset.Columns())))
	return dataset, nil
}

// Save writes to a temporary file next to [fp] first and renames it, so a failed save never leaves a partial file behind.
func (s Store) Save(_ context.Context, dataset *models.Dataset, fp string) error {
	tempPath := filepath.Join(filepath.Dir(fp), fmt.Sprintf(".%s.%s", uuid.NewString(), filepath.Base(fp)))
	if err := s.write(dataset, tempPath, s.detect(fp)); err != nil {
		_ = os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, fp); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	slog.Debug("Saved dataset", slog.String("path", fp), slog.Int("rows", dataset.RowCount()))
	return nil
}

func (s Store) write(dataset *models.Dataset, fp string, details fileDetails) error {
	if details.format == Parquet {
		return parquetutil.WriteParquetFile(dataset, fp, 0)
	}

	writer, err := csvwriter.NewWriter(fp, details.delimiter, details.compressed)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}

	if err = writer.Write(dataset.Columns()); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range dataset.RowCount() {
		if err = writer.Write(dataset.Values(i)); err != nil {
			_ = writer.Close()
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return nil
}
