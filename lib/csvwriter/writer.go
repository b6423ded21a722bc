package csvwriter

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Writer struct {
	file   *os.File
	gzip   *gzip.Writer
	writer *csv.Writer
	closed bool
}

// NewWriter creates the file at [fp], if [compress] is set the rows are gzipped.
func NewWriter(fp string, delimiter rune, compress bool) (*Writer, error) {
	file, err := os.Create(fp)
	if err != nil {
		return nil, err
	}

	var out io.Writer = file
	var gzipWriter *gzip.Writer
	if compress {
		gzipWriter = gzip.NewWriter(file)
		out = gzipWriter
	}

	csvWriter := csv.NewWriter(out)
	csvWriter.Comma = delimiter
	return &Writer{
		file:   file,
		gzip:   gzipWriter,
		writer: csvWriter,
	}, nil
}

func (w *Writer) FileName() string {
	return filepath.Base(w.file.Name())
}

func (w *Writer) Write(row []string) error {
	return w.writer.Write(row)
}

func (w *Writer) Flush() error {
	w.writer.Flush()
	return w.writer.Error()
}

func (w *Writer) Close() error {
	if w.closed {
		return fmt.Errorf("writer for %q is already closed", w.FileName())
	}

	w.closed = true
	if err := w.Flush(); err != nil {
		// If the writer failed, let's try to close the gzip writer and file.
		if w.gzip != nil {
			_ = w.gzip.Close()
		}
		_ = w.file.Close()
		return err
	}

	if w.gzip != nil {
		if err := w.gzip.Close(); err != nil {
			// If gzip fails, we should at least try to close the file
			_ = w.file.Close()
			return err
		}
	}

	return w.file.Close()
}
