package parquetutil

import (
	"fmt"
	"iter"
	"os"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/artie-labs/anonymize/lib/typing"
	"github.com/artie-labs/anonymize/models"
)

// DefaultBatchSize is the default number of rows to process in each batch.
const DefaultBatchSize = 1000

func columnValues(dataset *models.Dataset, column string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, record := range dataset.Records() {
			value, _ := record.Get(column)
			if !yield(value) {
				return
			}
		}
	}
}

func toArrowType(kind typing.KindDetails) arrow.DataType {
	switch kind {
	case typing.Integer:
		return arrow.PrimitiveTypes.Int64
	case typing.Float:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.BinaryTypes.String
	}
}

// BuildArrowSchema infers a kind per column, every field is nullable so empty values can be written as nulls.
func BuildArrowSchema(dataset *models.Dataset) *arrow.Schema {
	var fields []arrow.Field
	for _, column := range dataset.Columns() {
		fields = append(fields, arrow.Field{
			Name:     column,
			Type:     toArrowType(typing.InferColumnKind(columnValues(dataset, column))),
			Nullable: true,
		})
	}

	return arrow.NewSchema(fields, nil)
}

func appendValue(builder array.Builder, value string) error {
	switch castedBuilder := builder.(type) {
	case *array.Int64Builder:
		if value == "" {
			castedBuilder.AppendNull()
			return nil
		}

		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		castedBuilder.Append(parsed)
	case *array.Float64Builder:
		if value == "" {
			castedBuilder.AppendNull()
			return nil
		}

		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		castedBuilder.Append(parsed)
	case *array.StringBuilder:
		castedBuilder.Append(value)
	default:
		return fmt.Errorf("unsupported builder type: %T", builder)
	}

	return nil
}

// WriteParquetFile writes the dataset to [filePath] in batches of [batchSize] rows, use 0 for the default.
func WriteParquetFile(dataset *models.Dataset, filePath string, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	schema := BuildArrowSchema(dataset)
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer, err := pqarrow.NewFileWriter(schema, file, parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Gzip)), pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	if err = writeBatches(writer, schema, dataset, batchSize); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write records in batches: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return nil
}

func writeBatches(writer *pqarrow.FileWriter, schema *arrow.Schema, dataset *models.Dataset, batchSize int) error {
	pool := memory.NewGoAllocator()
	columns := dataset.Columns()
	rowCount := dataset.RowCount()

	if rowCount == 0 {
		// Still write an empty row group so the file has a schema.
		return writeBatch(writer, schema, pool, dataset, columns, 0, 0)
	}

	for batchStart := 0; batchStart < rowCount; batchStart += batchSize {
		batchEnd := min(batchStart+batchSize, rowCount)
		if err := writeBatch(writer, schema, pool, dataset, columns, batchStart, batchEnd); err != nil {
			return err
		}
	}

	return nil
}

func writeBatch(writer *pqarrow.FileWriter, schema *arrow.Schema, pool memory.Allocator, dataset *models.Dataset, columns []string, start, end int) error {
	builders := make([]array.Builder, len(schema.Fields()))
	for i, field := range schema.Fields() {
		builders[i] = array.NewBuilder(pool, field.Type)
	}
	defer func() {
		for _, builder := range builders {
			builder.Release()
		}
	}()

	records := dataset.Records()
	for _, record := range records[start:end] {
		for i, column := range columns {
			value, _ := record.Get(column)
			if err := appendValue(builders[i], value); err != nil {
				return fmt.Errorf("failed to append value for column %q: %w", column, err)
			}
		}
	}

	arrays := make([]arrow.Array, len(builders))
	for i, builder := range builders {
		arrays[i] = builder.NewArray()
	}
	defer func() {
		for _, arr := range arrays {
			arr.Release()
		}
	}()

	record := array.NewRecord(schema, arrays, int64(end-start))
	defer record.Release()

	if err := writer.WriteBuffered(record); err != nil {
		return fmt.Errorf("failed to write batch record: %w", err)
	}

	return nil
}
