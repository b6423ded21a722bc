package csvreader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"

	"github.com/artie-labs/anonymize/models"
)

// Read decodes [r] as ISO-8859-1, so any byte sequence is accepted, and takes the column names from the first row.
func Read(r io.Reader, delimiter rune) (*models.Dataset, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.Comma = delimiter
	// Field counts are validated by the dataset so the error can name the row.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("file is empty, expected a header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	dataset, err := models.NewDataset(header)
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		if err = dataset.AddRow(row); err != nil {
			return nil, err
		}
	}

	return dataset, nil
}
