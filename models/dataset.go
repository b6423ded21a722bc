package models

import (
	"fmt"
	"slices"

	"github.com/artie-labs/anonymize/lib/maputil"
)

// Record is a single row, keyed by column name in header order.
type Record struct {
	values *maputil.OrderedMap[string]
}

func NewRecord() *Record {
	return &Record{values: maputil.NewOrderedMap[string](true)}
}

func (r *Record) Get(column string) (string, bool) {
	return r.values.Get(column)
}

func (r *Record) Set(column, value string) {
	r.values.Add(column, value)
}

func (r *Record) remove(column string) bool {
	return r.values.Remove(column)
}

func (r *Record) Columns() []string {
	return r.values.Keys()
}

func (r *Record) Clone() *Record {
	return &Record{values: r.values.Clone()}
}

// Dataset is an in-memory table. Every record shares the same column set as the header.
type Dataset struct {
	columns []string
	records []*Record
}

func NewDataset(columns []string) (*Dataset, error) {
	seen := make(map[string]bool, len(columns))
	for _, column := range columns {
		if seen[column] {
			return nil, fmt.Errorf("duplicate column %q", column)
		}
		seen[column] = true
	}

	return &Dataset{columns: slices.Clone(columns)}, nil
}

// AddRow appends a row whose values are positional to [Dataset.Columns].
func (d *Dataset) AddRow(values []string) error {
	if len(values) != len(d.columns) {
		return fmt.Errorf("row %d has %d values, expected %d", len(d.records), len(values), len(d.columns))
	}

	record := NewRecord()
	for i, column := range d.columns {
		record.Set(column, values[i])
	}

	d.records = append(d.records, record)
	return nil
}

func (d *Dataset) Columns() []string {
	return slices.Clone(d.columns)
}

func (d *Dataset) HasColumn(column string) bool {
	return slices.Contains(d.columns, column)
}

func (d *Dataset) RowCount() int {
	return len(d.records)
}

// Records returns the live records, callers may mutate values but must not change the column set.
func (d *Dataset) Records() []*Record {
	return d.records
}

// Values returns the row at index [i] in header order.
func (d *Dataset) Values(i int) []string {
	values := make([]string, 0, len(d.columns))
	for _, column := range d.columns {
		value, _ := d.records[i].Get(column)
		values = append(values, value)
	}

	return values
}

// DropColumns removes the columns that exist and returns the ones that were removed.
func (d *Dataset) DropColumns(columns ...string) []string {
	var removed []string
	for _, column := range columns {
		index := slices.Index(d.columns, column)
		if index < 0 {
			continue
		}

		d.columns = slices.Delete(d.columns, index, index+1)
		for _, record := range d.records {
			record.remove(column)
		}

		removed = append(removed, column)
	}

	return removed
}

// SortStableFunc reorders the records in place, equal records keep their relative order.
func (d *Dataset) SortStableFunc(cmp func(a, b *Record) int) {
	slices.SortStableFunc(d.records, cmp)
}

func (d *Dataset) Clone() *Dataset {
	records := make([]*Record, len(d.records))
	for i, record := range d.records {
		records[i] = record.Clone()
	}

	return &Dataset{columns: slices.Clone(d.columns), records: records}
}
