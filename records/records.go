// Package records adapts tabular line-record data, read from CSV, as
// element sources for the views engine. A [Reader] exposes the cursor
// protocol (has-more / advance) and can therefore be wrapped as an
// unbounded, single-shot view; [Read] and [ReadFile] materialize all
// records into a staged view for repeated traversal.
package records

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	fs "github.com/ungerik/go-fs"

	"vista/views"
)

// Record is one data line of a record source, with access to fields by
// column name. Records from the same Reader share one column index.
type Record struct {
	columns map[string]int
	values  []string
}

// Field returns the named field as a string, or ok=false when the column
// does not exist or the line is short.
func (r Record) Field(name string) (string, bool) {
	i, ok := r.columns[name]
	if !ok || i >= len(r.values) {
		return "", false
	}
	return r.values[i], true
}

// Float parses the named field as a float64.
func (r Record) Float(name string) (float64, error) {
	s, ok := r.Field(name)
	if !ok {
		return 0, fmt.Errorf("records: no column %q", name)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("records: column %q: %w", name, err)
	}
	return f, nil
}

// Int parses the named field as an int64.
func (r Record) Int(name string) (int64, error) {
	s, ok := r.Field(name)
	if !ok {
		return 0, fmt.Errorf("records: no column %q", name)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("records: column %q: %w", name, err)
	}
	return n, nil
}

// Values returns the raw fields of the line in column order.
func (r Record) Values() []string { return r.values }

// Reader reads CSV line records one at a time. The first line is the
// header naming the columns. Reader implements the views cursor protocol;
// a read error ends the cursor and is reported by Err.
type Reader struct {
	cr      *csv.Reader
	columns map[string]int
	pending []string
	ready   bool
	err     error
}

// NewReader wraps r and consumes its header line.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("records: reading header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	return &Reader{cr: cr, columns: columns}, nil
}

// HasNext reports whether another record is available, reading ahead one
// line.
func (r *Reader) HasNext() bool {
	if r.ready {
		return true
	}
	if r.err != nil {
		return false
	}
	line, err := r.cr.Read()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}
	r.pending = line
	r.ready = true
	return true
}

// Next returns the next record and advances. Only valid after HasNext
// reported true.
func (r *Reader) Next() Record {
	if !r.ready && !r.HasNext() {
		panic("records: Next called past the end")
	}
	r.ready = false
	return Record{columns: r.columns, values: r.pending}
}

// Err returns the first read error encountered, if any. io.EOF is not an
// error.
func (r *Reader) Err() error { return r.err }

// View presents the reader as an unbounded, non-permanent, single-shot view
// over its remaining records.
func (r *Reader) View() views.View[Record] {
	return views.FromCursor[Record](r)
}

// Read parses all records from r into a staged, repeatedly traversable
// view.
func Read(r io.Reader) (views.View[Record], error) {
	reader, err := NewReader(r)
	if err != nil {
		return views.View[Record]{}, err
	}
	var all []Record
	for reader.HasNext() {
		all = append(all, reader.Next())
	}
	if reader.Err() != nil {
		return views.View[Record]{}, fmt.Errorf("records: reading: %w", reader.Err())
	}
	return views.FromSlice(all), nil
}

// ReadFile reads and parses a whole CSV file into a staged view.
func ReadFile(ctx context.Context, file fs.FileReader) (views.View[Record], error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return views.View[Record]{}, fmt.Errorf("records: reading %s: %w", file.Name(), err)
	}
	return Read(bytes.NewReader(data))
}
