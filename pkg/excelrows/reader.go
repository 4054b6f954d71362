package excelrows

import (
	"fmt"
)

// Reader is a single-pass cursor over the records of one worksheet region.
// It is not restartable and not safe for concurrent use.
//
//	r, err := excelrows.NewReader(ws, opts)
//	if err != nil { ... }
//	for r.Next() {
//		rec := r.Record()
//		...
//	}
//	if err := r.Err(); err != nil { ... }
type Reader struct {
	ws   Worksheet
	opts Options
	rng  RangeSpec
	hs   *headerSet

	row   int
	rec   *Record
	err   error
	warns []error
}

// NewReader resolves the region and headers for one worksheet pass and
// returns a cursor over its data rows. Range and header resolution errors
// are fatal for the worksheet.
func NewReader(ws Worksheet, opts Options) (*Reader, error) {
	dim, err := ws.Dimension()
	if err != nil {
		return nil, fmt.Errorf("read worksheet dimension: %w", err)
	}
	rng, err := ResolveRange(dim, opts)
	if err != nil {
		return nil, err
	}
	hs, err := resolveHeaders(ws, rng, opts)
	if err != nil {
		return nil, err
	}
	return &Reader{
		ws:   ws,
		opts: opts,
		rng:  rng,
		hs:   hs,
		row:  hs.dataStart,
	}, nil
}

// Headers returns the de-duplicated header names, in column order. These
// are the field names of every emitted record.
func (r *Reader) Headers() []string {
	return r.hs.selected
}

// Next advances to the next data row. It returns false when the range is
// exhausted or a read error occurred; check Err afterwards.
func (r *Reader) Next() bool {
	if r.err != nil || r.row > r.rng.RowEnd {
		r.rec = nil
		return false
	}
	rec, err := r.extractRow(r.row)
	if err != nil {
		r.err = err
		r.rec = nil
		return false
	}
	r.rec = rec.Project(r.hs.selected)
	r.row++
	return true
}

// Record returns the record produced by the last successful Next call.
func (r *Reader) Record() *Record {
	return r.rec
}

// Err returns the first error encountered while iterating, if any.
func (r *Reader) Err() error {
	return r.err
}

// Warnings returns the non-fatal diagnostics collected so far: duplicate
// header collisions and failed date coercions.
func (r *Reader) Warnings() []error {
	return r.warns
}

// extractRow assembles one record from a data row. Duplicate header names
// keep the first-assigned value; the collision is recorded as a warning.
func (r *Reader) extractRow(row int) (*Record, error) {
	rec := NewRecord(r.rng.Width())
	for i, name := range r.hs.headers {
		col := r.rng.ColumnStart + i
		cell, err := r.ws.Cell(row, col)
		if err != nil {
			return nil, fmt.Errorf("read cell (%d,%d): %w", row, col, err)
		}

		value := cell.Value
		if r.opts.UseText {
			value = cell.Text
		}

		if cell.Value != nil && isDateFormat(cell.NumberFormat, r.opts.DateFormat) {
			if t, err := coerceDate(cell.Value); err == nil {
				value = t
			} else {
				r.warns = append(r.warns, &DateCoercionWarning{
					Row:    row,
					Column: col,
					Format: cell.NumberFormat,
					Value:  cell.Value,
					Err:    err,
				})
			}
		}

		if !rec.Set(name, value) {
			r.warns = append(r.warns, &DuplicateHeaderWarning{
				Header: name,
				Row:    row,
				Column: col,
				Value:  value,
			})
		}
	}
	return rec, nil
}

// ReadAll drains a worksheet region into a slice of records. It returns the
// reader's warnings alongside the records.
func ReadAll(ws Worksheet, opts Options) ([]*Record, []error, error) {
	r, err := NewReader(ws, opts)
	if err != nil {
		return nil, nil, err
	}
	var records []*Record
	for r.Next() {
		records = append(records, r.Record())
	}
	if err := r.Err(); err != nil {
		return nil, r.Warnings(), err
	}
	return records, r.Warnings(), nil
}
