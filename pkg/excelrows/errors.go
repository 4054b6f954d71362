package excelrows

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyWorkbook indicates the workbook contains no worksheets.
var ErrEmptyWorkbook = errors.New("workbook has no worksheets")

// RangeError reports a row or column range that is invalid after resolution.
type RangeError struct {
	// Axis is "row" or "column".
	Axis string
	// Start and End are the resolved 1-based inclusive bounds.
	Start, End int
}

func (e *RangeError) Error() string {
	if e.Start < 1 {
		return fmt.Sprintf("invalid %s range: start %d is below 1", e.Axis, e.Start)
	}
	return fmt.Sprintf("invalid %s range: start %d exceeds end %d", e.Axis, e.Start, e.End)
}

// HeaderCountError reports an explicit header list whose length does not
// match the resolved column range. It is fatal for the worksheet.
type HeaderCountError struct {
	// Want is the resolved column count, Got the supplied header count.
	Want, Got int
}

func (e *HeaderCountError) Error() string {
	return fmt.Sprintf("header count mismatch: %d headers supplied for %d columns", e.Got, e.Want)
}

// DuplicateHeaderWarning reports two columns resolving to the same header
// name in one row. Non-fatal; the first-assigned value is kept.
type DuplicateHeaderWarning struct {
	// Header is the colliding header name.
	Header string
	// Row and Column locate the discarded cell (1-based).
	Row, Column int
	// Value is the discarded cell value.
	Value any
}

func (w *DuplicateHeaderWarning) Error() string {
	return fmt.Sprintf("duplicate header %q at row %d column %d: keeping first value, dropping %v",
		w.Header, w.Row, w.Column, w.Value)
}

// DateCoercionWarning reports a cell whose number format looked like a date
// but whose value could not be converted to a timestamp. Non-fatal; the raw
// value is kept.
type DateCoercionWarning struct {
	// Row and Column locate the cell (1-based).
	Row, Column int
	// Format is the cell's number-format code.
	Format string
	// Value is the raw value that failed to convert.
	Value any
	// Err is the underlying conversion error, if any.
	Err error
}

func (w *DateCoercionWarning) Error() string {
	return fmt.Sprintf("cannot convert value %v at row %d column %d to a date (format %q): %v",
		w.Value, w.Row, w.Column, w.Format, w.Err)
}

func (w *DateCoercionWarning) Unwrap() error {
	return w.Err
}
