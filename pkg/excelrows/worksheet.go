// Package excelrows converts a rectangular worksheet region into an ordered
// sequence of records (header name to cell value mappings).
package excelrows

// Dimension is the used row/column extent of a worksheet.
type Dimension struct {
	// Rows is the number of used rows.
	Rows int
	// Cols is the number of used columns.
	Cols int
}

// Cell is a single worksheet cell as seen by the pipeline.
type Cell struct {
	// Value is the typed cell value: nil, string, float64 or bool.
	Value any
	// Text is the rendered display text, with the cell's number format applied.
	Text string
	// NumberFormat is the cell's number-format code (e.g. "m/d/yyyy").
	NumberFormat string
}

// Worksheet is the cell-level access the pipeline consumes. Implementations
// live outside this package (see xlsxio); row and column indices are 1-based.
type Worksheet interface {
	// Dimension reports the worksheet's used extent.
	Dimension() (Dimension, error)
	// Cell returns the cell at the given 1-based row and column. Cells
	// outside the used extent are returned empty, not as an error.
	Cell(row, col int) (Cell, error)
}
