package excelrows

// Options configures one worksheet pass. The zero value reads the whole
// used extent, takes headers from the first row and returns typed values.
type Options struct {
	// Headers, when non-empty, is used verbatim (trimmed) as the header
	// list instead of reading a header row. Its length must match the
	// resolved column count.
	Headers []string
	// FirstRowIsData treats every row in the range as data; headers become
	// generated column labels (A, B, ...) and no cell is read for them.
	FirstRowIsData bool
	// HeaderRow, when >= 1, is the 1-based row headers are read from.
	HeaderRow int
	// UseText reads the rendered display text of each cell instead of its
	// typed value.
	UseText bool
	// DateFormat is an additional number-format code to treat as a date,
	// on top of the built-in day/month/year detection.
	DateFormat string
	// RowStart, RowEnd, ColumnStart and ColumnEnd bound the region to
	// process, 1-based inclusive. Zero means unset: starts default to 1,
	// ends default to the worksheet extent. An end past the extent is
	// clamped to it.
	RowStart, RowEnd       int
	ColumnStart, ColumnEnd int
}

// DefaultOptions returns options for a whole-sheet pass with a natural
// header row.
func DefaultOptions() Options {
	return Options{}
}
