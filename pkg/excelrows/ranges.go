package excelrows

// RangeSpec is the resolved region of a worksheet pass, 1-based inclusive
// on both axes.
type RangeSpec struct {
	RowStart, RowEnd       int
	ColumnStart, ColumnEnd int
}

// Width returns the number of columns in the range.
func (r RangeSpec) Width() int {
	return r.ColumnEnd - r.ColumnStart + 1
}

// Height returns the number of rows in the range.
func (r RangeSpec) Height() int {
	return r.RowEnd - r.RowStart + 1
}

// ResolveRange computes the effective region from the worksheet extent and
// the user-supplied bounds. Unset starts default to 1 and unset ends to the
// extent; ends past the extent clamp to it. End overrides are absolute
// 1-based indices of the last row/column to process, not counts. A negative
// start or a range whose start exceeds its end is a *RangeError.
func ResolveRange(dim Dimension, opts Options) (RangeSpec, error) {
	rowStart, rowEnd, err := resolveAxis("row", opts.RowStart, opts.RowEnd, dim.Rows)
	if err != nil {
		return RangeSpec{}, err
	}
	colStart, colEnd, err := resolveAxis("column", opts.ColumnStart, opts.ColumnEnd, dim.Cols)
	if err != nil {
		return RangeSpec{}, err
	}
	return RangeSpec{
		RowStart:    rowStart,
		RowEnd:      rowEnd,
		ColumnStart: colStart,
		ColumnEnd:   colEnd,
	}, nil
}

func resolveAxis(axis string, start, end, bound int) (int, int, error) {
	if start < 0 {
		return 0, 0, &RangeError{Axis: axis, Start: start, End: bound}
	}
	if start == 0 {
		start = 1
	}
	if end <= 0 || end > bound {
		end = bound
	}
	if start > end {
		return 0, 0, &RangeError{Axis: axis, Start: start, End: end}
	}
	return start, end, nil
}
