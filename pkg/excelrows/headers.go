package excelrows

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnName converts a 1-based column index to its spreadsheet-style
// alphabetic label (A, B, ... Z, AA, AB, ...). Indices below 1 yield "".
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	return name
}

// headerSet is the resolved header state for one worksheet pass.
type headerSet struct {
	// headers holds one name per column in the range, index-aligned to
	// ColumnStart..ColumnEnd. Entries are never empty.
	headers []string
	// selected is headers with duplicates removed, first occurrence kept.
	selected []string
	// dataStart is the first data row, past the header row when one was
	// consumed.
	dataStart int
}

// resolveHeaders determines the header name for every column in the range.
// Strategy order: explicit header list, generated column labels when the
// first row is data, an explicit header row, else the first row of the
// range. A wrong-length explicit list is a *HeaderCountError and fatal for
// the worksheet.
func resolveHeaders(ws Worksheet, rng RangeSpec, opts Options) (*headerSet, error) {
	width := rng.Width()
	headers := make([]string, 0, width)

	switch {
	case len(opts.Headers) > 0:
		if len(opts.Headers) != width {
			return nil, &HeaderCountError{Want: width, Got: len(opts.Headers)}
		}
		for i, name := range opts.Headers {
			headers = append(headers, sanitizeHeader(name, rng.ColumnStart+i))
		}

	case opts.FirstRowIsData:
		for col := rng.ColumnStart; col <= rng.ColumnEnd; col++ {
			headers = append(headers, ColumnName(col))
		}

	default:
		headerRow := rng.RowStart
		if opts.HeaderRow >= 1 {
			headerRow = opts.HeaderRow
		}
		for col := rng.ColumnStart; col <= rng.ColumnEnd; col++ {
			cell, err := ws.Cell(headerRow, col)
			if err != nil {
				return nil, fmt.Errorf("read header cell (%d,%d): %w", headerRow, col, err)
			}
			value := cell.Value
			if opts.UseText {
				value = cell.Text
			}
			headers = append(headers, sanitizeHeader(value, col))
		}
	}

	dataStart := rng.RowStart
	if !opts.FirstRowIsData {
		dataStart++
	}

	return &headerSet{
		headers:   headers,
		selected:  dedupeHeaders(headers),
		dataStart: dataStart,
	}, nil
}

// sanitizeHeader trims a header value and substitutes the "<Column N>"
// placeholder for anything empty or not a string.
func sanitizeHeader(value any, col int) string {
	s, ok := value.(string)
	if ok {
		s = strings.TrimSpace(s)
	}
	if !ok || s == "" {
		return fmt.Sprintf("<Column %d>", col)
	}
	return s
}

// dedupeHeaders removes duplicate names, keeping the first occurrence and
// preserving order.
func dedupeHeaders(headers []string) []string {
	seen := make(map[string]struct{}, len(headers))
	out := make([]string, 0, len(headers))
	for _, name := range headers {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
