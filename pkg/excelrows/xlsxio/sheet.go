package xlsxio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/opustecnica/excelrows/pkg/excelrows"
)

// Sheet is a single worksheet of an open workbook. It implements
// excelrows.Worksheet.
type Sheet struct {
	f    *excelize.File
	name string

	dim    *excelrows.Dimension
	numFmt map[int]string // style ID to number-format code
}

func newSheet(f *excelize.File, name string) *Sheet {
	return &Sheet{
		f:      f,
		name:   name,
		numFmt: make(map[int]string),
	}
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Dimension reports the used extent of the sheet: the bounding box of cells
// holding content. Computed once and cached.
func (s *Sheet) Dimension() (excelrows.Dimension, error) {
	if s.dim != nil {
		return *s.dim, nil
	}

	rows, err := s.f.GetRows(s.name)
	if err != nil {
		return excelrows.Dimension{}, fmt.Errorf("read sheet %q: %w", s.name, err)
	}

	var maxRow, maxCol int
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > maxRow {
				maxRow = rowIdx + 1
			}
			if colIdx+1 > maxCol {
				maxCol = colIdx + 1
			}
		}
	}

	s.dim = &excelrows.Dimension{Rows: maxRow, Cols: maxCol}
	return *s.dim, nil
}

// Cell returns the typed value, display text and number-format code of the
// cell at the given 1-based coordinates.
func (s *Sheet) Cell(row, col int) (excelrows.Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return excelrows.Cell{}, fmt.Errorf("cell coordinates (%d,%d): %w", row, col, err)
	}

	text, err := s.f.GetCellValue(s.name, cellName)
	if err != nil {
		return excelrows.Cell{}, fmt.Errorf("read cell %s: %w", cellName, err)
	}
	raw, err := s.f.GetCellValue(s.name, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return excelrows.Cell{}, fmt.Errorf("read cell %s: %w", cellName, err)
	}
	cellType, err := s.f.GetCellType(s.name, cellName)
	if err != nil {
		return excelrows.Cell{}, fmt.Errorf("cell type of %s: %w", cellName, err)
	}
	format, err := s.numberFormat(cellName)
	if err != nil {
		return excelrows.Cell{}, err
	}

	return excelrows.Cell{
		Value:        typedValue(cellType, raw),
		Text:         text,
		NumberFormat: format,
	}, nil
}

// typedValue converts the raw stored string into nil, bool, float64 or
// string according to the declared cell type.
func typedValue(cellType excelize.CellType, raw string) any {
	if raw == "" {
		return nil
	}
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return raw
	default:
		// Numeric cells carry no explicit type attribute.
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
		return raw
	}
}

// numberFormat resolves the number-format code of a cell's style, consulting
// the built-in format table for standard IDs. Cached per style ID.
func (s *Sheet) numberFormat(cellName string) (string, error) {
	styleID, err := s.f.GetCellStyle(s.name, cellName)
	if err != nil {
		return "", fmt.Errorf("cell style of %s: %w", cellName, err)
	}
	if code, ok := s.numFmt[styleID]; ok {
		return code, nil
	}

	style, err := s.f.GetStyle(styleID)
	if err != nil {
		return "", fmt.Errorf("style %d: %w", styleID, err)
	}

	var code string
	if style.CustomNumFmt != nil {
		code = *style.CustomNumFmt
	} else {
		code = builtInNumFmt[style.NumFmt]
	}

	s.numFmt[styleID] = code
	return code, nil
}
