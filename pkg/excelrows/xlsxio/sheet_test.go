package xlsxio

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/opustecnica/excelrows/pkg/excelrows"
)

// openTestSheet saves the workbook to a temp file and returns its first
// sheet, closing everything on test cleanup.
func openTestSheet(t *testing.T, f *excelize.File) *Sheet {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { wb.Close() })

	ws, err := wb.Sheet("")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	return ws
}

func TestSheetDimension(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "B2", "x")
	f.SetCellValue("Sheet1", "C5", "y")

	ws := openTestSheet(t, f)
	dim, err := ws.Dimension()
	if err != nil {
		t.Fatalf("Dimension failed: %v", err)
	}
	if dim.Rows != 5 || dim.Cols != 3 {
		t.Errorf("Dimension = %+v, expected 5 rows and 3 columns", dim)
	}
}

func TestSheetCellTypes(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Hello")
	f.SetCellValue("Sheet1", "B1", 42.5)
	f.SetCellValue("Sheet1", "C1", true)

	ws := openTestSheet(t, f)

	tests := []struct {
		col      int
		expected any
	}{
		{1, "Hello"},
		{2, 42.5},
		{3, true},
		{4, nil},
	}
	for _, tt := range tests {
		cell, err := ws.Cell(1, tt.col)
		if err != nil {
			t.Fatalf("Cell(1,%d) failed: %v", tt.col, err)
		}
		if cell.Value != tt.expected {
			t.Errorf("Cell(1,%d).Value = %v (%T), expected %v", tt.col, cell.Value, cell.Value, tt.expected)
		}
	}
}

func TestSheetNumberFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", 43831)

	styleID, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "A1", "A1", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	ws := openTestSheet(t, f)
	cell, err := ws.Cell(1, 1)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if cell.NumberFormat != "m/d/yyyy" {
		t.Errorf("NumberFormat = %q, expected m/d/yyyy", cell.NumberFormat)
	}
	if cell.Value != 43831.0 {
		t.Errorf("Value = %v, expected the raw serial 43831", cell.Value)
	}
}

func TestSheetCustomNumberFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", 43831)

	custom := "yyyy-mm-dd"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "A1", "A1", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	ws := openTestSheet(t, f)
	cell, err := ws.Cell(1, 1)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if cell.NumberFormat != custom {
		t.Errorf("NumberFormat = %q, expected %q", cell.NumberFormat, custom)
	}
}

func TestSheetDisplayText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", 0.5)

	styleID, err := f.NewStyle(&excelize.Style{NumFmt: 9}) // 0%
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "A1", "A1", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	ws := openTestSheet(t, f)
	cell, err := ws.Cell(1, 1)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if cell.Value != 0.5 {
		t.Errorf("Value = %v, expected the raw 0.5", cell.Value)
	}
	if cell.Text != "50%" {
		t.Errorf("Text = %q, expected the rendered 50%%", cell.Text)
	}
}

// TestConvertWorkbook exercises the whole pipeline against a real file:
// header row, typed values and a date-formatted cell.
func TestConvertWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Age")
	f.SetCellValue("Sheet1", "C1", "Joined")
	f.SetCellValue("Sheet1", "A2", "Ann")
	f.SetCellValue("Sheet1", "B2", 30)
	f.SetCellValue("Sheet1", "C2", 43831)

	styleID, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "C2", "C2", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	ws := openTestSheet(t, f)
	records, warnings, err := excelrows.ReadAll(ws, excelrows.Options{})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, expected 1", len(records))
	}

	rec := records[0]
	if v, _ := rec.Get("Name"); v != "Ann" {
		t.Errorf("Name = %v, expected Ann", v)
	}
	if v, _ := rec.Get("Age"); v != 30.0 {
		t.Errorf("Age = %v, expected 30", v)
	}
	v, _ := rec.Get("Joined")
	ts, ok := v.(time.Time)
	if !ok {
		t.Fatalf("Joined = %v (%T), expected time.Time", v, v)
	}
	if want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC); !ts.Equal(want) {
		t.Errorf("Joined = %v, expected %v", ts, want)
	}
}
