// Package xlsxio provides the excelize-backed workbook collaborator
// consumed by the excelrows pipeline.
package xlsxio

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/opustecnica/excelrows/pkg/excelrows"
)

// Workbook is an open xlsx file. Close it when done; the pipeline holds it
// only for the duration of one worksheet pass.
type Workbook struct {
	f    *excelize.File
	path string
}

// Open opens an xlsx workbook. In shared mode the file content is read into
// memory and parsed from there, tolerating another process holding the file
// open; otherwise the file is opened directly.
func Open(path string, shared bool) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	var f *excelize.File
	if shared {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		f, err = excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	} else {
		var err error
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}

	return &Workbook{f: f, path: path}, nil
}

// Close releases the workbook handle.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// Sheet resolves a sheet reference, either a 1-based index or a sheet name,
// to a worksheet. An empty reference selects the first sheet.
func (w *Workbook) Sheet(ref string) (*Sheet, error) {
	names := w.f.GetSheetList()
	if len(names) == 0 {
		return nil, excelrows.ErrEmptyWorkbook
	}

	if ref == "" {
		return newSheet(w.f, names[0]), nil
	}

	if idx, err := strconv.Atoi(ref); err == nil {
		if idx < 1 || idx > len(names) {
			return nil, fmt.Errorf("%w: index %d out of 1..%d", excelrows.ErrSheetNotFound, idx, len(names))
		}
		return newSheet(w.f, names[idx-1]), nil
	}

	for _, name := range names {
		if name == ref {
			return newSheet(w.f, name), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", excelrows.ErrSheetNotFound, ref)
}
