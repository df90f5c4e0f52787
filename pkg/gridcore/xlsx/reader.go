package xlsx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/grid"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

// Import reads an .xlsx workbook into a new document named after the file.
// Every worksheet becomes a sheet; values are written straight into the
// sheet's grid, so the result starts with no undo history.
func Import(path string, opts Options) (*document.Document, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return nil, fmt.Errorf("%w: only .xlsx files are supported: %s", ErrInvalidFormat, path)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	var sheets []*document.Sheet
	for _, sheetName := range f.GetSheetList() {
		sheet, err := ReadSheet(f, sheetName, opts)
		if err != nil {
			return nil, NewSheetError(sheetName, "read", err)
		}
		sheets = append(sheets, sheet)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return document.FromSheets(name, sheets), nil
}

// ReadSheet copies the non-empty cells of one worksheet into a new sheet.
func ReadSheet(f *excelize.File, sheetName string, opts Options) (*document.Sheet, error) {
	var rowOpts []excelize.Options
	if opts.RawValues {
		rowOpts = append(rowOpts, excelize.Options{RawCellValue: true})
	}
	rows, err := f.GetRows(sheetName, rowOpts...)
	if err != nil {
		return nil, err
	}

	sheet := document.NewSheet(sheetName)
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			sheet.Cells.Set(models.At(rowIdx, colIdx), cellValue)
		}
	}

	if opts.ShouldKeepFormulasOnImport() {
		extent, ok := formulaScanRange(f, sheetName, rows)
		if ok {
			for _, addr := range extent.Addresses() {
				if formula, ok := cellFormula(f, sheetName, addr); ok {
					sheet.Cells.Set(addr, formula)
				}
			}
		}
	}
	return sheet, nil
}

// formulaScanRange returns the area that may hold formulas: the extent of
// the cached values joined with the worksheet's declared dimension, clipped
// to the logical grid.
func formulaScanRange(f *excelize.File, sheetName string, rows [][]string) (models.Range, bool) {
	var r models.Range
	ok := false
	for rowIdx, row := range rows {
		if len(row) == 0 {
			continue
		}
		last := models.At(rowIdx, len(row)-1)
		if !ok {
			r, ok = models.RangeOf(models.At(0, 0), last), true
			continue
		}
		r = r.Extend(last)
	}
	if dim, err := f.GetSheetDimension(sheetName); err == nil && dim != "" {
		if d, err := ParseRange(dim); err == nil {
			if !ok {
				r, ok = models.RangeOf(models.At(0, 0), d.BottomRight()), true
			} else {
				r = r.Extend(d.BottomRight())
			}
		}
	}
	if !ok {
		return r, false
	}
	r.R2 = min(r.R2, grid.MaxRows-1)
	r.C2 = min(r.C2, grid.MaxColumns-1)
	return r, true
}

func cellFormula(f *excelize.File, sheetName string, addr models.Address) (string, bool) {
	cellName, err := CellName(addr)
	if err != nil {
		return "", false
	}
	formula, err := f.GetCellFormula(sheetName, cellName)
	if err != nil || formula == "" {
		return "", false
	}
	if !strings.HasPrefix(formula, "=") {
		formula = "=" + formula
	}
	return formula, true
}
