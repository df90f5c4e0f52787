package xlsx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

// MaxSheetNameLength is Excel's limit on worksheet titles.
const MaxSheetNameLength = 31

// Export writes doc to path as an .xlsx workbook with one worksheet per
// sheet. It returns ErrEmptyDocument when no sheet holds any value.
func Export(doc *document.Document, path string, opts Options) error {
	sheets := doc.Sheets()
	hasData := false
	for _, s := range sheets {
		if s.Cells.Len() > 0 {
			hasData = true
			break
		}
	}
	if !hasData {
		return ErrEmptyDocument
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultName := f.GetSheetName(0)
	used := make(map[string]bool)
	for i, s := range sheets {
		title := SheetTitle(s.Name, i+1, used)
		if i == 0 {
			if err := f.SetSheetName(defaultName, title); err != nil {
				return NewSheetError(s.Name, "write", err)
			}
		} else if _, err := f.NewSheet(title); err != nil {
			return NewSheetError(s.Name, "write", err)
		}
		if err := WriteSheet(f, title, s, opts); err != nil {
			return NewSheetError(s.Name, "write", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WriteSheet streams the occupied extent of s into the worksheet title.
func WriteSheet(f *excelize.File, title string, s *document.Sheet, opts Options) error {
	// The stream writer copies the dimension when it is created. Readers
	// rely on it to find formula cells that carry no cached value.
	if bounds, ok := s.Cells.Bounds(); ok {
		ref, err := FormatRange(models.RangeOf(models.At(0, 0), bounds.BottomRight()))
		if err != nil {
			return err
		}
		if err := f.SetSheetDimension(title, ref); err != nil {
			return err
		}
	}
	sw, err := f.NewStreamWriter(title)
	if err != nil {
		return err
	}

	includeLayout := opts.ShouldIncludeLayout()
	if includeLayout {
		for _, col := range sortedIndexes(s.ColWidths) {
			if err := sw.SetColWidth(col+1, col+1, PixelsToColumnWidth(s.ColWidths[col])); err != nil {
				return err
			}
		}
	}

	maxRow, maxCol := s.Cells.Extent()
	if includeLayout {
		for row := range s.RowHeights {
			maxRow = max(maxRow, row)
		}
	}

	writeFormulas := opts.ShouldWriteFormulas()
	for row := 0; row <= maxRow; row++ {
		values := make([]interface{}, maxCol+1)
		hasValue := false
		for col := 0; col <= maxCol; col++ {
			value := s.Cells.Get(models.At(row, col))
			if value == "" {
				continue
			}
			hasValue = true
			if writeFormulas && IsFormula(value) {
				values[col] = excelize.Cell{Formula: value[1:]}
			} else {
				values[col] = value
			}
		}
		height, hasHeight := s.RowHeights[row]
		if !hasValue && !(includeLayout && hasHeight) {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return err
		}
		var rowOpts []excelize.RowOpts
		if includeLayout && hasHeight {
			rowOpts = append(rowOpts, excelize.RowOpts{Height: PixelsToPoints(height)})
		}
		if err := sw.SetRow(cell, values, rowOpts...); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// SheetTitle turns a sheet name into a unique, valid worksheet title.
// Invalid characters are replaced, the title is truncated to 31 characters,
// and duplicates (compared case-insensitively, as Excel does) get a numeric
// suffix. used records the titles already taken.
func SheetTitle(name string, position int, used map[string]bool) string {
	title := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	title = strings.Trim(title, "'")
	if title == "" {
		title = document.DefaultSheetName(position)
	}
	title = truncateRunes(title, MaxSheetNameLength)

	candidate := title
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := " (" + strconv.Itoa(n) + ")"
		candidate = truncateRunes(title, MaxSheetNameLength-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func sortedIndexes(m map[int]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
