package grid

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ColumnName returns the spreadsheet letter label for a zero-based column:
// 0 → "A", 25 → "Z", 26 → "AA". Indexes outside Excel's column range
// yield "".
func ColumnName(index int) string {
	if index < 0 {
		return ""
	}
	name, err := excelize.ColumnNumberToName(index + 1)
	if err != nil {
		return ""
	}
	return name
}

// RowName returns the 1-based decimal label for a zero-based row.
func RowName(index int) string {
	return strconv.Itoa(index + 1)
}
