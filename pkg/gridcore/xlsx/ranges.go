package xlsx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

// ParseCell parses an A1-style reference such as "B2" or "$B$2".
func ParseCell(ref string) (models.Address, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return models.Address{}, err
	}
	return models.Address{Row: row - 1, Col: col - 1}, nil
}

// ParseRange parses a range like "A1:D10". A single cell reference yields a
// one-cell range. The corners are normalized so R1 <= R2 and C1 <= C2.
func ParseRange(ref string) (models.Range, error) {
	parts := strings.Split(strings.TrimSpace(ref), ":")
	if len(parts) > 2 {
		return models.Range{}, fmt.Errorf("invalid range %q", ref)
	}
	start, err := ParseCell(parts[0])
	if err != nil {
		return models.Range{}, err
	}
	end := start
	if len(parts) == 2 {
		end, err = ParseCell(parts[1])
		if err != nil {
			return models.Range{}, err
		}
	}
	return models.RangeOf(start, end), nil
}

// ParseColumn parses a column given as letters ("C") or a 1-based number ("3").
func ParseColumn(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("invalid column %q", ref)
		}
		return n - 1, nil
	}
	n, err := excelize.ColumnNameToNumber(ref)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// ParseRow parses a 1-based row number.
func ParseRow(ref string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid row %q", ref)
	}
	return n - 1, nil
}

// CellName formats addr as an A1-style reference.
func CellName(addr models.Address) (string, error) {
	return excelize.CoordinatesToCellName(addr.Col+1, addr.Row+1)
}

// FormatRange formats r as an "A1:B2" reference.
func FormatRange(r models.Range) (string, error) {
	start, err := CellName(r.TopLeft())
	if err != nil {
		return "", err
	}
	end, err := CellName(r.BottomRight())
	if err != nil {
		return "", err
	}
	return start + ":" + end, nil
}
