package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

// ErrInvalidKey indicates a persisted cell or index key could not be parsed.
var ErrInvalidKey = errors.New("invalid cell key")

// FormatKey renders addr as the persisted "row,col" key.
func FormatKey(addr models.Address) string {
	return strconv.Itoa(addr.Row) + "," + strconv.Itoa(addr.Col)
}

// ParseKey parses a persisted "row,col" key.
func ParseKey(key string) (models.Address, error) {
	rowStr, colStr, ok := strings.Cut(key, ",")
	if !ok {
		return models.Address{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	row, err := parseIndex(rowStr)
	if err != nil {
		return models.Address{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	col, err := parseIndex(colStr)
	if err != nil {
		return models.Address{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return models.Address{Row: row, Col: col}, nil
}

// ParseIndex parses a persisted row or column index key.
func ParseIndex(key string) (int, error) {
	i, err := parseIndex(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return i, nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("negative index %d", i)
	}
	return i, nil
}

// Data converts the grid to its persisted key-value form.
func (g Grid) Data() map[string]string {
	out := make(map[string]string, len(g))
	for addr, value := range g {
		out[FormatKey(addr)] = value
	}
	return out
}

// FromData builds a grid from persisted key-value pairs. Empty values are dropped.
func FromData(data map[string]string) (Grid, error) {
	g := make(Grid, len(data))
	for key, value := range data {
		addr, err := ParseKey(key)
		if err != nil {
			return nil, err
		}
		g.Set(addr, value)
	}
	return g, nil
}
