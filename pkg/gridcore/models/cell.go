// Package models defines the data structures shared by the grid core.
package models

import "fmt"

// Address identifies a single cell by zero-based row and column.
type Address struct {
	// Row is the row index (0-based).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// At is shorthand for Address{Row: row, Col: col}.
func At(row, col int) Address {
	return Address{Row: row, Col: col}
}

// Valid reports whether both coordinates are non-negative.
func (a Address) Valid() bool {
	return a.Row >= 0 && a.Col >= 0
}

// Less orders addresses row-major.
func (a Address) Less(b Address) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}
