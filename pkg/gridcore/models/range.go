package models

// Range represents inclusive cell coordinate bounds.
type Range struct {
	// R1 is the start row (0-based).
	R1 int `json:"r1"`
	// C1 is the start column (0-based).
	C1 int `json:"c1"`
	// R2 is the end row (0-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (0-based, inclusive).
	C2 int `json:"c2"`
}

// RangeOf returns the smallest range covering both addresses.
func RangeOf(a, b Address) Range {
	return Range{
		R1: min(a.Row, b.Row),
		C1: min(a.Col, b.Col),
		R2: max(a.Row, b.Row),
		C2: max(a.Col, b.Col),
	}
}

// TopLeft returns the first cell of the range.
func (r Range) TopLeft() Address {
	return Address{Row: r.R1, Col: r.C1}
}

// BottomRight returns the last cell of the range.
func (r Range) BottomRight() Address {
	return Address{Row: r.R2, Col: r.C2}
}

// Height is the number of rows covered.
func (r Range) Height() int {
	return r.R2 - r.R1 + 1
}

// Width is the number of columns covered.
func (r Range) Width() int {
	return r.C2 - r.C1 + 1
}

// Contains reports whether addr lies within the range.
func (r Range) Contains(addr Address) bool {
	return addr.Row >= r.R1 && addr.Row <= r.R2 && addr.Col >= r.C1 && addr.Col <= r.C2
}

// Extend grows the range to include addr.
func (r Range) Extend(addr Address) Range {
	return Range{
		R1: min(r.R1, addr.Row),
		C1: min(r.C1, addr.Col),
		R2: max(r.R2, addr.Row),
		C2: max(r.C2, addr.Col),
	}
}

// Addresses enumerates the cells of the range row by row.
func (r Range) Addresses() []Address {
	if r.R2 < r.R1 || r.C2 < r.C1 {
		return nil
	}
	out := make([]Address, 0, r.Height()*r.Width())
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			out = append(out, Address{Row: row, Col: col})
		}
	}
	return out
}
