package models

// SheetData is the persisted form of a single sheet.
type SheetData struct {
	// Name is the sheet display name.
	Name string `json:"name"`
	// Cells maps "row,col" keys to non-empty cell values.
	Cells map[string]string `json:"cells"`
	// RowHeights maps row index (string) to an overridden height in pixels.
	RowHeights map[string]int `json:"row_heights,omitempty"`
	// ColWidths maps column index (string) to an overridden width in pixels.
	ColWidths map[string]int `json:"col_widths,omitempty"`
}
