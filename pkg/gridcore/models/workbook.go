package models

// DocumentData is the persisted form of a document.
type DocumentData struct {
	// Name is the document display name.
	Name string `json:"name"`
	// ActiveSheetIndex is the index of the sheet selected for editing.
	ActiveSheetIndex int `json:"active_sheet_index"`
	// Sheets lists the sheets in display order.
	Sheets []SheetData `json:"sheets"`
}

// StateData is the persisted application state holding every document.
type StateData struct {
	// Documents lists the documents in library order.
	Documents []DocumentData `json:"documents"`
}
