package xlsx

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx file.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptyDocument indicates an export of a document without any cell data.
var ErrEmptyDocument = errors.New("document has no data")

// SheetError represents an error while reading or writing one sheet.
type SheetError struct {
	SheetName string
	Op        string // "read", "write"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s sheet %q: %v", e.Op, e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
