package equipx

import (
	"errors"
	"fmt"

	"github.com/fleetworks/equipx/pkg/equipx/normalize"
	"github.com/fleetworks/equipx/pkg/equipx/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Errors raised by subpackages, re-exported for errors.Is checks.
var (
	ErrHeaderRowOutOfRange = parser.ErrHeaderRowOutOfRange
	ErrHeaderNotFound      = parser.ErrHeaderNotFound
	ErrMissingColumn       = normalize.ErrMissingColumn
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "sheet", "rows", "header", "columns", "config"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
