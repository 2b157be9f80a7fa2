package models

// SheetData represents one sheet split at its header row.
type SheetData struct {
	// Name is the sheet name.
	Name string
	// HeaderRow is the zero-based index of the header row.
	HeaderRow int
	// Header holds the column labels.
	Header *Header
	// Rows contains the rows below the header.
	Rows []RawRow
}

// Stats counts how rows were handled during normalization.
type Stats struct {
	Rows              int `json:"rows"`
	Emitted           int `json:"emitted"`
	SkippedType       int `json:"skipped_type"`
	SkippedIncomplete int `json:"skipped_incomplete"`
	Excluded          int `json:"excluded"`
}
