package models

import "strings"

// Header holds the column labels of a sheet. Lookups ignore case and
// treat any run of whitespace as one space.
type Header struct {
	// Labels are the column labels in column order. Blank columns are "".
	Labels []string
	index  map[string]int
}

// NewHeader builds a Header. When a label repeats, the first column wins.
func NewHeader(labels []string) *Header {
	h := &Header{
		Labels: labels,
		index:  make(map[string]int, len(labels)),
	}
	for i, label := range labels {
		key := LabelKey(label)
		if key == "" {
			continue
		}
		if _, ok := h.index[key]; !ok {
			h.index[key] = i
		}
	}
	return h
}

// Lookup returns the zero-based column index for label.
func (h *Header) Lookup(label string) (int, bool) {
	if h == nil {
		return 0, false
	}
	col, ok := h.index[LabelKey(label)]
	return col, ok
}

// CleanLabel trims a column label and collapses interior whitespace runs.
func CleanLabel(label string) string {
	return strings.Join(strings.Fields(label), " ")
}

// LabelKey is the form labels are compared in: cleaned and upper-cased, so
// "Equipment  Type" and "EQUIPMENT TYPE" name the same column.
func LabelKey(label string) string {
	return strings.ToUpper(CleanLabel(label))
}

// RawRow is one sheet row as loaded, before normalization.
type RawRow struct {
	// Index is the zero-based row index within the sheet.
	Index int
	// Header is shared by all data rows of a sheet; nil for rows read without one.
	Header *Header
	// Values holds the formatted cell values. Trailing empty cells may be missing.
	Values []string
}

// Cell returns the value at col, or "" past the end of the row.
func (r RawRow) Cell(col int) string {
	if col < 0 || col >= len(r.Values) {
		return ""
	}
	return r.Values[col]
}

// Get returns the cell under label. The bool reports whether the column exists.
func (r RawRow) Get(label string) (string, bool) {
	col, ok := r.Header.Lookup(label)
	if !ok {
		return "", false
	}
	return r.Cell(col), true
}

// IsEmpty reports whether every cell is blank.
func (r RawRow) IsEmpty() bool {
	for _, v := range r.Values {
		if v != "" {
			return false
		}
	}
	return true
}
