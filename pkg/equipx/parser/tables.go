package parser

import (
	"errors"
	"strings"

	"github.com/fleetworks/equipx/pkg/equipx/models"
)

// ErrHeaderNotFound indicates no header row could be detected.
var ErrHeaderNotFound = errors.New("header row not found")

// HeaderDetectionParams holds parameters for header row detection.
type HeaderDetectionParams struct {
	// SearchDepth is how many leading rows are inspected.
	SearchDepth int
	// MinNonemptyCells is the minimum filled cells for the density fallback.
	MinNonemptyCells int
}

// DefaultHeaderParams returns default header detection parameters.
func DefaultHeaderParams() HeaderDetectionParams {
	return HeaderDetectionParams{
		SearchDepth:      20,
		MinNonemptyCells: 3,
	}
}

// DetectHeaderRow finds the zero-based index of the header row.
// The first row holding a cell with the same LabelKey as label wins; otherwise the densest leading row is taken.
func DetectHeaderRow(rows []models.RawRow, label string, params HeaderDetectionParams) (int, error) {
	limit := len(rows)
	if params.SearchDepth > 0 && params.SearchDepth < limit {
		limit = params.SearchDepth
	}

	want := models.LabelKey(label)
	if want != "" {
		for i := 0; i < limit; i++ {
			for _, cell := range rows[i].Values {
				if models.LabelKey(cell) == want {
					return i, nil
				}
			}
		}
	}

	best, bestCount := -1, 0
	for i := 0; i < limit; i++ {
		count := countNonEmptyCells(rows[i].Values)
		if count > bestCount {
			best, bestCount = i, count
		}
	}
	if best < 0 || bestCount < params.MinNonemptyCells {
		return 0, ErrHeaderNotFound
	}
	return best, nil
}

// countNonEmptyCells counts cells that hold more than whitespace.
func countNonEmptyCells(row []string) int {
	count := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			count++
		}
	}
	return count
}
