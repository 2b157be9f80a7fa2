// Package normalize maps raw inventory rows to canonical equipment records.
package normalize

import (
	"strings"

	"github.com/fleetworks/equipx/pkg/equipx/models"
	"golang.org/x/text/cases"
)

// TypeFilter is the set of equipment type strings a row must match to be kept.
// Matching trims, collapses interior whitespace and ignores case, so
// " DOZER", "WHEEL   LOADER" and "Wheel loader" all match their plain forms.
type TypeFilter struct {
	keys map[string]struct{}
}

// NewTypeFilter builds a filter from raw type strings. Blank entries are ignored.
func NewTypeFilter(types ...string) TypeFilter {
	f := TypeFilter{keys: make(map[string]struct{}, len(types))}
	for _, t := range types {
		key := typeKey(t)
		if key == "" {
			continue
		}
		f.keys[key] = struct{}{}
	}
	return f
}

// Match reports whether raw is in the filter.
func (f TypeFilter) Match(raw string) bool {
	key := typeKey(raw)
	if key == "" {
		return false
	}
	_, ok := f.keys[key]
	return ok
}

// Len returns the number of distinct normalized entries.
func (f TypeFilter) Len() int {
	return len(f.keys)
}

// CollapseSpace trims s and replaces every interior whitespace run with one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Canonicalize maps a matched raw type to the controlled vocabulary.
func Canonicalize(raw string) string {
	if strings.Contains(strings.ToUpper(raw), "LOADER") {
		return models.TypeWheelLoader
	}
	return models.TypeDozer
}

func typeKey(s string) string {
	// Casers keep state; build one per call.
	return cases.Fold().String(CollapseSpace(s))
}
