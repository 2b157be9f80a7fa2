// Package equipx extracts canonical equipment records from inventory workbooks.
package equipx

import (
	"github.com/fleetworks/equipx/pkg/equipx/normalize"
	"go.uber.org/zap"
)

// DefaultHeaderRow is the zero-based header row of the master list layout.
const DefaultHeaderRow = 4

// DetectHeader asks Extract to locate the header row itself.
const DetectHeader = -1

// DefaultTypes are the equipment type spellings seen in the master list.
var DefaultTypes = []string{"DOZER", " DOZER", "WHEEL LOADER", "WHEEL   LOADER", "Wheel loader"}

// Options configures extraction behavior.
type Options struct {
	// Sheet is the sheet to read. Empty means the first sheet.
	Sheet string
	// HeaderRow is the zero-based header row, or DetectHeader.
	HeaderRow int
	// Types are the accepted raw equipment types.
	Types []string
	// Columns overrides record field to column label mappings.
	Columns map[string]string
	// RequireEssential skips rows without both make and model.
	RequireEssential bool
	// ExcludeAssets lists asset numbers that are never emitted.
	ExcludeAssets []string
	// Logger receives per-row debug output. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		HeaderRow:        DefaultHeaderRow,
		Types:            append([]string(nil), DefaultTypes...),
		RequireEssential: true,
	}
}

// ShouldDetectHeader returns whether the header row must be detected.
func (o Options) ShouldDetectHeader() bool {
	return o.HeaderRow == DetectHeader
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) normalizeConfig() normalize.Config {
	return normalize.Config{
		Types:            o.Types,
		Columns:          o.Columns,
		RequireEssential: o.RequireEssential,
		ExcludeAssets:    o.ExcludeAssets,
	}
}
